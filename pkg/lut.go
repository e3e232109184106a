package pkg

const (
	lutBits = 10
	lutSize = 1 << lutBits
	lutMask = lutSize - 1
)

// buildLUT maps every 10-bit window, least significant bit first, to the
// leaf it resolves to or to the internal node reached after all 10 bits.
func buildLUT(lut *[lutSize]*node, root *node) {
	for i := range lutSize {
		bits := i
		n := root
		for range lutBits {
			n = n.children[bits&1]
			bits >>= 1
			if n.leaf() {
				break
			}
		}
		lut[i] = n
	}
}
