package pkg

// Compress encodes data followed by the EOF symbol. Empty input yields an
// empty result.
func (c *Codec) Compress(data []byte) []byte {
	if len(data) == 0 {
		return []byte{}
	}
	// Most packets shrink; start at the input size.
	return c.AppendCompress(make([]byte, 0, len(data)+2), data)
}

// AppendCompress appends the encoding of data to dst and returns the
// extended buffer. Nothing is appended for empty data.
func (c *Codec) AppendCompress(dst, data []byte) []byte {
	if len(data) == 0 {
		return dst
	}

	var bits uint64
	var bitCount uint

	for _, b := range data {
		n := &c.nodes[b]
		bits |= uint64(n.code) << bitCount
		bitCount += uint(n.length)
		for bitCount >= 8 {
			dst = append(dst, byte(bits))
			bits >>= 8
			bitCount -= 8
		}
	}

	eof := &c.nodes[EOFSymbol]
	bits |= uint64(eof.code) << bitCount
	bitCount += uint(eof.length)
	for bitCount >= 8 {
		dst = append(dst, byte(bits))
		bits >>= 8
		bitCount -= 8
	}

	// The final byte is written even when no bits are left over.
	return append(dst, byte(bits))
}
