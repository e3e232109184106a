package pkg

import (
	"cmp"
	"slices"
)

// Huffman tree built from a static frequency table

// node is either a leaf or an internal node. Leaves have no children and
// carry their symbol and final code. Internal nodes always have both
// children set.
type node struct {
	symbol   uint16
	code     uint32
	length   uint8
	children [2]*node
}

func (n *node) leaf() bool {
	return n.children[0] == nil
}

// constructEntry is a pending subtree during construction.
type constructEntry struct {
	node *node
	freq uint64
}

// buildTree fills nodes with the 257 leaves followed by the internal nodes
// and returns the root. nodes must hold MaxNodes entries.
func buildTree(nodes []node, freqs *[MaxSymbols]uint32) *node {
	left := make([]constructEntry, MaxSymbols)
	for i := range MaxSymbols {
		nodes[i] = node{symbol: uint16(i)}

		freq := uint64(freqs[i])
		if i == EOFSymbol {
			freq = 1
		}
		left[i] = constructEntry{node: &nodes[i], freq: freq}
	}

	n := MaxSymbols
	for len(left) > 1 {
		// Ties must keep their previous order or the codes change.
		slices.SortStableFunc(left, func(a, b constructEntry) int {
			return cmp.Compare(b.freq, a.freq)
		})

		last, prev := left[len(left)-1], left[len(left)-2]
		nodes[n] = node{children: [2]*node{last.node, prev.node}}
		left[len(left)-2] = constructEntry{node: &nodes[n], freq: last.freq + prev.freq}
		left = left[:len(left)-1]
		n++
	}

	root := left[0].node
	assignCodes(root, 0, 0)
	return root
}

// assignCodes walks the bit-1 branch before the bit-0 branch. Bit d of a
// code is the branch taken at depth d.
func assignCodes(n *node, code uint32, depth uint8) {
	if n.leaf() {
		n.code = code
		n.length = depth
		return
	}
	assignCodes(n.children[1], code|1<<depth, depth+1)
	assignCodes(n.children[0], code, depth+1)
}
