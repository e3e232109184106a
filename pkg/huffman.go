package pkg

import (
	"bytes"
	"io"
)

// Static Huffman codec shared by both ends of a connection

// Codec holds the tree and decode table derived from the built-in frequency
// table. It is immutable after NewCodec returns and safe for concurrent use.
// A Codec must not be copied.
type Codec struct {
	nodes [MaxNodes]node
	root  *node
	lut   [lutSize]*node
}

// SymbolCode describes the code assigned to one symbol.
type SymbolCode struct {
	Symbol    int
	Frequency uint32
	Code      uint32
	Length    int
}

// NewCodec builds the tree and lookup table.
func NewCodec() *Codec {
	c := &Codec{}
	freqs := Frequencies()
	c.root = buildTree(c.nodes[:], &freqs)
	buildLUT(&c.lut, c.root)
	return c
}

// Code returns the code bits and length of sym, which must be in
// [0, EOFSymbol].
func (c *Codec) Code(sym int) (code uint32, length int) {
	n := &c.nodes[sym]
	return n.code, int(n.length)
}

// Symbols returns the code of every symbol, EOF last.
func (c *Codec) Symbols() []SymbolCode {
	out := make([]SymbolCode, MaxSymbols)
	for i := range out {
		n := &c.nodes[i]
		freq := frequencyTable[i]
		if i == EOFSymbol {
			freq = 1
		}
		out[i] = SymbolCode{
			Symbol:    i,
			Frequency: freq,
			Code:      n.code,
			Length:    int(n.length),
		}
	}
	return out
}

// CompressReader compresses everything read from src. The whole input is
// buffered; this is not a streaming encoder.
func (c *Codec) CompressReader(src io.Reader) (io.Reader, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(c.Compress(data)), nil
}

// DecompressReader decompresses everything read from src.
func (c *Codec) DecompressReader(src io.Reader) ([]byte, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	return c.Decompress(data)
}
