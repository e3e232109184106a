package pkg

import (
	"errors"
	"fmt"
)

var (
	ErrTruncated = errors.New("truncated or malformed stream")
)

// DecodeError reports a stream that ran out of bits before the EOF symbol.
// Partial holds the bytes decoded up to that point and Offset the number of
// input bytes that had been read.
type DecodeError struct {
	Partial []byte
	Offset  int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s after %d bytes of input (%d bytes decoded)", ErrTruncated, e.Offset, len(e.Partial))
}

func (e *DecodeError) Unwrap() error {
	return ErrTruncated
}

// Decompress decodes data up to the EOF symbol. Empty input yields an empty
// result. A stream that ends without an EOF symbol returns a *DecodeError.
func (c *Codec) Decompress(data []byte) ([]byte, error) {
	out := make([]byte, 0, len(data)*2)
	if len(data) == 0 {
		return out, nil
	}

	var bits uint64
	var bitCount uint
	src := 0
	eof := &c.nodes[EOFSymbol]

	truncated := func() ([]byte, error) {
		return nil, &DecodeError{Partial: out, Offset: src}
	}

	for {
		var n *node
		if bitCount >= lutBits {
			n = c.lut[bits&lutMask]
		}

		for bitCount < 24 && src < len(data) {
			bits |= uint64(data[src]) << bitCount
			bitCount += 8
			src++
		}

		if n == nil {
			n = c.lut[bits&lutMask]
		}

		if n.leaf() {
			if uint(n.length) > bitCount {
				return truncated()
			}
			bits >>= n.length
			bitCount -= uint(n.length)
		} else {
			if bitCount < lutBits {
				return truncated()
			}
			bits >>= lutBits
			bitCount -= lutBits

			for !n.leaf() {
				if bitCount == 0 {
					return truncated()
				}
				n = n.children[bits&1]
				bits >>= 1
				bitCount--
			}
		}

		if n == eof {
			return out, nil
		}
		out = append(out, byte(n.symbol))
	}
}
