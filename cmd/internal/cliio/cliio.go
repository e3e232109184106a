// Package cliio reads and writes the byte buffers handled by the
// subcommands.
package cliio

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Format is the textual form of a compressed buffer on the command line.
type Format string

const (
	Raw  Format = "raw"
	Hex  Format = "hex"
	List Format = "list"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Raw, Hex, List:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q: raw|hex|list", s)
	}
}

// ReadInput reads path, or stdin when path is empty or "-".
func ReadInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

// WriteOutput writes data to path, or stdout when path is empty or "-".
func WriteOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Parse converts input in format f to bytes. The list format accepts
// decimal or 0x-prefixed values separated by commas or whitespace, with
// optional surrounding brackets.
func Parse(input []byte, f Format) ([]byte, error) {
	switch f {
	case Raw:
		return input, nil
	case Hex:
		s := strings.Join(strings.Fields(string(input)), "")
		out, err := hex.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("invalid hex input: %w", err)
		}
		return out, nil
	case List:
		fields := strings.FieldsFunc(string(input), func(r rune) bool {
			return r == ',' || r == '[' || r == ']' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
		})
		out := make([]byte, 0, len(fields))
		for i, field := range fields {
			v, err := strconv.ParseUint(field, 0, 8)
			if err != nil {
				return nil, fmt.Errorf("invalid byte %d %q: %w", i, field, err)
			}
			out = append(out, byte(v))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown format %q", f)
	}
}

// Render renders data in format f. Text formats end with a newline.
func (f Format) Render(data []byte) []byte {
	switch f {
	case Hex:
		return []byte(hex.EncodeToString(data) + "\n")
	case List:
		parts := make([]string, len(data))
		for i, b := range data {
			parts[i] = strconv.Itoa(int(b))
		}
		return []byte(strings.Join(parts, ", ") + "\n")
	default:
		return data
	}
}
