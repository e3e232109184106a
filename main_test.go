package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"statichuff/pkg"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd(pkg.NewCodec())
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCompressCommand(t *testing.T) {
	out, _, err := run(t, "hello world", "compress", "-f", "list")
	if err != nil {
		t.Fatalf("compress: %v", err)
	}
	want := "174, 149, 19, 92, 9, 87, 194, 22, 177, 86, 220, 218, 34, 56, 185, 18, 156, 168, 184, 1\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestDecompressCommand(t *testing.T) {
	out, _, err := run(t, "4a 42 88 4a 6e 16 ba 31 46 a2 84 9e bf e2 06", "decompress", "--format", "hex")
	if err != nil {
		t.Fatalf("decompress: %v", err)
	}
	want := []byte{0x40, 0x02, 0x02, 0x02, 0x00, 0x40, 0x07, 0x03, 0x22, 0x01, 0x00, 0x01, 0x00, 0x01, 0x08, 0x40, 0x01, 0x04, 0x0b}
	if out != string(want) {
		t.Fatalf("got %v, want %v", []byte(out), want)
	}
}

func TestDecompressTruncatedCommand(t *testing.T) {
	_, _, err := run(t, "174, 149, 19", "decompress", "-f", "list")
	if !errors.Is(err, pkg.ErrTruncated) {
		t.Fatalf("err = %v, want ErrTruncated", err)
	}

	out, stderr, err := run(t, "174, 149, 19", "decompress", "-f", "list", "--partial")
	if err != nil {
		t.Fatalf("decompress --partial: %v", err)
	}
	if out != "h" || !strings.Contains(stderr, "warning") {
		t.Fatalf("out = %q stderr = %q", out, stderr)
	}
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.txt")
	comp := filepath.Join(dir, "in.huff")
	dst := filepath.Join(dir, "out.txt")
	if err := os.WriteFile(src, []byte("When in the Course of human events"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, stderr, err := run(t, "", "compress", src, "-O", comp, "-v"); err != nil {
		t.Fatalf("compress: %v", err)
	} else if !strings.Contains(stderr, "compressed 34 bytes") {
		t.Fatalf("verbose output = %q", stderr)
	}
	if _, _, err := run(t, "", "decompress", comp, "-O", dst); err != nil {
		t.Fatalf("decompress: %v", err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "When in the Course of human events" {
		t.Fatalf("got %q", got)
	}
}

func TestInspectCommand(t *testing.T) {
	out, _, err := run(t, "", "inspect", "-s", "65")
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if !strings.Contains(out, "Length: 9") || !strings.Contains(out, "Code: 001111011") {
		t.Fatalf("got %q", out)
	}

	out, _, err = run(t, "", "inspect", "-Q")
	if err != nil {
		t.Fatalf("inspect -Q: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != pkg.MaxSymbols || lines[0] != "0: 1" || lines[pkg.EOFSymbol] != "EOF: 15" {
		t.Fatalf("got %d lines, first %q last %q", len(lines), lines[0], lines[len(lines)-1])
	}

	if _, _, err := run(t, "", "inspect", "-s", "257"); err == nil {
		t.Fatalf("inspect -s 257 succeeded")
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, "", "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "statichuff version") {
		t.Fatalf("got %q", out)
	}
}
