package encoding

import (
	"bytes"
	"io"
	"testing"
)

func TestSniffUTF8BOM(t *testing.T) {
	kind, n := Sniff([]byte{0xEF, 0xBB, 0xBF, 'h'})
	if kind != UTF8 || n != 3 {
		t.Fatalf("Sniff = %v, %d, want UTF8, 3", kind, n)
	}
}

func TestSniffUTF16LEBOM(t *testing.T) {
	kind, n := Sniff([]byte{0xFF, 0xFE, 'h', 0})
	if kind != UTF16LE || n != 2 {
		t.Fatalf("Sniff = %v, %d, want UTF16LE, 2", kind, n)
	}
}

func TestSniffNoBOM(t *testing.T) {
	kind, n := Sniff([]byte("hello"))
	if kind != UTF8 || n != 0 {
		t.Fatalf("Sniff = %v, %d, want UTF8, 0", kind, n)
	}
}

func TestNewReaderStripsUTF8BOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("hello")...)
	r, err := NewReader(bytes.NewReader(input), UTF8)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != "hello" {
		t.Fatalf("got %q, want %q", got, "hello")
	}
}

func TestNewReaderDecodesUTF16LE(t *testing.T) {
	// "hi" in UTF-16LE with BOM.
	input := []byte{0xFF, 0xFE, 'h', 0, 'i', 0}
	r, err := NewReader(bytes.NewReader(input), UTF8)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != "hi" {
		t.Fatalf("got %q, want %q", got, "hi")
	}
}
