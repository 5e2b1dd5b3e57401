package uniuri

import (
	"bytes"
	"testing"
)

func TestNewLen(t *testing.T) {
	for _, length := range []int{0, 1, StdLen, SessionLen, 100} {
		out := NewLen(length)
		if len(out) != length {
			t.Fatalf("expected length %d, got %d", length, len(out))
		}
	}
}

func TestNewUsesStdChars(t *testing.T) {
	out := New()
	if len(out) != StdLen {
		t.Fatalf("expected length %d, got %d", StdLen, len(out))
	}

	for _, c := range []byte(out) {
		if !bytes.Contains(StdChars, []byte{c}) {
			t.Fatalf("character %q not in the standard charset", c)
		}
	}
}

func TestNewIsUnique(t *testing.T) {
	seen := make(map[string]bool)

	for range 1000 {
		id := NewLen(SessionLen)
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}

func TestNewLenCharsPanicsOnBadCharset(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for single character charset")
		}
	}()

	NewLenChars(10, []byte("a"))
}
