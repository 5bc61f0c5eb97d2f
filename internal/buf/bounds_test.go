package buf

import (
	"math"
	"testing"
)

func TestAddOverflowSafe(t *testing.T) {
	if sum, ok := AddOverflowSafe(10, 5); !ok || sum != 15 {
		t.Fatalf("AddOverflowSafe(10,5)=%d,%v want 15,true", sum, ok)
	}
	if _, ok := AddOverflowSafe(math.MaxInt, 1); ok {
		t.Fatalf("expected overflow when adding to MaxInt")
	}
	if _, ok := AddOverflowSafe(math.MinInt, -1); ok {
		t.Fatalf("expected underflow when subtracting from MinInt")
	}
}

func TestSliceAndHas(t *testing.T) {
	// length=3, "tEXt", 3 data bytes, truncated CRC
	chunk := []byte{0, 0, 0, 3, 't', 'E', 'X', 't', 'a', 'b', 'c', 0xde, 0xad}

	typ, ok := Slice(chunk, 4, 4)
	if !ok || string(typ) != "tEXt" {
		t.Fatalf("Slice(type) = %q, %v", typ, ok)
	}
	if _, ok := Slice(chunk, 11, 4); ok {
		t.Fatalf("Slice should fail when the CRC extends beyond len")
	}
	if Has(chunk, 8, 1<<20) {
		t.Fatalf("Has should be false for a huge declared length")
	}
	if !Has(chunk, 8, 3) {
		t.Fatalf("Has should be true for the data range")
	}
	if _, ok := Slice(chunk, -1, 1); ok {
		t.Fatalf("Slice should reject negative offset")
	}
	if _, ok := Slice(chunk, 1, -1); ok {
		t.Fatalf("Slice should reject negative length")
	}
	if _, ok := Slice(chunk, 1, math.MaxInt); ok {
		t.Fatalf("Slice should reject overflowing length")
	}
}
