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

func TestMulOverflowSafe(t *testing.T) {
	if got, ok := MulOverflowSafe(640, 480*3); !ok || got != 921600 {
		t.Fatalf("MulOverflowSafe(640,1440)=%d,%v want 921600,true", got, ok)
	}
	if got, ok := MulOverflowSafe(0, math.MaxInt); !ok || got != 0 {
		t.Fatalf("zero operand should give 0,true; got %d,%v", got, ok)
	}
	if _, ok := MulOverflowSafe(math.MaxInt/2, 3); ok {
		t.Fatalf("expected overflow")
	}
	if _, ok := MulOverflowSafe(-1, 3); ok {
		t.Fatalf("negative operand should be rejected")
	}
}

func TestCheckBlocks(t *testing.T) {
	end, err := CheckBlocks(100, 7, 6, 15)
	if err != nil || end != 97 {
		t.Fatalf("CheckBlocks(100,7,6,15)=%d,%v want 97,nil", end, err)
	}
	if _, err := CheckBlocks(100, 7, 7, 15); err == nil {
		t.Fatalf("expected bounds error when blocks run past the buffer")
	}
	if _, err := CheckBlocks(100, -1, 1, 1); err == nil {
		t.Fatalf("expected error for negative offset")
	}
	if _, err := CheckBlocks(100, 0, math.MaxInt, 2); err == nil {
		t.Fatalf("expected overflow error")
	}
}

func TestSlice(t *testing.T) {
	data := []int{0, 1, 2, 3, 4}
	if got, ok := Slice(data, 1, 3); !ok || len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("Slice returned unexpected result: %v, %v", got, ok)
	}
	if _, ok := Slice(data, 4, 2); ok {
		t.Fatalf("Slice should fail when extending beyond len")
	}
	if _, ok := Slice(data, -1, 1); ok {
		t.Fatalf("Slice should reject negative offset")
	}
	if _, ok := Slice(data, 1, -1); ok {
		t.Fatalf("Slice should reject negative length")
	}
}
