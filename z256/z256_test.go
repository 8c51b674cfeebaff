package z256

import (
	"bytes"
	"testing"
)

func TestAddSubRoundTrip(t *testing.T) {
	a := Z256{0x1111111111111111, 0x2222222222222222, 0x3333333333333333, 0x4444444444444444}
	b := Z256{0x5555555555555555, 0x6666666666666666, 0x7777777777777777, 0x0111111111111111}

	sum, _ := Add(a, b)
	diff, borrow := Sub(sum, b)
	if diff != a || borrow != 0 {
		t.Fatalf("Sub(Add(a,b),b) = %v, want %v", diff, a)
	}
}

func TestMulSmallOperands(t *testing.T) {
	a := Z256{7, 0, 0, 0}
	b := Z256{11, 0, 0, 0}
	z := Mul(a, b)
	if z[0] != 77 {
		for i := 1; i < 8; i++ {
			if z[i] != 0 {
				t.Fatalf("Mul(7,11) has nonzero high limb z[%d]=%x", i, z[i])
			}
		}
		t.Fatalf("Mul(7,11) low limb = %d, want 77", z[0])
	}
}

func TestCmpEqu(t *testing.T) {
	if Cmp(One, Two) >= 0 {
		t.Fatal("Cmp(1,2) should be negative")
	}
	if Equ(One, One) != 1 {
		t.Fatal("Equ(1,1) should be 1")
	}
	if IsZero(Zero) != 1 {
		t.Fatal("IsZero(0) should be 1")
	}
	if IsZero(One) != 0 {
		t.Fatal("IsZero(1) should be 0")
	}
}

func TestFromToBytesRoundTrip(t *testing.T) {
	want := Z256{0x0123456789abcdef, 0xfedcba9876543210, 0x1111222233334444, 0x5555666677778888}
	var buf [32]byte
	ToBytes(want, buf[:])
	got := FromBytes(buf[:])
	if got != want {
		t.Fatalf("FromBytes(ToBytes(x)) = %v, want %v", got, want)
	}
}

func TestGetBoothReconstructsScalar(t *testing.T) {
	k := Z256{0x1234567890abcdef, 0xfedcba0987654321, 0, 0}
	const w = 5
	n := (256 + w - 1) / w
	acc := Zero
	for i := n - 1; i >= 0; i-- {
		for j := 0; j < w; j++ {
			acc, _ = Add(acc, acc)
		}
		b := GetBooth(k, w, i)
		if b > 0 {
			acc, _ = Add(acc, Z256{uint64(b), 0, 0, 0})
		} else if b < 0 {
			acc, _ = Sub(acc, Z256{uint64(-b), 0, 0, 0})
		}
	}
	if acc != k {
		t.Fatalf("booth reconstruction = %v, want %v", acc, k)
	}
}

func TestToBitsMSBFirst(t *testing.T) {
	a := Z256{0, 0, 0, 0x8000000000000000}
	var bitsOut [256]byte
	ToBits(a, bitsOut[:])
	if bitsOut[0] != '1' {
		t.Fatalf("top bit of 2^255 should be 1, got %q", bitsOut[0])
	}
	if bytes.IndexByte(bitsOut[1:], '1') != -1 {
		t.Fatalf("only the top bit of 2^255 should be set")
	}
}
