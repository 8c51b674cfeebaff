package z256

import "testing"

func TestMontRoundTrip(t *testing.T) {
	a := Z256{0x1234, 0x5678, 0x9abc, 0x1000}
	m := toMont(a)
	back := fromMont(m)
	if back != a {
		t.Fatalf("fromMont(toMont(a)) = %v, want %v", back, a)
	}
}

func TestMontMulByOneIsFromMont(t *testing.T) {
	a := toMont(Z256{42, 0, 0, 0})
	got := fpMontMul(a, One)
	want := fromMont(a)
	if got != want {
		t.Fatalf("fpMontMul(a,1) = %v, want fromMont(a) = %v", got, want)
	}
}

func TestFpAddSubNeg(t *testing.T) {
	a := toMont(Z256{7, 0, 0, 0})
	b := toMont(Z256{11, 0, 0, 0})
	sum := fpAdd(a, b)
	diff := fpSub(sum, b)
	if diff != a {
		t.Fatalf("fpSub(fpAdd(a,b),b) = %v, want %v", diff, a)
	}
	neg := fpNeg(a)
	if fpAdd(a, neg) != Zero {
		t.Fatalf("a + (-a) != 0")
	}
}

func TestFpDblTriDiv2(t *testing.T) {
	a := toMont(Z256{9, 0, 0, 0})
	dbl := fpDbl(a)
	if dbl != fpAdd(a, a) {
		t.Fatalf("fpDbl(a) != a+a")
	}
	tri := fpTri(a)
	if tri != fpAdd(dbl, a) {
		t.Fatalf("fpTri(a) != 2a+a")
	}
	half := fpDiv2(dbl)
	if half != a {
		t.Fatalf("fpDiv2(2a) = %v, want %v", half, a)
	}
}

func TestFpInv(t *testing.T) {
	a := toMont(Z256{123456789, 0, 0, 0})
	inv, err := fpInv(a)
	if err != nil {
		t.Fatalf("fpInv: %v", err)
	}
	prod := fpMontMul(a, inv)
	if prod != MontOne {
		t.Fatalf("a * a^-1 = %v, want MontOne", prod)
	}
}

func TestFpInvZeroIsDegenerate(t *testing.T) {
	if _, err := fpInv(Zero); err != ErrDegenerateInput {
		t.Fatalf("fpInv(0) error = %v, want ErrDegenerateInput", err)
	}
}

func TestFpFromToBytesRoundTrip(t *testing.T) {
	want := toMont(Z256{1, 2, 3, 0})
	var buf [32]byte
	FpToBytes(want, buf[:])
	got, err := FpFromBytes(buf[:])
	if err != nil {
		t.Fatalf("FpFromBytes: %v", err)
	}
	if got != want {
		t.Fatalf("FpFromBytes(FpToBytes(a)) = %v, want %v", got, want)
	}
}

func TestFpFromBytesRejectsNonCanonical(t *testing.T) {
	var buf [32]byte
	ToBytes(P, buf[:])
	if _, err := FpFromBytes(buf[:]); err != ErrNotCanonical {
		t.Fatalf("FpFromBytes(p) error = %v, want ErrNotCanonical", err)
	}
}
