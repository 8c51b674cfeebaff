package z256

import "testing"

func fp2Rand(seed uint64) Fp2 {
	return Fp2{a0: toMont(Z256{seed, 0, 0, 0}), a1: toMont(Z256{seed + 1, 0, 0, 0})}
}

func TestFp2AddSubNeg(t *testing.T) {
	a := fp2Rand(3)
	b := fp2Rand(5)
	sum := fp2Add(a, b)
	diff := fp2Sub(sum, b)
	if !fp2Equ(diff, a) {
		t.Fatalf("fp2Sub(fp2Add(a,b),b) != a")
	}
	if !fp2IsZero(fp2Add(a, fp2Neg(a))) {
		t.Fatalf("a + (-a) != 0")
	}
}

func TestFp2MulSqrConsistency(t *testing.T) {
	a := fp2Rand(7)
	if !fp2Equ(fp2Mul(a, a), fp2Sqr(a)) {
		t.Fatalf("fp2Mul(a,a) != fp2Sqr(a)")
	}
}

func TestFp2Inv(t *testing.T) {
	a := fp2Rand(11)
	inv, err := fp2Inv(a)
	if err != nil {
		t.Fatalf("fp2Inv: %v", err)
	}
	if !fp2Equ(fp2Mul(a, inv), fp2One) {
		t.Fatalf("a * a^-1 != 1")
	}
}

func TestFp2ConjugateInvolution(t *testing.T) {
	a := fp2Rand(13)
	if !fp2Equ(fp2Conjugate(fp2Conjugate(a)), a) {
		t.Fatalf("conjugate is not an involution")
	}
}

func TestFp2FromToBytesRoundTrip(t *testing.T) {
	a := fp2Rand(17)
	var buf [64]byte
	Fp2ToBytes(a, buf[:])
	got, err := Fp2FromBytes(buf[:])
	if err != nil {
		t.Fatalf("Fp2FromBytes: %v", err)
	}
	if !fp2Equ(got, a) {
		t.Fatalf("Fp2FromBytes(Fp2ToBytes(a)) != a")
	}
}
