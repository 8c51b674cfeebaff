package z256

import "testing"

func fp4Rand(seed uint64) Fp4 {
	return Fp4{b0: fp2Rand(seed), b1: fp2Rand(seed + 2)}
}

func TestFp4AddSubNeg(t *testing.T) {
	a := fp4Rand(19)
	b := fp4Rand(23)
	sum := fp4Add(a, b)
	diff := fp4Sub(sum, b)
	if !fp4Equ(diff, a) {
		t.Fatalf("fp4Sub(fp4Add(a,b),b) != a")
	}
	if !fp4IsZero(fp4Add(a, fp4Neg(a))) {
		t.Fatalf("a + (-a) != 0")
	}
}

func TestFp4MulSqrConsistency(t *testing.T) {
	a := fp4Rand(29)
	if !fp4Equ(fp4Mul(a, a), fp4Sqr(a)) {
		t.Fatalf("fp4Mul(a,a) != fp4Sqr(a)")
	}
}

func TestFp4Inv(t *testing.T) {
	a := fp4Rand(31)
	inv, err := fp4Inv(a)
	if err != nil {
		t.Fatalf("fp4Inv: %v", err)
	}
	if !fp4Equ(fp4Mul(a, inv), fp4One) {
		t.Fatalf("a * a^-1 != 1")
	}
}

func TestFp4FrobeniusOrder(t *testing.T) {
	a := fp4Rand(37)
	twice := fp4Frobenius(fp4Frobenius(a))
	if !fp4Equ(twice, fp4Frobenius2(a)) {
		t.Fatalf("frobenius(frobenius(a)) != frobenius2(a)")
	}
	four := fp4Frobenius2(fp4Frobenius2(a))
	if !fp4Equ(four, a) {
		t.Fatalf("frobenius2(frobenius2(a)) != a (frobenius^4 should be identity on fp4)")
	}
}

func TestFp4FromToBytesRoundTrip(t *testing.T) {
	a := fp4Rand(41)
	var buf [128]byte
	Fp4ToBytes(a, buf[:])
	got, err := Fp4FromBytes(buf[:])
	if err != nil {
		t.Fatalf("Fp4FromBytes: %v", err)
	}
	if !fp4Equ(got, a) {
		t.Fatalf("Fp4FromBytes(Fp4ToBytes(a)) != a")
	}
}
