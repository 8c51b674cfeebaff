package z256

import "testing"

func fp12Rand(seed uint64) Fp12 {
	return Fp12{
		c0: fp4Rand(seed),
		c1: fp4Rand(seed + 4),
		c2: fp4Rand(seed + 8),
	}
}

func TestFp12AddSubNeg(t *testing.T) {
	a := fp12Rand(43)
	b := fp12Rand(47)
	sum := fp12Add(a, b)
	diff := fp12Sub(sum, b)
	if !fp12Equ(diff, a) {
		t.Fatalf("fp12Sub(fp12Add(a,b),b) != a")
	}
	if !fp12Equ(fp12Add(a, fp12Neg(a)), fp12Zero) {
		t.Fatalf("a + (-a) != 0")
	}
}

func TestFp12MulSqrConsistency(t *testing.T) {
	a := fp12Rand(53)
	if !fp12Equ(fp12Mul(a, a), fp12Sqr(a)) {
		t.Fatalf("fp12Mul(a,a) != fp12Sqr(a)")
	}
}

func TestFp12MulOneIsIdentity(t *testing.T) {
	a := fp12Rand(59)
	if !fp12Equ(fp12Mul(a, fp12One), a) {
		t.Fatalf("a * 1 != a")
	}
}

func TestFp12Inv(t *testing.T) {
	a := fp12Rand(61)
	inv, err := fp12Inv(a)
	if err != nil {
		t.Fatalf("fp12Inv: %v", err)
	}
	if !fp12Equ(fp12Mul(a, inv), fp12One) {
		t.Fatalf("a * a^-1 != 1")
	}
}

func TestFp12InvC2ZeroBranch(t *testing.T) {
	a := Fp12{c0: fp4Rand(67), c1: fp4Rand(71), c2: fp4Zero}
	inv, err := fp12Inv(a)
	if err != nil {
		t.Fatalf("fp12Inv (c2=0 branch): %v", err)
	}
	if !fp12Equ(fp12Mul(a, inv), fp12One) {
		t.Fatalf("a * a^-1 != 1 in c2=0 branch")
	}
}

func TestFp12InvZeroIsDegenerate(t *testing.T) {
	if _, err := fp12Inv(fp12Zero); err != ErrDegenerateInput {
		t.Fatalf("fp12Inv(0) error = %v, want ErrDegenerateInput", err)
	}
}

func TestFp12FrobeniusOrderTwelveIsIdentity(t *testing.T) {
	a := fp12Rand(73)
	x := a
	for i := 0; i < 12; i++ {
		x = fp12Frobenius(x)
	}
	if !fp12Equ(x, a) {
		t.Fatalf("frobenius^12(a) != a")
	}
}

func TestFp12Frobenius2MatchesTwice(t *testing.T) {
	a := fp12Rand(79)
	twice := fp12Frobenius(fp12Frobenius(a))
	if !fp12Equ(twice, fp12Frobenius2(a)) {
		t.Fatalf("frobenius(frobenius(a)) != frobenius2(a)")
	}
}

func TestFp12Frobenius6MatchesSixTimes(t *testing.T) {
	a := fp12Rand(83)
	x := a
	for i := 0; i < 6; i++ {
		x = fp12Frobenius(x)
	}
	if !fp12Equ(x, fp12Frobenius6(a)) {
		t.Fatalf("frobenius applied 6 times != frobenius6(a)")
	}
}

func TestFp12Pow(t *testing.T) {
	a := fp12Rand(89)
	cubed := fp12Pow(a, Z256{3, 0, 0, 0})
	want := fp12Mul(fp12Mul(a, a), a)
	if !fp12Equ(cubed, want) {
		t.Fatalf("fp12Pow(a,3) != a*a*a")
	}
}

func TestFp12FromToBytesRoundTrip(t *testing.T) {
	a := fp12Rand(97)
	var buf [384]byte
	Fp12ToBytes(a, buf[:])
	got, err := Fp12FromBytes(buf[:])
	if err != nil {
		t.Fatalf("Fp12FromBytes: %v", err)
	}
	if !fp12Equ(got, a) {
		t.Fatalf("Fp12FromBytes(Fp12ToBytes(a)) != a")
	}
}
