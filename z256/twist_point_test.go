package z256

import "testing"

func TestP2IsOnCurve(t *testing.T) {
	if !TwistPointIsOnCurve(P2()) {
		t.Fatal("P2 is not on curve")
	}
}

func TestTwistPointMulByOrderIsInfinity(t *testing.T) {
	if !twistPointIsAtInfinity(TwistPointMul(N, P2())) {
		t.Fatal("point_mul(n, P2) should be infinity")
	}
}

func TestTwistPointMulZeroOneNegation(t *testing.T) {
	p2 := P2()
	if !twistPointIsAtInfinity(TwistPointMul(Zero, p2)) {
		t.Fatal("twist_point_mul(0, P2) should be infinity")
	}
	if !TwistPointEqu(TwistPointMul(One, p2), p2) {
		t.Fatal("twist_point_mul(1, P2) should be P2")
	}
	nMinusOne, _ := Sub(N, One)
	got := TwistPointMul(nMinusOne, p2)
	if !TwistPointEqu(got, TwistPointNeg(p2)) {
		t.Fatal("twist_point_mul(n-1, P2) should be -P2")
	}
}

func TestTwistPointDblMatchesAddFull(t *testing.T) {
	p2 := P2()
	dbl := TwistPointDbl(p2)
	add := TwistPointAddFull(p2, p2)
	if !TwistPointEqu(dbl, add) {
		t.Fatal("TwistPointDbl(P) != TwistPointAddFull(P, P)")
	}
}

func TestTwistPointAddMatchesAddFullForAffine(t *testing.T) {
	p2 := P2()
	q := TwistPointDbl(p2)
	a := TwistPointAdd(q, p2)
	b := TwistPointAddFull(q, p2)
	if !TwistPointEqu(a, b) {
		t.Fatal("TwistPointAdd(q,affine p) != TwistPointAddFull(q,p)")
	}
}

func TestTwistFrobeniusEndomorphisms(t *testing.T) {
	p2 := P2()
	pi1 := twistPointPi1(p2)
	if !TwistPointIsOnCurve(TwistPoint{X: mustAffineX(pi1), Y: mustAffineY(pi1), Z: fp2One}) {
		t.Fatal("pi1(P2) left the curve")
	}
	negPi2 := twistPointNegPi2(p2)
	if !TwistPointEqu(negPi2, TwistPointNeg(twistPointPi2(p2))) {
		t.Fatal("neg_pi2(P) != -pi2(P)")
	}
}

func mustAffineX(p TwistPoint) Fp2 {
	x, _ := twistPointGetXY(p)
	return x
}

func mustAffineY(p TwistPoint) Fp2 {
	_, y := twistPointGetXY(p)
	return y
}

func TestTwistPointUncompressedRoundTrip(t *testing.T) {
	p2 := P2()
	var buf [129]byte
	TwistPointToUncompressedOctets(p2, buf[:])
	got, err := TwistPointFromUncompressedOctets(buf[:])
	if err != nil {
		t.Fatalf("TwistPointFromUncompressedOctets: %v", err)
	}
	var buf2 [129]byte
	TwistPointToUncompressedOctets(got, buf2[:])
	if buf != buf2 {
		t.Fatalf("round-trip encoding mismatch:\n got %x\nwant %x", buf2, buf)
	}
}
