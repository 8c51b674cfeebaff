package z256

import "testing"

func TestP1IsOnCurve(t *testing.T) {
	if !PointIsOnCurve(P1()) {
		t.Fatal("P1 is not on curve")
	}
}

func TestP1Coordinates(t *testing.T) {
	x, y := pointGetXY(P1())
	wantX := FromBytes(mustHex("93DE051D62BF718FF5ED0704487D01D6E1E4086909DC3280E8C4E4817C66DDDD"))
	wantY := FromBytes(mustHex("21FE8DDA4F21E607631065125C395BBC1C1C00CBFA6024350C464CD70A3EA616"))
	if fromMont(x) != wantX {
		t.Fatalf("x(P1) = %x, want %x", fromMont(x), wantX)
	}
	if fromMont(y) != wantY {
		t.Fatalf("y(P1) = %x, want %x", fromMont(y), wantY)
	}
}

func TestPointMulZeroOneAndNegation(t *testing.T) {
	p1 := P1()
	if !pointIsAtInfinity(PointMul(Zero, p1)) {
		t.Fatal("point_mul(0, P1) should be infinity")
	}
	if !PointEqu(PointMul(One, p1), p1) {
		t.Fatal("point_mul(1, P1) should be P1")
	}
	nMinusOne, _ := Sub(N, One)
	got := PointMul(nMinusOne, p1)
	if !PointEqu(got, PointNeg(p1)) {
		t.Fatal("point_mul(n-1, P1) should be -P1")
	}
}

func TestPointMulGeneratorMatchesGeneric(t *testing.T) {
	k := Z256{0x123456789abcdef0, 0xfedcba9876543210, 1, 0}
	p1 := P1()
	a := PointMul(k, p1)
	b := PointMulGenerator(k)
	if !PointEqu(a, b) {
		t.Fatal("point_mul_generator(k) != point_mul(k, P1)")
	}
}

func TestPointMulByOrderIsInfinity(t *testing.T) {
	if !pointIsAtInfinity(PointMul(N, P1())) {
		t.Fatal("point_mul(n, P1) should be infinity")
	}
}

func TestPointDblMatchesAdd(t *testing.T) {
	p1 := P1()
	dbl := PointDbl(p1)
	add := PointAdd(p1, p1)
	if !PointEqu(dbl, add) {
		t.Fatal("PointDbl(P) != PointAdd(P, P)")
	}
}

func TestPointUncompressedRoundTrip(t *testing.T) {
	p1 := P1()
	var buf [65]byte
	PointToUncompressedOctets(p1, buf[:])
	var buf2 [65]byte
	copy(buf2[:], buf[:])
	got, err := PointFromUncompressedOctets(buf2[:])
	if err != nil {
		t.Fatalf("PointFromUncompressedOctets: %v", err)
	}
	var buf3 [65]byte
	PointToUncompressedOctets(got, buf3[:])
	if buf != buf3 {
		t.Fatalf("round-trip encoding mismatch:\n got %x\nwant %x", buf3, buf)
	}
}

func mustHex(s string) []byte {
	b := make([]byte, len(s)/2)
	for i := 0; i < len(b); i++ {
		b[i] = hexNibble(s[2*i])<<4 | hexNibble(s[2*i+1])
	}
	return b
}

func hexNibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
