package z256

import "testing"

func TestFpHexRoundTrip(t *testing.T) {
	want := toMont(Z256{0xdeadbeef, 0xcafe, 3, 0})
	got, err := FpFromHex(FpToHex(want))
	if err != nil {
		t.Fatalf("FpFromHex: %v", err)
	}
	if got != want {
		t.Fatalf("FpFromHex(FpToHex(a)) = %v, want %v", got, want)
	}
}

func TestFp2HexRoundTrip(t *testing.T) {
	want := fp2Rand(101)
	got, err := Fp2FromHex(Fp2ToHex(want))
	if err != nil {
		t.Fatalf("Fp2FromHex: %v", err)
	}
	if !fp2Equ(got, want) {
		t.Fatalf("Fp2FromHex(Fp2ToHex(a)) != a")
	}
}

func TestFp12HexRoundTrip(t *testing.T) {
	want := fp12Rand(103)
	s := Fp12ToHex(want)
	got, err := Fp12FromHex(s)
	if err != nil {
		t.Fatalf("Fp12FromHex(%q...): %v", s[:16], err)
	}
	if !fp12Equ(got, want) {
		t.Fatalf("Fp12FromHex(Fp12ToHex(a)) != a")
	}
}

func TestFp12HexSeparatorOffsets(t *testing.T) {
	s := Fp12ToHex(fp12Rand(107))
	if s[259] != '_' || s[519] != '_' {
		t.Fatalf("Fp12ToHex separators at %q/%q, want '_'/'_'", s[259], s[519])
	}
	for _, i := range []int{259, 519} {
		bad := s[:i] + "0" + s[i+1:]
		if _, err := Fp12FromHex(bad); err != ErrInvalidEncoding {
			t.Fatalf("Fp12FromHex with corrupted separator at %d: err = %v, want ErrInvalidEncoding", i, err)
		}
	}
}

func TestPointHexRoundTrip(t *testing.T) {
	want := P1()
	got, err := PointFromHex(PointToHex(want))
	if err != nil {
		t.Fatalf("PointFromHex: %v", err)
	}
	if !PointEqu(got, want) {
		t.Fatalf("PointFromHex(PointToHex(P1)) != P1")
	}
}

func TestTwistPointHexRoundTrip(t *testing.T) {
	want := P2()
	got, err := TwistPointFromHex(TwistPointToHex(want))
	if err != nil {
		t.Fatalf("TwistPointFromHex: %v", err)
	}
	if !TwistPointEqu(got, want) {
		t.Fatalf("TwistPointFromHex(TwistPointToHex(P2)) != P2")
	}
}

func TestFromHexRejectsMalformed(t *testing.T) {
	if _, err := FromHex("0123"); err != ErrInvalidEncoding {
		t.Fatalf("short hex: err = %v, want ErrInvalidEncoding", err)
	}
	bad := "zz" + ToHex(One)[2:]
	if _, err := FromHex(bad); err != ErrInvalidEncoding {
		t.Fatalf("non-hex characters: err = %v, want ErrInvalidEncoding", err)
	}
}
