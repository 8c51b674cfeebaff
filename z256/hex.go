package z256

import "encoding/hex"

// Hex constructors and serializers for every tower level and both point
// types. Tower encodings separate sub-elements with '_', high-degree
// coefficient first.

// FromHex decodes 64 hex characters (big-endian, no 0x prefix) as a plain
// (non-Montgomery) Z256 value.
func FromHex(s string) (Z256, error) {
	if len(s) != 64 {
		return Z256{}, ErrInvalidEncoding
	}
	buf, err := hex.DecodeString(s)
	if err != nil {
		return Z256{}, ErrInvalidEncoding
	}
	return FromBytes(buf), nil
}

// ToHex encodes a as 64 lowercase hex characters, big-endian.
func ToHex(a Z256) string {
	var buf [32]byte
	ToBytes(a, buf[:])
	return hex.EncodeToString(buf[:])
}

// FpFromHex decodes 64 hex characters as a canonical Fp element, returning
// it in Montgomery form.
func FpFromHex(s string) (Fp, error) {
	a, err := FromHex(s)
	if err != nil {
		return Fp{}, err
	}
	if Cmp(a, P) >= 0 {
		return Fp{}, ErrNotCanonical
	}
	return toMont(a), nil
}

// FpToHex encodes a (Montgomery form) as 64 hex characters in plain form.
func FpToHex(a Fp) string {
	return ToHex(fromMont(a))
}

// Fp2FromHex decodes 129 hex characters: a1 (64 hex) || separator
// (1 byte, not validated) || a0 (64 hex).
func Fp2FromHex(s string) (Fp2, error) {
	if len(s) != 129 {
		return Fp2{}, ErrInvalidEncoding
	}
	a1, err := FpFromHex(s[0:64])
	if err != nil {
		return Fp2{}, err
	}
	a0, err := FpFromHex(s[65:129])
	if err != nil {
		return Fp2{}, err
	}
	return Fp2{a0: a0, a1: a1}, nil
}

// Fp2ToHex encodes a as 129 hex characters: a1 || '_' || a0.
func Fp2ToHex(a Fp2) string {
	return FpToHex(a.a1) + "_" + FpToHex(a.a0)
}

// Fp4FromHex decodes 259 hex characters: b1 (129 hex) || separator
// (checked) || b0 (129 hex).
func Fp4FromHex(s string) (Fp4, error) {
	if len(s) != 259 || s[129] != '_' {
		return Fp4{}, ErrInvalidEncoding
	}
	b1, err := Fp2FromHex(s[0:129])
	if err != nil {
		return Fp4{}, err
	}
	b0, err := Fp2FromHex(s[130:259])
	if err != nil {
		return Fp4{}, err
	}
	return Fp4{b0: b0, b1: b1}, nil
}

// Fp4ToHex encodes a as 259 hex characters: b1 || '_' || b0.
func Fp4ToHex(a Fp4) string {
	return Fp2ToHex(a.b1) + "_" + Fp2ToHex(a.b0)
}

// Fp12FromHex decodes 3*259+2 = 779 characters: c2 (259 hex) ||
// separator || c1 (259 hex) || separator || c0 (259 hex). Both separators
// are validated.
func Fp12FromHex(s string) (Fp12, error) {
	const chunk = 259
	if len(s) != chunk*3+2 || s[chunk] != '_' || s[2*chunk+1] != '_' {
		return Fp12{}, ErrInvalidEncoding
	}
	c2, err := Fp4FromHex(s[0:chunk])
	if err != nil {
		return Fp12{}, err
	}
	c1, err := Fp4FromHex(s[chunk+1 : 2*chunk+1])
	if err != nil {
		return Fp12{}, err
	}
	c0, err := Fp4FromHex(s[2*chunk+2 : 3*chunk+2])
	if err != nil {
		return Fp12{}, err
	}
	return Fp12{c0: c0, c1: c1, c2: c2}, nil
}

// Fp12ToHex encodes a as c2 || '_' || c1 || '_' || c0.
func Fp12ToHex(a Fp12) string {
	return Fp4ToHex(a.c2) + "_" + Fp4ToHex(a.c1) + "_" + Fp4ToHex(a.c0)
}

// PointFromHex decodes 129 hex characters: x (64 hex) || separator
// (unchecked) || y (64 hex), producing an affine (Z=1) point.
func PointFromHex(s string) (Point, error) {
	if len(s) != 129 {
		return Point{}, ErrInvalidEncoding
	}
	x, err := FpFromHex(s[0:64])
	if err != nil {
		return Point{}, err
	}
	y, err := FpFromHex(s[65:129])
	if err != nil {
		return Point{}, err
	}
	p := Point{X: x, Y: y, Z: MontOne}
	if !PointIsOnCurve(p) {
		return Point{}, ErrNotOnCurve
	}
	return p, nil
}

// PointToHex encodes P's affine coordinates as x || '_' || y.
func PointToHex(p Point) string {
	x, y := pointGetXY(p)
	return FpToHex(x) + "_" + FpToHex(y)
}

// TwistPointFromHex decodes 259 hex characters: x (129 hex) || separator
// (unchecked) || y (129 hex), producing an affine (Z=1) twist point.
func TwistPointFromHex(s string) (TwistPoint, error) {
	if len(s) != 259 {
		return TwistPoint{}, ErrInvalidEncoding
	}
	x, err := Fp2FromHex(s[0:129])
	if err != nil {
		return TwistPoint{}, err
	}
	y, err := Fp2FromHex(s[130:259])
	if err != nil {
		return TwistPoint{}, err
	}
	p := TwistPoint{X: x, Y: y, Z: fp2One}
	if !TwistPointIsOnCurve(p) {
		return TwistPoint{}, ErrNotOnCurve
	}
	return p, nil
}

// TwistPointToHex encodes P's affine coordinates as x || '_' || y.
func TwistPointToHex(p TwistPoint) string {
	x, y := twistPointGetXY(p)
	return Fp2ToHex(x) + "_" + Fp2ToHex(y)
}
