package z256

// TwistPoint is a point on the sextic twist E'(F_p^2): y^2 = x^3 + 5*u, in
// Jacobian coordinates (X, Y, Z) over Fp2. Z=(0,0) denotes infinity.
// Formulas mirror Point's, with Fp2 substituted for Fp and a full
// (non-mixed) addition for the general case.
type TwistPoint struct {
	X, Y, Z Fp2
}

func TwistPointInfinity() TwistPoint {
	return TwistPoint{X: fp2One, Y: fp2One, Z: fp2Zero}
}

func twistPointIsAtInfinity(p TwistPoint) bool {
	return fp2IsZero(p.Z)
}

// twistPointGetXY recovers affine (x, y) in Montgomery form. Returns
// immediately when Z is already one.
func twistPointGetXY(p TwistPoint) (x, y Fp2) {
	if fp2IsOne(p.Z) {
		return p.X, p.Y
	}
	zInv, _ := fp2Inv(p.Z)
	y = fp2Mul(p.Y, zInv)
	zInv2 := fp2Sqr(zInv)
	x = fp2Mul(p.X, zInv2)
	y = fp2Mul(y, zInv2)
	return x, y
}

func TwistPointEqu(p, q TwistPoint) bool {
	t1 := fp2Sqr(p.Z)
	t2 := fp2Sqr(q.Z)
	t3 := fp2Mul(p.X, t2)
	t4 := fp2Mul(q.X, t1)
	if !fp2Equ(t3, t4) {
		return false
	}
	t1 = fp2Mul(t1, p.Z)
	t2 = fp2Mul(t2, q.Z)
	t3 = fp2Mul(p.Y, t2)
	t4 = fp2Mul(q.Y, t1)
	return fp2Equ(t3, t4)
}

// TwistPointIsOnCurve checks y^2 == x^3 + 5u, or the Jacobian form
// Y^2 == X^3 + 5u*Z^6.
func TwistPointIsOnCurve(p TwistPoint) bool {
	var t0, t1, t2 Fp2
	if fp2IsOne(p.Z) {
		t0 = fp2Sqr(p.Y)
		t1 = fp2Sqr(p.X)
		t1 = fp2Mul(t1, p.X)
		t1 = fp2Add(t1, Fp2Mont5U)
	} else {
		t0 = fp2Sqr(p.X)
		t0 = fp2Mul(t0, p.X)
		t1 = fp2Sqr(p.Z)
		t2 = fp2Sqr(t1)
		t1 = fp2Mul(t1, t2)
		t1 = fp2Mul(t1, Fp2Mont5U)
		t1 = fp2Add(t0, t1)
		t0 = fp2Sqr(p.Y)
	}
	return fp2Equ(t0, t1)
}

func TwistPointNeg(p TwistPoint) TwistPoint {
	return TwistPoint{X: p.X, Y: fp2Neg(p.Y), Z: p.Z}
}

// TwistPointDbl doubles P; identical derivation to PointDbl with Fp2
// operands.
func TwistPointDbl(p TwistPoint) TwistPoint {
	if twistPointIsAtInfinity(p) {
		return p
	}
	t2 := fp2Sqr(p.X)
	t2 = fp2Tri(t2)
	y3 := fp2Dbl(p.Y)
	z3 := fp2Mul(y3, p.Z)
	y3 = fp2Sqr(y3)
	t3 := fp2Mul(y3, p.X)
	y3 = fp2Sqr(y3)
	y3 = fp2Div2(y3)
	x3 := fp2Sqr(t2)
	t1 := fp2Dbl(t3)
	x3 = fp2Sub(x3, t1)
	t1 = fp2Sub(t3, x3)
	t1 = fp2Mul(t1, t2)
	y3 = fp2Sub(t1, y3)
	return TwistPoint{X: x3, Y: y3, Z: z3}
}

// TwistPointAdd is mixed addition assuming Q is affine (Qz=1); the
// special cases mirror PointAdd's.
func TwistPointAdd(p, q TwistPoint) TwistPoint {
	if twistPointIsAtInfinity(q) {
		return p
	}
	if twistPointIsAtInfinity(p) {
		return q
	}
	x2, y2 := q.X, q.Y

	t1 := fp2Sqr(p.Z)
	t2 := fp2Mul(t1, p.Z)
	t1 = fp2Mul(t1, x2)
	t2 = fp2Mul(t2, y2)
	t1 = fp2Sub(t1, p.X)
	t2 = fp2Sub(t2, p.Y)

	if fp2IsZero(t1) {
		if fp2IsZero(t2) {
			return TwistPointDbl(TwistPoint{X: x2, Y: y2, Z: fp2One})
		}
		return TwistPointInfinity()
	}

	z3 := fp2Mul(p.Z, t1)
	t3 := fp2Sqr(t1)
	t4 := fp2Mul(t3, t1)
	t3 = fp2Mul(t3, p.X)
	t1 = fp2Dbl(t3)
	x3 := fp2Sqr(t2)
	x3 = fp2Sub(x3, t1)
	x3 = fp2Sub(x3, t4)
	t3 = fp2Sub(t3, x3)
	t3 = fp2Mul(t3, t2)
	t4 = fp2Mul(t4, p.Y)
	y3 := fp2Sub(t3, t4)
	return TwistPoint{X: x3, Y: y3, Z: z3}
}

// TwistPointAddFull handles two general (non-affine) Jacobian points via
// the classical Cohen-Miyaji-Ono formulas, with the equal-x branches
// (double, or infinity when also equal-y-negated) checked first.
func TwistPointAddFull(p, q TwistPoint) TwistPoint {
	if twistPointIsAtInfinity(q) {
		return p
	}
	if twistPointIsAtInfinity(p) {
		return q
	}

	t1 := fp2Sqr(p.Z)
	t2 := fp2Sqr(q.Z)
	t3 := fp2Mul(q.X, t1)
	t4 := fp2Mul(p.X, t2)
	t5 := fp2Add(t3, t4)
	t3 = fp2Sub(t3, t4)
	t1 = fp2Mul(t1, p.Z)
	t1 = fp2Mul(t1, q.Y)
	t2 = fp2Mul(t2, q.Z)
	t2 = fp2Mul(t2, p.Y)
	t6 := fp2Add(t1, t2)
	t1 = fp2Sub(t1, t2)

	if fp2IsZero(t1) && fp2IsZero(t3) {
		return TwistPointDbl(p)
	}
	if fp2IsZero(t1) && fp2IsZero(t6) {
		return TwistPointInfinity()
	}

	t6 = fp2Sqr(t1)
	t7 := fp2Mul(t3, p.Z)
	t7 = fp2Mul(t7, q.Z)
	t8 := fp2Sqr(t3)
	t5 = fp2Mul(t5, t8)
	t3 = fp2Mul(t3, t8)
	t4 = fp2Mul(t4, t8)
	t6 = fp2Sub(t6, t5)
	t4 = fp2Sub(t4, t6)
	t1 = fp2Mul(t1, t4)
	t2 = fp2Mul(t2, t3)
	t1 = fp2Sub(t1, t2)

	return TwistPoint{X: t6, Y: t1, Z: t7}
}

func TwistPointSub(p, q TwistPoint) TwistPoint {
	return TwistPointAddFull(p, TwistPointNeg(q))
}

// TwistPointMul computes k*P by naive left-to-right double-and-add over
// the 256 bits of k. The twist carries no windowed precomputation: it is
// only ever scaled outside the pairing's hot loop.
func TwistPointMul(k Z256, p TwistPoint) TwistPoint {
	var kbits [256]byte
	ToBits(k, kbits[:])
	q := TwistPointInfinity()
	for i := 0; i < 256; i++ {
		q = TwistPointDbl(q)
		if kbits[i] == '1' {
			q = TwistPointAddFull(q, p)
		}
	}
	return q
}

// TwistPointMulGenerator computes k*P2.
func TwistPointMulGenerator(k Z256) TwistPoint {
	return TwistPointMul(k, P2())
}

// P2 returns the twist generator in Jacobian (Montgomery) coordinates.
func P2() TwistPoint {
	return TwistPoint{
		X: Fp2{a0: MontP2Xa0, a1: MontP2Xa1},
		Y: Fp2{a0: MontP2Ya0, a1: MontP2Ya1},
		Z: fp2One,
	}
}

// Ppubs returns the fixed system public point on the twist.
func Ppubs() TwistPoint {
	return TwistPoint{
		X: Fp2{a0: MontPpubsXa0, a1: MontPpubsXa1},
		Y: Fp2{a0: MontPpubsYa0, a1: MontPpubsYa1},
		Z: fp2One,
	}
}

// twistPointPi1 is the p-power Frobenius on the twist: conjugate all
// three coordinates, then rescale Z by the constant c1.
func twistPointPi1(p TwistPoint) TwistPoint {
	x := fp2Conjugate(p.X)
	y := fp2Conjugate(p.Y)
	z := fp2Conjugate(p.Z)
	z = fp2MulFp(z, TwistPi1C)
	return TwistPoint{X: x, Y: y, Z: z}
}

// twistPointPi2 is the p^2-power Frobenius on the twist: X, Y copied, Z
// rescaled by the constant c2.
func twistPointPi2(p TwistPoint) TwistPoint {
	z := fp2MulFp(p.Z, TwistPi2C)
	return TwistPoint{X: p.X, Y: p.Y, Z: z}
}

// twistPointNegPi2 applies pi2 with Y negated: X copy, Y negated, Z*c2.
func twistPointNegPi2(p TwistPoint) TwistPoint {
	z := fp2MulFp(p.Z, TwistPi2C)
	return TwistPoint{X: p.X, Y: fp2Neg(p.Y), Z: z}
}

// TwistPointToUncompressedOctets encodes P as 0x04 || x1 || x0 || y1 || y0,
// 129 bytes, the u-coefficient of each coordinate first.
func TwistPointToUncompressedOctets(p TwistPoint, out []byte) {
	x, y := twistPointGetXY(p)
	out[0] = 0x04
	Fp2ToBytes(x, out[1:65])
	Fp2ToBytes(y, out[65:129])
}

// TwistPointFromUncompressedOctets decodes 129 bytes and verifies the
// result is on the curve.
func TwistPointFromUncompressedOctets(buf []byte) (TwistPoint, error) {
	if len(buf) != 129 || buf[0] != 0x04 {
		return TwistPoint{}, ErrInvalidEncoding
	}
	x, err := Fp2FromBytes(buf[1:65])
	if err != nil {
		return TwistPoint{}, err
	}
	y, err := Fp2FromBytes(buf[65:129])
	if err != nil {
		return TwistPoint{}, err
	}
	p := TwistPoint{X: x, Y: y, Z: fp2One}
	if !TwistPointIsOnCurve(p) {
		return TwistPoint{}, ErrNotOnCurve
	}
	return p, nil
}
