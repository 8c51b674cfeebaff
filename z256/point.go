package z256

// Point is a point on E(F_p): y^2 = x^3 + 5, in Jacobian coordinates
// (X, Y, Z) with affine (x, y) = (X/Z^2, Y/Z^3). Z=0 denotes infinity.
type Point struct {
	X, Y, Z Fp
}

// PointAffine is a point given only by its affine coordinates, used for
// the fixed-base precomputation table.
type PointAffine struct {
	X, Y Fp
}

// PointInfinity returns the canonical point at infinity, (1, 1, 0) in
// Montgomery form.
func PointInfinity() Point {
	return Point{X: MontOne, Y: MontOne, Z: Zero}
}

func pointIsAtInfinity(p Point) bool {
	return IsZero(p.Z) == 1
}

func pointCopyAffine(p PointAffine) Point {
	return Point{X: p.X, Y: p.Y, Z: MontOne}
}

// pointGetXY recovers affine (x, y), both in Montgomery form, from a
// Jacobian point. Returns immediately when Z is already one.
func pointGetXY(p Point) (x, y Fp) {
	if Equ(p.Z, MontOne) == 1 {
		return p.X, p.Y
	}
	zInv, _ := fpInv(p.Z)
	y = fpMontMul(p.Y, zInv)
	zInv2 := fpMontSqr(zInv)
	x = fpMontMul(p.X, zInv2)
	y = fpMontMul(y, zInv2)
	return x, y
}

// PointEqu compares two Jacobian points by cross-multiplying out the Z
// factors: P.X*Q.Z^2 == Q.X*P.Z^2 and P.Y*Q.Z^3 == Q.Y*P.Z^3.
func PointEqu(p, q Point) bool {
	t1 := fpMontSqr(p.Z)
	t2 := fpMontSqr(q.Z)
	t3 := fpMontMul(p.X, t2)
	t4 := fpMontMul(q.X, t1)
	if Equ(t3, t4) != 1 {
		return false
	}
	t1 = fpMontMul(t1, p.Z)
	t2 = fpMontMul(t2, q.Z)
	t3 = fpMontMul(p.Y, t2)
	t4 = fpMontMul(q.Y, t1)
	return Equ(t3, t4) == 1
}

// PointIsOnCurve checks y^2 == x^3 + 5, or the Jacobian form
// Y^2 == X^3 + 5*Z^6.
func PointIsOnCurve(p Point) bool {
	var t0, t1, t2 Fp
	if Equ(p.Z, MontOne) == 1 {
		t0 = fpMontSqr(p.Y)
		t1 = fpMontSqr(p.X)
		t1 = fpMontMul(t1, p.X)
		t1 = fpAdd(t1, MontFive)
	} else {
		t0 = fpMontSqr(p.X)
		t0 = fpMontMul(t0, p.X)
		t1 = fpMontSqr(p.Z)
		t2 = fpMontSqr(t1)
		t1 = fpMontMul(t1, t2)
		t1 = fpMontMul(t1, MontFive)
		t1 = fpAdd(t0, t1)
		t0 = fpMontSqr(p.Y)
	}
	return Equ(t0, t1) == 1
}

// PointDbl doubles P, exploiting a=0: S=4XY^2, M=3X^2, X'=M^2-2S,
// Y'=M*(S-X')-8Y^4, Z'=2YZ.
func PointDbl(p Point) Point {
	if pointIsAtInfinity(p) {
		return p
	}
	t2 := fpMontSqr(p.X)
	t2 = fpTri(t2)
	y3 := fpDbl(p.Y)
	z3 := fpMontMul(y3, p.Z)
	y3 = fpMontSqr(y3)
	t3 := fpMontMul(y3, p.X)
	y3 = fpMontSqr(y3)
	y3 = fpDiv2(y3)
	x3 := fpMontSqr(t2)
	t1 := fpDbl(t3)
	x3 = fpSub(x3, t1)
	t1 = fpSub(t3, x3)
	t1 = fpMontMul(t1, t2)
	y3 = fpSub(t1, y3)
	return Point{X: x3, Y: y3, Z: z3}
}

// PointAdd is mixed addition: Q is normalized to affine first, then the
// standard Bernstein-Lange formulas apply, with the special cases checked
// in order: Q infinite, P infinite, equal-x (double or infinity).
func PointAdd(p, q Point) Point {
	if pointIsAtInfinity(q) {
		return p
	}
	if pointIsAtInfinity(p) {
		return pointNormalize(q)
	}
	x2, y2 := pointGetXY(q)

	t1 := fpMontSqr(p.Z)
	t2 := fpMontMul(t1, p.Z)
	t1 = fpMontMul(t1, x2)
	t2 = fpMontMul(t2, y2)
	t1 = fpSub(t1, p.X)
	t2 = fpSub(t2, p.Y)

	if IsZero(t1) == 1 {
		if IsZero(t2) == 1 {
			return PointDbl(pointCopyAffine(PointAffine{X: x2, Y: y2}))
		}
		return PointInfinity()
	}

	z3 := fpMontMul(p.Z, t1)
	t3 := fpMontSqr(t1)
	t4 := fpMontMul(t3, t1)
	t3 = fpMontMul(t3, p.X)
	t1 = fpDbl(t3)
	x3 := fpMontSqr(t2)
	x3 = fpSub(x3, t1)
	x3 = fpSub(x3, t4)
	t3 = fpSub(t3, x3)
	t3 = fpMontMul(t3, t2)
	t4 = fpMontMul(t4, p.Y)
	y3 := fpSub(t3, t4)
	return Point{X: x3, Y: y3, Z: z3}
}

// pointNormalize re-expresses a point in Jacobian form with affine (x, y)
// recovered, used when Add's "P infinite" branch must return Q as a
// Jacobian value with Z=1.
func pointNormalize(p Point) Point {
	x, y := pointGetXY(p)
	return Point{X: x, Y: y, Z: MontOne}
}

func PointNeg(p Point) Point {
	return Point{X: p.X, Y: fpNeg(p.Y), Z: p.Z}
}

func PointSub(p, q Point) Point {
	return PointAdd(p, PointNeg(q))
}

func pointDblX5(p Point) Point {
	for i := 0; i < 5; i++ {
		p = PointDbl(p)
	}
	return p
}

func pointAddAffine(p Point, q PointAffine) Point {
	return PointAdd(p, pointCopyAffine(q))
}

func pointSubAffine(p Point, q PointAffine) Point {
	return PointSub(p, pointCopyAffine(q))
}

// PointMul computes k*P via a 5-bit signed Booth window: a fixed addition
// chain builds T[i] = (i+1)*P for i in [0,15], then windows from the most
// significant down apply 5 doublings plus an add/sub.
func PointMul(k Z256, p Point) Point {
	const windowSize = 5
	var t [16]Point
	t[0] = p
	t[1] = PointDbl(t[0])
	t[3] = PointDbl(t[1])
	t[7] = PointDbl(t[3])
	t[15] = PointDbl(t[7])
	t[2] = PointAdd(t[1], p)
	t[5] = PointDbl(t[2])
	t[11] = PointDbl(t[5])
	t[4] = PointAdd(t[2], t[1])
	t[9] = PointDbl(t[4])
	t[6] = PointAdd(t[3], t[2])
	t[13] = PointDbl(t[6])
	t[8] = PointAdd(t[3], t[4])
	t[10] = PointAdd(t[5], t[4])
	t[12] = PointAdd(t[6], t[5])
	t[14] = PointAdd(t[7], t[6])

	n := (256 + windowSize - 1) / windowSize
	var r Point
	infinity := true
	for i := n - 1; i >= 0; i-- {
		booth := GetBooth(k, windowSize, i)
		if infinity {
			if booth != 0 {
				r = selectBoothTerm(t[:], booth)
				infinity = false
			}
			continue
		}
		r = pointDblX5(r)
		if booth > 0 {
			r = PointAdd(r, t[booth-1])
		} else if booth < 0 {
			r = PointSub(r, t[-booth-1])
		}
	}
	if infinity {
		return PointInfinity()
	}
	return r
}

// selectBoothTerm returns T[|booth|-1], negated if booth is negative; used
// to seed the accumulator on the first nonzero window.
func selectBoothTerm(t []Point, booth int32) Point {
	if booth > 0 {
		return t[booth-1]
	}
	return PointNeg(t[-booth-1])
}

// PointMulGenerator computes k*P1 using the fixed-base precomputation
// table: window size 7, table[i][j] = (j+1)*2^(7i)*P1.
func PointMulGenerator(k Z256) Point {
	const windowSize = 7
	n := (256 + windowSize - 1) / windowSize
	var r Point
	infinity := true
	for i := n - 1; i >= 0; i-- {
		booth := GetBooth(k, windowSize, i)
		if infinity {
			if booth != 0 {
				r = pointCopyAffine(selectGenTerm(i, booth))
				infinity = false
			}
			continue
		}
		if booth > 0 {
			r = pointAddAffine(r, generatorTable[i][booth-1])
		} else if booth < 0 {
			r = pointSubAffine(r, generatorTable[i][-booth-1])
		}
	}
	if infinity {
		return PointInfinity()
	}
	return r
}

func selectGenTerm(i int, booth int32) PointAffine {
	if booth > 0 {
		return generatorTable[i][booth-1]
	}
	a := generatorTable[i][-booth-1]
	return PointAffine{X: a.X, Y: fpNeg(a.Y)}
}

// PointToUncompressedOctets encodes P as 0x04 || x || y, 65 bytes.
func PointToUncompressedOctets(p Point, out []byte) {
	x, y := pointGetXY(p)
	out[0] = 0x04
	FpToBytes(x, out[1:33])
	FpToBytes(y, out[33:65])
}

// PointFromUncompressedOctets decodes 65 bytes and verifies the result is
// on the curve.
func PointFromUncompressedOctets(buf []byte) (Point, error) {
	if len(buf) != 65 || buf[0] != 0x04 {
		return Point{}, ErrInvalidEncoding
	}
	x, err := FpFromBytes(buf[1:33])
	if err != nil {
		return Point{}, err
	}
	y, err := FpFromBytes(buf[33:65])
	if err != nil {
		return Point{}, err
	}
	p := Point{X: x, Y: y, Z: MontOne}
	if !PointIsOnCurve(p) {
		return Point{}, ErrNotOnCurve
	}
	return p, nil
}

// P1 returns the curve generator in Jacobian (Montgomery) coordinates.
func P1() Point {
	return Point{X: MontP1X, Y: MontP1Y, Z: MontOne}
}
