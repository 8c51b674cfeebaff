package z256

// Optimal-ate pairing: Miller loop over a fixed signed-ternary-coded
// scalar, line/tangent evaluations, and the three-step final
// exponentiation.

// sparseLine holds the four nonzero Fp2 coefficients that a tangent or
// line evaluation produces.
type sparseLine struct {
	a0, a1, a4, b1 Fp2
}

// toFp12 merges the sparse coefficients into their num/den Fp12
// positions: num.c0.b0, num.c0.b1, num.c2.b0, den.c0.b1.
func (l sparseLine) toFp12() (num, den Fp12) {
	num = Fp12{
		c0: Fp4{b0: l.a0, b1: l.a1},
		c2: Fp4{b0: l.a4},
	}
	den = Fp12{
		c0: Fp4{b1: l.b1},
	}
	return num, den
}

// abits is the fixed signed-ternary expansion of the SM9 optimal-ate loop
// parameter: digits in {0,1,2}, where 2 denotes -1.
const abits = "00100000000000000000000000000000000000010000101100020200101000020"

// evalGTangent computes the tangent line at T evaluated at affine Q.
func evalGTangent(t TwistPoint, q Point) (num, den Fp12) {
	xQ, yQ := pointGetXY(q)
	xp, yp, zp := t.X, t.Y, t.Z

	t0 := fp2Sqr(zp)
	t1 := fp2Mul(t0, zp)
	b1 := fp2Mul(t1, yp)

	t2 := fp2MulFp(b1, yQ)
	a1 := fp2Neg(t2)

	t1 = fp2Sqr(xp)
	t0 = fp2Mul(t0, t1)
	t0 = fp2MulFp(t0, xQ)
	t0 = fp2Tri(t0)
	a4 := fp2Div2(t0)

	t1 = fp2Mul(t1, xp)
	t1 = fp2Tri(t1)
	t1 = fp2Div2(t1)
	t0 = fp2Sqr(yp)
	a0 := fp2Sub(t0, t1)

	return sparseLine{a0: a0, a1: a1, a4: a4, b1: b1}.toFp12()
}

// evalGLine computes the line through twist points T, P evaluated at
// affine Q.
func evalGLine(t, p TwistPoint, q Point) (num, den Fp12) {
	xQ, yQ := pointGetXY(q)
	xt, yt, zt := t.X, t.Y, t.Z
	xp, yp, zp := p.X, p.Y, p.Z

	t0 := fp2Sqr(zp)
	t1 := fp2Mul(t0, xt)
	t0 = fp2Mul(t0, zp)
	t2 := fp2Sqr(zt)
	t3 := fp2Mul(t2, xp)
	t2 = fp2Mul(t2, zt)
	t2 = fp2Mul(t2, yp)
	t1 = fp2Sub(t1, t3)
	t1 = fp2Mul(t1, zt)
	t1 = fp2Mul(t1, zp)
	t4 := fp2Mul(t1, t0)
	b1 := t4
	t1 = fp2Mul(t1, yp)
	t3 = fp2Mul(t0, yt)
	t3 = fp2Sub(t3, t2)
	t0 = fp2Mul(t0, t3)
	t0 = fp2MulFp(t0, xQ)
	a4 := t0
	t3 = fp2Mul(t3, xp)
	t3 = fp2Mul(t3, zp)
	t1 = fp2Sub(t1, t3)
	a0 := t1
	t2 = fp2MulFp(t4, yQ)
	t2 = fp2Neg(t2)
	a1 := t2

	return sparseLine{a0: a0, a1: a1, a4: a4, b1: b1}.toFp12()
}

// Pairing computes the optimal-ate pairing e(Q, P): Q on the twist,
// P on E(F_p), producing an Fp12 element.
func Pairing(q TwistPoint, p Point) Fp12 {
	t := q
	fNum := fp12One
	fDen := fp12One

	for i := 0; i < len(abits); i++ {
		fNum = fp12Sqr(fNum)
		fDen = fp12Sqr(fDen)

		gNum, gDen := evalGTangent(t, p)
		fNum = fp12Mul(fNum, gNum)
		fDen = fp12Mul(fDen, gDen)

		t = TwistPointDbl(t)

		switch abits[i] {
		case '1':
			gNum, gDen = evalGLine(t, q, p)
			fNum = fp12Mul(fNum, gNum)
			fDen = fp12Mul(fDen, gDen)
			t = TwistPointAddFull(t, q)
		case '2':
			negQ := TwistPointNeg(q)
			gNum, gDen = evalGLine(t, negQ, p)
			fNum = fp12Mul(fNum, gNum)
			fDen = fp12Mul(fDen, gDen)
			t = TwistPointAddFull(t, negQ)
		}
	}

	q1 := twistPointPi1(q)
	q2 := twistPointNegPi2(q)

	gNum, gDen := evalGLine(t, q1, p)
	fNum = fp12Mul(fNum, gNum)
	fDen = fp12Mul(fDen, gDen)
	t = TwistPointAddFull(t, q1)

	gNum, gDen = evalGLine(t, q2, p)
	fNum = fp12Mul(fNum, gNum)
	fDen = fp12Mul(fDen, gDen)
	t = TwistPointAddFull(t, q2)

	fDenInv, err := fp12Inv(fDen)
	if err != nil {
		// fDen is a product of line/tangent denominators evaluated at a
		// point never on the line through T and P by construction; a zero
		// here would mean Q or P was degenerate, which callers validate
		// before pairing.
		panic("z256: pairing denominator degenerate")
	}
	r := fp12Mul(fNum, fDenInv)
	return finalExponent(r)
}

// finalExponent is the easy part of the final exponentiation:
// t = frobenius6(f) * f^-1, then t = t * frobenius2(t), before the hard
// part.
func finalExponent(f Fp12) Fp12 {
	t0 := fp12Frobenius6(f)
	t1, err := fp12Inv(f)
	if err != nil {
		panic("z256: final exponent of degenerate element")
	}
	t0 = fp12Mul(t0, t1)
	t1 = fp12Frobenius2(t0)
	t0 = fp12Mul(t0, t1)
	return finalExponentHardPart(t0)
}

// finalExponentHardPart is the BN-specific hard part of the final
// exponentiation: a fixed addition chain over the curve parameter
// u = 0x600000000058F98A.
func finalExponentHardPart(f Fp12) Fp12 {
	t0 := fp12Pow(f, hardA3)
	t0, err := fp12Inv(t0)
	if err != nil {
		panic("z256: final exponent hard part degenerate")
	}
	t1 := fp12Frobenius(t0)
	t1 = fp12Mul(t0, t1)

	t0 = fp12Mul(t0, t1)
	t2 := fp12Frobenius(f)
	t3 := fp12Mul(t2, f)
	t3 = fp12Pow(t3, hardNine)

	t0 = fp12Mul(t0, t3)
	t3 = fp12Sqr(f)
	t3 = fp12Sqr(t3)
	t0 = fp12Mul(t0, t3)
	t2 = fp12Sqr(t2)
	t2 = fp12Mul(t2, t1)
	t1 = fp12Frobenius2(f)
	t1 = fp12Mul(t1, t2)

	t2 = fp12Pow(t1, hardA2)
	t0 = fp12Mul(t2, t0)
	t1 = fp12Frobenius3(f)
	t1 = fp12Mul(t1, t0)

	return t1
}
