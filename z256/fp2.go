package z256

// Fp2 is the quadratic extension F_p[u]/(u^2+2): element (a0, a1) denotes
// a0 + a1*u.
type Fp2 struct {
	a0, a1 Fp
}

var fp2Zero = Fp2{Zero, Zero}
var fp2One = Fp2{MontOne, Zero}

func fp2IsZero(a Fp2) bool {
	return IsZero(a.a0) == 1 && IsZero(a.a1) == 1
}

func fp2IsOne(a Fp2) bool {
	return Equ(a.a0, MontOne) == 1 && IsZero(a.a1) == 1
}

func fp2Equ(a, b Fp2) bool {
	return Equ(a.a0, b.a0) == 1 && Equ(a.a1, b.a1) == 1
}

func fp2Add(a, b Fp2) Fp2 {
	return Fp2{fpAdd(a.a0, b.a0), fpAdd(a.a1, b.a1)}
}

func fp2Sub(a, b Fp2) Fp2 {
	return Fp2{fpSub(a.a0, b.a0), fpSub(a.a1, b.a1)}
}

func fp2Neg(a Fp2) Fp2 {
	return Fp2{fpNeg(a.a0), fpNeg(a.a1)}
}

func fp2Dbl(a Fp2) Fp2 {
	return Fp2{fpDbl(a.a0), fpDbl(a.a1)}
}

func fp2Tri(a Fp2) Fp2 {
	return Fp2{fpTri(a.a0), fpTri(a.a1)}
}

func fp2Div2(a Fp2) Fp2 {
	return Fp2{fpDiv2(a.a0), fpDiv2(a.a1)}
}

// fp2Mul computes a*b via Karatsuba: t2=(a0+a1)(b0+b1), t0=a0*b0, t1=a1*b1;
// r1 = t2-t0-t1; r0 = t0-2*t1 (using u^2=-2).
func fp2Mul(a, b Fp2) Fp2 {
	t0 := fpMontMul(a.a0, b.a0)
	t1 := fpMontMul(a.a1, b.a1)
	t2 := fpMontMul(fpAdd(a.a0, a.a1), fpAdd(b.a0, b.a1))
	r1 := fpSub(fpSub(t2, t0), t1)
	r0 := fpSub(t0, fpDbl(t1))
	return Fp2{r0, r1}
}

// fp2MulU computes a*b*u: r0 = -2*(a0*b1 + a1*b0); r1 = a0*b0 - 2*a1*b1.
func fp2MulU(a, b Fp2) Fp2 {
	t0 := fpMontMul(a.a0, b.a0)
	t1 := fpMontMul(a.a1, b.a1)
	cross := fpAdd(fpMontMul(a.a0, b.a1), fpMontMul(a.a1, b.a0))
	r0 := fpNeg(fpDbl(cross))
	r1 := fpSub(t0, fpDbl(t1))
	return Fp2{r0, r1}
}

// aMulU multiplies a by u: (a0,a1) -> (-2*a1, a0).
func aMulU(a Fp2) Fp2 {
	return Fp2{fpNeg(fpDbl(a.a1)), a.a0}
}

// fp2Sqr: r0 = (a0+a1)(a0-2a1) + a0*a1; r1 = 2*a0*a1.
func fp2Sqr(a Fp2) Fp2 {
	a0a1 := fpMontMul(a.a0, a.a1)
	r0 := fpAdd(fpMontMul(fpAdd(a.a0, a.a1), fpSub(a.a0, fpDbl(a.a1))), a0a1)
	r1 := fpDbl(a0a1)
	return Fp2{r0, r1}
}

// fp2SqrU: square then multiply by u: r0 = -4*a0*a1; r1 = (a0+a1)(a0-2a1) + a0*a1.
func fp2SqrU(a Fp2) Fp2 {
	a0a1 := fpMontMul(a.a0, a.a1)
	r0 := fpNeg(fpDbl(fpDbl(a0a1)))
	r1 := fpAdd(fpMontMul(fpAdd(a.a0, a.a1), fpSub(a.a0, fpDbl(a.a1))), a0a1)
	return Fp2{r0, r1}
}

// fp2Inv returns a^-1, branching on the zero coefficients.
func fp2Inv(a Fp2) (Fp2, error) {
	if fp2IsZero(a) {
		return Fp2{}, ErrDegenerateInput
	}
	if IsZero(a.a1) == 1 {
		inv, err := fpInv(a.a0)
		if err != nil {
			return Fp2{}, err
		}
		return Fp2{inv, Zero}, nil
	}
	if IsZero(a.a0) == 1 {
		inv, err := fpInv(fpDbl(a.a1))
		if err != nil {
			return Fp2{}, err
		}
		return Fp2{Zero, fpNeg(inv)}, nil
	}
	norm := fpAdd(fpMontSqr(a.a0), fpDbl(fpMontSqr(a.a1)))
	k, err := fpInv(norm)
	if err != nil {
		return Fp2{}, err
	}
	return Fp2{fpMontMul(a.a0, k), fpNeg(fpMontMul(a.a1, k))}, nil
}

// fp2Conjugate is the p-power Frobenius on Fp2: (a0, -a1).
func fp2Conjugate(a Fp2) Fp2 {
	return Fp2{a.a0, fpNeg(a.a1)}
}

// fp2MulFp multiplies a by a scalar k in Fp, componentwise.
func fp2MulFp(a Fp2, k Fp) Fp2 {
	return Fp2{fpMontMul(a.a0, k), fpMontMul(a.a1, k)}
}

// Fp2FromBytes decodes 64 bytes as (a1 || a0): the wire order puts the
// u-coefficient first.
func Fp2FromBytes(buf []byte) (Fp2, error) {
	if len(buf) != 64 {
		return Fp2{}, ErrInvalidEncoding
	}
	a1, err := FpFromBytes(buf[0:32])
	if err != nil {
		return Fp2{}, err
	}
	a0, err := FpFromBytes(buf[32:64])
	if err != nil {
		return Fp2{}, err
	}
	return Fp2{a0, a1}, nil
}

// Fp2ToBytes encodes a as 64 bytes (a1 || a0).
func Fp2ToBytes(a Fp2, out []byte) {
	FpToBytes(a.a1, out[0:32])
	FpToBytes(a.a0, out[32:64])
}
