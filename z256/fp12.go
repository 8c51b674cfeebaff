package z256

// Fp12 is the cubic extension F_p4[w]/(w^3-v): element (c0, c1, c2) denotes
// c0 + c1*w + c2*w^2.
type Fp12 struct {
	c0, c1, c2 Fp4
}

var fp12Zero = Fp12{fp4Zero, fp4Zero, fp4Zero}
var fp12One = Fp12{fp4One, fp4Zero, fp4Zero}

func fp12Equ(a, b Fp12) bool {
	return fp4Equ(a.c0, b.c0) && fp4Equ(a.c1, b.c1) && fp4Equ(a.c2, b.c2)
}

func fp12Add(a, b Fp12) Fp12 {
	return Fp12{fp4Add(a.c0, b.c0), fp4Add(a.c1, b.c1), fp4Add(a.c2, b.c2)}
}

func fp12Sub(a, b Fp12) Fp12 {
	return Fp12{fp4Sub(a.c0, b.c0), fp4Sub(a.c1, b.c1), fp4Sub(a.c2, b.c2)}
}

func fp12Neg(a Fp12) Fp12 {
	return Fp12{fp4Neg(a.c0), fp4Neg(a.c1), fp4Neg(a.c2)}
}

func fp12Dbl(a Fp12) Fp12 {
	return Fp12{fp4Dbl(a.c0), fp4Dbl(a.c1), fp4Dbl(a.c2)}
}

// fp12Mul is a Karatsuba-3 product: three base products m_i = a_i*b_i, and
// three cross terms built from sums, with the w^3=v reduction folded in via
// aMulV on the high-degree coefficient.
func fp12Mul(a, b Fp12) Fp12 {
	m0 := fp4Mul(a.c0, b.c0)
	m1 := fp4Mul(a.c1, b.c1)
	m2 := fp4Mul(a.c2, b.c2)

	t := fp4Mul(fp4Add(a.c1, a.c2), fp4Add(b.c1, b.c2))
	t = fp4Sub(fp4Sub(t, m1), m2)
	t = aMulV(t)
	r0 := fp4Add(t, m0)

	t = fp4Mul(fp4Add(a.c0, a.c2), fp4Add(b.c0, b.c2))
	t = fp4Sub(fp4Sub(t, m0), m2)
	r2 := fp4Add(t, m1)

	t = fp4Mul(fp4Add(a.c0, a.c1), fp4Add(b.c0, b.c1))
	t = fp4Sub(fp4Sub(t, m0), m1)
	m2 = aMulV(m2)
	r1 := fp4Add(t, m2)

	return Fp12{r0, r1, r2}
}

// fp12Sqr is the Chung-Hasan "SQR3" squaring: h0=a0^2, h1=a2^2;
// s0=(a0+a2+a1)^2, s1=(a0+a2-a1)^2; s2=2*a1*a2;
// s3=(s0+s1)/2; output (h0+v*s2, v*h1+s0-s2-s3, s3-h1-h0).
func fp12Sqr(a Fp12) Fp12 {
	h0 := fp4Sqr(a.c0)
	h1 := fp4Sqr(a.c2)
	s0 := fp4Add(a.c2, a.c0)

	t := fp4Sub(s0, a.c1)
	s1 := fp4Sqr(t)

	t = fp4Add(s0, a.c1)
	s0 = fp4Sqr(t)

	s2 := fp4Mul(a.c1, a.c2)
	s2 = fp4Dbl(s2)

	s3 := fp4Add(s0, s1)
	s3 = fp4Div2(s3)

	t = fp4Sub(s3, h1)
	h2 := fp4Sub(t, h0)

	h1v := aMulV(h1)
	r1 := fp4Add(h1v, s0)
	r1 = fp4Sub(r1, s2)
	r1 = fp4Sub(r1, s3)

	s2v := aMulV(s2)
	r0 := fp4Add(h0, s2v)

	return Fp12{r0, r1, h2}
}

// fp12Inv splits on whether c2 is zero: each branch solves for an fp4 k
// such that multiplying by k yields the inverse coordinates.
func fp12Inv(a Fp12) (Fp12, error) {
	if fp4IsZero(a.c2) {
		k := fp4Sqr(a.c0)
		k = fp4Mul(k, a.c0)
		t := fp4SqrV(a.c1)
		t = fp4Mul(t, a.c1)
		k = fp4Add(k, t)
		if fp4IsZero(k) {
			return Fp12{}, ErrDegenerateInput
		}
		kInv, err := fp4Inv(k)
		if err != nil {
			return Fp12{}, err
		}

		r2 := fp4Sqr(a.c1)
		r2 = fp4Mul(r2, kInv)

		r1 := fp4Mul(a.c0, a.c1)
		r1 = fp4Mul(r1, kInv)
		r1 = fp4Neg(r1)

		r0 := fp4Sqr(a.c0)
		r0 = fp4Mul(r0, kInv)

		return Fp12{r0, r1, r2}, nil
	}

	t0 := fp4Sqr(a.c1)
	t1 := fp4Mul(a.c0, a.c2)
	t0 = fp4Sub(t0, t1)

	t1 = fp4Mul(a.c0, a.c1)
	t2 := fp4SqrV(a.c2)
	t1 = fp4Sub(t1, t2)

	t2 = fp4Sqr(a.c0)
	t3 := fp4MulV(a.c1, a.c2)
	t2 = fp4Sub(t2, t3)

	t3 = fp4Sqr(t1)
	r0 := fp4Mul(t0, t2)
	t3 = fp4Sub(t3, r0)
	if fp4IsZero(t3) {
		return Fp12{}, ErrDegenerateInput
	}
	t3Inv, err := fp4Inv(t3)
	if err != nil {
		return Fp12{}, err
	}
	t3 = fp4Mul(a.c2, t3Inv)

	r0 = fp4Mul(t2, t3)

	r1 := fp4Mul(t1, t3)
	r1 = fp4Neg(r1)

	r2 := fp4Mul(t0, t3)

	return Fp12{r0, r1, r2}, nil
}

// fp12Pow computes a^k via left-to-right square-and-multiply over the
// plain 256-bit exponent k; precondition k < n-1.
func fp12Pow(a Fp12, k Z256) Fp12 {
	t := fp12One
	for i := 3; i >= 0; i-- {
		w := k[i]
		for j := 0; j < 64; j++ {
			t = fp12Sqr(t)
			if w&0x8000000000000000 != 0 {
				t = fp12Mul(t, a)
			}
			w <<= 1
		}
	}
	return t
}

// Fp12Exp is general tower exponentiation, exported as a wrapper over
// fp12Pow; the final exponentiation's fixed small-constant powers (a2, a3,
// and the literal 9) call fp12Pow directly rather than bespoke fixed-power
// primitives.
func Fp12Exp(a Fp12, k Z256) Fp12 {
	return fp12Pow(a, k)
}

// fp12Frobenius is the p-power Frobenius: conjugate every Fp2 coefficient
// of each Fp4 half and rescale by the tower constants alpha1..alpha5.
func fp12Frobenius(x Fp12) Fp12 {
	ra := Fp4{
		b0: fp2Conjugate(x.c0.b0),
		b1: fp2MulFp(fp2Conjugate(x.c0.b1), MontAlpha3),
	}
	rb := Fp4{
		b0: fp2MulFp(fp2Conjugate(x.c1.b0), MontAlpha1),
		b1: fp2MulFp(fp2Conjugate(x.c1.b1), MontAlpha4),
	}
	rc := Fp4{
		b0: fp2MulFp(fp2Conjugate(x.c2.b0), MontAlpha2),
		b1: fp2MulFp(fp2Conjugate(x.c2.b1), MontAlpha5),
	}
	return Fp12{ra, rb, rc}
}

// fp4Conjugate negates the b1 half: (b0, -b1).
func fp4Conjugate(a Fp4) Fp4 {
	return Fp4{a.b0, fp2Neg(a.b1)}
}

func fp12Frobenius2(x Fp12) Fp12 {
	a := fp4Conjugate(x.c0)
	b := fp4MulFp(fp4Conjugate(x.c1), MontAlpha2)
	c := fp4MulFp(fp4Conjugate(x.c2), MontAlpha4)
	return Fp12{a, b, c}
}

func fp12Frobenius3(x Fp12) Fp12 {
	ra := Fp4{
		b0: fp2Conjugate(x.c0.b0),
		b1: fp2Neg(fp2Mul(fp2Conjugate(x.c0.b1), MontBeta)),
	}
	rb := Fp4{
		b0: fp2Mul(fp2Conjugate(x.c1.b0), MontBeta),
		b1: fp2Conjugate(x.c1.b1),
	}
	rc := Fp4{
		b0: fp2Neg(fp2Conjugate(x.c2.b0)),
		b1: fp2Mul(fp2Conjugate(x.c2.b1), MontBeta),
	}
	return Fp12{ra, rb, rc}
}

func fp12Frobenius6(x Fp12) Fp12 {
	a := fp4Conjugate(x.c0)
	b := fp4Neg(fp4Conjugate(x.c1))
	c := fp4Conjugate(x.c2)
	return Fp12{a, b, c}
}

// Fp12FromBytes decodes 384 bytes as three Fp4 chunks in (c2, c1, c0)
// wire order.
func Fp12FromBytes(buf []byte) (Fp12, error) {
	if len(buf) != 384 {
		return Fp12{}, ErrInvalidEncoding
	}
	c2, err := Fp4FromBytes(buf[0:128])
	if err != nil {
		return Fp12{}, err
	}
	c1, err := Fp4FromBytes(buf[128:256])
	if err != nil {
		return Fp12{}, err
	}
	c0, err := Fp4FromBytes(buf[256:384])
	if err != nil {
		return Fp12{}, err
	}
	return Fp12{c0, c1, c2}, nil
}

// Fp12ToBytes encodes a as 384 bytes in (c2, c1, c0) wire order.
func Fp12ToBytes(a Fp12, out []byte) {
	Fp4ToBytes(a.c2, out[0:128])
	Fp4ToBytes(a.c1, out[128:256])
	Fp4ToBytes(a.c0, out[256:384])
}
