package z256

// Fp4 is the quadratic extension F_p2[v]/(v^2-u): element (b0, b1) denotes
// b0 + b1*v. Structurally the same Karatsuba shape as Fp2, lifted one
// tower level.
type Fp4 struct {
	b0, b1 Fp2
}

var fp4Zero = Fp4{fp2Zero, fp2Zero}
var fp4One = Fp4{fp2One, fp2Zero}

func fp4IsZero(a Fp4) bool {
	return fp2IsZero(a.b0) && fp2IsZero(a.b1)
}

func fp4Equ(a, b Fp4) bool {
	return fp2Equ(a.b0, b.b0) && fp2Equ(a.b1, b.b1)
}

func fp4Add(a, b Fp4) Fp4 {
	return Fp4{fp2Add(a.b0, b.b0), fp2Add(a.b1, b.b1)}
}

func fp4Sub(a, b Fp4) Fp4 {
	return Fp4{fp2Sub(a.b0, b.b0), fp2Sub(a.b1, b.b1)}
}

func fp4Neg(a Fp4) Fp4 {
	return Fp4{fp2Neg(a.b0), fp2Neg(a.b1)}
}

func fp4Dbl(a Fp4) Fp4 {
	return Fp4{fp2Dbl(a.b0), fp2Dbl(a.b1)}
}

func fp4Div2(a Fp4) Fp4 {
	return Fp4{fp2Div2(a.b0), fp2Div2(a.b1)}
}

// aMulV multiplies a by v: (b0,b1) -> (u*b1, b0).
func aMulV(a Fp4) Fp4 {
	return Fp4{aMulU(a.b1), a.b0}
}

// fp4Mul: r1 = (b0+b1)(c0+c1) - b0c0 - b1c1; r0 = b0c0 + u*(b1c1).
func fp4Mul(a, b Fp4) Fp4 {
	sumA := fp2Add(a.b0, a.b1)
	sumB := fp2Add(b.b0, b.b1)
	r1 := fp2Mul(sumA, sumB)
	r0 := fp2Mul(a.b0, b.b0)
	t := fp2Mul(a.b1, b.b1)
	r1 = fp2Sub(fp2Sub(r1, r0), t)
	t = aMulU(t)
	r0 = fp2Add(r0, t)
	return Fp4{r0, r1}
}

func fp4MulFp(a Fp4, k Fp) Fp4 {
	return Fp4{fp2MulFp(a.b0, k), fp2MulFp(a.b1, k)}
}

func fp4MulFp2(a Fp4, b0 Fp2) Fp4 {
	return Fp4{fp2Mul(a.b0, b0), fp2Mul(a.b1, b0)}
}

// fp4MulV computes a*b*v: r0 = u*(b0c1+b1c0); r1 = b0c0 + u*b1c1.
func fp4MulV(a, b Fp4) Fp4 {
	r0 := fp2MulU(a.b0, b.b1)
	t := fp2MulU(a.b1, b.b0)
	r0 = fp2Add(r0, t)

	r1 := fp2Mul(a.b0, b.b0)
	t = fp2MulU(a.b1, b.b1)
	r1 = fp2Add(r1, t)
	return Fp4{r0, r1}
}

func fp4Sqr(a Fp4) Fp4 {
	r1 := fp2Sqr(fp2Add(a.b0, a.b1))
	r0 := fp2Sqr(a.b0)
	t := fp2Sqr(a.b1)
	r1 = fp2Sub(fp2Sub(r1, r0), t)
	t = aMulU(t)
	r0 = fp2Add(r0, t)
	return Fp4{r0, r1}
}

func fp4SqrV(a Fp4) Fp4 {
	t := fp2MulU(a.b0, a.b1)
	r0 := fp2Dbl(t)
	r1 := fp2Sqr(a.b0)
	t = fp2SqrU(a.b1)
	r1 = fp2Add(r1, t)
	return Fp4{r0, r1}
}

// fp4Inv: k = (u*b1^2 - b0^2)^-1; r0 = -b0*k; r1 = b1*k.
func fp4Inv(a Fp4) (Fp4, error) {
	if fp4IsZero(a) {
		return Fp4{}, ErrDegenerateInput
	}
	k := fp2Sub(fp2SqrU(a.b1), fp2Sqr(a.b0))
	kInv, err := fp2Inv(k)
	if err != nil {
		return Fp4{}, err
	}
	r0 := fp2Neg(fp2Mul(a.b0, kInv))
	r1 := fp2Mul(a.b1, kInv)
	return Fp4{r0, r1}, nil
}

// fp4Frobenius: conjugate both halves, multiply the b1 half by beta.
func fp4Frobenius(a Fp4) Fp4 {
	return Fp4{fp2Conjugate(a.b0), fp2Mul(fp2Conjugate(a.b1), MontBeta)}
}

// fp4Frobenius2 is (b0, -b1): the order-2 Frobenius has no residual
// coefficient twist because beta^(p+1) is rational over this tower.
func fp4Frobenius2(a Fp4) Fp4 {
	return Fp4{a.b0, fp2Neg(a.b1)}
}

// fp4Frobenius3: conjugate, multiply b1 half by beta, then negate b1.
func fp4Frobenius3(a Fp4) Fp4 {
	b1 := fp2Mul(fp2Conjugate(a.b1), MontBeta)
	return Fp4{fp2Conjugate(a.b0), fp2Neg(b1)}
}

// Fp4FromBytes decodes 128 bytes as (b1 || b0): tower wire order is
// high-degree coefficient first.
func Fp4FromBytes(buf []byte) (Fp4, error) {
	if len(buf) != 128 {
		return Fp4{}, ErrInvalidEncoding
	}
	b1, err := Fp2FromBytes(buf[0:64])
	if err != nil {
		return Fp4{}, err
	}
	b0, err := Fp2FromBytes(buf[64:128])
	if err != nil {
		return Fp4{}, err
	}
	return Fp4{b0, b1}, nil
}

func Fp4ToBytes(a Fp4, out []byte) {
	Fp2ToBytes(a.b1, out[0:64])
	Fp2ToBytes(a.b0, out[64:128])
}
