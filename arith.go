package decimal

// Arithmetic never fails with an error or a panic: domain errors are
// signaled by NaN, range errors by a signed infinity, so chains of
// operations run uninterrupted. Each binary operation first tries an
// exact integer path on the mantissas and denominators, and falls back
// to a wide rounded intermediate when the exact path would overflow.

// Neg returns d with the opposite sign.
// The zeros swap between the positive and the negative zero.
func (d Decimal) Neg() Decimal {
	if d.IsNaN() {
		return nan
	}
	if d.IsZero() {
		if d.IsNeg() {
			return zero
		}
		return negZero
	}
	return Decimal{m: -d.m, exp: d.exp, den: d.den}
}

// Abs returns the absolute value of d.
func (d Decimal) Abs() Decimal {
	if d.IsNeg() {
		return d.Neg()
	}
	return d
}

// CopySign returns d with the same sign as e.
// If e is zero, the sign of d remains unchanged.
func (d Decimal) CopySign(e Decimal) Decimal {
	switch {
	case e.IsZero():
		return d
	case d.IsNeg() != e.IsNeg():
		return d.Neg()
	default:
		return d
	}
}

// Add returns the sum of d and e. Opposing infinities yield NaN;
// exact cancellation of finite values yields the positive zero.
func (d Decimal) Add(e Decimal) Decimal {
	if d.IsNaN() || e.IsNaN() {
		return nan
	}
	if !d.IsFinite() || !e.IsFinite() {
		switch {
		case d.IsFinite():
			return e
		case e.IsFinite():
			return d
		case d.m == e.m:
			return d
		default:
			return nan
		}
	}
	switch {
	case d.IsZero() && e.IsZero():
		if d.IsNeg() && e.IsNeg() {
			return negZero
		}
		return zero
	case d.IsZero():
		return e
	case e.IsZero():
		return d
	}
	// When the magnitudes are further apart than the representable
	// digit count, the smaller operand vanishes from the sum.
	switch gap := d.magExp() - e.magExp(); {
	case gap > maxDigits+6:
		return d
	case gap < -(maxDigits + 6):
		return e
	}
	if f, ok := addFast(d, e); ok {
		return f
	}
	return addBig(d, e)
}

func addFast(d, e Decimal) (Decimal, bool) {
	dneg, dm, dexp, dden := d.parts()
	eneg, em, eexp, eden := e.parts()
	var ok bool

	// Common denominator
	den := fint(1)
	if dden != 1 || eden != 1 {
		if dm, ok = dm.mul(eden); !ok {
			return Decimal{}, false
		}
		if em, ok = em.mul(dden); !ok {
			return Decimal{}, false
		}
		if den, ok = dden.mul(eden); !ok {
			return Decimal{}, false
		}
	}

	// Exponent alignment
	exp := dexp
	switch {
	case dexp > eexp:
		if dm, ok = dm.lsh(dexp - eexp); !ok {
			return Decimal{}, false
		}
		exp = eexp
	case eexp > dexp:
		if em, ok = em.lsh(eexp - dexp); !ok {
			return Decimal{}, false
		}
	}

	// Mantissa and sign
	var m fint
	neg := dneg
	if dneg == eneg {
		if m, ok = dm.add(em); !ok {
			return Decimal{}, false
		}
	} else {
		m = dm.dist(em)
		if em > dm {
			neg = eneg
		}
		if m == 0 {
			neg = false
		}
	}

	if den > 1 {
		return normRat(neg, m, den, exp), true
	}
	return reduce(neg, m, exp), true
}

func addBig(d, e Decimal) Decimal {
	dneg, dm, dexp, dden := d.parts()
	eneg, em, eexp, eden := e.parts()

	bx := getBint()
	defer putBint(bx)
	by := getBint()
	defer putBint(by)
	bden := getBint()
	defer putBint(bden)
	t := getBint()
	defer putBint(t)

	// Common denominator
	bx.setFint(dm)
	by.setFint(em)
	if dden != 1 || eden != 1 {
		t.setFint(eden)
		bx.mul(bx, t)
		t.setFint(dden)
		by.mul(by, t)
	}
	den, _ := dden.mul(eden)
	bden.setFint(den)

	// Exponent alignment
	exp := dexp
	if eexp < exp {
		exp = eexp
	}
	bx.lsh(bx, dexp-exp)
	by.lsh(by, eexp-exp)

	// Mantissa and sign
	neg := dneg
	if dneg == eneg {
		bx.add(bx, by)
	} else {
		if bx.cmp(by) < 0 {
			neg = eneg
		}
		bx.dist(bx, by)
		if bx.sign() == 0 {
			neg = false
		}
	}

	return ratBig(neg, bx, bden, exp)
}

// Sub returns the difference of d and e.
func (d Decimal) Sub(e Decimal) Decimal {
	return d.Add(e.Neg())
}

// Mul returns the product of d and e.
//
// A zero operand yields a signed zero whose sign is the product of the
// operand signs; an infinite operand, or a product whose exponent falls
// outside the representable range, yields a signed infinity.
func (d Decimal) Mul(e Decimal) Decimal {
	if d.IsNaN() || e.IsNaN() {
		return nan
	}
	neg := d.IsNeg() != e.IsNeg()
	if !d.IsFinite() || !e.IsFinite() {
		return inf(neg)
	}
	if d.IsZero() || e.IsZero() {
		if neg {
			return negZero
		}
		return zero
	}
	if f, ok := mulFast(d, e); ok {
		return f
	}
	return mulBig(d, e)
}

func mulFast(d, e Decimal) (Decimal, bool) {
	dneg, dm, dexp, dden := d.parts()
	eneg, em, eexp, eden := e.parts()
	neg := dneg != eneg

	// Cross-reduce before multiplying to keep the products small.
	if g := dm.gcd(eden); g > 1 {
		dm /= g
		eden /= g
	}
	if g := em.gcd(dden); g > 1 {
		em /= g
		dden /= g
	}

	m, ok := dm.mul(em)
	if !ok {
		return Decimal{}, false
	}
	den, ok := dden.mul(eden)
	if !ok {
		return Decimal{}, false
	}
	exp := dexp + eexp

	if den > 1 {
		return normRat(neg, m, den, exp), true
	}
	return reduce(neg, m, exp), true
}

func mulBig(d, e Decimal) Decimal {
	dneg, dm, dexp, dden := d.parts()
	eneg, em, eexp, eden := e.parts()

	bx := getBint()
	defer putBint(bx)
	by := getBint()
	defer putBint(by)
	bden := getBint()
	defer putBint(bden)

	bx.setFint(dm)
	by.setFint(em)
	bx.mul(bx, by)
	den, _ := dden.mul(eden)
	bden.setFint(den)

	return ratBig(dneg != eneg, bx, bden, dexp+eexp)
}

// Quo returns the quotient of d and e.
//
// Division of a nonzero value by zero yields an infinity carrying the
// sign of the dividend; zero divided by zero yields NaN. Simple
// fractions such as 1/3 are kept exact through the rational form.
func (d Decimal) Quo(e Decimal) Decimal {
	if d.IsNaN() || e.IsNaN() {
		return nan
	}
	neg := d.IsNeg() != e.IsNeg()
	if !d.IsFinite() {
		if !e.IsFinite() {
			return nan
		}
		return inf(neg)
	}
	if !e.IsFinite() {
		if neg {
			return negZero
		}
		return zero
	}
	if e.IsZero() {
		if d.IsZero() {
			return nan
		}
		return inf(d.IsNeg())
	}
	if d.IsZero() {
		if neg {
			return negZero
		}
		return zero
	}
	if f, ok := quoFast(d, e); ok {
		return f
	}
	return quoBig(d, e)
}

func quoFast(d, e Decimal) (Decimal, bool) {
	dneg, dm, dexp, dden := d.parts()
	eneg, em, eexp, eden := e.parts()
	neg := dneg != eneg

	if g := dm.gcd(em); g > 1 {
		dm /= g
		em /= g
	}
	if g := dden.gcd(eden); g > 1 {
		dden /= g
		eden /= g
	}

	num, ok := dm.mul(eden)
	if !ok {
		return Decimal{}, false
	}
	den, ok := em.mul(dden)
	if !ok {
		return Decimal{}, false
	}
	return normRat(neg, num, den, dexp-eexp), true
}

func quoBig(d, e Decimal) Decimal {
	dneg, dm, dexp, dden := d.parts()
	eneg, em, eexp, eden := e.parts()

	bnum := getBint()
	defer putBint(bnum)
	bden := getBint()
	defer putBint(bden)
	t := getBint()
	defer putBint(t)

	bnum.setFint(dm)
	t.setFint(eden)
	bnum.mul(bnum, t)
	bden.setFint(em)
	t.setFint(dden)
	bden.mul(bden, t)

	return ratBig(dneg != eneg, bnum, bden, dexp-eexp)
}

// Inv returns 1 / d.
func (d Decimal) Inv() Decimal {
	return one.Quo(d)
}

// Mod returns the remainder of d divided by e, truncated towards zero.
// The result carries the sign of the dividend; a remainder of exactly
// zero is a zero signed like the dividend. Mod of an infinite dividend
// or by a zero divisor is NaN; the remainder by an infinite divisor is
// the dividend itself.
func (d Decimal) Mod(e Decimal) Decimal {
	if d.IsNaN() || e.IsNaN() || !d.IsFinite() || e.IsZero() {
		return nan
	}
	if !e.IsFinite() {
		return d
	}
	if d.IsZero() {
		return d
	}
	q := d.Quo(e).Trunc()
	r := d.Sub(e.Mul(q))
	if r.IsZero() {
		if d.IsNeg() {
			return negZero
		}
		return zero
	}
	return r
}

// QuoRem returns the whole quotient q = ⌊d / e⌋ and the remainder
// r = d - e*q. When the quotient is not finite the remainder is NaN.
func (d Decimal) QuoRem(e Decimal) (q, r Decimal) {
	q = d.Quo(e).Floor()
	if !q.IsFinite() {
		return q, nan
	}
	return q, d.Sub(e.Mul(q))
}

// IEEERem returns the IEEE 754 remainder of d with respect to e: the
// quotient is rounded to the nearest whole number, ties to even. A
// remainder of exactly zero is a zero signed like the dividend.
func (d Decimal) IEEERem(e Decimal) Decimal {
	if d.IsNaN() || e.IsNaN() || !d.IsFinite() || e.IsZero() {
		return nan
	}
	if !e.IsFinite() {
		return d
	}
	q := d.Quo(e).Round()
	r := d.Sub(e.Mul(q))
	if r.IsZero() {
		if d.IsNeg() {
			return negZero
		}
		return zero
	}
	return r
}

// Square returns d². The special values are handled up front: both
// infinities square to positive infinity and the zeros to the positive
// zero, skipping the overflow fallback a plain multiplication would take.
func (d Decimal) Square() Decimal {
	switch {
	case d.IsNaN():
		return nan
	case !d.IsFinite():
		return posInf
	case d.IsZero():
		return zero
	}
	return d.Mul(d)
}

// Cube returns d³, preserving the sign of infinities and zeros.
func (d Decimal) Cube() Decimal {
	switch {
	case d.IsNaN():
		return nan
	case !d.IsFinite(), d.IsZero():
		return d
	}
	return d.Mul(d).Mul(d)
}
