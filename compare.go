package decimal

// Cmp compares d and e under the total order. It returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
//
// The order places NaN below every other value (two NaNs compare
// equal), negative infinity below all finite values, and positive
// infinity above them. Both zeros occupy the same position, so the
// positive and the negative zero compare equal.
func (d Decimal) Cmp(e Decimal) int {
	if d.IsNaN() || e.IsNaN() {
		switch {
		case d.IsNaN() && e.IsNaN():
			return 0
		case d.IsNaN():
			return -1
		default:
			return 1
		}
	}
	if !d.IsFinite() || !e.IsFinite() {
		switch do, eo := d.infOrd(), e.infOrd(); {
		case do < eo:
			return -1
		case do > eo:
			return 1
		default:
			return 0
		}
	}
	if d.IsZero() || e.IsZero() {
		ds, es := d.Sign(), e.Sign()
		switch {
		case ds < es:
			return -1
		case ds > es:
			return 1
		default:
			return 0
		}
	}
	dneg, eneg := d.IsNeg(), e.IsNeg()
	switch {
	case dneg && !eneg:
		return -1
	case !dneg && eneg:
		return 1
	}
	r := cmpMag(d, e)
	if dneg {
		return -r
	}
	return r
}

// infOrd positions a value among the infinities: -1 for negative
// infinity, +1 for positive infinity, 0 for any finite value.
func (d Decimal) infOrd() int {
	if d.IsFinite() {
		return 0
	}
	return int(d.m)
}

// cmpMag compares the magnitudes of two nonzero finite values of the
// same sign.
func cmpMag(d, e Decimal) int {
	_, dm, dexp, dden := d.parts()
	_, em, eexp, eden := e.parts()

	if dden == 1 && eden == 1 {
		// Adjusted exponents order whole-denominator values outright.
		dadj := dexp + dm.prec()
		eadj := eexp + em.prec()
		switch {
		case dadj < eadj:
			return -1
		case dadj > eadj:
			return 1
		}
		// Same adjusted exponent: align the mantissas.
		var ok bool
		switch {
		case dexp > eexp:
			if dm, ok = dm.lsh(dexp - eexp); !ok {
				return 1
			}
		case eexp > dexp:
			if em, ok = em.lsh(eexp - dexp); !ok {
				return -1
			}
		}
		switch {
		case dm < em:
			return -1
		case dm > em:
			return 1
		default:
			return 0
		}
	}

	// Rational operands: a gap of more than one decade in the
	// magnitude estimates decides the order without cross-multiplying.
	switch dmag, emag := d.magExp(), e.magExp(); {
	case dmag > emag+1:
		return 1
	case dmag < emag-1:
		return -1
	}

	bx := getBint()
	defer putBint(bx)
	by := getBint()
	defer putBint(by)
	t := getBint()
	defer putBint(t)

	// Compare dm/dden·10^dexp with em/eden·10^eexp by cross-multiplying
	// and folding the exponent difference into whichever side keeps
	// both shifts non-negative.
	bx.setFint(dm)
	t.setFint(eden)
	bx.mul(bx, t)
	by.setFint(em)
	t.setFint(dden)
	by.mul(by, t)
	if dexp > eexp {
		bx.lsh(bx, dexp-eexp)
	} else {
		by.lsh(by, eexp-dexp)
	}
	return bx.cmp(by)
}

// Equal reports whether d and e are the same value. Unlike Cmp, which
// ranks the two zeros together and two NaNs together, Equal
// distinguishes the positive from the negative zero and reports false
// whenever either operand is NaN.
func (d Decimal) Equal(e Decimal) bool {
	if d.IsNaN() || e.IsNaN() {
		return false
	}
	return d == e
}

// Max returns the larger of d and e under the total order,
// except that a NaN operand makes the result NaN.
func (d Decimal) Max(e Decimal) Decimal {
	if d.IsNaN() || e.IsNaN() {
		return nan
	}
	if d.Cmp(e) >= 0 {
		return d
	}
	return e
}

// Min returns the smaller of d and e under the total order,
// except that a NaN operand makes the result NaN.
func (d Decimal) Min(e Decimal) Decimal {
	if d.IsNaN() || e.IsNaN() {
		return nan
	}
	if d.Cmp(e) <= 0 {
		return d
	}
	return e
}

// CmpInt64 compares d with a whole number.
func (d Decimal) CmpInt64(value int64) int {
	return d.Cmp(NewFromInt64(value))
}

// CmpFloat64 compares d with the decimal nearest to a float64.
func (d Decimal) CmpFloat64(value float64) int {
	return d.Cmp(NewFromFloat64(value))
}
