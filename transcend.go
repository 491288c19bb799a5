package decimal

// The logarithm and the exponential are computed by series summation
// over Decimal values themselves, so the working precision is the full
// 18 digits of the mantissa. Both series terminate when adding the
// next term no longer changes the running sum; the iteration caps are
// a backstop well above the worst observed convergence.
const (
	maxLogIterations = 200
	maxExpIterations = 100
)

// Log returns the natural logarithm of d.
//
// Log(NaN) and the logarithm of a negative value are NaN, Log(0) is
// positive infinity by the definition adopted here (the pole is
// reported on the branch reachable through positive arguments), and
// Log(+Inf) is positive infinity.
func (d Decimal) Log() Decimal {
	switch {
	case d.IsNaN():
		return nan
	case d.IsZero():
		return posInf
	case d.IsNeg():
		return nan
	case !d.IsFinite():
		return posInf
	}
	// Split d into z·10^k with z in [1, 10), so that
	// ln d = ln z + k·ln 10 and the series below sees an argument
	// whose atanh transform is at most (z-1)/(z+1) < 9/11.
	_, m, exp, _ := d.decForm().parts()
	digs := m.prec()
	k := exp + digs - 1
	z := New(int64(m), -(digs - 1))
	r := logSeries(z)
	if k != 0 {
		r = r.Add(NewFromInt64(int64(k)).Mul(Ln10))
	}
	return r
}

// logSeries sums ln z = 2·atanh(w) = 2·(w + w³/3 + w⁵/5 + ...) for
// w = (z-1)/(z+1), with z in [1, 10).
func logSeries(z Decimal) Decimal {
	w := z.Sub(one).Quo(z.Add(one))
	w2 := w.Mul(w)
	sum := w
	pow := w
	for i := 1; i < maxLogIterations; i++ {
		pow = pow.Mul(w2)
		next := sum.Add(pow.Quo(NewFromInt64(int64(2*i + 1))))
		if next == sum {
			break
		}
		sum = next
	}
	return sum.Mul(two)
}

// Log2 returns the base-2 logarithm of d.
func (d Decimal) Log2() Decimal {
	return d.Log().Quo(Ln2)
}

// Log10 returns the base-10 logarithm of d.
func (d Decimal) Log10() Decimal {
	return d.Log().Quo(Ln10)
}

// LogBase returns the logarithm of d in the given base.
// A base that is NaN, infinite, zero, negative, or exactly one
// makes the result NaN.
func (d Decimal) LogBase(base Decimal) Decimal {
	if base.IsNaN() || !base.IsFinite() || base.IsZero() || base.IsNeg() || base.Equal(one) {
		return nan
	}
	return d.Log().Quo(base.Log())
}

// Exp returns e raised to the power of d.
//
// Exp(NaN) is NaN, Exp(-Inf) is the positive zero, and Exp(+Inf), or
// any argument large enough to overflow the exponent range, is
// positive infinity.
func (d Decimal) Exp() Decimal {
	switch {
	case d.IsNaN():
		return nan
	case !d.IsFinite():
		if d.IsNeg() {
			return zero
		}
		return posInf
	case d.IsZero():
		return one
	}
	// Beyond these bounds the result over- or underflows the
	// representable exponent range, so skip the series.
	switch {
	case d.CmpInt64(75500) > 0:
		return posInf
	case d.CmpInt64(-75600) < 0:
		return zero
	}
	// Split d = n + f with n whole and |f| < 1, so that
	// e^d = e^f · e^n and the series argument stays small.
	n, _ := d.Trunc().Int64()
	f := d.Sub(NewFromInt64(n))
	r := expSeries(f)
	if n != 0 {
		r = r.Mul(E.PowInt(n))
	}
	return r
}

// expSeries sums e^f = Σ fⁱ/i! for |f| < 1.
func expSeries(f Decimal) Decimal {
	sum := one
	term := one
	for i := 1; i < maxExpIterations; i++ {
		term = term.Mul(f).Quo(NewFromInt64(int64(i)))
		next := sum.Add(term)
		if next == sum {
			break
		}
		sum = next
	}
	return sum
}

// PowInt returns d raised to a whole power by binary exponentiation.
// d⁰ is one for every d including NaN, zero, and the infinities.
func (d Decimal) PowInt(power int64) Decimal {
	if power == 0 {
		return one
	}
	if power < 0 {
		return one.Quo(d.PowInt(-power))
	}
	f := d.PowInt(power / 2)
	f = f.Mul(f)
	if power%2 != 0 {
		f = f.Mul(d)
	}
	return f
}

// Pow returns d raised to the power e.
//
// The special cases follow the IEEE 754 pow conventions: any base to
// the zeroth power is one, a negative base with a non-whole exponent
// is NaN, infinite operands resolve by the magnitude of the base or
// the parity of the exponent, and a zero base with a negative exponent
// is positive infinity. Whole exponents of moderate size are computed
// exactly by binary exponentiation; everything else goes through
// exp(e·ln d).
func (d Decimal) Pow(e Decimal) Decimal {
	if e.IsZero() {
		return one
	}
	if d.IsNaN() || e.IsNaN() {
		return nan
	}
	if d.IsZero() {
		switch {
		case e.IsNeg():
			return posInf
		case d.IsNeg() && e.isOddInt():
			return negZero
		default:
			return zero
		}
	}
	if !e.IsFinite() {
		switch c := d.Abs().Cmp(one); {
		case c == 0:
			return one
		case (c > 0) == e.IsNeg():
			return zero
		default:
			return posInf
		}
	}
	if !d.IsFinite() {
		switch {
		case !d.IsNeg():
			if e.IsNeg() {
				return zero
			}
			return posInf
		case e.IsNeg():
			if e.isOddInt() {
				return negZero
			}
			return zero
		case e.isOddInt():
			return negInf
		default:
			return posInf
		}
	}
	if d.IsNeg() {
		if !e.IsInt() {
			return nan
		}
		r := d.Neg().Pow(e)
		if e.isOddInt() {
			return r.Neg()
		}
		return r
	}
	if e.IsNeg() {
		return one.Quo(d.Pow(e.Neg()))
	}
	if e.IsInt() {
		if n, ok := e.Int64(); ok && n <= 1_000_000 {
			return d.PowInt(n)
		}
	}
	return e.Mul(d.Log()).Exp()
}

// Sqrt returns the square root of d, computed as d^0.5.
func (d Decimal) Sqrt() Decimal {
	return d.Pow(half)
}
