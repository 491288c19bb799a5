package decimal

import (
	"errors"
	"math"
	"strconv"
)

// Decimal is an immutable extended-range decimal number.
//
// A decimal carries three fields: a signed mantissa holding up to 18
// significant digits, a power-of-ten exponent, and an optional
// denominator for exact rational fractions. The numeric value is
//
//	mantissa / denominator × 10^exponent
//
// NaN and the two infinities are encoded with a reserved exponent, so
// every failure of an arithmetic operation is representable as a value.
// The zero value of the type is the number 0 and is ready to use.
//
// Decimal is designed to be safe for concurrent use by multiple goroutines.
type Decimal struct {
	m   int64  // mantissa: the signed significant digits
	exp int16  // power of ten; specialExp marks NaN and the infinities
	den uint16 // rational denominator; 0 is stored for whole denominators
}

const (
	specialExp = math.MaxInt16     // reserved for NaN and the infinities
	maxExp     = math.MaxInt16 - 1 // largest exponent of a finite decimal
	minExp     = math.MinInt16     // smallest exponent of a finite decimal
	maxDen     = math.MaxUint16    // largest rational denominator
)

var (
	nan     = Decimal{m: 0, exp: specialExp}
	posInf  = Decimal{m: 1, exp: specialExp}
	negInf  = Decimal{m: -1, exp: specialExp}
	zero    = Decimal{}
	negZero = Decimal{m: 0, exp: -1}
	one     = Decimal{m: 1}
	two     = Decimal{m: 2}
	half    = Decimal{m: 5, exp: -1}
)

func inf(neg bool) Decimal {
	if neg {
		return negInf
	}
	return posInf
}

// NaN returns the not-a-number sentinel.
func NaN() Decimal {
	return nan
}

// Inf returns positive infinity if sign >= 0, negative infinity otherwise.
func Inf(sign int) Decimal {
	if sign < 0 {
		return negInf
	}
	return posInf
}

// New returns a decimal equal to value × 10^exp.
// Results beyond the representable exponent range collapse to the
// correctly signed infinity or to zero; New never fails.
func New(value int64, exp int) Decimal {
	neg := value < 0
	m := fint(value)
	if neg {
		m = -m
	}
	return reduce(neg, m, exp)
}

// NewFromInt64 returns a decimal equal to value.
func NewFromInt64(value int64) Decimal {
	return New(value, 0)
}

// NewRat returns a decimal equal to num / den × 10^exp, kept as an exact
// fraction whenever the reduced numerator and denominator fit the
// representation. A zero denominator yields NaN for a zero numerator and
// a signed infinity otherwise.
func NewRat(num, den int64, exp int) Decimal {
	neg := (num < 0) != (den < 0)
	n := fint(num)
	if num < 0 {
		n = -n
	}
	d := fint(den)
	if den < 0 {
		d = -d
	}
	return normRat(neg, n, d, exp)
}

// NewFromFloat64 converts a float64 to a decimal.
// Non-finite floats map to the corresponding sentinel values.
func NewFromFloat64(value float64) Decimal {
	switch {
	case math.IsNaN(value):
		return nan
	case math.IsInf(value, 1):
		return posInf
	case math.IsInf(value, -1):
		return negInf
	case value == 0:
		if math.Signbit(value) {
			return negZero
		}
		return zero
	}
	d, err := Parse(strconv.FormatFloat(value, 'e', -1, 64))
	if err != nil {
		return nan // unreachable for strconv output
	}
	return d
}

// reduce brings a raw (mantissa, exponent) pair into canonical form:
// the exponent closest to zero that does not discard a nonzero digit,
// with the mantissa capped at 18 significant digits. Exponent overflow
// collapses to a signed infinity, underflow to a signed zero.
func reduce(neg bool, m fint, exp int) Decimal {
	if m == 0 {
		if neg {
			return negZero
		}
		return zero
	}
	// Pull the exponent into the mantissa while room remains.
	for exp > 0 && !m.hasPrec(maxDigits) {
		m *= 10
		exp--
	}
	// Push trailing zeros out of the mantissa into the exponent.
	for exp < 0 && m%10 == 0 {
		m /= 10
		exp++
	}
	// Cap at 18 significant digits. This step loses low-order digits.
	for m > maxMant {
		if exp >= maxExp {
			return inf(neg)
		}
		m = m.rshHalfEven(1)
		exp++
	}
	// Rounding may have reintroduced trailing zeros.
	for exp < 0 && m%10 == 0 {
		m /= 10
		exp++
	}
	if exp > maxExp {
		return inf(neg)
	}
	for exp < minExp {
		m = m.rshHalfEven(1)
		exp++
		if m == 0 {
			if neg {
				return negZero
			}
			return zero
		}
	}
	i := int64(m)
	if neg {
		i = -i
	}
	return Decimal{m: i, exp: int16(exp), den: 0}
}

// normRat brings a raw fraction num/den × 10^exp into canonical form.
// The fraction is reduced by its greatest common divisor, and a
// denominator made of twos and fives alone converts exactly into
// exponent decrements. Any other denominator stays a fraction with the
// exponent folded toward zero, so that equal fractions share a single
// representation. Fractions that still do not fit fall back to a
// rounded decimal.
func normRat(neg bool, num, den fint, exp int) Decimal {
	switch {
	case den == 0 && num == 0:
		return nan
	case den == 0:
		return inf(neg)
	case num == 0:
		if neg {
			return negZero
		}
		return zero
	}
	if g := num.gcd(den); g > 1 {
		num /= g
		den /= g
	}
	d := den
	for d%2 == 0 {
		d /= 2
	}
	for d%5 == 0 {
		d /= 5
	}
	if d == 1 {
		for den%10 == 0 {
			den /= 10
			exp--
		}
		for den%2 == 0 {
			n, ok := num.mul(5)
			if !ok || n > maxMant {
				break
			}
			num = n
			den /= 2
			exp--
		}
		for den%5 == 0 {
			n, ok := num.mul(2)
			if !ok || n > maxMant {
				break
			}
			num = n
			den /= 5
			exp--
		}
	}
	if den == 1 {
		return reduce(neg, num, exp)
	}
	// Fold a positive exponent into the numerator, as far as it fits.
	for exp > 0 {
		n, ok := num.mul(10)
		if !ok || n > maxMant {
			break
		}
		num = n
		exp--
	}
	for exp < 0 && num%10 == 0 {
		num /= 10
		exp++
	}
	if g := num.gcd(den); g > 1 {
		num /= g
		den /= g
	}
	if exp < 0 {
		// Fold the remaining exponent into the denominator. The fold
		// can surface a new common divisor; when the reduced
		// denominator still does not fit, unwind what remains of the
		// fold, or restore the original fraction.
		num0, den0, exp0 := num, den, exp
		for exp < 0 {
			f, ok := den.mul(10)
			if !ok {
				break
			}
			den = f
			exp++
		}
		if g := num.gcd(den); g > 1 {
			num /= g
			den /= g
		}
		for den > maxDen && den%10 == 0 {
			den /= 10
			exp--
		}
		if den > maxDen {
			num, den, exp = num0, den0, exp0
		}
	}
	if num <= maxMant && den <= maxDen && minExp <= exp && exp <= maxExp {
		i := int64(num)
		if neg {
			i = -i
		}
		return Decimal{m: i, exp: int16(exp), den: uint16(den)}
	}
	// The exact fraction does not fit; divide it out.
	bnum := getBint()
	defer putBint(bnum)
	bden := getBint()
	defer putBint(bden)
	bnum.setFint(num)
	bden.setFint(den)
	return ratBig(neg, bnum, bden, exp)
}

// ratBig is the wide variant of normRat. It owns and may mutate num and den.
func ratBig(neg bool, num, den *bint, exp int) Decimal {
	if den.sign() == 0 {
		if num.sign() == 0 {
			return nan
		}
		return inf(neg)
	}
	if num.sign() == 0 {
		if neg {
			return negZero
		}
		return zero
	}
	g := getBint()
	defer putBint(g)
	g.gcd(num, den)
	if g.cmp(bpow10[0]) > 0 {
		num.quo(num, g)
		den.quo(den, g)
	}
	if den.cmp(bpow10[0]) == 0 {
		return reduceBig(neg, num, exp)
	}
	// Small enough to keep as an exact fraction.
	if !num.hasPrec(maxDigits+1) && !den.hasPrec(6) && minExp <= exp && exp <= maxExp {
		if n, d := num.fint(), den.fint(); d <= maxDen {
			return normRat(neg, n, d, exp)
		}
	}
	// Long-division approximation to 19 significant digits.
	shift := maxDigits + 1 + den.prec() - num.prec()
	if shift < 0 {
		shift = 0
	}
	q := getBint()
	defer putBint(q)
	num.lsh(num, shift)
	q.divHalfEven(num, den)
	return reduceBig(neg, q, exp-shift)
}

// reduceBig rounds a wide mantissa down to at most 19 digits and hands
// the result to reduce.
func reduceBig(neg bool, z *bint, exp int) Decimal {
	if p := z.prec(); p > maxDigits+1 {
		shift := p - (maxDigits + 1)
		z.rshHalfEven(z, shift)
		exp += shift
		// Rounding a 19-digit value up can carry into a 20th digit.
		if z.hasPrec(maxDigits + 2) {
			z.rshHalfEven(z, 1)
			exp++
		}
	}
	return reduce(neg, z.fint(), exp)
}

// IsNaN reports whether d is the not-a-number sentinel.
func (d Decimal) IsNaN() bool {
	return d.exp == specialExp && d.m == 0
}

// IsInf reports whether d is an infinity: positive infinity if sign > 0,
// negative infinity if sign < 0, either if sign == 0.
func (d Decimal) IsInf(sign int) bool {
	if d.exp != specialExp || d.m == 0 {
		return false
	}
	return sign == 0 || (sign > 0) == (d.m > 0)
}

// IsFinite reports whether d is neither NaN nor an infinity.
func (d Decimal) IsFinite() bool {
	return d.exp != specialExp
}

// IsZero reports whether d is zero, of either sign.
func (d Decimal) IsZero() bool {
	return d.m == 0 && d.exp != specialExp
}

// IsNeg reports whether d is negative. The negative zero counts
// as negative.
func (d Decimal) IsNeg() bool {
	if d.exp == specialExp {
		return d.m < 0
	}
	return d.m < 0 || (d.m == 0 && d.exp < 0)
}

// IsPos reports whether d is greater than zero, including positive infinity.
func (d Decimal) IsPos() bool {
	return d.m > 0
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d is zero or NaN
//	+1 if d > 0
func (d Decimal) Sign() int {
	switch {
	case d.m > 0:
		return 1
	case d.m < 0:
		return -1
	}
	return 0
}

// IsInt reports whether d is a whole number.
func (d Decimal) IsInt() bool {
	if d.exp == specialExp || d.den > 1 {
		return false
	}
	return d.exp >= 0 || d.m == 0
}

// isOddInt reports whether d is an odd whole number.
func (d Decimal) isOddInt() bool {
	return d.exp == 0 && d.den <= 1 && d.m&1 != 0
}

// IsRational reports whether the representation of d is known to be
// exact: either an explicit fraction, or a mantissa with a zero
// exponent. A whole-denominator value with a scaling exponent may
// already have lost digits; NaN and the infinities are never rational.
func (d Decimal) IsRational() bool {
	if d.exp == specialExp {
		return false
	}
	return d.den > 1 || d.exp == 0 || d.m == 0
}

// Mantissa returns the signed significant digits of d.
func (d Decimal) Mantissa() int64 {
	return d.m
}

// Exponent returns the power-of-ten exponent of d.
// For NaN and the infinities it returns the reserved sentinel exponent.
func (d Decimal) Exponent() int {
	return int(d.exp)
}

// Denominator returns the rational denominator of d: 1 for whole
// denominators, 0 for NaN and the infinities.
func (d Decimal) Denominator() int {
	switch {
	case d.exp == specialExp:
		return 0
	case d.den > 1:
		return int(d.den)
	}
	return 1
}

// parts splits d into an unsigned mantissa, a wide exponent, and a
// whole denominator. It must not be called on NaN or an infinity.
func (d Decimal) parts() (neg bool, m fint, exp int, den fint) {
	neg = d.IsNeg()
	mm := d.m
	if mm < 0 {
		mm = -mm
	}
	den = 1
	if d.den > 1 {
		den = fint(d.den)
	}
	return neg, fint(mm), int(d.exp), den
}

// magExp estimates the exponent of the value's leading digit. It is
// exact for whole denominators and within one for fractions.
func (d Decimal) magExp() int {
	_, m, exp, den := d.parts()
	return exp + m.prec() - den.prec()
}

// decForm returns d with a whole denominator, rounding the fraction to
// 18 significant digits when it cannot be represented exactly.
func (d Decimal) decForm() Decimal {
	if d.den <= 1 {
		return d
	}
	neg, m, exp, den := d.parts()
	bn := getBint()
	defer putBint(bn)
	bd := getBint()
	defer putBint(bd)
	bn.setFint(m)
	bd.setFint(den)
	shift := maxDigits + 1 + bd.prec() - bn.prec()
	if shift < 0 {
		shift = 0
	}
	bn.lsh(bn, shift)
	q := getBint()
	defer putBint(q)
	q.divHalfEven(bn, bd)
	return reduceBig(neg, q, exp-shift)
}

// roundToExp rounds d half-to-even so that its exponent is at least target.
func (d Decimal) roundToExp(target int) Decimal {
	if !d.IsFinite() {
		return d
	}
	v := d.decForm()
	neg, m, exp, _ := v.parts()
	if exp >= target {
		return v
	}
	m = m.rshHalfEven(target - exp)
	return reduce(neg, m, target)
}

// Float64 returns the nearest float64 value of d.
func (d Decimal) Float64() float64 {
	switch {
	case d.IsNaN():
		return math.NaN()
	case d.IsInf(1):
		return math.Inf(1)
	case d.IsInf(-1):
		return math.Inf(-1)
	}
	if d.den > 1 {
		f := float64(d.m) / float64(d.den)
		if d.exp != 0 {
			f *= math.Pow(10, float64(d.exp))
		}
		return f
	}
	// ParseFloat reports ErrRange for values beyond the float64 range
	// and still returns the saturated result, ±Inf or 0.
	f, err := strconv.ParseFloat(d.String(), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}

// Int64 returns d truncated towards zero, and false if d is not finite
// or its whole part does not fit in an int64.
func (d Decimal) Int64() (int64, bool) {
	if !d.IsFinite() {
		return 0, false
	}
	t := d.Trunc()
	neg := t.m < 0
	m := fint(t.m)
	if neg {
		m = -m
	}
	v, ok := m.lsh(int(t.exp))
	if !ok {
		return 0, false
	}
	if neg {
		if v > 1<<63 {
			return 0, false
		}
		return -int64(v), true
	}
	if v > math.MaxInt64 {
		return 0, false
	}
	return int64(v), true
}

// Trunc returns the whole part of d, rounded towards zero.
// Truncating a fractional value between -1 and 0 yields the negative zero.
func (d Decimal) Trunc() Decimal {
	if !d.IsFinite() || d.IsZero() {
		return d
	}
	neg, m, exp, den := d.parts()
	if den == 1 && exp >= 0 {
		return d
	}
	var q fint
	switch {
	case exp > 0:
		num, ok := m.lsh(exp)
		if !ok {
			bn := getBint()
			defer putBint(bn)
			bn.setFint(m)
			bn.lsh(bn, exp)
			bd := getBint()
			defer putBint(bd)
			bd.setFint(den)
			bq := getBint()
			defer putBint(bq)
			bq.quo(bn, bd)
			return reduceBig(neg, bq, 0)
		}
		q = num / den
	case den == 1:
		q = m.rshDown(-exp)
	default:
		div, ok := den.lsh(-exp)
		if !ok {
			q = 0
		} else {
			q = m / div
		}
	}
	if q == 0 {
		if neg {
			return negZero
		}
		return zero
	}
	return reduce(neg, q, 0)
}

// Floor returns the largest whole number less than or equal to d.
func (d Decimal) Floor() Decimal {
	t := d.Trunc()
	if d.IsNeg() && t.Cmp(d) != 0 {
		return t.Sub(one)
	}
	return t
}

// Ceil returns the smallest whole number greater than or equal to d.
func (d Decimal) Ceil() Decimal {
	t := d.Trunc()
	if !d.IsNeg() && t.Cmp(d) != 0 {
		return t.Add(one)
	}
	return t
}

// Round returns d rounded to the nearest whole number, ties to even.
func (d Decimal) Round() Decimal {
	if !d.IsFinite() || d.IsInt() {
		return d
	}
	t := d.Trunc()
	frac := d.Sub(t).Abs()
	step := one
	if d.IsNeg() {
		step = Decimal{m: -1}
	}
	switch frac.Cmp(half) {
	case 1:
		return t.Add(step)
	case 0:
		if t.isOddInt() {
			return t.Add(step)
		}
	}
	return t
}
