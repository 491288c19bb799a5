package decimal

import (
	"math/big"
	"sync"
)

// bint (big integer) is the wide intermediate mantissa used by the
// decimal fallback paths. A bint always holds a non-negative value;
// signs are carried alongside.
type bint big.Int

// bpow10 is a cache of powers of 10, where bpow10[x] = 10^x.
var bpow10 = func() [64]*bint {
	var cache [64]*bint
	x := big.NewInt(1)
	ten := big.NewInt(10)
	for i := range cache {
		cache[i] = (*bint)(new(big.Int).Set(x))
		x.Mul(x, ten)
	}
	return cache
}()

// pool is a cache of reusable *big.Int instances.
var pool = sync.Pool{
	New: func() any {
		return (*bint)(new(big.Int))
	},
}

func getBint() *bint {
	return pool.Get().(*bint)
}

func putBint(b *bint) {
	pool.Put(b)
}

func (z *bint) sign() int {
	return (*big.Int)(z).Sign()
}

func (z *bint) cmp(x *bint) int {
	return (*big.Int)(z).Cmp((*big.Int)(x))
}

func (z *bint) string() string {
	return (*big.Int)(z).String()
}

func (z *bint) setBint(x *bint) {
	(*big.Int)(z).Set((*big.Int)(x))
}

func (z *bint) setFint(x fint) {
	(*big.Int)(z).SetUint64(uint64(x))
}

// fint converts z to a mantissa magnitude.
// If z cannot be represented as uint64, the result is undefined.
func (z *bint) fint() fint {
	return fint((*big.Int)(z).Uint64())
}

// add calculates z = x + y.
func (z *bint) add(x, y *bint) {
	(*big.Int)(z).Add((*big.Int)(x), (*big.Int)(y))
}

// sub calculates z = x - y.
func (z *bint) sub(x, y *bint) {
	(*big.Int)(z).Sub((*big.Int)(x), (*big.Int)(y))
}

// dist calculates z = |x - y|.
func (z *bint) dist(x, y *bint) {
	switch x.cmp(y) {
	case 1:
		z.sub(x, y)
	default:
		z.sub(y, x)
	}
}

// mul calculates z = x * y.
func (z *bint) mul(x, y *bint) {
	// Copying x, y to prevent aliasing surprises.
	if z == x {
		b := getBint()
		defer putBint(b)
		b.setBint(x)
		x = b
	}
	if z == y {
		b := getBint()
		defer putBint(b)
		b.setBint(y)
		y = b
	}
	(*big.Int)(z).Mul((*big.Int)(x), (*big.Int)(y))
}

// gcd calculates z = gcd(x, y).
func (z *bint) gcd(x, y *bint) {
	(*big.Int)(z).GCD(nil, nil, (*big.Int)(x), (*big.Int)(y))
}

// quo calculates z = x / y rounded towards zero.
func (z *bint) quo(x, y *bint) {
	r := getBint()
	defer putBint(r)
	z.quoRem(x, y, r)
}

// quoRem calculates z and r such that x = z * y + r.
func (z *bint) quoRem(x, y, r *bint) {
	(*big.Int)(z).QuoRem((*big.Int)(x), (*big.Int)(y), (*big.Int)(r))
}

func (z *bint) isOdd() bool {
	return (*big.Int)(z).Bit(0) != 0
}

// inc calculates z = z + 1.
func (z *bint) inc() {
	z.add(z, bpow10[0])
}

// pow10 calculates z = 10^power.
// If power is negative, the result is unpredictable.
func (z *bint) pow10(power int) {
	if power < len(bpow10) {
		z.setBint(bpow10[power])
		return
	}
	x := getBint()
	defer putBint(x)
	x.setFint(10)
	y := getBint()
	defer putBint(y)
	y.setFint(fint(power))
	(*big.Int)(z).Exp((*big.Int)(x), (*big.Int)(y), nil)
}

// lsh (left shift) calculates z = x * 10^shift.
func (z *bint) lsh(x *bint, shift int) {
	if shift <= 0 {
		z.setBint(x)
		return
	}
	var y *bint
	if shift < len(bpow10) {
		y = bpow10[shift]
	} else {
		y = getBint()
		defer putBint(y)
		y.pow10(shift)
	}
	z.mul(x, y)
}

// divHalfEven calculates z = x / y and rounds the result using
// the "half to even" rule. y must be positive.
func (z *bint) divHalfEven(x, y *bint) {
	r := getBint()
	defer putBint(r)
	z.quoRem(x, y, r)
	r.add(r, r) // r = r * 2
	switch y.cmp(r) {
	case -1:
		z.inc()
	case 0:
		// half-to-even
		if z.isOdd() {
			z.inc()
		}
	}
}

// rshHalfEven (right shift) calculates z = x / 10^shift and rounds
// the result using the "half to even" rule.
func (z *bint) rshHalfEven(x *bint, shift int) {
	// Special cases
	switch {
	case x.sign() == 0:
		z.setFint(0)
		return
	case shift <= 0:
		z.setBint(x)
		return
	}
	// General case
	var y *bint
	if shift < len(bpow10) {
		y = bpow10[shift]
	} else {
		y = getBint()
		defer putBint(y)
		y.pow10(shift)
	}
	z.divHalfEven(x, y)
}

// prec returns the length of z in decimal digits.
// prec assumes that 0 has no digits.
// If z is negative, the result is unpredictable.
func (z *bint) prec() int {
	// Special case
	if z.cmp(bpow10[len(bpow10)-1]) >= 0 {
		return len(z.string())
	}
	// General case
	left, right := 0, len(bpow10)
	for left < right {
		mid := (left + right) / 2
		if z.cmp(bpow10[mid]) < 0 {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return left
}

// hasPrec checks if z has the given number of digits or more.
// hasPrec assumes that 0 has no digits.
// If z is negative, the result is unpredictable.
func (z *bint) hasPrec(prec int) bool {
	// Special cases
	switch {
	case prec < 1:
		return true
	case prec > len(bpow10):
		return len(z.string()) >= prec
	}
	// General case
	return z.cmp(bpow10[prec-1]) >= 0
}
