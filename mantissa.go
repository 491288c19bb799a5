package decimal

import "math/bits"

// fint (fast integer) is the unsigned magnitude of a mantissa.
// Intermediate results may exceed maxMant; only canonical decimals
// are bound by it.
type fint uint64

// maxMant is the largest canonical mantissa magnitude, 18 nines.
const maxMant = 999_999_999_999_999_999

// maxDigits is the number of significant decimal digits a canonical
// mantissa can carry.
const maxDigits = 18

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = [...]fint{
	1,                          // 10^0
	10,                         // 10^1
	100,                        // 10^2
	1_000,                      // 10^3
	10_000,                     // 10^4
	100_000,                    // 10^5
	1_000_000,                  // 10^6
	10_000_000,                 // 10^7
	100_000_000,                // 10^8
	1_000_000_000,              // 10^9
	10_000_000_000,             // 10^10
	100_000_000_000,            // 10^11
	1_000_000_000_000,          // 10^12
	10_000_000_000_000,         // 10^13
	100_000_000_000_000,        // 10^14
	1_000_000_000_000_000,      // 10^15
	10_000_000_000_000_000,     // 10^16
	100_000_000_000_000_000,    // 10^17
	1_000_000_000_000_000_000,  // 10^18
	10_000_000_000_000_000_000, // 10^19
}

// add calculates x + y and checks overflow.
func (x fint) add(y fint) (z fint, ok bool) {
	sum, carry := bits.Add64(uint64(x), uint64(y), 0)
	return fint(sum), carry == 0
}

// mul calculates x * y and checks uint64 overflow.
func (x fint) mul(y fint) (z fint, ok bool) {
	hi, lo := bits.Mul64(uint64(x), uint64(y))
	return fint(lo), hi == 0
}

// dist calculates |x - y|.
func (x fint) dist(y fint) fint {
	if x > y {
		return x - y
	}
	return y - x
}

// lsh (left shift) calculates x * 10^shift and checks uint64 overflow.
func (x fint) lsh(shift int) (z fint, ok bool) {
	// Special cases
	switch {
	case x == 0:
		return 0, true
	case shift <= 0:
		return x, true
	case shift >= len(pow10):
		return 0, false
	}
	// General case
	return x.mul(pow10[shift])
}

// fsa (fused shift and addition) calculates x * 10^shift + b and checks overflow.
func (x fint) fsa(shift int, b byte) (z fint, ok bool) {
	z, ok = x.lsh(shift)
	if !ok {
		return 0, false
	}
	z, ok = z.add(fint(b))
	if !ok {
		return 0, false
	}
	return z, true
}

func (x fint) isOdd() bool {
	return x&1 != 0
}

// rshHalfEven (right shift) calculates x / 10^shift and rounds the
// result using the "half to even" rule.
func (x fint) rshHalfEven(shift int) fint {
	// Special cases
	switch {
	case x == 0:
		return 0
	case shift <= 0:
		return x
	case shift >= len(pow10):
		return 0
	}
	// General case
	y := pow10[shift]
	z := x / y
	r := x - z*y                        // r = x % y
	y = y >> 1                          // y = y / 2, safe as y is a multiple of 10
	if y < r || (y == r && z.isOdd()) { // half-to-even
		z++
	}
	return z
}

// rshDown (right shift) calculates x / 10^shift and rounds the result
// towards zero.
func (x fint) rshDown(shift int) fint {
	// Special cases
	switch {
	case x == 0:
		return 0
	case shift <= 0:
		return x
	case shift >= len(pow10):
		return 0
	}
	// General case
	return x / pow10[shift]
}

// prec returns the length of x in decimal digits.
// prec assumes that 0 has no digits.
func (x fint) prec() int {
	left, right := 0, len(pow10)
	for left < right {
		mid := (left + right) / 2
		if x < pow10[mid] {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return left
}

// tzeros returns the number of trailing zeros in x.
// tzeros assumes that 0 has no trailing zeros.
func (x fint) tzeros() int {
	left, right := 1, x.prec()
	for left < right {
		mid := (left + right) / 2
		if x%pow10[mid] == 0 {
			left = mid + 1
		} else {
			right = mid
		}
	}
	return left - 1
}

// hasPrec returns true if x has the given number of digits or more.
// hasPrec assumes that 0 has no digits.
func (x fint) hasPrec(prec int) bool {
	// Special cases
	switch {
	case prec < 1:
		return true
	case prec > len(pow10):
		return false
	}
	// General case
	return x >= pow10[prec-1]
}

// gcd calculates the greatest common divisor of x and y.
// gcd(x, 0) = x and gcd(0, y) = y.
func (x fint) gcd(y fint) fint {
	for y != 0 {
		x, y = y, x%y
	}
	return x
}
