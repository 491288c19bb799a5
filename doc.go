/*
Package decimal implements immutable extended-range decimal numbers.
It is designed for computations that must stay exact over a wide dynamic
range: the exponent reaches far beyond float64, simple fractions such as
1/3 are carried exactly, and arithmetic never panics or returns an error.

# Representation

[Decimal] is a struct with three fields:

  - Mantissa: a signed integer holding up to 18 significant digits.
  - Exponent: a power of ten in the range from -32768 to 32766.
  - Denominator: an optional divisor from 2 to 65535 that turns the
    value into an exact fraction.

The numerical value of a decimal is calculated as:

	Mantissa / Denominator × 10^Exponent

Every value has exactly one canonical representation: the exponent is
kept as close to zero as possible without discarding nonzero digits,
fractions are fully reduced, and a denominator built only from factors
of two and five converts into a finite decimal instead. Canonical form
makes the == operator a correct
equality test for everything except NaN and the two zeros, which compare
by their own rules through [Decimal.Equal] and [Decimal.Cmp].

The exponent value 32767 is reserved: it encodes NaN and the two
infinities, so every failure of an arithmetic operation is representable
as a value. Division by zero, logarithms of negative numbers, and
overflow all produce NaN or a signed infinity instead of a panic or an
error, and the special values propagate through subsequent operations
the way they do for float64.

The zero value of the type is the number 0 and is ready to use.

# Conversions

The package provides functions and methods for converting decimals:

  - from/to string:
    [Parse], [MustParse], [Decimal.String], [Decimal.Format].
  - from/to int64:
    [New], [NewFromInt64], [NewRat], [Decimal.Int64].
  - from/to float64:
    [NewFromFloat64], [Decimal.Float64].
  - from/to bytes:
    [Decimal.MarshalText], [Decimal.MarshalBinary] and their
    unmarshaling counterparts.

The string form produced by [Decimal.String] is exact and round-trips
through [Parse], including rational values, which print as
"numerator/denominator".

# Operations

Each arithmetic operation is carried out in two steps:

 1. The operation is initially performed using uint64 arithmetic.
    If no overflow occurs, the result is immediately returned.
    If an overflow does occur, the operation proceeds to step 2.

 2. The operation is repeated with increased precision using [big.Int]
    arithmetic and the result is rounded to 18 significant digits using
    half-to-even rounding.

Multiplication and division reduce the operands by their common factors
before multiplying, so products and quotients of exact fractions stay
exact whenever the reduced result fits the representation:
1/3 × 3 is exactly 1.

The transcendental functions [Decimal.Log], [Decimal.Exp],
[Decimal.Pow], and their derivatives are computed by series summation
over decimals themselves and are accurate to approximately the full
width of the mantissa, though the last digit may be off by a few units
in the last place.

# Comparison

[Decimal.Cmp] implements a total order: NaN sorts below every other
value, negative infinity below all finite values, and positive infinity
above them. The two zeros compare equal under Cmp but are distinguished
by [Decimal.Equal], which is an exact representation test.

[big.Int]: https://pkg.go.dev/math/big#Int
*/
package decimal
