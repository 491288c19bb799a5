package decimal

import (
	"database/sql/driver"
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	errInvalidNumber = errors.New("invalid number")
	errInvalidBinary = errors.New("invalid binary data")
	errScanSource    = errors.New("unsupported scan source")
)

// Parse converts a string to a decimal.
// The input string must be formatted according to the following formal
// EBNF grammar:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | '.' digits | digits '.' | digits
//	exponent       ::= ('e' | 'E') [sign] digits
//	fraction       ::= digits '/' digits
//	special        ::= 'NaN' | 'Inf' | 'Infinity'
//	numeric-string ::= [sign] (significand [exponent] | fraction [exponent] | special)
//
// The special names are matched case-insensitively. Values with more
// significant digits than the mantissa can hold are rounded, never
// rejected, and exponents beyond the representable range collapse to a
// signed infinity or to zero, so Parse fails only on malformed input.
// On error the returned decimal is NaN.
func Parse(s string) (Decimal, error) {
	d, err := parse(s)
	if err != nil {
		return nan, fmt.Errorf("parsing %q: %w", s, err)
	}
	return d, nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

func parse(s string) (Decimal, error) {
	var (
		pos     int
		neg     bool
		coef    fint
		scale   int
		extra   int
		hascoef bool
		eneg    bool
		exp     int
		hasexp  bool
		hasesym bool
	)

	width := len(s)

	// Sign
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Named specials
	switch rest := s[pos:]; {
	case strings.EqualFold(rest, "NaN"):
		return nan, nil
	case strings.EqualFold(rest, "Inf"), strings.EqualFold(rest, "Infinity"):
		return inf(neg), nil
	}

	// Integer part. Digits beyond the mantissa width are dropped and
	// refunded through the exponent; a 19-digit accumulator cannot
	// overflow an uint64, so fsa is checked by hasPrec alone.
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		hascoef = true
		if coef.hasPrec(maxDigits + 1) {
			extra++
		} else {
			coef, _ = coef.fsa(1, s[pos]-'0')
		}
		pos++
	}

	// Fraction denominator
	if pos < width && s[pos] == '/' {
		if !hascoef {
			return Decimal{}, fmt.Errorf("no numerator: %w", errInvalidNumber)
		}
		pos++
		var (
			den    fint
			dextra int
			hasden bool
		)
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			hasden = true
			if den.hasPrec(maxDigits + 1) {
				dextra++
			} else {
				den, _ = den.fsa(1, s[pos]-'0')
			}
			pos++
		}
		if !hasden {
			return Decimal{}, fmt.Errorf("no denominator: %w", errInvalidNumber)
		}
		exp, err := parseExponent(s, &pos)
		if err != nil {
			return Decimal{}, err
		}
		if pos != width {
			return Decimal{}, fmt.Errorf("invalid character %q: %w", s[pos], errInvalidNumber)
		}
		return normRat(neg, coef, den, exp+extra-dextra), nil
	}

	// Fractional part
	if pos < width && s[pos] == '.' {
		pos++
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			hascoef = true
			if extra == 0 && !coef.hasPrec(maxDigits+1) {
				coef, _ = coef.fsa(1, s[pos]-'0')
				scale++
			}
			pos++
		}
	}

	// Exponential part
	if pos < width && (s[pos] == 'e' || s[pos] == 'E') {
		hasesym = true
		pos++
		// Sign
		switch {
		case pos == width:
			// skip
		case s[pos] == '-':
			eneg = true
			pos++
		case s[pos] == '+':
			pos++
		}
		// Integer
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			if exp < 1_000_000 {
				exp = exp*10 + int(s[pos]-'0')
			}
			hasexp = true
			pos++
		}
	}

	if pos != width {
		return Decimal{}, fmt.Errorf("invalid character %q: %w", s[pos], errInvalidNumber)
	}
	if !hascoef {
		return Decimal{}, fmt.Errorf("no digits: %w", errInvalidNumber)
	}
	if hasesym && !hasexp {
		return Decimal{}, fmt.Errorf("no exponent: %w", errInvalidNumber)
	}

	if eneg {
		exp = -exp
	}
	return reduce(neg, coef, exp+extra-scale), nil
}

// parseExponent consumes an optional trailing exponent clause at *pos.
func parseExponent(s string, pos *int) (int, error) {
	width := len(s)
	if *pos == width || (s[*pos] != 'e' && s[*pos] != 'E') {
		return 0, nil
	}
	*pos++
	var neg bool
	switch {
	case *pos == width:
		// skip
	case s[*pos] == '-':
		neg = true
		*pos++
	case s[*pos] == '+':
		*pos++
	}
	exp := 0
	hasexp := false
	for *pos < width && s[*pos] >= '0' && s[*pos] <= '9' {
		if exp < 1_000_000 {
			exp = exp*10 + int(s[*pos]-'0')
		}
		hasexp = true
		*pos++
	}
	if !hasexp {
		return 0, fmt.Errorf("no exponent: %w", errInvalidNumber)
	}
	if neg {
		exp = -exp
	}
	return exp, nil
}

// String implements the [fmt.Stringer] interface.
//
// The output is exact and round-trips through [Parse]: rational values
// print as "numerator/denominator" with an optional exponent clause,
// and whole-denominator values print in plain notation when the
// exponent is modest and in scientific notation otherwise. NaN and the
// infinities print as "NaN", "Infinity", and "-Infinity".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	switch {
	case d.IsNaN():
		return "NaN"
	case d.IsInf(1):
		return "Infinity"
	case d.IsInf(-1):
		return "-Infinity"
	}

	if d.den > 1 {
		buf := make([]byte, 0, 32)
		buf = strconv.AppendInt(buf, d.m, 10)
		buf = append(buf, '/')
		buf = strconv.AppendUint(buf, uint64(d.den), 10)
		if d.exp != 0 {
			buf = append(buf, 'e')
			buf = strconv.AppendInt(buf, int64(d.exp), 10)
		}
		return string(buf)
	}

	if d.m == 0 {
		if d.exp < 0 {
			return "-0"
		}
		return "0"
	}

	neg, m, exp, _ := d.parts()
	adj := exp + m.prec() - 1

	switch {
	case exp >= 0 && adj <= 20:
		// Plain whole number.
		var buf [22]byte
		pos := len(buf) - 1
		for i := 0; i < exp; i++ {
			buf[pos] = '0'
			pos--
		}
		for m > 0 {
			buf[pos] = byte(m%10) + '0'
			pos--
			m /= 10
		}
		if neg {
			buf[pos] = '-'
			pos--
		}
		return string(buf[pos+1:])

	case exp < 0 && adj >= -7:
		// Plain fraction, written right to left.
		var buf [28]byte
		pos := len(buf) - 1
		scale := -exp
		for {
			buf[pos] = byte(m%10) + '0'
			pos--
			m /= 10
			if scale > 0 {
				scale--
				// Decimal point
				if scale == 0 {
					buf[pos] = '.'
					pos--
					// Leading 0
					if m == 0 {
						buf[pos] = '0'
						pos--
					}
				}
			}
			if m == 0 && scale == 0 {
				break
			}
		}
		if neg {
			buf[pos] = '-'
			pos--
		}
		return string(buf[pos+1:])
	}

	// Scientific notation. Trailing mantissa zeros carry no information
	// and are folded into the printed exponent.
	if z := m.tzeros(); z > 0 {
		m = m.rshDown(z)
	}
	digits := strconv.FormatUint(uint64(m), 10)
	buf := make([]byte, 0, 28)
	if neg {
		buf = append(buf, '-')
	}
	buf = append(buf, digits[0])
	if len(digits) > 1 {
		buf = append(buf, '.')
		buf = append(buf, digits[1:]...)
	}
	buf = append(buf, 'e')
	buf = strconv.AppendInt(buf, int64(adj), 10)
	return string(buf)
}

// Format implements the [fmt.Formatter] interface.
// The following verbs are available:
//
//	%s, %v: 1/3         the exact form, as produced by String
//	%q:     "1/3"       the exact form, quoted
//	%f:     0.333333    fixed-point notation
//	%e:     3.3e-1      scientific notation
//
// Precision is supported for %f (digits after the point, default the
// natural scale of the value) and %e (digits after the leading digit,
// default all of them). The '+', ' ', '0', and '-' flags behave as
// they do for the built-in verbs.
//
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (d Decimal) Format(state fmt.State, verb rune) {
	var s string
	switch verb {
	case 's', 'S', 'v', 'V', 'q', 'Q':
		s = d.String()
	case 'f', 'F':
		prec, ok := state.Precision()
		s = d.fixedString(prec, ok)
	case 'e', 'E':
		prec, ok := state.Precision()
		s = d.sciString(prec, ok, verb == 'E')
	default:
		fmt.Fprintf(state, "%%!%c(decimal.Decimal=%s)", verb, d.String())
		return
	}

	// Arithmetic sign
	sign := ""
	if !strings.HasPrefix(s, "-") && d.IsFinite() {
		switch {
		case state.Flag('+'):
			sign = "+"
		case state.Flag(' '):
			sign = " "
		}
	}

	quote := 0
	if verb == 'q' || verb == 'Q' {
		quote = 1
	}

	// Padding
	width := 2*quote + len(sign) + len(s)
	lspaces, lzeroes, tspaces := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0') && quote == 0:
			lzeroes = w - width
		default:
			lspaces = w - width
		}
	}

	var b strings.Builder
	b.Grow(width + lspaces + lzeroes + tspaces)
	for i := 0; i < lspaces; i++ {
		b.WriteByte(' ')
	}
	if quote > 0 {
		b.WriteByte('"')
	}
	if lzeroes > 0 {
		// Zero padding goes between the sign and the digits.
		if strings.HasPrefix(s, "-") {
			sign, s = "-", s[1:]
		}
		b.WriteString(sign)
		for i := 0; i < lzeroes; i++ {
			b.WriteByte('0')
		}
	} else {
		b.WriteString(sign)
	}
	b.WriteString(s)
	if quote > 0 {
		b.WriteByte('"')
	}
	for i := 0; i < tspaces; i++ {
		b.WriteByte(' ')
	}
	state.Write([]byte(b.String()))
}

// fixedString renders d in fixed-point notation with the given number
// of digits after the point, or with the natural scale of the value
// when hasPrec is false.
func (d Decimal) fixedString(prec int, hasPrec bool) string {
	if !d.IsFinite() {
		return d.String()
	}
	v := d.decForm()
	if hasPrec {
		if prec < 0 {
			prec = 0
		}
		v = v.roundToExp(-prec)
	} else {
		prec = 0
		if v.exp < 0 {
			prec = -int(v.exp)
		}
	}

	neg, m, exp, _ := v.parts()
	digits := strconv.FormatUint(uint64(m), 10)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	if exp >= 0 {
		b.WriteString(digits)
		for i := 0; i < exp; i++ {
			b.WriteByte('0')
		}
		if prec > 0 {
			b.WriteByte('.')
			for i := 0; i < prec; i++ {
				b.WriteByte('0')
			}
		}
		return b.String()
	}

	scale := -exp
	if len(digits) > scale {
		b.WriteString(digits[:len(digits)-scale])
	} else {
		b.WriteByte('0')
	}
	b.WriteByte('.')
	for i := len(digits); i < scale; i++ {
		b.WriteByte('0')
	}
	if len(digits) > scale {
		b.WriteString(digits[len(digits)-scale:])
	} else {
		b.WriteString(digits)
	}
	for i := scale; i < prec; i++ {
		b.WriteByte('0')
	}
	return b.String()
}

// sciString renders d in scientific notation with the given number of
// digits after the leading digit, or with all significant digits when
// hasPrec is false.
func (d Decimal) sciString(prec int, hasPrec, upper bool) string {
	if !d.IsFinite() {
		return d.String()
	}
	v := d.decForm()
	if v.m == 0 {
		s := "0e+0"
		if hasPrec && prec > 0 {
			s = "0." + strings.Repeat("0", prec) + "e+0"
		}
		if v.exp < 0 {
			s = "-" + s
		}
		if upper {
			s = strings.ToUpper(s)
		}
		return s
	}

	neg, m, exp, _ := v.parts()
	adj := exp + m.prec() - 1
	if hasPrec {
		if prec < 0 {
			prec = 0
		}
		v = v.roundToExp(adj - prec)
		neg, m, exp, _ = v.parts()
		// Rounding can carry into a new leading digit.
		adj = exp + m.prec() - 1
	}
	digits := strconv.FormatUint(uint64(m), 10)
	if !hasPrec {
		digits = strings.TrimRight(digits, "0")
		prec = len(digits) - 1
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte(digits[0])
	if prec > 0 {
		b.WriteByte('.')
		rest := digits[1:]
		if len(rest) > prec {
			rest = rest[:prec]
		}
		b.WriteString(rest)
		for i := len(rest); i < prec; i++ {
			b.WriteByte('0')
		}
	}
	if upper {
		b.WriteByte('E')
	} else {
		b.WriteByte('e')
	}
	if adj >= 0 {
		b.WriteByte('+')
	}
	b.WriteString(strconv.Itoa(adj))
	return b.String()
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	return err
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Also see method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// binaryLen is the wire size of a decimal: the mantissa, the exponent,
// and the denominator in big-endian order.
const binaryLen = 8 + 2 + 2

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
// The encoding is the 12-byte big-endian triple of mantissa, exponent,
// and denominator.
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (d Decimal) MarshalBinary() ([]byte, error) {
	buf := make([]byte, binaryLen)
	binary.BigEndian.PutUint64(buf[0:8], uint64(d.m))
	binary.BigEndian.PutUint16(buf[8:10], uint16(d.exp))
	binary.BigEndian.PutUint16(buf[10:12], d.den)
	return buf, nil
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
// Triples that are not in canonical form are normalized rather than
// rejected, so every 12-byte input decodes to a valid decimal.
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (d *Decimal) UnmarshalBinary(data []byte) error {
	if len(data) != binaryLen {
		return fmt.Errorf("decoding decimal: got %d bytes, want %d: %w", len(data), binaryLen, errInvalidBinary)
	}
	m := int64(binary.BigEndian.Uint64(data[0:8]))
	exp := int16(binary.BigEndian.Uint16(data[8:10]))
	den := binary.BigEndian.Uint16(data[10:12])
	switch {
	case exp == specialExp:
		switch {
		case m > 0:
			*d = posInf
		case m < 0:
			*d = negInf
		default:
			*d = nan
		}
	case den > 1:
		*d = NewRat(m, int64(den), int(exp))
	case m == 0 && exp < 0:
		*d = negZero
	default:
		*d = New(m, int(exp))
	}
	return nil
}

// Value implements the [driver.Valuer] interface, storing the decimal
// as its exact string form.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (d Decimal) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (d *Decimal) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*d, err = Parse(value)
	case []byte:
		*d, err = Parse(string(value))
	case int64:
		*d = NewFromInt64(value)
	case float64:
		*d = NewFromFloat64(value)
	default:
		err = fmt.Errorf("scanning %T into decimal: %w", value, errScanSource)
	}
	return err
}
