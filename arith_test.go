package decimal

import "testing"

func TestDecimal_Add(t *testing.T) {
	tests := []struct {
		d, e, want string
	}{
		{"1", "1", "2"},
		{"2", "3", "5"},
		{"5.75", "3.3", "9.05"},
		{"0.1", "0.2", "0.3"},
		{"5", "-3", "2"},
		{"-5", "-3", "-8"},
		{"-7", "2.5", "-4.5"},

		// Exact cancellation yields the positive zero.
		{"1", "-1", "0"},
		{"-1", "1", "0"},
		{"1/3", "-1/3", "0"},

		// Signed zeros
		{"0", "0", "0"},
		{"-0", "0", "0"},
		{"0", "-0", "0"},
		{"-0", "-0", "-0"},
		{"-0", "5", "5"},
		{"5", "-0", "5"},

		// Fractions
		{"1/3", "1/3", "2/3"},
		{"1/3", "2/3", "1"},
		{"1/3", "1/6", "0.5"},
		{"1/3", "1", "4/3"},
		{"1/3", "-1/6", "1/6"},

		// The cross-multiplied mantissas overflow an uint64 when added;
		// the wide path takes over and rounds the quotient.
		{"999999999999999998/13", "999999999999999998/11", "167832167832167832"},

		// Mantissa overflow rounds half to even.
		{"999999999999999999", "1", "1000000000000000000"},
		{"999999999999999999", "2", "1000000000000000000"},
		{"1000000000000000000", "1", "1000000000000000000"},

		// The smaller operand vanishes across a wide magnitude gap.
		{"1e30", "1", "1e30"},
		{"1", "-1e30", "-1e30"},
		{"1e-30", "1", "1"},

		// Special values
		{"NaN", "1", "NaN"},
		{"1", "NaN", "NaN"},
		{"NaN", "NaN", "NaN"},
		{"Infinity", "1", "Infinity"},
		{"1", "-Infinity", "-Infinity"},
		{"Infinity", "Infinity", "Infinity"},
		{"-Infinity", "-Infinity", "-Infinity"},
		{"Infinity", "-Infinity", "NaN"},
		{"-Infinity", "Infinity", "NaN"},

		// Exponent overflow
		{"9e32783", "9e32783", "Infinity"},
	}
	for _, tt := range tests {
		d, e := MustParse(tt.d), MustParse(tt.e)
		got := d.Add(e)
		if got.String() != tt.want {
			t.Errorf("%q.Add(%q) = %q, want %q", tt.d, tt.e, got, tt.want)
		}
	}
}

func TestDecimal_Sub(t *testing.T) {
	tests := []struct {
		d, e, want string
	}{
		{"2", "1", "1"},
		{"1", "2", "-1"},
		{"5.75", "3.3", "2.45"},
		{"1/3", "1/6", "1/6"},
		{"1", "1", "0"},
		{"-0", "0", "-0"},
		{"Infinity", "Infinity", "NaN"},
		{"Infinity", "-Infinity", "Infinity"},
		{"NaN", "1", "NaN"},
	}
	for _, tt := range tests {
		d, e := MustParse(tt.d), MustParse(tt.e)
		got := d.Sub(e)
		if got.String() != tt.want {
			t.Errorf("%q.Sub(%q) = %q, want %q", tt.d, tt.e, got, tt.want)
		}
	}
}

func TestDecimal_Mul(t *testing.T) {
	tests := []struct {
		d, e, want string
	}{
		{"2", "3", "6"},
		{"-2", "3", "-6"},
		{"2", "-3", "-6"},
		{"-2", "-3", "6"},
		{"0.1", "0.2", "0.02"},
		{"1.5", "4", "6"},

		// Exact fraction arithmetic
		{"1/3", "3", "1"},
		{"1/3", "1/7", "1/21"},
		{"2/3", "3/2", "1"},
		{"1/3", "0.3", "0.1"},
		{"-1/3", "3", "-1"},

		// Signed zeros
		{"0", "5", "0"},
		{"0", "-5", "-0"},
		{"-0", "-5", "0"},
		{"-0", "5", "-0"},
		{"0", "0", "0"},
		{"-0", "0", "-0"},

		// An infinite operand wins over a zero operand.
		{"Infinity", "0", "Infinity"},
		{"0", "-Infinity", "-Infinity"},
		{"-0", "Infinity", "-Infinity"},
		{"Infinity", "-2", "-Infinity"},
		{"-Infinity", "-Infinity", "Infinity"},
		{"NaN", "0", "NaN"},
		{"NaN", "Infinity", "NaN"},

		// Rounding at the mantissa boundary
		{"666666666666666667", "3", "2000000000000000000"},

		// Exponent overflow and underflow
		{"1e20000", "1e20000", "Infinity"},
		{"-1e20000", "1e20000", "-Infinity"},
		{"1e-20000", "1e-20000", "0"},
		{"-1e-20000", "1e-20000", "-0"},
	}
	for _, tt := range tests {
		d, e := MustParse(tt.d), MustParse(tt.e)
		got := d.Mul(e)
		if got.String() != tt.want {
			t.Errorf("%q.Mul(%q) = %q, want %q", tt.d, tt.e, got, tt.want)
		}
	}
}

func TestDecimal_Quo(t *testing.T) {
	tests := []struct {
		d, e, want string
	}{
		{"6", "3", "2"},
		{"-6", "3", "-2"},
		{"1", "3", "1/3"},
		{"-1", "3", "-1/3"},
		{"2", "6", "1/3"},
		{"1", "2", "0.5"},
		{"0.1", "0.3", "1/3"},
		{"1/3", "1/3", "1"},
		{"1/3", "3", "1/9"},
		{"22", "7", "22/7"},

		// Division by zero carries the sign of the dividend.
		{"5", "0", "Infinity"},
		{"-5", "0", "-Infinity"},
		{"5", "-0", "Infinity"},
		{"0", "0", "NaN"},
		{"-0", "0", "NaN"},

		// Infinite operands
		{"Infinity", "2", "Infinity"},
		{"Infinity", "-2", "-Infinity"},
		{"2", "Infinity", "0"},
		{"-2", "Infinity", "-0"},
		{"2", "-Infinity", "-0"},
		{"Infinity", "Infinity", "NaN"},
		{"NaN", "1", "NaN"},

		// Zero dividends
		{"0", "5", "0"},
		{"0", "-5", "-0"},
		{"-0", "5", "-0"},
	}
	for _, tt := range tests {
		d, e := MustParse(tt.d), MustParse(tt.e)
		got := d.Quo(e)
		if got.String() != tt.want {
			t.Errorf("%q.Quo(%q) = %q, want %q", tt.d, tt.e, got, tt.want)
		}
	}
}

func TestDecimal_QuoMulRoundTrip(t *testing.T) {
	// x / y * y stays within one unit of the last mantissa digit even
	// when the quotient does not fit an exact fraction.
	ulps := MustParse("1e-15")
	values := []string{"1", "3", "7", "0.1", "123.456", "1/3", "9999999999"}
	for _, sx := range values {
		for _, sy := range values {
			x, y := MustParse(sx), MustParse(sy)
			got := x.Quo(y).Mul(y)
			if got.Sub(x).Abs().Cmp(x.Abs().Mul(ulps)) > 0 {
				t.Errorf("%q / %q * %q = %q, want close to %q", sx, sy, sy, got, sx)
			}
		}
	}
}

func TestDecimal_Inv(t *testing.T) {
	tests := []struct {
		d, want string
	}{
		{"2", "0.5"},
		{"3", "1/3"},
		{"1/3", "3"},
		{"-1/3", "-3"},
		{"0", "Infinity"},
		{"-0", "Infinity"},
		{"Infinity", "0"},
		{"-Infinity", "-0"},
		{"NaN", "NaN"},
	}
	for _, tt := range tests {
		got := MustParse(tt.d).Inv()
		if got.String() != tt.want {
			t.Errorf("%q.Inv() = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestDecimal_Mod(t *testing.T) {
	tests := []struct {
		d, e, want string
	}{
		{"5", "3", "2"},
		{"-5", "3", "-2"},
		{"5", "-3", "2"},
		{"-5", "-3", "-2"},
		{"5.5", "2", "1.5"},
		{"6", "3", "0"},
		{"-6", "3", "-0"},
		{"1/3", "1/4", "1/12"},
		{"5", "Infinity", "5"},
		{"-5", "Infinity", "-5"},
		{"5", "0", "NaN"},
		{"Infinity", "3", "NaN"},
		{"NaN", "3", "NaN"},
		{"5", "NaN", "NaN"},
		{"0", "3", "0"},
		{"-0", "3", "-0"},
	}
	for _, tt := range tests {
		d, e := MustParse(tt.d), MustParse(tt.e)
		got := d.Mod(e)
		if got.String() != tt.want {
			t.Errorf("%q.Mod(%q) = %q, want %q", tt.d, tt.e, got, tt.want)
		}
	}
}

func TestDecimal_QuoRem(t *testing.T) {
	tests := []struct {
		d, e, wantQ, wantR string
	}{
		{"7", "2", "3", "1"},
		{"-7", "2", "-4", "1"},
		{"7", "-2", "-4", "-1"},
		{"-7", "-2", "3", "-1"},
		{"7.5", "2", "3", "1.5"},
		{"1/3", "1/4", "1", "1/12"},
		{"7", "0", "Infinity", "NaN"},
		{"0", "0", "NaN", "NaN"},
		{"NaN", "2", "NaN", "NaN"},
	}
	for _, tt := range tests {
		d, e := MustParse(tt.d), MustParse(tt.e)
		gotQ, gotR := d.QuoRem(e)
		if gotQ.String() != tt.wantQ || gotR.String() != tt.wantR {
			t.Errorf("%q.QuoRem(%q) = (%q, %q), want (%q, %q)", tt.d, tt.e, gotQ, gotR, tt.wantQ, tt.wantR)
		}
	}
}

func TestDecimal_IEEERem(t *testing.T) {
	tests := []struct {
		d, e, want string
	}{
		{"5", "3", "-1"},
		{"-5", "3", "1"},
		{"6", "4", "-2"},
		{"5", "2", "1"},
		{"6", "3", "0"},
		{"-6", "3", "-0"},
		{"5.5", "2", "-0.5"},
		{"5", "0", "NaN"},
		{"Infinity", "3", "NaN"},
		{"5", "Infinity", "5"},
		{"NaN", "3", "NaN"},
	}
	for _, tt := range tests {
		d, e := MustParse(tt.d), MustParse(tt.e)
		got := d.IEEERem(e)
		if got.String() != tt.want {
			t.Errorf("%q.IEEERem(%q) = %q, want %q", tt.d, tt.e, got, tt.want)
		}
	}
}

func TestDecimal_Square(t *testing.T) {
	tests := []struct {
		d, want string
	}{
		{"2", "4"},
		{"-2", "4"},
		{"1.5", "2.25"},
		{"1/3", "1/9"},
		{"-1/3", "1/9"},
		{"0", "0"},
		{"-0", "0"},
		{"Infinity", "Infinity"},
		{"-Infinity", "Infinity"},
		{"NaN", "NaN"},
	}
	for _, tt := range tests {
		got := MustParse(tt.d).Square()
		if got.String() != tt.want {
			t.Errorf("%q.Square() = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestDecimal_Cube(t *testing.T) {
	tests := []struct {
		d, want string
	}{
		{"2", "8"},
		{"-2", "-8"},
		{"1/3", "1/27"},
		{"-1/3", "-1/27"},
		{"0", "0"},
		{"-0", "-0"},
		{"Infinity", "Infinity"},
		{"-Infinity", "-Infinity"},
		{"NaN", "NaN"},
	}
	for _, tt := range tests {
		got := MustParse(tt.d).Cube()
		if got.String() != tt.want {
			t.Errorf("%q.Cube() = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestDecimal_Neg(t *testing.T) {
	tests := []struct {
		d, want string
	}{
		{"1", "-1"},
		{"-1", "1"},
		{"1/3", "-1/3"},
		{"0", "-0"},
		{"-0", "0"},
		{"Infinity", "-Infinity"},
		{"-Infinity", "Infinity"},
		{"NaN", "NaN"},
	}
	for _, tt := range tests {
		got := MustParse(tt.d).Neg()
		if got.String() != tt.want {
			t.Errorf("%q.Neg() = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestDecimal_Abs(t *testing.T) {
	tests := []struct {
		d, want string
	}{
		{"1", "1"},
		{"-1", "1"},
		{"-1/3", "1/3"},
		{"-0", "0"},
		{"0", "0"},
		{"-Infinity", "Infinity"},
		{"NaN", "NaN"},
	}
	for _, tt := range tests {
		got := MustParse(tt.d).Abs()
		if got.String() != tt.want {
			t.Errorf("%q.Abs() = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestDecimal_CopySign(t *testing.T) {
	tests := []struct {
		d, e, want string
	}{
		{"1", "-2", "-1"},
		{"-1", "2", "1"},
		{"1", "2", "1"},
		{"-1", "-2", "-1"},
		{"1", "0", "1"},
		{"1", "-Infinity", "-1"},
	}
	for _, tt := range tests {
		d, e := MustParse(tt.d), MustParse(tt.e)
		got := d.CopySign(e)
		if got.String() != tt.want {
			t.Errorf("%q.CopySign(%q) = %q, want %q", tt.d, tt.e, got, tt.want)
		}
	}
}
