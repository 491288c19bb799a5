package decimal

import "testing"

func TestConstants_Math(t *testing.T) {
	tests := []struct {
		name string
		d    Decimal
		want string
	}{
		{"E", E, "2.71828182845904524"},
		{"Pi", Pi, "3.14159265358979324"},
		{"Phi", Phi, "1.61803398874989485"},
		{"Sqrt2", Sqrt2, "1.41421356237309505"},
		{"Ln2", Ln2, "0.693147180559945309"},
		{"Ln10", Ln10, "2.30258509299404568"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestConstants_Identities(t *testing.T) {
	// Phi satisfies x² = x + 1.
	lhs, rhs := Phi.Square(), Phi.Add(New(1, 0))
	if lhs.Sub(rhs).Abs().Cmp(New(1, -17)) > 0 {
		t.Errorf("Phi² = %q, Phi+1 = %q", lhs, rhs)
	}
	// Sqrt2 squares back to 2 within one unit in the last place.
	if got := Sqrt2.Square(); got.Sub(New(2, 0)).Abs().Cmp(New(1, -17)) > 0 {
		t.Errorf("Sqrt2² = %q, want 2", got)
	}
	// Ln10 = Ln2 + ln(5).
	if got := Ln2.Add(New(5, 0).Log()); got.Sub(Ln10).Abs().Cmp(New(1, -16)) > 0 {
		t.Errorf("Ln2 + Log(5) = %q, want %q", got, Ln10)
	}
}

func TestConstants_Prefixes(t *testing.T) {
	pairs := []struct {
		big, small Decimal
	}{
		{Quetta, Quecto},
		{Ronna, Ronto},
		{Yotta, Yocto},
		{Zetta, Zepto},
		{Exa, Atto},
		{Peta, Femto},
		{Tera, Pico},
		{Giga, Nano},
		{Mega, Micro},
		{Kilo, Milli},
		{Hecto, Centi},
		{Deca, Deci},
	}
	for _, p := range pairs {
		if got := p.big.Mul(p.small); !got.Equal(New(1, 0)) {
			t.Errorf("%q * %q = %q, want 1", p.big, p.small, got)
		}
	}
	if got := Kilo.Mul(Kilo); !got.Equal(Mega) {
		t.Errorf("Kilo² = %q, want %q", got, Mega)
	}
}

func TestConstants_Physical(t *testing.T) {
	// The derived constants are exact products of the defining ones.
	tests := []struct {
		name string
		d    Decimal
		want string
	}{
		{"SpeedOfLight", SpeedOfLight, "299792458"},
		{"GasConstant", GasConstant, "8.31446261815324"},
		{"FaradayConstant", FaradayConstant, "96485.3321233100184"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, got, tt.want)
		}
	}

	// ħ = h/2π to the precision of Pi.
	want := MustParse("1.054571817e-34")
	if ReducedPlanckConstant.Sub(want).Abs().Cmp(MustParse("1e-42")) > 0 {
		t.Errorf("ReducedPlanckConstant = %q, want about %q", ReducedPlanckConstant, want)
	}

	// Photon energy at 500 nm: E = h·c/λ, around 3.97e-19 J.
	lambda := New(500, 0).Mul(Nano)
	energy := PlanckConstant.Mul(SpeedOfLight).Quo(lambda)
	if energy.Sub(MustParse("3.972891714297857e-19")).Abs().Cmp(MustParse("1e-33")) > 0 {
		t.Errorf("h*c/500nm = %q", energy)
	}
}
