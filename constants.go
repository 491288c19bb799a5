package decimal

// Mathematical constants to the full 18 significant digits.
var (
	// E is Euler's number, the base of the natural logarithm.
	E = MustParse("2.71828182845904524")

	// Pi is the ratio of a circle's circumference to its diameter.
	Pi = MustParse("3.14159265358979324")

	// Phi is the golden ratio, (1+√5)/2.
	Phi = MustParse("1.61803398874989485")

	// Sqrt2 is the square root of 2.
	Sqrt2 = MustParse("1.41421356237309505")

	// Ln2 is the natural logarithm of 2.
	Ln2 = MustParse("0.693147180559945309")

	// Ln10 is the natural logarithm of 10.
	Ln10 = MustParse("2.30258509299404568")
)

// Metric prefixes as exact powers of ten.
var (
	Quetta = New(1, 30)
	Ronna  = New(1, 27)
	Yotta  = New(1, 24)
	Zetta  = New(1, 21)
	Exa    = New(1, 18)
	Peta   = New(1, 15)
	Tera   = New(1, 12)
	Giga   = New(1, 9)
	Mega   = New(1, 6)
	Kilo   = New(1, 3)
	Hecto  = New(1, 2)
	Deca   = New(1, 1)
	Deci   = New(1, -1)
	Centi  = New(1, -2)
	Milli  = New(1, -3)
	Micro  = New(1, -6)
	Nano   = New(1, -9)
	Pico   = New(1, -12)
	Femto  = New(1, -15)
	Atto   = New(1, -18)
	Zepto  = New(1, -21)
	Yocto  = New(1, -24)
	Ronto  = New(1, -27)
	Quecto = New(1, -30)
)

// Physical constants in SI units. The defining constants of the 2019
// SI revision are exact; the measured ones carry the 2022 CODATA
// recommended values.
var (
	// SpeedOfLight is the speed of light in vacuum, in m/s.
	SpeedOfLight = New(299_792_458, 0)

	// PlanckConstant is the Planck constant h, in J·s.
	PlanckConstant = MustParse("6.62607015e-34")

	// ReducedPlanckConstant is ħ = h/2π, in J·s.
	ReducedPlanckConstant = PlanckConstant.Quo(Pi.Mul(two))

	// ElementaryCharge is the charge of the proton, in C.
	ElementaryCharge = MustParse("1.602176634e-19")

	// AvogadroConstant is the number of entities per mole, in 1/mol.
	AvogadroConstant = MustParse("6.02214076e23")

	// BoltzmannConstant relates temperature to energy, in J/K.
	BoltzmannConstant = MustParse("1.380649e-23")

	// GasConstant is the molar gas constant R = N·k, in J/(mol·K).
	GasConstant = AvogadroConstant.Mul(BoltzmannConstant)

	// FaradayConstant is the charge per mole of electrons, in C/mol.
	FaradayConstant = AvogadroConstant.Mul(ElementaryCharge)

	// GravitationalConstant is Newton's constant G, in m³/(kg·s²).
	GravitationalConstant = MustParse("6.6743e-11")

	// ElectronMass is the rest mass of the electron, in kg.
	ElectronMass = MustParse("9.1093837139e-31")

	// ProtonMass is the rest mass of the proton, in kg.
	ProtonMass = MustParse("1.67262192595e-27")
)
