package nscp

import (
	"math"

	"github.com/alexiusacademia/csiapi/internal/csi"
)

// NSCP 2015 material constants, in MPa and per degree Celsius.
const (
	// Modulus of elasticity for steel (Section 420.2.2)
	Es = 200000.0

	// Poisson's ratio and thermal expansion of normal weight concrete
	ConcretePoisson = 0.2
	ConcreteThermal = 9.9e-6

	SteelPoisson = 0.3
	SteelThermal = 11.7e-6
)

// ConcreteModulus is Ec = 4700√f'c for normal weight concrete
// (Section 419.2.2.1), with f'c in MPa.
func ConcreteModulus(fc float64) float64 {
	if fc <= 0 {
		return 0
	}
	return 4700 * math.Sqrt(fc)
}

// Concrete returns isotropic properties in MPa for concrete of strength fc.
func Concrete(fc float64) csi.Isotropic {
	return csi.Isotropic{E: ConcreteModulus(fc), U: ConcretePoisson, A: ConcreteThermal}
}

// Steel returns isotropic properties in MPa for reinforcing and
// structural steel.
func Steel() csi.Isotropic {
	return csi.Isotropic{E: Es, U: SteelPoisson, A: SteelThermal}
}
