package modeldef

import "github.com/alexiusacademia/csiapi/internal/csi"

// perMPa converts a stress in MPa to each unit system's force per length
// squared.
var perMPa = map[csi.Units]float64{
	csi.UnitsLbInF:  145.0377,
	csi.UnitsLbFtF:  20885.43,
	csi.UnitsKipInF: 0.1450377,
	csi.UnitsKipFtF: 20.88543,
	csi.UnitsKNmmC:  1e-3,
	csi.UnitsKNcmC:  0.1,
	csi.UnitsKNmC:   1e3,
	csi.UnitsNmmC:   1,
	csi.UnitsNcmC:   100,
	csi.UnitsNmC:    1e6,
	csi.UnitsKgfmmC: 0.1019716,
	csi.UnitsKgfcmC: 10.19716,
	csi.UnitsKgfmC:  101971.6,
	csi.UnitsTonmmC: 1.019716e-4,
	csi.UnitsToncmC: 0.01019716,
	csi.UnitsTonmC:  101.9716,
}

// fahrenheit reports whether u measures temperature in degrees F.
func fahrenheit(u csi.Units) bool {
	switch u {
	case csi.UnitsLbInF, csi.UnitsLbFtF, csi.UnitsKipInF, csi.UnitsKipFtF:
		return true
	}
	return false
}

// inUnits converts isotropic properties given in MPa and per degree C.
func inUnits(iso csi.Isotropic, u csi.Units) csi.Isotropic {
	iso.E *= perMPa[u]
	if fahrenheit(u) {
		iso.A *= 5.0 / 9.0
	}
	return iso
}
