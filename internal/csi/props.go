package csi

import (
	"github.com/alexiusacademia/csiapi/internal/apierr"
	"github.com/alexiusacademia/csiapi/internal/seed"
)

// Properties groups the property definition wrappers.
type Properties struct {
	m         *Model
	materials lazy[Materials]
	sections  lazy[FrameSections]
}

func (p *Properties) Materials() *Materials {
	return p.materials.get(func() *Materials { return &Materials{m: p.m} })
}

func (p *Properties) FrameSections() *FrameSections {
	return p.sections.get(func() *FrameSections { return &FrameSections{m: p.m} })
}

// Isotropic holds isotropic mechanical properties.
type Isotropic struct {
	E float64 // modulus of elasticity
	U float64 // Poisson's ratio
	A float64 // thermal coefficient
}

// Materials wraps PropMaterial.
type Materials struct{ m *Model }

// Add defines a material of type t with host defaults.
func (s *Materials) Add(name string, t MaterialType) error {
	const op = "PropMaterial.SetMaterial"
	code, err := materialTypes.toCode(op, s.m.version, t)
	if err != nil {
		return err
	}
	return s.m.check(op, name, s.m.seed.PropMaterial().SetMaterial(name, code, -1, "", ""))
}

func (s *Materials) Type(name string) (MaterialType, error) {
	const op = "PropMaterial.GetMaterial"
	code, _, _, _, ret := s.m.seed.PropMaterial().GetMaterial(name)
	if err := s.m.check(op, name, ret); err != nil {
		return 0, err
	}
	return materialTypes.fromCode(op, code)
}

func (s *Materials) SetIsotropic(name string, iso Isotropic) error {
	return s.m.check("PropMaterial.SetMPIsotropic", name, s.m.seed.PropMaterial().SetMPIsotropic(name, iso.E, iso.U, iso.A))
}

func (s *Materials) Isotropic(name string) (Isotropic, error) {
	e, u, a, ret := s.m.seed.PropMaterial().GetMPIsotropic(name)
	if err := s.m.check("PropMaterial.GetMPIsotropic", name, ret); err != nil {
		return Isotropic{}, err
	}
	return Isotropic{E: e, U: u, A: a}, nil
}

// SetWeight sets weight per unit volume; the host derives mass.
func (s *Materials) SetWeight(name string, weight float64) error {
	ret := s.m.seed.PropMaterial().SetWeightAndMass(name, seed.WeightPerVolume, weight)
	return s.m.check("PropMaterial.SetWeightAndMass", name, ret)
}

// SetMass sets mass per unit volume; the host derives weight.
func (s *Materials) SetMass(name string, mass float64) error {
	ret := s.m.seed.PropMaterial().SetWeightAndMass(name, seed.MassPerVolume, mass)
	return s.m.check("PropMaterial.SetWeightAndMass", name, ret)
}

// Weight returns weight and mass per unit volume.
func (s *Materials) Weight(name string) (weight, mass float64, err error) {
	weight, mass, ret := s.m.seed.PropMaterial().GetWeightAndMass(name)
	if err := s.m.check("PropMaterial.GetWeightAndMass", name, ret); err != nil {
		return 0, 0, err
	}
	return weight, mass, nil
}

func (s *Materials) Count() int {
	return s.m.seed.PropMaterial().Count()
}

func (s *Materials) GetNameList() ([]string, error) {
	n, names, ret := s.m.seed.PropMaterial().GetNameList()
	return s.m.nameList("PropMaterial.GetNameList", n, names, ret)
}

func (s *Materials) ChangeName(name, newName string) error {
	return s.m.check("PropMaterial.ChangeName", name, s.m.seed.PropMaterial().ChangeName(name, newName))
}

func (s *Materials) Delete(name string) error {
	return s.m.check("PropMaterial.Delete", name, s.m.seed.PropMaterial().Delete(name))
}

// Rectangle is a solid rectangular section.
type Rectangle struct {
	Material string
	Depth    float64 // t3
	Width    float64 // t2
}

// GeneralSection holds the properties of a general frame section, in
// section local axes.
type GeneralSection struct {
	T3, T2   float64
	Area     float64
	As2, As3 float64
	Torsion  float64
	I22, I33 float64
	S22, S33 float64
	Z22, Z33 float64
	R22, R33 float64
}

func (g GeneralSection) values() []float64 {
	return []float64{g.T3, g.T2, g.Area, g.As2, g.As3, g.Torsion, g.I22, g.I33, g.S22, g.S33, g.Z22, g.Z33, g.R22, g.R33}
}

func generalFrom(op string, v []float64) (GeneralSection, error) {
	if err := sameLen(op, seed.GeneralValueCount, len(v)); err != nil {
		return GeneralSection{}, err
	}
	return GeneralSection{
		T3: v[0], T2: v[1], Area: v[2], As2: v[3], As3: v[4], Torsion: v[5],
		I22: v[6], I33: v[7], S22: v[8], S33: v[9], Z22: v[10], Z33: v[11], R22: v[12], R33: v[13],
	}, nil
}

// FrameSections wraps PropFrame.
type FrameSections struct{ m *Model }

func (s *FrameSections) SetRectangle(name string, r Rectangle) error {
	const op = "PropFrame.SetRectangle"
	if r.Depth <= 0 || r.Width <= 0 {
		return apierr.Invalid(op, "rectangle %q needs positive depth and width", name)
	}
	return s.m.check(op, name, s.m.seed.PropFrame().SetRectangle(name, r.Material, r.Depth, r.Width))
}

func (s *FrameSections) Rectangle(name string) (Rectangle, error) {
	mat, t3, t2, ret := s.m.seed.PropFrame().GetRectangle(name)
	if err := s.m.check("PropFrame.GetRectangle", name, ret); err != nil {
		return Rectangle{}, err
	}
	return Rectangle{Material: mat, Depth: t3, Width: t2}, nil
}

func (s *FrameSections) SetGeneral(name, material string, g GeneralSection) error {
	return s.m.check("PropFrame.SetGeneral", name, s.m.seed.PropFrame().SetGeneral(name, material, g.values()))
}

// General returns the material and properties of a general section.
func (s *FrameSections) General(name string) (string, GeneralSection, error) {
	const op = "PropFrame.GetGeneral"
	mat, v, ret := s.m.seed.PropFrame().GetGeneral(name)
	if err := s.m.check(op, name, ret); err != nil {
		return "", GeneralSection{}, err
	}
	g, err := generalFrom(op, v)
	if err != nil {
		return "", GeneralSection{}, err
	}
	return mat, g, nil
}

func (s *FrameSections) Type(name string) (FrameSectionType, error) {
	const op = "PropFrame.GetTypeOAPI"
	code, ret := s.m.seed.PropFrame().GetTypeOAPI(name)
	if err := s.m.check(op, name, ret); err != nil {
		return 0, err
	}
	return frameSectionTypes.fromCode(op, code)
}

func (s *FrameSections) Count() int {
	return s.m.seed.PropFrame().Count()
}

func (s *FrameSections) GetNameList() ([]string, error) {
	n, names, ret := s.m.seed.PropFrame().GetNameList()
	return s.m.nameList("PropFrame.GetNameList", n, names, ret)
}

func (s *FrameSections) ChangeName(name, newName string) error {
	return s.m.check("PropFrame.ChangeName", name, s.m.seed.PropFrame().ChangeName(name, newName))
}

func (s *FrameSections) Delete(name string) error {
	return s.m.check("PropFrame.Delete", name, s.m.seed.PropFrame().Delete(name))
}
