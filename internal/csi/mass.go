package csi

import "github.com/alexiusacademia/csiapi/internal/apierr"

// MassLoad is a load pattern contributing to a mass source.
type MassLoad struct {
	Pattern string
	Scale   float64
}

// MassSourceDef says where a mass source takes its mass from.
type MassSourceDef struct {
	FromElements bool
	FromMasses   bool
	FromLoads    bool
	IsDefault    bool
	Loads        []MassLoad
}

func (d MassSourceDef) split() (int, []string, []float64) {
	pats := make([]string, len(d.Loads))
	scales := make([]float64, len(d.Loads))
	for i, l := range d.Loads {
		pats[i], scales[i] = l.Pattern, l.Scale
	}
	return len(d.Loads), pats, scales
}

func massLoads(op string, n int, pats []string, scales []float64) ([]MassLoad, error) {
	if err := sameLen(op, n, len(pats), len(scales)); err != nil {
		return nil, err
	}
	loads := make([]MassLoad, n)
	for i := range loads {
		loads[i] = MassLoad{Pattern: pats[i], Scale: scales[i]}
	}
	return loads, nil
}

// MassSource wraps SourceMass. Named sources need V19 or later; the legacy
// single source works on every version.
type MassSource struct{ m *Model }

func (s *MassSource) named(op string) error {
	if s.m.version < V19 {
		return apierr.Unsupportedf(op, "named mass sources need host %s, connected to %s", V19, s.m.version)
	}
	return nil
}

// Set adds or redefines a named mass source.
func (s *MassSource) Set(name string, d MassSourceDef) error {
	const op = "SourceMass.SetMassSource"
	if err := s.named(op); err != nil {
		return err
	}
	n, pats, scales := d.split()
	ret := s.m.seed.SourceMass().SetMassSource(name, d.FromElements, d.FromMasses, d.FromLoads, d.IsDefault, n, pats, scales)
	return s.m.check(op, name, ret)
}

func (s *MassSource) Get(name string) (MassSourceDef, error) {
	const op = "SourceMass.GetMassSource"
	if err := s.named(op); err != nil {
		return MassSourceDef{}, err
	}
	fe, fm, fl, def, n, pats, scales, ret := s.m.seed.SourceMass().GetMassSource(name)
	if err := s.m.check(op, name, ret); err != nil {
		return MassSourceDef{}, err
	}
	loads, err := massLoads(op, n, pats, scales)
	if err != nil {
		return MassSourceDef{}, err
	}
	return MassSourceDef{FromElements: fe, FromMasses: fm, FromLoads: fl, IsDefault: def, Loads: loads}, nil
}

func (s *MassSource) GetNameList() ([]string, error) {
	const op = "SourceMass.GetNameList"
	if err := s.named(op); err != nil {
		return nil, err
	}
	n, names, ret := s.m.seed.SourceMass().GetNameList()
	return s.m.nameList(op, n, names, ret)
}

func (s *MassSource) Count() (int, error) {
	if err := s.named("SourceMass.Count"); err != nil {
		return 0, err
	}
	return s.m.seed.SourceMass().Count(), nil
}

// Default returns the name of the default mass source.
func (s *MassSource) Default() (string, error) {
	const op = "SourceMass.GetDefault"
	if err := s.named(op); err != nil {
		return "", err
	}
	name, ret := s.m.seed.SourceMass().GetDefault()
	if err := s.m.check(op, "", ret); err != nil {
		return "", err
	}
	return name, nil
}

func (s *MassSource) SetDefault(name string) error {
	const op = "SourceMass.SetDefault"
	if err := s.named(op); err != nil {
		return err
	}
	return s.m.check(op, name, s.m.seed.SourceMass().SetDefault(name))
}

func (s *MassSource) ChangeName(name, newName string) error {
	const op = "SourceMass.ChangeName"
	if err := s.named(op); err != nil {
		return err
	}
	return s.m.check(op, name, s.m.seed.SourceMass().ChangeName(name, newName))
}

// Delete removes a mass source. The host refuses to delete the default.
func (s *MassSource) Delete(name string) error {
	const op = "SourceMass.Delete"
	if err := s.named(op); err != nil {
		return err
	}
	return s.m.check(op, name, s.m.seed.SourceMass().Delete(name))
}

// SetLegacy sets the model's single mass source. IsDefault is ignored.
func (s *MassSource) SetLegacy(d MassSourceDef) error {
	n, pats, scales := d.split()
	ret := s.m.seed.SourceMass().SetMassSourceLegacy(d.FromElements, d.FromMasses, d.FromLoads, n, pats, scales)
	return s.m.check("SourceMass.SetMassSourceLegacy", "", ret)
}

func (s *MassSource) Legacy() (MassSourceDef, error) {
	const op = "SourceMass.GetMassSourceLegacy"
	fe, fm, fl, n, pats, scales, ret := s.m.seed.SourceMass().GetMassSourceLegacy()
	if err := s.m.check(op, "", ret); err != nil {
		return MassSourceDef{}, err
	}
	loads, err := massLoads(op, n, pats, scales)
	if err != nil {
		return MassSourceDef{}, err
	}
	return MassSourceDef{FromElements: fe, FromMasses: fm, FromLoads: fl, Loads: loads}, nil
}
