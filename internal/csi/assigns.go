package csi

import "github.com/alexiusacademia/csiapi/internal/apierr"

// NamedAssigns groups the named assignment wrappers.
type NamedAssigns struct {
	m         *Model
	modifiers lazy[FrameModifierSets]
	releases  lazy[FrameReleaseSets]
}

func (a *NamedAssigns) FrameModifiers() *FrameModifierSets {
	return a.modifiers.get(func() *FrameModifierSets { return &FrameModifierSets{m: a.m} })
}

func (a *NamedAssigns) FrameReleases() *FrameReleaseSets {
	return a.releases.get(func() *FrameReleaseSets { return &FrameReleaseSets{m: a.m} })
}

// FrameModifiers are property multipliers applied to frame sections.
type FrameModifiers struct {
	Area, As2, As3 float64
	Torsion        float64
	I22, I33       float64
	Mass, Weight   float64
}

// Unmodified leaves every property as defined.
var Unmodified = FrameModifiers{1, 1, 1, 1, 1, 1, 1, 1}

func (f FrameModifiers) values() []float64 {
	return []float64{f.Area, f.As2, f.As3, f.Torsion, f.I22, f.I33, f.Mass, f.Weight}
}

// FrameModifierSets wraps NamedAssign.ModifierFrame.
type FrameModifierSets struct{ m *Model }

func (s *FrameModifierSets) Set(name string, f FrameModifiers) error {
	return s.m.check("ModifierFrame.SetModifiers", name, s.m.seed.ModifierFrame().SetModifiers(name, f.values()))
}

func (s *FrameModifierSets) Get(name string) (FrameModifiers, error) {
	const op = "ModifierFrame.GetModifiers"
	v, ret := s.m.seed.ModifierFrame().GetModifiers(name)
	if err := s.m.check(op, name, ret); err != nil {
		return FrameModifiers{}, err
	}
	if err := sameLen(op, 8, len(v)); err != nil {
		return FrameModifiers{}, err
	}
	return FrameModifiers{Area: v[0], As2: v[1], As3: v[2], Torsion: v[3], I22: v[4], I33: v[5], Mass: v[6], Weight: v[7]}, nil
}

func (s *FrameModifierSets) Count() int {
	return s.m.seed.ModifierFrame().Count()
}

func (s *FrameModifierSets) GetNameList() ([]string, error) {
	n, names, ret := s.m.seed.ModifierFrame().GetNameList()
	return s.m.nameList("ModifierFrame.GetNameList", n, names, ret)
}

func (s *FrameModifierSets) ChangeName(name, newName string) error {
	return s.m.check("ModifierFrame.ChangeName", name, s.m.seed.ModifierFrame().ChangeName(name, newName))
}

func (s *FrameModifierSets) Delete(name string) error {
	return s.m.check("ModifierFrame.Delete", name, s.m.seed.ModifierFrame().Delete(name))
}

// FrameRelease holds end releases and the partial fixity springs of the
// released degrees of freedom, in P, V2, V3, T, M2, M3 order.
type FrameRelease struct {
	I, J        DOF
	StartFixity [6]float64
	EndFixity   [6]float64
}

// FrameReleaseSets wraps NamedAssign.ReleaseFrame.
type FrameReleaseSets struct{ m *Model }

func (s *FrameReleaseSets) Set(name string, r FrameRelease) error {
	ret := s.m.seed.ReleaseFrame().SetReleases(name, r.I[:], r.J[:], r.StartFixity[:], r.EndFixity[:])
	return s.m.check("ReleaseFrame.SetReleases", name, ret)
}

func (s *FrameReleaseSets) Get(name string) (FrameRelease, error) {
	const op = "ReleaseFrame.GetReleases"
	ii, jj, start, end, ret := s.m.seed.ReleaseFrame().GetReleases(name)
	if err := s.m.check(op, name, ret); err != nil {
		return FrameRelease{}, err
	}
	var r FrameRelease
	if len(start) != 6 || len(end) != 6 {
		return r, apierr.Malformed(op, "expected 6 fixity values per end, got %d and %d", len(start), len(end))
	}
	var err error
	if r.I, err = dofFrom(op, ii); err != nil {
		return FrameRelease{}, err
	}
	if r.J, err = dofFrom(op, jj); err != nil {
		return FrameRelease{}, err
	}
	copy(r.StartFixity[:], start)
	copy(r.EndFixity[:], end)
	return r, nil
}

func (s *FrameReleaseSets) Count() int {
	return s.m.seed.ReleaseFrame().Count()
}

func (s *FrameReleaseSets) GetNameList() ([]string, error) {
	n, names, ret := s.m.seed.ReleaseFrame().GetNameList()
	return s.m.nameList("ReleaseFrame.GetNameList", n, names, ret)
}

func (s *FrameReleaseSets) ChangeName(name, newName string) error {
	return s.m.check("ReleaseFrame.ChangeName", name, s.m.seed.ReleaseFrame().ChangeName(name, newName))
}

func (s *FrameReleaseSets) Delete(name string) error {
	return s.m.check("ReleaseFrame.Delete", name, s.m.seed.ReleaseFrame().Delete(name))
}
