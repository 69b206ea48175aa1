package csi

import (
	"github.com/alexiusacademia/csiapi/internal/apierr"
	"github.com/alexiusacademia/csiapi/internal/seed"
)

// CaseInfo describes a load case.
type CaseInfo struct {
	Type             CaseType
	SubType          CaseSubType
	DesignType       PatternType
	DesignTypeOption DesignTypeOption
	// Auto is set for cases the host created automatically.
	Auto bool
}

// CaseLoadKind says whether a static case load is a pattern or a uniform
// acceleration.
type CaseLoadKind string

const (
	CaseLoadPattern CaseLoadKind = "Load"
	CaseLoadAccel   CaseLoadKind = "Accel"
)

// CaseLoad is one load of a static case. For accelerations Name is the
// direction: UX, UY, UZ, RX, RY or RZ.
type CaseLoad struct {
	Kind  CaseLoadKind
	Name  string
	Scale float64
}

// SpectrumLoad is one response spectrum case load. Direction is U1, U2,
// U3, R1, R2 or R3.
type SpectrumLoad struct {
	Direction string
	Function  string
	Scale     float64
	CSys      string
	Angle     float64
}

// LoadCases wraps LoadCases and the per-type case wrappers.
type LoadCases struct {
	m         *Model
	linear    lazy[StaticCases]
	nonlinear lazy[StaticCases]
	modal     lazy[ModalCases]
	spectrum  lazy[SpectrumCases]
}

func (c *LoadCases) StaticLinear() *StaticCases {
	return c.linear.get(func() *StaticCases {
		return &StaticCases{m: c.m, prefix: "StaticLinear", api: c.m.seed.StaticLinear}
	})
}

func (c *LoadCases) StaticNonlinear() *StaticCases {
	return c.nonlinear.get(func() *StaticCases {
		return &StaticCases{m: c.m, prefix: "StaticNonlinear", api: c.m.seed.StaticNonlinear}
	})
}

func (c *LoadCases) ModalEigen() *ModalCases {
	return c.modal.get(func() *ModalCases { return &ModalCases{m: c.m} })
}

func (c *LoadCases) ResponseSpectrum() *SpectrumCases {
	return c.spectrum.get(func() *SpectrumCases { return &SpectrumCases{m: c.m} })
}

// Count counts cases of type t; the zero type counts all cases.
func (c *LoadCases) Count(t CaseType) (int, error) {
	code, err := caseTypes.filterCode("LoadCases.Count", c.m.version, t)
	if err != nil {
		return 0, err
	}
	return c.m.seed.LoadCases().Count(code), nil
}

// GetNameList lists cases of type t; the zero type lists all.
func (c *LoadCases) GetNameList(t CaseType) ([]string, error) {
	const op = "LoadCases.GetNameList"
	code, err := caseTypes.filterCode(op, c.m.version, t)
	if err != nil {
		return nil, err
	}
	n, names, ret := c.m.seed.LoadCases().GetNameList(code)
	return c.m.nameList(op, n, names, ret)
}

func (c *LoadCases) Type(name string) (CaseInfo, error) {
	const op = "LoadCases.GetTypeOAPI"
	caseType, subType, designType, option, auto, ret := c.m.seed.LoadCases().GetTypeOAPI(name)
	if err := c.m.check(op, name, ret); err != nil {
		return CaseInfo{}, err
	}
	var info CaseInfo
	var err error
	if info.Type, err = caseTypes.fromCode(op, caseType); err != nil {
		return CaseInfo{}, err
	}
	if info.Type == CaseModal {
		if info.SubType, err = modalSubTypes.fromCode(op, subType); err != nil {
			return CaseInfo{}, err
		}
	}
	if info.DesignType, err = patternTypes.fromCode(op, designType); err != nil {
		return CaseInfo{}, err
	}
	if info.DesignTypeOption, err = designTypeOptions.fromCode(op, option); err != nil {
		return CaseInfo{}, err
	}
	info.Auto = auto != 0
	return info, nil
}

// SetDesignType sets how the design type is chosen. t is ignored when the
// option is DesignProgramDetermined.
func (c *LoadCases) SetDesignType(name string, option DesignTypeOption, t PatternType) error {
	const op = "LoadCases.SetDesignType"
	optCode, err := designTypeOptions.toCode(op, c.m.version, option)
	if err != nil {
		return err
	}
	typeCode := 0
	if option == DesignUserSpecified {
		if typeCode, err = patternTypes.toCode(op, c.m.version, t); err != nil {
			return err
		}
	}
	return c.m.check(op, name, c.m.seed.LoadCases().SetDesignType(name, optCode, typeCode))
}

func (c *LoadCases) ChangeName(name, newName string) error {
	return c.m.check("LoadCases.ChangeName", name, c.m.seed.LoadCases().ChangeName(name, newName))
}

func (c *LoadCases) Delete(name string) error {
	return c.m.check("LoadCases.Delete", name, c.m.seed.LoadCases().Delete(name))
}

// StaticCases wraps linear or nonlinear static cases.
type StaticCases struct {
	m      *Model
	prefix string
	api    func() seed.StaticCase
}

// SetCase adds a static case, or resets an existing case to defaults.
func (s *StaticCases) SetCase(name string) error {
	return s.m.check(s.prefix+".SetCase", name, s.api().SetCase(name))
}

// SetLoads replaces the loads of a case.
func (s *StaticCases) SetLoads(name string, loads []CaseLoad) error {
	op := s.prefix + ".SetLoads"
	kinds := make([]string, len(loads))
	names := make([]string, len(loads))
	scales := make([]float64, len(loads))
	for i, l := range loads {
		if l.Kind != CaseLoadPattern && l.Kind != CaseLoadAccel {
			return apierr.Invalid(op, "load %d: unknown kind %q", i, l.Kind)
		}
		kinds[i], names[i], scales[i] = string(l.Kind), l.Name, l.Scale
	}
	return s.m.check(op, name, s.api().SetLoads(name, len(loads), kinds, names, scales))
}

// Loads returns the loads of a static case.
func (s *StaticCases) Loads(name string) ([]CaseLoad, error) {
	op := s.prefix + ".GetLoads"
	n, kinds, names, scales, ret := s.api().GetLoads(name)
	if err := s.m.check(op, name, ret); err != nil {
		return nil, err
	}
	if err := sameLen(op, n, len(kinds), len(names), len(scales)); err != nil {
		return nil, err
	}
	loads := make([]CaseLoad, n)
	for i := range loads {
		kind := CaseLoadKind(kinds[i])
		if kind != CaseLoadPattern && kind != CaseLoadAccel {
			return nil, apierr.Malformed(op, "load %d: unknown kind %q", i, kinds[i])
		}
		loads[i] = CaseLoad{Kind: kind, Name: names[i], Scale: scales[i]}
	}
	return loads, nil
}

// ModalCases wraps eigenvector modal cases.
type ModalCases struct{ m *Model }

func (c *ModalCases) SetCase(name string) error {
	return c.m.check("ModalEigen.SetCase", name, c.m.seed.ModalEigen().SetCase(name))
}

func (c *ModalCases) SetNumberModes(name string, maxModes, minModes int) error {
	ret := c.m.seed.ModalEigen().SetNumberModes(name, maxModes, minModes)
	return c.m.check("ModalEigen.SetNumberModes", name, ret)
}

// NumberModes returns the maximum and minimum number of modes.
func (c *ModalCases) NumberModes(name string) (maxModes, minModes int, err error) {
	maxModes, minModes, ret := c.m.seed.ModalEigen().GetNumberModes(name)
	if err := c.m.check("ModalEigen.GetNumberModes", name, ret); err != nil {
		return 0, 0, err
	}
	return maxModes, minModes, nil
}

// SpectrumCases wraps response spectrum cases.
type SpectrumCases struct{ m *Model }

func (c *SpectrumCases) SetCase(name string) error {
	return c.m.check("ResponseSpectrum.SetCase", name, c.m.seed.ResponseSpectrum().SetCase(name))
}

func (c *SpectrumCases) SetLoads(name string, loads []SpectrumLoad) error {
	n := len(loads)
	dirs, funcs, csys := make([]string, n), make([]string, n), make([]string, n)
	scales, angles := make([]float64, n), make([]float64, n)
	for i, l := range loads {
		dirs[i], funcs[i], scales[i], csys[i], angles[i] = l.Direction, l.Function, l.Scale, l.CSys, l.Angle
	}
	ret := c.m.seed.ResponseSpectrum().SetLoads(name, n, dirs, funcs, scales, csys, angles)
	return c.m.check("ResponseSpectrum.SetLoads", name, ret)
}

func (c *SpectrumCases) Loads(name string) ([]SpectrumLoad, error) {
	const op = "ResponseSpectrum.GetLoads"
	n, dirs, funcs, scales, csys, angles, ret := c.m.seed.ResponseSpectrum().GetLoads(name)
	if err := c.m.check(op, name, ret); err != nil {
		return nil, err
	}
	if err := sameLen(op, n, len(dirs), len(funcs), len(scales), len(csys), len(angles)); err != nil {
		return nil, err
	}
	loads := make([]SpectrumLoad, n)
	for i := range loads {
		loads[i] = SpectrumLoad{Direction: dirs[i], Function: funcs[i], Scale: scales[i], CSys: csys[i], Angle: angles[i]}
	}
	return loads, nil
}
