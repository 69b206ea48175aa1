package csi

import "github.com/alexiusacademia/csiapi/internal/seed"

// LoadPatterns wraps LoadPatterns and its auto-load sub-wrappers.
type LoadPatterns struct {
	m       *Model
	seismic lazy[AutoLoads]
	wind    lazy[AutoLoads]
}

// AutoSeismic reports the automatic seismic code assigned to quake patterns.
func (p *LoadPatterns) AutoSeismic() *AutoLoads {
	return p.seismic.get(func() *AutoLoads {
		return &AutoLoads{m: p.m, op: "AutoSeismic.GetAutoCode", get: p.m.seed.AutoSeismic}
	})
}

// AutoWind reports the automatic wind code assigned to wind patterns.
func (p *LoadPatterns) AutoWind() *AutoLoads {
	return p.wind.get(func() *AutoLoads {
		return &AutoLoads{m: p.m, op: "AutoWind.GetAutoCode", get: p.m.seed.AutoWind}
	})
}

// Add defines a pattern. With addCase the host also adds a linear static
// case of the same name.
func (p *LoadPatterns) Add(name string, t PatternType, selfWeight float64, addCase bool) error {
	const op = "LoadPatterns.Add"
	code, err := patternTypes.toCode(op, p.m.version, t)
	if err != nil {
		return err
	}
	return p.m.check(op, name, p.m.seed.LoadPatterns().Add(name, code, selfWeight, addCase))
}

func (p *LoadPatterns) Count() int {
	return p.m.seed.LoadPatterns().Count()
}

func (p *LoadPatterns) GetNameList() ([]string, error) {
	n, names, ret := p.m.seed.LoadPatterns().GetNameList()
	return p.m.nameList("LoadPatterns.GetNameList", n, names, ret)
}

func (p *LoadPatterns) Type(name string) (PatternType, error) {
	const op = "LoadPatterns.GetLoadType"
	code, ret := p.m.seed.LoadPatterns().GetLoadType(name)
	if err := p.m.check(op, name, ret); err != nil {
		return 0, err
	}
	return patternTypes.fromCode(op, code)
}

func (p *LoadPatterns) SetType(name string, t PatternType) error {
	const op = "LoadPatterns.SetLoadType"
	code, err := patternTypes.toCode(op, p.m.version, t)
	if err != nil {
		return err
	}
	return p.m.check(op, name, p.m.seed.LoadPatterns().SetLoadType(name, code))
}

// SelfWeight returns the self-weight multiplier.
func (p *LoadPatterns) SelfWeight(name string) (float64, error) {
	v, ret := p.m.seed.LoadPatterns().GetSelfWTMultiplier(name)
	if err := p.m.check("LoadPatterns.GetSelfWTMultiplier", name, ret); err != nil {
		return 0, err
	}
	return v, nil
}

func (p *LoadPatterns) SetSelfWeight(name string, v float64) error {
	return p.m.check("LoadPatterns.SetSelfWTMultiplier", name, p.m.seed.LoadPatterns().SetSelfWTMultiplier(name, v))
}

func (p *LoadPatterns) ChangeName(name, newName string) error {
	return p.m.check("LoadPatterns.ChangeName", name, p.m.seed.LoadPatterns().ChangeName(name, newName))
}

func (p *LoadPatterns) Delete(name string) error {
	return p.m.check("LoadPatterns.Delete", name, p.m.seed.LoadPatterns().Delete(name))
}

// AutoLoads wraps an automatic load code category.
type AutoLoads struct {
	m   *Model
	op  string
	get func() seed.AutoCode
}

// Code returns the automatic load code of a pattern, "" when none is
// assigned.
func (a *AutoLoads) Code(pattern string) (string, error) {
	code, ret := a.get().GetAutoCode(pattern)
	if err := a.m.check(a.op, pattern, ret); err != nil {
		return "", err
	}
	return code, nil
}
