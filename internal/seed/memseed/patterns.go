package memseed

import "github.com/alexiusacademia/csiapi/internal/seed"

type patternAPI struct{ m *Model }

func (m *Model) validPatternType(t int) bool {
	switch {
	case t >= seed.PatternDead && t <= seed.PatternWave:
		return true
	case t == seed.PatternPrestress || t == seed.PatternHyperstatic:
		return m.versionMajor() >= 19
	case t == seed.PatternConstruction:
		return m.versionMajor() >= 21
	}
	return false
}

func (a patternAPI) Add(name string, patternType int, selfWTMultiplier float64, addLoadCase bool) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("LoadPatterns.Add"); code != 0 {
		return code
	}
	if name == "" || m.state.Patterns.Has(name) || !m.validPatternType(patternType) {
		return retFail
	}
	if addLoadCase && m.state.Cases.Has(name) {
		return retFail
	}
	m.state.Patterns.Put(name, &PatternDef{Type: patternType, SelfWeight: selfWTMultiplier})
	if addLoadCase {
		m.state.Cases.Put(name, &CaseDef{
			Type:       seed.CaseLinearStatic,
			DesignType: patternType,
			Loads:      []CaseLoad{{Type: "Load", Name: name, Scale: 1}},
		})
	}
	return retOK
}

func (a patternAPI) ChangeName(name, newName string) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("LoadPatterns.ChangeName"); code != 0 {
		return code
	}
	if !m.state.Patterns.Rename(name, newName) {
		return retFail
	}
	for _, c := range m.state.Cases.Items {
		for i := range c.Loads {
			if c.Loads[i].Type == "Load" && c.Loads[i].Name == name {
				c.Loads[i].Name = newName
			}
		}
	}
	for _, ms := range m.state.MassSources.Items {
		replace(ms.LoadPatterns, name, newName)
	}
	replace(m.state.LegacyMass.LoadPatterns, name, newName)
	for _, p := range m.state.Points.Items {
		for i := range p.Loads {
			if p.Loads[i].Pattern == name {
				p.Loads[i].Pattern = newName
			}
		}
	}
	return retOK
}

func (a patternAPI) Count() int {
	a.m.mu.Lock()
	defer a.m.mu.Unlock()
	return a.m.state.Patterns.Len()
}

// Delete fails for the last pattern and for patterns still loaded by a case.
func (a patternAPI) Delete(name string) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("LoadPatterns.Delete"); code != 0 {
		return code
	}
	if !m.state.Patterns.Has(name) || m.state.Patterns.Len() == 1 {
		return retFail
	}
	for _, c := range m.state.Cases.Items {
		for _, l := range c.Loads {
			if l.Type == "Load" && l.Name == name {
				return retFail
			}
		}
	}
	m.state.Patterns.Delete(name)
	for _, p := range m.state.Points.Items {
		kept := p.Loads[:0]
		for _, l := range p.Loads {
			if l.Pattern != name {
				kept = append(kept, l)
			}
		}
		p.Loads = kept
	}
	return retOK
}

func (a patternAPI) GetLoadType(name string) (int, int) {
	a.m.mu.Lock()
	defer a.m.mu.Unlock()
	if code := a.m.fault("LoadPatterns.GetLoadType"); code != 0 {
		return 0, code
	}
	p, ok := a.m.state.Patterns.Get(name)
	if !ok {
		return 0, retFail
	}
	return p.Type, retOK
}

func (a patternAPI) SetLoadType(name string, patternType int) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("LoadPatterns.SetLoadType"); code != 0 {
		return code
	}
	p, ok := m.state.Patterns.Get(name)
	if !ok || !m.validPatternType(patternType) {
		return retFail
	}
	p.Type = patternType
	return retOK
}

func (a patternAPI) GetNameList() (int, []string, int) {
	a.m.mu.Lock()
	defer a.m.mu.Unlock()
	if code := a.m.fault("LoadPatterns.GetNameList"); code != 0 {
		return 0, nil, code
	}
	return names(a.m.state.Patterns.List())
}

func (a patternAPI) GetSelfWTMultiplier(name string) (float64, int) {
	a.m.mu.Lock()
	defer a.m.mu.Unlock()
	if code := a.m.fault("LoadPatterns.GetSelfWTMultiplier"); code != 0 {
		return 0, code
	}
	p, ok := a.m.state.Patterns.Get(name)
	if !ok {
		return 0, retFail
	}
	return p.SelfWeight, retOK
}

func (a patternAPI) SetSelfWTMultiplier(name string, value float64) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("LoadPatterns.SetSelfWTMultiplier"); code != 0 {
		return code
	}
	p, ok := m.state.Patterns.Get(name)
	if !ok {
		return retFail
	}
	p.SelfWeight = value
	return retOK
}

// autoCodeAPI reports the automatic lateral load code of a pattern. The
// offline model records codes only through its state.
type autoCodeAPI struct {
	m    *Model
	kind string
}

func (a autoCodeAPI) GetAutoCode(name string) (string, int) {
	a.m.mu.Lock()
	defer a.m.mu.Unlock()
	if code := a.m.fault(a.kind + ".GetAutoCode"); code != 0 {
		return "", code
	}
	p, ok := a.m.state.Patterns.Get(name)
	if !ok {
		return "", retFail
	}
	switch {
	case a.kind == "AutoSeismic" && p.Type == seed.PatternQuake:
		return p.AutoCode, retOK
	case a.kind == "AutoWind" && p.Type == seed.PatternWind:
		return p.AutoCode, retOK
	}
	return "", retOK
}
