package memseed

import "github.com/alexiusacademia/csiapi/internal/seed"

type caseAPI struct{ m *Model }

func (m *Model) caseInUse(name string) bool {
	for _, c := range m.state.Combos.Items {
		for _, it := range c.Items {
			if it.CType == seed.CNameLoadCase && it.Name == name {
				return true
			}
		}
	}
	return false
}

func (a caseAPI) ChangeName(name, newName string) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("LoadCases.ChangeName"); code != 0 {
		return code
	}
	if m.state.Combos.Has(newName) || !m.state.Cases.Rename(name, newName) {
		return retFail
	}
	for _, c := range m.state.Combos.Items {
		for i := range c.Items {
			if c.Items[i].CType == seed.CNameLoadCase && c.Items[i].Name == name {
				c.Items[i].Name = newName
			}
		}
	}
	if sel, ok := m.state.Output[name]; ok {
		delete(m.state.Output, name)
		m.state.Output[newName] = sel
	}
	if run, ok := m.state.RunFlags[name]; ok {
		delete(m.state.RunFlags, name)
		m.state.RunFlags[newName] = run
	}
	return retOK
}

func (a caseAPI) matching(caseType int) []string {
	var out []string
	for _, name := range a.m.state.Cases.Names {
		if caseType == 0 || a.m.state.Cases.Items[name].Type == caseType {
			out = append(out, name)
		}
	}
	return out
}

func (a caseAPI) Count(caseType int) int {
	a.m.mu.Lock()
	defer a.m.mu.Unlock()
	return len(a.matching(caseType))
}

func (a caseAPI) Delete(name string) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("LoadCases.Delete"); code != 0 {
		return code
	}
	if m.caseInUse(name) || !m.state.Cases.Delete(name) {
		return retFail
	}
	delete(m.state.Output, name)
	delete(m.state.RunFlags, name)
	return retOK
}

func (a caseAPI) GetNameList(caseType int) (int, []string, int) {
	a.m.mu.Lock()
	defer a.m.mu.Unlock()
	if code := a.m.fault("LoadCases.GetNameList"); code != 0 {
		return 0, nil, code
	}
	return names(a.matching(caseType))
}

func (a caseAPI) GetTypeOAPI(name string) (int, int, int, int, int, int) {
	a.m.mu.Lock()
	defer a.m.mu.Unlock()
	if code := a.m.fault("LoadCases.GetTypeOAPI"); code != 0 {
		return 0, 0, 0, 0, 0, code
	}
	c, ok := a.m.state.Cases.Get(name)
	if !ok {
		return 0, 0, 0, 0, 0, retFail
	}
	return c.Type, c.SubType, c.DesignType, c.DesignTypeOption, 0, retOK
}

func (a caseAPI) SetDesignType(name string, designTypeOption int, designType int) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("LoadCases.SetDesignType"); code != 0 {
		return code
	}
	c, ok := m.state.Cases.Get(name)
	if !ok {
		return retFail
	}
	switch designTypeOption {
	case 0:
		c.DesignTypeOption = 0
		c.DesignType = m.programDesignType(c)
	case 1:
		if !m.validPatternType(designType) {
			return retFail
		}
		c.DesignTypeOption = 1
		c.DesignType = designType
	default:
		return retFail
	}
	return retOK
}

// programDesignType is the design type the host derives from a case: the
// type of its first loaded pattern, otherwise Other.
func (m *Model) programDesignType(c *CaseDef) int {
	for _, l := range c.Loads {
		if l.Type != "Load" {
			continue
		}
		if p, ok := m.state.Patterns.Get(l.Name); ok {
			return p.Type
		}
	}
	if c.Type == seed.CaseResponseSpectrum {
		return seed.PatternQuake
	}
	return seed.PatternOther
}

// defineCase creates name as a case of caseType, reinitializing an existing
// case of another type. An existing case of the same type is kept.
func (m *Model) defineCase(op, name string, caseType int, init func(*CaseDef)) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate(op); code != 0 {
		return code
	}
	if name == "" || m.state.Combos.Has(name) {
		return retFail
	}
	if c, ok := m.state.Cases.Get(name); ok && c.Type == caseType {
		return retOK
	}
	c := &CaseDef{Type: caseType}
	if init != nil {
		init(c)
	}
	c.DesignType = m.programDesignType(c)
	m.state.Cases.Put(name, c)
	return retOK
}

func (m *Model) caseOfType(name string, caseType int) (*CaseDef, bool) {
	c, ok := m.state.Cases.Get(name)
	if !ok || c.Type != caseType {
		return nil, false
	}
	return c, true
}

var accelDirections = map[string]bool{"UX": true, "UY": true, "UZ": true, "RX": true, "RY": true, "RZ": true}

type staticAPI struct {
	m        *Model
	caseType int
	prefix   string
}

func (a staticAPI) SetCase(name string) int {
	return a.m.defineCase(a.prefix+".SetCase", name, a.caseType, nil)
}

func (a staticAPI) GetLoads(name string) (int, []string, []string, []float64, int) {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.fault(a.prefix + ".GetLoads"); code != 0 {
		return 0, nil, nil, nil, code
	}
	c, ok := m.caseOfType(name, a.caseType)
	if !ok {
		return 0, nil, nil, nil, retFail
	}
	n := len(c.Loads)
	loadType := make([]string, n)
	loadName := make([]string, n)
	sf := make([]float64, n)
	for i, l := range c.Loads {
		loadType[i], loadName[i], sf[i] = l.Type, l.Name, l.Scale
	}
	return n, loadType, loadName, sf, retOK
}

func (a staticAPI) SetLoads(name string, n int, loadType []string, loadName []string, sf []float64) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate(a.prefix + ".SetLoads"); code != 0 {
		return code
	}
	c, ok := m.caseOfType(name, a.caseType)
	if !ok || n < 0 || len(loadType) != n || len(loadName) != n || len(sf) != n {
		return retFail
	}
	loads := make([]CaseLoad, n)
	for i := 0; i < n; i++ {
		switch loadType[i] {
		case "Load":
			if !m.state.Patterns.Has(loadName[i]) {
				return retFail
			}
		case "Accel":
			if !accelDirections[loadName[i]] {
				return retFail
			}
		default:
			return retFail
		}
		loads[i] = CaseLoad{Type: loadType[i], Name: loadName[i], Scale: sf[i]}
	}
	c.Loads = loads
	if c.DesignTypeOption == 0 {
		c.DesignType = m.programDesignType(c)
	}
	return retOK
}

type modalAPI struct{ m *Model }

func (a modalAPI) SetCase(name string) int {
	return a.m.defineCase("ModalEigen.SetCase", name, seed.CaseModal, func(c *CaseDef) {
		c.SubType = seed.ModalSubEigen
		c.MaxModes, c.MinModes = 12, 1
	})
}

func (a modalAPI) GetNumberModes(name string) (int, int, int) {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.fault("ModalEigen.GetNumberModes"); code != 0 {
		return 0, 0, code
	}
	c, ok := m.caseOfType(name, seed.CaseModal)
	if !ok {
		return 0, 0, retFail
	}
	return c.MaxModes, c.MinModes, retOK
}

func (a modalAPI) SetNumberModes(name string, maxModes, minModes int) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("ModalEigen.SetNumberModes"); code != 0 {
		return code
	}
	c, ok := m.caseOfType(name, seed.CaseModal)
	if !ok || minModes < 1 || maxModes < minModes {
		return retFail
	}
	c.MaxModes, c.MinModes = maxModes, minModes
	return retOK
}

var spectrumDirections = map[string]bool{"U1": true, "U2": true, "U3": true, "R1": true, "R2": true, "R3": true}

type spectrumAPI struct{ m *Model }

func (a spectrumAPI) SetCase(name string) int {
	return a.m.defineCase("ResponseSpectrum.SetCase", name, seed.CaseResponseSpectrum, nil)
}

func (a spectrumAPI) GetLoads(name string) (int, []string, []string, []float64, []string, []float64, int) {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.fault("ResponseSpectrum.GetLoads"); code != 0 {
		return 0, nil, nil, nil, nil, nil, code
	}
	c, ok := m.caseOfType(name, seed.CaseResponseSpectrum)
	if !ok {
		return 0, nil, nil, nil, nil, nil, retFail
	}
	n := len(c.SpectrumLoads)
	dir := make([]string, n)
	fn := make([]string, n)
	sf := make([]float64, n)
	csys := make([]string, n)
	ang := make([]float64, n)
	for i, l := range c.SpectrumLoads {
		dir[i], fn[i], sf[i], csys[i], ang[i] = l.Direction, l.Function, l.Scale, l.CSys, l.Angle
	}
	return n, dir, fn, sf, csys, ang, retOK
}

func (a spectrumAPI) SetLoads(name string, n int, loadName []string, function []string, sf []float64, csys []string, ang []float64) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("ResponseSpectrum.SetLoads"); code != 0 {
		return code
	}
	c, ok := m.caseOfType(name, seed.CaseResponseSpectrum)
	if !ok || n < 0 || len(loadName) != n || len(function) != n || len(sf) != n || len(csys) != n || len(ang) != n {
		return retFail
	}
	loads := make([]SpectrumLoad, n)
	for i := 0; i < n; i++ {
		f, ok := m.state.Functions.Get(function[i])
		if !spectrumDirections[loadName[i]] || !ok || f.Type != seed.FuncResponseSpectrum || !m.state.CoordSys.Has(csys[i]) {
			return retFail
		}
		loads[i] = SpectrumLoad{Direction: loadName[i], Function: function[i], Scale: sf[i], CSys: csys[i], Angle: ang[i]}
	}
	c.SpectrumLoads = loads
	return retOK
}
