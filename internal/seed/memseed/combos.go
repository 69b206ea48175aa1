package memseed

import "github.com/alexiusacademia/csiapi/internal/seed"

type comboAPI struct{ m *Model }

func validComboType(t int) bool {
	return t >= seed.ComboLinearAdditive && t <= seed.ComboRangeAdditive
}

func (a comboAPI) Add(name string, comboType int) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("RespCombo.Add"); code != 0 {
		return code
	}
	if name == "" || m.state.Combos.Has(name) || m.state.Cases.Has(name) || !validComboType(comboType) {
		return retFail
	}
	m.state.Combos.Put(name, &ComboDef{Type: comboType})
	return retOK
}

func (a comboAPI) ChangeName(name, newName string) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("RespCombo.ChangeName"); code != 0 {
		return code
	}
	if m.state.Cases.Has(newName) || !m.state.Combos.Rename(name, newName) {
		return retFail
	}
	for _, c := range m.state.Combos.Items {
		for i := range c.Items {
			if c.Items[i].CType == seed.CNameLoadCombo && c.Items[i].Name == name {
				c.Items[i].Name = newName
			}
		}
	}
	if sel, ok := m.state.Output[name]; ok {
		delete(m.state.Output, name)
		m.state.Output[newName] = sel
	}
	return retOK
}

func (a comboAPI) Count() int {
	a.m.mu.Lock()
	defer a.m.mu.Unlock()
	return a.m.state.Combos.Len()
}

func (a comboAPI) Delete(name string) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("RespCombo.Delete"); code != 0 {
		return code
	}
	for _, c := range m.state.Combos.Items {
		for _, it := range c.Items {
			if it.CType == seed.CNameLoadCombo && it.Name == name {
				return retFail
			}
		}
	}
	if !m.state.Combos.Delete(name) {
		return retFail
	}
	delete(m.state.Output, name)
	return retOK
}

func (a comboAPI) DeleteCase(name string, cType int, cName string) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("RespCombo.DeleteCase"); code != 0 {
		return code
	}
	c, ok := m.state.Combos.Get(name)
	if !ok {
		return retFail
	}
	for i, it := range c.Items {
		if it.CType == cType && it.Name == cName {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return retOK
		}
	}
	return retFail
}

func (a comboAPI) GetCaseList(name string) (int, []int, []string, []float64, int) {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.fault("RespCombo.GetCaseList"); code != 0 {
		return 0, nil, nil, nil, code
	}
	c, ok := m.state.Combos.Get(name)
	if !ok {
		return 0, nil, nil, nil, retFail
	}
	n := len(c.Items)
	cType := make([]int, n)
	cName := make([]string, n)
	sf := make([]float64, n)
	for i, it := range c.Items {
		cType[i], cName[i], sf[i] = it.CType, it.Name, it.Scale
	}
	return n, cType, cName, sf, retOK
}

func (a comboAPI) GetNameList() (int, []string, int) {
	a.m.mu.Lock()
	defer a.m.mu.Unlock()
	if code := a.m.fault("RespCombo.GetNameList"); code != 0 {
		return 0, nil, code
	}
	return names(a.m.state.Combos.List())
}

func (a comboAPI) GetTypeOAPI(name string) (int, int) {
	a.m.mu.Lock()
	defer a.m.mu.Unlock()
	if code := a.m.fault("RespCombo.GetTypeOAPI"); code != 0 {
		return 0, code
	}
	c, ok := a.m.state.Combos.Get(name)
	if !ok {
		return 0, retFail
	}
	return c.Type, retOK
}

// SetCaseList adds cName to the combo, or updates its scale factor when
// already present. A combo may not reference itself.
func (a comboAPI) SetCaseList(name string, cType int, cName string, sf float64) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("RespCombo.SetCaseList"); code != 0 {
		return code
	}
	c, ok := m.state.Combos.Get(name)
	if !ok {
		return retFail
	}
	switch cType {
	case seed.CNameLoadCase:
		if !m.state.Cases.Has(cName) {
			return retFail
		}
	case seed.CNameLoadCombo:
		if cName == name || !m.state.Combos.Has(cName) || m.comboReaches(cName, name) {
			return retFail
		}
	default:
		return retFail
	}
	for i := range c.Items {
		if c.Items[i].CType == cType && c.Items[i].Name == cName {
			c.Items[i].Scale = sf
			return retOK
		}
	}
	c.Items = append(c.Items, ComboItem{CType: cType, Name: cName, Scale: sf})
	return retOK
}

// comboReaches reports whether combo from references target, directly or
// through nested combos.
func (m *Model) comboReaches(from, target string) bool {
	seen := map[string]bool{}
	var walk func(string) bool
	walk = func(name string) bool {
		if name == target {
			return true
		}
		if seen[name] {
			return false
		}
		seen[name] = true
		c, ok := m.state.Combos.Get(name)
		if !ok {
			return false
		}
		for _, it := range c.Items {
			if it.CType == seed.CNameLoadCombo && walk(it.Name) {
				return true
			}
		}
		return false
	}
	return walk(from)
}

func (a comboAPI) SetTypeOAPI(name string, comboType int) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("RespCombo.SetTypeOAPI"); code != 0 {
		return code
	}
	c, ok := m.state.Combos.Get(name)
	if !ok || !validComboType(comboType) {
		return retFail
	}
	c.Type = comboType
	return retOK
}
