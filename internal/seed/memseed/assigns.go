package memseed

type modifierAPI struct{ m *Model }

func (a modifierAPI) ChangeName(name, newName string) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("ModifierFrame.ChangeName"); code != 0 {
		return code
	}
	if !m.state.Modifiers.Rename(name, newName) {
		return retFail
	}
	return retOK
}

func (a modifierAPI) Count() int {
	a.m.mu.Lock()
	defer a.m.mu.Unlock()
	return a.m.state.Modifiers.Len()
}

func (a modifierAPI) Delete(name string) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("ModifierFrame.Delete"); code != 0 {
		return code
	}
	if !m.state.Modifiers.Delete(name) {
		return retFail
	}
	return retOK
}

func (a modifierAPI) GetModifiers(name string) ([]float64, int) {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.fault("ModifierFrame.GetModifiers"); code != 0 {
		return nil, code
	}
	d, ok := m.state.Modifiers.Get(name)
	if !ok {
		return nil, retFail
	}
	return cloneFloats(d.Value), retOK
}

// SetModifiers takes area, as2, as3, torsion, i22, i33, mass and weight
// factors.
func (a modifierAPI) SetModifiers(name string, value []float64) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("ModifierFrame.SetModifiers"); code != 0 {
		return code
	}
	if name == "" || len(value) != 8 {
		return retFail
	}
	for _, v := range value {
		if v < 0 {
			return retFail
		}
	}
	m.state.Modifiers.Put(name, &ModifierDef{Value: cloneFloats(value)})
	return retOK
}

func (a modifierAPI) GetNameList() (int, []string, int) {
	a.m.mu.Lock()
	defer a.m.mu.Unlock()
	if code := a.m.fault("ModifierFrame.GetNameList"); code != 0 {
		return 0, nil, code
	}
	return names(a.m.state.Modifiers.List())
}

type releaseAPI struct{ m *Model }

func (a releaseAPI) ChangeName(name, newName string) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("ReleaseFrame.ChangeName"); code != 0 {
		return code
	}
	if !m.state.Releases.Rename(name, newName) {
		return retFail
	}
	return retOK
}

func (a releaseAPI) Count() int {
	a.m.mu.Lock()
	defer a.m.mu.Unlock()
	return a.m.state.Releases.Len()
}

func (a releaseAPI) Delete(name string) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("ReleaseFrame.Delete"); code != 0 {
		return code
	}
	if !m.state.Releases.Delete(name) {
		return retFail
	}
	return retOK
}

func (a releaseAPI) GetReleases(name string) ([]bool, []bool, []float64, []float64, int) {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.fault("ReleaseFrame.GetReleases"); code != 0 {
		return nil, nil, nil, nil, code
	}
	d, ok := m.state.Releases.Get(name)
	if !ok {
		return nil, nil, nil, nil, retFail
	}
	return cloneBools(d.II), cloneBools(d.JJ), cloneFloats(d.StartValue), cloneFloats(d.EndValue), retOK
}

// SetReleases rejects releasing P, V2, V3 or T at both ends, which leaves
// the frame unstable.
func (a releaseAPI) SetReleases(name string, ii, jj []bool, startValue, endValue []float64) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("ReleaseFrame.SetReleases"); code != 0 {
		return code
	}
	if name == "" || len(ii) != 6 || len(jj) != 6 || len(startValue) != 6 || len(endValue) != 6 {
		return retFail
	}
	for dof := 0; dof < 4; dof++ {
		if ii[dof] && jj[dof] {
			return retFail
		}
	}
	m.state.Releases.Put(name, &ReleaseDef{
		II:         cloneBools(ii),
		JJ:         cloneBools(jj),
		StartValue: cloneFloats(startValue),
		EndValue:   cloneFloats(endValue),
	})
	return retOK
}

func (a releaseAPI) GetNameList() (int, []string, int) {
	a.m.mu.Lock()
	defer a.m.mu.Unlock()
	if code := a.m.fault("ReleaseFrame.GetNameList"); code != 0 {
		return 0, nil, code
	}
	return names(a.m.state.Releases.List())
}
