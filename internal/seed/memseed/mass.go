package memseed

// Named mass sources are available from host version 19.
const namedMassSinceMajor = 19

type massAPI struct{ m *Model }

func (a massAPI) named(op string) int {
	if code := a.m.fault(op); code != 0 {
		return code
	}
	if a.m.versionMajor() < namedMassSinceMajor {
		return retFail
	}
	return retOK
}

func (a massAPI) ChangeName(name, newName string) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := a.named("SourceMass.ChangeName"); code != 0 {
		return code
	}
	if m.state.Locked || !m.state.MassSources.Rename(name, newName) {
		return retFail
	}
	return retOK
}

func (a massAPI) Count() int {
	a.m.mu.Lock()
	defer a.m.mu.Unlock()
	return a.m.state.MassSources.Len()
}

// Delete fails for the default mass source.
func (a massAPI) Delete(name string) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := a.named("SourceMass.Delete"); code != 0 {
		return code
	}
	ms, ok := m.state.MassSources.Get(name)
	if m.state.Locked || !ok || ms.IsDefault {
		return retFail
	}
	m.state.MassSources.Delete(name)
	return retOK
}

func (a massAPI) GetDefault() (string, int) {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := a.named("SourceMass.GetDefault"); code != 0 {
		return "", code
	}
	for _, name := range m.state.MassSources.Names {
		if m.state.MassSources.Items[name].IsDefault {
			return name, retOK
		}
	}
	return "", retFail
}

func (a massAPI) SetDefault(name string) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := a.named("SourceMass.SetDefault"); code != 0 {
		return code
	}
	if m.state.Locked || !m.state.MassSources.Has(name) {
		return retFail
	}
	m.setDefaultMass(name)
	return retOK
}

func (m *Model) setDefaultMass(name string) {
	for n, ms := range m.state.MassSources.Items {
		ms.IsDefault = n == name
	}
}

func (a massAPI) GetMassSource(name string) (bool, bool, bool, bool, int, []string, []float64, int) {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := a.named("SourceMass.GetMassSource"); code != 0 {
		return false, false, false, false, 0, nil, nil, code
	}
	ms, ok := m.state.MassSources.Get(name)
	if !ok {
		return false, false, false, false, 0, nil, nil, retFail
	}
	return ms.FromElements, ms.FromMasses, ms.FromLoads, ms.IsDefault,
		len(ms.LoadPatterns), append([]string(nil), ms.LoadPatterns...), cloneFloats(ms.Scales), retOK
}

// SetMassSource adds or replaces a named source. The first source and any
// source set with isDefault become the default. Clearing isDefault on the
// current default is ignored: some source is always the default.
func (a massAPI) SetMassSource(name string, fromElements, fromMasses, fromLoads, isDefault bool, n int, loadPat []string, sf []float64) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := a.named("SourceMass.SetMassSource"); code != 0 {
		return code
	}
	if m.state.Locked || name == "" {
		return retFail
	}
	def, ret := m.massDef(fromElements, fromMasses, fromLoads, n, loadPat, sf)
	if ret != 0 {
		return ret
	}
	existing, ok := m.state.MassSources.Get(name)
	def.IsDefault = isDefault || m.state.MassSources.Len() == 0 || (ok && existing.IsDefault)
	m.state.MassSources.Put(name, def)
	if def.IsDefault {
		m.setDefaultMass(name)
	}
	return retOK
}

func (m *Model) massDef(fromElements, fromMasses, fromLoads bool, n int, loadPat []string, sf []float64) (*MassSourceDef, int) {
	if !fromElements && !fromMasses && !fromLoads {
		return nil, retFail
	}
	if n < 0 || len(loadPat) != n || len(sf) != n {
		return nil, retFail
	}
	if fromLoads && n == 0 {
		return nil, retFail
	}
	for _, p := range loadPat {
		if !m.state.Patterns.Has(p) {
			return nil, retFail
		}
	}
	return &MassSourceDef{
		FromElements: fromElements,
		FromMasses:   fromMasses,
		FromLoads:    fromLoads,
		LoadPatterns: append([]string(nil), loadPat...),
		Scales:       cloneFloats(sf),
	}, retOK
}

func (a massAPI) GetNameList() (int, []string, int) {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := a.named("SourceMass.GetNameList"); code != 0 {
		return 0, nil, code
	}
	return names(m.state.MassSources.List())
}

func (a massAPI) GetMassSourceLegacy() (bool, bool, bool, int, []string, []float64, int) {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.fault("SourceMass.GetMassSourceLegacy"); code != 0 {
		return false, false, false, 0, nil, nil, code
	}
	ms := m.state.LegacyMass
	return ms.FromElements, ms.FromMasses, ms.FromLoads, len(ms.LoadPatterns),
		append([]string(nil), ms.LoadPatterns...), cloneFloats(ms.Scales), retOK
}

func (a massAPI) SetMassSourceLegacy(fromElements, fromMasses, fromLoads bool, n int, loadPat []string, sf []float64) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("SourceMass.SetMassSourceLegacy"); code != 0 {
		return code
	}
	def, ret := m.massDef(fromElements, fromMasses, fromLoads, n, loadPat, sf)
	if ret != 0 {
		return ret
	}
	m.state.LegacyMass = *def
	return retOK
}
