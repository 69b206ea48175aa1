package memseed

import "github.com/alexiusacademia/csiapi/internal/seed"

type sectCutAPI struct{ m *Model }

func (a sectCutAPI) AddByGroup(name, groupName string, resultType int) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("SectCut.AddByGroup"); code != 0 {
		return code
	}
	if name == "" || m.state.SectionCuts.Has(name) || !m.state.Groups.Has(groupName) {
		return retFail
	}
	if resultType != seed.CutAnalysis && resultType != seed.CutDesign {
		return retFail
	}
	m.state.SectionCuts.Put(name, &SectionCutDef{Group: groupName, ResultType: resultType})
	return retOK
}

func (a sectCutAPI) ChangeName(name, newName string) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("SectCut.ChangeName"); code != 0 {
		return code
	}
	if !m.state.SectionCuts.Rename(name, newName) {
		return retFail
	}
	return retOK
}

func (a sectCutAPI) Count() int {
	a.m.mu.Lock()
	defer a.m.mu.Unlock()
	return a.m.state.SectionCuts.Len()
}

func (a sectCutAPI) Delete(name string) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("SectCut.Delete"); code != 0 {
		return code
	}
	if !m.state.SectionCuts.Delete(name) {
		return retFail
	}
	return retOK
}

func (a sectCutAPI) GetByGroup(name string) (string, int, int) {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.fault("SectCut.GetByGroup"); code != 0 {
		return "", 0, code
	}
	sc, ok := m.state.SectionCuts.Get(name)
	if !ok {
		return "", 0, retFail
	}
	return sc.Group, sc.ResultType, retOK
}

func (a sectCutAPI) GetNameList() (int, []string, int) {
	a.m.mu.Lock()
	defer a.m.mu.Unlock()
	if code := a.m.fault("SectCut.GetNameList"); code != 0 {
		return 0, nil, code
	}
	return names(a.m.state.SectionCuts.List())
}
