package memseed

import "github.com/alexiusacademia/csiapi/internal/seed"

type frameAPI struct{ m *Model }

func (a frameAPI) AddByPoint(point1, point2, propName, userName string) (string, int) {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("FrameObj.AddByPoint"); code != 0 {
		return "", code
	}
	if point1 == point2 || !m.state.Points.Has(point1) || !m.state.Points.Has(point2) {
		return "", retFail
	}
	if !m.state.FrameProps.Has(propName) {
		return "", retFail
	}
	name := userName
	if name == "" {
		name = nextName(&m.state.Frames)
	}
	if m.state.Frames.Has(name) {
		return "", retFail
	}
	m.state.Frames.Put(name, &FrameDef{Point1: point1, Point2: point2, Prop: propName})
	return name, retOK
}

func (a frameAPI) ChangeName(name, newName string) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("FrameObj.ChangeName"); code != 0 {
		return code
	}
	if !m.state.Frames.Rename(name, newName) {
		return retFail
	}
	return retOK
}

func (a frameAPI) Count() int {
	a.m.mu.Lock()
	defer a.m.mu.Unlock()
	return a.m.state.Frames.Len()
}

func (m *Model) frameTargets(name string, itemType int) ([]string, bool) {
	switch itemType {
	case seed.ItemObjects:
		if !m.state.Frames.Has(name) {
			return nil, false
		}
		return []string{name}, true
	case seed.ItemGroup:
		if !m.state.Groups.Has(name) {
			return nil, false
		}
		_, frames := m.members(name)
		return frames, true
	case seed.ItemSelectedObjects:
		return nil, true
	}
	return nil, false
}

func (a frameAPI) Delete(name string, itemType int) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("FrameObj.Delete"); code != 0 {
		return code
	}
	targets, ok := m.frameTargets(name, itemType)
	if !ok {
		return retFail
	}
	for _, f := range targets {
		m.state.Frames.Delete(f)
	}
	return retOK
}

func (a frameAPI) GetNameList() (int, []string, int) {
	a.m.mu.Lock()
	defer a.m.mu.Unlock()
	if code := a.m.fault("FrameObj.GetNameList"); code != 0 {
		return 0, nil, code
	}
	return names(a.m.state.Frames.List())
}

func (a frameAPI) GetPoints(name string) (string, string, int) {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.fault("FrameObj.GetPoints"); code != 0 {
		return "", "", code
	}
	f, ok := m.state.Frames.Get(name)
	if !ok {
		return "", "", retFail
	}
	return f.Point1, f.Point2, retOK
}

func (a frameAPI) GetSection(name string) (string, string, int) {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.fault("FrameObj.GetSection"); code != 0 {
		return "", "", code
	}
	f, ok := m.state.Frames.Get(name)
	if !ok {
		return "", "", retFail
	}
	return f.Prop, "", retOK
}

func (a frameAPI) SetSection(name, propName string, itemType int) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("FrameObj.SetSection"); code != 0 {
		return code
	}
	targets, ok := m.frameTargets(name, itemType)
	if !ok || !m.state.FrameProps.Has(propName) {
		return retFail
	}
	for _, f := range targets {
		m.state.Frames.Items[f].Prop = propName
	}
	return retOK
}

func (a frameAPI) SetGroupAssign(name, groupName string, removeFromGroup bool, itemType int) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("FrameObj.SetGroupAssign"); code != 0 {
		return code
	}
	targets, ok := m.frameTargets(name, itemType)
	if !ok || isReserved(groupName, allGroup) || !m.state.Groups.Has(groupName) {
		return retFail
	}
	for _, t := range targets {
		f := m.state.Frames.Items[t]
		switch {
		case removeFromGroup:
			f.Groups = remove(f.Groups, groupName)
		case !contains(f.Groups, groupName):
			f.Groups = append(f.Groups, groupName)
		}
	}
	return retOK
}
