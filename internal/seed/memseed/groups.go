package memseed

import "github.com/alexiusacademia/csiapi/internal/seed"

type groupAPI struct{ m *Model }

func (a groupAPI) ChangeName(name, newName string) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("GroupDef.ChangeName"); code != 0 {
		return code
	}
	if isReserved(name, allGroup) || isReserved(newName, allGroup) || !m.state.Groups.Rename(name, newName) {
		return retFail
	}
	for _, p := range m.state.Points.Items {
		replace(p.Groups, name, newName)
	}
	for _, f := range m.state.Frames.Items {
		replace(f.Groups, name, newName)
	}
	for _, sc := range m.state.SectionCuts.Items {
		if sc.Group == name {
			sc.Group = newName
		}
	}
	return retOK
}

func (a groupAPI) Clear(name string) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("GroupDef.Clear"); code != 0 {
		return code
	}
	if isReserved(name, allGroup) || !m.state.Groups.Has(name) {
		return retFail
	}
	m.unassignGroup(name)
	return retOK
}

func (m *Model) unassignGroup(name string) {
	for _, p := range m.state.Points.Items {
		p.Groups = remove(p.Groups, name)
	}
	for _, f := range m.state.Frames.Items {
		f.Groups = remove(f.Groups, name)
	}
}

func (a groupAPI) Count() int {
	a.m.mu.Lock()
	defer a.m.mu.Unlock()
	return a.m.state.Groups.Len()
}

// Delete fails for ALL and for groups referenced by a section cut.
func (a groupAPI) Delete(name string) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("GroupDef.Delete"); code != 0 {
		return code
	}
	if isReserved(name, allGroup) || !m.state.Groups.Has(name) {
		return retFail
	}
	for _, sc := range m.state.SectionCuts.Items {
		if sc.Group == name {
			return retFail
		}
	}
	m.unassignGroup(name)
	m.state.Groups.Delete(name)
	return retOK
}

// members returns the points and frames assigned to a group, in model order.
func (m *Model) members(group string) (points, frames []string) {
	for _, name := range m.state.Points.Names {
		if isReserved(group, allGroup) || contains(m.state.Points.Items[name].Groups, group) {
			points = append(points, name)
		}
	}
	for _, name := range m.state.Frames.Names {
		if isReserved(group, allGroup) || contains(m.state.Frames.Items[name].Groups, group) {
			frames = append(frames, name)
		}
	}
	return points, frames
}

func (a groupAPI) GetAssignments(name string) (int, []int, []string, int) {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.fault("GroupDef.GetAssignments"); code != 0 {
		return 0, nil, nil, code
	}
	if !m.state.Groups.Has(name) {
		return 0, nil, nil, retFail
	}
	points, frames := m.members(name)
	var objType []int
	var objName []string
	for _, p := range points {
		objType = append(objType, seed.ObjPoint)
		objName = append(objName, p)
	}
	for _, f := range frames {
		objType = append(objType, seed.ObjFrame)
		objName = append(objName, f)
	}
	return len(objName), objType, objName, retOK
}

func (a groupAPI) GetGroup(name string) (int, []bool, int) {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.fault("GroupDef.GetGroup"); code != 0 {
		return 0, nil, code
	}
	g, ok := m.state.Groups.Get(name)
	if !ok {
		return 0, nil, retFail
	}
	return g.Color, cloneBools(g.Flags), retOK
}

func (a groupAPI) GetNameList() (int, []string, int) {
	a.m.mu.Lock()
	defer a.m.mu.Unlock()
	if code := a.m.fault("GroupDef.GetNameList"); code != 0 {
		return 0, nil, code
	}
	return names(a.m.state.Groups.List())
}

// SetGroup adds a group or modifies an existing one.
func (a groupAPI) SetGroup(name string, color int, flags []bool) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("GroupDef.SetGroup"); code != 0 {
		return code
	}
	if name == "" || len(flags) != seed.GroupFlagCount {
		return retFail
	}
	if isReserved(name, allGroup) {
		name = allGroup
	}
	m.state.Groups.Put(name, &GroupDef{Color: color, Flags: cloneBools(flags)})
	return retOK
}
