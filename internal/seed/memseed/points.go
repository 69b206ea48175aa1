package memseed

import (
	"strconv"

	"github.com/alexiusacademia/csiapi/internal/seed"
	"github.com/google/uuid"
)

type pointAPI struct{ m *Model }

// nextName returns the lowest positive integer name not yet used in t.
func nextName[T any](t *Table[T]) string {
	for i := t.Len() + 1; ; i++ {
		name := strconv.Itoa(i)
		if !t.Has(name) {
			return name
		}
	}
}

func (a pointAPI) AddCartesian(x, y, z float64, userName, csys string) (string, int) {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("PointObj.AddCartesian"); code != 0 {
		return "", code
	}
	cs, ok := m.state.CoordSys.Get(csys)
	if !ok {
		return "", retFail
	}
	name := userName
	if name == "" {
		name = nextName(&m.state.Points)
	}
	if m.state.Points.Has(name) {
		return "", retFail
	}
	gx, gy, gz := toGlobal(cs, x, y, z)
	m.state.Points.Put(name, &PointDef{X: gx, Y: gy, Z: gz, Restraint: make([]bool, 6)})
	return name, retOK
}

func (a pointAPI) ChangeName(name, newName string) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("PointObj.ChangeName"); code != 0 {
		return code
	}
	if !m.state.Points.Rename(name, newName) {
		return retFail
	}
	for _, f := range m.state.Frames.Items {
		if f.Point1 == name {
			f.Point1 = newName
		}
		if f.Point2 == name {
			f.Point2 = newName
		}
	}
	return retOK
}

func (a pointAPI) Count() int {
	a.m.mu.Lock()
	defer a.m.mu.Unlock()
	return a.m.state.Points.Len()
}

// targets resolves name by item type to the affected point names.
// SelectedObjects resolves to nothing: the offline model has no selection.
func (m *Model) pointTargets(name string, itemType int) ([]string, bool) {
	switch itemType {
	case seed.ItemObjects:
		if !m.state.Points.Has(name) {
			return nil, false
		}
		return []string{name}, true
	case seed.ItemGroup:
		if !m.state.Groups.Has(name) {
			return nil, false
		}
		points, _ := m.members(name)
		return points, true
	case seed.ItemSelectedObjects:
		return nil, true
	}
	return nil, false
}

// Delete removes points that no frame connects to.
func (a pointAPI) Delete(name string, itemType int) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("PointObj.Delete"); code != 0 {
		return code
	}
	targets, ok := m.pointTargets(name, itemType)
	if !ok {
		return retFail
	}
	for _, p := range targets {
		for _, f := range m.state.Frames.Items {
			if f.Point1 == p || f.Point2 == p {
				return retFail
			}
		}
	}
	for _, p := range targets {
		m.state.Points.Delete(p)
	}
	return retOK
}

func (a pointAPI) GetCoordCartesian(name, csys string) (float64, float64, float64, int) {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.fault("PointObj.GetCoordCartesian"); code != 0 {
		return 0, 0, 0, code
	}
	p, ok := m.state.Points.Get(name)
	cs, csOK := m.state.CoordSys.Get(csys)
	if !ok || !csOK {
		return 0, 0, 0, retFail
	}
	x, y, z := toLocal(cs, p.X, p.Y, p.Z)
	return x, y, z, retOK
}

func (a pointAPI) GetNameList() (int, []string, int) {
	a.m.mu.Lock()
	defer a.m.mu.Unlock()
	if code := a.m.fault("PointObj.GetNameList"); code != 0 {
		return 0, nil, code
	}
	return names(a.m.state.Points.List())
}

func (a pointAPI) GetRestraint(name string) ([]bool, int) {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.fault("PointObj.GetRestraint"); code != 0 {
		return nil, code
	}
	p, ok := m.state.Points.Get(name)
	if !ok {
		return nil, retFail
	}
	return cloneBools(p.Restraint), retOK
}

func (a pointAPI) SetRestraint(name string, value []bool, itemType int) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("PointObj.SetRestraint"); code != 0 {
		return code
	}
	targets, ok := m.pointTargets(name, itemType)
	if !ok || len(value) != 6 {
		return retFail
	}
	for _, t := range targets {
		m.state.Points.Items[t].Restraint = cloneBools(value)
	}
	return retOK
}

func (a pointAPI) GetConstraint(name string, itemType int) (int, []string, []string, int) {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.fault("PointObj.GetConstraint"); code != 0 {
		return 0, nil, nil, code
	}
	targets, ok := m.pointTargets(name, itemType)
	if !ok {
		return 0, nil, nil, retFail
	}
	var pointName, constraintName []string
	for _, t := range targets {
		for _, c := range m.state.Points.Items[t].Constraints {
			pointName = append(pointName, t)
			constraintName = append(constraintName, c)
		}
	}
	return len(pointName), pointName, constraintName, retOK
}

func (a pointAPI) SetConstraint(name, constraintName string, itemType int, replaceExisting bool) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("PointObj.SetConstraint"); code != 0 {
		return code
	}
	targets, ok := m.pointTargets(name, itemType)
	if !ok || !m.state.Constraints.Has(constraintName) {
		return retFail
	}
	for _, t := range targets {
		p := m.state.Points.Items[t]
		if replaceExisting {
			p.Constraints = nil
		}
		if !contains(p.Constraints, constraintName) {
			p.Constraints = append(p.Constraints, constraintName)
		}
	}
	return retOK
}

func (a pointAPI) GetGUID(name string) (string, int) {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.fault("PointObj.GetGUID"); code != 0 {
		return "", code
	}
	p, ok := m.state.Points.Get(name)
	if !ok {
		return "", retFail
	}
	return p.GUID, retOK
}

// SetGUID assigns guid, generating a new one when guid is blank.
func (a pointAPI) SetGUID(name, guid string) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("PointObj.SetGUID"); code != 0 {
		return code
	}
	p, ok := m.state.Points.Get(name)
	if !ok {
		return retFail
	}
	if guid == "" {
		guid = uuid.New().String()
	} else if _, err := uuid.Parse(guid); err != nil {
		return retFail
	}
	p.GUID = guid
	return retOK
}

func (a pointAPI) GetGroupAssign(name string) (int, []string, int) {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.fault("PointObj.GetGroupAssign"); code != 0 {
		return 0, nil, code
	}
	p, ok := m.state.Points.Get(name)
	if !ok {
		return 0, nil, retFail
	}
	groups := append([]string{allGroup}, p.Groups...)
	return len(groups), groups, retOK
}

func (a pointAPI) SetGroupAssign(name, groupName string, removeFromGroup bool, itemType int) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("PointObj.SetGroupAssign"); code != 0 {
		return code
	}
	targets, ok := m.pointTargets(name, itemType)
	if !ok || isReserved(groupName, allGroup) || !m.state.Groups.Has(groupName) {
		return retFail
	}
	for _, t := range targets {
		p := m.state.Points.Items[t]
		switch {
		case removeFromGroup:
			p.Groups = remove(p.Groups, groupName)
		case !contains(p.Groups, groupName):
			p.Groups = append(p.Groups, groupName)
		}
	}
	return retOK
}

func (a pointAPI) GetLoadForce(name string, itemType int) (int, []string, []string, []int, []string, []float64, []float64, []float64, []float64, []float64, []float64, int) {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.fault("PointObj.GetLoadForce"); code != 0 {
		return 0, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, code
	}
	targets, ok := m.pointTargets(name, itemType)
	if !ok {
		return 0, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, retFail
	}
	var pointName, loadPat, csys []string
	var lcStep []int
	cols := make([][]float64, 6)
	for _, t := range targets {
		for _, l := range m.state.Points.Items[t].Loads {
			pointName = append(pointName, t)
			loadPat = append(loadPat, l.Pattern)
			lcStep = append(lcStep, 0)
			csys = append(csys, l.CSys)
			for j := 0; j < 6; j++ {
				cols[j] = append(cols[j], l.Value[j])
			}
		}
	}
	return len(pointName), pointName, loadPat, lcStep, csys, cols[0], cols[1], cols[2], cols[3], cols[4], cols[5], retOK
}

// SetLoadForce assigns a force vector. Without replace, a vector in the same
// pattern and coordinate system is added to the existing one.
func (a pointAPI) SetLoadForce(name, loadPat string, value []float64, replaceExisting bool, csys string, itemType int) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("PointObj.SetLoadForce"); code != 0 {
		return code
	}
	targets, ok := m.pointTargets(name, itemType)
	if !ok || len(value) != 6 || !m.state.Patterns.Has(loadPat) || !m.state.CoordSys.Has(csys) {
		return retFail
	}
	for _, t := range targets {
		p := m.state.Points.Items[t]
		if replaceExisting {
			kept := p.Loads[:0]
			for _, l := range p.Loads {
				if l.Pattern != loadPat {
					kept = append(kept, l)
				}
			}
			p.Loads = kept
		}
		merged := false
		for i := range p.Loads {
			if p.Loads[i].Pattern == loadPat && p.Loads[i].CSys == csys {
				for j := range value {
					p.Loads[i].Value[j] += value[j]
				}
				merged = true
				break
			}
		}
		if !merged {
			p.Loads = append(p.Loads, JointLoad{Pattern: loadPat, CSys: csys, Value: cloneFloats(value)})
		}
	}
	return retOK
}
