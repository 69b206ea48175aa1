package memseed

import "github.com/alexiusacademia/csiapi/internal/seed"

type constraintAPI struct{ m *Model }

func (a constraintAPI) ChangeName(name, newName string) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("ConstraintDef.ChangeName"); code != 0 {
		return code
	}
	if !m.state.Constraints.Rename(name, newName) {
		return retFail
	}
	for _, p := range m.state.Points.Items {
		replace(p.Constraints, name, newName)
	}
	return retOK
}

func (a constraintAPI) Count() int {
	a.m.mu.Lock()
	defer a.m.mu.Unlock()
	return a.m.state.Constraints.Len()
}

func (a constraintAPI) Delete(name string) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("ConstraintDef.Delete"); code != 0 {
		return code
	}
	if !m.state.Constraints.Delete(name) {
		return retFail
	}
	for _, p := range m.state.Points.Items {
		p.Constraints = remove(p.Constraints, name)
	}
	return retOK
}

func (a constraintAPI) GetNameList() (int, []string, int) {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.fault("ConstraintDef.GetNameList"); code != 0 {
		return 0, nil, code
	}
	return names(m.state.Constraints.List())
}

func (a constraintAPI) GetConstraintType(name string) (int, int) {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.fault("ConstraintDef.GetConstraintType"); code != 0 {
		return 0, code
	}
	c, ok := m.state.Constraints.Get(name)
	if !ok {
		return 0, retFail
	}
	return c.Type, retOK
}

// get returns the constraint only when it exists with the expected type.
func (a constraintAPI) get(op, name string, ctype int) (*ConstraintDef, int) {
	if code := a.m.fault(op); code != 0 {
		return nil, code
	}
	c, ok := a.m.state.Constraints.Get(name)
	if !ok || c.Type != ctype {
		return nil, retFail
	}
	return c, retOK
}

// set validates and stores a constraint definition, replacing any existing
// definition of the same name.
func (a constraintAPI) set(op, name string, def ConstraintDef) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate(op); code != 0 {
		return code
	}
	if name == "" {
		return retFail
	}
	if def.Value != nil && len(def.Value) != 6 {
		return retFail
	}
	if def.CSys != "" && def.CSys != "Local" && !m.state.CoordSys.Has(def.CSys) {
		return retFail
	}
	if def.Axis != 0 && (def.Axis < seed.AxisX || def.Axis > seed.AxisAuto) {
		return retFail
	}
	def.Value = cloneBools(def.Value)
	m.state.Constraints.Put(name, &def)
	return retOK
}

func (a constraintAPI) dofs(op, name string, ctype int) ([]bool, string, int) {
	a.m.mu.Lock()
	defer a.m.mu.Unlock()
	c, ret := a.get(op, name, ctype)
	if ret != 0 {
		return nil, "", ret
	}
	return cloneBools(c.Value), c.CSys, retOK
}

func (a constraintAPI) axis(op, name string, ctype int) (int, string, int) {
	a.m.mu.Lock()
	defer a.m.mu.Unlock()
	c, ret := a.get(op, name, ctype)
	if ret != 0 {
		return 0, "", ret
	}
	return c.Axis, c.CSys, retOK
}

func (a constraintAPI) GetBody(name string) ([]bool, string, int) {
	return a.dofs("ConstraintDef.GetBody", name, seed.ConstraintBody)
}

func (a constraintAPI) SetBody(name string, value []bool, csys string) int {
	if len(value) != 6 {
		return retFail
	}
	return a.set("ConstraintDef.SetBody", name, ConstraintDef{Type: seed.ConstraintBody, Value: value, CSys: csys})
}

func (a constraintAPI) GetEqual(name string) ([]bool, string, int) {
	return a.dofs("ConstraintDef.GetEqual", name, seed.ConstraintEqual)
}

func (a constraintAPI) SetEqual(name string, value []bool, csys string) int {
	if len(value) != 6 {
		return retFail
	}
	return a.set("ConstraintDef.SetEqual", name, ConstraintDef{Type: seed.ConstraintEqual, Value: value, CSys: csys})
}

func (a constraintAPI) GetLocal(name string) ([]bool, int) {
	value, _, ret := a.dofs("ConstraintDef.GetLocal", name, seed.ConstraintLocal)
	return value, ret
}

func (a constraintAPI) SetLocal(name string, value []bool) int {
	if len(value) != 6 {
		return retFail
	}
	return a.set("ConstraintDef.SetLocal", name, ConstraintDef{Type: seed.ConstraintLocal, Value: value})
}

func (a constraintAPI) GetWeld(name string) ([]bool, float64, string, int) {
	a.m.mu.Lock()
	defer a.m.mu.Unlock()
	c, ret := a.get("ConstraintDef.GetWeld", name, seed.ConstraintWeld)
	if ret != 0 {
		return nil, 0, "", ret
	}
	return cloneBools(c.Value), c.Tolerance, c.CSys, retOK
}

func (a constraintAPI) SetWeld(name string, value []bool, tolerance float64, csys string) int {
	if len(value) != 6 || tolerance < 0 {
		return retFail
	}
	return a.set("ConstraintDef.SetWeld", name, ConstraintDef{Type: seed.ConstraintWeld, Value: value, Tolerance: tolerance, CSys: csys})
}

func (a constraintAPI) GetDiaphragm(name string) (int, string, int) {
	return a.axis("ConstraintDef.GetDiaphragm", name, seed.ConstraintDiaphragm)
}

func (a constraintAPI) SetDiaphragm(name string, axis int, csys string) int {
	return a.set("ConstraintDef.SetDiaphragm", name, ConstraintDef{Type: seed.ConstraintDiaphragm, Axis: axis, CSys: csys})
}

func (a constraintAPI) GetPlate(name string) (int, string, int) {
	return a.axis("ConstraintDef.GetPlate", name, seed.ConstraintPlate)
}

func (a constraintAPI) SetPlate(name string, axis int, csys string) int {
	return a.set("ConstraintDef.SetPlate", name, ConstraintDef{Type: seed.ConstraintPlate, Axis: axis, CSys: csys})
}

func (a constraintAPI) GetRod(name string) (int, string, int) {
	return a.axis("ConstraintDef.GetRod", name, seed.ConstraintRod)
}

func (a constraintAPI) SetRod(name string, axis int, csys string) int {
	return a.set("ConstraintDef.SetRod", name, ConstraintDef{Type: seed.ConstraintRod, Axis: axis, CSys: csys})
}

func (a constraintAPI) GetBeam(name string) (int, string, int) {
	return a.axis("ConstraintDef.GetBeam", name, seed.ConstraintBeam)
}

func (a constraintAPI) SetBeam(name string, axis int, csys string) int {
	return a.set("ConstraintDef.SetBeam", name, ConstraintDef{Type: seed.ConstraintBeam, Axis: axis, CSys: csys})
}
