package memseed

import "math"

type coordSysAPI struct{ m *Model }

func (a coordSysAPI) ChangeName(name, newName string) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("CoordSys.ChangeName"); code != 0 {
		return code
	}
	if isReserved(name, globalCSys) || isReserved(newName, globalCSys) || !m.state.CoordSys.Rename(name, newName) {
		return retFail
	}
	m.renameCSysRefs(name, newName)
	return retOK
}

func (m *Model) renameCSysRefs(name, newName string) {
	for _, c := range m.state.Constraints.Items {
		if c.CSys == name {
			c.CSys = newName
		}
	}
	for _, p := range m.state.Points.Items {
		for i := range p.Loads {
			if p.Loads[i].CSys == name {
				p.Loads[i].CSys = newName
			}
		}
	}
	for _, c := range m.state.Cases.Items {
		for i := range c.SpectrumLoads {
			if c.SpectrumLoads[i].CSys == name {
				c.SpectrumLoads[i].CSys = newName
			}
		}
	}
}

func (a coordSysAPI) Count() int {
	a.m.mu.Lock()
	defer a.m.mu.Unlock()
	return a.m.state.CoordSys.Len()
}

func (a coordSysAPI) Delete(name string) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("CoordSys.Delete"); code != 0 {
		return code
	}
	if isReserved(name, globalCSys) || m.csysInUse(name) || !m.state.CoordSys.Delete(name) {
		return retFail
	}
	return retOK
}

func (m *Model) csysInUse(name string) bool {
	for _, c := range m.state.Constraints.Items {
		if c.CSys == name {
			return true
		}
	}
	for _, p := range m.state.Points.Items {
		for _, l := range p.Loads {
			if l.CSys == name {
				return true
			}
		}
	}
	return false
}

func (a coordSysAPI) GetCoordSys(name string) (x, y, z, rz, ry, rx float64, ret int) {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.fault("CoordSys.GetCoordSys"); code != 0 {
		return 0, 0, 0, 0, 0, 0, code
	}
	cs, ok := m.state.CoordSys.Get(name)
	if !ok {
		return 0, 0, 0, 0, 0, 0, retFail
	}
	return cs.X, cs.Y, cs.Z, cs.RZ, cs.RY, cs.RX, retOK
}

func (a coordSysAPI) GetNameList() (int, []string, int) {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.fault("CoordSys.GetNameList"); code != 0 {
		return 0, nil, code
	}
	return names(m.state.CoordSys.List())
}

func (a coordSysAPI) GetTransformationMatrix(name string) ([]float64, int) {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.fault("CoordSys.GetTransformationMatrix"); code != 0 {
		return nil, code
	}
	cs, ok := m.state.CoordSys.Get(name)
	if !ok {
		return nil, retFail
	}
	r := rotation(cs)
	return r[:], retOK
}

func (a coordSysAPI) SetCoordSys(name string, x, y, z, rz, ry, rx float64) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("CoordSys.SetCoordSys"); code != 0 {
		return code
	}
	if name == "" || isReserved(name, globalCSys) {
		return retFail
	}
	m.state.CoordSys.Put(name, &CoordSysDef{X: x, Y: y, Z: z, RZ: rz, RY: ry, RX: rx})
	return retOK
}

// rotation returns the row-major local-to-global direction cosines for
// successive rotations about Z, then the new Y, then the new X.
func rotation(cs *CoordSysDef) [9]float64 {
	const deg = math.Pi / 180
	cz, sz := math.Cos(cs.RZ*deg), math.Sin(cs.RZ*deg)
	cy, sy := math.Cos(cs.RY*deg), math.Sin(cs.RY*deg)
	cx, sx := math.Cos(cs.RX*deg), math.Sin(cs.RX*deg)
	return [9]float64{
		cz * cy, cz*sy*sx - sz*cx, cz*sy*cx + sz*sx,
		sz * cy, sz*sy*sx + cz*cx, sz*sy*cx - cz*sx,
		-sy, cy * sx, cy * cx,
	}
}

// toGlobal maps local coordinates in cs to global coordinates.
func toGlobal(cs *CoordSysDef, x, y, z float64) (float64, float64, float64) {
	r := rotation(cs)
	return cs.X + r[0]*x + r[1]*y + r[2]*z,
		cs.Y + r[3]*x + r[4]*y + r[5]*z,
		cs.Z + r[6]*x + r[7]*y + r[8]*z
}

// toLocal maps global coordinates to local coordinates in cs.
func toLocal(cs *CoordSysDef, x, y, z float64) (float64, float64, float64) {
	r := rotation(cs)
	dx, dy, dz := x-cs.X, y-cs.Y, z-cs.Z
	return r[0]*dx + r[3]*dy + r[6]*dz,
		r[1]*dx + r[4]*dy + r[7]*dz,
		r[2]*dx + r[5]*dy + r[8]*dz
}
