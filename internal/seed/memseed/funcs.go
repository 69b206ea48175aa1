package memseed

import "github.com/alexiusacademia/csiapi/internal/seed"

type funcAPI struct{ m *Model }

func (a funcAPI) ChangeName(name, newName string) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("Func.ChangeName"); code != 0 {
		return code
	}
	if !m.state.Functions.Rename(name, newName) {
		return retFail
	}
	for _, c := range m.state.Cases.Items {
		for i := range c.SpectrumLoads {
			if c.SpectrumLoads[i].Function == name {
				c.SpectrumLoads[i].Function = newName
			}
		}
	}
	return retOK
}

func (a funcAPI) matching(funcType int) []string {
	var out []string
	for _, name := range a.m.state.Functions.Names {
		if funcType == 0 || a.m.state.Functions.Items[name].Type == funcType {
			out = append(out, name)
		}
	}
	return out
}

func (a funcAPI) Count(funcType int) int {
	a.m.mu.Lock()
	defer a.m.mu.Unlock()
	return len(a.matching(funcType))
}

func (a funcAPI) Delete(name string) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("Func.Delete"); code != 0 {
		return code
	}
	for _, c := range m.state.Cases.Items {
		for _, l := range c.SpectrumLoads {
			if l.Function == name {
				return retFail
			}
		}
	}
	if !m.state.Functions.Delete(name) {
		return retFail
	}
	return retOK
}

func (a funcAPI) GetNameList(funcType int) (int, []string, int) {
	a.m.mu.Lock()
	defer a.m.mu.Unlock()
	if code := a.m.fault("Func.GetNameList"); code != 0 {
		return 0, nil, code
	}
	return names(a.matching(funcType))
}

func (a funcAPI) GetTypeOAPI(name string) (int, int, int) {
	a.m.mu.Lock()
	defer a.m.mu.Unlock()
	if code := a.m.fault("Func.GetTypeOAPI"); code != 0 {
		return 0, 0, code
	}
	f, ok := a.m.state.Functions.Get(name)
	if !ok {
		return 0, 0, retFail
	}
	return f.Type, f.AddType, retOK
}

func (a funcAPI) GetValues(name string) (int, []float64, []float64, int) {
	a.m.mu.Lock()
	defer a.m.mu.Unlock()
	if code := a.m.fault("Func.GetValues"); code != 0 {
		return 0, nil, nil, code
	}
	f, ok := a.m.state.Functions.Get(name)
	if !ok {
		return 0, nil, nil, retFail
	}
	return len(f.X), cloneFloats(f.X), cloneFloats(f.Value), retOK
}

// setUser stores a user-defined function of the given type.
func (m *Model) setUser(op, name string, funcType, n int, x, value []float64, damp float64) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate(op); code != 0 {
		return code
	}
	if name == "" || n < 1 || len(x) != n || len(value) != n {
		return retFail
	}
	for i := 1; i < n; i++ {
		if x[i] <= x[i-1] {
			return retFail
		}
	}
	if existing, ok := m.state.Functions.Get(name); ok && existing.Type != funcType {
		return retFail
	}
	m.state.Functions.Put(name, &FunctionDef{
		Type:      funcType,
		AddType:   seed.FuncAddUser,
		X:         cloneFloats(x),
		Value:     cloneFloats(value),
		DampRatio: damp,
	})
	return retOK
}

func (m *Model) getUser(op, name string, funcType int) (*FunctionDef, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.fault(op); code != 0 {
		return nil, code
	}
	f, ok := m.state.Functions.Get(name)
	if !ok || f.Type != funcType || f.AddType != seed.FuncAddUser {
		return nil, retFail
	}
	cp := *f
	cp.X = cloneFloats(f.X)
	cp.Value = cloneFloats(f.Value)
	return &cp, retOK
}

type funcTHAPI struct{ m *Model }

func (a funcTHAPI) GetUser(name string) (int, []float64, []float64, int) {
	f, ret := a.m.getUser("FuncTH.GetUser", name, seed.FuncTimeHistory)
	if ret != 0 {
		return 0, nil, nil, ret
	}
	return len(f.X), f.X, f.Value, retOK
}

func (a funcTHAPI) SetUser(name string, n int, time []float64, value []float64) int {
	return a.m.setUser("FuncTH.SetUser", name, seed.FuncTimeHistory, n, time, value, 0)
}

type funcRSAPI struct{ m *Model }

func (a funcRSAPI) GetUser(name string) (int, []float64, []float64, float64, int) {
	f, ret := a.m.getUser("FuncRS.GetUser", name, seed.FuncResponseSpectrum)
	if ret != 0 {
		return 0, nil, nil, 0, ret
	}
	return len(f.X), f.X, f.Value, f.DampRatio, retOK
}

func (a funcRSAPI) SetUser(name string, n int, period []float64, value []float64, dampRatio float64) int {
	if dampRatio < 0 || dampRatio >= 1 {
		return retFail
	}
	return a.m.setUser("FuncRS.SetUser", name, seed.FuncResponseSpectrum, n, period, value, dampRatio)
}
