package csi

// FunctionPoint is one abscissa/value pair of a function. X is time for
// time-history functions and period for response spectra.
type FunctionPoint struct {
	X     float64
	Value float64
}

// Functions wraps Func and its user-defined kinds.
type Functions struct {
	m  *Model
	th lazy[TimeHistoryFunctions]
	rs lazy[SpectrumFunctions]
}

// TimeHistory returns the time-history function wrapper.
func (f *Functions) TimeHistory() *TimeHistoryFunctions {
	return f.th.get(func() *TimeHistoryFunctions { return &TimeHistoryFunctions{m: f.m} })
}

// ResponseSpectrum returns the response-spectrum function wrapper.
func (f *Functions) ResponseSpectrum() *SpectrumFunctions {
	return f.rs.get(func() *SpectrumFunctions { return &SpectrumFunctions{m: f.m} })
}

// Count counts functions of type t; the zero type counts all functions.
func (f *Functions) Count(t FunctionType) (int, error) {
	code, err := functionTypes.filterCode("Func.Count", f.m.version, t)
	if err != nil {
		return 0, err
	}
	return f.m.seed.Func().Count(code), nil
}

// GetNameList lists functions of type t; the zero type lists all.
func (f *Functions) GetNameList(t FunctionType) ([]string, error) {
	const op = "Func.GetNameList"
	code, err := functionTypes.filterCode(op, f.m.version, t)
	if err != nil {
		return nil, err
	}
	n, names, ret := f.m.seed.Func().GetNameList(code)
	return f.m.nameList(op, n, names, ret)
}

func (f *Functions) Type(name string) (FunctionType, error) {
	const op = "Func.GetTypeOAPI"
	code, _, ret := f.m.seed.Func().GetTypeOAPI(name)
	if err := f.m.check(op, name, ret); err != nil {
		return 0, err
	}
	return functionTypes.fromCode(op, code)
}

// Values returns the points of any function kind.
func (f *Functions) Values(name string) ([]FunctionPoint, error) {
	const op = "Func.GetValues"
	n, x, v, ret := f.m.seed.Func().GetValues(name)
	return f.m.points(op, name, n, x, v, ret)
}

func (f *Functions) ChangeName(name, newName string) error {
	return f.m.check("Func.ChangeName", name, f.m.seed.Func().ChangeName(name, newName))
}

func (f *Functions) Delete(name string) error {
	return f.m.check("Func.Delete", name, f.m.seed.Func().Delete(name))
}

func (m *Model) points(op, name string, n int, x, v []float64, ret int) ([]FunctionPoint, error) {
	if err := m.check(op, name, ret); err != nil {
		return nil, err
	}
	if err := sameLen(op, n, len(x), len(v)); err != nil {
		return nil, err
	}
	pts := make([]FunctionPoint, n)
	for i := range pts {
		pts[i] = FunctionPoint{X: x[i], Value: v[i]}
	}
	return pts, nil
}

func splitPoints(pts []FunctionPoint) (x, v []float64) {
	x = make([]float64, len(pts))
	v = make([]float64, len(pts))
	for i, p := range pts {
		x[i], v[i] = p.X, p.Value
	}
	return x, v
}

// TimeHistoryFunctions wraps Func.FuncTH.
type TimeHistoryFunctions struct{ m *Model }

// SetUser defines a time-history function from (time, value) points.
func (f *TimeHistoryFunctions) SetUser(name string, pts []FunctionPoint) error {
	x, v := splitPoints(pts)
	return f.m.check("FuncTH.SetUser", name, f.m.seed.FuncTH().SetUser(name, len(pts), x, v))
}

func (f *TimeHistoryFunctions) User(name string) ([]FunctionPoint, error) {
	n, x, v, ret := f.m.seed.FuncTH().GetUser(name)
	return f.m.points("FuncTH.GetUser", name, n, x, v, ret)
}

// SpectrumFunctions wraps Func.FuncRS.
type SpectrumFunctions struct{ m *Model }

// SetUser defines a response spectrum from (period, value) points.
func (f *SpectrumFunctions) SetUser(name string, pts []FunctionPoint, damping float64) error {
	x, v := splitPoints(pts)
	return f.m.check("FuncRS.SetUser", name, f.m.seed.FuncRS().SetUser(name, len(pts), x, v, damping))
}

// User returns the spectrum points and damping ratio.
func (f *SpectrumFunctions) User(name string) ([]FunctionPoint, float64, error) {
	n, x, v, damping, ret := f.m.seed.FuncRS().GetUser(name)
	pts, err := f.m.points("FuncRS.GetUser", name, n, x, v, ret)
	if err != nil {
		return nil, 0, err
	}
	return pts, damping, nil
}
