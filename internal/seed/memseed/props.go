package memseed

import (
	"github.com/alexiusacademia/csiapi/internal/seed"
	"github.com/google/uuid"
)

// masonrySinceMajor is the first host major version with masonry materials.
const masonrySinceMajor = 20

type materialAPI struct{ m *Model }

func (a materialAPI) ChangeName(name, newName string) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("PropMaterial.ChangeName"); code != 0 {
		return code
	}
	if !m.state.Materials.Rename(name, newName) {
		return retFail
	}
	for _, p := range m.state.FrameProps.Items {
		if p.Material == name {
			p.Material = newName
		}
	}
	return retOK
}

func (a materialAPI) Count() int {
	a.m.mu.Lock()
	defer a.m.mu.Unlock()
	return a.m.state.Materials.Len()
}

func (a materialAPI) Delete(name string) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("PropMaterial.Delete"); code != 0 {
		return code
	}
	for _, p := range m.state.FrameProps.Items {
		if p.Material == name {
			return retFail
		}
	}
	if !m.state.Materials.Delete(name) {
		return retFail
	}
	return retOK
}

func (a materialAPI) GetMaterial(name string) (int, int, string, string, int) {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.fault("PropMaterial.GetMaterial"); code != 0 {
		return 0, 0, "", "", code
	}
	mat, ok := m.state.Materials.Get(name)
	if !ok {
		return 0, 0, "", "", retFail
	}
	return mat.Type, mat.Color, mat.Notes, mat.GUID, retOK
}

// SetMaterial adds or redefines a material. A blank guid is generated.
func (a materialAPI) SetMaterial(name string, matType, color int, notes, guid string) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("PropMaterial.SetMaterial"); code != 0 {
		return code
	}
	if name == "" || matType < seed.MatSteel || matType > seed.MatMasonry {
		return retFail
	}
	if matType == seed.MatMasonry && m.versionMajor() < masonrySinceMajor {
		return retFail
	}
	if guid == "" {
		guid = uuid.New().String()
	}
	mat, ok := m.state.Materials.Get(name)
	if !ok {
		mat = &MaterialDef{}
		m.state.Materials.Put(name, mat)
	}
	mat.Type, mat.Color, mat.Notes, mat.GUID = matType, color, notes, guid
	return retOK
}

func (a materialAPI) GetMPIsotropic(name string) (float64, float64, float64, int) {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.fault("PropMaterial.GetMPIsotropic"); code != 0 {
		return 0, 0, 0, code
	}
	mat, ok := m.state.Materials.Get(name)
	if !ok {
		return 0, 0, 0, retFail
	}
	return mat.E, mat.U, mat.A, retOK
}

func (a materialAPI) SetMPIsotropic(name string, e, u, alpha float64) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("PropMaterial.SetMPIsotropic"); code != 0 {
		return code
	}
	mat, ok := m.state.Materials.Get(name)
	if !ok || e <= 0 || u < 0 || u >= 0.5 {
		return retFail
	}
	mat.E, mat.U, mat.A = e, u, alpha
	return retOK
}

func (a materialAPI) GetWeightAndMass(name string) (float64, float64, int) {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.fault("PropMaterial.GetWeightAndMass"); code != 0 {
		return 0, 0, code
	}
	mat, ok := m.state.Materials.Get(name)
	if !ok {
		return 0, 0, retFail
	}
	return mat.Weight, mat.Mass, retOK
}

// SetWeightAndMass sets one of weight or mass per unit volume and derives
// the other from gravity in the present length unit.
func (a materialAPI) SetWeightAndMass(name string, option int, value float64) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("PropMaterial.SetWeightAndMass"); code != 0 {
		return code
	}
	mat, ok := m.state.Materials.Get(name)
	if !ok || value < 0 {
		return retFail
	}
	g := gravity(m.state.Units)
	switch option {
	case seed.WeightPerVolume:
		mat.Weight, mat.Mass = value, value/g
	case seed.MassPerVolume:
		mat.Weight, mat.Mass = value*g, value
	default:
		return retFail
	}
	return retOK
}

// gravity returns g in the length unit of the units code.
func gravity(units int) float64 {
	switch units {
	case seed.UnitsLbInF, seed.UnitsKipInF:
		return 386.0886
	case seed.UnitsLbFtF, seed.UnitsKipFtF:
		return 32.17405
	case seed.UnitsKNmmC, seed.UnitsKgfmmC, seed.UnitsNmmC, seed.UnitsTonmmC:
		return 9806.65
	case seed.UnitsKNcmC, seed.UnitsKgfcmC, seed.UnitsNcmC, seed.UnitsToncmC:
		return 980.665
	}
	return 9.80665
}

func (a materialAPI) GetNameList() (int, []string, int) {
	a.m.mu.Lock()
	defer a.m.mu.Unlock()
	if code := a.m.fault("PropMaterial.GetNameList"); code != 0 {
		return 0, nil, code
	}
	return names(a.m.state.Materials.List())
}

type framePropAPI struct{ m *Model }

func (a framePropAPI) ChangeName(name, newName string) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("PropFrame.ChangeName"); code != 0 {
		return code
	}
	if !m.state.FrameProps.Rename(name, newName) {
		return retFail
	}
	for _, f := range m.state.Frames.Items {
		if f.Prop == name {
			f.Prop = newName
		}
	}
	return retOK
}

func (a framePropAPI) Count() int {
	a.m.mu.Lock()
	defer a.m.mu.Unlock()
	return a.m.state.FrameProps.Len()
}

func (a framePropAPI) Delete(name string) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("PropFrame.Delete"); code != 0 {
		return code
	}
	for _, f := range m.state.Frames.Items {
		if f.Prop == name {
			return retFail
		}
	}
	if !m.state.FrameProps.Delete(name) {
		return retFail
	}
	return retOK
}

func (a framePropAPI) GetNameList() (int, []string, int) {
	a.m.mu.Lock()
	defer a.m.mu.Unlock()
	if code := a.m.fault("PropFrame.GetNameList"); code != 0 {
		return 0, nil, code
	}
	return names(a.m.state.FrameProps.List())
}

func (a framePropAPI) GetTypeOAPI(name string) (int, int) {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.fault("PropFrame.GetTypeOAPI"); code != 0 {
		return 0, code
	}
	p, ok := m.state.FrameProps.Get(name)
	if !ok {
		return 0, retFail
	}
	return p.Type, retOK
}

func (a framePropAPI) GetRectangle(name string) (string, float64, float64, int) {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.fault("PropFrame.GetRectangle"); code != 0 {
		return "", 0, 0, code
	}
	p, ok := m.state.FrameProps.Get(name)
	if !ok || p.Type != seed.FrameRectangular {
		return "", 0, 0, retFail
	}
	return p.Material, p.Values[0], p.Values[1], retOK
}

func (a framePropAPI) SetRectangle(name, matProp string, t3, t2 float64) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("PropFrame.SetRectangle"); code != 0 {
		return code
	}
	if name == "" || !m.state.Materials.Has(matProp) || t3 <= 0 || t2 <= 0 {
		return retFail
	}
	m.state.FrameProps.Put(name, &FramePropDef{
		Type:     seed.FrameRectangular,
		Material: matProp,
		Values:   []float64{t3, t2},
	})
	return retOK
}

func (a framePropAPI) GetGeneral(name string) (string, []float64, int) {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.fault("PropFrame.GetGeneral"); code != 0 {
		return "", nil, code
	}
	p, ok := m.state.FrameProps.Get(name)
	if !ok || p.Type != seed.FrameGeneral {
		return "", nil, retFail
	}
	return p.Material, cloneFloats(p.Values), retOK
}

func (a framePropAPI) SetGeneral(name, matProp string, values []float64) int {
	m := a.m
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.mutate("PropFrame.SetGeneral"); code != 0 {
		return code
	}
	if name == "" || !m.state.Materials.Has(matProp) || len(values) != seed.GeneralValueCount {
		return retFail
	}
	// area must be positive
	if values[2] <= 0 {
		return retFail
	}
	m.state.FrameProps.Put(name, &FramePropDef{
		Type:     seed.FrameGeneral,
		Material: matProp,
		Values:   cloneFloats(values),
	})
	return retOK
}
