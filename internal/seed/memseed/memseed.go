// Package memseed is an offline, in-memory implementation of the host
// automation surface. It keeps model definitions with the host's call-code
// behavior (duplicate and unknown names, in-use deletes, locked models) but
// performs no analysis: results are only those loaded into it.
package memseed

import (
	"strconv"
	"strings"
	"sync"

	"github.com/alexiusacademia/csiapi/internal/seed"
)

// Call codes returned by the offline model.
const (
	retOK   = 0
	retFail = 1
)

// DefaultVersion is the host version reported by models created with New.
const DefaultVersion = "23.0.0"

// Model implements seed.Model.
type Model struct {
	mu     sync.Mutex
	state  *State
	faults map[string]int

	// OnSave and OnOpen back File.Save and File.OpenFile. When nil the
	// calls only record the filename.
	OnSave func(path string, st *State) error
	OnOpen func(path string) (*State, error)
}

var _ seed.Model = (*Model)(nil)

// New returns a blank model reporting the given host version.
func New(version string) *Model {
	if version == "" {
		version = DefaultVersion
	}
	m := &Model{faults: map[string]int{}}
	m.state = blankState(version, seed.UnitsKipInF)
	return m
}

// FromState wraps an existing state, e.g. one read from a store.
func FromState(st *State) *Model {
	ensureMaps(st)
	return &Model{state: st, faults: map[string]int{}}
}

// State returns the live model state. Callers must not modify it while
// the model is in use.
func (m *Model) State() *State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// FailOn makes every subsequent call of op ("CoordSys.Delete", ...) return
// code without side effects. A zero code clears the fault.
func (m *Model) FailOn(op string, code int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if code == 0 {
		delete(m.faults, op)
		return
	}
	m.faults[op] = code
}

// fault returns the injected code for op, if any.
func (m *Model) fault(op string) int {
	return m.faults[op]
}

// mutate guards definition changes: injected faults first, then the lock.
func (m *Model) mutate(op string) int {
	if code := m.faults[op]; code != 0 {
		return code
	}
	if m.state.Locked {
		return retFail
	}
	return retOK
}

func (m *Model) versionMajor() int {
	major, _, _ := strings.Cut(m.state.Version, ".")
	n, err := strconv.Atoi(major)
	if err != nil {
		return 0
	}
	return n
}

func blankState(version string, units int) *State {
	st := &State{Version: version, Units: units}
	ensureMaps(st)

	st.CoordSys.Put(globalCSys, &CoordSysDef{})
	st.Groups.Put(allGroup, &GroupDef{Flags: allGroupFlags()})
	st.Patterns.Put("DEAD", &PatternDef{Type: seed.PatternDead, SelfWeight: 1})
	st.Cases.Put("DEAD", &CaseDef{
		Type:       seed.CaseLinearStatic,
		DesignType: seed.PatternDead,
		Loads:      []CaseLoad{{Type: "Load", Name: "DEAD", Scale: 1}},
	})
	st.Cases.Put("MODAL", &CaseDef{
		Type:       seed.CaseModal,
		SubType:    seed.ModalSubEigen,
		DesignType: seed.PatternOther,
		MaxModes:   12,
		MinModes:   1,
	})
	st.Functions.Put("UNIFTH", &FunctionDef{
		Type: seed.FuncTimeHistory, AddType: seed.FuncAddUser,
		X: []float64{0, 1}, Value: []float64{1, 1},
	})
	st.Functions.Put("UNIFRS", &FunctionDef{
		Type: seed.FuncResponseSpectrum, AddType: seed.FuncAddUser,
		X: []float64{0, 1}, Value: []float64{1, 1}, DampRatio: 0.05,
	})
	st.MassSources.Put("MSSSRC1", &MassSourceDef{FromElements: true, FromMasses: true, IsDefault: true})
	st.LegacyMass = MassSourceDef{FromElements: true, FromMasses: true}
	return st
}

func ensureMaps(st *State) {
	if st.CoordSys.Items == nil {
		st.CoordSys = newTable[CoordSysDef]()
	}
	if st.Constraints.Items == nil {
		st.Constraints = newTable[ConstraintDef]()
	}
	if st.Functions.Items == nil {
		st.Functions = newTable[FunctionDef]()
	}
	if st.Patterns.Items == nil {
		st.Patterns = newTable[PatternDef]()
	}
	if st.Cases.Items == nil {
		st.Cases = newTable[CaseDef]()
	}
	if st.Combos.Items == nil {
		st.Combos = newTable[ComboDef]()
	}
	if st.Groups.Items == nil {
		st.Groups = newTable[GroupDef]()
	}
	if st.MassSources.Items == nil {
		st.MassSources = newTable[MassSourceDef]()
	}
	if st.SectionCuts.Items == nil {
		st.SectionCuts = newTable[SectionCutDef]()
	}
	if st.Points.Items == nil {
		st.Points = newTable[PointDef]()
	}
	if st.Frames.Items == nil {
		st.Frames = newTable[FrameDef]()
	}
	if st.Materials.Items == nil {
		st.Materials = newTable[MaterialDef]()
	}
	if st.FrameProps.Items == nil {
		st.FrameProps = newTable[FramePropDef]()
	}
	if st.Modifiers.Items == nil {
		st.Modifiers = newTable[ModifierDef]()
	}
	if st.Releases.Items == nil {
		st.Releases = newTable[ReleaseDef]()
	}
	if st.Output == nil {
		st.Output = map[string]bool{}
	}
	if st.RunFlags == nil {
		st.RunFlags = map[string]bool{}
	}
	if st.Status == nil {
		st.Status = map[string]int{}
	}
}

const (
	globalCSys = "GLOBAL"
	allGroup   = "ALL"
)

// isReserved reports whether name refers to a built-in definition. The host
// compares names without regard to case.
func isReserved(name, builtin string) bool {
	return strings.EqualFold(strings.TrimSpace(name), builtin)
}

func allGroupFlags() []bool {
	flags := make([]bool, seed.GroupFlagCount)
	for i := range flags {
		flags[i] = true
	}
	return flags
}

// GetVersion implements seed.Model.
func (m *Model) GetVersion() (string, float64, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.fault("GetVersion"); code != 0 {
		return "", 0, code
	}
	major, rest, _ := strings.Cut(m.state.Version, ".")
	minor, _, _ := strings.Cut(rest, ".")
	number, err := strconv.ParseFloat(major+"."+minor, 64)
	if err != nil {
		number, _ = strconv.ParseFloat(major, 64)
	}
	return m.state.Version, number, retOK
}

// InitializeNewModel implements seed.Model.
func (m *Model) InitializeNewModel(units int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.fault("InitializeNewModel"); code != 0 {
		return code
	}
	if !validUnits(units) {
		return retFail
	}
	m.state = blankState(m.state.Version, units)
	return retOK
}

// GetPresentUnits implements seed.Model.
func (m *Model) GetPresentUnits() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Units
}

// SetPresentUnits implements seed.Model.
func (m *Model) SetPresentUnits(units int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.fault("SetPresentUnits"); code != 0 {
		return code
	}
	if !validUnits(units) {
		return retFail
	}
	m.state.Units = units
	return retOK
}

func validUnits(units int) bool {
	return units >= seed.UnitsLbInF && units <= seed.UnitsToncmC
}

// GetModelIsLocked implements seed.Model.
func (m *Model) GetModelIsLocked() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Locked
}

// SetModelIsLocked implements seed.Model. Unlocking clears analysis status.
func (m *Model) SetModelIsLocked(locked bool) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if code := m.fault("SetModelIsLocked"); code != 0 {
		return code
	}
	if m.state.Locked && !locked {
		m.state.Status = map[string]int{}
	}
	m.state.Locked = locked
	return retOK
}

// Category accessors.

func (m *Model) File() seed.File                         { return fileAPI{m} }
func (m *Model) Analyze() seed.Analyze                   { return analyzeAPI{m} }
func (m *Model) CoordSys() seed.CoordSys                 { return coordSysAPI{m} }
func (m *Model) ConstraintDef() seed.ConstraintDef       { return constraintAPI{m} }
func (m *Model) Func() seed.Func                         { return funcAPI{m} }
func (m *Model) FuncTH() seed.FuncTH                     { return funcTHAPI{m} }
func (m *Model) FuncRS() seed.FuncRS                     { return funcRSAPI{m} }
func (m *Model) LoadPatterns() seed.LoadPatterns         { return patternAPI{m} }
func (m *Model) AutoSeismic() seed.AutoCode              { return autoCodeAPI{m, "AutoSeismic"} }
func (m *Model) AutoWind() seed.AutoCode                 { return autoCodeAPI{m, "AutoWind"} }
func (m *Model) LoadCases() seed.LoadCases               { return caseAPI{m} }
func (m *Model) StaticLinear() seed.StaticCase           { return staticAPI{m, seed.CaseLinearStatic, "StaticLinear"} }
func (m *Model) StaticNonlinear() seed.StaticCase        { return staticAPI{m, seed.CaseNonlinearStatic, "StaticNonlinear"} }
func (m *Model) ModalEigen() seed.ModalEigen             { return modalAPI{m} }
func (m *Model) ResponseSpectrum() seed.ResponseSpectrum { return spectrumAPI{m} }
func (m *Model) RespCombo() seed.RespCombo               { return comboAPI{m} }
func (m *Model) GroupDef() seed.GroupDef                 { return groupAPI{m} }
func (m *Model) SourceMass() seed.SourceMass             { return massAPI{m} }
func (m *Model) SectCut() seed.SectCut                   { return sectCutAPI{m} }
func (m *Model) PointObj() seed.PointObj                 { return pointAPI{m} }
func (m *Model) FrameObj() seed.FrameObj                 { return frameAPI{m} }
func (m *Model) PropMaterial() seed.PropMaterial         { return materialAPI{m} }
func (m *Model) PropFrame() seed.PropFrame               { return framePropAPI{m} }
func (m *Model) ModifierFrame() seed.ModifierFrame       { return modifierAPI{m} }
func (m *Model) ReleaseFrame() seed.ReleaseFrame         { return releaseAPI{m} }
func (m *Model) Results() seed.Results                   { return resultsAPI{m} }
func (m *Model) ResultsSetup() seed.ResultsSetup         { return setupAPI{m} }

// names returns n and a copy of the list, the shape of every GetNameList.
func names(list []string) (int, []string, int) {
	return len(list), list, retOK
}

func cloneBools(v []bool) []bool {
	return append([]bool(nil), v...)
}

func cloneFloats(v []float64) []float64 {
	return append([]float64(nil), v...)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func remove(list []string, s string) []string {
	out := list[:0]
	for _, v := range list {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}

func replace(list []string, oldName, newName string) {
	for i, v := range list {
		if v == oldName {
			list[i] = newName
		}
	}
}
