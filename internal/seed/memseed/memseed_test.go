package memseed

import (
	"errors"
	"testing"

	"github.com/alexiusacademia/csiapi/internal/seed"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlankModel(t *testing.T) {
	m := New("")

	version, number, ret := m.GetVersion()
	require.Equal(t, 0, ret)
	assert.Equal(t, DefaultVersion, version)
	assert.InDelta(t, 23.0, number, 1e-9)

	_, csys, _ := m.CoordSys().GetNameList()
	assert.Equal(t, []string{"GLOBAL"}, csys)
	_, groups, _ := m.GroupDef().GetNameList()
	assert.Equal(t, []string{"ALL"}, groups)
	_, cases, _ := m.LoadCases().GetNameList(0)
	assert.Equal(t, []string{"DEAD", "MODAL"}, cases)
	assert.Equal(t, seed.UnitsKipInF, m.GetPresentUnits())
}

func TestGlobalIsProtected(t *testing.T) {
	m := New("")
	cs := m.CoordSys()

	assert.Equal(t, retFail, cs.ChangeName("GLOBAL", "G2"))
	assert.Equal(t, retFail, cs.Delete("GLOBAL"))
	assert.Equal(t, retFail, cs.SetCoordSys("GLOBAL", 1, 0, 0, 0, 0, 0))
	assert.Equal(t, 1, cs.Count())
}

func TestReservedNamesIgnoreCase(t *testing.T) {
	m := New("")
	cs := m.CoordSys()
	assert.Equal(t, retFail, cs.SetCoordSys("global", 1, 0, 0, 0, 0, 0))
	assert.Equal(t, retFail, cs.Delete("Global"))
	assert.Equal(t, retFail, cs.ChangeName("global", "G2"))
	require.Equal(t, 0, cs.SetCoordSys("LOCAL", 1, 0, 0, 0, 0, 0))
	assert.Equal(t, retFail, cs.ChangeName("LOCAL", "global"))
	assert.Equal(t, 2, cs.Count())

	g := m.GroupDef()
	assert.Equal(t, retFail, g.Delete("all"))
	assert.Equal(t, retFail, g.Clear("All"))
	assert.Equal(t, retFail, g.ChangeName("all", "EVERYTHING"))
	require.Equal(t, 0, g.SetGroup("BASE", 0, make([]bool, seed.GroupFlagCount)))
	assert.Equal(t, retFail, g.ChangeName("BASE", "all"))

	require.Equal(t, 0, g.SetGroup("all", 5, make([]bool, seed.GroupFlagCount)))
	_, groups, _ := g.GetNameList()
	assert.Equal(t, []string{"ALL", "BASE"}, groups)

	p, _ := m.PointObj().AddCartesian(0, 0, 0, "", "GLOBAL")
	assert.Equal(t, retFail, m.PointObj().SetGroupAssign(p, "all", false, seed.ItemObjects))
}

func TestPointCoordinatesRoundTripThroughCSys(t *testing.T) {
	m := New("")
	require.Equal(t, 0, m.CoordSys().SetCoordSys("C1", 10, 0, 0, 90, 0, 0))

	name, ret := m.PointObj().AddCartesian(1, 0, 0, "", "C1")
	require.Equal(t, 0, ret)
	assert.Equal(t, "1", name)

	x, y, z, ret := m.PointObj().GetCoordCartesian(name, "GLOBAL")
	require.Equal(t, 0, ret)
	assert.InDelta(t, 10, x, 1e-9)
	assert.InDelta(t, 1, y, 1e-9)
	assert.InDelta(t, 0, z, 1e-9)

	x, y, z, ret = m.PointObj().GetCoordCartesian(name, "C1")
	require.Equal(t, 0, ret)
	assert.InDelta(t, 1, x, 1e-9)
	assert.InDelta(t, 0, y, 1e-9)
	assert.InDelta(t, 0, z, 1e-9)
}

func TestCSysRenamePropagatesToLoads(t *testing.T) {
	m := New("")
	require.Equal(t, 0, m.CoordSys().SetCoordSys("C1", 0, 0, 0, 0, 0, 0))
	p, _ := m.PointObj().AddCartesian(0, 0, 0, "", "GLOBAL")
	require.Equal(t, 0, m.PointObj().SetLoadForce(p, "DEAD", []float64{1, 0, 0, 0, 0, 0}, false, "C1", seed.ItemObjects))

	assert.Equal(t, retFail, m.CoordSys().Delete("C1"), "in use")
	require.Equal(t, 0, m.CoordSys().ChangeName("C1", "C2"))

	_, _, _, _, csys, _, _, _, _, _, _, ret := m.PointObj().GetLoadForce(p, seed.ItemObjects)
	require.Equal(t, 0, ret)
	assert.Equal(t, []string{"C2"}, csys)
}

func TestSetLoadForceAddsWithinPattern(t *testing.T) {
	m := New("")
	p, _ := m.PointObj().AddCartesian(0, 0, 0, "J1", "GLOBAL")
	pt := m.PointObj()
	require.Equal(t, 0, pt.SetLoadForce(p, "DEAD", []float64{1, 2, 0, 0, 0, 0}, false, "GLOBAL", seed.ItemObjects))
	require.Equal(t, 0, pt.SetLoadForce(p, "DEAD", []float64{1, 0, 0, 0, 0, 0}, false, "GLOBAL", seed.ItemObjects))

	n, _, _, _, _, f1, f2, _, _, _, _, _ := pt.GetLoadForce(p, seed.ItemObjects)
	require.Equal(t, 1, n)
	assert.Equal(t, []float64{2}, f1)
	assert.Equal(t, []float64{2}, f2)

	require.Equal(t, 0, pt.SetLoadForce(p, "DEAD", []float64{5, 0, 0, 0, 0, 0}, true, "GLOBAL", seed.ItemObjects))
	_, _, _, _, _, f1, _, _, _, _, _, _ = pt.GetLoadForce(p, seed.ItemObjects)
	assert.Equal(t, []float64{5}, f1)
}

func TestSetGUIDGeneratesWhenBlank(t *testing.T) {
	m := New("")
	p, _ := m.PointObj().AddCartesian(0, 0, 0, "", "GLOBAL")
	require.Equal(t, 0, m.PointObj().SetGUID(p, ""))

	guid, ret := m.PointObj().GetGUID(p)
	require.Equal(t, 0, ret)
	_, err := uuid.Parse(guid)
	assert.NoError(t, err)

	assert.Equal(t, retFail, m.PointObj().SetGUID(p, "not-a-guid"))
}

func TestGroupRestraint(t *testing.T) {
	m := New("")
	require.Equal(t, 0, m.GroupDef().SetGroup("BASE", 0, make([]bool, seed.GroupFlagCount)))
	a, _ := m.PointObj().AddCartesian(0, 0, 0, "", "GLOBAL")
	b, _ := m.PointObj().AddCartesian(0, 0, 3, "", "GLOBAL")
	require.Equal(t, 0, m.PointObj().SetGroupAssign(a, "BASE", false, seed.ItemObjects))

	fixed := []bool{true, true, true, true, true, true}
	require.Equal(t, 0, m.PointObj().SetRestraint("BASE", fixed, seed.ItemGroup))

	got, _ := m.PointObj().GetRestraint(a)
	assert.Equal(t, fixed, got)
	got, _ = m.PointObj().GetRestraint(b)
	assert.Equal(t, make([]bool, 6), got)

	n, types, objs, ret := m.GroupDef().GetAssignments("BASE")
	require.Equal(t, 0, ret)
	assert.Equal(t, 1, n)
	assert.Equal(t, []int{seed.ObjPoint}, types)
	assert.Equal(t, []string{a}, objs)
}

func TestFrameReferences(t *testing.T) {
	m := New("")
	mat := m.PropMaterial()
	require.Equal(t, 0, mat.SetMaterial("C28", seed.MatConcrete, 0, "", ""))
	require.Equal(t, 0, m.PropFrame().SetRectangle("B300x500", "C28", 500, 300))
	i, _ := m.PointObj().AddCartesian(0, 0, 0, "", "GLOBAL")
	j, _ := m.PointObj().AddCartesian(6, 0, 0, "", "GLOBAL")

	f, ret := m.FrameObj().AddByPoint(i, j, "B300x500", "")
	require.Equal(t, 0, ret)

	assert.Equal(t, retFail, m.PointObj().Delete(i, seed.ItemObjects), "connected point")
	assert.Equal(t, retFail, m.PropFrame().Delete("B300x500"), "section in use")
	assert.Equal(t, retFail, mat.Delete("C28"), "material in use")

	require.Equal(t, 0, m.PointObj().ChangeName(i, "A"))
	require.Equal(t, 0, m.PropFrame().ChangeName("B300x500", "B1"))
	p1, p2, _ := m.FrameObj().GetPoints(f)
	assert.Equal(t, "A", p1)
	assert.Equal(t, j, p2)
	prop, _, _ := m.FrameObj().GetSection(f)
	assert.Equal(t, "B1", prop)
}

func TestWeightAndMassUseUnitsGravity(t *testing.T) {
	m := New("")
	require.Equal(t, 0, m.SetPresentUnits(seed.UnitsKNmC))
	require.Equal(t, 0, m.PropMaterial().SetMaterial("C28", seed.MatConcrete, 0, "", ""))
	require.Equal(t, 0, m.PropMaterial().SetWeightAndMass("C28", seed.WeightPerVolume, 23.6))

	w, mass, ret := m.PropMaterial().GetWeightAndMass("C28")
	require.Equal(t, 0, ret)
	assert.InDelta(t, 23.6, w, 1e-9)
	assert.InDelta(t, 23.6/9.80665, mass, 1e-9)
}

func TestMasonryNeedsVersion20(t *testing.T) {
	assert.Equal(t, retFail, New("19.2.0").PropMaterial().SetMaterial("M", seed.MatMasonry, 0, "", ""))
	assert.Equal(t, 0, New("20.0.0").PropMaterial().SetMaterial("M", seed.MatMasonry, 0, "", ""))
}

func TestPatternInUseByCase(t *testing.T) {
	m := New("")
	lp := m.LoadPatterns()
	require.Equal(t, 0, lp.Add("LIVE", seed.PatternLive, 0, true))

	assert.Equal(t, retFail, lp.Delete("LIVE"))
	require.Equal(t, 0, m.LoadCases().Delete("LIVE"))
	assert.Equal(t, 0, lp.Delete("LIVE"))
}

func TestPatternTypesAreVersionGated(t *testing.T) {
	assert.Equal(t, retFail, New("17.0.0").LoadPatterns().Add("PT", seed.PatternPrestress, 0, false))
	assert.Equal(t, 0, New("19.0.0").LoadPatterns().Add("PT", seed.PatternPrestress, 0, false))
	assert.Equal(t, retFail, New("20.0.0").LoadPatterns().Add("CS", seed.PatternConstruction, 0, false))
}

func TestComboCannotReachItself(t *testing.T) {
	m := New("")
	rc := m.RespCombo()
	require.Equal(t, 0, rc.Add("C1", seed.ComboLinearAdditive))
	require.Equal(t, 0, rc.Add("C2", seed.ComboEnvelope))
	require.Equal(t, 0, rc.SetCaseList("C1", seed.CNameLoadCase, "DEAD", 1.4))
	require.Equal(t, 0, rc.SetCaseList("C2", seed.CNameLoadCombo, "C1", 1))

	assert.Equal(t, retFail, rc.SetCaseList("C1", seed.CNameLoadCombo, "C2", 1))
	assert.Equal(t, retFail, rc.Add("DEAD", seed.ComboLinearAdditive), "name taken by a case")
	assert.Equal(t, retFail, m.LoadCases().Delete("DEAD"), "case used by a combo")

	require.Equal(t, 0, rc.SetCaseList("C1", seed.CNameLoadCase, "DEAD", 1.2))
	n, _, names, sf, _ := rc.GetCaseList("C1")
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"DEAD"}, names)
	assert.Equal(t, []float64{1.2}, sf)
}

func TestNamedMassSourceNeedsVersion19(t *testing.T) {
	old := New("17.1.0")
	_, ret := old.SourceMass().GetDefault()
	assert.Equal(t, retFail, ret)

	fe, fm, _, _, _, _, ret := old.SourceMass().GetMassSourceLegacy()
	require.Equal(t, 0, ret)
	assert.True(t, fe)
	assert.True(t, fm)
}

func TestDefaultMassSourceCannotBeDeleted(t *testing.T) {
	m := New("")
	ms := m.SourceMass()
	require.Equal(t, 0, ms.SetMassSource("MS2", false, false, true, false, 1, []string{"DEAD"}, []float64{1}))

	assert.Equal(t, retFail, ms.Delete("MSSSRC1"))
	require.Equal(t, 0, ms.SetDefault("MS2"))
	assert.Equal(t, 0, ms.Delete("MSSSRC1"))

	name, _ := ms.GetDefault()
	assert.Equal(t, "MS2", name)
}

func TestFaultInjection(t *testing.T) {
	m := New("")
	m.FailOn("CoordSys.SetCoordSys", 7)
	assert.Equal(t, 7, m.CoordSys().SetCoordSys("C1", 0, 0, 0, 0, 0, 0))
	assert.Equal(t, 1, m.CoordSys().Count(), "no side effects")

	m.FailOn("CoordSys.SetCoordSys", 0)
	assert.Equal(t, 0, m.CoordSys().SetCoordSys("C1", 0, 0, 0, 0, 0, 0))
}

func TestLockedModelRejectsEdits(t *testing.T) {
	m := New("")
	require.Equal(t, 0, m.SetModelIsLocked(true))
	assert.Equal(t, retFail, m.LoadPatterns().Add("LIVE", seed.PatternLive, 0, false))
	assert.Equal(t, retFail, m.SourceMass().SetDefault("MSSSRC1"))

	require.Equal(t, 0, m.SetModelIsLocked(false))
	assert.Equal(t, 0, m.LoadPatterns().Add("LIVE", seed.PatternLive, 0, false))
}

func TestResultsFollowOutputSelection(t *testing.T) {
	m := New("")
	a, _ := m.PointObj().AddCartesian(0, 0, 0, "", "GLOBAL")
	b, _ := m.PointObj().AddCartesian(0, 0, 3, "", "GLOBAL")

	n, _, _, _, _, _, _, _, _, _, _, _, ret := m.Results().JointDispl(a, seed.ElmObject)
	assert.Equal(t, retFail, ret, "no results before analysis")
	assert.Zero(t, n)

	m.LoadResults(ResultTables{
		JointDispl: []JointRow{
			{Obj: a, Elm: a, Step: Step{LoadCase: "DEAD"}, Values: [6]float64{0.1}},
			{Obj: b, Elm: b, Step: Step{LoadCase: "DEAD"}, Values: [6]float64{0.2}},
			{Obj: b, Elm: b, Step: Step{LoadCase: "MODAL", StepType: "Mode", StepNum: 1}, Values: [6]float64{0.3}},
		},
	})
	assert.True(t, m.GetModelIsLocked())

	n, _, _, _, _, _, _, _, _, _, _, _, ret = m.Results().JointDispl("ALL", seed.ElmGroup)
	require.Equal(t, 0, ret)
	assert.Zero(t, n, "nothing selected")

	require.Equal(t, 0, m.ResultsSetup().SetCaseSelectedForOutput("DEAD", true))
	n, obj, _, _, _, _, u1, _, _, _, _, _, ret := m.Results().JointDispl("ALL", seed.ElmGroup)
	require.Equal(t, 0, ret)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{a, b}, obj)
	assert.Equal(t, []float64{0.1, 0.2}, u1)

	n, _, _, _, _, _, _, _, _, _, _, _, _ = m.Results().JointDispl(b, seed.ElmObject)
	assert.Equal(t, 1, n)

	assert.Equal(t, retFail, m.ResultsSetup().SetCaseSelectedForOutput("NOPE", true))

	_, caseNames, status, _ := m.Analyze().GetCaseStatus()
	assert.Equal(t, []string{"DEAD", "MODAL"}, caseNames)
	assert.Equal(t, []int{seed.StatusFinished, seed.StatusFinished}, status)
}

func TestRunAnalysisNeedsSavedModel(t *testing.T) {
	m := New("")
	assert.Equal(t, retFail, m.Analyze().RunAnalysis())

	require.Equal(t, 0, m.File().Save("model.sdb"))
	require.Equal(t, 0, m.Analyze().SetRunCaseFlag("MODAL", false, false))
	require.Equal(t, 0, m.Analyze().RunAnalysis())

	_, _, status, _ := m.Analyze().GetCaseStatus()
	assert.Equal(t, []int{seed.StatusCouldNotStart, seed.StatusNotRun}, status)
}

func TestFileHooks(t *testing.T) {
	var saved *State
	m := New("21.0.1")
	m.OnSave = func(_ string, st *State) error {
		saved = st
		return nil
	}
	require.Equal(t, 0, m.CoordSys().SetCoordSys("C1", 1, 2, 3, 0, 0, 0))
	require.Equal(t, 0, m.File().Save("a.sdb"))
	require.NotNil(t, saved)
	assert.True(t, saved.CoordSys.Has("C1"))
	assert.Equal(t, "a.sdb", m.File().GetFilename())

	other := New("")
	other.OnOpen = func(string) (*State, error) { return saved, nil }
	require.Equal(t, 0, other.File().OpenFile("a.sdb"))
	assert.Equal(t, 2, other.CoordSys().Count())
	version, _, _ := other.GetVersion()
	assert.Equal(t, DefaultVersion, version)

	other.OnOpen = func(string) (*State, error) { return nil, errors.New("boom") }
	assert.Equal(t, retFail, other.File().OpenFile("b.sdb"))
}
