package csi

import (
	"testing"

	"github.com/alexiusacademia/csiapi/internal/apierr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlankCases(t *testing.T) {
	m, _ := open(t, "")

	info, err := m.LoadCases().Type("MODAL")
	require.NoError(t, err)
	assert.Equal(t, CaseInfo{
		Type:             CaseModal,
		SubType:          CaseSubTypeEigen,
		DesignType:       PatternOther,
		DesignTypeOption: DesignProgramDetermined,
	}, info)

	info, err = m.LoadCases().Type("DEAD")
	require.NoError(t, err)
	assert.Equal(t, CaseLinearStatic, info.Type)
	assert.Equal(t, CaseSubTypeNone, info.SubType)
	assert.Equal(t, PatternDead, info.DesignType)

	maxModes, minModes, err := m.LoadCases().ModalEigen().NumberModes("MODAL")
	require.NoError(t, err)
	assert.Equal(t, 12, maxModes)
	assert.Equal(t, 1, minModes)

	names, err := m.LoadCases().GetNameList(CaseModal)
	require.NoError(t, err)
	assert.Equal(t, []string{"MODAL"}, names)
	n, err := m.LoadCases().Count(0)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCoordinateSystems(t *testing.T) {
	m, _ := open(t, "")
	cs := CoordSys{X: 10, RZ: 90}
	require.NoError(t, m.CoordinateSystems().Set("C1", cs))

	got, err := m.CoordinateSystems().Get("C1")
	require.NoError(t, err)
	assert.Equal(t, cs, got)

	r, err := m.CoordinateSystems().TransformationMatrix("C1")
	require.NoError(t, err)
	assert.InDelta(t, 0, r[0], 1e-12)
	assert.InDelta(t, -1, r[1], 1e-12)
	assert.InDelta(t, 1, r[3], 1e-12)
	assert.InDelta(t, 1, r[8], 1e-12)

	require.NoError(t, m.CoordinateSystems().ChangeName("C1", "C2"))
	names, err := m.CoordinateSystems().GetNameList()
	require.NoError(t, err)
	assert.Equal(t, []string{"GLOBAL", "C2"}, names)
	require.NoError(t, m.CoordinateSystems().Delete("C2"))
}

func TestConstraints(t *testing.T) {
	m, _ := open(t, "")
	c := m.Constraints()

	require.NoError(t, c.SetBody("BODY1", Fixed, GlobalCSys))
	dof, csys, err := c.Body("BODY1")
	require.NoError(t, err)
	assert.Equal(t, Fixed, dof)
	assert.Equal(t, GlobalCSys, csys)

	require.NoError(t, c.SetDiaphragm("DIAPH1", AxisZ, GlobalCSys))
	axis, _, err := c.Diaphragm("DIAPH1")
	require.NoError(t, err)
	assert.Equal(t, AxisZ, axis)

	typ, err := c.Type("DIAPH1")
	require.NoError(t, err)
	assert.Equal(t, ConstraintDiaphragm, typ)

	_, _, err = c.Body("DIAPH1")
	assert.Error(t, err, "a diaphragm is not a body")
	assert.ErrorIs(t, c.SetDiaphragm("D2", ConstraintAxis(42), ""), apierr.ErrInvalidArgument)
	assert.Error(t, c.SetBody("B2", Fixed, "NOPE"))

	assert.Equal(t, 2, c.Count())
	require.NoError(t, c.Delete("BODY1"))
	assert.Equal(t, 1, c.Count())
}

func TestFunctions(t *testing.T) {
	m, _ := open(t, "")
	pts := []FunctionPoint{{0, 0}, {1, 1}, {2, 0}}
	require.NoError(t, m.Functions().TimeHistory().SetUser("PULSE", pts))

	got, err := m.Functions().TimeHistory().User("PULSE")
	require.NoError(t, err)
	assert.Equal(t, pts, got)

	spec, damping, err := m.Functions().ResponseSpectrum().User("UNIFRS")
	require.NoError(t, err)
	assert.Equal(t, 0.05, damping)
	assert.Len(t, spec, 2)

	th, err := m.Functions().GetNameList(FunctionTimeHistory)
	require.NoError(t, err)
	assert.Equal(t, []string{"UNIFTH", "PULSE"}, th)

	typ, err := m.Functions().Type("UNIFRS")
	require.NoError(t, err)
	assert.Equal(t, FunctionResponseSpectrum, typ)
}

func TestStaticCaseLoads(t *testing.T) {
	m, _ := open(t, "")
	require.NoError(t, m.LoadPatterns().Add("LIVE", PatternLive, 0, false))
	sl := m.LoadCases().StaticLinear()
	require.NoError(t, sl.SetCase("LC1"))

	loads := []CaseLoad{
		{Kind: CaseLoadPattern, Name: "DEAD", Scale: 1.2},
		{Kind: CaseLoadPattern, Name: "LIVE", Scale: 1.6},
		{Kind: CaseLoadAccel, Name: "UX", Scale: 0.1},
	}
	require.NoError(t, sl.SetLoads("LC1", loads))
	got, err := sl.Loads("LC1")
	require.NoError(t, err)
	assert.Equal(t, loads, got)

	err = sl.SetLoads("LC1", []CaseLoad{{Kind: "Mode", Name: "MODAL", Scale: 1}})
	assert.ErrorIs(t, err, apierr.ErrInvalidArgument)
	assert.Error(t, sl.SetLoads("LC1", []CaseLoad{{Kind: CaseLoadPattern, Name: "WIND", Scale: 1}}))

	require.NoError(t, m.LoadCases().SetDesignType("LC1", DesignUserSpecified, PatternLive))
	info, err := m.LoadCases().Type("LC1")
	require.NoError(t, err)
	assert.Equal(t, DesignUserSpecified, info.DesignTypeOption)
	assert.Equal(t, PatternLive, info.DesignType)
}

func TestSpectrumCaseLoads(t *testing.T) {
	m, _ := open(t, "")
	rs := m.LoadCases().ResponseSpectrum()
	require.NoError(t, rs.SetCase("RSX"))

	loads := []SpectrumLoad{{Direction: "U1", Function: "UNIFRS", Scale: 9.81, CSys: GlobalCSys}}
	require.NoError(t, rs.SetLoads("RSX", loads))
	got, err := rs.Loads("RSX")
	require.NoError(t, err)
	assert.Equal(t, loads, got)

	assert.Error(t, rs.SetLoads("RSX", []SpectrumLoad{{Direction: "U1", Function: "UNIFTH", Scale: 1, CSys: GlobalCSys}}))
}

func TestCombinations(t *testing.T) {
	m, _ := open(t, "")
	lc := m.LoadCombinations()
	require.NoError(t, lc.Add("ULS", ComboLinearAdditive))
	require.NoError(t, lc.SetItem("ULS", ComboItem{Kind: ComboItemCase, Name: "DEAD", Scale: 1.4}))
	require.NoError(t, lc.Add("ENV", ComboEnvelope))
	require.NoError(t, lc.SetItem("ENV", ComboItem{Kind: ComboItemCombo, Name: "ULS", Scale: 1}))

	items, err := lc.Items("ENV")
	require.NoError(t, err)
	assert.Equal(t, []ComboItem{{Kind: ComboItemCombo, Name: "ULS", Scale: 1}}, items)

	assert.Error(t, lc.SetItem("ULS", ComboItem{Kind: ComboItemCombo, Name: "ENV", Scale: 1}))

	require.NoError(t, lc.SetItem("ULS", ComboItem{Kind: ComboItemCase, Name: "DEAD", Scale: 1.2}))
	items, err = lc.Items("ULS")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1.2, items[0].Scale)

	require.NoError(t, lc.SetType("ENV", ComboSRSS))
	typ, err := lc.Type("ENV")
	require.NoError(t, err)
	assert.Equal(t, ComboSRSS, typ)

	require.NoError(t, lc.DeleteItem("ENV", ComboItemCombo, "ULS"))
	items, err = lc.Items("ENV")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMassSources(t *testing.T) {
	m, _ := open(t, "")
	ms := m.MassSource()

	def, err := ms.Default()
	require.NoError(t, err)
	assert.Equal(t, "MSSSRC1", def)

	src := MassSourceDef{FromElements: true, FromLoads: true, Loads: []MassLoad{{Pattern: "DEAD", Scale: 1}}}
	require.NoError(t, ms.Set("SEISMIC", src))
	got, err := ms.Get("SEISMIC")
	require.NoError(t, err)
	assert.Equal(t, src, got)

	require.NoError(t, ms.SetDefault("SEISMIC"))
	assert.Error(t, ms.Delete("SEISMIC"))
	require.NoError(t, ms.Delete("MSSSRC1"))
	n, err := ms.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	old, _ := open(t, "17.0.0")
	assert.ErrorIs(t, old.MassSource().Set("SEISMIC", src), apierr.ErrUnsupported)
	_, err = old.MassSource().Count()
	assert.ErrorIs(t, err, apierr.ErrUnsupported)
	require.NoError(t, old.MassSource().SetLegacy(src))
	legacy, err := old.MassSource().Legacy()
	require.NoError(t, err)
	assert.Equal(t, src.Loads, legacy.Loads)
}

func TestJointsAndFrames(t *testing.T) {
	m, _ := open(t, "")
	j := m.Joints()

	p1, err := j.AddCartesian(0, 0, 0, "", "")
	require.NoError(t, err)
	p2, err := j.AddCartesian(0, 0, 120, "TOP", "")
	require.NoError(t, err)
	assert.Equal(t, "TOP", p2)

	require.NoError(t, j.SetRestraint(p1, Fixed, ItemObject))
	dof, err := j.Restraint(p1)
	require.NoError(t, err)
	assert.Equal(t, Fixed, dof)

	require.NoError(t, m.Constraints().SetDiaphragm("DIAPH1", AxisZ, ""))
	require.NoError(t, j.SetConstraint(p2, "DIAPH1", ItemObject, true))
	pc, err := j.Constraint(p2, ItemObject)
	require.NoError(t, err)
	assert.Equal(t, []PointConstraint{{Point: "TOP", Constraint: "DIAPH1"}}, pc)

	load := Loads{F1: 10, M3: -2}
	require.NoError(t, j.SetLoadForce(p2, "DEAD", load, true, "", ItemObject))
	require.NoError(t, j.SetLoadForce(p2, "DEAD", load, false, "", ItemObject))
	got, err := j.LoadForce(p2, ItemObject)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, Loads{F1: 20, M3: -4}, got[0].Loads)
	assert.Equal(t, GlobalCSys, got[0].CSys)
	assert.ErrorIs(t, j.SetLoadForce(p2, "", load, true, "", ItemObject), apierr.ErrInvalidArgument)

	_, _, z, err := j.Coord(p2, "")
	require.NoError(t, err)
	assert.Equal(t, 120.0, z)

	require.NoError(t, m.Properties().Materials().Add("STEEL", MaterialSteel))
	require.NoError(t, m.Properties().FrameSections().SetRectangle("R12x24", Rectangle{Material: "STEEL", Depth: 24, Width: 12}))
	f, err := m.Frames().AddByPoint(p1, p2, "R12x24", "COL1")
	require.NoError(t, err)
	assert.Equal(t, "COL1", f)

	i, jj, err := m.Frames().Points("COL1")
	require.NoError(t, err)
	assert.Equal(t, p1, i)
	assert.Equal(t, "TOP", jj)

	require.NoError(t, m.Groups().Set("COLUMNS", AllUses(-1)))
	require.NoError(t, m.Frames().SetGroup("COL1", "COLUMNS", false, ItemObject))
	refs, err := m.Groups().Assignments("COLUMNS")
	require.NoError(t, err)
	assert.Equal(t, []ObjectRef{{Type: ObjectFrame, Name: "COL1"}}, refs)

	assert.Error(t, j.Delete(p1, ItemObject), "joint is used by a frame")
	assert.Error(t, m.Properties().FrameSections().Delete("R12x24"), "section is used by a frame")
	require.NoError(t, m.Frames().Delete("COL1", ItemObject))
	require.NoError(t, j.Delete(p1, ItemObject))
}

func TestJointGUIDAndGroups(t *testing.T) {
	m, _ := open(t, "")
	j := m.Joints()
	p, err := j.AddCartesian(1, 2, 3, "P1", "")
	require.NoError(t, err)

	require.NoError(t, j.SetGUID(p, ""))
	guid, err := j.GUID(p)
	require.NoError(t, err)
	assert.Len(t, guid, 36)
	assert.Error(t, j.SetGUID(p, "not-a-guid"))

	require.NoError(t, m.Groups().Set("G1", AllUses(-1)))
	require.NoError(t, j.SetGroup(p, "G1", false, ItemObject))
	groups, err := j.Groups(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"ALL", "G1"}, groups)
}

func TestProperties(t *testing.T) {
	m, _ := open(t, "")
	mat := m.Properties().Materials()
	require.NoError(t, mat.Add("C4000", MaterialConcrete))

	iso := Isotropic{E: 3605, U: 0.2, A: 5.5e-6}
	require.NoError(t, mat.SetIsotropic("C4000", iso))
	got, err := mat.Isotropic("C4000")
	require.NoError(t, err)
	assert.Equal(t, iso, got)
	assert.Error(t, mat.SetIsotropic("C4000", Isotropic{E: 3605, U: 0.5}))

	typ, err := mat.Type("C4000")
	require.NoError(t, err)
	assert.Equal(t, MaterialConcrete, typ)

	fs := m.Properties().FrameSections()
	assert.ErrorIs(t, fs.SetRectangle("BAD", Rectangle{Material: "C4000", Depth: 0, Width: 12}), apierr.ErrInvalidArgument)

	g := GeneralSection{T3: 20, T2: 10, Area: 200, As2: 166, As3: 166, Torsion: 4577,
		I22: 1666, I33: 6666, S22: 333, S33: 666, Z22: 500, Z33: 1000, R22: 2.88, R33: 5.77}
	require.NoError(t, fs.SetGeneral("GEN", "C4000", g))
	matName, back, err := fs.General("GEN")
	require.NoError(t, err)
	assert.Equal(t, "C4000", matName)
	assert.Equal(t, g, back)

	st, err := fs.Type("GEN")
	require.NoError(t, err)
	assert.Equal(t, SectionGeneral, st)
	_, err = fs.Rectangle("GEN")
	assert.Error(t, err)

	require.NoError(t, mat.ChangeName("C4000", "C5000"))
	matName, _, err = fs.General("GEN")
	require.NoError(t, err)
	assert.Equal(t, "C5000", matName)
}

func TestNamedAssigns(t *testing.T) {
	m, _ := open(t, "")
	mods := FrameModifiers{Area: 1, As2: 1, As3: 1, Torsion: 0.1, I22: 0.7, I33: 0.7, Mass: 1, Weight: 1}
	require.NoError(t, m.NamedAssigns().FrameModifiers().Set("CRACKED", mods))
	got, err := m.NamedAssigns().FrameModifiers().Get("CRACKED")
	require.NoError(t, err)
	assert.Equal(t, mods, got)

	rel := FrameRelease{J: DOF{false, false, false, false, true, true}}
	rel.EndFixity[5] = 100
	require.NoError(t, m.NamedAssigns().FrameReleases().Set("PIN-END", rel))
	back, err := m.NamedAssigns().FrameReleases().Get("PIN-END")
	require.NoError(t, err)
	assert.Equal(t, rel, back)

	unstable := FrameRelease{I: DOF{true}, J: DOF{true}}
	assert.Error(t, m.NamedAssigns().FrameReleases().Set("BAD", unstable))
}

func TestSectionCuts(t *testing.T) {
	m, _ := open(t, "")
	require.NoError(t, m.Groups().Set("CUT", AllUses(-1)))
	require.NoError(t, m.SectionCuts().AddByGroup("SC1", "CUT", CutAnalysis))

	sc, err := m.SectionCuts().Get("SC1")
	require.NoError(t, err)
	assert.Equal(t, SectionCut{Group: "CUT", ResultType: CutAnalysis}, sc)

	assert.Error(t, m.SectionCuts().AddByGroup("SC2", "MISSING", CutAnalysis))
}

func TestGroupSettings(t *testing.T) {
	m, _ := open(t, "")
	s := GroupSettings{Color: 255, Selection: true, SectionCutDefinition: true}
	require.NoError(t, m.Groups().Set("G1", s))
	got, err := m.Groups().Get("G1")
	require.NoError(t, err)
	assert.Equal(t, s, got)
}
