package modeldef

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/csiapi/internal/csi"
	"github.com/alexiusacademia/csiapi/internal/nscp"
	"github.com/alexiusacademia/csiapi/internal/seed/memseed"
)

const portal = `
units: N_mm_C
materials:
  - name: C28
    type: Concrete
    fc: 28
    weight: 2.36e-5
  - name: A36
    type: Steel
sections:
  - name: B300x500
    material: C28
    depth: 500
    width: 300
  - name: COL
    material: A36
    general: {t3: 300, t2: 300, area: 9000, as2: 7500, as3: 7500, torsion: 1e6, i22: 5e7, i33: 8e7, s22: 3e5, s33: 5e5, z22: 4e5, z33: 6e5, r22: 75, r33: 95}
patterns:
  - name: DEAD
    type: Dead
    selfWeight: 1
  - name: LIVE
    type: Live
    addCase: true
  - name: EQX
    type: Quake
functions:
  - name: RS
    type: ResponseSpectrum
    points: [[0, 0.4], [1, 0.4], [2, 0.2]]
cases:
  - name: EQX
    type: LinearStatic
    loads:
      - name: EQX
        scale: 1
  - name: MODES
    type: Modal
    maxModes: 6
  - name: SPEC
    type: ResponseSpectrum
    spectrum:
      - direction: U1
        function: RS
        scale: 9810
combos:
  - name: ULS
    items:
      - name: DEAD
        scale: 1.2
      - name: LIVE
        scale: 1.6
groups:
  - name: STOREY1
    color: 255
constraints:
  - name: D1
    type: Diaphragm
    axis: Z
  - name: B1
    type: Body
    dof: [U1, U2, R3]
joints:
  - name: A
    restraint: [fixed]
  - name: B
    x: 6000
    restraint: [pinned]
  - name: C
    z: 3000
    constraints: [D1]
    groups: [STOREY1]
  - name: D
    x: 6000
    z: 3000
    constraints: [D1]
    groups: [STOREY1]
    loads:
      - pattern: EQX
        values: [10000, 0, 0, 0, 0, 0]
frames:
  - {name: C1, i: A, j: C, section: COL}
  - {name: C2, i: B, j: D, section: COL}
  - {name: G1, i: C, j: D, section: B300x500, groups: [STOREY1]}
modifiers:
  - name: CRACKED
    i33: 0.35
    i22: 0.35
releases:
  - name: PINNED
    i: [M2, M3]
    j: [M2, M3]
sectionCuts:
  - name: CUT1
    group: STOREY1
`

func open(t *testing.T) *csi.Model {
	t.Helper()
	m, err := csi.Open(memseed.New(""))
	require.NoError(t, err)
	return m
}

func TestApplyPortalFrame(t *testing.T) {
	d, err := Decode(strings.NewReader(portal), YAML)
	require.NoError(t, err)

	m := open(t)
	require.NoError(t, Apply(m, d))

	u, err := m.Units()
	require.NoError(t, err)
	assert.Equal(t, csi.UnitsNmmC, u)

	iso, err := m.Properties().Materials().Isotropic("C28")
	require.NoError(t, err)
	assert.InDelta(t, nscp.ConcreteModulus(28), iso.E, 1e-6)
	assert.Equal(t, nscp.ConcretePoisson, iso.U)

	steel, err := m.Properties().Materials().Isotropic("A36")
	require.NoError(t, err)
	assert.InDelta(t, 200000, steel.E, 1e-6)

	mat, g, err := m.Properties().FrameSections().General("COL")
	require.NoError(t, err)
	assert.Equal(t, "A36", mat)
	assert.Equal(t, 9000.0, g.Area)

	assert.Equal(t, 3, m.LoadPatterns().Count())
	sw, err := m.LoadPatterns().SelfWeight("DEAD")
	require.NoError(t, err)
	assert.Equal(t, 1.0, sw)

	maxModes, minModes, err := m.LoadCases().ModalEigen().NumberModes("MODES")
	require.NoError(t, err)
	assert.Equal(t, 6, maxModes)
	assert.Equal(t, 1, minModes)

	spec, err := m.LoadCases().ResponseSpectrum().Loads("SPEC")
	require.NoError(t, err)
	require.Len(t, spec, 1)
	assert.Equal(t, csi.GlobalCSys, spec[0].CSys)

	items, err := m.LoadCombinations().Items("ULS")
	require.NoError(t, err)
	assert.Equal(t, []csi.ComboItem{
		{Kind: csi.ComboItemCase, Name: "DEAD", Scale: 1.2},
		{Kind: csi.ComboItemCase, Name: "LIVE", Scale: 1.6},
	}, items)

	axis, _, err := m.Constraints().Diaphragm("D1")
	require.NoError(t, err)
	assert.Equal(t, csi.AxisZ, axis)
	body, _, err := m.Constraints().Body("B1")
	require.NoError(t, err)
	assert.Equal(t, csi.DOF{true, true, false, false, false, true}, body)

	r, err := m.Joints().Restraint("A")
	require.NoError(t, err)
	assert.Equal(t, csi.Fixed, r)
	r, err = m.Joints().Restraint("B")
	require.NoError(t, err)
	assert.Equal(t, csi.Pinned, r)

	loads, err := m.Joints().LoadForce("D", csi.ItemObject)
	require.NoError(t, err)
	require.Len(t, loads, 1)
	assert.Equal(t, "EQX", loads[0].Pattern)

	assert.Equal(t, 3, m.Frames().Count())
	i, j, err := m.Frames().Points("G1")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "D"}, []string{i, j})

	mods, err := m.NamedAssigns().FrameModifiers().Get("CRACKED")
	require.NoError(t, err)
	assert.Equal(t, 0.35, mods.I33)
	assert.Equal(t, 1.0, mods.Area)

	rel, err := m.NamedAssigns().FrameReleases().Get("PINNED")
	require.NoError(t, err)
	assert.Equal(t, csi.DOF{false, false, false, false, true, true}, rel.I)

	refs, err := m.Groups().Assignments("STOREY1")
	require.NoError(t, err)
	assert.Len(t, refs, 3)

	cut, err := m.SectionCuts().Get("CUT1")
	require.NoError(t, err)
	assert.Equal(t, "STOREY1", cut.Group)
}

func TestApplyStopsAtFirstFailure(t *testing.T) {
	d := &Definition{
		Groups: []Group{{Name: "G"}},
		Frames: []Frame{{Name: "F1", I: "NOPE", J: "ALSO", Section: "X"}},
	}
	m := open(t)
	err := Apply(m, d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `frame "F1"`)

	names, err := m.Groups().GetNameList()
	require.NoError(t, err)
	assert.Contains(t, names, "G")
}

func TestApplyRejectsBadNames(t *testing.T) {
	tests := map[string]*Definition{
		"units":      {Units: "furlongs"},
		"dof":        {Releases: []Release{{Name: "R", I: []string{"U9"}}}},
		"case type":  {Cases: []Case{{Name: "X", Type: "Buckling"}}},
		"combo kind": {Combos: []Combo{{Name: "C", Items: []ComboItem{{Kind: "Pattern", Name: "DEAD", Scale: 1}}}}},
	}
	for name, d := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, Apply(open(t), d))
		})
	}
}

func TestMaterialUnits(t *testing.T) {
	d := &Definition{Materials: []Material{{Name: "C28", Type: "Concrete", Fc: 28}}}
	m := open(t) // kip_in_F
	require.NoError(t, Apply(m, d))

	iso, err := m.Properties().Materials().Isotropic("C28")
	require.NoError(t, err)
	assert.InDelta(t, nscp.ConcreteModulus(28)*0.1450377, iso.E, 1e-6)
	assert.InDelta(t, nscp.ConcreteThermal*5/9, iso.A, 1e-12)
}

func TestDecodeFormats(t *testing.T) {
	const tomlDef = `
units = "kN_m_C"

[[patterns]]
name = "WX"
type = "Wind"

[[joints]]
name = "1"
restraint = ["U1", "U2", "U3"]
`
	d, err := Decode(strings.NewReader(tomlDef), TOML)
	require.NoError(t, err)
	assert.Equal(t, "kN_m_C", d.Units)
	require.Len(t, d.Joints, 1)
	assert.Equal(t, []string{"U1", "U2", "U3"}, d.Joints[0].Restraint)

	_, err = Decode(strings.NewReader(`{"units": "N_m_C", "colour": 1}`), JSON)
	assert.Error(t, err)

	_, err = Decode(strings.NewReader("units: N_m_C\ncolour: 1\n"), YAML)
	assert.Error(t, err)

	d, err = Decode(strings.NewReader(""), YAML)
	require.NoError(t, err)
	assert.Empty(t, d.Patterns)
}

func TestEncodeDecode(t *testing.T) {
	in := &Definition{
		Units:    "kN_m_C",
		Patterns: []Pattern{{Name: "LIVE", Type: "Live", AddCase: true}},
		Combos:   []Combo{{Name: "C1", Items: []ComboItem{{Name: "LIVE", Scale: 1.6}}}},
	}
	for _, f := range []Format{YAML, TOML, JSON} {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, in, f), f)
		out, err := Decode(&buf, f)
		require.NoError(t, err, f)
		assert.Equal(t, in, out, f)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.yml")
	require.NoError(t, os.WriteFile(path, []byte(portal), 0o644))

	d, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, d.Joints, 4)

	_, err = LoadFile(filepath.Join(dir, "model.ini"))
	assert.Error(t, err)

	f, err := FormatOf("MODEL.TOML")
	require.NoError(t, err)
	assert.Equal(t, TOML, f)
}
