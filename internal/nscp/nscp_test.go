package nscp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/csiapi/internal/csi"
	"github.com/alexiusacademia/csiapi/internal/seed/memseed"
)

func open(t *testing.T) *csi.Model {
	t.Helper()
	m, err := csi.Open(memseed.New(""))
	require.NoError(t, err)
	return m
}

func names(gs []Generated) []string {
	out := make([]string, len(gs))
	for i, g := range gs {
		out[i] = g.Name
	}
	return out
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		in   csi.PatternType
		want LoadKind
		ok   bool
	}{
		{csi.PatternDead, Dead, true},
		{csi.PatternSuperDead, Dead, true},
		{csi.PatternReducibleLive, Live, true},
		{csi.PatternRoofLive, Roof, true},
		{csi.PatternWind, Wind, true},
		{csi.PatternQuake, Earthquake, true},
		{csi.PatternSnow, 0, false},
	}
	for _, tt := range tests {
		got, ok := KindOf(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in.String())
		assert.Equal(t, tt.want, got, tt.in.String())
	}
	assert.Equal(t, "Lr", Roof.String())
}

func TestGenerateSkipsMissingLateralLoads(t *testing.T) {
	m := open(t)
	require.NoError(t, m.LoadPatterns().Add("LIVE", csi.PatternLive, 0, true))
	require.NoError(t, m.LoadPatterns().Add("EQX", csi.PatternQuake, 0, false))

	got, err := Generate(m, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"NSCP1", "NSCP2", "NSCP5", "NSCP7"}, names(got))

	// EQX had no case of its own.
	cases, err := m.LoadCases().GetNameList(csi.CaseLinearStatic)
	require.NoError(t, err)
	assert.Contains(t, cases, "EQX")

	items, err := m.LoadCombinations().Items("NSCP5")
	require.NoError(t, err)
	assert.Equal(t, []csi.ComboItem{
		{Kind: csi.ComboItemCase, Name: "DEAD", Scale: 1.2},
		{Kind: csi.ComboItemCase, Name: "LIVE", Scale: 1.0},
		{Kind: csi.ComboItemCase, Name: "EQX", Scale: 1.0},
	}, items)

	typ, err := m.LoadCombinations().Type("NSCP7")
	require.NoError(t, err)
	assert.Equal(t, csi.ComboLinearAdditive, typ)
}

func TestGenerateDryRunLeavesModelAlone(t *testing.T) {
	m := open(t)
	require.NoError(t, m.LoadPatterns().Add("W", csi.PatternWind, 0, false))

	got, err := Generate(m, Options{Prefix: "U", DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"U1", "U2", "U4", "U6"}, names(got))
	assert.Equal(t, "1.4D", got[0].Description)
	assert.Equal(t, 0, m.LoadCombinations().Count())

	cases, err := m.LoadCases().GetNameList(0)
	require.NoError(t, err)
	assert.NotContains(t, cases, "W")
}

func TestGenerateRoofLiveWithoutWind(t *testing.T) {
	m := open(t)
	require.NoError(t, m.LoadPatterns().Add("LIVE", csi.PatternLive, 0, true))
	require.NoError(t, m.LoadPatterns().Add("ROOF", csi.PatternRoofLive, 0, true))

	got, err := Generate(m, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"NSCP1", "NSCP2", "NSCP3a"}, names(got))

	items, err := m.LoadCombinations().Items("NSCP3a")
	require.NoError(t, err)
	assert.Equal(t, []csi.ComboItem{
		{Kind: csi.ComboItemCase, Name: "DEAD", Scale: 1.2},
		{Kind: csi.ComboItemCase, Name: "LIVE", Scale: 1.0},
		{Kind: csi.ComboItemCase, Name: "ROOF", Scale: 1.6},
	}, items)
}

func TestGenerateRoofLiveWithWind(t *testing.T) {
	m := open(t)
	require.NoError(t, m.LoadPatterns().Add("LIVE", csi.PatternLive, 0, true))
	require.NoError(t, m.LoadPatterns().Add("ROOF", csi.PatternRoofLive, 0, true))
	require.NoError(t, m.LoadPatterns().Add("WX", csi.PatternWind, 0, true))

	got, err := Generate(m, Options{DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"NSCP1", "NSCP2", "NSCP3a", "NSCP3b", "NSCP4", "NSCP6"}, names(got))

	// Live and wind load are alternatives in combination 3.
	assert.Equal(t, []csi.ComboItem{
		{Kind: csi.ComboItemCase, Name: "DEAD", Scale: 1.2},
		{Kind: csi.ComboItemCase, Name: "ROOF", Scale: 1.6},
		{Kind: csi.ComboItemCase, Name: "WX", Scale: 0.5},
	}, got[3].Items)
	assert.Equal(t, "1.2D + 1.6(Lr or R) + 0.5W", got[3].Description)
}

func TestGenerateSimplifiedAndReplace(t *testing.T) {
	m := open(t)
	require.NoError(t, m.LoadPatterns().Add("LIVE", csi.PatternLive, 0, true))

	got, err := Generate(m, Options{Simplified: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"NSCP1", "NSCP2"}, names(got))

	_, err = Generate(m, Options{Simplified: true})
	assert.Error(t, err)

	_, err = Generate(m, Options{Simplified: true, Replace: true})
	require.NoError(t, err)
	assert.Equal(t, 2, m.LoadCombinations().Count())
}

func TestGenerateNeedsDeadLoad(t *testing.T) {
	m := open(t)
	require.NoError(t, m.LoadPatterns().ChangeName("DEAD", "SNOW"))
	require.NoError(t, m.LoadPatterns().SetType("SNOW", csi.PatternSnow))

	_, err := Generate(m, Options{})
	assert.Error(t, err)
}

func TestMaterials(t *testing.T) {
	assert.InDelta(t, 4700*math.Sqrt(28), ConcreteModulus(28), 1e-9)
	assert.Zero(t, ConcreteModulus(0))

	c := Concrete(28)
	assert.InDelta(t, ConcreteModulus(28), c.E, 1e-9)
	assert.Equal(t, ConcretePoisson, c.U)

	s := Steel()
	assert.Equal(t, float64(Es), s.E)
	assert.Equal(t, SteelThermal, s.A)
}
