package csi

import (
	"testing"

	"github.com/alexiusacademia/csiapi/internal/apierr"
	"github.com/alexiusacademia/csiapi/internal/seed"
	"github.com/alexiusacademia/csiapi/internal/seed/memseed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loaded(t *testing.T) (*Model, *memseed.Model) {
	t.Helper()
	m, host := open(t, "")
	for i, name := range []string{"1", "2"} {
		_, err := m.Joints().AddCartesian(float64(i), 0, 0, name, GlobalCSys)
		require.NoError(t, err)
	}
	dead := memseed.Step{LoadCase: "DEAD", StepType: ""}
	modal := func(n float64) memseed.Step { return memseed.Step{LoadCase: "MODAL", StepType: "Mode", StepNum: n} }
	host.LoadResults(memseed.ResultTables{
		JointDispl: []memseed.JointRow{
			{Obj: "1", Elm: "1", Step: dead, Values: [6]float64{0, 0, -0.5, 0, 0.01, 0}},
			{Obj: "2", Elm: "2", Step: dead, Values: [6]float64{0.1, 0, -0.2, 0, 0, 0}},
		},
		BaseReact:    []memseed.BaseReactRow{{Step: dead, Values: [6]float64{0, 0, 100, 0, 0, 0}}},
		BaseReactLoc: [3]float64{1, 2, 3},
		ModalPeriod: []memseed.ModalPeriodRow{
			{Step: modal(1), Period: 0.5, Frequency: 2, CircFreq: 12.566, EigenValue: 157.9},
			{Step: modal(2), Period: 0.25, Frequency: 4, CircFreq: 25.133, EigenValue: 631.6},
		},
		ShellStress: []memseed.ShellStressRow{{
			Obj: "A1", Elm: "A1", PointElm: "1", Step: dead,
			Top:    [7]float64{1, 2, 3, 4, 5, 6, 7},
			Bottom: [7]float64{-1, -2, -3, -4, -5, -6, -7},
			Avg:    [4]float64{0.1, 0.2, 0.3, 45},
		}},
	})
	return m, host
}

func TestResultsFollowSelection(t *testing.T) {
	m, _ := loaded(t)
	r := m.Results()

	rows, err := r.JointDispl("ALL", ElmGroup)
	require.NoError(t, err)
	assert.Empty(t, rows, "nothing selected yet")

	require.NoError(t, r.Setup().SelectCase("DEAD", true))
	sel, err := r.Setup().CaseSelected("DEAD")
	require.NoError(t, err)
	assert.True(t, sel)

	rows, err = r.JointDispl("ALL", ElmGroup)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, JointDisplRow{
		Obj: "1", Elm: "1", Step: Step{LoadCase: "DEAD"},
		Displ: Deformations{U3: -0.5, R2: 0.01},
	}, rows[0])

	rows, err = r.JointDispl("2", ElmObject)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 0.1, rows[0].Displ.U1)

	_, err = r.JointDispl("3", ElmObject)
	assert.ErrorIs(t, err, apierr.ErrCallFailed, "no such joint")

	base, err := r.BaseReact()
	require.NoError(t, err)
	require.Len(t, base, 1)
	assert.Equal(t, BaseReaction{Fz: 100, Gx: 1, Gy: 2, Gz: 3}, base[0].Reaction)

	require.NoError(t, r.Setup().DeselectAll())
	rows, err = r.JointDispl("ALL", ElmGroup)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestModalPeriodModes(t *testing.T) {
	m, _ := loaded(t)
	require.NoError(t, m.Results().Setup().SelectCase("MODAL", true))

	rows, err := m.Results().ModalPeriod()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Period.Mode)
	assert.Equal(t, 2, rows[1].Period.Mode)
	assert.Equal(t, 0.25, rows[1].Period.Period)
}

func TestShellStressIsRegrouped(t *testing.T) {
	m, _ := loaded(t)
	require.NoError(t, m.Results().Setup().SelectCase("DEAD", true))

	rows, err := m.Results().AreaStressShell("A1", ElmObject)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, Stress{S11: 1, S22: 2, S12: 3, SMax: 4, SMin: 5, SAngle: 6, SVM: 7}, rows[0].Top)
	assert.Equal(t, -7.0, rows[0].Bottom.SVM)
	assert.Equal(t, TransverseShear{S13Avg: 0.1, S23Avg: 0.2, SMaxAvg: 0.3, SAngleAvg: 45}, rows[0].Shear)
}

func TestResultsNeedAnalysis(t *testing.T) {
	m, _ := open(t, "")
	_, err := m.Results().BaseReact()
	assert.ErrorIs(t, err, apierr.ErrCallFailed)

	assert.Error(t, m.Results().Setup().SelectCase("MISSING", true))
	_, err = m.Results().JointDispl("1", ItemTypeElm(99))
	assert.ErrorIs(t, err, apierr.ErrInvalidArgument)
}

// brokenHost returns arrays that disagree with their counts.
type brokenHost struct{ *memseed.Model }

func (h brokenHost) Results() seed.Results { return brokenResults{h.Model.Results()} }

func (h brokenHost) LoadPatterns() seed.LoadPatterns { return brokenPatterns{h.Model.LoadPatterns()} }

type brokenResults struct{ seed.Results }

func (brokenResults) JointDispl(string, int) (int, []string, []string, []string, []string, []float64,
	[]float64, []float64, []float64, []float64, []float64, []float64, int) {
	one := []float64{0}
	return 2, []string{"1"}, []string{"1"}, []string{"DEAD"}, []string{""}, one, one, one, one, one, one, one, 0
}

func (brokenResults) AreaStressShell(string, int) (int, []string, []string, []string, []string, []string,
	[]float64, []float64, []float64, []float64, int) {
	s := []string{"A1"}
	return 1, s, s, s, s, s, []float64{1}, make([]float64, 6), make([]float64, 7), make([]float64, 4), 0
}

func (h brokenHost) StaticLinear() seed.StaticCase { return brokenStatic{h.Model.StaticLinear()} }

type brokenStatic struct{ seed.StaticCase }

func (brokenStatic) GetLoads(string) (int, []string, []string, []float64, int) {
	return 1, []string{"Heat"}, []string{"DEAD"}, []float64{1}, 0
}

type brokenPatterns struct{ seed.LoadPatterns }

func (brokenPatterns) GetLoadType(string) (int, int) { return 999, 0 }

func TestMalformedResponses(t *testing.T) {
	m, err := Open(brokenHost{memseed.New("")})
	require.NoError(t, err)

	_, err = m.Results().JointDispl("1", ElmObject)
	assert.ErrorIs(t, err, apierr.ErrMalformedResult)

	_, err = m.Results().AreaStressShell("A1", ElmObject)
	assert.ErrorIs(t, err, apierr.ErrMalformedResult)

	_, err = m.LoadPatterns().Type("DEAD")
	assert.ErrorIs(t, err, apierr.ErrMalformedResult)

	_, err = m.LoadCases().StaticLinear().Loads("DEAD")
	assert.ErrorIs(t, err, apierr.ErrMalformedResult)
}

func TestAnalyzeCaseStatus(t *testing.T) {
	m, _ := open(t, "")
	assert.Error(t, m.Analyze().Run(), "model was never saved")

	require.NoError(t, m.File().Save("frame.sdb"))
	assert.Equal(t, "frame.sdb", m.File().Filename())
	require.NoError(t, m.Analyze().SetRunCaseFlag("MODAL", false))
	require.NoError(t, m.Analyze().CreateAnalysisModel())
	require.NoError(t, m.Analyze().Run())
	assert.True(t, m.Locked())

	status, err := m.Analyze().CaseStatus()
	require.NoError(t, err)
	assert.ElementsMatch(t, []CaseRunStatus{
		{Case: "DEAD", Status: StatusCouldNotStart},
		{Case: "MODAL", Status: StatusNotRun},
	}, status)

	require.NoError(t, m.SetLocked(false))
	require.NoError(t, m.LoadPatterns().Add("LIVE", PatternLive, 0, false))
	require.NoError(t, m.File().NewBlank())
	assert.Equal(t, 1, m.LoadPatterns().Count())
}
