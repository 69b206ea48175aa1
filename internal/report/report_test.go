package report

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/csiapi/internal/csi"
	"github.com/alexiusacademia/csiapi/internal/seed/memseed"
)

var (
	dead  = memseed.Step{LoadCase: "DEAD"}
	modal = func(n float64) memseed.Step { return memseed.Step{LoadCase: "MODAL", StepType: "Mode", StepNum: n} }
)

func fixture() memseed.ResultTables {
	return memseed.ResultTables{
		JointDispl: []memseed.JointRow{
			{Obj: "1", Elm: "1", Step: dead, Values: [6]float64{0, 0, -0.5, 0, 0.01, 0}},
			{Obj: "2", Elm: "2", Step: dead, Values: [6]float64{0.1, 0, -0.2, 0, 0, 0}},
		},
		JointReact: []memseed.JointRow{
			{Obj: "1", Elm: "1", Step: dead, Values: [6]float64{0, 0, 55.5, 0, 0, 0}},
		},
		JointMass: []memseed.MassRow{{PointElm: "2", Values: [6]float64{0.2, 0.2, 0.2, 0, 0, 0}}},
		FrameForce: []memseed.FrameForceRow{
			{Obj: "F1", ObjSta: 0, Elm: "F1", ElmSta: 0, Step: dead, Values: [6]float64{-10, 2.5, 0, 0, 0, 12.25}},
			{Obj: "F1", ObjSta: 3, Elm: "F1", ElmSta: 3, Step: dead, Values: [6]float64{-10, -2.5, 0, 0, 0, -1.125}},
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
		SectionCutRes: []memseed.SectionCutRow{{Cut: "CUT1", Step: dead, Values: [6]float64{1, 2, 3, 4, 5, 6}}},
	}
}

func loaded(t *testing.T) *csi.Model {
	t.Helper()
	host := memseed.New("")
	host.LoadResults(fixture())
	m, err := csi.Open(host)
	require.NoError(t, err)
	require.NoError(t, SelectAll(m))
	return m
}

func TestWorkbookRoundTrip(t *testing.T) {
	tables, err := Collect(loaded(t))
	require.NoError(t, err)
	require.Len(t, tables.JointDispl, 2)
	require.Len(t, tables.ModalPeriod, 2)

	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, tables))

	got, err := ReadWorkbook(&buf)
	require.NoError(t, err)
	assert.Equal(t, fixture(), got)
}

func TestReadHostExport(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := sheetJointDispl
	require.NoError(t, f.SetSheetName("Sheet1", sheet))
	for i, r := range [][]any{
		{"TABLE:  Joint Displacements"},
		{"Joint", "OutputCase", "CaseType", "U1", "U2", "U3", "R1", "R2", "R3"},
		{"Text", "Text", "Text", "mm", "mm", "mm", "Radians", "Radians", "Radians"},
		{"7", "DEAD", "LinStatic", 0.5, 0, -1.25, 0, 0, 0},
		{},
		{"8", "DEAD", "LinStatic", 0, 0, -2, 0, 0.003, 0},
	} {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}
	path := filepath.Join(t.TempDir(), "host.xlsx")
	require.NoError(t, f.SaveAs(path))

	got, err := ReadWorkbookFile(path)
	require.NoError(t, err)
	assert.Equal(t, []memseed.JointRow{
		{Obj: "7", Elm: "7", Step: dead, Values: [6]float64{0.5, 0, -1.25, 0, 0, 0}},
		{Obj: "8", Elm: "8", Step: dead, Values: [6]float64{0, 0, -2, 0, 0.003, 0}},
	}, got.JointDispl)
	assert.Empty(t, got.FrameForce)
}

func TestReadRejectsBadNumbers(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", sheetBaseReact))
	require.NoError(t, f.SetSheetRow(sheetBaseReact, "A1", &[]any{"OutputCase", "GlobalFZ"}))
	require.NoError(t, f.SetSheetRow(sheetBaseReact, "A2", &[]any{"DEAD", "heavy"}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	_, err := ReadWorkbook(&buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Base Reactions row 2")
}

func TestWriteNeedsResults(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteWorkbook(&buf, &Tables{}))
}

func TestCollectNeedsAnalysis(t *testing.T) {
	m, err := csi.Open(memseed.New(""))
	require.NoError(t, err)
	_, err = Collect(m)
	assert.Error(t, err)
}

func TestPeakDisplacements(t *testing.T) {
	rows := []csi.JointDisplRow{
		{Obj: "1", Step: csi.Step{LoadCase: "DEAD"}, Displ: csi.Deformations{U3: -0.5}},
		{Obj: "2", Step: csi.Step{LoadCase: "DEAD"}, Displ: csi.Deformations{U1: 3, U3: -4}},
		{Obj: "1", Step: csi.Step{LoadCase: "LIVE"}, Displ: csi.Deformations{U2: 1}},
	}
	assert.Equal(t, []PeakDisplacement{
		{Case: "DEAD", Joint: "2", Value: 5},
		{Case: "LIVE", Joint: "1", Value: 1},
	}, PeakDisplacements(rows))
}

func TestWritePDF(t *testing.T) {
	m := loaded(t)
	tables, err := Collect(m)
	require.NoError(t, err)
	status, err := m.Analyze().CaseStatus()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, Summary{Model: "frame", Version: m.VersionString(), Units: "kip_in_F", Cases: status}, tables))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}
