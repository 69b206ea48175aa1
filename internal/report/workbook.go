package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/csiapi/internal/csi"
	"github.com/alexiusacademia/csiapi/internal/seed/memseed"
)

// Sheet names and columns follow the host's table export.
const (
	sheetJointDispl  = "Joint Displacements"
	sheetJointReact  = "Joint Reactions"
	sheetJointMass   = "Assembled Joint Masses"
	sheetFrameForce  = "Element Forces - Frames"
	sheetBaseReact   = "Base Reactions"
	sheetModalPeriod = "Modal Periods And Frequencies"
	sheetShellStress = "Element Stresses - Area Shells"
	sheetSectionCut  = "Section Cut Forces - Analysis"
)

var (
	stepCols   = []string{"OutputCase", "StepType", "StepNum"}
	displCols  = []string{"U1", "U2", "U3", "R1", "R2", "R3"}
	forceCols  = []string{"F1", "F2", "F3", "M1", "M2", "M3"}
	frameCols  = []string{"P", "V2", "V3", "T", "M2", "M3"}
	baseCols   = []string{"GlobalFX", "GlobalFY", "GlobalFZ", "GlobalMX", "GlobalMY", "GlobalMZ"}
	baseLoc    = []string{"GlobalX", "GlobalY", "GlobalZ"}
	modalCols  = []string{"Period", "Frequency", "CircFreq", "Eigenvalue"}
	topCols    = []string{"S11Top", "S22Top", "S12Top", "SMaxTop", "SMinTop", "SAngleTop", "SVMTop"}
	bottomCols = []string{"S11Bot", "S22Bot", "S12Bot", "SMaxBot", "SMinBot", "SAngleBot", "SVMBot"}
	shearCols  = []string{"S13Avg", "S23Avg", "SMaxAvg", "SAngleAvg"}
)

func cols(parts ...[]string) []string {
	var out []string
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// ReadWorkbookFile reads result tables from an Excel file.
func ReadWorkbookFile(path string) (memseed.ResultTables, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return memseed.ResultTables{}, err
	}
	defer f.Close()
	return readWorkbook(f)
}

// ReadWorkbook reads result tables from an Excel workbook. Sheets that are
// not present are left empty.
func ReadWorkbook(r io.Reader) (memseed.ResultTables, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return memseed.ResultTables{}, err
	}
	defer f.Close()
	return readWorkbook(f)
}

func readWorkbook(f *excelize.File) (memseed.ResultTables, error) {
	var t memseed.ResultTables

	err := eachRow(f, sheetJointDispl, "Joint", func(r *row) {
		t.JointDispl = append(t.JointDispl, memseed.JointRow{
			Obj: r.str("Joint"), Elm: r.elm("Element", "Joint"), Step: r.step(), Values: r.six(displCols),
		})
	})
	if err == nil {
		err = eachRow(f, sheetJointReact, "Joint", func(r *row) {
			t.JointReact = append(t.JointReact, memseed.JointRow{
				Obj: r.str("Joint"), Elm: r.elm("Element", "Joint"), Step: r.step(), Values: r.six(forceCols),
			})
		})
	}
	if err == nil {
		err = eachRow(f, sheetJointMass, "Joint", func(r *row) {
			t.JointMass = append(t.JointMass, memseed.MassRow{PointElm: r.str("Joint"), Values: r.six(displCols)})
		})
	}
	if err == nil {
		err = eachRow(f, sheetFrameForce, "Frame", func(r *row) {
			t.FrameForce = append(t.FrameForce, memseed.FrameForceRow{
				Obj: r.str("Frame"), ObjSta: r.num("Station"),
				Elm: r.elm("FrameElem", "Frame"), ElmSta: r.num("ElemStation"),
				Step: r.step(), Values: r.six(frameCols),
			})
		})
	}
	if err == nil {
		err = eachRow(f, sheetBaseReact, "OutputCase", func(r *row) {
			t.BaseReact = append(t.BaseReact, memseed.BaseReactRow{Step: r.step(), Values: r.six(baseCols)})
			if len(t.BaseReact) == 1 {
				for i, c := range baseLoc {
					t.BaseReactLoc[i] = r.num(c)
				}
			}
		})
	}
	if err == nil {
		err = eachRow(f, sheetModalPeriod, "OutputCase", func(r *row) {
			t.ModalPeriod = append(t.ModalPeriod, memseed.ModalPeriodRow{
				Step: r.step(), Period: r.num("Period"), Frequency: r.num("Frequency"),
				CircFreq: r.num("CircFreq"), EigenValue: r.num("Eigenvalue"),
			})
		})
	}
	if err == nil {
		err = eachRow(f, sheetShellStress, "Area", func(r *row) {
			s := memseed.ShellStressRow{
				Obj: r.str("Area"), Elm: r.elm("AreaElem", "Area"), PointElm: r.str("Joint"), Step: r.step(),
			}
			for i, c := range topCols {
				s.Top[i] = r.num(c)
			}
			for i, c := range bottomCols {
				s.Bottom[i] = r.num(c)
			}
			for i, c := range shearCols {
				s.Avg[i] = r.num(c)
			}
			t.ShellStress = append(t.ShellStress, s)
		})
	}
	if err == nil {
		err = eachRow(f, sheetSectionCut, "SectionCut", func(r *row) {
			t.SectionCutRes = append(t.SectionCutRes, memseed.SectionCutRow{
				Cut: r.str("SectionCut"), Step: r.step(), Values: r.six(forceCols),
			})
		})
	}
	return t, err
}

// row reads cells by column name. The first parse error is kept.
type row struct {
	cols  map[string]int
	cells []string
	err   error
}

func (r *row) str(col string) string {
	i, ok := r.cols[strings.ToLower(col)]
	if !ok || i >= len(r.cells) {
		return ""
	}
	return strings.TrimSpace(r.cells[i])
}

// elm returns the element column, falling back to the object column.
func (r *row) elm(col, object string) string {
	if s := r.str(col); s != "" {
		return s
	}
	return r.str(object)
}

func (r *row) num(col string) float64 {
	s := r.str(col)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("column %s: %q is not a number", col, s)
	}
	return v
}

func (r *row) six(names []string) [6]float64 {
	var out [6]float64
	for i, c := range names {
		out[i] = r.num(c)
	}
	return out
}

func (r *row) step() memseed.Step {
	return memseed.Step{LoadCase: r.str("OutputCase"), StepType: r.str("StepType"), StepNum: r.num("StepNum")}
}

// eachRow calls fn for every data row of a sheet. The header is the first
// row naming the key column; a units row right under it is skipped, and so
// is any title row above it.
func eachRow(f *excelize.File, sheet, key string, fn func(*row)) error {
	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return err
	}
	if idx < 0 {
		return nil
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return fmt.Errorf("%s: %w", sheet, err)
	}

	header := -1
	for i, cells := range rows {
		for _, c := range cells {
			if strings.EqualFold(strings.TrimSpace(c), key) {
				header = i
				break
			}
		}
		if header >= 0 {
			break
		}
	}
	if header < 0 {
		return fmt.Errorf("%s: no %s column", sheet, key)
	}
	colIdx := map[string]int{}
	for i, c := range rows[header] {
		colIdx[strings.ToLower(strings.TrimSpace(c))] = i
	}

	for i := header + 1; i < len(rows); i++ {
		r := &row{cols: colIdx, cells: rows[i]}
		k := r.str(key)
		if k == "" || (i == header+1 && strings.EqualFold(k, "Text")) {
			continue
		}
		fn(r)
		if r.err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+1, r.err)
		}
	}
	return nil
}

// WriteWorkbook writes t as an Excel workbook in the layout ReadWorkbook
// reads. Empty tables are left out.
func WriteWorkbook(w io.Writer, t *Tables) error {
	f := excelize.NewFile()
	defer f.Close()

	type sheet struct {
		name   string
		header []string
		rows   [][]any
	}
	var sheets []sheet

	stepVals := func(s csi.Step) []any { return []any{s.LoadCase, s.StepType, s.StepNum} }

	if len(t.JointDispl) > 0 {
		s := sheet{name: sheetJointDispl, header: cols([]string{"Joint", "Element"}, stepCols, displCols)}
		for _, r := range t.JointDispl {
			d := r.Displ
			s.rows = append(s.rows, append(append([]any{r.Obj, r.Elm}, stepVals(r.Step)...), d.U1, d.U2, d.U3, d.R1, d.R2, d.R3))
		}
		sheets = append(sheets, s)
	}
	if len(t.JointReact) > 0 {
		s := sheet{name: sheetJointReact, header: cols([]string{"Joint", "Element"}, stepCols, forceCols)}
		for _, r := range t.JointReact {
			rc := r.Reaction
			s.rows = append(s.rows, append(append([]any{r.Obj, r.Elm}, stepVals(r.Step)...), rc.F1, rc.F2, rc.F3, rc.M1, rc.M2, rc.M3))
		}
		sheets = append(sheets, s)
	}
	if len(t.JointMass) > 0 {
		s := sheet{name: sheetJointMass, header: cols([]string{"Joint"}, displCols)}
		for _, r := range t.JointMass {
			m := r.Mass
			s.rows = append(s.rows, []any{r.PointElm, m.U1, m.U2, m.U3, m.R1, m.R2, m.R3})
		}
		sheets = append(sheets, s)
	}
	if len(t.FrameForce) > 0 {
		s := sheet{name: sheetFrameForce, header: cols([]string{"Frame", "Station", "FrameElem", "ElemStation"}, stepCols, frameCols)}
		for _, r := range t.FrameForce {
			fc := r.Forces
			s.rows = append(s.rows, append(append([]any{r.Obj, r.ObjSta, r.Elm, r.ElmSta}, stepVals(r.Step)...), fc.P, fc.V2, fc.V3, fc.T, fc.M2, fc.M3))
		}
		sheets = append(sheets, s)
	}
	if len(t.BaseReact) > 0 {
		s := sheet{name: sheetBaseReact, header: cols(stepCols, baseCols, baseLoc)}
		for _, r := range t.BaseReact {
			b := r.Reaction
			s.rows = append(s.rows, append(stepVals(r.Step), b.Fx, b.Fy, b.Fz, b.Mx, b.My, b.Mz, b.Gx, b.Gy, b.Gz))
		}
		sheets = append(sheets, s)
	}
	if len(t.ModalPeriod) > 0 {
		s := sheet{name: sheetModalPeriod, header: cols(stepCols, modalCols)}
		for _, r := range t.ModalPeriod {
			p := r.Period
			s.rows = append(s.rows, append(stepVals(r.Step), p.Period, p.Frequency, p.CircFreq, p.EigenValue))
		}
		sheets = append(sheets, s)
	}
	if len(t.ShellStress) > 0 {
		s := sheet{name: sheetShellStress, header: cols([]string{"Area", "AreaElem", "Joint"}, stepCols, topCols, bottomCols, shearCols)}
		for _, r := range t.ShellStress {
			v := append([]any{r.Obj, r.Elm, r.PointElm}, stepVals(r.Step)...)
			for _, st := range []csi.Stress{r.Top, r.Bottom} {
				v = append(v, st.S11, st.S22, st.S12, st.SMax, st.SMin, st.SAngle, st.SVM)
			}
			sh := r.Shear
			s.rows = append(s.rows, append(v, sh.S13Avg, sh.S23Avg, sh.SMaxAvg, sh.SAngleAvg))
		}
		sheets = append(sheets, s)
	}
	if len(t.SectionCut) > 0 {
		s := sheet{name: sheetSectionCut, header: cols([]string{"SectionCut"}, stepCols, forceCols)}
		for _, r := range t.SectionCut {
			c := r.Force
			s.rows = append(s.rows, append(append([]any{c.Cut}, stepVals(r.Step)...), c.F1, c.F2, c.F3, c.M1, c.M2, c.M3))
		}
		sheets = append(sheets, s)
	}
	if len(sheets) == 0 {
		return fmt.Errorf("no results to write")
	}

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return err
		}
		header := make([]any, len(s.header))
		for j, h := range s.header {
			header[j] = h
		}
		if err := f.SetSheetRow(s.name, "A1", &header); err != nil {
			return err
		}
		for j, r := range s.rows {
			cell, err := excelize.CoordinatesToCellName(1, j+2)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(s.name, cell, &r); err != nil {
				return err
			}
		}
	}
	return f.Write(w)
}
