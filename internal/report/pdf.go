package report

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/csiapi/internal/csi"
)

// Summary describes the model a PDF report is written for.
type Summary struct {
	Title   string
	Model   string
	Version string
	Units   string
	Cases   []csi.CaseRunStatus
	Date    time.Time
}

// PeakDisplacement is the largest translation of any joint in one case.
type PeakDisplacement struct {
	Case  string
	Joint string
	Value float64
}

// PeakDisplacements returns the peak joint translation per output case,
// in the order cases first appear.
func PeakDisplacements(rows []csi.JointDisplRow) []PeakDisplacement {
	var out []PeakDisplacement
	index := map[string]int{}
	for _, r := range rows {
		d := r.Displ
		v := math.Sqrt(d.U1*d.U1 + d.U2*d.U2 + d.U3*d.U3)
		i, ok := index[r.Step.LoadCase]
		if !ok {
			index[r.Step.LoadCase] = len(out)
			out = append(out, PeakDisplacement{Case: r.Step.LoadCase, Joint: r.Obj, Value: v})
			continue
		}
		if v > out[i].Value {
			out[i].Joint, out[i].Value = r.Obj, v
		}
	}
	return out
}

// WritePDF writes a results summary: analysis status, modal periods, base
// reactions and peak displacements.
func WritePDF(w io.Writer, s Summary, t *Tables) error {
	if s.Date.IsZero() {
		s.Date = time.Now()
	}
	if s.Title == "" {
		s.Title = "Analysis Results"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(s.Title, true)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, s.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range []string{
		fmt.Sprintf("Model: %s", s.Model),
		fmt.Sprintf("Host version: %s", s.Version),
		fmt.Sprintf("Units: %s", s.Units),
		fmt.Sprintf("Date: %s", s.Date.Format("2006-01-02")),
	} {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	if len(s.Cases) > 0 {
		rows := make([][]string, len(s.Cases))
		for i, c := range s.Cases {
			rows[i] = []string{c.Case, c.Status.String()}
		}
		table(pdf, "Analysis status", []string{"Case", "Status"}, []float64{60, 60}, rows)
	}

	if len(t.ModalPeriod) > 0 {
		rows := make([][]string, len(t.ModalPeriod))
		for i, r := range t.ModalPeriod {
			p := r.Period
			rows[i] = []string{r.Step.LoadCase, fmt.Sprint(p.Mode), num(p.Period), num(p.Frequency), num(p.CircFreq)}
		}
		table(pdf, "Modal periods", []string{"Case", "Mode", "Period", "Frequency", "CircFreq"},
			[]float64{40, 20, 40, 40, 40}, rows)
	}

	if len(t.BaseReact) > 0 {
		rows := make([][]string, len(t.BaseReact))
		for i, r := range t.BaseReact {
			b := r.Reaction
			rows[i] = []string{r.Step.LoadCase, num(b.Fx), num(b.Fy), num(b.Fz), num(b.Mx), num(b.My), num(b.Mz)}
		}
		table(pdf, "Base reactions", []string{"Case", "FX", "FY", "FZ", "MX", "MY", "MZ"},
			[]float64{34, 26, 26, 26, 26, 26, 26}, rows)
	}

	if peaks := PeakDisplacements(t.JointDispl); len(peaks) > 0 {
		rows := make([][]string, len(peaks))
		for i, p := range peaks {
			rows[i] = []string{p.Case, p.Joint, num(p.Value)}
		}
		table(pdf, "Peak joint translations", []string{"Case", "Joint", "Translation"}, []float64{60, 40, 50}, rows)
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

func table(pdf *gofpdf.Fpdf, title string, header []string, widths []float64, rows [][]string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(220, 220, 220)
	for i, h := range header {
		pdf.CellFormat(widths[i], 6, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, r := range rows {
		for i, c := range r {
			align := "R"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 6, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}

func num(v float64) string {
	return fmt.Sprintf("%.4g", v)
}
