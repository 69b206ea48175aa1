package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/csiapi/internal/csi"
	"github.com/alexiusacademia/csiapi/internal/section"
)

// ExportFunction plots a function's points to an image file.
func ExportFunction(name string, t csi.FunctionType, pts []csi.FunctionPoint, filename string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s (%s)", name, t)
	switch t {
	case csi.FunctionResponseSpectrum:
		p.X.Label.Text = "Period"
		p.Y.Label.Text = "Acceleration"
	case csi.FunctionTimeHistory:
		p.X.Label.Text = "Time"
		p.Y.Label.Text = "Value"
	default:
		p.X.Label.Text = "X"
		p.Y.Label.Text = "Value"
	}

	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i] = plotter.XY{X: pt.X, Y: pt.Value}
	}
	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	points.GlyphStyle.Shape = draw.CircleGlyph{}
	points.GlyphStyle.Radius = vg.Points(2)
	p.Add(plotter.NewGrid(), line, points)

	return save(p, 8*vg.Inch, 5*vg.Inch, filename)
}

// ExportSection draws a section outline with its centroidal axes and the
// half of the section above the horizontal plastic neutral axis shaded.
func ExportSection(sec *section.Section, props *section.Properties, filename string) error {
	p := plot.New()
	p.Title.Text = sec.Name
	if p.Title.Text == "" {
		p.Title.Text = "Section"
	}
	p.X.Label.Text = "Local 2"
	p.Y.Label.Text = "Local 3"

	outline := make(plotter.XYs, len(sec.Vertices)+1)
	for i, v := range sec.Vertices {
		outline[i] = plotter.XY{X: v.X, Y: v.Y}
	}
	outline[len(sec.Vertices)] = outline[0]

	shade := clipAbove(sec.Vertices, plasticAxis(sec.Vertices, props))
	if len(shade) >= 3 {
		poly, err := plotter.NewPolygon(shade)
		if err != nil {
			return err
		}
		poly.Color = color.RGBA{R: 100, G: 149, B: 237, A: 150}
		poly.LineStyle.Width = 0
		p.Add(poly)
	}

	line, err := plotter.NewLine(outline)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.Black
	p.Add(line)

	const pad = 20
	cx, cy := props.CentroidX, props.CentroidY
	axes := []plotter.XYs{
		{{X: props.MinX - pad, Y: cy}, {X: props.MaxX + pad, Y: cy}},
		{{X: cx, Y: props.MinY - pad}, {X: cx, Y: props.MaxY + pad}},
	}
	for _, xy := range axes {
		axis, err := plotter.NewLine(xy)
		if err != nil {
			return err
		}
		axis.LineStyle.Width = vg.Points(1)
		axis.LineStyle.Color = color.RGBA{R: 255, A: 255}
		axis.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(axis)
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: props.MaxX + pad, Y: cy}},
		Labels: []string{fmt.Sprintf("I33=%.4g", props.Ixx)},
	})
	if err != nil {
		return err
	}
	p.Add(labels)

	return save(p, 6*vg.Inch, 6*vg.Inch, filename)
}

// plasticAxis finds the height that splits the area in two halves.
func plasticAxis(vs []section.Point, props *section.Properties) float64 {
	lo, hi := props.MinY, props.MaxY
	for i := 0; i < 60; i++ {
		mid := (lo + hi) / 2
		if area(clipAbove(vs, mid)) > props.Area/2 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

// clipAbove clips the section polygon at height y and returns the part
// above it.
func clipAbove(vertices []section.Point, y float64) plotter.XYs {
	var result plotter.XYs

	n := len(vertices)
	for i := 0; i < n; i++ {
		curr := vertices[i]
		next := vertices[(i+1)%n]

		currAbove := curr.Y >= y
		nextAbove := next.Y >= y

		if currAbove {
			result = append(result, plotter.XY{X: curr.X, Y: curr.Y})
		}

		if currAbove != nextAbove {
			t := (y - curr.Y) / (next.Y - curr.Y)
			result = append(result, plotter.XY{X: curr.X + t*(next.X-curr.X), Y: y})
		}
	}

	return result
}

func area(xys plotter.XYs) float64 {
	var s float64
	for i := range xys {
		j := (i + 1) % len(xys)
		s += xys[i].X*xys[j].Y - xys[j].X*xys[i].Y
	}
	if s < 0 {
		s = -s
	}
	return s / 2
}

// save writes p in the format named by the file extension; names without
// a known extension get ".png".
func save(p *plot.Plot, w, h vg.Length, filename string) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf", ".jpg", ".jpeg", ".eps", ".tif", ".tiff":
	default:
		filename += ".png"
	}
	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return p.Save(w, h, filename)
}
