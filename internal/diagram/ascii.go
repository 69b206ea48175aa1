// Package diagram draws functions and sections, as terminal graphs or as
// image files.
package diagram

import (
	"sort"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/csiapi/internal/csi"
)

// Resample returns n values of the piecewise linear function through pts
// at equal steps from its first to its last abscissa. Points are sorted by
// X first.
func Resample(pts []csi.FunctionPoint, n int) []float64 {
	if len(pts) == 0 || n <= 0 {
		return nil
	}
	sorted := append([]csi.FunctionPoint(nil), pts...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	out := make([]float64, n)
	x0, x1 := sorted[0].X, sorted[len(sorted)-1].X
	if n == 1 || x1 == x0 {
		for i := range out {
			out[i] = sorted[0].Value
		}
		return out
	}

	k := 0
	for i := range out {
		x := x0 + (x1-x0)*float64(i)/float64(n-1)
		for k < len(sorted)-2 && sorted[k+1].X < x {
			k++
		}
		a, b := sorted[k], sorted[k+1]
		if b.X == a.X {
			out[i] = b.Value
			continue
		}
		t := (x - a.X) / (b.X - a.X)
		out[i] = a.Value + t*(b.Value-a.Value)
	}
	return out
}

// ASCIIFunction draws a function as a terminal line graph.
func ASCIIFunction(caption string, pts []csi.FunctionPoint, width, height int) string {
	if width <= 0 {
		width = 60
	}
	if height <= 0 {
		height = 12
	}
	data := Resample(pts, width)
	if len(data) == 0 {
		return ""
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Caption(caption),
		asciigraph.Precision(3),
	)
}
