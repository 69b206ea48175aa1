package section

import (
	"math"

	"github.com/alexiusacademia/csiapi/internal/csi"
)

// CalculateProperties computes geometric properties of the section
func (s *Section) CalculateProperties() *Properties {
	props := &Properties{}

	if len(s.Vertices) < 3 {
		return props
	}

	// Find bounding box
	props.MinX, props.MaxX = s.Vertices[0].X, s.Vertices[0].X
	props.MinY, props.MaxY = s.Vertices[0].Y, s.Vertices[0].Y

	for _, v := range s.Vertices {
		props.MinX = math.Min(props.MinX, v.X)
		props.MaxX = math.Max(props.MaxX, v.X)
		props.MinY = math.Min(props.MinY, v.Y)
		props.MaxY = math.Max(props.MaxY, v.Y)
	}

	props.Width = props.MaxX - props.MinX
	props.Height = props.MaxY - props.MinY

	// Calculate area and centroid using the shoelace formula
	props.Area, props.CentroidX, props.CentroidY = areaAndCentroid(s.Vertices)
	if props.Area == 0 {
		return props
	}

	ixx, iyy, ixy := secondMoments(s.Vertices)
	cx, cy, a := props.CentroidX, props.CentroidY, props.Area
	props.Ixx = ixx - a*cy*cy
	props.Iyy = iyy - a*cx*cx
	props.Ixy = ixy - a*cx*cy

	props.Sx = props.Ixx / math.Max(props.MaxY-cy, cy-props.MinY)
	props.Sy = props.Iyy / math.Max(props.MaxX-cx, cx-props.MinX)
	props.Rx = math.Sqrt(props.Ixx / a)
	props.Ry = math.Sqrt(props.Iyy / a)

	props.Zx = plasticModulus(s.Vertices, props.MinY, props.MaxY, func(p Point) float64 { return p.Y })
	props.Zy = plasticModulus(s.Vertices, props.MinX, props.MaxX, func(p Point) float64 { return p.X })

	if ip := props.Ixx + props.Iyy; ip > 0 {
		props.J = a * a * a * a / (4 * math.Pi * math.Pi * ip)
	}

	return props
}

// General converts the properties to a general frame section. Local 3 is
// vertical, so T3 is the height and I33 bends about the horizontal axis.
// Shear areas use the 5/6 factor of a solid rectangle.
func (p *Properties) General() csi.GeneralSection {
	return csi.GeneralSection{
		T3:      p.Height,
		T2:      p.Width,
		Area:    p.Area,
		As2:     p.Area * 5 / 6,
		As3:     p.Area * 5 / 6,
		Torsion: p.J,
		I22:     p.Iyy,
		I33:     p.Ixx,
		S22:     p.Sy,
		S33:     p.Sx,
		Z22:     p.Zy,
		Z33:     p.Zx,
		R22:     p.Ry,
		R33:     p.Rx,
	}
}

// areaAndCentroid uses the shoelace formula
func areaAndCentroid(vs []Point) (area, cx, cy float64) {
	n := len(vs)
	if n < 3 {
		return 0, 0, 0
	}

	var signedArea float64
	var sumX, sumY float64

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := vs[i].X*vs[j].Y - vs[j].X*vs[i].Y
		signedArea += cross
		sumX += (vs[i].X + vs[j].X) * cross
		sumY += (vs[i].Y + vs[j].Y) * cross
	}

	signedArea /= 2
	area = math.Abs(signedArea)

	if area > 0 {
		cx = sumX / (6 * signedArea)
		cy = sumY / (6 * signedArea)
	}

	return area, cx, cy
}

// secondMoments returns Ixx, Iyy and Ixy about the origin.
func secondMoments(vs []Point) (ixx, iyy, ixy float64) {
	n := len(vs)
	var signed float64
	for i := 0; i < n; i++ {
		a, b := vs[i], vs[(i+1)%n]
		cross := a.X*b.Y - b.X*a.Y
		signed += cross
		ixx += cross * (a.Y*a.Y + a.Y*b.Y + b.Y*b.Y)
		iyy += cross * (a.X*a.X + a.X*b.X + b.X*b.X)
		ixy += cross * (a.X*b.Y + 2*a.X*a.Y + 2*b.X*b.Y + b.X*a.Y)
	}
	if signed < 0 {
		ixx, iyy, ixy = -ixx, -iyy, -ixy
	}
	return ixx / 12, iyy / 12, ixy / 24
}

// clip keeps the part of the polygon where coord(p) >= at (above is true)
// or coord(p) <= at (above is false).
func clip(vs []Point, at float64, coord func(Point) float64, above bool) []Point {
	inside := func(p Point) bool {
		if above {
			return coord(p) >= at
		}
		return coord(p) <= at
	}
	var out []Point
	n := len(vs)
	for i := 0; i < n; i++ {
		curr, next := vs[i], vs[(i+1)%n]
		currIn, nextIn := inside(curr), inside(next)
		if currIn {
			out = append(out, curr)
		}
		if currIn != nextIn {
			t := (at - coord(curr)) / (coord(next) - coord(curr))
			out = append(out, Point{
				X: curr.X + t*(next.X-curr.X),
				Y: curr.Y + t*(next.Y-curr.Y),
			})
		}
	}
	return out
}

// plasticModulus finds the equal-area axis between lo and hi along coord
// and sums the first moments of both halves about it.
func plasticModulus(vs []Point, lo, hi float64, coord func(Point) float64) float64 {
	total, _, _ := areaAndCentroid(vs)
	axis := lo
	a, b := lo, hi
	for i := 0; i < 100 && b-a > 1e-12*(hi-lo); i++ {
		axis = (a + b) / 2
		upper, _, _ := areaAndCentroid(clip(vs, axis, coord, true))
		if upper > total/2 {
			a = axis
		} else {
			b = axis
		}
	}
	axis = (a + b) / 2

	var z float64
	for _, above := range []bool{true, false} {
		part := clip(vs, axis, coord, above)
		area, cx, cy := areaAndCentroid(part)
		z += area * math.Abs(coord(Point{X: cx, Y: cy})-axis)
	}
	return z
}
