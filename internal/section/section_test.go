package section

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rectangle(w, h float64) *Section {
	return &Section{Name: "R", Vertices: []Point{{0, 0}, {w, 0}, {w, h}, {0, h}}}
}

func TestRectangleProperties(t *testing.T) {
	p := rectangle(300, 500).CalculateProperties()

	assert.Equal(t, 300.0, p.Width)
	assert.Equal(t, 500.0, p.Height)
	assert.InDelta(t, 150000, p.Area, 1e-6)
	assert.InDelta(t, 150, p.CentroidX, 1e-9)
	assert.InDelta(t, 250, p.CentroidY, 1e-9)
	assert.InEpsilon(t, 3.125e9, p.Ixx, 1e-9)
	assert.InEpsilon(t, 1.125e9, p.Iyy, 1e-9)
	assert.InDelta(t, 0, p.Ixy, 1e-3)
	assert.InEpsilon(t, 1.25e7, p.Sx, 1e-9)
	assert.InEpsilon(t, 7.5e6, p.Sy, 1e-9)
	assert.InEpsilon(t, 1.875e7, p.Zx, 1e-6)
	assert.InEpsilon(t, 1.125e7, p.Zy, 1e-6)
	assert.Greater(t, p.J, 0.0)
}

func TestClockwiseOutline(t *testing.T) {
	ccw := rectangle(200, 400).CalculateProperties()
	cw := (&Section{Vertices: []Point{{0, 0}, {0, 400}, {200, 400}, {200, 0}}}).CalculateProperties()

	assert.InEpsilon(t, ccw.Area, cw.Area, 1e-12)
	assert.InEpsilon(t, ccw.Ixx, cw.Ixx, 1e-12)
	assert.InEpsilon(t, ccw.Zx, cw.Zx, 1e-6)
}

func TestTeeSection(t *testing.T) {
	tee := &Section{Vertices: []Point{
		{150, 0}, {450, 0}, {450, 400}, {600, 400},
		{600, 500}, {0, 500}, {0, 400}, {150, 400},
	}}
	p := tee.CalculateProperties()

	assert.InDelta(t, 180000, p.Area, 1e-6)
	assert.InDelta(t, 300, p.CentroidX, 1e-9)
	assert.InDelta(t, 850.0/3, p.CentroidY, 1e-9)
	assert.Greater(t, p.Zx, p.Sx, "shape factor above 1")
	assert.InDelta(t, 0, p.Ixy, 1e-2, "symmetric about the vertical axis")
}

func TestGeneral(t *testing.T) {
	p := rectangle(300, 500).CalculateProperties()
	g := p.General()

	assert.Equal(t, 500.0, g.T3)
	assert.Equal(t, 300.0, g.T2)
	assert.InDelta(t, 125000, g.As2, 1e-6)
	assert.Equal(t, p.Ixx, g.I33)
	assert.Equal(t, p.Iyy, g.I22)
	assert.Equal(t, p.Zx, g.Z33)
	assert.Equal(t, p.Rx, g.R33)
}

func TestValidate(t *testing.T) {
	assert.Error(t, (&Section{Vertices: []Point{{0, 0}, {1, 1}}}).Validate())
	assert.Error(t, (&Section{Vertices: []Point{{0, 0}, {1, 1}, {2, 2}}}).Validate())
	assert.NoError(t, rectangle(1, 1).Validate())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tee.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "name": "T1",
  "vertices": [{"x": 0, "y": 0}, {"x": 300, "y": 0}, {"x": 300, "y": 500}, {"x": 0, "y": 500}]
}`), 0o644))

	s, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "T1", s.Name)
	assert.Len(t, s.Vertices, 4)

	require.NoError(t, os.WriteFile(path, []byte(`{"vertices": []}`), 0o644))
	_, err = LoadFromFile(path)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}
