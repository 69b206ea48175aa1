package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/csiapi/internal/csi"
	"github.com/alexiusacademia/csiapi/internal/section"
)

var spectrum = []csi.FunctionPoint{{X: 2, Value: 0.2}, {X: 0, Value: 0.4}, {X: 1, Value: 0.4}}

func TestResample(t *testing.T) {
	got := Resample(spectrum, 5)
	require.Len(t, got, 5)
	assert.InDeltaSlice(t, []float64{0.4, 0.4, 0.4, 0.3, 0.2}, got, 1e-12)

	assert.Nil(t, Resample(nil, 5))
	assert.Equal(t, []float64{1, 1}, Resample([]csi.FunctionPoint{{X: 3, Value: 1}}, 2))
}

func TestASCIIFunction(t *testing.T) {
	out := ASCIIFunction("RS", spectrum, 40, 8)
	assert.Contains(t, out, "RS")
	assert.GreaterOrEqual(t, strings.Count(out, "\n"), 8)
	assert.Empty(t, ASCIIFunction("none", nil, 0, 0))
}

func TestExportFunction(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plots", "rs.svg")
	require.NoError(t, ExportFunction("RS", csi.FunctionResponseSpectrum, spectrum, path))
	assert.FileExists(t, path)

	noExt := filepath.Join(dir, "rs")
	require.NoError(t, ExportFunction("RS", csi.FunctionResponseSpectrum, spectrum, noExt))
	assert.FileExists(t, noExt+".png")
}

func TestExportSection(t *testing.T) {
	sec := &section.Section{Name: "T", Vertices: []section.Point{
		{X: 150, Y: 0}, {X: 450, Y: 0}, {X: 450, Y: 400}, {X: 600, Y: 400},
		{X: 600, Y: 500}, {X: 0, Y: 500}, {X: 0, Y: 400}, {X: 150, Y: 400},
	}}
	props := sec.CalculateProperties()

	y := plasticAxis(sec.Vertices, props)
	assert.InDelta(t, props.Area/2, area(clipAbove(sec.Vertices, y)), 1e-3)

	path := filepath.Join(t.TempDir(), "tee.png")
	require.NoError(t, ExportSection(sec, props, path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
