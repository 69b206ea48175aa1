package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/csiapi/internal/seed/memseed"
	"github.com/alexiusacademia/csiapi/internal/store"
)

const frameDef = `
units: N_mm_C
materials:
  - name: C28
    type: Concrete
    fc: 28
patterns:
  - name: DEAD
    type: Dead
    selfWeight: 1
  - name: LIVE
    type: Live
    addCase: true
  - name: EQX
    type: Quake
`

const teeSection = `{
  "name": "TEE",
  "vertices": [
    {"x": 0, "y": 0}, {"x": 300, "y": 0}, {"x": 300, "y": 400},
    {"x": 600, "y": 400}, {"x": 600, "y": 500}, {"x": 0, "y": 500}
  ]
}`

// workspace writes a config pointing at a fresh store and returns the
// config path and the store path.
func workspace(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	db := filepath.Join(dir, "models.db")
	cfg := filepath.Join(dir, "csiapi.yaml")
	content := "store: " + db + "\nmodel: portal\nunits: N_mm_C\nlogging:\n  level: error\n"
	require.NoError(t, os.WriteFile(cfg, []byte(content), 0o644))
	return cfg, db
}

func write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func stored(t *testing.T, db, name string) *memseed.State {
	t.Helper()
	ctx := context.Background()
	st, err := store.Open(ctx, db)
	require.NoError(t, err)
	defer st.Close()
	state, err := st.Load(ctx, name)
	require.NoError(t, err)
	return state
}

func TestApplyAndGenerateCombos(t *testing.T) {
	cfg, db := workspace(t)
	def := write(t, "frame.yaml", frameDef)

	require.NoError(t, run(t, "apply", "-f", def, "--config", cfg))
	state := stored(t, db, "portal")
	assert.True(t, state.Patterns.Has("LIVE"))
	assert.True(t, state.Materials.Has("C28"))

	require.NoError(t, run(t, "combos", "nscp", "--config", cfg))
	state = stored(t, db, "portal")
	assert.True(t, state.Combos.Has("NSCP1"))
	assert.True(t, state.Combos.Has("NSCP5"))
	assert.True(t, state.Cases.Has("EQX"))
}

func TestRenameAndDelete(t *testing.T) {
	cfg, db := workspace(t)
	def := write(t, "frame.yaml", frameDef)
	require.NoError(t, run(t, "apply", "-f", def, "--config", cfg))

	require.NoError(t, run(t, "rename", "patterns", "EQX", "EX", "--config", cfg))
	state := stored(t, db, "portal")
	assert.True(t, state.Patterns.Has("EX"))
	assert.False(t, state.Patterns.Has("EQX"))

	assert.Error(t, run(t, "delete", "coordsys", "GLOBAL", "--config", cfg))
	assert.Error(t, run(t, "list", "bridges", "--config", cfg))
	assert.NoError(t, run(t, "list", "patterns", "--detail", "--config", cfg))
}

func TestSectionPropsDefinesGeneralSection(t *testing.T) {
	cfg, db := workspace(t)
	def := write(t, "frame.yaml", frameDef)
	sec := write(t, "tee.json", teeSection)
	require.NoError(t, run(t, "apply", "-f", def, "--config", cfg))

	require.NoError(t, run(t, "section", "props", "-f", sec, "--material", "C28", "--name", "TB1", "--config", cfg))
	state := stored(t, db, "portal")
	prop, ok := state.FrameProps.Get("TB1")
	require.True(t, ok)
	assert.Equal(t, "C28", prop.Material)
}

func TestResultsExportNeedsAnalysis(t *testing.T) {
	cfg, _ := workspace(t)
	def := write(t, "frame.yaml", frameDef)
	require.NoError(t, run(t, "apply", "-f", def, "--config", cfg))

	out := filepath.Join(t.TempDir(), "results.xlsx")
	assert.Error(t, run(t, "results", "export", "-o", out, "--config", cfg))
	assert.NoFileExists(t, out)

	assert.Error(t, run(t, "results", "export", "-o", "results.csv", "--config", cfg))
}
