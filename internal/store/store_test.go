package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/csiapi/internal/csi"
	"github.com/alexiusacademia/csiapi/internal/seed/memseed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "models.db")
	s, err := Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestSaveAndLoad(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	host := memseed.New("21.0.0")
	m, err := csi.Open(host)
	require.NoError(t, err)
	require.NoError(t, m.CoordinateSystems().Set("C1", csi.CoordSys{X: 5, RZ: 30}))

	require.NoError(t, s.Save(ctx, "tower", host.State()))
	st, err := s.Load(ctx, "tower")
	require.NoError(t, err)

	back, err := csi.Open(memseed.FromState(st))
	require.NoError(t, err)
	assert.Equal(t, csi.V21, back.Version())
	cs, err := back.CoordinateSystems().Get("C1")
	require.NoError(t, err)
	assert.Equal(t, csi.CoordSys{X: 5, RZ: 30}, cs)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "tower", list[0].Name)
	assert.Equal(t, "21.0.0", list[0].Version)
}

func TestMissingModel(t *testing.T) {
	s, _ := newStore(t)
	_, err := s.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(context.Background(), "nope"), ErrNotFound)
}

func TestAttachBacksFileCalls(t *testing.T) {
	s, _ := newStore(t)

	host := memseed.New("")
	s.Attach(host)
	m, err := csi.Open(host)
	require.NoError(t, err)
	require.NoError(t, m.LoadPatterns().Add("LIVE", csi.PatternLive, 0, true))
	require.NoError(t, m.File().Save("bridge"))

	other := memseed.New("")
	s.Attach(other)
	m2, err := csi.Open(other)
	require.NoError(t, err)
	require.NoError(t, m2.File().Open("bridge"))
	assert.Equal(t, 2, m2.LoadPatterns().Count())
	assert.Equal(t, "bridge", m2.File().Filename())

	assert.Error(t, m2.File().Open("missing"))
}

func TestReopenKeepsModels(t *testing.T) {
	s, path := newStore(t)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, "a", memseed.New("").State()))
	require.NoError(t, s.Save(ctx, "a", memseed.New("22.0.0").State()))
	require.NoError(t, s.Close())

	again, err := Open(ctx, path)
	require.NoError(t, err)
	defer again.Close()
	st, err := again.Load(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "22.0.0", st.Version)

	require.NoError(t, again.Delete(ctx, "a"))
	list, err := again.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
