package csi

import (
	"bytes"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/alexiusacademia/csiapi/internal/apierr"
	"github.com/alexiusacademia/csiapi/internal/seed/memseed"
	"github.com/alexiusacademia/csiapi/internal/slogutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func open(t *testing.T, version string) (*Model, *memseed.Model) {
	t.Helper()
	host := memseed.New(version)
	m, err := Open(host)
	require.NoError(t, err)
	return m, host
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in   string
		want Version
	}{
		{"17.0.0", V17},
		{"18.2.1", V17},
		{"19", V19},
		{"21.0.1", V21},
		{"v22.1", V22},
		{"23.0.0", Latest},
		{"26.1.0", Latest},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := ParseVersion(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}

	_, err := ParseVersion("16.0.0")
	assert.ErrorIs(t, err, apierr.ErrUnsupported)
	_, err = ParseVersion("latest")
	assert.ErrorIs(t, err, apierr.ErrInvalidArgument)
}

func TestOpenDetectsVersion(t *testing.T) {
	m, _ := open(t, "21.0.1")
	assert.Equal(t, V21, m.Version())
	assert.Equal(t, "21.0.1", m.VersionString())

	host := memseed.New("")
	host.FailOn("GetVersion", 3)
	_, err := Open(host)
	code, ok := apierr.CallCodeOf(err)
	require.True(t, ok)
	assert.Equal(t, 3, code)

	m, err = Open(host, WithVersion(V19))
	require.NoError(t, err)
	assert.Equal(t, V19, m.Version())

	_, err = Open(nil)
	assert.ErrorIs(t, err, apierr.ErrInvalidArgument)
}

func TestSubWrappersAreBuiltOnce(t *testing.T) {
	m, _ := open(t, "")

	var wg sync.WaitGroup
	got := make([]*LoadCases, 8)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = m.LoadCases()
		}(i)
	}
	wg.Wait()
	for _, c := range got {
		assert.Same(t, got[0], c)
	}
	assert.Same(t, m.LoadCases().ModalEigen(), m.LoadCases().ModalEigen())
	assert.Same(t, m.LoadPatterns().AutoWind(), m.LoadPatterns().AutoWind())
	assert.Same(t, m.Results().Setup(), m.Results().Setup())
}

func TestReservedNamesSkipTheHost(t *testing.T) {
	m, host := open(t, "")
	host.FailOn("CoordSys.ChangeName", 9)
	host.FailOn("GroupDef.Clear", 9)

	err := m.CoordinateSystems().ChangeName("Global", "G2")
	assert.ErrorIs(t, err, apierr.ErrReservedName)
	_, isCall := apierr.CallCodeOf(err)
	assert.False(t, isCall)

	assert.ErrorIs(t, m.CoordinateSystems().Delete("GLOBAL"), apierr.ErrReservedName)
	assert.ErrorIs(t, m.Groups().Delete("all"), apierr.ErrReservedName)
	assert.ErrorIs(t, m.Groups().ChangeName("ALL", "EVERYTHING"), apierr.ErrReservedName)
	assert.ErrorIs(t, m.Groups().Clear(" All "), apierr.ErrReservedName)
	assert.Equal(t, 1, m.CoordinateSystems().Count())
}

func TestCallCodeIsCarried(t *testing.T) {
	m, host := open(t, "")
	host.FailOn("LoadPatterns.Add", 5)

	err := m.LoadPatterns().Add("LIVE", PatternLive, 0, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, apierr.ErrCallFailed)
	code, _ := apierr.CallCodeOf(err)
	assert.Equal(t, 5, code)

	var e *apierr.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, "LoadPatterns.Add", e.Op)
	assert.Equal(t, "LIVE", e.Name)
}

func TestFailedCallsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	host := memseed.New("")
	m, err := Open(host, WithLogger(slogutil.NewLogger(&buf, slog.LevelDebug, "text")))
	require.NoError(t, err)

	assert.Error(t, m.CoordinateSystems().Delete("MISSING"))
	assert.Contains(t, buf.String(), "[debug] host call failed | op=CoordSys.Delete name=MISSING code=1")
}

func TestUnitsAndLock(t *testing.T) {
	m, _ := open(t, "")
	u, err := m.Units()
	require.NoError(t, err)
	assert.Equal(t, UnitsKipInF, u)

	require.NoError(t, m.SetUnits(UnitsKNmC))
	u, _ = m.Units()
	assert.Equal(t, UnitsKNmC, u)
	assert.ErrorIs(t, m.SetUnits(Units(99)), apierr.ErrInvalidArgument)

	require.NoError(t, m.SetLocked(true))
	assert.True(t, m.Locked())
	assert.Error(t, m.LoadPatterns().Add("LIVE", PatternLive, 0, false))
	require.NoError(t, m.SetLocked(false))

	require.NoError(t, m.Initialize(UnitsNmmC))
	u, _ = m.Units()
	assert.Equal(t, UnitsNmmC, u)
}

func TestEnumNames(t *testing.T) {
	assert.Equal(t, "Quake", PatternQuake.String())
	assert.Equal(t, "kN_m_C", UnitsKNmC.String())
	assert.Equal(t, "pattern type(99)", PatternType(99).String())

	p, err := ParsePatternType("superdead")
	require.NoError(t, err)
	assert.Equal(t, PatternSuperDead, p)

	_, err = ParseComboType("nope")
	assert.ErrorIs(t, err, apierr.ErrInvalidArgument)
}

func TestNewerEnumValuesNeedNewerHosts(t *testing.T) {
	old, host := open(t, "17.1.0")
	host.FailOn("LoadPatterns.Add", 9)

	err := old.LoadPatterns().Add("PT", PatternPrestress, 0, false)
	assert.ErrorIs(t, err, apierr.ErrUnsupported, "rejected before reaching the host")

	assert.ErrorIs(t, old.Properties().Materials().Add("M", MaterialMasonry), apierr.ErrUnsupported)
	_, err = old.LoadCases().Count(CaseStagedConstruction)
	assert.ErrorIs(t, err, apierr.ErrUnsupported)

	m, _ := open(t, "21.0.0")
	require.NoError(t, m.LoadPatterns().Add("CS", PatternConstruction, 0, false))
	typ, err := m.LoadPatterns().Type("CS")
	require.NoError(t, err)
	assert.Equal(t, PatternConstruction, typ)
}
