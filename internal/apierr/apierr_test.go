package apierr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckZeroIsNil(t *testing.T) {
	assert.NoError(t, Check("CoordSys.Count", 0))
}

func TestCheckNonzero(t *testing.T) {
	err := CheckName("CoordSys.Delete", "CSYS1", 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCallFailed))
	assert.False(t, errors.Is(err, ErrReservedName))
	assert.Equal(t, `[CALL_FAILED] CoordSys.Delete "CSYS1": call code 1`, err.Error())

	code, ok := CallCodeOf(err)
	assert.True(t, ok)
	assert.Equal(t, 1, code)
}

func TestReservedThroughWrapping(t *testing.T) {
	err := fmt.Errorf("apply model: %w", Reserved("GroupDef.Delete", "group", "ALL"))
	assert.True(t, errors.Is(err, ErrReservedName))
	assert.Contains(t, err.Error(), `group "ALL" is reserved`)

	_, ok := CallCodeOf(err)
	assert.False(t, ok)
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(InvalidArgument, "x", nil))
}

func TestWrapUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(MalformedResult, "Results.JointDispl", cause)
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrMalformedResult)
}
