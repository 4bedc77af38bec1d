package primitive_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/next-trace/scg-errbox/primitive"
)

func TestNarrow(t *testing.T) {
	v, err := primitive.Narrow[uint8](int64(200))
	require.NoError(t, err)
	assert.Equal(t, uint8(200), v)

	_, err = primitive.Narrow[uint8](int64(256))
	require.ErrorIs(t, err, primitive.IntConversionError{})

	_, err = primitive.Narrow[uint8](int64(-1))
	require.Error(t, err)

	_, err = primitive.Narrow[int64](uint64(math.MaxUint64))
	require.Error(t, err)

	i, err := primitive.Narrow[int8](int32(-128))
	require.NoError(t, err)
	assert.Equal(t, int8(-128), i)

	assert.Equal(t, "out of range integral type conversion attempted", primitive.IntConversionError{}.Description())
}
