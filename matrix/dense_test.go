package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/matrix"
)

func TestNewDense_Shapes(t *testing.T) {
	_, err := matrix.NewDense(-1)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	m, err := matrix.NewDense(0)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Order())

	m, err = matrix.NewDense(3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			w, err := m.At(i, j)
			require.NoError(t, err)
			if i == j {
				assert.Equal(t, int64(0), w, "diagonal (%d,%d)", i, j)
			} else {
				assert.Equal(t, matrix.Infinity, w, "cell (%d,%d)", i, j)
			}
		}
	}
}

func TestDense_BoundsAndNegative(t *testing.T) {
	m, err := matrix.NewDense(2)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(5, 5, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 1, -3), matrix.ErrNegativeWeight)
}

func TestDense_SetSymmetricAndClone(t *testing.T) {
	m, err := matrix.NewDense(3)
	require.NoError(t, err)
	require.NoError(t, m.SetSymmetric(0, 2, 7))
	require.NoError(t, m.CheckSymmetric())

	c := m.Clone()
	require.NoError(t, m.Set(0, 2, 1))
	assert.ErrorIs(t, m.CheckSymmetric(), matrix.ErrAsymmetry)

	// clone is unaffected by later writes
	w, err := c.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(7), w)
	require.NoError(t, c.CheckSymmetric())
}

func TestDense_String(t *testing.T) {
	m, err := matrix.NewDense(2)
	require.NoError(t, err)
	require.NoError(t, m.SetSymmetric(0, 1, 4))
	assert.Equal(t, "0 4\n4 0\n", m.String())

	m, err = matrix.NewDense(2)
	require.NoError(t, err)
	assert.Equal(t, "0 ∞\n∞ 0\n", m.String())
}
