package field_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heliograph/fluxseg/field"
)

// TestStats verifies Min/Max/Sum/Mean/Std on a known raster.
//
// Values {1,2,3,4}: mean 2.5, population variance 1.25.
func TestStats(t *testing.T) {
	f, err := field.FromRows([][]float64{
		{1, 2},
		{3, 4},
	})
	require.NoError(t, err)

	assert.Equal(t, 1.0, f.Min(), "Min")
	assert.Equal(t, 4.0, f.Max(), "Max")
	assert.Equal(t, 10.0, f.Sum(), "Sum")
	assert.InDelta(t, 2.5, f.Mean(), 1e-12, "Mean")
	assert.InDelta(t, math.Sqrt(1.25), f.Std(), 1e-12, "population Std")
}

// TestAbsMax verifies the magnitude maximum dominates over sign.
func TestAbsMax(t *testing.T) {
	f, err := field.FromRows([][]float64{
		{-9, 2},
		{3, -4},
	})
	require.NoError(t, err)
	assert.Equal(t, 9.0, f.AbsMax())

	z, err := field.New(2, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, z.AbsMax(), "all-zero raster")
}
