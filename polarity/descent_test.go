package polarity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heliograph/fluxseg/field"
	"github.com/heliograph/fluxseg/polarity"
)

// requireDescending asserts path is a valid descent witness: starts at a
// region maximum, ends at (row,col), steps are 8-adjacent, same-label, and
// never increase in value.
func requireDescending(t *testing.T, f *field.Field, m *field.LabelMap, path []field.Coord, row, col int) {
	t.Helper()
	require.NotEmpty(t, path)
	last := path[len(path)-1]
	require.Equal(t, field.Coord{Row: row, Col: col}, last, "path must end at the queried pixel")

	wantLabel, err := m.At(row, col)
	require.NoError(t, err)

	for i, c := range path {
		l, err := m.At(c.Row, c.Col)
		require.NoError(t, err)
		require.Equal(t, wantLabel, l, "path leaves the region at step %d", i)

		if i == 0 {
			continue
		}
		prev := path[i-1]
		dr, dc := c.Row-prev.Row, c.Col-prev.Col
		require.True(t, dr >= -1 && dr <= 1 && dc >= -1 && dc <= 1 && (dr != 0 || dc != 0),
			"steps %d→%d are not 8-adjacent", i-1, i)

		pv, _ := f.At(prev.Row, prev.Col)
		cv, _ := f.At(c.Row, c.Col)
		require.LessOrEqual(t, cv, pv, "value rises along the descent at step %d", i)
	}
}

// TestDescentPath_Errors verifies the validation sentinels.
func TestDescentPath_Errors(t *testing.T) {
	f, err := field.FromRows([][]float64{{100, 0, 90}})
	require.NoError(t, err)
	m, err := polarity.Label(f, 50)
	require.NoError(t, err)

	_, err = polarity.DescentPath(nil, m, 0, 0)
	require.ErrorIs(t, err, polarity.ErrNilField)

	_, err = polarity.DescentPath(f, nil, 0, 0)
	require.ErrorIs(t, err, polarity.ErrNilLabelMap)

	other, err := field.NewLabelMap(2, 2)
	require.NoError(t, err)
	_, err = polarity.DescentPath(f, other, 0, 0)
	require.ErrorIs(t, err, polarity.ErrShapeMismatch)

	_, err = polarity.DescentPath(f, m, 0, 9)
	require.ErrorIs(t, err, field.ErrIndexOutOfBounds)

	_, err = polarity.DescentPath(f, m, 0, 1)
	require.ErrorIs(t, err, polarity.ErrUnlabeledPixel)
}

// TestDescentPath_NoDescent: a hand-built map whose label spans pixels with
// no monotone connection cannot produce a witness.
func TestDescentPath_NoDescent(t *testing.T) {
	f, err := field.FromRows([][]float64{{100, 0, 90}})
	require.NoError(t, err)
	bogus, err := field.LabelMapFromRows([][]uint32{{1, 0, 1}})
	require.NoError(t, err)

	_, err = polarity.DescentPath(f, bogus, 0, 2)
	require.ErrorIs(t, err, polarity.ErrNoDescent)
}

// TestDescentPath_SinglePeak walks from a skirt pixel back to the peak.
func TestDescentPath_SinglePeak(t *testing.T) {
	f, err := field.FromRows([][]float64{
		{0, 0, 0, 0, 0},
		{0, 60, 70, 60, 0},
		{0, 70, 100, 70, 0},
		{0, 60, 70, 60, 0},
		{0, 0, 0, 0, 0},
	})
	require.NoError(t, err)
	m, err := polarity.Label(f, 50)
	require.NoError(t, err)

	path, err := polarity.DescentPath(f, m, 3, 3)
	require.NoError(t, err)
	require.Equal(t, field.Coord{Row: 2, Col: 2}, path[0], "path must start at the peak")
	requireDescending(t, f, m, path, 3, 3)
}

// TestDescentPath_SeedIsItself: the seed's witness is the single-node path.
func TestDescentPath_SeedIsItself(t *testing.T) {
	f, err := field.FromRows([][]float64{
		{100, 60},
		{60, 60},
	})
	require.NoError(t, err)
	m, err := polarity.Label(f, 50)
	require.NoError(t, err)

	path, err := polarity.DescentPath(f, m, 0, 0)
	require.NoError(t, err)
	require.Equal(t, []field.Coord{{Row: 0, Col: 0}}, path)
}

// TestDescentPath_EveryLabeledPixel: the outward-descent invariant holds
// for every labeled pixel of a raw labeling.
func TestDescentPath_EveryLabeledPixel(t *testing.T) {
	f := randomField(t, 12, 12, 31)
	m, err := polarity.Label(f, 45)
	require.NoError(t, err)

	for row := 0; row < f.Rows(); row++ {
		for col := 0; col < f.Cols(); col++ {
			l, err := m.At(row, col)
			require.NoError(t, err)
			if l == 0 {
				continue
			}
			path, err := polarity.DescentPath(f, m, row, col)
			require.NoError(t, err, "no descent witness for labeled pixel (%d,%d)", row, col)
			requireDescending(t, f, m, path, row, col)
		}
	}
}
