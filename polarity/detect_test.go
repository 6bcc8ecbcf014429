package polarity_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heliograph/fluxseg/field"
	"github.com/heliograph/fluxseg/polarity"
)

// countingFinalizer records invocations and passes maps through untouched.
type countingFinalizer struct {
	mu    sync.Mutex
	calls int
}

func (c *countingFinalizer) Finalize(m *field.LabelMap, _ int) (*field.LabelMap, error) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()

	return m.Clone(), nil
}

//----------------------------------------------------------------------------//
// Validation Tests
//----------------------------------------------------------------------------//

// TestDetect_Errors verifies nil input and option violations.
func TestDetect_Errors(t *testing.T) {
	_, err := polarity.Detect(nil)
	require.ErrorIs(t, err, polarity.ErrNilField)

	f, err := field.New(3, 3)
	require.NoError(t, err)

	_, err = polarity.Detect(f, polarity.WithThreshold(-1))
	require.ErrorIs(t, err, polarity.ErrOptionViolation)

	_, err = polarity.Detect(f, polarity.WithThreshold(math.NaN()))
	require.ErrorIs(t, err, polarity.ErrOptionViolation)

	_, err = polarity.Detect(f, polarity.WithMinRegionSize(-6))
	require.ErrorIs(t, err, polarity.ErrOptionViolation)

	_, err = polarity.Detect(f, polarity.WithFinalizer(nil))
	require.ErrorIs(t, err, polarity.ErrOptionViolation)
}

//----------------------------------------------------------------------------//
// Pipeline Tests
//----------------------------------------------------------------------------//

// TestDetect_EndToEnd drives the full pipeline on a field holding a wide
// positive blob, an isolated positive spike, and a negative slab.
//
//	60 60 60 .  .  100     blob → one surviving positive region
//	60 90 60 .  .  .       spike → seeded, then pruned (< 6 px)
//	60 60 60 .  .  .       slab → one surviving negative region
//	 .  .  . .  +Inf NaN   invalid values → sanitized to 0
//	-70 -70 -70 . . .
//	-70 -70 -70 . . .
func TestDetect_EndToEnd(t *testing.T) {
	f, err := field.FromRows([][]float64{
		{60, 60, 60, 0, 0, 100},
		{60, 90, 60, 0, 0, 0},
		{60, 60, 60, 0, 0, 0},
		{0, 0, 0, 0, math.Inf(1), math.NaN()},
		{-70, -70, -70, 0, 0, 0},
		{-70, -70, -70, 0, 0, 0},
	})
	require.NoError(t, err)

	res, err := polarity.Detect(f)
	require.NoError(t, err)

	require.Equal(t, 2, res.PositiveSeeds, "blob peak + spike")
	require.Equal(t, 1, res.NegativeSeeds, "one negative plateau")

	wantPos := [][]uint32{
		{1, 1, 1, 0, 0, 0},
		{1, 1, 1, 0, 0, 0},
		{1, 1, 1, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
	}
	require.Equal(t, wantPos, labelRows(t, res.Positive), "spike must be pruned by the size floor")

	wantNeg := [][]uint32{
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
		{1, 1, 1, 0, 0, 0},
		{1, 1, 1, 0, 0, 0},
	}
	require.Equal(t, wantNeg, labelRows(t, res.Negative))
}

// TestDetect_IsolatedPeakDiscarded: a single-pixel peak is labeled raw but
// vanishes after finalization, distinguishing raw from finalized output.
func TestDetect_IsolatedPeakDiscarded(t *testing.T) {
	rows := make([][]float64, 5)
	for r := range rows {
		rows[r] = make([]float64, 5)
	}
	rows[2][2] = 100
	f, err := field.FromRows(rows)
	require.NoError(t, err)

	raw, err := polarity.Detect(f, polarity.WithoutFinalizer())
	require.NoError(t, err)
	require.Equal(t, 1, raw.PositiveSeeds)
	l, _ := raw.Positive.At(2, 2)
	require.Equal(t, uint32(1), l, "raw labeling keeps the isolated peak")

	fin, err := polarity.Detect(f)
	require.NoError(t, err)
	require.Equal(t, uint32(0), fin.Positive.MaxLabel(), "size floor discards the isolated peak")
	require.Equal(t, 1, fin.PositiveSeeds, "seed count reports the raw labeling")
}

// TestDetect_DisjointPolarity: no pixel may be labeled in both channels.
func TestDetect_DisjointPolarity(t *testing.T) {
	f := randomField(t, 16, 16, 23)
	// Push half the values negative to exercise both channels.
	vals := f.Values()
	for i := range vals {
		vals[i] -= 50
		vals[i] *= 2
	}

	res, err := polarity.Detect(f, polarity.WithThreshold(20), polarity.WithoutFinalizer())
	require.NoError(t, err)

	pl, nl := res.Positive.Labels(), res.Negative.Labels()
	for i := range pl {
		if pl[i] != 0 && nl[i] != 0 {
			t.Fatalf("pixel %d labeled in both channels: pos=%d neg=%d", i, pl[i], nl[i])
		}
	}
}

// TestDetect_CustomFinalizer: the seam runs once per polarity channel.
func TestDetect_CustomFinalizer(t *testing.T) {
	f, err := field.FromRows([][]float64{
		{60, -60},
		{60, -60},
	})
	require.NoError(t, err)

	fin := &countingFinalizer{}
	res, err := polarity.Detect(f, polarity.WithFinalizer(fin))
	require.NoError(t, err)
	require.Equal(t, 2, fin.calls, "one finalize per channel")
	require.Equal(t, 1, res.PositiveSeeds)
	require.Equal(t, 1, res.NegativeSeeds)
}

// TestDetect_SingleChannelVariants: DetectPositive/DetectNegative agree
// with the corresponding halves of Detect.
func TestDetect_SingleChannelVariants(t *testing.T) {
	f := randomField(t, 12, 12, 29)
	vals := f.Values()
	for i := range vals {
		vals[i] = vals[i]*2 - 100
	}

	res, err := polarity.Detect(f, polarity.WithThreshold(30))
	require.NoError(t, err)

	pos, err := polarity.DetectPositive(f, polarity.WithThreshold(30))
	require.NoError(t, err)
	require.Equal(t, res.Positive.Labels(), pos.Labels())

	neg, err := polarity.DetectNegative(f, polarity.WithThreshold(30))
	require.NoError(t, err)
	require.Equal(t, res.Negative.Labels(), neg.Labels())
}
