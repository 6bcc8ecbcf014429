package prep

import (
	"fmt"
	"math"

	"github.com/heliograph/fluxseg/field"
)

// RadialAverage collapses a square raster into per-ring means around
// the centered zero-frequency bin (n/2, n/2): entry k is the mean of
// all pixels whose distance from the center rounds to k. Applied to a
// centered power spectrum it yields the 1-D spectral profile cutoffs
// are read from. Rings without pixels (possible in the raster corners)
// average to zero.
func RadialAverage(f *field.Field) ([]float64, error) {
	if f == nil {
		return nil, ErrNilField
	}
	n := f.Rows()
	if f.Cols() != n {
		return nil, fmt.Errorf("%w: %dx%d", ErrNotSquare, f.Rows(), f.Cols())
	}

	center := float64(n / 2)
	var sums []float64
	var counts []int
	vals := f.Values()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			bin := int(math.Round(math.Hypot(float64(r)-center, float64(c)-center)))
			for bin >= len(sums) {
				sums = append(sums, 0)
				counts = append(counts, 0)
			}
			sums[bin] += vals[r*n+c]
			counts[bin]++
		}
	}

	out := make([]float64, len(sums))
	for i, s := range sums {
		if counts[i] > 0 {
			out[i] = s / float64(counts[i])
		}
	}

	return out, nil
}
