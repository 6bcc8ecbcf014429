package polarity

import (
	"math"

	"github.com/heliograph/fluxseg/field"
)

// Split clamps the raw field into two independent non-negative channels:
// pos holds max(v, 0) and neg holds max(-v, 0), so the negative channel
// carries sign-flipped magnitudes. NaN and ±Inf resolve to 0 in both
// channels; invalid values are never signaled as errors. The input is not
// mutated, and no pixel is nonzero in both outputs.
// Complexity: O(rows×cols) time and memory.
func Split(f *field.Field) (pos, neg *field.Field, err error) {
	if f == nil {
		return nil, nil, ErrNilField
	}
	rows, cols := f.Rows(), f.Cols()

	// Shape comes from a validated Field, so construction cannot fail.
	pos, _ = field.New(rows, cols)
	neg, _ = field.New(rows, cols)

	src := f.Values()
	pv, nv := pos.Values(), neg.Values()
	for i, v := range src {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue // both channels stay 0
		}
		switch {
		case v > 0:
			pv[i] = v
		case v < 0:
			nv[i] = -v
		}
	}

	return pos, neg, nil
}
