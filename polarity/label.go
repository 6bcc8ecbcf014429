package polarity

import (
	"sort"

	"github.com/heliograph/fluxseg/field"
)

// Label assigns every pixel of f with value ≥ threshold to a connected
// region grown outward from local peaks, and returns the label map.
// Pixels below threshold keep label 0.
//
// The field is expected to be a non-negative channel as produced by Split;
// per the splitter contract, NaN/Inf never reach this stage, and the caller
// owns validation of anything else. The input is never mutated.
//
// The scan visits pixels in strictly descending value order (equal values
// by ascending row-major index), so a pixel can only inherit a label from a
// neighbor at least as high as itself: labels flow outward from peaks along
// monotonic descent. Seed IDs count up from 1 in first-visited order; they
// are process-local until a finalizer recomputes canonical components.
//
// Complexity: O(n log n) time for the rank sort, O(n) memory, n = rows×cols.
func Label(f *field.Field, threshold float64) (*field.LabelMap, error) {
	if f == nil {
		return nil, ErrNilField
	}
	rows, cols := f.Rows(), f.Cols()
	vals := f.Values()

	// 1) Rank order: pixel indices sorted by value descending.
	//    The index tiebreaker makes the order total, hence reproducible.
	order := make([]int, len(vals))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		if vals[ia] != vals[ib] {
			return vals[ia] > vals[ib]
		}

		return ia < ib
	})

	// Shape comes from a validated Field, so construction cannot fail.
	out, _ := field.NewLabelMap(rows, cols)
	labels := out.Labels()

	// 2) Descending scan with early exit below threshold.
	var next uint32 = 1
	for _, idx := range order {
		v := vals[idx]
		if v < threshold {
			// Every later pixel ranks lower still; stop the whole scan.
			break
		}
		row, col := idx/cols, idx%cols

		// 3) Neighbor pass in fixed Moore order. A neighbor label is
		//    copied only when the neighbor sits at least as high as the
		//    pixel and its label beats the pixel's current one.
		for _, d := range moore8 {
			nr, nc := row+d[0], col+d[1]
			if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
				continue
			}
			nidx := nr*cols + nc
			nl := labels[nidx]
			if nl == 0 || vals[nidx] < v {
				continue
			}
			if cur := labels[idx]; cur == 0 || nl < cur {
				labels[idx] = nl
			}
		}

		// 4) No neighbor qualified: the pixel is a fresh seed.
		if labels[idx] == 0 {
			labels[idx] = next
			next++
		}
	}

	return out, nil
}
