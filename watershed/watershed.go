package watershed

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/heliograph/fluxseg/field"
)

// FromMarkers grows the marker labels over the thresholded field by
// priority flood: at every step the strongest unclaimed frontier pixel
// is claimed, so each basin is the set of pixels whose steepest
// connection leads to that marker. It is the region-growing stage of
// marker-based tracking: peaks pick the markers, the flood carves the
// raster into one basin per target.
//
// Stages:
//
//  1. Validate inputs: f and markers non-nil and of equal shape,
//     threshold a non-negative number.
//  2. Build the flood domain: pixels with v ≥ threshold (or
//     v ≤ -threshold under WithNegative), non-finite samples excluded.
//     The flood priority is the flux magnitude.
//  3. Seed the frontier with every marker pixel inside the domain;
//     markers stranded outside it are dropped.
//  4. Flood: pop the frontier pixel with the greatest priority
//     (insertion order breaks ties, so plateaus go to the wavefront
//     that arrived first) and hand its label to every unclaimed
//     8-neighbor inside the domain, pushing each at its own priority.
//     Every pixel is pushed at most once, when it is claimed.
//  5. Scan for boundaries: a labeled pixel with an 8-neighbor of a
//     different label (background included).
//
// The pop order is a total order, so the segmentation is
// deterministic. Domain pixels unreachable from any marker stay
// background.
func FromMarkers(f *field.Field, markers *field.LabelMap, threshold float64, opts ...Option) (*Segmentation, error) {
	// 1) Validation.
	if f == nil {
		return nil, ErrNilField
	}
	if markers == nil {
		return nil, ErrNilMarkers
	}
	if f.Rows() != markers.Rows() || f.Cols() != markers.Cols() {
		return nil, fmt.Errorf("%w: field %dx%d vs markers %dx%d",
			ErrShapeMismatch, f.Rows(), f.Cols(), markers.Rows(), markers.Cols())
	}
	if math.IsNaN(threshold) || threshold < 0 {
		return nil, fmt.Errorf("%w: threshold must be a non-negative number (%v)",
			ErrOptionViolation, threshold)
	}
	o := DefaultOptions()
	for _, fn := range opts {
		if fn == nil {
			continue
		}
		fn(&o)
	}

	rows, cols := f.Rows(), f.Cols()
	vals := f.Values()
	n := len(vals)

	// 2) Flood domain and priorities.
	inDomain := make([]bool, n)
	prio := make([]float64, n)
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if o.Negative {
			if v <= -threshold {
				inDomain[i] = true
				prio[i] = -v
			}
		} else if v >= threshold {
			inDomain[i] = true
			prio[i] = v
		}
	}

	// 3) Seed the frontier.
	out, _ := field.NewLabelMap(rows, cols) // validated shape cannot fail
	labels := out.Labels()
	pq := make(floodPQ, 0, n/4)
	heap.Init(&pq)
	seq := 0
	for idx, lbl := range markers.Labels() {
		if lbl == 0 || !inDomain[idx] {
			continue
		}
		labels[idx] = lbl
		heap.Push(&pq, &floodItem{idx: idx, prio: prio[idx], seq: seq})
		seq++
	}

	// 4) Flood.
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*floodItem)
		r, c := out.Coord(item.idx)
		for _, d := range neighbors8 {
			nr, nc := r+d[0], c+d[1]
			if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
				continue
			}
			nidx := nr*cols + nc
			if !inDomain[nidx] || labels[nidx] != 0 {
				continue
			}
			labels[nidx] = labels[item.idx]
			heap.Push(&pq, &floodItem{idx: nidx, prio: prio[nidx], seq: seq})
			seq++
		}
	}

	// 5) Boundaries.
	return &Segmentation{Labels: out, Boundaries: boundaries(out)}, nil
}

// boundaries marks every labeled pixel that touches a different label.
func boundaries(m *field.LabelMap) []bool {
	rows, cols := m.Rows(), m.Cols()
	labels := m.Labels()
	marks := make([]bool, len(labels))
	for idx, lbl := range labels {
		if lbl == 0 {
			continue
		}
		r, c := m.Coord(idx)
		for _, d := range neighbors8 {
			nr, nc := r+d[0], c+d[1]
			if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
				continue
			}
			if labels[nr*cols+nc] != lbl {
				marks[idx] = true
				break
			}
		}
	}

	return marks
}

// floodItem is one frontier pixel awaiting expansion.
type floodItem struct {
	idx  int     // row-major pixel index
	prio float64 // flux magnitude at idx
	seq  int     // insertion order, breaks priority ties
}

// floodPQ is a max-heap of *floodItem ordered by prio descending, seq
// ascending. The ordering is total, which keeps the flood
// deterministic on plateaus.
type floodPQ []*floodItem

// Len returns the number of items in the heap.
func (pq floodPQ) Len() int { return len(pq) }

// Less defines the comparison: greater prio → higher priority, earlier
// insertion breaking ties.
func (pq floodPQ) Less(i, j int) bool {
	if pq[i].prio != pq[j].prio {
		return pq[i].prio > pq[j].prio
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq floodPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *floodItem.
func (pq *floodPQ) Push(x interface{}) { *pq = append(*pq, x.(*floodItem)) }

// Pop removes and returns the highest-priority element from the heap.
// Called by heap.Pop; returns interface{} that must be cast to *floodItem.
func (pq *floodPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
