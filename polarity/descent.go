package polarity

import (
	"github.com/heliograph/fluxseg/field"
)

// DescentPath reconstructs the monotonic-descent witness for a labeled
// pixel: a path of 8-connected, same-label pixels that starts at the
// region's seed, ends at (row, col), and never increases in value.
//
// The seed of a raw labeling is the region's highest-valued pixel, ties
// broken by ascending row-major index — the first pixel the descending
// scan visited for that region. The path always exists for maps produced
// by Label on the same field; for any other map ErrNoDescent is returned.
//
// The search is a breadth-first walk from (row, col) restricted to
// same-label neighbors whose value is ≥ the current pixel's, recording
// parent links and reconstructing seed→pixel once the seed is reached.
//
// Complexity: O(k·8) time and O(k) memory, k = region pixel count.
func DescentPath(f *field.Field, m *field.LabelMap, row, col int) ([]field.Coord, error) {
	if f == nil {
		return nil, ErrNilField
	}
	if m == nil {
		return nil, ErrNilLabelMap
	}
	if f.Rows() != m.Rows() || f.Cols() != m.Cols() {
		return nil, ErrShapeMismatch
	}
	if !f.InBounds(row, col) {
		return nil, field.ErrIndexOutOfBounds
	}

	rows, cols := f.Rows(), f.Cols()
	vals := f.Values()
	labels := m.Labels()

	start := row*cols + col
	target := labels[start]
	if target == 0 {
		return nil, ErrUnlabeledPixel
	}

	// Locate the seed: maximum value within the region, smallest index wins.
	seed := -1
	for idx, l := range labels {
		if l != target {
			continue
		}
		if seed < 0 || vals[idx] > vals[seed] {
			seed = idx
		}
	}

	// BFS uphill: an edge u→w is walkable when w stays in the region and
	// sits at least as high as u, so the reversed path descends.
	parent := map[int]int{start: start}
	queue := []int{start}
	found := start == seed
	for qi := 0; qi < len(queue) && !found; qi++ {
		u := queue[qi]
		ur, uc := u/cols, u%cols
		for _, d := range moore8 {
			nr, nc := ur+d[0], uc+d[1]
			if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
				continue
			}
			w := nr*cols + nc
			if labels[w] != target || vals[w] < vals[u] {
				continue
			}
			if _, seen := parent[w]; seen {
				continue
			}
			parent[w] = u
			if w == seed {
				found = true

				break
			}
			queue = append(queue, w)
		}
	}
	if !found {
		return nil, ErrNoDescent
	}

	// Walk parent links from the seed back to the start pixel; the chain
	// comes out seed-first, which is the descending direction.
	path := []field.Coord{}
	for cur := seed; ; cur = parent[cur] {
		path = append(path, field.Coord{Row: cur / cols, Col: cur % cols})
		if cur == parent[cur] {
			break
		}
	}

	return path, nil
}
