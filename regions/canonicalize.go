package regions

import (
	"github.com/theodesp/unionfind"

	"github.com/heliograph/fluxseg/field"
)

// Canonicalize recomputes connected components of m under 4-connectivity,
// treating every label > 0 as foreground and 0 as background, and relabels
// the components densely 1..K in row-major first-encounter order.
// The input is never mutated; the original label IDs carry no meaning into
// the output. Returns the canonical map and K, the number of components.
//
// Two-pass scan: pass one assigns provisional IDs from the already-visited
// north and west neighbors, unioning the two when both exist and disagree;
// pass two resolves each provisional ID to its union-find root and
// renumbers roots densely.
//
// Time: O(rows×cols α(rows×cols)). Memory: O(rows×cols).
func Canonicalize(m *field.LabelMap) (*field.LabelMap, int, error) {
	if m == nil {
		return nil, 0, ErrNilLabelMap
	}
	rows, cols := m.Rows(), m.Cols()
	src := m.Labels()

	// Provisional component IDs, 0 = background.
	prov := make([]uint32, rows*cols)
	// Capacity covers the worst case of one provisional ID per pixel.
	uf := unionfind.NewThreadSafeUnionFind(rows*cols + 1)

	var next uint32 = 1
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			idx := row*cols + col
			if src[idx] == 0 {
				continue // background
			}

			// Inherit from the north neighbor when it is foreground.
			found := false
			if row > 0 && src[idx-cols] > 0 {
				prov[idx] = prov[idx-cols]
				found = true
			}
			// The west neighbor overrides; when both exist with different
			// IDs, their trees are joined and pass two reconciles them.
			if col > 0 && src[idx-1] > 0 {
				west := prov[idx-1]
				if found && west != prov[idx] {
					uf.Union(int(west), int(prov[idx]))
				}
				prov[idx] = west
				found = true
			}
			if found {
				continue
			}

			// Neither neighbor is foreground: open a new provisional ID.
			prov[idx] = next
			next++
		}
	}

	// Pass two: resolve roots, then renumber densely in first-encounter order.
	out, err := field.NewLabelMap(rows, cols)
	if err != nil {
		return nil, 0, err
	}
	dst := out.Labels()
	dense := make(map[uint32]uint32, next)
	var k uint32
	for idx, p := range prov {
		if p == 0 {
			continue
		}
		if root := uf.Root(int(p)); root >= 0 {
			p = uint32(root)
		}
		id, ok := dense[p]
		if !ok {
			k++
			id = k
			dense[p] = id
		}
		dst[idx] = id
	}

	return out, int(k), nil
}
