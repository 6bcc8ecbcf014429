package regions

import (
	"sort"

	"github.com/heliograph/fluxseg/field"
)

// Stats summarizes every label present in m: pixel count, inclusive
// bounding box, and centroid. Results are sorted by ascending label.
// Pixels sharing a label are treated as one region whether or not they
// touch; run Canonicalize first when component identity matters.
// Time: O(rows×cols + K log K).
func Stats(m *field.LabelMap) ([]RegionStat, error) {
	if m == nil {
		return nil, ErrNilLabelMap
	}
	rows, cols := m.Rows(), m.Cols()
	src := m.Labels()

	acc := make(map[uint32]*RegionStat)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			l := src[row*cols+col]
			if l == 0 {
				continue
			}
			st, ok := acc[l]
			if !ok {
				// First sighting fixes the initial bounding box.
				st = &RegionStat{
					Label:  l,
					Bounds: Bounds{MinRow: row, MinCol: col, MaxRow: row, MaxCol: col},
				}
				acc[l] = st
			} else {
				// Scanning top-down means MinRow never shrinks.
				if col < st.Bounds.MinCol {
					st.Bounds.MinCol = col
				}
				if col > st.Bounds.MaxCol {
					st.Bounds.MaxCol = col
				}
				if row > st.Bounds.MaxRow {
					st.Bounds.MaxRow = row
				}
			}
			st.PixelCount++
			st.CentroidRow += float64(row)
			st.CentroidCol += float64(col)
		}
	}

	out := make([]RegionStat, 0, len(acc))
	for _, st := range acc {
		st.CentroidRow /= float64(st.PixelCount)
		st.CentroidCol /= float64(st.PixelCount)
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })

	return out, nil
}
