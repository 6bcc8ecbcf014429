package watershed

import (
	"fmt"

	"github.com/heliograph/fluxseg/field"
)

// Markers builds the marker map a flood starts from: seeds[i] is
// stamped with label i+1, so labels follow seed order (strongest first
// when the seeds come from a peak search).
//
// Seeds with a negative row or column are skipped, their label is
// simply absent from the map; trackers park lost targets at negative
// coordinates and expect them to drop out here. A seed at or beyond
// the raster extent is a hard error. When two live seeds collide on a
// pixel the later one wins.
func Markers(rows, cols int, seeds []field.Coord) (*field.LabelMap, error) {
	m, err := field.NewLabelMap(rows, cols)
	if err != nil {
		return nil, err
	}
	for i, s := range seeds {
		if s.Row < 0 || s.Col < 0 {
			continue
		}
		if s.Row >= rows || s.Col >= cols {
			return nil, fmt.Errorf("%w: seed %d at %v exceeds %dx%d raster",
				ErrSeedOutOfBounds, i, s, rows, cols)
		}
		m.Labels()[m.Index(s.Row, s.Col)] = uint32(i + 1)
	}

	return m, nil
}
