package regions

import (
	"github.com/heliograph/fluxseg/field"
)

// Sizes returns the pixel count of every label present in m.
// Background (0) is not counted.
// Time: O(rows×cols).
func Sizes(m *field.LabelMap) map[uint32]int {
	counts := make(map[uint32]int)
	for _, l := range m.Labels() {
		if l > 0 {
			counts[l]++
		}
	}

	return counts
}

// FilterBySize zeroes out every label whose total pixel count is strictly
// less than minPixels. Surviving labels keep their original IDs, so the
// output may contain gaps in the label sequence; re-Canonicalize when a
// dense numbering is needed. The input is never mutated.
// Returns the filtered map and the number of labels removed.
//
// minPixels ≤ 1 removes nothing (every present label has at least one
// pixel); a negative minPixels is an ErrInvalidMinSize.
// Time: O(rows×cols).
func FilterBySize(m *field.LabelMap, minPixels int) (*field.LabelMap, int, error) {
	if m == nil {
		return nil, 0, ErrNilLabelMap
	}
	if minPixels < 0 {
		return nil, 0, ErrInvalidMinSize
	}

	out := m.Clone()
	if minPixels <= 1 {
		return out, 0, nil
	}

	counts := Sizes(m)
	drop := make(map[uint32]bool, len(counts))
	removed := 0
	for label, n := range counts {
		if n < minPixels {
			drop[label] = true
			removed++
		}
	}
	if removed == 0 {
		return out, 0, nil
	}

	dst := out.Labels()
	for idx, l := range dst {
		if l > 0 && drop[l] {
			dst[idx] = 0
		}
	}

	return out, removed, nil
}

// Finalize canonicalizes m and then removes components smaller than
// minPixels: the full finalizer contract in one call.
// Time: O(rows×cols α(rows×cols)).
func Finalize(m *field.LabelMap, minPixels int) (*field.LabelMap, error) {
	canon, _, err := Canonicalize(m)
	if err != nil {
		return nil, err
	}
	out, _, err := FilterBySize(canon, minPixels)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Finalize satisfies the polarity finalizer seam with the package defaults.
func (Finalizer) Finalize(m *field.LabelMap, minPixels int) (*field.LabelMap, error) {
	return Finalize(m, minPixels)
}
