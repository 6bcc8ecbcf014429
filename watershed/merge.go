package watershed

import "fmt"

// Merge folds a negative-channel segmentation into a positive-channel
// one over the same raster. Negative labels are offset by the largest
// positive label so the two channels stay distinguishable in the
// combined map; boundary masks are OR-ed. Where both channels claim a
// pixel the positive channel wins (possible only at threshold 0, where
// the two domains meet at exact zeros).
//
// Neither input is mutated.
func Merge(pos, neg *Segmentation) (*Segmentation, error) {
	if pos == nil || pos.Labels == nil || neg == nil || neg.Labels == nil {
		return nil, ErrNilSegmentation
	}
	if pos.Labels.Rows() != neg.Labels.Rows() || pos.Labels.Cols() != neg.Labels.Cols() {
		return nil, fmt.Errorf("%w: positive %dx%d vs negative %dx%d", ErrShapeMismatch,
			pos.Labels.Rows(), pos.Labels.Cols(), neg.Labels.Rows(), neg.Labels.Cols())
	}
	n := pos.Labels.Rows() * pos.Labels.Cols()
	if len(pos.Boundaries) != n || len(neg.Boundaries) != n {
		return nil, fmt.Errorf("%w: boundary mask length %d/%d, want %d", ErrShapeMismatch,
			len(pos.Boundaries), len(neg.Boundaries), n)
	}

	offset := pos.Labels.MaxLabel()
	out := pos.Labels.Clone()
	labels := out.Labels()
	for idx, nl := range neg.Labels.Labels() {
		if nl == 0 || labels[idx] != 0 {
			continue
		}
		labels[idx] = nl + offset
	}

	marks := make([]bool, n)
	for i := range marks {
		marks[i] = pos.Boundaries[i] || neg.Boundaries[i]
	}

	return &Segmentation{Labels: out, Boundaries: marks}, nil
}
