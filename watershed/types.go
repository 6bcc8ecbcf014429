// Package watershed defines result types, options, and sentinel errors
// for marker-based segmentation of a field.Field.
package watershed

import (
	"errors"

	"github.com/heliograph/fluxseg/field"
)

var (
	// ErrNilField is returned when the input field pointer is nil.
	ErrNilField = errors.New("watershed: nil field")

	// ErrNilMarkers is returned when the marker map pointer is nil.
	ErrNilMarkers = errors.New("watershed: nil markers")

	// ErrNilSegmentation is returned by Merge when either input
	// segmentation (or its label map) is nil.
	ErrNilSegmentation = errors.New("watershed: nil segmentation")

	// ErrShapeMismatch is returned when two rasters that must share a
	// shape do not.
	ErrShapeMismatch = errors.New("watershed: shape mismatch")

	// ErrSeedOutOfBounds is returned by Markers for a seed beyond the
	// raster.
	ErrSeedOutOfBounds = errors.New("watershed: seed out of bounds")

	// ErrOptionViolation is returned when a flood parameter is invalid
	// (NaN or negative threshold).
	ErrOptionViolation = errors.New("watershed: option violation")
)

// neighbors8 enumerates the Moore neighborhood used by the flood and
// the boundary scan.
var neighbors8 = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Options collects the tunable knobs of a marker flood.
type Options struct {
	// Negative floods the negative-polarity channel: the mask admits
	// v ≤ -threshold and stronger (more negative) flux floods first.
	// Default is the positive channel: v ≥ threshold, stronger positive
	// flux first.
	Negative bool
}

// DefaultOptions returns the canonical configuration: positive channel.
func DefaultOptions() Options {
	return Options{}
}

// Option mutates Options; apply with FromMarkers(f, m, t, opts...).
type Option func(*Options)

// WithNegative switches the flood to the negative-polarity channel.
func WithNegative() Option {
	return func(o *Options) { o.Negative = true }
}

// Segmentation is the result of a marker flood: a label raster plus a
// boundary mask.
//
// Boundaries is row-major, aligned with Labels: true marks a labeled
// pixel with at least one 8-neighbor carrying a different label
// (background included). Background pixels and the raster border by
// itself are never boundaries.
type Segmentation struct {
	Labels     *field.LabelMap
	Boundaries []bool
}

// BoundaryAt reports whether (row, col) is a boundary pixel.
func (s *Segmentation) BoundaryAt(row, col int) (bool, error) {
	if !s.Labels.InBounds(row, col) {
		return false, field.ErrIndexOutOfBounds
	}

	return s.Boundaries[s.Labels.Index(row, col)], nil
}
