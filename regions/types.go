// Package regions defines result types and sentinel errors for
// canonical component labeling and size filtering.
package regions

import (
	"errors"
)

// Sentinel errors for regions operations.
var (
	// ErrNilLabelMap indicates a nil label map was passed.
	ErrNilLabelMap = errors.New("regions: label map is nil")
	// ErrInvalidMinSize indicates a negative pixel-count floor.
	ErrInvalidMinSize = errors.New("regions: minimum size must be non-negative")
)

// Bounds is the inclusive bounding box of a region in raster coordinates.
type Bounds struct {
	MinRow, MinCol int
	MaxRow, MaxCol int
}

// RegionStat summarizes one labeled region: its identifier, pixel count,
// bounding box, and pixel-centroid position.
type RegionStat struct {
	Label       uint32
	PixelCount  int
	Bounds      Bounds
	CentroidRow float64
	CentroidCol float64
}

// Finalizer applies the canonical-components-then-size-filter chain.
// Its method set satisfies the finalizer seam of the polarity package.
type Finalizer struct{}

// DefaultMinSize is the pixel-count floor below which finalized regions
// are discarded.
const DefaultMinSize = 6
