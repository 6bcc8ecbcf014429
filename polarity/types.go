// Package polarity defines tunable options and error definitions for
// seeded descending labeling of signed 2-D fields.
package polarity

import (
	"errors"
	"fmt"
	"math"

	"github.com/heliograph/fluxseg/field"
	"github.com/heliograph/fluxseg/regions"
)

// Sentinel errors for polarity operations.
var (
	// ErrNilField is returned if a nil field pointer is passed.
	ErrNilField = errors.New("polarity: field is nil")

	// ErrNilLabelMap is returned if a nil label map pointer is passed.
	ErrNilLabelMap = errors.New("polarity: label map is nil")

	// ErrShapeMismatch is returned when a field and a label map disagree on shape.
	ErrShapeMismatch = errors.New("polarity: field and label map shapes differ")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("polarity: invalid option supplied")

	// ErrUnlabeledPixel is returned when DescentPath starts on background.
	ErrUnlabeledPixel = errors.New("polarity: pixel carries no label")

	// ErrNoDescent is returned when no non-increasing path to a seed exists.
	ErrNoDescent = errors.New("polarity: no non-increasing path to the region seed")
)

// DefaultThreshold is the labeling floor: pixels below it stay background.
const DefaultThreshold = 50.0

// DefaultMinRegionSize is the pixel-count floor finalized regions must meet.
const DefaultMinRegionSize = regions.DefaultMinSize

// moore8 is the fixed Moore-neighborhood scan order. The order is part of
// the algorithm's contract: it breaks ties between equal candidate labels.
var moore8 = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Finalizer turns a raw labeling into canonical, size-filtered regions.
// The regions package provides the default implementation; any collaborator
// honoring the contract (4-connected canonical components, then removal of
// components under minPixels) can stand in.
type Finalizer interface {
	Finalize(m *field.LabelMap, minPixels int) (*field.LabelMap, error)
}

// Option configures detection behavior via functional arguments.
// If an Option is invalid (e.g. negative threshold), it is recorded
// internally and surfaced as ErrOptionViolation when Detect is invoked.
type Option func(*Options)

// Options holds parameters customizing the detection pipeline.
type Options struct {
	// Threshold is the labeling floor applied to each polarity channel.
	Threshold float64

	// MinRegionSize is the pixel floor passed to the finalizer.
	// 0 keeps every canonical component.
	MinRegionSize int

	// Finalizer post-processes each channel's raw labeling.
	Finalizer Finalizer

	// SkipFinalize returns raw labeler output untouched.
	SkipFinalize bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the pipeline defaults:
//   - Threshold 50
//   - MinRegionSize 6
//   - regions-backed finalizer
//   - finalization enabled.
func DefaultOptions() Options {
	return Options{
		Threshold:     DefaultThreshold,
		MinRegionSize: DefaultMinRegionSize,
		Finalizer:     regions.Finalizer{},
		SkipFinalize:  false,
		err:           nil,
	}
}

// WithThreshold sets the labeling floor.
//
//	t ≥ 0: use t
//	t < 0 or NaN: invalid option → ErrOptionViolation
func WithThreshold(t float64) Option {
	return func(o *Options) {
		if t < 0 || math.IsNaN(t) {
			o.err = fmt.Errorf("%w: Threshold must be a non-negative number (%v)", ErrOptionViolation, t)
			return
		}
		o.Threshold = t
	}
}

// WithMinRegionSize sets the pixel floor for finalized regions.
//
//	n > 0: components under n pixels are discarded
//	n == 0: explicit "keep everything"
//	n < 0: invalid option → ErrOptionViolation
func WithMinRegionSize(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MinRegionSize cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MinRegionSize = n
	}
}

// WithFinalizer swaps in a custom finalization collaborator.
func WithFinalizer(fin Finalizer) Option {
	return func(o *Options) {
		if fin == nil {
			o.err = fmt.Errorf("%w: Finalizer must not be nil", ErrOptionViolation)
			return
		}
		o.Finalizer = fin
	}
}

// WithoutFinalizer skips finalization entirely; Detect then returns the
// labeler's raw, possibly fragmented output.
func WithoutFinalizer() Option {
	return func(o *Options) {
		o.SkipFinalize = true
	}
}

// Result holds the outcome of a full detection run:
//   - Positive/Negative: finalized label maps, one per polarity channel.
//   - PositiveSeeds/NegativeSeeds: raw seed counts before finalization,
//     i.e. how many local peaks opened a region in each channel.
type Result struct {
	Positive *field.LabelMap
	Negative *field.LabelMap

	PositiveSeeds int
	NegativeSeeds int
}
