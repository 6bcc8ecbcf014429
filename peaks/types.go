// Package peaks defines tunable options and error definitions for
// local-extrema detection over a field.Field.
package peaks

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNilField is returned when the input field pointer is nil.
	ErrNilField = errors.New("peaks: nil field")

	// ErrOptionViolation is returned by Find when a functional option
	// received an invalid value.
	ErrOptionViolation = errors.New("peaks: option violation")

	// ErrEmptyWindow is returned when the search window does not
	// intersect the raster or has non-positive extent.
	ErrEmptyWindow = errors.New("peaks: empty search window")
)

// DefaultMinDistance is the window radius and separation floor used when
// WithMinDistance is not supplied.
const DefaultMinDistance = 1

// Polarity selects the ranking surface a peak search runs on.
type Polarity int

const (
	// Absolute ranks pixels by |v|, so strong flux of either sign peaks.
	Absolute Polarity = iota
	// Positive ranks pixels by v; negative flux never qualifies.
	Positive
	// Negative ranks pixels by -v; positive flux never qualifies.
	Negative
)

// String implements fmt.Stringer for diagnostics.
func (p Polarity) String() string {
	switch p {
	case Absolute:
		return "Absolute"
	case Positive:
		return "Positive"
	case Negative:
		return "Negative"
	default:
		return fmt.Sprintf("Polarity(%d)", int(p))
	}
}

// window is a half-open sub-rectangle [r0,r1)×[c0,c1) of the raster.
type window struct {
	r0, c0, r1, c1 int
}

// Options collects the tunable knobs of a peak search.
//
// Zero-value misuse is caught at Find time: every With* constructor
// records the first violation in err, and Find surfaces it wrapped in
// ErrOptionViolation before touching the field.
type Options struct {
	// MinDistance is the neighborhood radius: a candidate must be the
	// maximum of its (2·MinDistance+1)² window, and accepted peaks are
	// separated by more than MinDistance (Chebyshev).
	MinDistance int

	// Threshold is the floor on the ranking surface; pixels below it are
	// never candidates. Defaults to 0 (everything qualifies).
	Threshold float64

	// Polarity selects the ranking surface (see Polarity).
	Polarity Polarity

	// LocalMin inverts the surface before ranking, turning the search
	// into a minima hunt.
	LocalMin bool

	// win is the optional search window; nil means the full raster.
	win *window

	// err records the first option violation for Find to surface.
	err error
}

// DefaultOptions returns the canonical starting configuration:
// MinDistance 1, no threshold, Absolute polarity, full-raster search.
func DefaultOptions() Options {
	return Options{
		MinDistance: DefaultMinDistance,
		Threshold:   0,
		Polarity:    Absolute,
	}
}

// Option mutates Options; apply with Find(f, opts...).
type Option func(*Options)

// WithMinDistance sets the neighborhood radius and separation floor.
// d must be ≥ 1; violations are reported by Find.
func WithMinDistance(d int) Option {
	return func(o *Options) {
		if d < 1 {
			o.err = fmt.Errorf("%w: MinDistance must be >= 1 (%d)", ErrOptionViolation, d)
			return
		}
		o.MinDistance = d
	}
}

// WithThreshold sets the floor on the ranking surface. t must be a
// number (NaN is rejected); negative floors are allowed, they simply
// admit every pixel on a non-negative surface.
func WithThreshold(t float64) Option {
	return func(o *Options) {
		if math.IsNaN(t) {
			o.err = fmt.Errorf("%w: Threshold must be a number (got NaN)", ErrOptionViolation)
			return
		}
		o.Threshold = t
	}
}

// WithPolarity selects the ranking surface.
func WithPolarity(p Polarity) Option {
	return func(o *Options) {
		switch p {
		case Absolute, Positive, Negative:
			o.Polarity = p
		default:
			o.err = fmt.Errorf("%w: unknown polarity %d", ErrOptionViolation, int(p))
		}
	}
}

// WithWindow restricts the search to rows [r0,r1) and columns [c0,c1).
// Bounds are validated against the field inside Find; an empty or
// out-of-range window yields ErrEmptyWindow.
func WithWindow(r0, c0, r1, c1 int) Option {
	return func(o *Options) {
		o.win = &window{r0: r0, c0: c0, r1: r1, c1: c1}
	}
}

// WithLocalMin inverts the ranking surface so that local minima are
// reported instead of maxima.
func WithLocalMin() Option {
	return func(o *Options) {
		o.LocalMin = true
	}
}
