package peaks

import (
	"fmt"
	"math"
	"sort"

	"github.com/heliograph/fluxseg/field"
)

// Find locates the local extrema of f, strongest first.
//
// Stages:
//
//  1. Build the ranking surface: raw, negated, or absolute values per
//     WithPolarity, inverted when WithLocalMin is set. Non-finite
//     samples are inert: never candidates, never suppressing a
//     neighbor.
//  2. Resolve the search window (full raster unless WithWindow).
//  3. Collect candidates: pixels at or above the threshold that equal
//     the maximum of their (2·MinDistance+1)² window, clipped to the
//     search window.
//  4. Rank candidates by surface value descending, row-major index
//     ascending, and accept greedily: a candidate within MinDistance
//     (Chebyshev) of an earlier acceptance is discarded.
//
// The ranking in stage 4 is a total order, so Find is deterministic.
func Find(f *field.Field, opts ...Option) ([]field.Coord, error) {
	o, err := buildOptions(f, opts)
	if err != nil {
		return nil, err
	}
	win, err := resolveWindow(f, o)
	if err != nil {
		return nil, err
	}
	s := rankingSurface(f, o)
	return accept(f, s, win, o, o.Threshold), nil
}

// FindTwoTier runs the active-region recipe: moderate extrema whose
// surface value lies in [moderate, strong), followed by extrema of the
// strong mask (surface ≥ strong). The two tiers are concatenated in
// that order, each strongest first; they are disjoint by construction
// but separation is not enforced across the tier boundary.
//
// The thresholds must satisfy moderate < strong; WithThreshold is
// ignored in favor of the tier bounds.
func FindTwoTier(f *field.Field, moderate, strong float64, opts ...Option) ([]field.Coord, error) {
	if math.IsNaN(moderate) || math.IsNaN(strong) || moderate >= strong {
		return nil, fmt.Errorf("%w: tier thresholds must satisfy moderate < strong (%v, %v)",
			ErrOptionViolation, moderate, strong)
	}
	o, err := buildOptions(f, opts)
	if err != nil {
		return nil, err
	}
	win, err := resolveWindow(f, o)
	if err != nil {
		return nil, err
	}
	s := rankingSurface(f, o)

	// Tier one: moderate extrema, capped below the strong mask.
	tier1 := accept(f, s, win, o, moderate)
	out := make([]field.Coord, 0, len(tier1))
	for _, p := range tier1 {
		if s[f.Index(p.Row, p.Col)] < strong {
			out = append(out, p)
		}
	}

	// Tier two: everything peaking inside the strong mask.
	out = append(out, accept(f, s, win, o, strong)...)
	return out, nil
}

// buildOptions applies opts over the defaults and surfaces the first
// recorded violation.
func buildOptions(f *field.Field, opts []Option) (Options, error) {
	if f == nil {
		return Options{}, ErrNilField
	}
	o := DefaultOptions()
	for _, fn := range opts {
		if fn == nil {
			continue
		}
		fn(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	return o, nil
}

// rankingSurface maps the field onto the slice peaks are ranked by.
// Entries are row-major, aligned with field.Index; non-finite samples
// become -Inf so they can never win a window.
func rankingSurface(f *field.Field, o Options) []float64 {
	vals := f.Values()
	s := make([]float64, len(vals))
	inert := math.Inf(-1)
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			s[i] = inert
			continue
		}
		switch o.Polarity {
		case Positive:
			s[i] = v
		case Negative:
			s[i] = -v
		default:
			s[i] = math.Abs(v)
		}
	}
	if o.LocalMin {
		// Flip the surface about its finite maximum; inert stays inert.
		top := inert
		for _, v := range s {
			if v > top {
				top = v
			}
		}
		for i, v := range s {
			if v != inert {
				s[i] = top - v
			}
		}
	}
	return s
}

// resolveWindow clamps the configured window against the raster, or
// returns the full raster when none was set.
func resolveWindow(f *field.Field, o Options) (window, error) {
	if o.win == nil {
		return window{r0: 0, c0: 0, r1: f.Rows(), c1: f.Cols()}, nil
	}
	w := *o.win
	if w.r0 < 0 || w.c0 < 0 || w.r1 > f.Rows() || w.c1 > f.Cols() || w.r0 >= w.r1 || w.c0 >= w.c1 {
		return window{}, fmt.Errorf("%w: rows [%d,%d) cols [%d,%d) of %dx%d raster",
			ErrEmptyWindow, w.r0, w.r1, w.c0, w.c1, f.Rows(), f.Cols())
	}
	return w, nil
}

// accept runs stages 3 and 4 of Find on a prepared surface: collect
// window maxima above threshold, rank them, and suppress crowding.
func accept(f *field.Field, s []float64, win window, o Options, threshold float64) []field.Coord {
	d := o.MinDistance
	var cand []int
	for r := win.r0; r < win.r1; r++ {
		for c := win.c0; c < win.c1; c++ {
			idx := f.Index(r, c)
			v := s[idx]
			if v < threshold || math.IsInf(v, -1) {
				continue
			}
			if windowMax(f, s, win, r, c, d) <= v {
				cand = append(cand, idx)
			}
		}
	}

	sort.Slice(cand, func(i, j int) bool {
		a, b := cand[i], cand[j]
		if s[a] != s[b] {
			return s[a] > s[b]
		}
		return a < b
	})

	out := make([]field.Coord, 0, len(cand))
	for _, idx := range cand {
		r, c := f.Coord(idx)
		p := field.Coord{Row: r, Col: c}
		crowded := false
		for _, q := range out {
			if chebyshev(p, q) <= d {
				crowded = true
				break
			}
		}
		if !crowded {
			out = append(out, p)
		}
	}
	return out
}

// windowMax returns the largest surface value in the (2d+1)² window
// around (r,c), clipped to the search window and excluding (r,c).
func windowMax(f *field.Field, s []float64, win window, r, c, d int) float64 {
	top := math.Inf(-1)
	for nr := max(r-d, win.r0); nr <= min(r+d, win.r1-1); nr++ {
		for nc := max(c-d, win.c0); nc <= min(c+d, win.c1-1); nc++ {
			if nr == r && nc == c {
				continue
			}
			if v := s[f.Index(nr, nc)]; v > top {
				top = v
			}
		}
	}
	return top
}

// chebyshev is the L∞ distance between two raster coordinates.
func chebyshev(a, b field.Coord) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	if dr > dc {
		return dr
	}
	return dc
}
