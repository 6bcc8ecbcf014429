// Package peaks finds local extrema of a 2-D field with minimum-separation
// suppression, the seed-picking front end of magnetic-feature tracking.
//
// What:
//
//   - Find returns the coordinates of local maxima of a ranking surface,
//     strongest first: a candidate must equal the maximum of its
//     (2·MinDistance+1)² window and clear the magnitude threshold, and
//     accepted peaks are kept at least MinDistance+1 apart (Chebyshev).
//   - The ranking surface is chosen by polarity: the raw values, their
//     negation, or the absolute value (default), and may be inverted to
//     hunt minima instead.
//   - A search window restricts detection to a sub-rectangle, for chasing
//     extrema near a known tracked position.
//   - FindTwoTier unions moderate peaks with everything inside a strong
//     mask, the active-region recipe: fine structure where the field is
//     moderate plus dense coverage where it is strong.
//
// Why:
//
//   - Tracking seeds want one delegate per flux concentration, not every
//     bright pixel; window-maximum testing plus separation does that.
//   - Active regions saturate detectors; the two-tier union still paves
//     them with seeds while keeping quiet-region selectivity.
//
// Algorithm:
//
//	Candidates are pixels equal to their neighborhood maximum (the
//	dilate-and-compare trick, done directly on the raster). They are
//	ranked by surface value descending (row-major index breaking ties)
//	and accepted greedily, rejecting any candidate within MinDistance of
//	an earlier acceptance. The ordering is total, so results are
//	deterministic.
//
// Complexity:
//
//   - Find: O(n·d²) candidate scan + O(k²) suppression, n = rows×cols,
//     d = MinDistance, k = candidate count.
//
// Options:
//
//   - WithMinDistance(d): window radius and separation floor (default 1).
//   - WithThreshold(t):   magnitude floor on the ranking surface.
//   - WithPolarity(p):    Absolute (default), Positive, or Negative.
//   - WithWindow(r0,c0,r1,c1): restrict the search to [r0,r1)×[c0,c1).
//   - WithLocalMin():     invert the surface, so minima come out on top.
//
// Errors:
//
//   - ErrNilField:       nil field pointer.
//   - ErrOptionViolation: invalid option value (negative distance,
//     NaN threshold, inverted tier thresholds).
//   - ErrEmptyWindow:    search window empty or outside the raster.
package peaks
