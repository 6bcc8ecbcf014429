// Package field provides the raster primitives every fluxseg algorithm
// consumes: Field, a rectangular float64 grid, and LabelMap, its uint32
// labeling counterpart.
//
// What:
//
//   - Field wraps a rows×cols float64 raster in a flat, row-major backing
//     slice for cache-friendly scans.
//   - LabelMap is the same layout over uint32 region identifiers, where 0
//     means background and values ≥ 1 name regions.
//   - Constructors validate shape and deep-copy input; both types expose
//     bounds-checked At/Set plus raw Values/Labels access for hot loops.
//   - Statistics (Min, Max, Sum, Mean, Std) are computed via gonum.
//   - FromMatrix and Field.Matrix bridge to gonum/mat for linear algebra.
//
// Why:
//
//   - Magnetogram pipelines pass the same raster through many stages; a
//     single, owned representation keeps aliasing rules explicit.
//   - Flat row-major storage makes the descending-rank scan of the labeler
//     a linear walk, and index↔coordinate mapping trivial.
//
// Complexity:
//
//   - New / FromRows / Clone:       O(rows×cols) time and memory.
//   - At / Set / InBounds / Index:  O(1).
//   - Min / Max / Sum / Mean / Std: O(rows×cols).
//
// Errors:
//
//   - ErrInvalidDimensions: requested dimensions are not positive.
//   - ErrEmptyGrid:         input slice has no rows or no columns.
//   - ErrNonRectangular:    rows have differing lengths.
//   - ErrIndexOutOfBounds:  row or column index outside the raster.
//   - ErrNilMatrix:         nil gonum matrix passed to FromMatrix.
//
// Values and Labels return the backing slice itself, not a copy; callers
// that mutate it mutate the raster. Clone first when ownership is shared.
package field
