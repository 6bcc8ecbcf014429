// Package watershed carves a thresholded field into basins around
// marker pixels, the region-growing half of marker-based tracking.
//
// What:
//
//   - Markers stamps tracked coordinates into a label raster (label
//     i+1 for seed i, negative coordinates skipped as lost targets).
//   - FromMarkers floods those labels outward by descending flux
//     magnitude over the pixels that clear the threshold, producing a
//     Segmentation: one basin per surviving marker, plus a boundary
//     mask where basins meet each other or the background.
//   - Merge folds the negative-polarity segmentation into the positive
//     one, offsetting its labels past the positive range and OR-ing
//     the boundary masks.
//
// Why:
//
//   - Seed labeling answers "where are the concentrations"; tracking
//     also needs "which pixels belong to which target" when
//     concentrations share a flux plateau. Flooding by descending
//     magnitude splits the plateau along the ridge between markers
//     instead of giving it wholesale to one of them.
//   - Both polarities are tracked independently; Merge restores a
//     single map for bookkeeping and display.
//
// Algorithm:
//
//	A priority flood: frontier pixels live in a max-heap keyed by flux
//	magnitude, ties broken by insertion order. Popping the strongest
//	frontier pixel and claiming its unclaimed 8-neighbors is exactly
//	watershed-by-flooding on the inverted surface, restricted to the
//	threshold mask. Each pixel enters the heap at most once.
//
// Complexity:
//
//   - FromMarkers: O(n log n) time, O(n) memory, n = rows×cols.
//   - Markers, Merge: O(n).
//
// Errors:
//
//   - ErrNilField, ErrNilMarkers, ErrNilSegmentation: nil inputs.
//   - ErrShapeMismatch:  rasters of different shapes (or a boundary
//     mask of the wrong length).
//   - ErrSeedOutOfBounds: marker seed beyond the raster.
//   - ErrOptionViolation: NaN or negative threshold.
package watershed
