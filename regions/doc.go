// Package regions finalizes raw label maps into canonical, size-filtered
// polarity regions.
//
// What:
//
//   - Canonicalize recomputes connected components over any-label>0
//     foreground using 4-connectivity and relabels them densely 1..K,
//     discarding the original (possibly fragmented) region IDs.
//   - FilterBySize zeroes every component whose pixel count falls below a
//     floor; surviving labels keep their IDs, so gaps may remain.
//   - Sizes and Stats report per-label pixel counts, bounding boxes and
//     centroids.
//   - Finalize chains Canonicalize and FilterBySize; the Finalizer type
//     plugs the chain into the polarity detection pipeline.
//
// Why:
//
//   - The seeded descending labeler can split one 4-connected blob into
//     several 8-connectivity fragments, and its IDs are process-local;
//     canonical components give labels stable meaning.
//   - Single-pixel noise blips should not count toward region inventories;
//     a pixel-count floor removes them.
//
// Algorithm:
//
//	Canonicalize runs the classic two-pass scan: pass one assigns
//	provisional labels from the north/west neighbors and unions the two
//	when they disagree; pass two resolves every provisional label to its
//	union-find root and renumbers roots densely in row-major
//	first-encounter order, which makes the output deterministic regardless
//	of which element the union-find picks as representative.
//
// Complexity:
//
//   - Canonicalize: O(rows×cols α(rows×cols)) time, O(rows×cols) memory.
//   - FilterBySize / Sizes / Stats: O(rows×cols) time.
//
// Options: none — connectivity is fixed at 4 and background at 0 by the
// finalizer contract; callers needing 8-connectivity use the labeler itself.
//
// Errors:
//
//   - ErrNilLabelMap:   nil label map passed to any operation.
//   - ErrInvalidMinSize: negative pixel-count floor.
//
// See the polarity package for the pipeline that drives this one.
package regions
