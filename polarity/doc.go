// Package polarity segments a signed 2-D field into labeled regions of
// positive and negative flux by seeded descending labeling, the
// watershed-like flood fill at the heart of fluxseg.
//
// What
//
//   - Split clamps a raw field into two independent non-negative channels:
//     originally-positive magnitudes and sign-flipped negative magnitudes,
//     with NaN/Inf resolved to zero.
//   - Label visits pixels from the highest value down and grows regions
//     outward from local peaks: a pixel joins a neighbor's region only when
//     that neighbor's value is at least its own, so labels propagate along
//     monotonic descent; pixels below the threshold stay background.
//   - Detect runs the whole pipeline — sanitize, label both polarity
//     channels, finalize each into canonical size-filtered regions — and
//     returns the pair of label maps.
//   - DescentPath reconstructs the non-increasing path from a region's seed
//     to any of its pixels, the witness of the outward-descent invariant.
//
// Why
//
//   - Solar magnetograms resolve into same-sign flux concentrations; their
//     tracking needs each concentration named by one stable label.
//   - Descending-order growth keeps every region a basin of its own peak,
//     unlike plain equal-value flood fill.
//
// Algorithm (Label)
//
//	Sort all pixel indices by value, strictly descending, ties broken by
//	ascending row-major index. Walk that order; once a value drops below
//	the threshold the whole scan stops, since no later pixel can qualify.
//	Each visited pixel examines its 8 Moore neighbors in the fixed order
//	(-1,-1),(-1,0),(-1,1),(0,-1),(0,1),(1,-1),(1,0),(1,1): a neighbor
//	label may be copied only when the neighbor's value is ≥ the pixel's
//	own and its label is smaller than the pixel's current one (or the
//	pixel is still unlabeled). A pixel that ends the neighbor pass
//	unlabeled becomes a fresh seed. Single pass, no revisiting.
//
// Determinism
//
//	The rank order is a total order (value desc, index asc) and the
//	neighbor scan order is fixed, so identical inputs yield bit-identical
//	label maps. On plateaus of exactly equal value the current-label
//	comparison can produce labelings that depend on that order; they still
//	satisfy the descent invariant, and canonicalization in the finalizer
//	absorbs them.
//
// Concurrency
//
//	The two polarity channels share no mutable state and run concurrently
//	under a sync.WaitGroup inside Detect. Within one channel the labeling
//	pass is inherently sequential: each decision depends on labels already
//	assigned to higher-ranked pixels. No locks, no cancellation — the
//	computation is bounded and deterministic.
//
// Complexity (n = rows×cols)
//
//   - Split:   O(n) time and memory.
//   - Label:   O(n log n) time for the rank sort, O(n) memory.
//   - Detect:  O(n log n) time, two channels in parallel.
//
// Usage
//
//	res, err := polarity.Detect(f)
//	if err != nil {
//	    // handle ErrNilField or ErrOptionViolation
//	}
//	_ = res.Positive // finalized positive-polarity regions
//	_ = res.Negative // finalized negative-polarity regions
//
//	// Raw labeler output, custom threshold:
//	raw, err := polarity.Label(posChannel, 75)
//
// Options
//
//   - DefaultOptions(): threshold 50, minimum region size 6, regions-backed
//     finalizer.
//   - WithThreshold(t):      labeling floor (t ≥ 0).
//   - WithMinRegionSize(n):  pixel floor for finalized regions (n ≥ 0,
//     0 keeps every component).
//   - WithFinalizer(fin):    swap in a custom canonicalize+filter stage.
//   - WithoutFinalizer():    return raw labeler output unfinalized.
//
// Errors
//
//   - ErrNilField        if the input field pointer is nil.
//   - ErrNilLabelMap     if a label map argument is nil.
//   - ErrShapeMismatch   if a field and label map disagree on shape.
//   - ErrOptionViolation if an invalid Option was supplied.
//   - ErrUnlabeledPixel  if DescentPath starts on background.
//   - ErrNoDescent       if no non-increasing path to a seed exists
//     (the map is not a raw labeling of that field).
package polarity
