// Package fluxseg segments scalar 2-D fields — solar magnetograms first of
// all — into labeled polarity regions: connected patches of same-sign flux
// grown outward from local peaks by monotonic descent.
//
// 🚀 What is fluxseg?
//
//	A pure-Go segmentation toolkit that brings together:
//		• Rasters: Field (float64) & LabelMap (uint32) with gonum interop
//		• Polarity splitting: clamp a signed field into two magnitude channels
//		• Seeded descending labeling: watershed-like flood fill from peaks
//		• Region finalizing: canonical 4-connected components + size pruning
//		• Peak finding: local extrema with minimum-separation suppression
//		• Marker watershed: priority-flood basins + polarity-map merging
//		• Preparation: surface normalization & Hanning-window FFT filters
//
// ✨ Why choose fluxseg?
//
//   - Deterministic – identical input yields bit-identical label maps
//   - Library-first – no I/O, no CLI, no wire formats; call it from your code
//   - Pure Go – no cgo; gonum and union-find do the heavy lifting
//   - Composable – the finalizer is a pluggable seam, swap in your own
//
// Under the hood, everything is organized under six subpackages:
//
//	field/     — Field & LabelMap rasters, statistics, gonum mat interop
//	polarity/  — Split, Label (the core), Detect pipeline & options
//	regions/   — canonicalize, size filtering, per-region statistics
//	peaks/     — local extrema detection, two-tier active-region variant
//	watershed/ — marker maps, priority-flood segmentation, polarity merge
//	prep/      — surface transform, FFT band filters, radial averaging
//
// Quick ASCII example:
//
//	     0   0   0   0   0
//	     0  60  70  60   0
//	     0  70 100  70   0        one peak, threshold 50
//	     0  60  70  60   0   →    one region of nine pixels
//	     0   0   0   0   0
//
//	values ≥ threshold flood outward from the peak into a single label.
//
// Next up: drive Detect for the whole pipeline, or compose Split, Label and
// regions.Finalize by hand when you need to observe the raw labeling.
//
//	go get github.com/heliograph/fluxseg
package fluxseg
