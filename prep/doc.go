// Package prep conditions raw magnetograms for segmentation: an
// intensity transform that equalizes bright and faint flux, radial
// Hanning windows, and an FFT band filter to strip large-scale trends
// and pixel noise.
//
// What:
//
//   - Surface compresses flux dynamics (square root of |v|), inverts
//     the relief so concentrations become basins of a climbing surface,
//     and standardizes to zero mean and unit spread.
//   - HighPass, LowPass and BandPass build n×n radial Hanning windows
//     in centered spectral coordinates; a cutoff is given as a spatial
//     scale in pixels, so BandPass(n, 50, 2) keeps structure between
//     50-pixel trends and 2-pixel noise.
//   - Filter applies a window to a square field: forward FFT, center
//     the spectrum, multiply, undo the centering, inverse FFT, real
//     part out.
//   - RadialAverage collapses a centered spectrum (or any square
//     raster) into per-ring means, the 1-D spectral profile used to
//     eyeball cutoffs.
//
// Why:
//
//   - Magnetogram dynamics span four orders of magnitude; detection
//     thresholds behave only after the square-root compression.
//   - Limb gradients and detector noise both masquerade as flux; a
//     band-pass with smooth Hanning rolloffs removes them without the
//     ringing a brick-wall filter would add.
//
// Conventions:
//
//	Spectra are centered the way fftshift centers them: the
//	zero-frequency bin sits at (n/2, n/2) (integer division), and
//	windows are built around that pixel. Transforms are normalized so
//	that an all-ones window reproduces the input.
//
// Complexity:
//
//   - Surface, windows, RadialAverage: O(n²).
//   - Filter: O(n² log n).
//
// Errors:
//
//   - ErrNilField, ErrNilWindow: nil inputs.
//   - ErrNotSquare:      the FFT path handles square rasters only.
//   - ErrShapeMismatch:  window and field of different shapes.
//   - ErrConstantField:  Surface cannot standardize zero spread.
//   - ErrInvalidCutoff:  cutoff scale not in (0, n] or inverted band.
package prep
