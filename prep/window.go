package prep

import (
	"fmt"
	"math"

	"github.com/heliograph/fluxseg/field"
)

// cutoffBin converts a spatial scale rc (pixels) into a spectral
// cutoff bin for an n×n raster: fc = round(n/rc). Scales outside
// (0, n] leave no usable bin and are rejected.
func cutoffBin(n int, rc float64) (float64, error) {
	if math.IsNaN(rc) || rc <= 0 {
		return 0, fmt.Errorf("%w: scale must be a positive number (%v)", ErrInvalidCutoff, rc)
	}
	fc := math.Round(float64(n) / rc)
	if fc < 1 {
		return 0, fmt.Errorf("%w: scale %v exceeds the %dx%d raster", ErrInvalidCutoff, rc, n, n)
	}

	return fc, nil
}

// highpassAt is the Hanning rise: 0 at DC, 1 from 2·fc outward.
func highpassAt(f, fc float64) float64 {
	if f >= 2*fc {
		return 1
	}

	return 0.5 - 0.5*math.Cos(math.Pi*f/(2*fc))
}

// lowpassAt is the Hanning fall: 1 at DC, 0 from 2·fc outward.
func lowpassAt(f, fc float64) float64 {
	if f >= 2*fc {
		return 0
	}

	return 0.5 + 0.5*math.Cos(math.Pi*f/(2*fc))
}

// build evaluates a radial profile over an n×n raster centered on the
// shifted zero-frequency bin (n/2, n/2).
func build(n int, profile func(f float64) float64) (*field.Field, error) {
	w, err := field.New(n, n)
	if err != nil {
		return nil, err
	}
	center := float64(n / 2)
	vals := w.Values()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			f := math.Hypot(float64(r)-center, float64(c)-center)
			vals[r*n+c] = profile(f)
		}
	}

	return w, nil
}

// HighPass builds an n×n window that suppresses structure broader than
// rc pixels: zero at the centered DC bin, rising along a Hanning
// profile to unity at twice the cutoff bin.
func HighPass(n int, rc float64) (*field.Field, error) {
	fc, err := cutoffBin(n, rc)
	if err != nil {
		return nil, err
	}

	return build(n, func(f float64) float64 { return highpassAt(f, fc) })
}

// LowPass builds an n×n window that suppresses structure finer than rc
// pixels: unity at the centered DC bin, falling along a Hanning
// profile to zero at twice the cutoff bin.
func LowPass(n int, rc float64) (*field.Field, error) {
	fc, err := cutoffBin(n, rc)
	if err != nil {
		return nil, err
	}

	return build(n, func(f float64) float64 { return lowpassAt(f, fc) })
}

// BandPass builds an n×n window keeping structure between two spatial
// scales: broader than rcFine, finer than rcCoarse. It is the product
// of the HighPass window at rcCoarse and the LowPass window at rcFine,
// so rcCoarse must be the larger scale.
func BandPass(n int, rcCoarse, rcFine float64) (*field.Field, error) {
	if !(rcCoarse > rcFine) {
		return nil, fmt.Errorf("%w: coarse scale %v must exceed fine scale %v",
			ErrInvalidCutoff, rcCoarse, rcFine)
	}
	fcCoarse, err := cutoffBin(n, rcCoarse)
	if err != nil {
		return nil, err
	}
	fcFine, err := cutoffBin(n, rcFine)
	if err != nil {
		return nil, err
	}

	return build(n, func(f float64) float64 {
		return highpassAt(f, fcCoarse) * lowpassAt(f, fcFine)
	})
}
