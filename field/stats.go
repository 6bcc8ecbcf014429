package field

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Min returns the smallest value in the raster.
// Complexity: O(rows*cols).
func (f *Field) Min() float64 {
	return floats.Min(f.data)
}

// Max returns the largest value in the raster.
// Complexity: O(rows*cols).
func (f *Field) Max() float64 {
	return floats.Max(f.data)
}

// Sum returns the sum of all raster values.
// Complexity: O(rows*cols).
func (f *Field) Sum() float64 {
	return floats.Sum(f.data)
}

// Mean returns the arithmetic mean of all raster values.
// Complexity: O(rows*cols).
func (f *Field) Mean() float64 {
	return stat.Mean(f.data, nil)
}

// Std returns the population standard deviation of all raster values.
// Population (not sample) variance matches the convention of raster
// standardization in the prep package.
// Complexity: O(rows*cols).
func (f *Field) Std() float64 {
	return stat.PopStdDev(f.data, nil)
}

// AbsMax returns the largest absolute value in the raster.
// Useful for picking display scales and polarity-agnostic thresholds.
// Complexity: O(rows*cols).
func (f *Field) AbsMax() float64 {
	var max float64
	for _, v := range f.data {
		a := v
		if a < 0 {
			a = -a
		}
		if a > max {
			max = a
		}
	}

	return max
}
