package prep

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/heliograph/fluxseg/field"
)

// Surface turns a raw magnetogram into the climbing surface the
// trackers run on:
//
//  1. s = √|v| compresses the flux dynamics, non-finite samples count
//     as zero flux;
//  2. s = max(s) − s inverts the relief, so concentrations become the
//     low ground a flood settles into;
//  3. s = (s − mean)/σ standardizes to zero mean and unit spread
//     (population σ).
//
// The input is never mutated. A field with zero spread after the first
// two steps cannot be standardized and yields ErrConstantField.
func Surface(f *field.Field) (*field.Field, error) {
	if f == nil {
		return nil, ErrNilField
	}

	out := f.Clone()
	s := out.Values()
	for i, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			s[i] = 0
			continue
		}
		s[i] = math.Sqrt(math.Abs(v))
	}

	top := floats.Max(s)
	for i, v := range s {
		s[i] = top - v
	}

	mean := stat.Mean(s, nil)
	sigma := stat.PopStdDev(s, nil)
	if sigma == 0 {
		return nil, ErrConstantField
	}
	for i, v := range s {
		s[i] = (v - mean) / sigma
	}

	return out, nil
}
