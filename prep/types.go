// Package prep defines sentinel errors for magnetogram preprocessing.
package prep

import "errors"

var (
	// ErrNilField is returned when the input field pointer is nil.
	ErrNilField = errors.New("prep: nil field")

	// ErrNilWindow is returned by Filter when the window pointer is nil.
	ErrNilWindow = errors.New("prep: nil window")

	// ErrNotSquare is returned by the FFT path for a non-square raster.
	ErrNotSquare = errors.New("prep: raster is not square")

	// ErrShapeMismatch is returned when the window shape does not match
	// the field.
	ErrShapeMismatch = errors.New("prep: shape mismatch")

	// ErrConstantField is returned by Surface when the relief has zero
	// spread and cannot be standardized.
	ErrConstantField = errors.New("prep: constant field")

	// ErrInvalidCutoff is returned for a cutoff scale outside (0, n]
	// or a band with its coarse scale at or inside its fine scale.
	ErrInvalidCutoff = errors.New("prep: invalid cutoff")
)
