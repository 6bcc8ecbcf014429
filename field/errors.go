package field

import "errors"

var (
	// ErrInvalidDimensions indicates that requested raster dimensions are non-positive.
	ErrInvalidDimensions = errors.New("field: dimensions must be > 0")
	// ErrEmptyGrid indicates the input 2D slice has no rows or no columns.
	ErrEmptyGrid = errors.New("field: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("field: all rows must have the same length")
	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("field: index out of bounds")
	// ErrNilMatrix indicates a nil gonum matrix was passed to FromMatrix.
	ErrNilMatrix = errors.New("field: matrix is nil")
)
