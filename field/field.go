// Package field provides core raster primitives for array-based segmentation.
// Field is a concrete, row-major float64 raster, storing elements in a flat
// slice for performance and cache friendliness.
package field

import (
	"fmt"
	"strings"
)

// fieldErrorf wraps an underlying error with Field method context.
func fieldErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Field.%s(%d,%d): %w", method, row, col, err)
}

// Field is a row-major raster of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Field struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// New creates a rows×cols Field initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Field or ErrInvalidDimensions.
// Complexity: O(rows*cols) time and memory.
func New(rows, cols int) (*Field, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate flat slice
	data := make([]float64, rows*cols)

	// Return initialized Field
	return &Field{r: rows, c: cols, data: data}, nil
}

// FromRows constructs a Field from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(rows*cols) time and memory.
func FromRows(rows [][]float64) (*Field, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	r, c := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != c {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	data := make([]float64, 0, r*c)
	for _, row := range rows {
		data = append(data, row...)
	}

	return &Field{r: r, c: c, data: data}, nil
}

// Rows returns the number of rows in the raster.
// Complexity: O(1).
func (f *Field) Rows() int {
	return f.r
}

// Cols returns the number of columns in the raster.
// Complexity: O(1).
func (f *Field) Cols() int {
	return f.c
}

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
// Complexity: O(1).
func (f *Field) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= f.r || col < 0 || col >= f.c {
		return 0, fieldErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return row*f.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (f *Field) At(row, col int) (float64, error) {
	idx, err := f.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return f.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (f *Field) Set(row, col int, v float64) error {
	idx, err := f.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	f.data[idx] = v

	return nil
}

// InBounds reports whether (row, col) lies within the raster boundaries.
// Complexity: O(1).
func (f *Field) InBounds(row, col int) bool {
	return row >= 0 && row < f.r && col >= 0 && col < f.c
}

// Index maps (row, col) to a row-major index: row*Cols + col.
// No bounds check is performed; callers iterate within known shape.
// Complexity: O(1).
func (f *Field) Index(row, col int) int {
	return row*f.c + col
}

// Coord converts a row-major index back to (row, col).
// Complexity: O(1).
func (f *Field) Coord(idx int) (row, col int) {
	return idx / f.c, idx % f.c
}

// Values returns the flat row-major backing slice.
// The slice aliases the Field; mutating it mutates the raster.
// Complexity: O(1).
func (f *Field) Values() []float64 {
	return f.data
}

// Clone returns a deep copy of the Field.
// Complexity: O(rows*cols) time and memory.
func (f *Field) Clone() *Field {
	copyData := make([]float64, len(f.data))
	copy(copyData, f.data)

	return &Field{r: f.r, c: f.c, data: copyData}
}

// String implements fmt.Stringer for easy debugging.
// Rows are rendered top to bottom, values space-separated.
func (f *Field) String() string {
	var sb strings.Builder
	for row := 0; row < f.r; row++ {
		for col := 0; col < f.c; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%g", f.data[row*f.c+col])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
