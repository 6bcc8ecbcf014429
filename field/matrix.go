package field

import (
	"gonum.org/v1/gonum/mat"
)

// FromMatrix constructs a Field from any gonum mat.Matrix, copying its
// elements. Returns ErrNilMatrix for a nil matrix and ErrEmptyGrid for a
// matrix with zero rows or columns.
// Complexity: O(rows*cols).
func FromMatrix(m mat.Matrix) (*Field, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, ErrEmptyGrid
	}
	data := make([]float64, 0, r*c)
	for row := 0; row < r; row++ {
		for col := 0; col < c; col++ {
			data = append(data, m.At(row, col))
		}
	}

	return &Field{r: r, c: c, data: data}, nil
}

// Matrix returns the raster as a gonum *mat.Dense backed by a copy of the
// data, so gonum operations cannot mutate the Field.
// Complexity: O(rows*cols).
func (f *Field) Matrix() *mat.Dense {
	copyData := make([]float64, len(f.data))
	copy(copyData, f.data)

	return mat.NewDense(f.r, f.c, copyData)
}
