package field_test

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/heliograph/fluxseg/field"
)

// TestFromMatrix verifies element copy from a gonum matrix.
func TestFromMatrix(t *testing.T) {
	d := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	f, err := field.FromMatrix(d)
	if err != nil {
		t.Fatalf("FromMatrix error: %v", err)
	}
	if f.Rows() != 2 || f.Cols() != 3 {
		t.Fatalf("shape = %d×%d; want 2×3", f.Rows(), f.Cols())
	}
	got, _ := f.At(1, 2)
	if got != 6 {
		t.Errorf("At(1,2) = %v; want 6", got)
	}

	// Mutating the source matrix must not reach the Field.
	d.Set(0, 0, 99)
	got, _ = f.At(0, 0)
	if got != 1 {
		t.Errorf("At(0,0) = %v after source mutation; want 1", got)
	}
}

// TestFromMatrix_Nil verifies the nil sentinel.
func TestFromMatrix_Nil(t *testing.T) {
	if _, err := field.FromMatrix(nil); !errors.Is(err, field.ErrNilMatrix) {
		t.Errorf("FromMatrix(nil) error = %v; want ErrNilMatrix", err)
	}
}

// TestMatrixRoundTrip verifies Field → Dense → Field preserves values and
// that the returned Dense is backed by a copy.
func TestMatrixRoundTrip(t *testing.T) {
	f, err := field.FromRows([][]float64{{1, -2}, {0.5, 4}})
	if err != nil {
		t.Fatalf("FromRows error: %v", err)
	}
	d := f.Matrix()
	back, err := field.FromMatrix(d)
	if err != nil {
		t.Fatalf("FromMatrix error: %v", err)
	}
	for row := 0; row < 2; row++ {
		for col := 0; col < 2; col++ {
			a, _ := f.At(row, col)
			b, _ := back.At(row, col)
			if a != b {
				t.Errorf("round-trip mismatch at (%d,%d): %v != %v", row, col, a, b)
			}
		}
	}

	d.Set(1, 1, 99)
	got, _ := f.At(1, 1)
	if got != 4 {
		t.Errorf("At(1,1) = %v after Dense mutation; want 4", got)
	}
}
