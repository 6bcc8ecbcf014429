package field_test

import (
	"errors"
	"testing"

	"github.com/heliograph/fluxseg/field"
)

//----------------------------------------------------------------------------//
// Constructor Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects non-positive dimensions.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"ZeroRows", 0, 3},
		{"ZeroCols", 3, 0},
		{"NegativeRows", -1, 3},
		{"NegativeCols", 3, -2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := field.New(tc.rows, tc.cols)
			if !errors.Is(err, field.ErrInvalidDimensions) {
				t.Errorf("New(%d,%d) error = %v; want ErrInvalidDimensions", tc.rows, tc.cols, err)
			}
		})
	}
}

// TestNew_Zeroed verifies a fresh Field starts at all zeros.
func TestNew_Zeroed(t *testing.T) {
	f, err := field.New(2, 3)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if f.Rows() != 2 || f.Cols() != 3 {
		t.Fatalf("shape = %d×%d; want 2×3", f.Rows(), f.Cols())
	}
	for _, v := range f.Values() {
		if v != 0 {
			t.Fatalf("fresh field contains %v; want all zeros", v)
		}
	}
}

// TestFromRows_Errors verifies that FromRows rejects empty or ragged inputs.
func TestFromRows_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		err  error
	}{
		{"EmptyRows", [][]float64{}, field.ErrEmptyGrid},
		{"EmptyCols", [][]float64{{}}, field.ErrEmptyGrid},
		{"NonRectangular", [][]float64{{1, 2}, {3}}, field.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := field.FromRows(tc.rows)
			if !errors.Is(err, tc.err) {
				t.Errorf("FromRows(%v) error = %v; want %v", tc.rows, err, tc.err)
			}
		})
	}
}

// TestFromRows_DeepCopy verifies the constructor copies rather than aliases.
func TestFromRows_DeepCopy(t *testing.T) {
	rows := [][]float64{
		{1, 2},
		{3, 4},
	}
	f, err := field.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows error: %v", err)
	}
	rows[0][0] = 99
	got, err := f.At(0, 0)
	if err != nil {
		t.Fatalf("At error: %v", err)
	}
	if got != 1 {
		t.Errorf("At(0,0) = %v after input mutation; want 1", got)
	}
}

//----------------------------------------------------------------------------//
// Accessor Tests
//----------------------------------------------------------------------------//

// TestAtSet verifies round-trip reads/writes and out-of-bounds errors.
func TestAtSet(t *testing.T) {
	f, err := field.New(2, 2)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if err = f.Set(1, 0, 7.5); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	got, err := f.At(1, 0)
	if err != nil {
		t.Fatalf("At error: %v", err)
	}
	if got != 7.5 {
		t.Errorf("At(1,0) = %v; want 7.5", got)
	}

	oob := [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}}
	for _, rc := range oob {
		if _, err = f.At(rc[0], rc[1]); !errors.Is(err, field.ErrIndexOutOfBounds) {
			t.Errorf("At(%d,%d) error = %v; want ErrIndexOutOfBounds", rc[0], rc[1], err)
		}
		if err = f.Set(rc[0], rc[1], 1); !errors.Is(err, field.ErrIndexOutOfBounds) {
			t.Errorf("Set(%d,%d) error = %v; want ErrIndexOutOfBounds", rc[0], rc[1], err)
		}
	}
}

// TestInBounds checks InBounds on a 2×3 raster.
func TestInBounds(t *testing.T) {
	f, err := field.New(2, 3)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	valid := [][2]int{{0, 0}, {1, 2}, {0, 2}}
	for _, rc := range valid {
		if !f.InBounds(rc[0], rc[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", rc[0], rc[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {2, 0}, {0, 3}, {1, -1}}
	for _, rc := range invalid {
		if f.InBounds(rc[0], rc[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", rc[0], rc[1])
		}
	}
}

// TestIndexCoord verifies index↔coordinate round-trips in row-major order.
func TestIndexCoord(t *testing.T) {
	f, err := field.New(3, 4)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	next := 0
	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			idx := f.Index(row, col)
			if idx != next {
				t.Fatalf("Index(%d,%d) = %d; want %d", row, col, idx, next)
			}
			r, c := f.Coord(idx)
			if r != row || c != col {
				t.Fatalf("Coord(%d) = (%d,%d); want (%d,%d)", idx, r, c, row, col)
			}
			next++
		}
	}
}

// TestClone_Independent verifies Clone yields an independent copy.
func TestClone_Independent(t *testing.T) {
	f, err := field.FromRows([][]float64{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatalf("FromRows error: %v", err)
	}
	cl := f.Clone()
	if err = cl.Set(0, 0, 42); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	orig, _ := f.At(0, 0)
	if orig != 1 {
		t.Errorf("original mutated through clone: At(0,0) = %v; want 1", orig)
	}
}

// TestString renders a small raster.
func TestString(t *testing.T) {
	f, err := field.FromRows([][]float64{{1, 2.5}, {-3, 0}})
	if err != nil {
		t.Fatalf("FromRows error: %v", err)
	}
	want := "1 2.5\n-3 0\n"
	if got := f.String(); got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}
