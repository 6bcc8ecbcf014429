package prep

import (
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/heliograph/fluxseg/field"
)

// Filter applies a spectral window to a square field.
//
// Stages:
//
//  1. Forward 2-D FFT, rows then columns.
//  2. Center the spectrum so the zero-frequency bin lands on
//     (n/2, n/2), where the windows are built.
//  3. Multiply by the window, element-wise.
//  4. Undo the centering and run the inverse 2-D FFT. The transform
//     pair is unnormalized, so each inverse pass divides by n; an
//     all-ones window therefore reproduces the input.
//  5. Keep the real part; the imaginary residue of a real input is
//     rounding noise.
//
// The input is never mutated.
func Filter(f, window *field.Field) (*field.Field, error) {
	if f == nil {
		return nil, ErrNilField
	}
	if window == nil {
		return nil, ErrNilWindow
	}
	n := f.Rows()
	if f.Cols() != n {
		return nil, fmt.Errorf("%w: %dx%d", ErrNotSquare, f.Rows(), f.Cols())
	}
	if window.Rows() != n || window.Cols() != n {
		return nil, fmt.Errorf("%w: field %dx%d vs window %dx%d",
			ErrShapeMismatch, n, n, window.Rows(), window.Cols())
	}

	spec := make([]complex128, n*n)
	for i, v := range f.Values() {
		spec[i] = complex(v, 0)
	}

	fft := fourier.NewCmplxFFT(n)
	rowIn := make([]complex128, n)
	colIn := make([]complex128, n)
	colOut := make([]complex128, n)

	// 1) Forward: rows, then columns.
	for r := 0; r < n; r++ {
		row := spec[r*n : (r+1)*n]
		copy(rowIn, row)
		fft.Coefficients(row, rowIn)
	}
	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			colIn[r] = spec[r*n+c]
		}
		fft.Coefficients(colOut, colIn)
		for r := 0; r < n; r++ {
			spec[r*n+c] = colOut[r]
		}
	}

	// 2) + 3) Center, multiply, uncenter.
	spec = rotate2(spec, n, (n+1)/2)
	for i, w := range window.Values() {
		spec[i] *= complex(w, 0)
	}
	spec = rotate2(spec, n, n/2)

	// 4) Inverse: columns, then rows, dividing by n per pass.
	scale := complex(float64(n), 0)
	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			colIn[r] = spec[r*n+c]
		}
		fft.Sequence(colOut, colIn)
		for r := 0; r < n; r++ {
			spec[r*n+c] = colOut[r] / scale
		}
	}
	for r := 0; r < n; r++ {
		row := spec[r*n : (r+1)*n]
		copy(rowIn, row)
		fft.Sequence(row, rowIn)
		for c := range row {
			row[c] /= scale
		}
	}

	// 5) Real part out.
	out, err := field.New(n, n)
	if err != nil {
		return nil, err
	}
	vals := out.Values()
	for i, v := range spec {
		vals[i] = real(v)
	}

	return out, nil
}

// rotate2 rotates a flat n×n spectrum by k bins along both axes:
// out[r][c] = in[(r+k)%n][(c+k)%n]. Rotating by ⌈n/2⌉ moves the
// zero-frequency bin to (n/2, n/2); rotating the result by ⌊n/2⌋
// moves it back.
func rotate2(spec []complex128, n, k int) []complex128 {
	out := make([]complex128, len(spec))
	for r := 0; r < n; r++ {
		sr := (r + k) % n
		for c := 0; c < n; c++ {
			out[r*n+c] = spec[sr*n+(c+k)%n]
		}
	}

	return out
}
