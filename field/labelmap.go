package field

import (
	"fmt"
	"strings"
)

// LabelMap is a row-major raster of uint32 region identifiers.
// 0 means unlabeled/background; values ≥ 1 name regions.
// Layout mirrors Field so the two can share coordinates and indices.
type LabelMap struct {
	r, c int
	data []uint32
}

// NewLabelMap creates a rows×cols LabelMap initialized to background (0).
// Returns ErrInvalidDimensions if rows or cols is not positive.
// Complexity: O(rows*cols) time and memory.
func NewLabelMap(rows, cols int) (*LabelMap, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &LabelMap{r: rows, c: cols, data: make([]uint32, rows*cols)}, nil
}

// LabelMapFromRows constructs a LabelMap from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid or ErrNonRectangular on malformed input.
// Complexity: O(rows*cols) time and memory.
func LabelMapFromRows(rows [][]uint32) (*LabelMap, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	r, c := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != c {
			return nil, ErrNonRectangular
		}
	}
	data := make([]uint32, 0, r*c)
	for _, row := range rows {
		data = append(data, row...)
	}

	return &LabelMap{r: r, c: c, data: data}, nil
}

// Rows returns the number of rows in the map.
func (m *LabelMap) Rows() int { return m.r }

// Cols returns the number of columns in the map.
func (m *LabelMap) Cols() int { return m.c }

// At retrieves the label at (row, col).
func (m *LabelMap) At(row, col int) (uint32, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("LabelMap.At(%d,%d): %w", row, col, ErrIndexOutOfBounds)
	}

	return m.data[row*m.c+col], nil
}

// Set assigns label v at (row, col).
func (m *LabelMap) Set(row, col int, v uint32) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return fmt.Errorf("LabelMap.Set(%d,%d): %w", row, col, ErrIndexOutOfBounds)
	}
	m.data[row*m.c+col] = v

	return nil
}

// InBounds reports whether (row, col) lies within the map boundaries.
func (m *LabelMap) InBounds(row, col int) bool {
	return row >= 0 && row < m.r && col >= 0 && col < m.c
}

// Index maps (row, col) to a row-major index: row*Cols + col.
func (m *LabelMap) Index(row, col int) int {
	return row*m.c + col
}

// Coord converts a row-major index back to (row, col).
func (m *LabelMap) Coord(idx int) (row, col int) {
	return idx / m.c, idx % m.c
}

// Labels returns the flat row-major backing slice.
// The slice aliases the LabelMap; mutating it mutates the map.
func (m *LabelMap) Labels() []uint32 {
	return m.data
}

// MaxLabel returns the largest label present, or 0 for an all-background map.
// Complexity: O(rows*cols).
func (m *LabelMap) MaxLabel() uint32 {
	var max uint32
	for _, l := range m.data {
		if l > max {
			max = l
		}
	}

	return max
}

// Clone returns a deep copy of the LabelMap.
// Complexity: O(rows*cols) time and memory.
func (m *LabelMap) Clone() *LabelMap {
	copyData := make([]uint32, len(m.data))
	copy(copyData, m.data)

	return &LabelMap{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer for easy debugging.
func (m *LabelMap) String() string {
	var sb strings.Builder
	for row := 0; row < m.r; row++ {
		for col := 0; col < m.c; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", m.data[row*m.c+col])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
