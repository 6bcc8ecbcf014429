package field

import "fmt"

// Coord names one raster position by row and column.
// It is the coordinate currency shared by the segmentation packages.
type Coord struct {
	Row, Col int
}

// String implements fmt.Stringer as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}
