package carving

import "fmt"

// Point is a cell coordinate within an EnergyGrid.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Path is a seam: exactly one Point per row, ordered top to bottom, where the
// columns of adjacent rows differ by at most one.
type Path []Point

// Validate reports ErrInvalidSeam unless p is a seam of a width x height grid.
func (p Path) Validate(width, height int) error {
	if len(p) != height {
		return fmt.Errorf("%w: %d points for %d rows", ErrInvalidSeam, len(p), height)
	}
	for y, pt := range p {
		if pt.Y != y {
			return fmt.Errorf("%w: point %d has row %d", ErrInvalidSeam, y, pt.Y)
		}
		if pt.X < 0 || pt.X >= width {
			return fmt.Errorf("%w: column %d outside width %d at row %d", ErrInvalidSeam, pt.X, width, y)
		}
		if y > 0 {
			if d := pt.X - p[y-1].X; d < -1 || d > 1 {
				return fmt.Errorf("%w: rows %d and %d are %d columns apart", ErrInvalidSeam, y-1, y, d)
			}
		}
	}
	return nil
}

// Columns returns the column of each row, top to bottom.
func (p Path) Columns() []int {
	cols := make([]int, len(p))
	for i, pt := range p {
		cols[i] = pt.X
	}
	return cols
}
