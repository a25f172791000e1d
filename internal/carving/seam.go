package carving

import "fmt"

// RemoveSeam deletes the cell at path[y].X from every row y, shifting the cells
// to its right one column left, and recomputes the grid.
//
// Returns ErrDimensionExhausted when the grid is a single column wide and
// ErrInvalidSeam when path is not a seam of this grid. The grid is unchanged on
// error.
func (g *EnergyGrid) RemoveSeam(path Path) error {
	if g.width <= 1 {
		return fmt.Errorf("%w: cannot remove a seam from width %d", ErrDimensionExhausted, g.width)
	}
	if err := path.Validate(g.width, g.height); err != nil {
		return err
	}

	for _, p := range path {
		row := g.row(p.Y)
		copy(row[p.X:], row[p.X+1:])
	}
	g.width--

	g.Recompute()
	return nil
}

// AddSeam inserts a cell immediately after path[y].X in every row y and
// recomputes the grid. The new cell's pixel is the average of the seam pixel
// and its right neighbor, or of the seam pixel with itself at the right border.
//
// Returns ErrInvalidSeam when path is not a seam of this grid.
func (g *EnergyGrid) AddSeam(path Path) error {
	if err := path.Validate(g.width, g.height); err != nil {
		return err
	}
	if g.width == g.stride {
		g.grow(g.width + growth(g.width))
	}

	for _, p := range path {
		start := p.Y * g.stride
		row := g.cells[start : start+g.width+1]
		right := row[min(p.X+1, g.width-1)].Pixel
		inserted := row[p.X].Pixel.Average(right)
		copy(row[p.X+2:], row[p.X+1:g.width])
		row[p.X+1] = Cell{Pixel: inserted}
	}
	g.width++

	g.Recompute()
	return nil
}

// grow moves the cells into a buffer whose rows are stride slots long.
func (g *EnergyGrid) grow(stride int) {
	cells := make([]Cell, stride*g.height)
	for y := 0; y < g.height; y++ {
		copy(cells[y*stride:], g.row(y))
	}
	g.cells = cells
	g.stride = stride
}

// growth is the number of spare slots added per row when a buffer fills up.
func growth(width int) int {
	return max(width/8, 8)
}
