package carving

// RotateClockwise turns the grid a quarter turn clockwise: the former left
// column becomes the top row. Width and height swap and the grid is
// recomputed in its new orientation.
func (g *EnergyGrid) RotateClockwise() {
	w, h := g.width, g.height
	cells := make([]Cell, w*h)
	for ny := 0; ny < w; ny++ {
		for nx := 0; nx < h; nx++ {
			cells[ny*h+nx] = g.cells[(h-1-nx)*g.stride+ny]
		}
	}
	g.cells, g.width, g.height, g.stride = cells, h, w, h
	g.Recompute()
}

// RotateCounterClockwise undoes RotateClockwise.
func (g *EnergyGrid) RotateCounterClockwise() {
	w, h := g.width, g.height
	cells := make([]Cell, w*h)
	for ny := 0; ny < w; ny++ {
		for nx := 0; nx < h; nx++ {
			cells[ny*h+nx] = g.cells[nx*g.stride+(w-1-ny)]
		}
	}
	g.cells, g.width, g.height, g.stride = cells, h, w, h
	g.Recompute()
}
