package carving

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/disintegration/imaging"
	"gonum.org/v1/gonum/floats"
)

// parallelThreshold is the cell count above which the energy pass is split
// across goroutines.
const parallelThreshold = 1 << 14

// Cell is the per-pixel state of an EnergyGrid.
//
// PathEnergy is derived data: the cost of the cheapest 8-connected path from the
// top row to this cell, valid only after a recompute.
type Cell struct {
	Pixel      Pixel
	Energy     float64
	PathEnergy float64
}

// EnergyGrid is a dense row-major grid of cells built from an image.
//
// Cells live in one contiguous slice. Each row occupies stride slots of which
// the first width are in use, so inserting a seam only reallocates once the
// spare slots at the end of the rows run out.
type EnergyGrid struct {
	cells  []Cell
	width  int
	height int
	stride int
}

// FromImage builds an EnergyGrid with one cell per pixel of img and computes
// every energy and path energy.
//
// Returns ErrEmptyImage if img has zero width or height.
func FromImage(img image.Image) (*EnergyGrid, error) {
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyImage, bounds.Dx(), bounds.Dy())
	}

	src, ok := img.(*image.NRGBA)
	if !ok {
		src = imaging.Clone(img)
		bounds = src.Bounds()
	}

	width, height := bounds.Dx(), bounds.Dy()
	g := &EnergyGrid{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
		stride: width,
	}
	for y := 0; y < height; y++ {
		row := g.row(y)
		off := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		for x := range row {
			row[x].Pixel = pixelAt(src.Pix, off+x*4)
		}
	}

	g.Recompute()
	return g, nil
}

// Width returns the number of columns.
func (g *EnergyGrid) Width() int { return g.width }

// Height returns the number of rows.
func (g *EnergyGrid) Height() int { return g.height }

// At returns the cell at column x, row y. It panics if (x, y) is out of range.
func (g *EnergyGrid) At(x, y int) Cell {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		panic(fmt.Sprintf("carving: cell (%d,%d) outside %dx%d grid", x, y, g.width, g.height))
	}
	return g.cells[y*g.stride+x]
}

// Energy returns the energy of the cell at (x, y).
func (g *EnergyGrid) Energy(x, y int) float64 { return g.At(x, y).Energy }

// PathEnergy returns the cumulative path energy of the cell at (x, y).
func (g *EnergyGrid) PathEnergy(x, y int) float64 { return g.At(x, y).PathEnergy }

// row returns the in-use cells of row y.
func (g *EnergyGrid) row(y int) []Cell {
	start := y * g.stride
	return g.cells[start : start+g.width : start+g.width]
}

// Recompute recalculates the energy of every cell and then the path energy row
// by row from the top.
func (g *EnergyGrid) Recompute() {
	if g.width*g.height < parallelThreshold {
		g.computeEnergy(0, g.height)
	} else {
		parallel.Line(g.height, g.computeEnergy)
	}
	g.computePathEnergy()
}

// computeEnergy fills the dual-gradient energy of rows [start, end). Rows are
// independent: a row only reads pixels, never energies, of its neighbors.
func (g *EnergyGrid) computeEnergy(start, end int) {
	for y := start; y < end; y++ {
		row := g.row(y)
		up := g.row(max(y-1, 0))
		down := g.row(min(y+1, g.height-1))
		for x := range row {
			left := row[max(x-1, 0)].Pixel
			right := row[min(x+1, g.width-1)].Pixel
			row[x].Energy = left.Gradient(right) + up[x].Pixel.Gradient(down[x].Pixel)
		}
	}
}

func (g *EnergyGrid) computePathEnergy() {
	first := g.row(0)
	for x := range first {
		first[x].PathEnergy = first[x].Energy
	}

	for y := 1; y < g.height; y++ {
		prev, row := g.row(y-1), g.row(y)
		for x := range row {
			best := prev[x].PathEnergy
			if x > 0 && prev[x-1].PathEnergy < best {
				best = prev[x-1].PathEnergy
			}
			if x+1 < g.width && prev[x+1].PathEnergy < best {
				best = prev[x+1].PathEnergy
			}
			row[x].PathEnergy = row[x].Energy + best
		}
	}
}

// FindPath returns the seam of globally minimum cumulative energy and its cost.
//
// The seam ends at the leftmost minimum of the bottom row. Walking upward, each
// step prefers the cell straight above, then the upper-left, then the
// upper-right neighbor, taking the first one with the smallest path energy.
// The returned cost equals the minimum path energy of the bottom row.
func (g *EnergyGrid) FindPath() (Path, float64, error) {
	if g.width == 0 || g.height == 0 {
		return nil, 0, ErrGridTooSmall
	}

	bottom := g.row(g.height - 1)
	totals := make([]float64, len(bottom))
	for x, c := range bottom {
		totals[x] = c.PathEnergy
	}
	x := floats.MinIdx(totals)
	cost := totals[x]

	path := make(Path, g.height)
	path[g.height-1] = Point{X: x, Y: g.height - 1}
	for y := g.height - 1; y > 0; y-- {
		prev := g.row(y - 1)
		best := x
		if x > 0 && prev[x-1].PathEnergy < prev[best].PathEnergy {
			best = x - 1
		}
		if x+1 < g.width && prev[x+1].PathEnergy < prev[best].PathEnergy {
			best = x + 1
		}
		x = best
		path[y-1] = Point{X: x, Y: y - 1}
	}

	return path, cost, nil
}
