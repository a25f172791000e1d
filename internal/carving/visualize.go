package carving

import (
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/floats"
)

// Palette selects how EnergyImage renders energy values.
type Palette int

const (
	// PaletteGray renders energy as a single-channel *image.Gray.
	PaletteGray Palette = iota
	// PaletteHeat renders energy on a blue (low) to red (high) ramp.
	PaletteHeat
)

// ParsePalette maps "gray" or "heat" (any case) to a Palette. Anything else
// yields PaletteGray.
func ParsePalette(name string) Palette {
	if strings.EqualFold(strings.TrimSpace(name), "heat") {
		return PaletteHeat
	}
	return PaletteGray
}

func (p Palette) String() string {
	if p == PaletteHeat {
		return "heat"
	}
	return "gray"
}

// EnergyImage renders the current energy of every cell as an image the size of
// the grid.
//
// Levels are normalized by the largest energy and passed through a square root
// so the few very strong edges do not flatten everything else to black. The
// output is meant for inspection and does not preserve energy units. A grid
// with no energy anywhere renders fully dark.
func (g *EnergyGrid) EnergyImage(p Palette) image.Image {
	energies := make([]float64, 0, g.width*g.height)
	for y := 0; y < g.height; y++ {
		for _, c := range g.row(y) {
			energies = append(energies, c.Energy)
		}
	}
	peak := floats.Max(energies)

	level := func(i int) float64 {
		if peak <= 0 {
			return 0
		}
		return math.Sqrt(energies[i] / peak)
	}

	rect := image.Rect(0, 0, g.width, g.height)
	if p == PaletteHeat {
		out := image.NewNRGBA(rect)
		for i := range energies {
			t := level(i)
			r, gr, b := colorful.Hsv(240*(1-t), 1, 0.2+0.8*t).Clamped().RGB255()
			out.SetNRGBA(i%g.width, i/g.width, color.NRGBA{R: r, G: gr, B: b, A: 255})
		}
		return out
	}

	out := image.NewGray(rect)
	for i := range energies {
		out.Pix[(i/g.width)*out.Stride+i%g.width] = uint8(math.Round(level(i) * 255))
	}
	return out
}
