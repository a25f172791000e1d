package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/image-seam-carver/internal/carving"
)

// DefaultSeamColor is the seam overlay color used when none is configured.
const DefaultSeamColor = "#FF0000"

// OverlayPath returns a copy of img with every point of path painted in
// hexColor ("#RRGGBB" or "#RRGGBBAA"). Translucent colors are blended over the
// image. Points outside the image are skipped.
func OverlayPath(img image.Image, path carving.Path, hexColor string) (*image.NRGBA, error) {
	c, err := parseHexColor(hexColor)
	if err != nil {
		return nil, fmt.Errorf("invalid seam color %q: %w", hexColor, err)
	}

	out := imaging.Clone(img)
	paint := image.NewUniform(c)
	bounds := out.Bounds()
	for _, p := range path {
		pt := image.Pt(p.X, p.Y)
		if !pt.In(bounds) {
			continue
		}
		draw.Draw(out, image.Rectangle{Min: pt, Max: pt.Add(image.Pt(1, 1))}, paint, image.Point{}, draw.Over)
	}
	return out, nil
}

// parseHexColor parses a hex color string like "#FF0000" or "#FF000080"
func parseHexColor(hex string) (color.NRGBA, error) {
	if len(hex) == 0 {
		return color.NRGBA{}, fmt.Errorf("empty color string")
	}
	if hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint8 = 0, 0, 0, 255

	switch len(hex) {
	case 6:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.NRGBA{}, err
		}
		r = uint8(val >> 16)
		g = uint8(val >> 8)
		b = uint8(val)
	case 8:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.NRGBA{}, err
		}
		r = uint8(val >> 24)
		g = uint8(val >> 16)
		b = uint8(val >> 8)
		a = uint8(val)
	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex color length")
	}

	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
