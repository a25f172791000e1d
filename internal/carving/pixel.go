package carving

// Pixel is a non-premultiplied 8-bit RGBA sample, laid out like image.NRGBA.
type Pixel struct {
	R, G, B, A uint8
}

// Gradient returns the sum over all four channels of the squared difference
// between p and q.
func (p Pixel) Gradient(q Pixel) float64 {
	dr := float64(p.R) - float64(q.R)
	dg := float64(p.G) - float64(q.G)
	db := float64(p.B) - float64(q.B)
	da := float64(p.A) - float64(q.A)
	return dr*dr + dg*dg + db*db + da*da
}

// Average returns the channel-wise mean of p and q, rounding halves up.
func (p Pixel) Average(q Pixel) Pixel {
	return Pixel{
		R: mean(p.R, q.R),
		G: mean(p.G, q.G),
		B: mean(p.B, q.B),
		A: mean(p.A, q.A),
	}
}

func mean(a, b uint8) uint8 {
	return uint8((uint16(a) + uint16(b) + 1) / 2)
}

// pixelAt reads the sample starting at byte offset i of an NRGBA Pix slice.
func pixelAt(pix []uint8, i int) Pixel {
	s := pix[i : i+4 : i+4]
	return Pixel{R: s[0], G: s[1], B: s[2], A: s[3]}
}

// putPixel writes p at byte offset i of an NRGBA Pix slice.
func putPixel(pix []uint8, i int, p Pixel) {
	s := pix[i : i+4 : i+4]
	s[0], s[1], s[2], s[3] = p.R, p.G, p.B, p.A
}
