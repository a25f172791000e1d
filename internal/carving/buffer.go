package carving

import "image"

// The helpers below apply the same per-row edit to an image buffer that
// RemoveSeam and AddSeam apply to the grid. Buffers are expected to start at
// the origin. Like the grid, a buffer keeps spare bytes at the end of each row
// (Stride > 4*width) so insertions only reallocate occasionally.

// eraseSeam removes the seam pixels in place and narrows img by one column.
func eraseSeam(img *image.NRGBA, path Path) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	for _, p := range path {
		start := p.Y * img.Stride
		row := img.Pix[start : start+w*4]
		copy(row[p.X*4:], row[(p.X+1)*4:])
	}
	img.Rect = image.Rect(0, 0, w-1, h)
}

// duplicateSeam inserts, after each seam pixel, the average of that pixel and
// its right neighbor, widening the buffer by one column. It returns the buffer
// holding the result, which differs from img when img had no spare room.
func duplicateSeam(img *image.NRGBA, path Path) *image.NRGBA {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if (w+1)*4 > img.Stride {
		img = widen(img, w+growth(w))
	}

	for _, p := range path {
		start := p.Y * img.Stride
		row := img.Pix[start : start+(w+1)*4]
		at := p.X * 4
		right := min(p.X+1, w-1) * 4
		inserted := pixelAt(row, at).Average(pixelAt(row, right))
		copy(row[at+8:], row[at+4:w*4])
		putPixel(row, at+4, inserted)
	}
	img.Rect = image.Rect(0, 0, w+1, h)
	return img
}

// widen copies img into a buffer with room for capacity pixels per row.
func widen(img *image.NRGBA, capacity int) *image.NRGBA {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	stride := capacity * 4
	dst := &image.NRGBA{
		Pix:    make([]uint8, stride*h),
		Stride: stride,
		Rect:   image.Rect(0, 0, w, h),
	}
	for y := 0; y < h; y++ {
		copy(dst.Pix[y*stride:], img.Pix[y*img.Stride:y*img.Stride+w*4])
	}
	return dst
}
