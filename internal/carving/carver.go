package carving

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Carver resizes one image by seam carving.
//
// A Carver owns a private copy of the image and an EnergyGrid built from it.
// Every seam removed from or inserted into the grid is applied to the image in
// the same call, so after any method returns the image and the grid have the
// same size and the same pixels.
//
// A Carver serves a single resize request and is not safe for concurrent use.
type Carver struct {
	img      *image.NRGBA
	grid     *EnergyGrid
	removed  int
	inserted int
}

// NewCarver copies img and builds its energy grid.
//
// Returns ErrEmptyImage if img has zero width or height.
func NewCarver(img image.Image) (*Carver, error) {
	if b := img.Bounds(); b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyImage, b.Dx(), b.Dy())
	}

	owned := imaging.Clone(img)
	grid, err := FromImage(owned)
	if err != nil {
		return nil, err
	}
	return &Carver{img: owned, grid: grid}, nil
}

// Width returns the current image width.
func (c *Carver) Width() int { return c.grid.Width() }

// Height returns the current image height.
func (c *Carver) Height() int { return c.grid.Height() }

// SeamsRemoved returns how many seams have been removed so far.
func (c *Carver) SeamsRemoved() int { return c.removed }

// SeamsInserted returns how many seams have been inserted so far.
func (c *Carver) SeamsInserted() int { return c.inserted }

// Image returns a copy of the current image.
func (c *Carver) Image() *image.NRGBA {
	return imaging.Clone(c.img)
}

// EnergyImage renders the current energy field. See EnergyGrid.EnergyImage.
func (c *Carver) EnergyImage(p Palette) image.Image {
	return c.grid.EnergyImage(p)
}

// NextSeam returns the vertical seam the next horizontal operation would use,
// without applying it.
func (c *Carver) NextSeam() (Path, float64, error) {
	return c.grid.FindPath()
}

// ResizeHorizontal changes the width by distance: a negative distance removes
// that many seams, a positive one inserts that many. Seams are found and
// applied one at a time, each on the result of the previous one.
//
// Returns ErrDimensionExhausted, before touching anything, when the width would
// drop below one pixel.
func (c *Carver) ResizeHorizontal(distance int) error {
	if c.grid.Width()+distance < 1 {
		return fmt.Errorf("%w: width %d cannot change by %d", ErrDimensionExhausted, c.grid.Width(), distance)
	}

	for i := 0; i < -distance; i++ {
		if err := c.removeSeam(); err != nil {
			return fmt.Errorf("failed to remove seam %d of %d: %w", i+1, -distance, err)
		}
	}
	for i := 0; i < distance; i++ {
		if err := c.addSeam(); err != nil {
			return fmt.Errorf("failed to insert seam %d of %d: %w", i+1, distance, err)
		}
	}
	return nil
}

// ResizeVertical changes the height by distance. The image and grid are turned
// a quarter clockwise, resized horizontally and turned back, so the result has
// the original orientation even when resizing fails part way.
//
// Returns ErrDimensionExhausted, before touching anything, when the height
// would drop below one pixel.
func (c *Carver) ResizeVertical(distance int) error {
	if c.grid.Height()+distance < 1 {
		return fmt.Errorf("%w: height %d cannot change by %d", ErrDimensionExhausted, c.grid.Height(), distance)
	}
	if distance == 0 {
		return nil
	}

	c.rotateClockwise()
	err := c.ResizeHorizontal(distance)
	c.rotateCounterClockwise()
	return err
}

// ResizeTo resizes to an absolute size. A zero width or height keeps that
// dimension. Width is handled first, then height.
func (c *Carver) ResizeTo(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: target %dx%d", ErrDimensionExhausted, width, height)
	}
	if width > 0 {
		if err := c.ResizeHorizontal(width - c.Width()); err != nil {
			return err
		}
	}
	if height > 0 {
		if err := c.ResizeVertical(height - c.Height()); err != nil {
			return err
		}
	}
	return nil
}

func (c *Carver) removeSeam() error {
	path, _, err := c.grid.FindPath()
	if err != nil {
		return err
	}
	if err := c.grid.RemoveSeam(path); err != nil {
		return err
	}
	eraseSeam(c.img, path)
	c.removed++
	return nil
}

func (c *Carver) addSeam() error {
	path, _, err := c.grid.FindPath()
	if err != nil {
		return err
	}
	if err := c.grid.AddSeam(path); err != nil {
		return err
	}
	c.img = duplicateSeam(c.img, path)
	c.inserted++
	return nil
}

// imaging.Rotate270 and Rotate90 turn counter-clockwise by 270 and 90 degrees,
// matching the grid's clockwise and counter-clockwise quarter turns.

func (c *Carver) rotateClockwise() {
	c.img = imaging.Rotate270(c.img)
	c.grid.RotateClockwise()
}

func (c *Carver) rotateCounterClockwise() {
	c.img = imaging.Rotate90(c.img)
	c.grid.RotateCounterClockwise()
}
