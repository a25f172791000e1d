package carving

import "errors"

var (
	// ErrEmptyImage is returned when the source image has zero width or height.
	ErrEmptyImage = errors.New("image has zero width or height")

	// ErrDimensionExhausted is returned when a resize would shrink a dimension
	// below one pixel. No seam is applied when this is reported.
	ErrDimensionExhausted = errors.New("resize would shrink a dimension below one pixel")

	// ErrInvalidSeam is returned when a path breaks its bounds or adjacency rules.
	ErrInvalidSeam = errors.New("invalid seam")

	// ErrGridTooSmall is returned by FindPath on a grid without cells.
	ErrGridTooSmall = errors.New("energy grid has no cells")
)
