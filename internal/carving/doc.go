// Package carving implements content-aware image resizing by seam carving.
//
// The package removes or inserts low-energy seams, 8-connected paths of one pixel
// per row, so that an image changes width (or, through rotation, height) while the
// visually important parts survive better than with uniform scaling or cropping.
//
// # Components
//
// EnergyGrid holds one Cell per pixel: the color sample, its dual-gradient energy
// and the cumulative cost of the cheapest top-to-this-cell path. Carver owns an
// image buffer and an EnergyGrid and keeps the two in exact correspondence while
// seams are removed or inserted.
//
// # Energy Model
//
// The energy of a cell is the sum, over every channel, of the squared difference
// between its left and right neighbors plus the squared difference between its
// upper and lower neighbors. A neighbor that falls outside the grid is replaced by
// the cell itself, so border cells always have a defined, non-negative energy.
//
// # Coordinate System
//
// Coordinates are 0-based with (0,0) at the top-left corner. A Path holds exactly
// one Point per row, ordered top to bottom.
//
// # Vertical Resizing
//
// There is no separate vertical search. Carver rotates the image and the grid a
// quarter turn clockwise, runs the horizontal algorithm and rotates both back.
//
// # Thread Safety
//
// EnergyGrid and Carver are not safe for concurrent use. The energy pass of a
// large grid is spread over several goroutines internally; the cumulative pass
// and every seam operation run sequentially.
package carving
