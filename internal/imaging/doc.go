// Package imaging handles image files for the seam carver: decoding with a
// path-keyed cache, format inference from file extensions, encoding and
// saving, and drawing seams over images.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with (0,0) at the top-left corner, X
// increasing rightward and Y increasing downward, the same as the carving
// package.
//
// # Formats
//
// Formats are inferred from the file extension alone. PNG, JPEG, GIF, TIFF,
// BMP and WebP can be decoded; PNG, JPEG, GIF, TIFF and BMP can be written.
// Other recognized extensions (ppm, tga, ico, hdr) are reported with
// ErrUnsupportedEncoding when used as an output.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. The remaining functions are
// stateless and never modify their input images.
package imaging
