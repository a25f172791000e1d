package imaging

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

var (
	// ErrUnknownFormat is returned when a path has no extension or one outside
	// the format table.
	ErrUnknownFormat = errors.New("unknown image format")

	// ErrUnsupportedEncoding is returned when a format is recognized but cannot
	// be written.
	ErrUnsupportedEncoding = errors.New("image format cannot be encoded")
)

// Format is an image container format recognized by file extension.
type Format int

// Recognized formats. The zero value is not a valid Format.
const (
	FormatPNG Format = iota + 1
	FormatJPEG
	FormatGIF
	FormatWEBP
	FormatPPM
	FormatTIFF
	FormatTGA
	FormatBMP
	FormatICO
	FormatHDR
)

var formatNames = map[Format]string{
	FormatPNG:  "png",
	FormatJPEG: "jpeg",
	FormatGIF:  "gif",
	FormatWEBP: "webp",
	FormatPPM:  "ppm",
	FormatTIFF: "tiff",
	FormatTGA:  "tga",
	FormatBMP:  "bmp",
	FormatICO:  "ico",
	FormatHDR:  "hdr",
}

// extensions maps lower-case extensions, without the dot, to formats.
var extensions = map[string]Format{
	"png":  FormatPNG,
	"jpg":  FormatJPEG,
	"jpeg": FormatJPEG,
	"gif":  FormatGIF,
	"webp": FormatWEBP,
	"ppm":  FormatPPM,
	"tif":  FormatTIFF,
	"tiff": FormatTIFF,
	"tga":  FormatTGA,
	"bmp":  FormatBMP,
	"ico":  FormatICO,
	"hdr":  FormatHDR,
}

// encoders lists the formats that can be written, with their encoder in
// github.com/disintegration/imaging.
var encoders = map[Format]imaging.Format{
	FormatPNG:  imaging.PNG,
	FormatJPEG: imaging.JPEG,
	FormatGIF:  imaging.GIF,
	FormatTIFF: imaging.TIFF,
	FormatBMP:  imaging.BMP,
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// Encodable reports whether images can be saved in f.
func (f Format) Encodable() bool {
	_, ok := encoders[f]
	return ok
}

// FormatFromPath infers the format from the extension of path, ignoring case.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return 0, fmt.Errorf("%w: %q has no file extension", ErrUnknownFormat, path)
	}
	f, ok := extensions[ext]
	if !ok {
		return 0, fmt.Errorf("%w: unrecognized extension %q", ErrUnknownFormat, ext)
	}
	return f, nil
}

// CheckOutputPath reports whether an image can be saved to path, judging only
// by its extension.
func CheckOutputPath(path string) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if !f.Encodable() {
		return fmt.Errorf("%w: %s", ErrUnsupportedEncoding, f)
	}
	return nil
}

// DefaultOutputPath returns "<stem>-resized<ext>" in the directory of input.
func DefaultOutputPath(input string) string {
	ext := filepath.Ext(input)
	stem := strings.TrimSuffix(filepath.Base(input), ext)
	return filepath.Join(filepath.Dir(input), stem+"-resized"+ext)
}

// SaveOptions controls encoding.
type SaveOptions struct {
	// JPEGQuality is the JPEG quality from 1 to 100. Zero selects 95.
	JPEGQuality int
}

// Save encodes img in the format inferred from path and writes it there,
// creating missing parent directories.
func Save(img image.Image, path string, opts SaveOptions) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	enc, ok := encoders[f]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedEncoding, f)
	}

	quality := opts.JPEGQuality
	if quality == 0 {
		quality = 95
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := imaging.Encode(out, img, enc, imaging.JPEGQuality(quality)); err != nil {
		out.Close()
		return fmt.Errorf("failed to encode %s image: %w", f, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
