package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ironsheep/image-seam-carver/internal/imaging"
)

// ErrInvalidOptions marks configuration mistakes made by the user, as opposed
// to failures of the resize itself.
var ErrInvalidOptions = errors.New("invalid options")

// Dimensions is an absolute target size.
type Dimensions struct {
	Width  int
	Height int
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// ParseDimensions parses "WIDTHxHEIGHT" (the separator may be x or X). Both
// values must be positive integers.
func ParseDimensions(s string) (Dimensions, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return Dimensions{}, fmt.Errorf("%w: dimensions %q must look like WIDTHxHEIGHT", ErrInvalidOptions, s)
	}
	width, err := parseSize("width", w)
	if err != nil {
		return Dimensions{}, err
	}
	height, err := parseSize("height", h)
	if err != nil {
		return Dimensions{}, err
	}
	return Dimensions{Width: width, Height: height}, nil
}

func parseSize(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s %q", ErrInvalidOptions, name, s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %s must be greater than zero", ErrInvalidOptions, name)
	}
	return n, nil
}

// Options is one resize request as given on the command line. A nil Width or
// Height, or an empty Dimensions, means the flag was not given.
type Options struct {
	InputPath  string
	OutputPath string
	Width      *int
	Height     *int
	Dimensions string
	DebugPath  string
	Time       bool
}

// Request is a validated resize request.
type Request struct {
	InputPath  string
	OutputPath string
	// Target holds the absolute size; zero keeps the current size.
	Target    Dimensions
	DebugPath string
	Time      bool
}

// Validate checks o and turns it into a Request.
//
// At least one of width, height and dimensions is required, and dimensions
// cannot be combined with width or height. When OutputPath is empty it
// defaults to "<stem>-resized.<ext>" beside the input. The output and debug
// paths must name a format that can be written.
func (o Options) Validate() (*Request, error) {
	if o.InputPath == "" {
		return nil, fmt.Errorf("%w: an input path is required", ErrInvalidOptions)
	}

	req := &Request{
		InputPath:  o.InputPath,
		OutputPath: o.OutputPath,
		DebugPath:  o.DebugPath,
		Time:       o.Time,
	}

	switch {
	case o.Dimensions != "" && (o.Width != nil || o.Height != nil):
		return nil, fmt.Errorf("%w: --dimensions cannot be combined with --width or --height", ErrInvalidOptions)
	case o.Dimensions != "":
		d, err := ParseDimensions(o.Dimensions)
		if err != nil {
			return nil, err
		}
		req.Target = d
	case o.Width == nil && o.Height == nil:
		return nil, fmt.Errorf("%w: one of --width, --height or --dimensions is required", ErrInvalidOptions)
	default:
		if o.Width != nil {
			if *o.Width <= 0 {
				return nil, fmt.Errorf("%w: width must be greater than zero", ErrInvalidOptions)
			}
			req.Target.Width = *o.Width
		}
		if o.Height != nil {
			if *o.Height <= 0 {
				return nil, fmt.Errorf("%w: height must be greater than zero", ErrInvalidOptions)
			}
			req.Target.Height = *o.Height
		}
	}

	if req.OutputPath == "" {
		req.OutputPath = imaging.DefaultOutputPath(o.InputPath)
	}
	if err := imaging.CheckOutputPath(req.OutputPath); err != nil {
		return nil, fmt.Errorf("%w: output path: %w", ErrInvalidOptions, err)
	}
	if req.DebugPath != "" {
		if err := imaging.CheckOutputPath(req.DebugPath); err != nil {
			return nil, fmt.Errorf("%w: debug path: %w", ErrInvalidOptions, err)
		}
	}
	return req, nil
}
