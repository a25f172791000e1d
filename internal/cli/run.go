package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/ironsheep/image-seam-carver/internal/carving"
	"github.com/ironsheep/image-seam-carver/internal/config"
	"github.com/ironsheep/image-seam-carver/internal/imaging"
)

// LogLevelEnv enables debug logging when set to "debug".
const LogLevelEnv = "SEAMCARVE_LOG_LEVEL"

type runner struct {
	settings *config.Settings
	out      io.Writer
	debug    bool
}

func newRunner(settings *config.Settings, out io.Writer) *runner {
	return &runner{
		settings: settings,
		out:      out,
		debug:    settings.Debugging() || strings.EqualFold(os.Getenv(LogLevelEnv), "debug"),
	}
}

func (r *runner) debugf(format string, args ...interface{}) {
	if r.debug {
		log.Printf(format, args...)
	}
}

// run decodes the input, resizes it to the requested target and writes the
// result, plus the energy map when a debug path is set.
func (r *runner) run(req *config.Request) error {
	start := time.Now()

	img, err := imaging.Decode(req.InputPath)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", req.InputPath, err)
	}

	carver, err := carving.NewCarver(img)
	if err != nil {
		return err
	}
	r.debugf("Loaded %s (%dx%d), target %s", req.InputPath, carver.Width(), carver.Height(), req.Target)

	if req.DebugPath != "" {
		if err := r.writeEnergyMap(carver, req.DebugPath); err != nil {
			return err
		}
		r.debugf("Wrote energy map to %s", req.DebugPath)
	}

	if err := carver.ResizeTo(req.Target.Width, req.Target.Height); err != nil {
		return fmt.Errorf("cannot resize %s to %s: %w", req.InputPath, req.Target, err)
	}
	r.debugf("Removed %d seams, inserted %d", carver.SeamsRemoved(), carver.SeamsInserted())

	opts := imaging.SaveOptions{JPEGQuality: r.settings.Output.JPEGQuality}
	if err := imaging.Save(carver.Image(), req.OutputPath, opts); err != nil {
		return err
	}
	r.debugf("Wrote %s", req.OutputPath)

	if req.Time {
		fmt.Fprintf(r.out, "Resized %s to %dx%d in %s\n",
			req.InputPath, carver.Width(), carver.Height(), time.Since(start).Round(time.Millisecond))
	}
	return nil
}

func (r *runner) writeEnergyMap(carver *carving.Carver, path string) error {
	energy := carver.EnergyImage(carving.ParsePalette(r.settings.Debug.Palette))

	if r.settings.Debug.SeamColor != "" {
		seam, _, err := carver.NextSeam()
		if err != nil {
			return err
		}
		overlaid, err := imaging.OverlayPath(energy, seam, r.settings.Debug.SeamColor)
		if err != nil {
			return fmt.Errorf("%w: %w", config.ErrInvalidOptions, err)
		}
		return imaging.Save(overlaid, path, imaging.SaveOptions{JPEGQuality: r.settings.Output.JPEGQuality})
	}

	return imaging.Save(energy, path, imaging.SaveOptions{JPEGQuality: r.settings.Output.JPEGQuality})
}
