// Package cli implements the seamcarve command line.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/image-seam-carver/internal/config"
)

// NewRootCommand builds the seamcarve command. version is reported by
// --version.
func NewRootCommand(version string) *cobra.Command {
	var (
		opts          config.Options
		width, height int
		settingsPath  string
	)

	cmd := &cobra.Command{
		Use:   "seamcarve [flags] INPUT_PATH [OUTPUT_PATH]",
		Short: "Resize images by seam carving",
		Long: "seamcarve changes the size of an image by removing or inserting low-energy seams, " +
			"so that important content keeps its shape instead of being squeezed or cropped.\n\n" +
			"Sizes are absolute: '-w 300' makes the result 300 pixels wide. " +
			"OUTPUT_PATH defaults to <stem>-resized.<ext> beside the input.",
		Example: "  seamcarve -w 300 beach.png\n" +
			"  seamcarve -d 640x400 --debug energy.png photo.jpg small.jpg",
		Version:      version,
		Args:         cobra.RangeArgs(1, 2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.InputPath = args[0]
			if len(args) > 1 {
				opts.OutputPath = args[1]
			}
			if cmd.Flags().Changed("width") {
				opts.Width = &width
			}
			if cmd.Flags().Changed("height") {
				opts.Height = &height
			}

			req, err := opts.Validate()
			if err != nil {
				return err
			}
			settings, err := config.LoadSettings(settingsPath)
			if err != nil {
				return err
			}
			return newRunner(settings, cmd.OutOrStdout()).run(req)
		},
	}

	flags := cmd.Flags()
	// -h is the height flag, so help gets no shorthand.
	flags.Bool("help", false, "help for seamcarve")
	flags.IntVarP(&width, "width", "w", 0, "target width in pixels")
	flags.IntVarP(&height, "height", "h", 0, "target height in pixels")
	flags.StringVarP(&opts.Dimensions, "dimensions", "d", "", "target size as `WIDTHxHEIGHT`")
	flags.StringVar(&opts.DebugPath, "debug", "", "write the energy map of the input to `DEBUG_PATH`")
	flags.BoolVarP(&opts.Time, "time", "t", false, "report the elapsed time")
	flags.StringVar(&settingsPath, "config", "", "YAML settings `FILE`")

	cmd.MarkFlagsMutuallyExclusive("dimensions", "width")
	cmd.MarkFlagsMutuallyExclusive("dimensions", "height")
	cmd.MarkFlagsOneRequired("width", "height", "dimensions")

	return cmd
}
