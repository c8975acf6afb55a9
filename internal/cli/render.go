package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/threadart/pkg/errors"
	artio "github.com/matzehuels/threadart/pkg/io"
	"github.com/matzehuels/threadart/pkg/render"
	"github.com/matzehuels/threadart/pkg/render/canvas"
)

// defaultSize is the output image size when -s is omitted.
const defaultSize = "800x800"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string // output image path
	size      string // output dimensions as WIDTHxHEIGHT
	styleFile string // optional TOML style file
}

// renderCommand creates the render command for rasterizing layout files.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{size: defaultSize}

	cmd := &cobra.Command{
		Use:   "render [file.yml]",
		Short: "Render a thread art file to a PNG image",
		Long: `Render a thread art file to a PNG image.

The input file is validated before rendering: every nail must be a pair of
coordinates in the unit square and every thread entry a valid nail index.
The thread is drawn as a thin semi-transparent polyline, nails as numbered
discs above it, and the first and last thread nails get start (square) and
end (triangle) markers.

Colors and sizes can be overridden with a TOML style file; any subset of
keys may be given and the rest keep their defaults.

Examples:
  threadart render board.yml
  threadart render board.yml -o wall.png -s 1600x1600
  threadart render board.yml --style-file dark.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", defaultImageFile, "output image file path")
	cmd.Flags().StringVarP(&opts.size, "size", "s", opts.size, "output image size as WIDTHxHEIGHT pixels")
	cmd.Flags().StringVar(&opts.styleFile, "style-file", "", "TOML file overriding render colors and sizes")

	return cmd
}

// runRender loads and validates the input, renders the scene, and exports
// the image.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	width, height, err := parseSize(opts.size)
	if err != nil {
		return err
	}

	style := render.DefaultStyle()
	if opts.styleFile != "" {
		if style, err = render.LoadStyle(opts.styleFile); err != nil {
			return err
		}
	}

	a, err := artio.Import(input)
	if err != nil {
		return err
	}
	c.Logger.Infof("Loaded thread art: %d nails, %d thread points", len(a.Nails), len(a.Thread))

	cv, err := canvas.NewRaster(width, height)
	if err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, "Rendering thread art...")
	spinner.Start()

	render.New(render.WithStyle(style)).Render(a, cv)

	if err := cv.Export(opts.output); err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	printSuccess("Thread art rendered")
	printFile(opts.output)
	printStats(len(a.Nails), a.Segments())

	return nil
}

// parseSize parses a WIDTHxHEIGHT string into positive pixel dimensions.
func parseSize(s string) (width, height int, err error) {
	badSize := func() error {
		return errors.New(errors.ErrCodeInvalidParameter,
			"invalid size %q (use WIDTHxHEIGHT, e.g. 800x800)", s)
	}

	parts := strings.Split(strings.ToLower(s), "x")
	if len(parts) != 2 {
		return 0, 0, badSize()
	}
	width, werr := strconv.Atoi(parts[0])
	height, herr := strconv.Atoi(parts[1])
	if werr != nil || herr != nil || width <= 0 || height <= 0 {
		return 0, 0, badSize()
	}
	return width, height, nil
}
