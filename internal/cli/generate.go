package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/threadart/pkg/art"
	"github.com/matzehuels/threadart/pkg/errors"
	artio "github.com/matzehuels/threadart/pkg/io"
)

// generateCommand creates the generate command for producing layout files.
func (c *CLI) generateCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "generate [count] [shape]",
		Short: "Generate a nail layout and write a thread art file",
		Long: `Generate a nail layout and write a thread art file.

Nails are evenly distributed along the boundary shape, which is maximized
within the unit square. The thread path is written empty, ready for manual
editing, and every nail carries a "# nail N" comment with its index.

Shapes:
  circle   count evenly spaced points on the inscribed circle (count >= 1)
  square   count points at equal arc length along the perimeter (count >= 4)

Examples:
  threadart generate 36 circle
  threadart generate 40 square -o board.yml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.New(errors.ErrCodeInvalidParameter,
					"invalid nail count %q: must be an integer", args[0])
			}
			shape, err := art.ParseShape(args[1])
			if err != nil {
				return err
			}
			return c.runGenerate(count, shape, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", defaultLayoutFile, "output YAML file path")

	return cmd
}

// runGenerate computes the layout and writes the annotated file.
func (c *CLI) runGenerate(count int, shape art.Shape, output string) error {
	c.Logger.Debugf("Generating %d nails on a %s boundary", count, shape)

	nails, err := art.Generate(count, shape)
	if err != nil {
		return err
	}

	a := art.Art{Nails: nails}
	if err := artio.Export(a, output, artio.WithBanner(count, shape), artio.WithAnnotations()); err != nil {
		return err
	}

	printSuccess("Thread art file created")
	printFile(output)
	printDetail("shape: %s", shape)
	printDetail("nails: %d", count)
	printDetail("thread: empty (ready for editing)")
	printNewline()
	printNextStep("Render", appName+" render "+output)

	return nil
}
