// Package cli implements the threadart command-line interface.
//
// This package provides commands for generating nail layout files and
// rendering them as raster images. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - generate: Compute a nail layout and write a thread art YAML file
//   - render: Load a thread art file and render it to a PNG image
//   - completion: Generate shell completion scripts
//
// Each invocation is a self-contained batch job: read at most one file,
// compute, write one file, exit. All failures are terminal and reported
// on stderr with a non-zero exit status.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/threadart/pkg/buildinfo"
)

const (
	// appName is the application name used for display and next-step hints.
	appName = "threadart"

	// defaultLayoutFile is the generator's output path when -o is omitted.
	defaultLayoutFile = "generated_thread_art.yml"

	// defaultImageFile is the renderer's output path when -o is omitted.
	defaultImageFile = "thread_art.png"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Threadart generates and renders thread art nail layouts",
		Long:         `Threadart is a CLI tool for string art: it generates evenly spaced nail layouts on a circle or square boundary, and renders a nail layout plus thread path to an image.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.completionCommand())

	return root
}
