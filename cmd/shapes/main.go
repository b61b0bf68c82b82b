package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jward/shapes/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// cli holds flag values and per-invocation state shared by all commands.
type cli struct {
	stdout io.Writer
	stderr io.Writer

	flagConfig     string
	flagFormat     string
	flagLogLevel   string
	flagTableStyle string

	cfg    *config.Config
	logger *slog.Logger

	// errorHandled is set by outputError so run doesn't double-print.
	errorHandled bool
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	c := &cli{stdout: stdout, stderr: stderr}
	root := c.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		if !c.errorHandled {
			fmt.Fprintf(stderr, "Error: %s\n", err)
		}
		return 1
	}
	return 0
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "shapes",
		Short:         "Measure, compare and parse rectangles, circles and triangles",
		Long:          "Shapes computes areas and perimeters, compares shapes of the same kind by their metric, and parses comma-separated text records.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		// No Run: prints help by default.
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.flagConfig, "config", "", "config file (default: ./shapes.yaml if present)")
	pf.StringVar(&c.flagFormat, "format", "json", "output format: json|yaml|text")
	pf.StringVar(&c.flagLogLevel, "log-level", "warn", "log level: debug|info|warn|error")
	pf.StringVar(&c.flagTableStyle, "table-style", "light", "text table style: light|rounded|ascii")

	root.AddCommand(c.measureCmd())
	root.AddCommand(c.compareCmd())
	root.AddCommand(c.newCmd())
	root.AddCommand(c.evalCmd())
	return root
}

// setup loads configuration and builds the logger before any command runs.
func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(config.Options{
		File:  c.flagConfig,
		Flags: cmd.Flags(),
	})
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.logger = slog.New(slog.NewTextHandler(c.stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	c.logger.Debug("config loaded",
		"file", cfg.File,
		"format", cfg.Format,
		"table_style", cfg.Table.Style,
	)
	return nil
}
