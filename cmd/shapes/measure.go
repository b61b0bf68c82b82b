package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jward/shapes"
)

func (c *cli) measureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "measure <kind> <record>",
		Short: "Parse a text record and report its area and perimeter",
		Long: `Parse a comma-separated text record and report its dimensions, area,
perimeter and comparison metric.

Records:
  rectangle  length,width,name   e.g. "4,5,Rectangle3"
  circle     radius              e.g. "5"
  triangle   side_a,side_b,side_c  e.g. "3.0,4.5,4.5"

Missing fields default to zero.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := parseShapeArgs(args[0], args[1])
			if err != nil {
				return c.outputError("measure", err)
			}
			c.logger.Debug("measured", "kind", s.Kind(), "record", s.String())
			return c.outputResult(CLIResult{Command: "measure", Results: shapeToCLI(s)})
		},
	}
}

func (c *cli) newCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new <kind> <length> <width> [name]",
		Short: "Build a shape from a length, width and name",
		Long:  "Build a shape through the generic length/width constructor. Only rectangles can be built this way; other kinds report an unsupported operation.",
		Args:  cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := shapes.ParseKind(args[0])
			if err != nil {
				return c.outputError("new", err)
			}
			length, err := parseFloatArg(args[1], "length")
			if err != nil {
				return c.outputError("new", err)
			}
			width, err := parseFloatArg(args[2], "width")
			if err != nil {
				return c.outputError("new", err)
			}
			var name string
			if len(args) == 4 {
				name = args[3]
			}
			s, err := shapes.New(kind, length, width, name)
			if err != nil {
				return c.outputError("new", err)
			}
			return c.outputResult(CLIResult{Command: "new", Results: shapeToCLI(s)})
		},
	}
}

// parseShapeArgs resolves a kind name and parses a record of that kind.
func parseShapeArgs(kindArg, record string) (shapes.Shape, error) {
	kind, err := shapes.ParseKind(kindArg)
	if err != nil {
		return nil, err
	}
	return shapes.Parse(kind, record)
}

// parseFloatArg parses a positional argument as a float with a clear error.
func parseFloatArg(value, name string) (float32, error) {
	f, err := strconv.ParseFloat(value, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be a number", name, value)
	}
	return float32(f), nil
}
