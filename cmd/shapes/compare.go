package main

import (
	"github.com/spf13/cobra"

	"github.com/jward/shapes"
	"github.com/jward/shapes/internal/runtime"
)

func (c *cli) compareCmd() *cobra.Command {
	var flagBy string
	cmd := &cobra.Command{
		Use:   "compare <kind> <record-a> <record-b>",
		Short: "Compare two shapes of the same kind",
		Long: `Compare two shapes of the same kind. Rectangles compare by area; circles and
triangles by perimeter. Use --by to pick the metric explicitly. Comparisons
involving NaN (for example an impossible triangle's area) are "unordered".`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseShapeArgs(args[0], args[1])
			if err != nil {
				return c.outputError("compare", err)
			}
			b, err := parseShapeArgs(args[0], args[2])
			if err != nil {
				return c.outputError("compare", err)
			}

			by := a.Metric()
			if flagBy != "" {
				by, err = shapes.ParseMetric(flagBy)
				if err != nil {
					return c.outputError("compare", err)
				}
			}

			o, err := runtime.CompareShapes(a, b, by)
			if err != nil {
				return c.outputError("compare", err)
			}
			return c.outputResult(CLIResult{Command: "compare", Results: CLIComparison{
				Kind:     a.Kind().String(),
				Metric:   by.String(),
				A:        shapeToCLI(a),
				B:        shapeToCLI(b),
				Ordering: o.String(),
				Equal:    o == shapes.OrderEqual,
			}})
		},
	}
	cmd.Flags().StringVar(&flagBy, "by", "", "comparison metric: area|perimeter (default: the kind's own metric)")
	return cmd
}
