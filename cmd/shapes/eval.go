package main

import (
	"fmt"
	"os"

	"github.com/risor-io/risor/object"
	"github.com/spf13/cobra"

	"github.com/jward/shapes/internal/runtime"
)

func (c *cli) evalCmd() *cobra.Command {
	var flagLib string
	cmd := &cobra.Command{
		Use:   "eval <script>",
		Short: "Evaluate a Risor expression over shapes",
		Long: `Evaluate a Risor script and print the value of its last expression.

Globals: rect(l, w, name?), circle(r), triangle(a, b, c), parse(kind, record),
area(s), perimeter(s), metric(s), compare(a, b, by?), equal(a, b), log.

Example:
  shapes eval 'compare(parse("rect", "4,5,Rectangle3"), rect(1, 3))'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []runtime.RuntimeOption{runtime.WithLogger(c.logger)}
			if flagLib != "" {
				info, err := os.Stat(flagLib)
				if err != nil || !info.IsDir() {
					return c.outputError("eval", fmt.Errorf("library directory not found: %s", flagLib))
				}
				opts = append(opts, runtime.WithRuntimeFS(os.DirFS(flagLib)))
			}

			rt := runtime.NewRuntime(opts...)
			result, err := rt.Eval(cmd.Context(), args[0], nil)
			if err != nil {
				return c.outputError("eval", err)
			}
			return c.outputResult(CLIResult{Command: "eval", Results: evalResultToCLI(result)})
		},
	}
	cmd.Flags().StringVar(&flagLib, "lib", "", "directory of .risor modules available to import")
	return cmd
}

// evalResultToCLI converts a script result. A top-level shape map is
// expanded into Shape; everything else goes through evalValue.
func evalResultToCLI(obj object.Object) CLIEvalResult {
	out := CLIEvalResult{Type: string(obj.Type())}
	if m, ok := obj.(*object.Map); ok {
		if s, err := runtime.ObjectToShape(m); err == nil {
			cs := shapeToCLI(s)
			out.Shape = &cs
			return out
		}
	}
	out.Value = evalValue(obj)
	return out
}

// evalValue converts a script value for output. Floats become Number at any
// depth so NaN survives JSON, and nested shape maps become CLIShape.
func evalValue(obj object.Object) any {
	switch v := obj.(type) {
	case *object.Float:
		return Number(v.Value())
	case *object.List:
		items := v.Value()
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = evalValue(item)
		}
		return out
	case *object.Map:
		if s, err := runtime.ObjectToShape(v); err == nil {
			return shapeToCLI(s)
		}
		out := make(map[string]any, v.Size())
		for key, item := range v.Value() {
			out[key] = evalValue(item)
		}
		return out
	}
	return obj.Interface()
}
