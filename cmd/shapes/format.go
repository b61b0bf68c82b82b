package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

// outputResult writes a CLIResult to stdout in the configured format.
func (c *cli) outputResult(result CLIResult) error {
	switch c.cfg.Format {
	case "text":
		return c.outputResultText(result)
	case "yaml":
		return encodeYAML(c.stdout, result)
	}
	return encodeJSON(c.stdout, result)
}

// outputError writes an error in the configured format and returns it so RunE
// can propagate it to cobra. Structured formats write the envelope to stdout;
// text mode writes to stderr.
func (c *cli) outputError(command string, err error) error {
	c.errorHandled = true
	c.logger.Debug("command failed", "command", command, "err", err)

	result := CLIResult{Command: command, Error: err.Error()}
	switch c.cfg.Format {
	case "text":
		fmt.Fprintf(c.stderr, "Error: %s\n", err)
	case "yaml":
		_ = encodeYAML(c.stdout, result)
	default:
		_ = encodeJSON(c.stdout, result)
	}
	return err
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// outputResultText dispatches to the text formatter for the result type.
func (c *cli) outputResultText(result CLIResult) error {
	switch v := result.Results.(type) {
	case CLIShape:
		c.renderTable(shapeTable(v))
	case CLIComparison:
		c.renderTable(comparisonTable(v))
	case CLIEvalResult:
		if v.Shape != nil {
			c.renderTable(shapeTable(*v.Shape))
		} else {
			fmt.Fprintf(c.stdout, "%v\n", v.Value)
		}
	case nil:
	default:
		return fmt.Errorf("unsupported result type for text format: %T", v)
	}
	return nil
}

func (c *cli) renderTable(t table.Writer) {
	t.SetStyle(tableStyle(c.cfg.Table.Style))
	fmt.Fprintln(c.stdout, t.Render())
}

func tableStyle(name string) table.Style {
	switch name {
	case "rounded":
		return table.StyleRounded
	case "ascii":
		return table.StyleDefault
	}
	return table.StyleLight
}

// shapeTable lays out one shape as FIELD/VALUE rows.
func shapeTable(s CLIShape) table.Writer {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Field", "Value"})
	t.AppendRow(table.Row{"kind", s.Kind})
	t.AppendRow(table.Row{"record", s.Record})
	if s.Name != "" {
		t.AppendRow(table.Row{"name", s.Name})
	}
	for _, d := range s.Dimensions {
		t.AppendRow(table.Row{d.Name, d.Value.String()})
	}
	t.AppendSeparator()
	t.AppendRow(table.Row{"area", s.Area.String()})
	t.AppendRow(table.Row{"perimeter", s.Perimeter.String()})
	t.AppendRow(table.Row{"metric", s.Metric})
	return t
}

// comparisonTable lays out both shapes side by side with the outcome.
func comparisonTable(cmp CLIComparison) table.Writer {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"", "A", "B"})
	t.AppendRow(table.Row{"record", cmp.A.Record, cmp.B.Record})
	t.AppendRow(table.Row{"area", cmp.A.Area.String(), cmp.B.Area.String()})
	t.AppendRow(table.Row{"perimeter", cmp.A.Perimeter.String(), cmp.B.Perimeter.String()})
	t.AppendSeparator()
	t.AppendFooter(table.Row{"by " + cmp.Metric, "A is " + strings.ToUpper(cmp.Ordering) + " B", ""})
	return t
}
