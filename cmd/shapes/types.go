package main

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/jward/shapes"
)

// CLIResult is the top-level envelope for every command.
type CLIResult struct {
	Command string `json:"command" yaml:"command"`
	Results any    `json:"results" yaml:"results"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Number is a measurement. JSON cannot carry NaN or infinities, so those
// encode as the strings "NaN", "+Inf" and "-Inf".
type Number float64

func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return json.Marshal(n.String())
	}
	return json.Marshal(f)
}

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 32)
}

// CLIDimension is one named dimension of a shape.
type CLIDimension struct {
	Name  string `json:"name" yaml:"name"`
	Value Number `json:"value" yaml:"value"`
}

// CLIShape is a JSON-friendly shape representation.
type CLIShape struct {
	Kind       string         `json:"kind" yaml:"kind"`
	Record     string         `json:"record" yaml:"record"`
	Name       string         `json:"name,omitempty" yaml:"name,omitempty"`
	Dimensions []CLIDimension `json:"dimensions" yaml:"dimensions"`
	Area       Number         `json:"area" yaml:"area"`
	Perimeter  Number         `json:"perimeter" yaml:"perimeter"`
	Metric     string         `json:"metric" yaml:"metric"`
}

// CLIComparison is the result of comparing two shapes of one kind.
type CLIComparison struct {
	Kind     string   `json:"kind" yaml:"kind"`
	Metric   string   `json:"metric" yaml:"metric"`
	A        CLIShape `json:"a" yaml:"a"`
	B        CLIShape `json:"b" yaml:"b"`
	Ordering string   `json:"ordering" yaml:"ordering"`
	Equal    bool     `json:"equal" yaml:"equal"`
}

// CLIEvalResult is the final value of an evaluated script. Shape is set when
// the script returns a shape; otherwise Value holds the converted result.
type CLIEvalResult struct {
	Type  string    `json:"type" yaml:"type"`
	Value any       `json:"value,omitempty" yaml:"value,omitempty"`
	Shape *CLIShape `json:"shape,omitempty" yaml:"shape,omitempty"`
}

// shapeToCLI converts a shape to a CLIShape.
func shapeToCLI(s shapes.Shape) CLIShape {
	out := CLIShape{
		Kind:      s.Kind().String(),
		Record:    s.String(),
		Area:      Number(s.Area()),
		Perimeter: Number(s.Perimeter()),
		Metric:    s.Metric().String(),
	}
	if name, err := shapes.NameOf(s); err == nil {
		out.Name = name
	}
	for _, d := range shapes.Dims(s.Kind()) {
		v, err := shapes.Dimension(s, d)
		if err != nil {
			continue
		}
		out.Dimensions = append(out.Dimensions, CLIDimension{Name: d.String(), Value: Number(v)})
	}
	return out
}
