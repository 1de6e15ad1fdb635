package render

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/denisok6893-rgb/commstyle-assessment/internal/domain"
)

// Report is everything shown on the results page.
type Report struct {
	Participant string             `json:"participant"`
	Result      domain.ScoreResult `json:"result"`
}

type Renderer interface {
	Render(w io.Writer, r Report) error
}

// New returns the renderer for an output format name ("text" or "json").
func New(format string, color bool, barWidth int) (Renderer, error) {
	switch format {
	case "", "text":
		return NewTextRenderer(color, barWidth), nil
	case "json":
		return JSONRenderer{Indent: "  "}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

type JSONRenderer struct {
	Indent string
}

func (j JSONRenderer) Render(w io.Writer, r Report) error {
	if err := encodeJSON(w, r, j.Indent); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// WriteJSON writes v as two-space indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	return encodeJSON(w, v, "  ")
}

func encodeJSON(w io.Writer, v any, indent string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", indent)
	return enc.Encode(v)
}

// donutRadius matches the results chart (an SVG circle of radius 80).
const donutRadius = 80

// Arcs describes the two strokes of the donut chart.
type Arcs struct {
	Circumference  float64 `json:"circumference"`
	DirectLength   float64 `json:"direct_length"`
	IndirectLength float64 `json:"indirect_length"`
	// IndirectOffset starts the indirect stroke where the direct one ends.
	IndirectOffset float64 `json:"indirect_offset"`
}

// DonutArcs splits the chart circumference by share of the total score.
func DonutArcs(direct, indirect float64) Arcs {
	c := 2 * math.Pi * donutRadius
	total := direct + indirect
	if total <= 0 {
		return Arcs{Circumference: c}
	}
	d := direct / total * c
	return Arcs{
		Circumference:  c,
		DirectLength:   d,
		IndirectLength: indirect / total * c,
		IndirectOffset: -d,
	}
}

// BarWidth converts a percentage to a number of filled cells out of cols.
func BarWidth(pct float64, cols int) int {
	if cols <= 0 {
		return 0
	}
	n := int(math.Round(pct / 100 * float64(cols)))
	if n < 0 {
		return 0
	}
	if n > cols {
		return cols
	}
	return n
}
