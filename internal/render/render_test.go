package render

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denisok6893-rgb/commstyle-assessment/internal/domain"
	"github.com/denisok6893-rgb/commstyle-assessment/internal/scoring"
)

func sampleReport(t *testing.T) Report {
	t.Helper()
	a := make(domain.Answers, domain.QuestionCount)
	for i := range a {
		a[i] = 3
	}
	res, err := scoring.Compute(a)
	require.NoError(t, err)
	return Report{Participant: "Ada", Result: res}
}

func TestDonutArcs(t *testing.T) {
	arcs := DonutArcs(21, 27)
	assert.InDelta(t, 2*math.Pi*80, arcs.Circumference, 1e-9)
	assert.InDelta(t, arcs.Circumference, arcs.DirectLength+arcs.IndirectLength, 1e-9)
	assert.InDelta(t, 0.4375*arcs.Circumference, arcs.DirectLength, 1e-9)
	assert.Equal(t, -arcs.DirectLength, arcs.IndirectOffset)

	empty := DonutArcs(0, 0)
	assert.Zero(t, empty.DirectLength)
}

func TestBarWidth(t *testing.T) {
	assert.Equal(t, 0, BarWidth(0, 20))
	assert.Equal(t, 10, BarWidth(50, 20))
	assert.Equal(t, 20, BarWidth(100, 20))
	assert.Equal(t, 20, BarWidth(140, 20))
	assert.Equal(t, 0, BarWidth(-5, 20))
	assert.Equal(t, 0, BarWidth(50, 0))
}

func TestTextRenderer_Render(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextRenderer(false, 20).Render(&buf, sampleReport(t)))
	out := buf.String()

	assert.Contains(t, out, "Communication style results for Ada")
	assert.Contains(t, out, "Characteristics")
	assert.Contains(t, out, "Language group fit")
	assert.Contains(t, out, "Japanese")
	assert.Contains(t, out, "Good Match")
	assert.Contains(t, out, "★")
	assert.Contains(t, out, "Be More Explicit")
	assert.Contains(t, out, "(44%)")
	assert.Contains(t, out, "(56%)")
}

func TestJSONRenderer_Render(t *testing.T) {
	var buf bytes.Buffer
	r := sampleReport(t)
	require.NoError(t, JSONRenderer{}.Render(&buf, r))

	var got Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "Ada", got.Participant)
	assert.Equal(t, r.Result.DirectScore, got.Result.DirectScore)
	assert.Len(t, got.Result.TopGroups, 8)
}

func TestNew_Formats(t *testing.T) {
	r, err := New("json", false, 0)
	require.NoError(t, err)
	assert.IsType(t, JSONRenderer{}, r)

	r, err = New("", true, 0)
	require.NoError(t, err)
	assert.IsType(t, &TextRenderer{}, r)

	_, err = New("xml", false, 0)
	assert.Error(t, err)
}

func TestTextRenderer_ScoreColumnsAlignWithColor(t *testing.T) {
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.ANSI256)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })

	out := NewTextRenderer(true, 20).String(sampleReport(t))
	require.Contains(t, out, "\x1b[", "color output expected")

	var direct, indirect string
	for _, line := range strings.Split(out, "\n") {
		switch {
		case strings.Contains(line, "Indirect / high-context"):
			indirect = line
		case strings.Contains(line, "Direct / low-context"):
			direct = line
		}
	}
	require.NotEmpty(t, direct)
	require.NotEmpty(t, indirect)
	assert.Equal(t, lipgloss.Width(direct), lipgloss.Width(indirect))
	assert.Equal(t, len("  ")+26+len(" ")+3+len("  (44%)"), lipgloss.Width(direct))
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, []domain.Question{{ID: 1, Text: "q", Type: domain.QuestionDirect}}))
	assert.Equal(t, "[\n  {\n    \"id\": 1,\n    \"text\": \"q\",\n    \"type\": \"direct\"\n  }\n]\n", buf.String())

	var fromRenderer bytes.Buffer
	r := sampleReport(t)
	require.NoError(t, JSONRenderer{Indent: "  "}.Render(&fromRenderer, r))
	buf.Reset()
	require.NoError(t, WriteJSON(&buf, r))
	assert.Equal(t, buf.String(), fromRenderer.String())
}
