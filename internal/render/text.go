package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/denisok6893-rgb/commstyle-assessment/internal/domain"
)

const defaultBarWidth = 30

type TextRenderer struct {
	barWidth int

	title    lipgloss.Style
	heading  lipgloss.Style
	direct   lipgloss.Style
	indirect lipgloss.Style
	mixed    lipgloss.Style
	muted    lipgloss.Style
	top      lipgloss.Style
	levels   map[domain.MatchLevel]lipgloss.Style
	body     lipgloss.Style
}

func NewTextRenderer(color bool, barWidth int) *TextRenderer {
	if barWidth <= 0 {
		barWidth = defaultBarWidth
	}
	t := &TextRenderer{
		barWidth: barWidth,
		title:    lipgloss.NewStyle().Bold(true),
		heading:  lipgloss.NewStyle().Bold(true).Underline(true),
		direct:   lipgloss.NewStyle(),
		indirect: lipgloss.NewStyle(),
		mixed:    lipgloss.NewStyle(),
		muted:    lipgloss.NewStyle(),
		top:      lipgloss.NewStyle().Bold(true),
		body:     lipgloss.NewStyle().Width(76).PaddingLeft(2),
		levels: map[domain.MatchLevel]lipgloss.Style{
			domain.MatchExcellent: lipgloss.NewStyle(),
			domain.MatchGood:      lipgloss.NewStyle(),
			domain.MatchModerate:  lipgloss.NewStyle(),
			domain.MatchLower:     lipgloss.NewStyle(),
		},
	}
	if color {
		t.title = t.title.Foreground(lipgloss.Color("7"))
		t.direct = t.direct.Foreground(lipgloss.Color("4"))
		t.indirect = t.indirect.Foreground(lipgloss.Color("5"))
		t.mixed = t.mixed.Foreground(lipgloss.Color("6"))
		t.muted = t.muted.Foreground(lipgloss.Color("8"))
		t.top = t.top.Foreground(lipgloss.Color("3"))
		t.levels[domain.MatchExcellent] = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
		t.levels[domain.MatchGood] = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
		t.levels[domain.MatchModerate] = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
		t.levels[domain.MatchLower] = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	}
	return t
}

func (t *TextRenderer) Render(w io.Writer, r Report) error {
	_, err := io.WriteString(w, t.String(r))
	return err
}

// String renders the report; the TUI uses it directly as its results view.
func (t *TextRenderer) String(r Report) string {
	res := r.Result
	var b strings.Builder

	title := "Your communication style results"
	if r.Participant != "" {
		title = fmt.Sprintf("Communication style results for %s", r.Participant)
	}
	b.WriteString(t.title.Render(title))
	b.WriteString("\n\n")

	// pad before styling: escape codes would count toward a %-Ns width
	fmt.Fprintf(&b, "  %s %3.0f  (%.0f%%)\n", t.direct.Render(fmt.Sprintf("%-26s", "Direct / low-context")), res.DirectScore, res.DirectPercentage)
	fmt.Fprintf(&b, "  %s %3.0f  (%.0f%%)\n", t.indirect.Render(fmt.Sprintf("%-26s", "Indirect / high-context")), res.IndirectScore, res.IndirectPercentage)
	b.WriteString("  ")
	b.WriteString(t.split(res.DirectScore, res.IndirectScore))
	b.WriteString("\n\n")

	b.WriteString(t.heading.Render("Characteristics"))
	b.WriteString("\n")
	c := res.Characteristics
	for _, row := range []struct {
		label string
		pct   float64
	}{
		{"Communication approach", c.CommApproach},
		{"Relationship focus", c.RelationshipFocus},
		{"Conflict resolution", c.ConflictResolution},
		{"Context sensitivity", c.ContextSensitivity},
	} {
		fmt.Fprintf(&b, "  %-24s %3.0f%%  %s\n", row.label, row.pct, t.bar(row.pct, t.mixed))
	}
	b.WriteString("\n")

	b.WriteString(t.heading.Render("Interpretation"))
	b.WriteString("\n")
	b.WriteString(t.body.Render(res.Interpretation))
	b.WriteString("\n\n")

	b.WriteString(t.heading.Render("Language group fit"))
	b.WriteString("\n")
	b.WriteString(t.body.Render(res.Style.Description))
	b.WriteString("\n")
	b.WriteString(t.body.Render(t.muted.Render(fmt.Sprintf(
		"Below are your top %d language families ranked by compatibility (totaling 100%%):", len(res.TopGroups)))))
	b.WriteString("\n\n")
	for _, m := range res.TopGroups {
		t.writeGroup(&b, m)
	}

	if len(res.Recommendations) > 0 {
		b.WriteString(t.heading.Render("Recommendations"))
		b.WriteString("\n")
		for _, rec := range res.Recommendations {
			b.WriteString(t.body.Render("• " + t.title.Render(rec.Title) + ": " + rec.Text))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (t *TextRenderer) writeGroup(b *strings.Builder, m domain.GroupMatch) {
	marker := " "
	name := m.Group.Name
	if m.TopMatch {
		marker = t.top.Render("★")
		name = t.top.Render(name)
	}
	level := t.levels[m.Level].Render(string(m.Level) + " Match")
	fmt.Fprintf(b, "  %s %s %s  %.1f%%  %s\n", marker, strings.Join(m.Group.Countries, " "), name, m.MatchPercentage, level)
	fmt.Fprintf(b, "      %s\n", t.muted.Render(m.Group.Languages))
	fmt.Fprintf(b, "      %s\n", t.bar(m.MatchPercentage, t.styleFor(m.Group.Style)))
}

func (t *TextRenderer) styleFor(s domain.GroupStyle) lipgloss.Style {
	switch s {
	case domain.GroupDirect:
		return t.direct
	case domain.GroupIndirect:
		return t.indirect
	default:
		return t.mixed
	}
}

func (t *TextRenderer) bar(pct float64, style lipgloss.Style) string {
	n := BarWidth(pct, t.barWidth)
	return style.Render(strings.Repeat("█", n)) + t.muted.Render(strings.Repeat("░", t.barWidth-n))
}

// split is the terminal stand-in for the donut chart: one bar divided by score share.
func (t *TextRenderer) split(direct, indirect float64) string {
	arcs := DonutArcs(direct, indirect)
	if arcs.Circumference == 0 {
		return ""
	}
	n := BarWidth(arcs.DirectLength/arcs.Circumference*100, t.barWidth)
	return t.direct.Render(strings.Repeat("█", n)) + t.indirect.Render(strings.Repeat("█", t.barWidth-n))
}
