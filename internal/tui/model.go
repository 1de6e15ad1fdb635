package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/denisok6893-rgb/commstyle-assessment/internal/domain"
	"github.com/denisok6893-rgb/commstyle-assessment/internal/quiz"
	"github.com/denisok6893-rgb/commstyle-assessment/internal/render"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	pickStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
)

var scaleLabels = [...]string{
	"Strongly disagree",
	"Disagree",
	"Neutral",
	"Agree",
	"Strongly agree",
}

type model struct {
	session  *quiz.Session
	renderer *render.TextRenderer
	logger   *zap.Logger

	name     textinput.Model
	prog     progress.Model
	warning  string
	width    int
	quitting bool
}

// New returns a Bubble Tea model that walks a participant through the quiz.
func New(session *quiz.Session, renderer *render.TextRenderer, logger *zap.Logger) tea.Model {
	ti := textinput.New()
	ti.Placeholder = "Your name"
	ti.CharLimit = 64
	ti.Width = 40
	ti.Focus()

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 60

	if logger == nil {
		logger = zap.NewNop()
	}
	return &model{
		session:  session,
		renderer: renderer,
		logger:   logger.With(zap.String("session_id", session.ID())),
		name:     ti,
		prog:     prog,
		width:    80,
	}
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = min(msg.Width-4, 80)
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.session.Phase() {
		case quiz.PhaseIntro:
			return m.updateIntro(msg)
		case quiz.PhaseQuestions:
			return m.updateQuestion(msg)
		case quiz.PhaseResults:
			return m.updateResults(msg)
		}
	}

	if m.session.Phase() == quiz.PhaseIntro {
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) updateIntro(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEnter:
		if err := m.session.Start(m.name.Value()); err != nil {
			m.warning = capitalize(err.Error())
			return m, nil
		}
		m.warning = ""
		m.name.Blur()
		m.logger.Debug("assessment started", zap.String("participant", m.session.Participant()))
		return m, nil
	}
	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

func (m *model) updateQuestion(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "1", "2", "3", "4", "5":
		_ = m.session.Select(int(key[0] - '0'))
		m.warning = ""
	case "left", "p", "h":
		m.session.Previous()
		m.warning = ""
	case "right", "n", "l", "enter":
		res, err := m.session.Next()
		switch {
		case errors.Is(err, quiz.ErrIncomplete):
			m.warning = "Pick an answer (1-5) to continue"
		case err != nil:
			m.logger.Error("scoring failed", zap.Error(err))
			m.warning = err.Error()
		case res != nil:
			m.warning = ""
			m.logResult(res)
		}
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r":
		m.session.Reset()
		m.name.Reset()
		m.warning = ""
		return m, m.name.Focus()
	case "q", "esc", "enter":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *model) logResult(res *domain.ScoreResult) {
	fields := []zap.Field{
		zap.Float64("direct_score", res.DirectScore),
		zap.Float64("indirect_score", res.IndirectScore),
		zap.String("leaning", string(res.Style.Leaning)),
	}
	if len(res.TopGroups) > 0 {
		fields = append(fields, zap.String("top_group", res.TopGroups[0].Group.Name))
	}
	m.logger.Info("assessment completed", fields...)
}

func (m *model) View() string {
	if m.quitting {
		return ""
	}
	switch m.session.Phase() {
	case quiz.PhaseQuestions:
		return m.questionView()
	case quiz.PhaseResults:
		return m.resultsView()
	default:
		return m.introView()
	}
}

func (m *model) introView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Communication Style Assessment"))
	b.WriteString("\n\n")
	b.WriteString("Rate 16 statements from 1 (strongly disagree) to 5 (strongly agree).\n\n")
	b.WriteString(m.name.View())
	b.WriteString("\n")
	if m.warning != "" {
		b.WriteString(warnStyle.Render(m.warning))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: start • esc: quit"))
	return b.String()
}

func (m *model) questionView() string {
	q, picked := m.session.Current()

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Question %d of %d", m.session.Index()+1, domain.QuestionCount)))
	b.WriteString("\n")
	b.WriteString(m.prog.ViewAs(m.session.Progress() / 100))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(min(m.width-2, 78)).Render(q.Text))
	b.WriteString("\n\n")

	for i, label := range scaleLabels {
		v := i + 1
		line := fmt.Sprintf("  [%d] %s", v, label)
		if v == picked {
			line = pickStyle.Render(fmt.Sprintf("> [%d] %s", v, label))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if m.warning != "" {
		b.WriteString(warnStyle.Render(m.warning))
		b.WriteString("\n")
	}

	var help []string
	if m.session.CanGoBack() {
		help = append(help, "←: previous")
	}
	if m.session.CanAdvance() {
		if m.session.IsLast() {
			help = append(help, "enter: submit")
		} else {
			help = append(help, "enter: next")
		}
	}
	help = append(help, "1-5: answer", "q: quit")
	b.WriteString(helpStyle.Render(strings.Join(help, " • ")))
	return b.String()
}

func (m *model) resultsView() string {
	res := m.session.Result()
	if res == nil {
		return ""
	}
	out := m.renderer.String(render.Report{Participant: m.session.Participant(), Result: *res})
	return out + "\n" + helpStyle.Render("r: restart • q: quit")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
