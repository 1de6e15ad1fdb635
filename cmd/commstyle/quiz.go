package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/denisok6893-rgb/commstyle-assessment/internal/quiz"
	"github.com/denisok6893-rgb/commstyle-assessment/internal/render"
	"github.com/denisok6893-rgb/commstyle-assessment/internal/scoring"
	"github.com/denisok6893-rgb/commstyle-assessment/internal/tui"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take the assessment interactively",
	Args:  cobra.NoArgs,
	RunE:  runQuiz,
}

func runQuiz(cmd *cobra.Command, args []string) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return errors.New("the interactive quiz needs a terminal; use `commstyle score` for non-interactive scoring")
	}

	session := quiz.NewSession(scoring.NewEngine())
	renderer := render.NewTextRenderer(cfg.Output.Color, cfg.Output.BarWidth)

	p := tea.NewProgram(tui.New(session, renderer, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run quiz: %w", err)
	}

	// The alt screen is gone once the program exits; leave the results in the scrollback.
	if res := session.Result(); res != nil {
		return renderer.Render(cmd.OutOrStdout(), render.Report{Participant: session.Participant(), Result: *res})
	}
	return nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
