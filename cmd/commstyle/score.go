package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/denisok6893-rgb/commstyle-assessment/internal/domain"
	"github.com/denisok6893-rgb/commstyle-assessment/internal/render"
	"github.com/denisok6893-rgb/commstyle-assessment/internal/scoring"
	"github.com/denisok6893-rgb/commstyle-assessment/internal/storage"
)

var (
	scoreAnswers string
	scoreFile    string
	scoreName    string
	scoreFormat  string
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a completed answer sheet",
	Long: `Scores 16 answers (1-5, in question order) without the interactive quiz.

Examples:
  commstyle score --answers 5,1,2,4,5,1,2,2,4,1,5,2,4,1,5,2
  commstyle score --answers 5124512241524152 --format json
  commstyle score --file sheet.yaml`,
	Args: cobra.NoArgs,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVarP(&scoreAnswers, "answers", "a", "", "16 answers, comma separated or as a digit string")
	scoreCmd.Flags().StringVarP(&scoreFile, "file", "f", "", "answer sheet (.json, .yaml, .yml)")
	scoreCmd.Flags().StringVarP(&scoreName, "name", "n", "", "participant name")
	scoreCmd.Flags().StringVar(&scoreFormat, "format", "", "output format: text or json (default from config)")
}

func runScore(cmd *cobra.Command, args []string) error {
	var (
		answers domain.Answers
		name    = scoreName
		err     error
	)
	switch {
	case scoreFile != "" && scoreAnswers != "":
		return errors.New("--answers and --file are mutually exclusive")
	case scoreFile != "":
		sheet, err := storage.LoadAnswersFromFile(scoreFile)
		if err != nil {
			return err
		}
		answers = sheet.Answers
		if name == "" {
			name = sheet.Name
		}
	case scoreAnswers != "":
		answers, err = storage.ParseAnswers(scoreAnswers)
		if err != nil {
			return fmt.Errorf("parse answers: %w", err)
		}
	default:
		return errors.New("provide --answers or --file")
	}

	res, err := scoring.Compute(answers)
	if err != nil {
		logger.Warn("rejected answers", zap.Error(err))
		return fmt.Errorf("score: %w", err)
	}
	logger.Debug("scored answers",
		zap.Float64("direct_score", res.DirectScore),
		zap.Float64("indirect_score", res.IndirectScore),
		zap.String("top_group", res.TopGroups[0].Group.Name),
	)

	format := cfg.Output.Format
	if scoreFormat != "" {
		format = scoreFormat
	}
	out := cmd.OutOrStdout()
	renderer, err := render.New(format, cfg.Output.Color && out == os.Stdout && isTerminal(os.Stdout), cfg.Output.BarWidth)
	if err != nil {
		return err
	}
	return renderer.Render(out, render.Report{Participant: name, Result: res})
}
