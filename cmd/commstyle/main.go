package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/denisok6893-rgb/commstyle-assessment/internal/config"
	"github.com/denisok6893-rgb/commstyle-assessment/internal/logging"
)

var (
	// Global flags
	configPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "commstyle",
	Short: "Communication style self-assessment",
	Long: `commstyle asks 16 statements about how you communicate, scores your
direct (low-context) and indirect (high-context) tendencies, and ranks the
language groups whose communication style fits you best.

Run without arguments to start the interactive quiz.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig()
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.Log, verbose, isInteractive(cmd))
		if err != nil {
			return err
		}
		logger.Debug("config loaded", zap.String("path", configPath), zap.String("format", cfg.Output.Format))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runQuiz,
}

func init() {
	rootCmd.Version = version

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the config file if one was given, then applies env overrides.
// A missing file named explicitly on the command line is an error.
func loadConfig() (config.Config, error) {
	c := config.Default()
	if configPath != "" {
		var err error
		c, err = config.LoadFromFile(configPath)
		if err != nil {
			return c, fmt.Errorf("load config: %w", err)
		}
	}
	c.ApplyEnvOverrides()
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("config: %w", err)
	}
	return c, nil
}

// isInteractive is true for the root command and "quiz", which both start the TUI.
func isInteractive(cmd *cobra.Command) bool {
	return !cmd.HasParent() || cmd.Name() == "quiz"
}
