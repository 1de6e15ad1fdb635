package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/denisok6893-rgb/commstyle-assessment/internal/domain"
	"github.com/denisok6893-rgb/commstyle-assessment/internal/render"
)

var catalogJSON bool

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the assessment statements",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		qs := domain.Questions()
		if catalogJSON {
			return render.WriteJSON(cmd.OutOrStdout(), qs)
		}
		for _, q := range qs {
			fmt.Fprintf(cmd.OutOrStdout(), "%2d. [%-8s] %s\n", q.ID, q.Type, q.Text)
		}
		return nil
	},
}

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List the language groups and their scoring coefficients",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		gs := domain.LanguageGroups()
		if catalogJSON {
			return render.WriteJSON(cmd.OutOrStdout(), gs)
		}
		rows := make([][]string, 0, len(gs))
		for i, g := range gs {
			rows = append(rows, []string{
				strconv.Itoa(i + 1),
				g.Name,
				g.Languages,
				strconv.FormatFloat(g.DirectWeight, 'f', -1, 64),
				strconv.FormatFloat(g.IndirectWeight, 'f', -1, 64),
				string(g.Style),
			})
		}
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("#", "Group", "Languages", "Direct", "Indirect", "Style").
			Rows(rows...)
		fmt.Fprintln(cmd.OutOrStdout(), t.String())
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{questionsCmd, groupsCmd} {
		c.Flags().BoolVar(&catalogJSON, "json", false, "print as JSON")
	}
}
