package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/Tom7834/Bookstore-Patterns/internal/demo"
)

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

var listCmd = &cobra.Command{
	Use:         "list",
	Annotations: map[string]string{shortKey: "cli.list_short"},
	Args:        cobra.NoArgs,
	RunE:        runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(tr.T("list.name"), tr.T("list.patterns"), tr.T("list.title")).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		})

	for _, d := range demo.Default().Demos() {
		t.Row(d.Name, strings.Join(d.Patterns, ", "), tr.T("demo."+d.Name))
	}

	fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	return nil
}
