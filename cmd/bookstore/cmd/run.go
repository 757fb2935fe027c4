package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Tom7834/Bookstore-Patterns/internal/demo"
	"github.com/Tom7834/Bookstore-Patterns/pkg/core/errors"
	"github.com/Tom7834/Bookstore-Patterns/pkg/core/log"
)

var runAll bool

var headingStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#F59E0B")).
	BorderStyle(lipgloss.NormalBorder()).
	BorderBottom(true).
	BorderForeground(lipgloss.Color("#6B7280"))

var runCmd = &cobra.Command{
	Use:         "run [demo...]",
	Annotations: map[string]string{shortKey: "cli.run_short"},
	RunE:        runDemos,
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return demo.Default().Names(), cobra.ShellCompDirectiveNoFileComp
	},
}

func init() {
	runCmd.Flags().BoolVar(&runAll, "all", false, "run every demo in order")
	rootCmd.AddCommand(runCmd)
}

func runDemos(cmd *cobra.Command, args []string) error {
	registry := demo.Default()

	names := args
	if runAll {
		names = registry.Names()
	}
	if len(names) == 0 {
		return errors.InvalidInput("cmd.run", tr.T("cli.no_demo"))
	}
	// unknown names fail before anything runs
	for _, name := range names {
		if _, err := registry.Lookup(name); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	env := demo.Env{
		Out:          out,
		Logger:       logger,
		BookDatabase: demo.BookDatabaseFor(cfg.Proxy),
	}

	logger.Debug("running demos", log.Int("count", len(names)))
	for i, name := range names {
		if cfg.Output.Headings {
			if i > 0 {
				fmt.Fprintln(out)
			}
			heading := tr.T("run.heading", map[string]interface{}{
				"Name":  name,
				"Title": tr.T("demo." + name),
			})
			fmt.Fprintln(out, headingStyle.Width(cfg.Output.Width).Render(heading))
		}

		if err := registry.Run(cmd.Context(), env, name); err != nil {
			return errors.Wrap(err, tr.T("run.failed", map[string]interface{}{"Name": name})).
				WithOperation("cmd.run")
		}
	}
	return nil
}
