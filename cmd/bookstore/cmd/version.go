package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tom7834/Bookstore-Patterns/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:         "version",
	Annotations: map[string]string{shortKey: "cli.version_short"},
	Args:        cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Current()
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "Bookstore Patterns")
		fmt.Fprintf(out, "  %-10s %s\n", tr.T("version.app")+":", info.Version)
		fmt.Fprintf(out, "  %-10s %s (%s)\n", tr.T("version.locales")+":", version.Locales, strings.Join(tr.AvailableLocales(), ", "))
		fmt.Fprintf(out, "  %-10s %s\n", tr.T("version.commit")+":", info.GitCommit)
		fmt.Fprintf(out, "  %-10s %s\n", tr.T("version.built")+":", info.BuildDate)
		fmt.Fprintf(out, "  %-10s %s %s\n", tr.T("version.go")+":", info.GoVersion, info.Platform)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
