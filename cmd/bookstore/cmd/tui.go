package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Tom7834/Bookstore-Patterns/internal/demo"
	"github.com/Tom7834/Bookstore-Patterns/internal/tui"
	"github.com/Tom7834/Bookstore-Patterns/pkg/core/log"
)

var tuiCmd = &cobra.Command{
	Use:         "tui",
	Annotations: map[string]string{shortKey: "cli.tui_short"},
	Args:        cobra.NoArgs,
	RunE:        runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	logger.Debug("starting demo browser")

	return tui.Run(tui.Config{
		Context:  cmd.Context(),
		Registry: demo.Default(),
		Env: demo.Env{
			// log lines on stderr would tear the alt screen
			Logger:       log.Discard(),
			BookDatabase: demo.BookDatabaseFor(cfg.Proxy),
		},
		Translator: tr,
	})
}
