package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Tom7834/Bookstore-Patterns/pkg/core/config"
	"github.com/Tom7834/Bookstore-Patterns/pkg/core/i18n"
	"github.com/Tom7834/Bookstore-Patterns/pkg/core/log"
	"github.com/Tom7834/Bookstore-Patterns/pkg/core/logging"
)

// shortKey annotates a command with the translation key of its Short text
const shortKey = "i18n.short"

var (
	cfgFile string
	verbose bool
	lang    string

	cfg    *config.Config
	logger *log.Logger
	tr     *i18n.Manager
)

var errorLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)

var rootCmd = &cobra.Command{
	Use:               "bookstore",
	Annotations:       map[string]string{shortKey: "cli.root_short"},
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the CLI with the process arguments until it finishes or an
// interrupt arrives
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
}

// execute runs the command tree with args; demo output goes to stdout and
// logs and errors to stderr
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	tr = translator(args)
	localize(rootCmd)

	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		printError(stderr, err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logs (debug level)")
	rootCmd.PersistentFlags().StringVar(&lang, "lang", "", "interface language (uk, en)")
}

// setup loads the configuration and builds the run logger
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := loadConfig(cfgFile)
	if err != nil {
		return err
	}
	cfg = loaded

	logCfg := logging.DefaultLoggerConfig("bookstore")
	logCfg.Level = cfg.Logging.Level
	logCfg.Format = cfg.Logging.Format
	logCfg.Output = cmd.ErrOrStderr()
	if verbose {
		logCfg.Level = "debug"
	}

	var runID string
	logger, runID = logging.NewRunLogger(logCfg)
	logger.Debug("configuration loaded",
		log.String("command", cmd.Name()),
		log.String("locale", tr.Locale()),
		log.String("proxy_backend", cfg.Proxy.Backend),
		log.String("run_id", runID))
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadFromEnv()
}

// translator picks the interface language before cobra parses anything, so
// that help output is localised too. Order: --lang, then the configured
// locale, then the POSIX locale variables.
func translator(args []string) *i18n.Manager {
	m, err := i18n.Default()
	if err != nil {
		// a nil manager answers with the keys themselves
		return nil
	}

	var flagLang, flagConfig string
	fs := pflag.NewFlagSet("prescan", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.StringVar(&flagLang, "lang", "", "")
	fs.StringVar(&flagConfig, "config", "", "")
	_ = fs.Parse(args)

	locale := flagLang
	if locale == "" {
		if c, err := loadConfig(flagConfig); err == nil {
			locale = c.General.Locale
		}
	}
	m.SetLocale(i18n.EnvLocale(locale))
	return m
}

// localize sets command descriptions and flag usages in the current locale
func localize(root *cobra.Command) {
	var walk func(c *cobra.Command)
	walk = func(c *cobra.Command) {
		if key, ok := c.Annotations[shortKey]; ok {
			c.Short = tr.T(key)
		}
		for _, sub := range c.Commands() {
			walk(sub)
		}
	}
	walk(root)
	root.Long = tr.T("cli.root_long")

	usages := map[string]string{
		"config":  "cli.config_flag",
		"verbose": "cli.verbose_flag",
		"lang":    "cli.lang_flag",
	}
	for name, key := range usages {
		if f := root.PersistentFlags().Lookup(name); f != nil {
			f.Usage = tr.T(key)
		}
	}
	if f := runCmd.Flags().Lookup("all"); f != nil {
		f.Usage = tr.T("cli.run_all_flag")
	}
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s: %v\n", errorLabelStyle.Render(tr.T("cli.error")), err)
}
