package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tom7834/Bookstore-Patterns/pkg/core/errors"
)

// runCLI executes the command tree in an isolated environment
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	resetFlags(rootCmd)
	t.Setenv("BOOKSTORE_CONFIG", "")
	t.Setenv("BOOKSTORE_LOCALE", "")
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "")
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	var stdout, stderr bytes.Buffer
	err := execute(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

// resetFlags undoes what earlier executions parsed into the shared tree
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestList(t *testing.T) {
	stdout, _, err := runCLI(t, "--lang", "en", "list")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Patterns")
	assert.Contains(t, stdout, "memento-visitor")
	assert.Contains(t, stdout, "Factory Method: fiction and science books")
	assert.Contains(t, stdout, "template method")
}

func TestRun(t *testing.T) {
	stdout, stderr, err := runCLI(t, "--lang", "en", "run", "strategy", "observer")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	assert.Contains(t, stdout, "▶ Strategy: payment methods (strategy)")
	assertOrdered(t, stdout,
		"Оплата карткою на суму 500 гривень.",
		"Observer: shipping notifications",
		"Push: Ваше замовлення було відправлено!",
	)
}

func TestRun_DefaultLocale(t *testing.T) {
	stdout, _, err := runCLI(t, "run", "strategy")
	require.NoError(t, err)

	assert.Equal(t, "uk", tr.Locale())
	assert.Contains(t, stdout, "▶ Стратегія: способи оплати (strategy)")
}

func TestRun_All(t *testing.T) {
	stdout, _, err := runCLI(t, "run", "--all")
	require.NoError(t, err)

	assertOrdered(t, stdout,
		"Художня книга: \"1984\" - Джордж Орвелл, $12.99",
		"Cache hit for: Dune",
		"[Результат перевірки повернення]: Повернено у продаж",
		"Загальний прибуток: 400",
		"Загальна вартість інвентарю: $1302.60",
	)
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		code    errors.Code
		message string
	}{
		{"unknown demo", []string{"--lang", "en", "run", "strategy", "singleton"}, errors.CodeNotFound, "Error"},
		{"no demo", []string{"--lang", "en", "run"}, errors.CodeInvalidInput, "name a demo or pass --all"},
		{"missing config", []string{"--config", "/nowhere/config.toml", "run", "strategy"}, errors.CodeMissingConfig, "config file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := runCLI(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.CodeOf(err))
			assert.Contains(t, stderr, tt.message)
			assert.Empty(t, stdout)
		})
	}
}

func TestRun_ConfigFile(t *testing.T) {
	path := writeConfig(t, `
[general]
locale = "en"

[output]
headings = false
`)
	stdout, _, err := runCLI(t, "--config", path, "run", "strategy")
	require.NoError(t, err)

	assert.Equal(t, "en", tr.Locale())
	assert.Equal(t, "Оплата карткою на суму 500 гривень.\n", stdout)
}

func TestRun_LangFlagBeatsConfig(t *testing.T) {
	path := writeConfig(t, "[general]\nlocale = \"en\"\n")

	_, _, err := runCLI(t, "--config", path, "--lang", "uk", "version")
	require.NoError(t, err)
	assert.Equal(t, "uk", tr.Locale())
}

func TestRun_SQLiteProxy(t *testing.T) {
	path := writeConfig(t, `
[output]
headings = false

[proxy]
backend = "sqlite"
dsn = "`+filepath.ToSlash(filepath.Join(t.TempDir(), "books.db"))+`"
`)
	stdout, _, err := runCLI(t, "--config", path, "run", "proxy")
	require.NoError(t, err)
	assert.Equal(t, "Fetching real info for: Dune\nReal info about Dune\n"+
		"Cache hit for: Dune\nReal info about Dune\n", stdout)
}

func TestVerboseLogsGoToStderr(t *testing.T) {
	stdout, stderr, err := runCLI(t, "-v", "--lang", "en", "run", "strategy")
	require.NoError(t, err)

	assert.Contains(t, stderr, "configuration loaded")
	assert.Contains(t, stderr, "demo strategy completed")
	assert.NotContains(t, stdout, "configuration loaded")
}

func TestVersion(t *testing.T) {
	stdout, _, err := runCLI(t, "--lang", "en", "version")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Bookstore Patterns")
	assert.Contains(t, stdout, "Version:")
	assert.Contains(t, stdout, "en, uk")
}

func TestHelpIsLocalised(t *testing.T) {
	stdout, _, err := runCLI(t, "--lang", "en", "--help")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Run one or more demos")

	stdout, _, err = runCLI(t, "--lang", "uk", "--help")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Запустити одну або кілька демонстрацій")
}

func assertOrdered(t *testing.T, out string, fragments ...string) {
	t.Helper()
	rest := out
	for _, f := range fragments {
		i := strings.Index(rest, f)
		if !assert.GreaterOrEqual(t, i, 0, "fragment %q missing or out of order", f) {
			return
		}
		rest = rest[i+len(f):]
	}
}

func TestCommands_WithoutTranslator(t *testing.T) {
	resetFlags(rootCmd)
	t.Setenv("BOOKSTORE_CONFIG", "")
	t.Setenv("BOOKSTORE_LOG_FORMAT", "text")
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	saved := tr
	tr = nil
	t.Cleanup(func() { tr = saved })

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	verbose = true
	t.Cleanup(func() { verbose = false })

	require.NoError(t, setup(rootCmd, nil))
	assert.Contains(t, stderr.String(), `locale=uk`)

	printError(&stderr, errors.New("boom"))
	assert.Contains(t, stderr.String(), "cli.error")
	assert.Contains(t, stderr.String(), "boom")
}
