package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tom7834/Bookstore-Patterns/pkg/core/errors"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"locales/uk.toml": {Data: []byte(`
[messages]
welcome = "Вітаємо"
greet = "Привіт, {{.Name}}"
only_uk = "лише українською"
`)},
		"locales/en.yaml": {Data: []byte(`
messages:
  welcome: Welcome
  greet: "Hello, {{.Name}}"
`)},
		"locales/README.md": {Data: []byte("ignored")},
	}
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := New(Options{DefaultLocale: "uk", FS: testFS()})
	require.NoError(t, err)
	return m
}

func TestNew(t *testing.T) {
	t.Run("loads toml and yaml", func(t *testing.T) {
		m := newTestManager(t)
		assert.Equal(t, []string{"en", "uk"}, m.AvailableLocales())
		assert.Equal(t, "uk", m.Locale())
	})

	t.Run("empty default locale", func(t *testing.T) {
		_, err := New(Options{FS: testFS()})
		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidInput, errors.CodeOf(err))
	})

	t.Run("default locale missing", func(t *testing.T) {
		_, err := New(Options{DefaultLocale: "de", FS: testFS()})
		require.Error(t, err)
		assert.Equal(t, errors.CodeNotFound, errors.CodeOf(err))
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := New(Options{DefaultLocale: "uk", FS: testFS(), Dir: "nowhere"})
		require.Error(t, err)
		assert.Equal(t, errors.CodeNotFound, errors.CodeOf(err))
	})

	t.Run("broken file", func(t *testing.T) {
		fsys := testFS()
		fsys["locales/de.toml"] = &fstest.MapFile{Data: []byte("[messages\n")}
		_, err := New(Options{DefaultLocale: "uk", FS: fsys})
		require.Error(t, err)
		assert.Equal(t, errors.CodeInvalidInput, errors.CodeOf(err))
	})
}

func TestManager_T(t *testing.T) {
	m := newTestManager(t)

	tests := []struct {
		name     string
		locale   string
		key      string
		data     map[string]interface{}
		expected string
	}{
		{"default locale", "uk", "messages.welcome", nil, "Вітаємо"},
		{"english", "en", "messages.welcome", nil, "Welcome"},
		{"template", "en", "messages.greet", map[string]interface{}{"Name": "Olena"}, "Hello, Olena"},
		{"template in default", "uk", "messages.greet", map[string]interface{}{"Name": "Олег"}, "Привіт, Олег"},
		{"fallback to default locale", "en", "messages.only_uk", nil, "лише українською"},
		{"missing key renders key", "en", "messages.absent", nil, "messages.absent"},
		{"table is not a value", "en", "messages", nil, "messages"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.SetLocale(tt.locale)
			if tt.data != nil {
				assert.Equal(t, tt.expected, m.T(tt.key, tt.data))
			} else {
				assert.Equal(t, tt.expected, m.T(tt.key))
			}
		})
	}
}

func TestManager_TryT_Missing(t *testing.T) {
	m := newTestManager(t)

	_, err := m.TryT("nope")
	require.Error(t, err)
	assert.Equal(t, errors.CodeNotFound, errors.CodeOf(err))
}

func TestManager_NilIsSafe(t *testing.T) {
	var m *Manager
	assert.Equal(t, "cli.run_short", m.T("cli.run_short"))
	assert.Equal(t, DefaultLocale, m.Locale())
	assert.Equal(t, DefaultLocale, m.DefaultLocale())
	assert.Equal(t, DefaultLocale, m.SetLocale("en"))
	assert.Equal(t, DefaultLocale, m.Match("en-US"))
	assert.Empty(t, m.AvailableLocales())
	assert.Empty(t, m.Keys())
}

func TestManager_Match(t *testing.T) {
	m := newTestManager(t)

	tests := []struct {
		tag      string
		expected string
	}{
		{"", "uk"},
		{"uk", "uk"},
		{"uk-UA", "uk"},
		{"uk_UA.UTF-8", "uk"},
		{"en", "en"},
		{"en-GB", "en"},
		{"en_US.UTF-8", "en"},
		{"not a tag!", "uk"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.expected, m.Match(tt.tag))
		})
	}
}

func TestManager_SetLocale(t *testing.T) {
	m := newTestManager(t)

	assert.Equal(t, "en", m.SetLocale("en-US"))
	assert.Equal(t, "en", m.Locale())
	assert.Equal(t, "uk", m.DefaultLocale())
}

func TestManager_Keys(t *testing.T) {
	m := newTestManager(t)
	assert.Equal(t, []string{"messages.greet", "messages.only_uk", "messages.welcome"}, m.Keys())
}

func TestEnvLocale(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "en_US.UTF-8")

	assert.Equal(t, "uk", EnvLocale("uk"))
	assert.Equal(t, "en_US.UTF-8", EnvLocale(""))

	t.Setenv("LANG", "C")
	assert.Equal(t, "", EnvLocale(""))
}

func TestDefault_EmbeddedLocalesAgree(t *testing.T) {
	m, err := Default()
	require.NoError(t, err)
	require.Equal(t, []string{"en", "uk"}, m.AvailableLocales())

	ukKeys := m.Keys()
	m.SetLocale("en")
	assert.Equal(t, ukKeys, m.Keys())

	assert.Equal(t, "Run one or more demos", m.T("cli.run_short"))
	assert.Equal(t, "▶ Strategy: payment methods (strategy)",
		m.T("run.heading", map[string]interface{}{"Name": "strategy", "Title": m.T("demo.strategy")}))
}
