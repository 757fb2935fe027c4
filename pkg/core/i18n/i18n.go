// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     i18n
// Description: Translation manager for CLI and TUI texts (TOML and YAML)
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package i18n localises the command line chrome: command descriptions,
// demo titles, table headers and TUI labels. Locale files are nested tables
// addressed with dot notation ("cli.run_short"). Values may be text/template
// strings rendered with the data passed to T.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"text/template"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/Tom7834/Bookstore-Patterns/pkg/core/errors"
)

// DefaultLocale is the locale used when nothing better matches
const DefaultLocale = "uk"

//go:embed locales/*
var embedded embed.FS

// Options configures a Manager
type Options struct {
	DefaultLocale string // Default locale (e.g. "uk")
	FS            fs.FS  // File system holding the locale files
	Dir           string // Directory inside FS (default: "locales")
}

// Manager resolves translation keys for the current locale
type Manager struct {
	mu            sync.RWMutex
	defaultLocale string
	currentLocale string
	translations  map[string]map[string]interface{} // locale -> translations
	templates     map[string]*template.Template     // locale:key -> compiled template
}

// New loads every *.toml, *.yaml and *.yml file found in the options directory
func New(opts Options) (*Manager, error) {
	if strings.TrimSpace(opts.DefaultLocale) == "" {
		return nil, errors.New("default locale cannot be empty").
			WithCode(errors.CodeInvalidInput).
			WithOperation("i18n.New")
	}
	if opts.FS == nil {
		opts.FS = embedded
	}
	if opts.Dir == "" {
		opts.Dir = "locales"
	}

	m := &Manager{
		defaultLocale: opts.DefaultLocale,
		currentLocale: opts.DefaultLocale,
		translations:  make(map[string]map[string]interface{}),
		templates:     make(map[string]*template.Template),
	}
	if err := m.loadAll(opts.FS, opts.Dir); err != nil {
		return nil, err
	}
	return m, nil
}

// Default returns a manager over the embedded locales
func Default() (*Manager, error) {
	return New(Options{DefaultLocale: DefaultLocale})
}

func (m *Manager) loadAll(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return errors.Wrap(err, "locales directory not readable").
			WithCode(errors.CodeNotFound).
			WithOperation("i18n.loadAll").
			WithDetail("directory", dir)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(path.Ext(name))
		locale := strings.TrimSuffix(name, path.Ext(name))
		if locale == "" {
			continue
		}

		data, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return errors.Wrap(err, "failed to read locale file").
				WithCode(errors.CodeInternal).
				WithDetail("file", name)
		}

		translations := make(map[string]interface{})
		switch ext {
		case ".toml":
			err = toml.Unmarshal(data, &translations)
		case ".yaml", ".yml":
			err = yaml.Unmarshal(data, &translations)
		default:
			continue
		}
		if err != nil {
			return errors.Wrap(err, "failed to parse locale file").
				WithCode(errors.CodeInvalidInput).
				WithOperation("i18n.loadAll").
				WithDetail("file", name)
		}
		m.translations[locale] = translations
	}

	if _, ok := m.translations[m.defaultLocale]; !ok {
		return errors.New("default locale not found").
			WithCode(errors.CodeNotFound).
			WithOperation("i18n.loadAll").
			WithDetail("locale", m.defaultLocale)
	}
	return nil
}

// T translates key; a missing key renders as the key itself
func (m *Manager) T(key string, data ...map[string]interface{}) string {
	text, err := m.TryT(key, data...)
	if err != nil && text == "" {
		return key
	}
	return text
}

// TryT translates key and reports a missing translation or a broken template
func (m *Manager) TryT(key string, data ...map[string]interface{}) (string, error) {
	if m == nil {
		return "", errors.New("translation not found").WithCode(errors.CodeNotFound).WithDetail("key", key)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	locale, text := m.lookup(key)
	if text == "" {
		return "", errors.New("translation not found").
			WithCode(errors.CodeNotFound).
			WithOperation("i18n.TryT").
			WithDetail("key", key)
	}
	if len(data) == 0 || data[0] == nil || !strings.Contains(text, "{{") {
		return text, nil
	}

	cacheKey := locale + ":" + key
	tmpl, ok := m.templates[cacheKey]
	if !ok {
		var err error
		tmpl, err = template.New(cacheKey).Option("missingkey=zero").Parse(text)
		if err != nil {
			return text, errors.Wrap(err, "template compilation failed").
				WithCode(errors.CodeInvalidInput).
				WithDetail("key", key)
		}
		m.templates[cacheKey] = tmpl
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data[0]); err != nil {
		return text, errors.Wrap(err, "template rendering failed").
			WithCode(errors.CodeInvalidInput).
			WithDetail("key", key)
	}
	return b.String(), nil
}

// lookup finds key in the current locale, then in the default locale
func (m *Manager) lookup(key string) (string, string) {
	for _, locale := range []string{m.currentLocale, m.defaultLocale} {
		if text := nestedValue(m.translations[locale], key); text != "" {
			return locale, text
		}
	}
	return "", ""
}

func nestedValue(data map[string]interface{}, key string) string {
	if data == nil {
		return ""
	}
	parts := strings.Split(key, ".")
	current := data
	for i, part := range parts {
		value, ok := current[part]
		if !ok {
			return ""
		}
		if i == len(parts)-1 {
			if _, isMap := value.(map[string]interface{}); isMap {
				return ""
			}
			return fmt.Sprint(value)
		}
		next, ok := value.(map[string]interface{})
		if !ok {
			return ""
		}
		current = next
	}
	return ""
}

// SetLocale negotiates tag against the loaded locales and switches to the
// best match. It returns the locale actually selected.
func (m *Manager) SetLocale(tag string) string {
	if m == nil {
		return DefaultLocale
	}
	selected := m.Match(tag)
	m.mu.Lock()
	m.currentLocale = selected
	m.mu.Unlock()
	return selected
}

// Locale returns the current locale
func (m *Manager) Locale() string {
	if m == nil {
		return DefaultLocale
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentLocale
}

// DefaultLocale returns the fallback locale
func (m *Manager) DefaultLocale() string {
	if m == nil {
		return DefaultLocale
	}
	return m.defaultLocale
}

// AvailableLocales returns the loaded locales, sorted
func (m *Manager) AvailableLocales() []string {
	if m == nil {
		return nil
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	locales := make([]string, 0, len(m.translations))
	for locale := range m.translations {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// Keys returns every translation key of the current locale, sorted
func (m *Manager) Keys() []string {
	if m == nil {
		return nil
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return collectKeys(m.translations[m.currentLocale], "")
}

func collectKeys(data map[string]interface{}, prefix string) []string {
	var keys []string
	for key, value := range data {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		if nested, ok := value.(map[string]interface{}); ok {
			keys = append(keys, collectKeys(nested, full)...)
			continue
		}
		keys = append(keys, full)
	}
	sort.Strings(keys)
	return keys
}
