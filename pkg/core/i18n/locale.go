// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     i18n
// Description: Locale negotiation against the loaded translations
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package i18n

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Match returns the loaded locale that best serves tag. Tags may come from
// the --lang flag, config or POSIX variables ("uk_UA.UTF-8"). Unparseable or
// unmatched tags resolve to the default locale.
func (m *Manager) Match(tag string) string {
	if m == nil {
		return DefaultLocale
	}
	tag = normalizeTag(tag)
	if tag == "" {
		return m.defaultLocale
	}

	requested, err := language.Parse(tag)
	if err != nil {
		return m.defaultLocale
	}

	m.mu.RLock()
	supported := []string{m.defaultLocale}
	for locale := range m.translations {
		if locale != m.defaultLocale {
			supported = append(supported, locale)
		}
	}
	m.mu.RUnlock()

	tags := make([]language.Tag, 0, len(supported))
	names := make([]string, 0, len(supported))
	for _, locale := range supported {
		t, err := language.Parse(locale)
		if err != nil {
			continue
		}
		tags = append(tags, t)
		names = append(names, locale)
	}
	if len(tags) == 0 {
		return m.defaultLocale
	}

	_, index, confidence := language.NewMatcher(tags).Match(requested)
	if confidence == language.No || index < 0 || index >= len(names) {
		return m.defaultLocale
	}
	return names[index]
}

// EnvLocale returns the first non-empty of the given value, LC_ALL,
// LC_MESSAGES and LANG
func EnvLocale(preferred string) string {
	if preferred != "" {
		return preferred
	}
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(name); v != "" && v != "C" && v != "POSIX" {
			return v
		}
	}
	return ""
}

// normalizeTag turns POSIX locale names into BCP 47 tags
func normalizeTag(tag string) string {
	tag = strings.TrimSpace(tag)
	if i := strings.IndexAny(tag, ".@"); i >= 0 {
		tag = tag[:i]
	}
	return strings.ReplaceAll(tag, "_", "-")
}
