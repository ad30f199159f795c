package seed

import (
	"strings"
	"unicode"

	"github.com/dmitrymomot/seedgen/pkg/i18n"
)

var stringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// quote returns s as a double-quoted literal that fits on one line.
func quote(s string) string {
	return `"` + stringEscaper.Replace(s) + `"`
}

// formatKey leaves identifiers bare and quotes everything else.
func formatKey(key string) string {
	if isIdentifier(key) {
		return key
	}
	return quote(key)
}

// formatLocalized renders `en: "...", de: "..."` in language order.
func formatLocalized(value i18n.LocalizedValue) string {
	parts := make([]string, 0, len(value))
	for _, t := range value {
		parts = append(parts, formatKey(t.Lang)+": "+quote(t.Text))
	}
	return strings.Join(parts, ", ")
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}
