// Package language resolves target language identifiers for prompting.
// BCP 47 tags such as "fr" or "zh-Hans" become English display names,
// which steer chat models far more reliably than raw tags. Free-form
// names pass through untouched since the model interprets the prompt
// text itself, so nothing is ever rejected here.
package language

import (
	"strings"

	xlanguage "golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// DisplayName resolves name to an English language name when it parses
// as a BCP 47 tag, for example "fr" to "French". Anything that is not
// a recognized tag is returned trimmed but otherwise unchanged.
func DisplayName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || !tagShaped(trimmed) {
		return trimmed
	}

	tag, err := xlanguage.Parse(trimmed)
	if err != nil {
		return trimmed
	}

	if resolved := display.English.Languages().Name(tag); resolved != "" {
		return resolved
	}
	return trimmed
}

// tagShaped weeds out inputs that cannot be BCP 47 tags, such as
// "Simplified Chinese". Keeps Parse off the hot path for the common
// case of plain language names.
func tagShaped(s string) bool {
	if len(s) > 11 || strings.ContainsAny(s, " \t") {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return false
		}
	}
	return true
}
