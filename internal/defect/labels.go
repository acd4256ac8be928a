package defect

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Humanize turns a field name into a report label: "hoseStatus" becomes
// "Hose Status", "dutyPump" becomes "Duty Pump" and "panel_LED_state"
// becomes "Panel LED State". Upper-case runs are kept as acronyms.
func Humanize(key string) string {
	words := splitWords(key)
	if len(words) == 0 {
		return key
	}

	// cases.Caser is stateful; one per call.
	title := cases.Title(language.English)
	for i, w := range words {
		if isUpperWord(w) {
			continue
		}
		words[i] = title.String(w)
	}
	return strings.Join(words, " ")
}

func splitWords(key string) []string {
	var (
		words []string
		cur   []rune
	)
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	rs := []rune(key)
	for i, r := range rs {
		if r == '_' || r == '-' || r == ' ' || r == '.' {
			flush()
			continue
		}
		if unicode.IsUpper(r) && len(cur) > 0 {
			prev := rs[i-1]
			nextLower := i+1 < len(rs) && unicode.IsLower(rs[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}

func isUpperWord(w string) bool {
	if len([]rune(w)) < 2 {
		return false
	}
	for _, r := range w {
		if unicode.IsLower(r) {
			return false
		}
	}
	return true
}
