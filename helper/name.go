package helper

import (
	"strings"
	"unicode"
)

// FormatCategoryName keeps letters and spaces only, collapses runs of
// whitespace and title-cases each word. Empty or all-invalid input
// yields "" and fails the required-field check downstream.
func FormatCategoryName(raw string) string {
	return formatName(raw, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsSpace(r)
	})
}

// FormatPackageName allows a broader set than category names: letters,
// digits, spaces and the characters &'- that show up in package titles.
func FormatPackageName(raw string) string {
	return formatName(raw, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) ||
			r == '&' || r == '\'' || r == '-'
	})
}

func formatName(raw string, allowed func(rune) bool) string {
	var b strings.Builder
	for _, r := range raw {
		if allowed(r) {
			b.WriteRune(r)
		}
	}

	words := strings.Fields(strings.ToLower(b.String()))
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// CleanDigits strips every non-digit rune and any redundant leading
// zeros, so "0050" becomes "50" and "00" becomes "".
func CleanDigits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return strings.TrimLeft(b.String(), "0")
}

// CleanDecimal is CleanDigits for price fields: it keeps the first
// decimal point so "12.50" survives while "0050" still becomes "50".
func CleanDecimal(raw string) string {
	var b strings.Builder
	dotSeen := false
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			continue
		}
		if r == '.' && !dotSeen {
			b.WriteRune(r)
			dotSeen = true
		}
	}
	s := b.String()
	trimmed := strings.TrimLeft(s, "0")
	if strings.HasPrefix(trimmed, ".") {
		trimmed = "0" + trimmed
	}
	return trimmed
}

// HasRedundantLeadingZero reports whether the textual form of a number
// still carries a leading zero ("050", "007"). "0.5" is fine.
func HasRedundantLeadingZero(s string) bool {
	return len(s) > 1 && s[0] == '0' && !strings.HasPrefix(s, "0.")
}
