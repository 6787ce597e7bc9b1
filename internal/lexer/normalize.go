package lexer

import (
	"strings"
	"unicode"
)

// symbolReplacer rewrites the display symbols a calculator UI sends into
// their canonical internal spelling. "**" comes before anything containing
// '*' so Python-style exponents collapse into '^'.
var symbolReplacer = strings.NewReplacer(
	"**", "^",
	"×", "*",
	"÷", "/",
	"π", "pi",
	"−", "-", // U+2212 minus sign
	"–", "-", // en dash, seen from mobile keyboards
)

// Normalize rewrites raw user input into the canonical expression form:
// display symbols mapped to internal operators, whitespace removed, letters
// lowercased. It is total; anything it cannot map passes through unchanged
// and is rejected by the validator.
func Normalize(raw string) string {
	s := symbolReplacer.Replace(raw)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
