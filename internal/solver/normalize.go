package solver

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// asciiFold maps typographic characters that problem statements pasted from
// rendered documents commonly carry onto the ASCII forms the plugin
// triggers expect.
var asciiFold = strings.NewReplacer(
	"−", "-", // minus sign
	"–", "-", // en dash
	"—", "-", // em dash
	"×", "*", // multiplication sign
	"∗", "*", // asterisk operator
	"÷", "/", // division sign
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
	"²", "^2",
	"³", "^3",
)

// Normalize canonicalizes a problem statement before trigger matching:
// NFC Unicode normalization, typographic punctuation folded to ASCII, all
// whitespace runs (including NBSP and friends) collapsed to single spaces,
// and surrounding whitespace trimmed.
//
// Trigger regexes across the plugins assume this form; the dispatcher
// applies it exactly once per solve.
func Normalize(text string) string {
	text = norm.NFC.String(text)
	text = asciiFold.Replace(text)

	var b strings.Builder
	b.Grow(len(text))
	space := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}
