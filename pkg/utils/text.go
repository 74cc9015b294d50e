package utils

import (
	"strings"
	"unicode"
)

// NormalizeLabel remove espaços das pontas e coloca cada palavra em caixa de título.
// Uma letra inicia palavra quando o caractere anterior não é letra ("3d" -> "3D",
// "o'neil" -> "O'Neil").
func NormalizeLabel(label string) string {
	label = strings.TrimSpace(label)

	var b strings.Builder
	b.Grow(len(label))

	prevLetter := false
	for _, r := range label {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToTitle(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}

	return b.String()
}
