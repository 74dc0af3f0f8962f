package decode

import (
	"strings"

	"github.com/katalvlaran/recipro/alphabet"
	"github.com/katalvlaran/recipro/mapping"
)

// Decode substitutes every ASCII letter of text through m, preserving
// case. Every other byte is copied unchanged, so multi-byte UTF-8 and
// invalid byte sequences survive as they are and the output has exactly
// the length of the input.
//
// Complexity: O(len(text)).
func Decode(text string, m mapping.Mapping) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for i := 0; i < len(text); i++ {
		b := text[i]
		l, err := alphabet.Parse(rune(b))
		if err != nil {
			sb.WriteByte(b)
			continue
		}
		sub := m.Partner(l)
		if alphabet.IsLower(rune(b)) {
			sb.WriteByte(byte(sub.Lower()))
		} else {
			sb.WriteByte(byte(sub))
		}
	}

	return sb.String()
}
