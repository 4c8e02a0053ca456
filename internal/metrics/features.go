package metrics

import (
	"strings"
	"unicode/utf8"
)

// Features holds local text features for one prompt. Words is the
// same quantity the token heuristic bills per message, so observed
// features line up directly with budget estimates.
type Features struct {
	Bytes int
	Runes int
	Words int
	Lines int
}

// CountFeatures computes byte, rune, word, and line counts for a
// prompt. Words split on Unicode whitespace; an empty string has zero
// lines, otherwise lines is 1 plus the '\n' count.
func CountFeatures(s string) Features {
	f := Features{
		Bytes: len(s),
		Runes: utf8.RuneCountInString(s),
		Words: len(strings.Fields(s)),
	}
	if s != "" {
		f.Lines = 1 + strings.Count(s, "\n")
	}
	return f
}
