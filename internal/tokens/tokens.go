// Package tokens splits delimited option strings into bounded token lists.
package tokens

import (
	"strings"
	"unicode"
)

// Split splits raw on every character contained in separators. Each character is a
// delimiter on its own and runs of delimiters produce no empty tokens.
//
// When max is positive the result holds at most max elements and the last element
// is the raw input from the start of its token through the end of the string, so
// the remaining delimiters and tokens are kept verbatim. A max of zero or less
// returns every token.
func Split(raw, separators string, max int) []string {
	return split(raw, func(r rune) bool { return strings.ContainsRune(separators, r) }, max)
}

// SplitWhitespace is Split with any Unicode whitespace as the delimiter set.
func SplitWhitespace(raw string, max int) []string {
	return split(raw, unicode.IsSpace, max)
}

type span struct{ start, end int }

func split(raw string, isDelim func(rune) bool, max int) []string {
	var spans []span
	start := -1
	for i, r := range raw {
		if isDelim(r) {
			if start >= 0 {
				spans = append(spans, span{start, i})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		spans = append(spans, span{start, len(raw)})
	}

	limit := len(spans)
	if max > 0 && limit > max {
		limit = max
	}

	out := make([]string, 0, limit)
	for i := 0; i < limit; i++ {
		if max > 0 && i == limit-1 {
			out = append(out, raw[spans[i].start:])
			break
		}
		out = append(out, raw[spans[i].start:spans[i].end])
	}
	return out
}
