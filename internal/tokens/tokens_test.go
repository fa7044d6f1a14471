package tokens

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		separators string
		max        int
		expected   []string
	}{
		{"all tokens", "a,b,c", ",", -1, []string{"a", "b", "c"}},
		{"zero max", "a,b,c", ",", 0, []string{"a", "b", "c"}},
		{"remainder kept verbatim", "a,b,c,d", ",", 2, []string{"a", "b,c,d"}},
		{"remainder keeps mixed delimiters", "a;b,,c;d", ",;", 3, []string{"a", "b", "c;d"}},
		{"max equal to count", "a,b,c", ",", 3, []string{"a", "b", "c"}},
		{"each character is a delimiter", "a.b-c", ".-", -1, []string{"a", "b", "c"}},
		{"runs of delimiters", ",,a,,b,,", ",", -1, []string{"a", "b"}},
		{"multi-character separator is a set", "a::b:c", "::", -1, []string{"a", "b", "c"}},
		{"empty input", "", ",", -1, []string{}},
		{"only delimiters", ",,,", ",", 2, []string{}},
		{"max of one", "g:a:C:/repo/a.jar", ":", 1, []string{"g:a:C:/repo/a.jar"}},
		{"artifact with drive letter", "g:a:C:/repo/a.jar", ":", 3, []string{"g", "a", "C:/repo/a.jar"}},
		{"leading delimiters not in remainder", "  x,y", ", ", 1, []string{"x,y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Split(tt.raw, tt.separators, tt.max))
		})
	}
}

func TestSplitWhitespace(t *testing.T) {
	assert.Equal(t, []string{"-Xmx512m", "-ea", "-Dfoo=bar"}, SplitWhitespace(" -Xmx512m\t-ea\n -Dfoo=bar ", -1))
	assert.Equal(t, []string{"-Xmx512m", "-ea\n -Dfoo=bar "}, SplitWhitespace("-Xmx512m -ea\n -Dfoo=bar ", 2))
	assert.Empty(t, SplitWhitespace(" \t\n", -1))
}

func TestSplit_RejoinIsTokenEquivalent(t *testing.T) {
	inputs := []string{"a,b,c", ",a,,b", "FooTest,BarTest", "x"}
	for _, in := range inputs {
		parts := Split(in, ",", -1)
		assert.Equal(t, parts, Split(strings.Join(parts, ","), ",", -1), in)
	}
}
