// Package splitlist splits delimiter-separated option values into tokens.
//
// The brace-aware splitter keeps `{...}` groups intact, so a pattern list such
// as `\d{1,2},\w{3,5}` yields two patterns instead of four fragments.
package splitlist

import (
	"strings"
	"unicode/utf8"
)

// DefaultSeparator is the separator used by option values unless told otherwise.
const DefaultSeparator = ','

// Input is either raw text to be split (Raw) or an already split sequence (Tokens).
type Input interface {
	tokens() []string
}

// Raw is unsplit text plus the separator to split it on. A zero Sep means DefaultSeparator.
type Raw struct {
	Text string
	Sep  rune
}

func (r Raw) tokens() []string {
	sep := r.Sep
	if sep == 0 {
		sep = DefaultSeparator
	}
	return SplitBraced(r.Text, sep)
}

// Tokens is a sequence that was split by the caller. Tokenize returns it unchanged.
type Tokens []string

func (t Tokens) tokens() []string {
	return []string(t)
}

// Tokenize returns the tokens of in. Raw input is split with SplitBraced; Tokens pass through untouched.
func Tokenize(in Input) []string {
	if in == nil {
		return nil
	}
	return in.tokens()
}

// SplitBraced splits text on sep wherever the scan is outside any brace group,
// trims whitespace around every piece and drops blank pieces.
//
// Braces are counted, not matched: `{{1,2}}` stays whole. An unmatched `}`
// drives the depth negative, which still counts as outside any group, so it
// never suppresses later splits. An unmatched `{` suppresses every split
// after it.
func SplitBraced(text string, sep rune) []string {
	var out []string
	for _, field := range Fields(text, sep) {
		if s := strings.TrimSpace(field); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Fields is the raw scan behind SplitBraced: the pieces between top-level
// separators, untrimmed, blank ones included. Joining the result with sep
// reproduces text exactly.
func Fields(text string, sep rune) []string {
	var (
		fields []string
		depth  int
		start  int
	)
	for i := 0; i < len(text); {
		// Invalid bytes decode as utf8.RuneError with size 1.
		r, size := utf8.DecodeRuneInString(text[i:])
		switch {
		case r == '{':
			depth++
		case r == '}':
			depth--
		case r == sep && depth <= 0:
			fields = append(fields, text[start:i])
			start = i + size
		}
		i += size
	}
	return append(fields, text[start:])
}

// SplitStrip splits text on every sep, ignoring braces, trims and unquotes
// each piece and drops blank pieces.
//
//	SplitStrip("a, b, c   ,  4,,", ',') // ["a" "b" "c" "4"]
func SplitStrip(text string, sep rune) []string {
	var out []string
	for _, field := range strings.Split(text, string(sep)) {
		if s := strings.TrimSpace(field); s != "" {
			out = append(out, Unquote(s))
		}
	}
	return out
}

// Unquote removes one optional leading and one optional trailing quote (single or double).
// The two quotes need not match.
func Unquote(s string) string {
	if s == "" {
		return s
	}
	if s[0] == '"' || s[0] == '\'' {
		s = s[1:]
	}
	if n := len(s); n > 0 && (s[n-1] == '"' || s[n-1] == '\'') {
		s = s[:n-1]
	}
	return s
}
