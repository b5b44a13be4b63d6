// Package textwrap wraps help text to a column width.
package textwrap

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultLineLength is the column width used for help text when none is given.
const DefaultLineLength = 79

const tabSize = 8

// Normalize wraps every line of text to lineLen columns, keeping existing
// line breaks. Each output line is prefixed by indent, and indent counts
// against lineLen. Blank lines become indent alone.
func Normalize(text string, lineLen int, indent string) string {
	width := lineLen - runewidth.StringWidth(indent)
	var lines []string
	for _, line := range splitLines(text) {
		if strings.TrimSpace(line) == "" {
			lines = append(lines, indent)
			continue
		}
		wrapped := Wrap(line, width)
		if len(wrapped) == 0 {
			lines = append(lines, indent)
			continue
		}
		for _, w := range wrapped {
			lines = append(lines, indent+w)
		}
	}
	return strings.Join(lines, "\n")
}

// Wrap wraps a single paragraph to width columns and returns the lines
// without trailing newlines.
//
// Tabs expand to 8-column stops and other ASCII whitespace becomes a space.
// Leading whitespace of the paragraph is kept; whitespace at the start of
// continuation lines and at the end of any line is dropped. Words wider than
// width are broken.
func Wrap(line string, width int) []string {
	if width < 1 {
		width = 1
	}
	chunks := splitChunks(expandWhitespace(line))

	var lines []string
	for len(chunks) > 0 {
		var cur []string
		curLen := 0

		if len(lines) > 0 && isBlank(chunks[0]) {
			chunks = chunks[1:]
		}
		for len(chunks) > 0 {
			w := runewidth.StringWidth(chunks[0])
			if curLen+w > width {
				break
			}
			cur = append(cur, chunks[0])
			curLen += w
			chunks = chunks[1:]
		}
		if len(chunks) > 0 && runewidth.StringWidth(chunks[0]) > width {
			head, tail := cutWidth(chunks[0], width-curLen)
			if head != "" {
				cur = append(cur, head)
				chunks[0] = tail
			} else if len(cur) == 0 {
				// Nothing fits, not even one rune: emit one rune anyway.
				r := []rune(chunks[0])
				cur = append(cur, string(r[0]))
				chunks[0] = string(r[1:])
			}
		}
		if n := len(cur); n > 0 && isBlank(cur[n-1]) {
			cur = cur[:n-1]
		}
		if len(cur) > 0 {
			lines = append(lines, strings.Join(cur, ""))
		}
	}
	return lines
}

// splitLines splits on \n, \r\n and \r and drops a final empty line.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// asciiSpace lists the break characters besides tab. Other Unicode spaces,
// such as U+00A0, stay part of their word.
const asciiSpace = "\n\v\f\r "

func expandWhitespace(s string) string {
	var b strings.Builder
	col := 0
	for _, r := range s {
		switch {
		case r == '\t':
			n := tabSize - col%tabSize
			b.WriteString(strings.Repeat(" ", n))
			col += n
		case strings.ContainsRune(asciiSpace, r):
			b.WriteByte(' ')
			col++
		default:
			b.WriteRune(r)
			col += runewidth.RuneWidth(r)
		}
	}
	return b.String()
}

// splitChunks splits s into alternating runs of spaces and non-spaces.
func splitChunks(s string) []string {
	var chunks []string
	start := 0
	for i := 1; i <= len(s); i++ {
		if i == len(s) || (s[i] == ' ') != (s[i-1] == ' ') {
			chunks = append(chunks, s[start:i])
			start = i
		}
	}
	return chunks
}

// cutWidth splits s after the longest prefix that fits in width columns.
func cutWidth(s string, width int) (head, tail string) {
	w := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > width {
			return s[:i], s[i:]
		}
		w += rw
	}
	return s, ""
}

// isBlank reports whether a chunk is a run of spaces.
func isBlank(s string) bool {
	return strings.Trim(s, " ") == ""
}
