// Package textdiff computes and prints line diffs between two texts.
package textdiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	OpEqual Op = iota
	OpDelete
	OpInsert
)

// Line is one line of a diff, without its trailing newline.
type Line struct {
	Op   Op
	Text string
}

// Lines diffs oldText against newText line by line.
func Lines(oldText, newText string) []Line {
	dmp := diffmatchpatch.New()
	rOld, rNew, lineArray := dmp.DiffLinesToRunes(oldText, newText)
	diffs := dmp.DiffMainRunes(rOld, rNew, false)
	diffs = dmp.DiffCleanupMerge(diffs)

	var out []Line
	for _, d := range diffs {
		var op Op
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			op = OpDelete
		case diffmatchpatch.DiffInsert:
			op = OpInsert
		default:
			op = OpEqual
		}
		for _, r := range d.Text {
			idx := int(r)
			if idx < 0 || idx >= len(lineArray) {
				continue
			}
			out = append(out, Line{Op: op, Text: strings.TrimSuffix(lineArray[idx], "\n")})
		}
	}
	return out
}

// Changed reports whether lines contain any insertion or deletion.
func Changed(lines []Line) bool {
	for _, l := range lines {
		if l.Op != OpEqual {
			return true
		}
	}
	return false
}

// Render writes lines with " ", "-" or "+" prefixes. When colored, deletions
// are red and insertions green.
func Render(w io.Writer, lines []Line, colored bool) error {
	del := color.New(color.FgRed)
	ins := color.New(color.FgGreen)
	if colored {
		del.EnableColor()
		ins.EnableColor()
	} else {
		del.DisableColor()
		ins.DisableColor()
	}
	for _, l := range lines {
		var err error
		switch l.Op {
		case OpDelete:
			_, err = del.Fprintln(w, "-"+l.Text)
		case OpInsert:
			_, err = ins.Fprintln(w, "+"+l.Text)
		default:
			_, err = fmt.Fprintln(w, " "+l.Text)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
