package treedump

import (
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Op is the kind of a diff line.
type Op int8

// Diff line operations.
const (
	OpEqual Op = iota
	OpInsert
	OpDelete
)

// Prefix returns the two-character marker written before a line.
func (o Op) Prefix() string {
	switch o {
	case OpInsert:
		return "+ "
	case OpDelete:
		return "- "
	default:
		return "  "
	}
}

// Line is one line of a dump diff.
type Line struct {
	Op   Op
	Text string
}

// Delta is the line diff of two dumps.
type Delta struct {
	Lines   []Line
	Added   int
	Removed int
}

// Changed reports whether the two dumps differ.
func (d *Delta) Changed() bool {
	return d.Added > 0 || d.Removed > 0
}

// WriteTo writes the diff with "+ ", "- " and "  " line prefixes.
func (d *Delta) WriteTo(w io.Writer) (int64, error) {
	var written int64

	for _, l := range d.Lines {
		n, err := io.WriteString(w, l.Op.Prefix()+l.Text+"\n")
		written += int64(n)

		if err != nil {
			return written, err
		}
	}

	return written, nil
}

// String renders the delta as WriteTo does.
func (d *Delta) String() string {
	var sb strings.Builder

	_, _ = d.WriteTo(&sb)

	return sb.String()
}

// Diff dumps both trees and diffs the renderings.
func Diff(before, after any, opts Options) (*Delta, error) {
	a, err := Dump(before, opts)
	if err != nil {
		return nil, err
	}

	b, err := Dump(after, opts)
	if err != nil {
		return nil, err
	}

	return DiffText(a, b), nil
}

// DiffText diffs two texts line by line.
func DiffText(before, after string) *Delta {
	dmp := diffmatchpatch.New()
	src, dst, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(src, dst, false), lines)

	delta := &Delta{}

	for _, edit := range diffs {
		op := OpEqual

		switch edit.Type {
		case diffmatchpatch.DiffInsert:
			op = OpInsert
		case diffmatchpatch.DiffDelete:
			op = OpDelete
		case diffmatchpatch.DiffEqual:
		}

		for _, text := range splitLines(edit.Text) {
			delta.Lines = append(delta.Lines, Line{Op: op, Text: text})

			switch op {
			case OpInsert:
				delta.Added++
			case OpDelete:
				delta.Removed++
			case OpEqual:
			}
		}
	}

	return delta
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}

	return strings.Split(s, "\n")
}
