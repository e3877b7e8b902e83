// Package diff renders line diffs between a file on disk and the code that
// would replace it.
package diff

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Context is the number of unchanged lines kept around each change.
const Context = 3

// Colors formats the parts of a rendered diff.
type Colors struct {
	Insert func(string, ...any) string
	Delete func(string, ...any) string
	Header func(string, ...any) string
}

// NewColors returns terminal colors for diffs.
func NewColors() *Colors {
	return &Colors{
		Insert: color.RGB(16, 176, 80).SprintfFunc(),
		Delete: color.RGB(216, 48, 48).SprintfFunc(),
		Header: color.BlueString,
	}
}

// NoColors returns Colors that leave the text as it is.
func NoColors() *Colors {
	return &Colors{Insert: fmt.Sprintf, Delete: fmt.Sprintf, Header: fmt.Sprintf}
}

// Line is one line of a diff.
type Line struct {
	Op   diffpatch.Operation
	Text string // without the line break
}

// Lines computes the line diff turning from into to.
func Lines(from, to string) []Line {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out []Line
	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		for _, l := range strings.Split(text, "\n") {
			out = append(out, Line{Op: d.Type, Text: l})
		}
	}
	return out
}

// Count returns the number of inserted and deleted lines.
func Count(lines []Line) (inserted, deleted int) {
	for _, l := range lines {
		switch l.Op {
		case diffpatch.DiffInsert:
			inserted++
		case diffpatch.DiffDelete:
			deleted++
		}
	}
	return inserted, deleted
}

// Render formats the diff from current to generated for the file called
// name. Unchanged lines further than Context lines from a change are elided.
// It returns the empty string when both are equal.
func Render(name string, current, generated []byte, colors *Colors) string {
	if colors == nil {
		colors = NoColors()
	}
	lines := Lines(string(current), string(generated))
	if ins, del := Count(lines); ins == 0 && del == 0 {
		return ""
	}

	keep := make([]bool, len(lines))
	for i, l := range lines {
		if l.Op == diffpatch.DiffEqual {
			continue
		}
		for j := max(0, i-Context); j <= min(len(lines)-1, i+Context); j++ {
			keep[j] = true
		}
	}

	var sb strings.Builder
	sb.WriteString(colors.Header("--- %s (current)", name) + "\n")
	sb.WriteString(colors.Header("+++ %s (generated)", name) + "\n")
	skipped := 0
	for i, l := range lines {
		if !keep[i] {
			skipped++
			continue
		}
		if skipped > 0 {
			sb.WriteString(colors.Header("@@ %d unchanged lines @@", skipped) + "\n")
			skipped = 0
		}
		switch l.Op {
		case diffpatch.DiffInsert:
			sb.WriteString(colors.Insert("+%s", l.Text))
		case diffpatch.DiffDelete:
			sb.WriteString(colors.Delete("-%s", l.Text))
		default:
			sb.WriteString(" " + l.Text)
		}
		sb.WriteByte('\n')
	}
	if skipped > 0 {
		sb.WriteString(colors.Header("@@ %d unchanged lines @@", skipped) + "\n")
	}
	return sb.String()
}
