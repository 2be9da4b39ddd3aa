package fixer

import (
	"fmt"
	"strings"
)

// LineKind classifies a diff line.
type LineKind int

const (
	// LineContext is an unchanged line shown for context.
	LineContext LineKind = iota

	// LineAdd is a line present only in the fixed content.
	LineAdd

	// LineRemove is a line present only in the original content.
	LineRemove
)

// diffContextLines is the number of context lines around each change.
const diffContextLines = 3

// Line is a single line of a hunk.
type Line struct {
	Kind    LineKind
	Content string
}

// Hunk is one contiguous region of change with surrounding context.
type Hunk struct {
	OldStart, OldCount int
	NewStart, NewCount int
	Lines              []Line
}

// Diff is a unified diff between a document and its fixed form.
type Diff struct {
	Path      string
	Hunks     []Hunk
	Additions int
	Deletions int
}

// NewDiff computes a line-based unified diff. Returns nil when the
// contents are identical.
func NewDiff(path, original, fixed string) *Diff {
	oldLines := toLines(original)
	newLines := toLines(fixed)

	ops := diffOps(oldLines, newLines)
	changed := false
	for _, op := range ops {
		if op.Kind != LineContext {
			changed = true
			break
		}
	}
	if !changed {
		return nil
	}

	d := &Diff{Path: path, Hunks: buildHunks(ops)}
	for _, h := range d.Hunks {
		for _, l := range h.Lines {
			switch l.Kind {
			case LineAdd:
				d.Additions++
			case LineRemove:
				d.Deletions++
			}
		}
	}
	return d
}

// String renders the diff in unified format.
func (d *Diff) String() string {
	if d == nil || len(d.Hunks) == 0 {
		return ""
	}
	path := strings.TrimPrefix(d.Path, "/")

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n", path)
	fmt.Fprintf(&b, "+++ b/%s\n", path)
	for _, h := range d.Hunks {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n", h.OldStart, h.OldCount, h.NewStart, h.NewCount)
		for _, l := range h.Lines {
			switch l.Kind {
			case LineContext:
				fmt.Fprintf(&b, " %s\n", l.Content)
			case LineAdd:
				fmt.Fprintf(&b, "+%s\n", l.Content)
			case LineRemove:
				fmt.Fprintf(&b, "-%s\n", l.Content)
			}
		}
	}
	return b.String()
}

func toLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// diffOps produces the full edit script (context, add, remove) by
// walking both sides against their longest common subsequence.
func diffOps(oldLines, newLines []string) []Line {
	lcs := commonSubsequence(oldLines, newLines)

	var ops []Line
	oi, ni, li := 0, 0, 0
	for oi < len(oldLines) || ni < len(newLines) {
		if li < len(lcs) && oi < len(oldLines) && ni < len(newLines) &&
			oldLines[oi] == lcs[li] && newLines[ni] == lcs[li] {
			ops = append(ops, Line{Kind: LineContext, Content: oldLines[oi]})
			oi++
			ni++
			li++
			continue
		}
		for oi < len(oldLines) && (li >= len(lcs) || oldLines[oi] != lcs[li]) {
			ops = append(ops, Line{Kind: LineRemove, Content: oldLines[oi]})
			oi++
		}
		for ni < len(newLines) && (li >= len(lcs) || newLines[ni] != lcs[li]) {
			ops = append(ops, Line{Kind: LineAdd, Content: newLines[ni]})
			ni++
		}
	}
	return ops
}

// buildHunks groups the edit script into hunks, merging changes whose
// context windows touch.
func buildHunks(ops []Line) []Hunk {
	type span struct{ start, end int }
	var spans []span
	open := -1
	for i, op := range ops {
		if op.Kind != LineContext {
			if open < 0 {
				open = i
			}
		} else if open >= 0 {
			spans = append(spans, span{open, i})
			open = -1
		}
	}
	if open >= 0 {
		spans = append(spans, span{open, len(ops)})
	}
	if len(spans) == 0 {
		return nil
	}

	var hunks []Hunk
	for i := 0; i < len(spans); {
		j := i + 1
		for j < len(spans) && spans[j].start-spans[j-1].end <= diffContextLines*2 {
			j++
		}
		hunks = append(hunks, buildHunk(ops, spans[i].start, spans[j-1].end))
		i = j
	}
	return hunks
}

func buildHunk(ops []Line, changeStart, changeEnd int) Hunk {
	start := max(changeStart-diffContextLines, 0)
	end := min(changeEnd+diffContextLines, len(ops))

	h := Hunk{OldStart: 1, NewStart: 1}
	for i := range start {
		if ops[i].Kind != LineAdd {
			h.OldStart++
		}
		if ops[i].Kind != LineRemove {
			h.NewStart++
		}
	}
	for _, op := range ops[start:end] {
		h.Lines = append(h.Lines, op)
		switch op.Kind {
		case LineContext:
			h.OldCount++
			h.NewCount++
		case LineRemove:
			h.OldCount++
		case LineAdd:
			h.NewCount++
		}
	}
	return h
}

// commonSubsequence computes the LCS of two line slices with the
// standard dynamic program.
func commonSubsequence(a, b []string) []string {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	dp := make([][]int, len(a)+1)
	for i := range dp {
		dp[i] = make([]int, len(b)+1)
	}
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else {
				dp[i][j] = max(dp[i-1][j], dp[i][j-1])
			}
		}
	}

	out := make([]string, dp[len(a)][len(b)])
	i, j, k := len(a), len(b), len(out)-1
	for i > 0 && j > 0 {
		switch {
		case a[i-1] == b[j-1]:
			out[k] = a[i-1]
			i--
			j--
			k--
		case dp[i-1][j] > dp[i][j-1]:
			i--
		default:
			j--
		}
	}
	return out
}
