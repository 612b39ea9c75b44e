package diff

import "strings"

// Tag marks how a line moved between the old and the new text.
type Tag int

const (
	// Equal lines appear in both texts.
	Equal Tag = iota
	// Insert lines appear only in the new text.
	Insert
	// Delete lines appear only in the old text.
	Delete
)

func (t Tag) String() string {
	switch t {
	case Insert:
		return "added"
	case Delete:
		return "removed"
	default:
		return "unchanged"
	}
}

// Op is a single line-level operation of a diff script.
type Op struct {
	Tag  Tag
	Line string
}

// Lines splits text into lines without trailing line terminators.
// The empty string has zero lines.
func Lines(text string) []string {
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	// a trailing newline does not open a new line
	if lines[len(lines)-1] == "" && strings.HasSuffix(text, "\n") {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// Strings computes the line diff between two texts.
func Strings(oldText, newText string) []Op {
	return Diff(Lines(oldText), Lines(newText))
}

// Diff computes a minimal edit script between two line slices using a
// longest-common-subsequence table. When several minimal scripts exist the
// earliest common lines are matched, so the output is deterministic for
// identical inputs.
//
// Concatenating Equal and Insert lines in order yields the new text;
// Equal and Delete lines yield the old text.
func Diff(oldLines, newLines []string) []Op {
	m, n := len(oldLines), len(newLines)

	// lcs[i][j] is the length of the longest common subsequence of
	// oldLines[i:] and newLines[j:]
	lcs := make([][]int, m+1)
	for i := range lcs {
		lcs[i] = make([]int, n+1)
	}
	for i := m - 1; i >= 0; i-- {
		for j := n - 1; j >= 0; j-- {
			if oldLines[i] == newLines[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else if lcs[i+1][j] >= lcs[i][j+1] {
				lcs[i][j] = lcs[i+1][j]
			} else {
				lcs[i][j] = lcs[i][j+1]
			}
		}
	}

	ops := make([]Op, 0, m+n)
	i, j := 0, 0
	for i < m && j < n {
		switch {
		case oldLines[i] == newLines[j]:
			ops = append(ops, Op{Tag: Equal, Line: oldLines[i]})
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			ops = append(ops, Op{Tag: Delete, Line: oldLines[i]})
			i++
		default:
			ops = append(ops, Op{Tag: Insert, Line: newLines[j]})
			j++
		}
	}
	for ; i < m; i++ {
		ops = append(ops, Op{Tag: Delete, Line: oldLines[i]})
	}
	for ; j < n; j++ {
		ops = append(ops, Op{Tag: Insert, Line: newLines[j]})
	}

	return ops
}
