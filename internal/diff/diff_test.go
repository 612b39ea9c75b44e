package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// rebuild joins the Equal lines and the lines with the given tag, in order.
func rebuild(ops []Op, keep Tag) string {
	var lines []string
	for _, op := range ops {
		if op.Tag == Equal || op.Tag == keep {
			lines = append(lines, op.Line)
		}
	}

	return strings.Join(lines, "\n")
}

func TestLines(t *testing.T) {
	assert.Nil(t, Lines(""))
	assert.Equal(t, []string{"a"}, Lines("a"))
	assert.Equal(t, []string{"a"}, Lines("a\n"))
	assert.Equal(t, []string{"a", ""}, Lines("a\n\n"))
	assert.Equal(t, []string{"a", "b"}, Lines("a\nb"))
}

func TestDiff_EmptyOld(t *testing.T) {
	ops := Strings("", "line1\nline2")

	assert.Len(t, ops, 2)
	for _, op := range ops {
		assert.Equal(t, Insert, op.Tag)
	}
}

func TestDiff_Unchanged(t *testing.T) {
	ops := Strings("a\nb\nc", "a\nb\nc")

	assert.Len(t, ops, 3)
	for _, op := range ops {
		assert.Equal(t, Equal, op.Tag)
	}
}

func TestDiff_AddLine(t *testing.T) {
	ops := Strings("line1", "line1\nline2")

	assert.Equal(t, []Op{
		{Tag: Equal, Line: "line1"},
		{Tag: Insert, Line: "line2"},
	}, ops)
}

func TestDiff_Reconstruction(t *testing.T) {
	tests := []struct {
		name    string
		oldText string
		newText string
	}{
		{name: "append", oldText: "a\nb", newText: "a\nb\nc"},
		{name: "prepend", oldText: "b\nc", newText: "a\nb\nc"},
		{name: "remove middle", oldText: "a\nb\nc", newText: "a\nc"},
		{name: "replace", oldText: "a\nb\nc", newText: "a\nx\nc"},
		{name: "rewrite", oldText: "a\nb", newText: "x\ny\nz"},
		{name: "from empty", oldText: "", newText: "a\nb"},
		{name: "to empty", oldText: "a\nb", newText: ""},
		{name: "moved block", oldText: "a\nb\nc\nd", newText: "c\nd\na\nb"},
		{name: "repeated lines", oldText: "a\na\nb", newText: "a\nb\na"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops := Strings(tt.oldText, tt.newText)

			assert.Equal(t, strings.Join(Lines(tt.newText), "\n"), rebuild(ops, Insert))
			assert.Equal(t, strings.Join(Lines(tt.oldText), "\n"), rebuild(ops, Delete))
		})
	}
}

func TestDiff_Deterministic(t *testing.T) {
	oldText := "a\nb\nc\na\nb"
	newText := "b\na\nc\nb\na"

	first := Strings(oldText, newText)
	second := Strings(oldText, newText)

	assert.Equal(t, first, second)
}

func TestTag_String(t *testing.T) {
	assert.Equal(t, "unchanged", Equal.String())
	assert.Equal(t, "added", Insert.String())
	assert.Equal(t, "removed", Delete.String())
}
