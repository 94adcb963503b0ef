package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainStyles() Styles {
	return StylesFor(&bytes.Buffer{})
}

func TestTable(t *testing.T) {
	table := NewTable("2023", "Identifier", "Input")
	table.AddRow("aoc.year2023.day01.main", "present")
	table.AddRow("aoc.year2023.day02.main", "missing")

	view := table.View(plainStyles())
	t.Logf("View:\n%s", view)

	lines := strings.Split(strings.TrimSuffix(view, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "2023", lines[0])
	assert.Contains(t, lines[1], "Identifier")
	assert.True(t, strings.HasPrefix(lines[2], "---"))
	assert.Contains(t, lines[3], "aoc.year2023.day01.main")
	assert.Contains(t, lines[4], "missing")

	// Columns line up.
	assert.Equal(t, strings.Index(lines[1], "|"), strings.Index(lines[3], "|"))
	assert.Equal(t, len(lines[2]), len(lines[3]))
}

func TestTable_PlainWriterHasNoEscapes(t *testing.T) {
	table := NewTable("title", "a")
	table.AddRow("b")
	assert.NotContains(t, table.View(plainStyles()), "\x1b[")
}

func TestTable_Empty(t *testing.T) {
	assert.Empty(t, NewTable("nothing", "a", "b").View(plainStyles()))
}

func TestTable_ExtraCellsDropped(t *testing.T) {
	table := NewTable("", "col")
	table.AddRow("x", "y")
	view := table.View(plainStyles())
	assert.Contains(t, view, "x")
	assert.NotContains(t, view, "y")
}
