package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_Alignment(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"CODE", "NAME"},
		[][]string{
			{"A", "short"},
			{"LONGCODE", "x"},
		},
	))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)

	// Second column starts at the same offset on every row.
	assert.Equal(t, strings.Index(lines[0], "NAME"), strings.Index(lines[2], "short"))
	assert.Equal(t, strings.Index(lines[0], "NAME"), strings.Index(lines[3], "x"))

	// Separator is as wide as the widest cell in the column.
	assert.Contains(t, lines[1], strings.Repeat("─", len("LONGCODE")))
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, nil))
}

func TestRenderTable_ShortRow(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"A", "B", "C"},
		[][]string{{"only"}},
	))
	assert.Contains(t, out, "only")
}
