package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"vlist/internal/domain"
)

func TestVerticalRenderMeasuresWrappedHeight(t *testing.T) {
	r := NewListRenderer(NewStyles(), domain.AxisVertical, true)
	r.SetWidth(27)

	short := r.Render(Row{Index: 0, Key: "a", Text: "tiny"})
	require.Equal(t, 1, short.Size)

	long := r.Render(Row{Index: 1, Key: "b", Text: strings.Repeat("word ", 20)})
	require.Greater(t, long.Size, 1)
	require.Equal(t, lipgloss.Height(long.Content), long.Size)
}

func TestVerticalComposePadsFrontAndBehind(t *testing.T) {
	r := NewListRenderer(NewStyles(), domain.AxisVertical, false)
	r.SetWidth(40)
	rows := []Rendered{
		r.Render(Row{Index: 3, Text: "three"}),
		r.Render(Row{Index: 4, Text: "four"}),
	}

	content, _ := r.Compose("lead", domain.Range{Start: 3, End: 4, Front: 5, Behind: 7}, rows)
	lines := strings.Split(content, "\n")
	require.Len(t, lines, 1+5+2+7)
	require.Equal(t, "lead", lines[0])
	require.Contains(t, lines[6], "three")
	require.Contains(t, lines[7], "four")
}

func TestHorizontalChipsHaveFixedWidth(t *testing.T) {
	r := NewListRenderer(NewStyles(), domain.AxisHorizontal, false)
	a := r.Render(Row{Text: "ab"})
	b := r.Render(Row{Text: "a much longer label than fits"})
	require.Equal(t, a.Size, b.Size)

	lead, size := r.Banner("demo", 2)
	require.Equal(t, len("demo (2) "), size-2, "Separator is two cells")

	line, width := r.Compose(lead, domain.Range{Front: 4, Behind: 2}, []Rendered{a, b})
	require.Equal(t, size+4+a.Size+b.Size+2, width)
	require.True(t, strings.HasPrefix(line, "demo (2)"))
}

func TestCutColumns(t *testing.T) {
	require.Equal(t, "cdef", CutColumns("abcdefgh", 2, 4))
	require.Equal(t, "", CutColumns("abc", 5, 4))
	require.Equal(t, "世", CutColumns("a世界", 1, 3), "Wide runes that do not fit are dropped")
}
