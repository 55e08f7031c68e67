package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"vlist/internal/domain"
)

const (
	chipWidth = 14
	chipSep   = " │ "
)

// Row is one live item handed to the renderer
type Row struct {
	Index int
	Key   string
	Text  string
}

// Rendered is a row after rendering, with its size along the scroll axis
type Rendered struct {
	Row
	Content string
	Size    int
}

// ListRenderer renders live rows and the padding around them
type ListRenderer struct {
	styles *Styles
	axis   domain.Axis
	width  int
	wrap   bool
}

// NewListRenderer creates a renderer for the given axis
func NewListRenderer(styles *Styles, axis domain.Axis, wrap bool) *ListRenderer {
	return &ListRenderer{styles: styles, axis: axis, wrap: wrap}
}

// SetWidth updates the available width
func (r *ListRenderer) SetWidth(width int) {
	r.width = width
}

// Banner returns the lead shown before the first item and its size
func (r *ListRenderer) Banner(title string, count int) (string, int) {
	if r.axis == domain.AxisHorizontal {
		b := fmt.Sprintf("%s (%d) › ", title, count)
		return b, runewidth.StringWidth(b)
	}
	b := r.styles.Banner.Render(fmt.Sprintf("── %s · %d items ──", title, count))
	return b, lipgloss.Height(b)
}

// Render renders a row and measures it
func (r *ListRenderer) Render(row Row) Rendered {
	if r.axis == domain.AxisHorizontal {
		chip := runewidth.Truncate(row.Text, chipWidth, "…")
		chip = runewidth.FillRight(chip, chipWidth) + chipSep
		return Rendered{Row: row, Content: chip, Size: runewidth.StringWidth(chip)}
	}

	gutter := r.styles.Gutter.Render(fmt.Sprintf("%6d ", row.Index))
	style := r.styles.Item
	if row.Index%2 == 1 {
		style = r.styles.ItemAlt
	}
	textWidth := max(r.width-lipgloss.Width(gutter), 1)
	if r.wrap {
		style = style.Width(textWidth)
	} else {
		style = style.MaxWidth(textWidth)
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top, gutter, style.Render(row.Text))
	return Rendered{Row: row, Content: content, Size: lipgloss.Height(content)}
}

// Compose lays out the lead, the front padding, the rows and the behind
// padding. It returns the content and its width in cells.
func (r *ListRenderer) Compose(lead string, rng domain.Range, rows []Rendered) (string, int) {
	if r.axis == domain.AxisHorizontal {
		var b strings.Builder
		b.WriteString(lead)
		b.WriteString(strings.Repeat(" ", max(rng.Front, 0)))
		for _, row := range rows {
			b.WriteString(row.Content)
		}
		b.WriteString(strings.Repeat(" ", max(rng.Behind, 0)))
		line := b.String()
		return line, runewidth.StringWidth(line)
	}

	lines := []string{lead}
	lines = append(lines, blank(rng.Front)...)
	for _, row := range rows {
		lines = append(lines, row.Content)
	}
	lines = append(lines, blank(rng.Behind)...)
	return strings.Join(lines, "\n"), r.width
}

// CutColumns returns the cells [from, from+width) of a plain string
func CutColumns(s string, from, width int) string {
	var b strings.Builder
	col := 0
	for _, c := range s {
		w := runewidth.RuneWidth(c)
		if col >= from && col+w <= from+width {
			b.WriteRune(c)
		}
		col += w
		if col >= from+width {
			break
		}
	}
	return b.String()
}

func blank(n int) []string {
	if n <= 0 {
		return nil
	}
	return make([]string, n)
}
