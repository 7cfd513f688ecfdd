package tui

import (
	"fmt"
	"strings"

	"datepick/internal/calendar"
	"datepick/internal/docs"
	"datepick/internal/timefield"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

const cellWidth = 4

func (m Model) View() string {
	if m.showHelp {
		body, _ := docs.Get("keys")
		return docs.Render(body, markdownStyle(), m.width) + "\n\n" + m.styles.muted.Render("? or q to close") + "\n"
	}

	cfg := m.p.Config()
	var blocks []string
	if cfg.ShowCalendar {
		blocks = append(blocks, m.viewCalendar())
	}
	if cfg.ShowTime {
		blocks = append(blocks, m.viewTime())
	}
	if shortcuts := m.viewShortcuts(); shortcuts != "" {
		blocks = append(blocks, shortcuts)
	}
	blocks = append(blocks, m.input.View())
	if m.status != "" {
		blocks = append(blocks, m.styles.status.Render(truncateToWidth(m.status, m.panelWidth())))
	}
	blocks = append(blocks, m.help.View(m.keys))
	return strings.Join(blocks, "\n\n") + "\n"
}

func (m Model) panelWidth() int {
	return cellWidth * 7
}

func (m Model) viewCalendar() string {
	w := m.panelWidth()
	title := m.styles.title.Render(m.p.Title())
	prev := m.styles.nav.Render("‹")
	next := m.styles.nav.Render("›")
	gap := w - xansi.StringWidth(title) - 2
	left := gap / 2
	if left < 1 {
		left = 1
	}
	right := gap - left
	if right < 1 {
		right = 1
	}
	header := prev + strings.Repeat(" ", left) + title + strings.Repeat(" ", right) + next

	var labels strings.Builder
	for _, l := range m.p.DayLabels() {
		labels.WriteString(m.styles.dayLabel.Render(padOrCutANSI(" "+l, cellWidth)))
	}

	curRow, curCol, hasCursor := m.p.Sheet().Locate(m.cursor)
	hasCursor = hasCursor && m.focus == focusCalendar

	lines := []string{header, labels.String()}
	for r, week := range m.p.Cells() {
		var row strings.Builder
		for c, cell := range week {
			row.WriteString(m.renderCell(cell, hasCursor && r == curRow && c == curCol))
		}
		lines = append(lines, row.String())
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderCell(c calendar.Cell, cursor bool) string {
	text := fmt.Sprintf(" %2d ", c.Date.Day())
	st := m.styles.day
	switch {
	case c.Selected:
		st = m.styles.selected
	case c.OutOfRange:
		st = m.styles.outOfRange
	case c.Inactive:
		st = m.styles.inactive
	case c.Today:
		st = m.styles.today
	case c.Weekend:
		st = m.styles.weekend
	}
	if cursor {
		st = st.Inherit(m.styles.cursor).Underline(true)
		if !c.Selected {
			st = st.Background(colorSelectBg)
		}
	}
	return st.Render(text)
}

func (m Model) viewTime() string {
	set := m.p.TimeFields()
	guard := m.p.Guard()
	kinds := set.Kinds()

	ups := make([]string, 0, len(kinds))
	vals := make([]string, 0, len(kinds))
	downs := make([]string, 0, len(kinds))
	for i, k := range kinds {
		up := m.styles.arrow
		if guard.WouldExceedMax(k) {
			up = m.styles.arrowOff
		}
		down := m.styles.arrow
		if guard.WouldExceedMin(k) {
			down = m.styles.arrowOff
		}
		val := m.styles.field
		if m.focus == focusTime && i == m.timeIdx {
			val = m.styles.fieldFocus
		}
		width := 4
		if k == timefield.Suffix {
			width = max(4, lipgloss.Width(set.Text(k))+2)
		}
		ups = append(ups, up.Render(center("▲", width)))
		vals = append(vals, val.Render(center(set.Text(k), width)))
		downs = append(downs, down.Render(center("▼", width)))
	}
	return strings.Join([]string{
		strings.Join(ups, " "),
		strings.Join(vals, ":"),
		strings.Join(downs, " "),
	}, "\n")
}

func (m Model) viewShortcuts() string {
	var parts []string
	if m.p.ShowToday() {
		parts = append(parts, m.styles.button.Render("Today")+m.styles.muted.Render(" (t)"))
	}
	if m.p.ShowNow() {
		parts = append(parts, m.styles.button.Render("Now")+m.styles.muted.Render(" (n)"))
	}
	return strings.Join(parts, "   ")
}

func center(s string, w int) string {
	cur := xansi.StringWidth(s)
	if cur >= w {
		return s
	}
	left := (w - cur) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-cur-left)
}

func truncateToWidth(s string, w int) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
	if w <= 0 {
		return ""
	}
	if xansi.StringWidth(s) <= w {
		return s
	}
	if w <= 1 {
		return "…"
	}
	return xansi.Cut(s, 0, w-1) + "…"
}

func padOrCutANSI(s string, w int) string {
	cur := xansi.StringWidth(s)
	switch {
	case cur < w:
		return s + strings.Repeat(" ", w-cur)
	case cur > w:
		return xansi.Cut(s, 0, w) + "\x1b[0m"
	default:
		return s
	}
}
