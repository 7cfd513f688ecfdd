package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette. Adaptive colors keep the picker readable on light and dark
// backgrounds; faint styling is only applied on dark ones.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted     lipgloss.TerminalColor = ac("240", "243")
	colorSurfaceFg lipgloss.TerminalColor = ac("235", "252")
	colorAccent    lipgloss.TerminalColor = ac("27", "62")
	colorAccentFg  lipgloss.TerminalColor = ac("255", "235")
	colorSelectBg  lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectFg  lipgloss.TerminalColor = ac("235", "255")
	colorWeekend   lipgloss.TerminalColor = ac("130", "179")
	colorToday     lipgloss.TerminalColor = ac("28", "114")
	colorDisabled  lipgloss.TerminalColor = ac("250", "238")
	colorError     lipgloss.TerminalColor = ac("160", "203")
)

type styles struct {
	title      lipgloss.Style
	nav        lipgloss.Style
	dayLabel   lipgloss.Style
	day        lipgloss.Style
	weekend    lipgloss.Style
	today      lipgloss.Style
	inactive   lipgloss.Style
	outOfRange lipgloss.Style
	selected   lipgloss.Style
	cursor     lipgloss.Style
	field      lipgloss.Style
	fieldFocus lipgloss.Style
	arrow      lipgloss.Style
	arrowOff   lipgloss.Style
	button     lipgloss.Style
	label      lipgloss.Style
	status     lipgloss.Style
	muted      lipgloss.Style
}

func newStyles() styles {
	base := lipgloss.NewStyle().Foreground(colorSurfaceFg)
	return styles{
		title:      base.Bold(true),
		nav:        lipgloss.NewStyle().Foreground(colorAccent),
		dayLabel:   faintIfDark(lipgloss.NewStyle().Foreground(colorMuted)),
		day:        base,
		weekend:    lipgloss.NewStyle().Foreground(colorWeekend),
		today:      lipgloss.NewStyle().Foreground(colorToday).Bold(true),
		inactive:   faintIfDark(lipgloss.NewStyle().Foreground(colorMuted)),
		outOfRange: lipgloss.NewStyle().Foreground(colorDisabled).Strikethrough(true),
		selected:   lipgloss.NewStyle().Foreground(colorAccentFg).Background(colorAccent).Bold(true),
		cursor:     lipgloss.NewStyle().Foreground(colorSelectFg).Background(colorSelectBg).Underline(true),
		field:      base,
		fieldFocus: lipgloss.NewStyle().Foreground(colorAccentFg).Background(colorAccent),
		arrow:      lipgloss.NewStyle().Foreground(colorAccent),
		arrowOff:   lipgloss.NewStyle().Foreground(colorDisabled),
		button:     lipgloss.NewStyle().Foreground(colorAccent).Underline(true),
		label:      base,
		status:     lipgloss.NewStyle().Foreground(colorError),
		muted:      faintIfDark(lipgloss.NewStyle().Foreground(colorMuted)),
	}
}

// applyColorProfilePreference honors NO_COLOR and otherwise trusts the
// terminal, upgrading the detected profile when TERM/COLORTERM claim more.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	profile := termenv.ColorProfile()
	term := strings.ToLower(os.Getenv("TERM"))
	colorterm := strings.ToLower(os.Getenv("COLORTERM"))
	switch {
	case strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit"):
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	case strings.Contains(term, "256color"):
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}
	lipgloss.SetColorProfile(profile)
}

// applyThemePreference sets the background lipgloss assumes. theme is
// light, dark or auto; auto consults COLORFGBG ("fg;bg") before leaving
// detection to lipgloss.
func applyThemePreference(theme string) {
	switch strings.ToLower(strings.TrimSpace(theme)) {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return
	}
	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			lipgloss.SetHasDarkBackground(bg < 7)
		}
	}
}

func markdownStyle() string {
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}
