// Package ui renders lookup results as plain lines or as a bordered table.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// EnvDarkMode forces the dark palette when set to "1".
const EnvDarkMode = "LOOKUP_DARK_MODE"

// Palette
var (
	LightForeground = lipgloss.Color("#101F38")
	LightAccent     = lipgloss.Color("#2E7D32")
	LightBorder     = lipgloss.Color("#8A94A6")

	DarkForeground = lipgloss.Color("#F2F2F2")
	DarkAccent     = lipgloss.Color("#8BC34A")
	DarkBorder     = lipgloss.Color("#5A6A85")
)

// Theme holds the current color scheme.
type Theme struct {
	Foreground lipgloss.Color
	Accent     lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{Foreground: LightForeground, Accent: LightAccent, Border: LightBorder}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{Foreground: DarkForeground, Accent: DarkAccent, Border: DarkBorder, IsDark: true}
}

// DetectTheme picks a theme from COLORFGBG ("fg;bg", dark when bg is 0-6 or
// 8) or LOOKUP_DARK_MODE, defaulting to light.
func DetectTheme() Theme {
	if parts := strings.Split(os.Getenv("COLORFGBG"), ";"); len(parts) == 2 {
		if bg, err := strconv.Atoi(parts[1]); err == nil {
			if (bg >= 0 && bg <= 6) || bg == 8 {
				return DarkTheme()
			}
		}
	}
	if os.Getenv(EnvDarkMode) == "1" {
		return DarkTheme()
	}
	return LightTheme()
}

// Styles holds the styled components of a table.
type Styles struct {
	Theme Theme

	Header lipgloss.Style
	Cell   lipgloss.Style
	Key    lipgloss.Style // first column
	Border lipgloss.Style
}

// NewStyles creates a Styles instance for the theme.
func NewStyles(theme Theme) Styles {
	cell := lipgloss.NewStyle().Padding(0, 1)
	return Styles{
		Theme: theme,
		Header: cell.
			Foreground(theme.Accent),
		Cell: cell.
			Foreground(theme.Foreground),
		Key: cell.
			Foreground(theme.Foreground).
			Bold(true),
		Border: lipgloss.NewStyle().
			Foreground(theme.Border),
	}
}

// DefaultStyles returns styles for the detected theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// DisableColor switches the default renderer to plain ASCII output: no
// colour, no bold.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
