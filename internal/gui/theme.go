package gui

import (
	"image/color"

	"mru-ui/internal/gui/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// chromeTheme clears the window background so the rounded panels are the
// only opaque surfaces of the window.
type chromeTheme struct {
	fyne.Theme
}

func NewTheme() fyne.Theme {
	return &chromeTheme{Theme: theme.DefaultTheme()}
}

func (t *chromeTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.Transparent
	case components.ColorNamePanel:
		return t.Theme.Color(theme.ColorNameBackground, variant)
	default:
		return t.Theme.Color(name, variant)
	}
}
