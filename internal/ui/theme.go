package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// SelectedColor is the fill of the selected part of the price track.
var SelectedColor = color.NRGBA{R: 0xFF, G: 0x8C, B: 0x00, A: 0xFF}

// sliderTheme is a theme wrapper that swaps the primary colour for the
// orange the slider fills and the suggestion divider are drawn with.
type sliderTheme struct{ fyne.Theme }

func (t sliderTheme) Color(n fyne.ThemeColorName, v fyne.ThemeVariant) color.Color {
	if n == theme.ColorNamePrimary {
		return SelectedColor
	}
	return t.Theme.Color(n, v)
}

// UseSliderTheme applies the theme wrapper to the current app.
func UseSliderTheme() {
	app := fyne.CurrentApp()
	if app == nil {
		return
	}
	app.Settings().SetTheme(sliderTheme{Theme: app.Settings().Theme()})
}
