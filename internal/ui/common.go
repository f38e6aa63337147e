// Package ui contains the fyne widgets that render the slider models from
// internal/sliders and feed them pointer input.
package ui

import "fyne.io/fyne/v2"

// DefaultThumbSize is the thumb diameter used when a widget does not set one.
const DefaultThumbSize float32 = 24

// currentScale returns the current UI scale, defaulting to 1 when unavailable.
func currentScale() float64 {
	app := fyne.CurrentApp()
	if app == nil {
		return 1
	}
	set := app.Settings()
	if set == nil {
		return 1
	}
	if sc := set.Scale(); sc > 0 {
		return float64(sc)
	}
	return 1
}

// clampFloat32 constrains v to the [min, max] interval.
func clampFloat32(v, min, max float32) float32 {
	if max <= min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// thumbOrDefault resolves a widget's configured thumb size.
func thumbOrDefault(size float32) float32 {
	if size <= 0 {
		return DefaultThumbSize
	}
	return size
}
