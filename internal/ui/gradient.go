package ui

import (
	"image/color"
	"math"
)

// Fuel gradient hue sweep: red at empty, green at full.
const (
	fuelHueEmpty = 0.0
	fuelHueFull  = 120.0
	fuelSegments = 4
)

// gradientStops returns segments+1 colours sweeping hue from h0 to h1.
func gradientStops(h0, h1 float64, segments int) []color.NRGBA {
	if segments < 1 {
		segments = 1
	}
	out := make([]color.NRGBA, segments+1)
	for i := range out {
		h := h0 + (h1-h0)*float64(i)/float64(segments)
		out[i] = hsvToNRGBA(h, 0.85, 0.95)
	}
	return out
}

// lerpNRGBA blends a toward b by t in [0, 1].
func lerpNRGBA(a, b color.NRGBA, t float64) color.NRGBA {
	t = math.Max(0, math.Min(1, t))
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// hsvToNRGBA converts HSV (0..360, 0..1, 0..1) to color.NRGBA.
func hsvToNRGBA(h, s, v float64) color.NRGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60.0, 2)-1))
	m := v - c
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return color.NRGBA{
		R: uint8((r+m)*255 + 0.5),
		G: uint8((g+m)*255 + 0.5),
		B: uint8((b+m)*255 + 0.5),
		A: 0xFF,
	}
}
