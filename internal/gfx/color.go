package gfx

import "image/color"

// Color is an opaque 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

var (
	White     = Color{255, 255, 255}
	Black     = Color{0, 0, 0}
	Gray      = Color{128, 128, 128}
	LightGray = Color{240, 240, 245}
	DarkGray  = Color{60, 60, 60}
	Blue      = Color{0, 122, 255}
	Red       = Color{255, 59, 48}
	Green     = Color{52, 199, 89}
	Yellow    = Color{255, 204, 0}
)

// RGBA converts to the stdlib color type used by the surface.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Scale darkens or brightens the color by a factor in [0, 1+].
func (c Color) Scale(f float64) Color {
	return Color{clamp8(float64(c.R) * f), clamp8(float64(c.G) * f), clamp8(float64(c.B) * f)}
}

// Blend mixes c toward other by t in [0, 1].
func (c Color) Blend(other Color, t float64) Color {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return other
	}
	return Color{
		clamp8(float64(c.R)*(1-t) + float64(other.R)*t),
		clamp8(float64(c.G)*(1-t) + float64(other.G)*t),
		clamp8(float64(c.B)*(1-t) + float64(other.B)*t),
	}
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
