// Package render draws the arena from above with ebitengine.
package render

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// View maps world X/Z onto screen pixels, centered on a camera point.
type View struct {
	Camera        mgl64.Vec3
	PixelsPerUnit float64
	Width, Height int
}

// ToScreen returns the screen position of world point p. Height is ignored.
func (v View) ToScreen(p mgl64.Vec3) (x, y float32) {
	sx := float64(v.Width)/2 + (p.X()-v.Camera.X())*v.PixelsPerUnit
	sy := float64(v.Height)/2 + (p.Z()-v.Camera.Z())*v.PixelsPerUnit
	return float32(sx), float32(sy)
}

// ToWorld is the inverse of ToScreen on the ground plane, at height y.
func (v View) ToWorld(sx, sy int, y float64) mgl64.Vec3 {
	return mgl64.Vec3{
		v.Camera.X() + (float64(sx)-float64(v.Width)/2)/v.PixelsPerUnit,
		y,
		v.Camera.Z() + (float64(sy)-float64(v.Height)/2)/v.PixelsPerUnit,
	}
}

// Length converts a world distance to pixels.
func (v View) Length(d float64) float32 {
	return float32(d * v.PixelsPerUnit)
}

// fade scales the alpha of c by f in [0, 1]. Colors are premultiplied so every
// channel is scaled.
func fade(c color.RGBA, f float64) color.RGBA {
	if f >= 1 {
		return c
	}
	if f <= 0 {
		return color.RGBA{}
	}
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}
