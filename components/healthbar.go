package components

import (
	"image"

	"github.com/yohamta/donburi"
)

// RasterizeFunc draws a health indicator texture for current/max health.
type RasterizeFunc func(current, max int) (*image.RGBA, error)

type HealthBarData struct {
	RenderedHP int  // health shown by the current texture
	Rendered   bool // false until a texture has been drawn
}

// Stale reports whether the indicator no longer shows current health.
func (h *HealthBarData) Stale(current int) bool {
	return !h.Rendered || h.RenderedHP != current
}

var HealthBar = donburi.NewComponentType[HealthBarData]()
