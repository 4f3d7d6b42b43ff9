package render

import (
	"image/color"

	"github.com/automoto/quai/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
)

// DrawHitZones outlines every collidable in space. Space coordinates are the
// arena plane with the world origin at its center.
func DrawHitZones(screen *ebiten.Image, view View, space *resolv.Space, width, depth int) {
	if space == nil {
		return
	}
	ppu := float32(view.PixelsPerUnit)
	originX, originY := view.ToScreen(view.Camera.Mul(0))
	offX := originX - float32(width)/2*ppu
	offY := originY - float32(depth)/2*ppu

	for _, obj := range space.Objects() {
		x := offX + float32(obj.X)*ppu
		y := offY + float32(obj.Y)*ppu
		w := float32(obj.W) * ppu
		h := float32(obj.H) * ppu

		// Cull objects outside viewport
		if x+w < 0 || y+h < 0 || x > float32(view.Width) || y > float32(view.Height) {
			continue
		}

		// Determine color based on tags
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvHead) {
			c = color.RGBA{255, 200, 0, 255} // Amber
		} else if obj.HasTags(tags.ResolvBody) {
			c = color.RGBA{255, 0, 0, 255} // Red
		}

		vector.StrokeRect(screen, x, y, w, h, 1, c, false)
	}
}
