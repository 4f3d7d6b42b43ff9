package render

import (
	"image/color"
	"math"

	"github.com/automoto/quai/components"
	cfg "github.com/automoto/quai/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	facingColor = color.RGBA{R: 255, G: 255, B: 255, A: 200}
)

type texture struct {
	img     *ebiten.Image
	version uint64
}

// Scene keeps the renderables added by the enemy manager and draws them in
// insertion order.
type Scene struct {
	renderables []*components.Renderable
	textures    map[*components.Renderable]*texture
}

func NewScene() *Scene {
	return &Scene{
		textures: make(map[*components.Renderable]*texture),
	}
}

func (s *Scene) Add(r *components.Renderable) {
	for _, existing := range s.renderables {
		if existing == r {
			return
		}
	}
	s.renderables = append(s.renderables, r)
}

// Remove drops r and frees its GPU texture.
func (s *Scene) Remove(r *components.Renderable) {
	for i, existing := range s.renderables {
		if existing == r {
			s.renderables = append(s.renderables[:i], s.renderables[i+1:]...)
			break
		}
	}
	if tex, ok := s.textures[r]; ok {
		tex.img.Deallocate()
		delete(s.textures, r)
	}
}

func (s *Scene) Len() int {
	return len(s.renderables)
}

// Draw renders every renderable as seen from above.
func (s *Scene) Draw(screen *ebiten.Image, view View) {
	for _, r := range s.renderables {
		s.drawRenderable(screen, view, r)
	}
}

func (s *Scene) drawRenderable(screen *ebiten.Image, view View, r *components.Renderable) {
	// Corpses fade out as they sink
	alpha := 1.0
	if r.SinkY < 0 && cfg.Death.SinkDepth > 0 {
		alpha = 1 + r.SinkY/cfg.Death.SinkDepth
	}

	cx, cy := view.ToScreen(r.Position)
	for _, part := range r.Parts {
		radius := view.Length(part.Radius)
		if part.Shape == components.ShapeCapsule {
			vector.FillCircle(screen, cx, cy, radius, fade(part.Color, alpha), true)
			continue
		}
		// Spheres are drawn with an outline so the head reads over the body
		vector.FillCircle(screen, cx, cy, radius, fade(part.Color, alpha), true)
		vector.StrokeCircle(screen, cx, cy, radius, 1, fade(color.RGBA{A: 255}, alpha), true)
	}

	// Facing: yaw turns +Z toward +X
	reach := view.Length(cfg.HitZone.BodyRadius * 1.6)
	fx := cx + reach*float32(math.Sin(r.Yaw))
	fy := cy + reach*float32(math.Cos(r.Yaw))
	vector.StrokeLine(screen, cx, cy, fx, fy, 2, fade(facingColor, alpha), true)

	if r.Overlay.Visible && r.Overlay.Texture != nil {
		s.drawOverlay(screen, view, r, cx, cy)
	}
}

func (s *Scene) drawOverlay(screen *ebiten.Image, view View, r *components.Renderable, cx, cy float32) {
	tex := s.textures[r]
	if tex == nil || tex.version != r.Overlay.Version {
		if tex != nil {
			tex.img.Deallocate()
		}
		tex = &texture{
			img:     ebiten.NewImageFromImage(r.Overlay.Texture),
			version: r.Overlay.Version,
		}
		s.textures[r] = tex
	}

	bounds := tex.img.Bounds()
	w := float64(view.Length(r.Overlay.ScaleX))
	h := float64(view.Length(r.Overlay.ScaleY))
	if h < 3 {
		h = 3
	}

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Scale(w/float64(bounds.Dx()), h/float64(bounds.Dy()))
	// Billboard sits OffsetY above the origin; from above that is toward -Z on screen
	drawOp.GeoM.Translate(float64(cx)-w/2, float64(cy)-float64(view.Length(r.Overlay.OffsetY))-h/2)
	drawOp.Filter = ebiten.FilterLinear
	screen.DrawImage(tex.img, drawOp)
}
