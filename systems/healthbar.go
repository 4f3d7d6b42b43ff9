package systems

import (
	"fmt"
	"image"
	"log"
	"math"

	"github.com/automoto/quai/components"
	cfg "github.com/automoto/quai/config"
	"github.com/automoto/quai/tags"
	"github.com/yohamta/donburi"
	"golang.org/x/image/draw"
)

// UpdateHealthBars redraws the indicator of every living enemy whose health
// changed since its texture was drawn.
func UpdateHealthBars(w donburi.World) {
	arenaEntry, ok := components.Arena.First(w)
	if !ok {
		return
	}
	arena := components.Arena.Get(arenaEntry)

	tags.Enemy.Each(w, func(e *donburi.Entry) {
		if components.State.Get(e).CurrentState == cfg.StateDead {
			return
		}
		RefreshHealthBar(e, arena.Rasterize, arena.Logger)
	})
}

// RefreshHealthBar redraws the indicator of e if it is stale. A rasterizer
// failure is logged and the previous texture stays in place. It reports
// whether a new texture was attached.
func RefreshHealthBar(e *donburi.Entry, rasterize components.RasterizeFunc, logger *log.Logger) bool {
	health := components.Health.Get(e)
	bar := components.HealthBar.Get(e)
	if !bar.Stale(health.Current) {
		return false
	}
	if rasterize == nil {
		rasterize = RasterizeHealthBar
	}

	texture, err := rasterize(health.Current, health.Max)
	if err != nil {
		if logger != nil {
			logger.Printf("[enemies] health bar for enemy %d (%d/%d) not redrawn: %v",
				components.Enemy.Get(e).ID, health.Current, health.Max, err)
		}
		return false
	}

	model := components.Model.Get(e)
	model.Overlay.Texture = texture
	model.Overlay.Version++

	bar.RenderedHP = health.Current
	bar.Rendered = true
	return true
}

// RasterizeHealthBar draws a health indicator: a translucent background over
// the whole texture and a bar scaled by current/max inside the padding. The
// bar is HighColor above HighThreshold and LowColor at or below it.
func RasterizeHealthBar(current, max int) (*image.RGBA, error) {
	if max <= 0 {
		return nil, fmt.Errorf("max health %d must be positive", max)
	}
	hb := cfg.HealthBar

	ratio := float64(current) / float64(max)
	ratio = math.Max(0, math.Min(1, ratio))

	img := image.NewRGBA(image.Rect(0, 0, hb.Width, hb.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(hb.BgColor), image.Point{}, draw.Src)

	fill := hb.LowColor
	if ratio > hb.HighThreshold {
		fill = hb.HighColor
	}

	barWidth := int(math.Round(ratio * float64(hb.Width-2*hb.Padding)))
	if barWidth > 0 {
		bar := image.Rect(hb.Padding, hb.Padding, hb.Padding+barWidth, hb.Height-hb.Padding)
		draw.Draw(img, bar, image.NewUniform(fill), image.Point{}, draw.Src)
	}

	return img, nil
}
