package systems

import (
	"github.com/automoto/quai/components"
	cfg "github.com/automoto/quai/config"
	"github.com/automoto/quai/shared/gamemath"
	"github.com/automoto/quai/systems/factory"
	"github.com/automoto/quai/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// sampleSize is the side of the object used to sample the space at a point.
const sampleSize = 0.05

// UpdateHitZones moves every hit-zone footprint under its owner.
func UpdateHitZones(w donburi.World) {
	tags.HitZone.Each(w, func(e *donburi.Entry) {
		hz := components.HitZone.Get(e)
		if hz.Owner == nil || !hz.Owner.Valid() {
			return
		}
		obj := components.Object.Get(e)
		obj.X, obj.Y = factory.ZoneFootprint(components.Transform.Get(hz.Owner).Position, hz.Radius)
		if obj.Space != nil {
			obj.Update()
		}
	})
}

// ZoneAt returns the enemy and zone occupying the world point p. The head
// wins where it overlaps the body.
func ZoneAt(space *resolv.Space, p mgl64.Vec3) (*donburi.Entry, cfg.ZoneID, bool) {
	if space == nil {
		return nil, cfg.ZoneNone, false
	}

	x, y := gamemath.ToPlane(p, cfg.Arena.Width, cfg.Arena.Depth)
	sample := resolv.NewObject(x-sampleSize/2, y-sampleSize/2, sampleSize, sampleSize)
	space.Add(sample)
	defer space.Remove(sample)

	check := sample.Check(0, 0, tags.ResolvEnemy)
	if check == nil {
		return nil, cfg.ZoneNone, false
	}

	var owner *donburi.Entry
	zone := cfg.ZoneNone
	for _, obj := range check.Objects {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		hz := components.HitZone.Get(entry)
		if hz.Owner == nil || !hz.Owner.Valid() {
			continue
		}
		if !hz.Contains(components.Transform.Get(hz.Owner).Position, p) {
			continue
		}
		if hz.Zone == cfg.ZoneHead {
			return hz.Owner, cfg.ZoneHead, true
		}
		if owner == nil {
			owner, zone = hz.Owner, hz.Zone
		}
	}

	return owner, zone, owner != nil
}
