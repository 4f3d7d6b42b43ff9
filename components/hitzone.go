package components

import (
	"github.com/automoto/quai/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// HitZoneData tags a collidable sub-shape of an enemy. The resolv object of
// the same entry carries the entry itself in its Data field.
//
// Every zone is a vertical capsule; a zero Length makes it a sphere.
type HitZoneData struct {
	Owner  *donburi.Entry // Enemy this zone belongs to
	Zone   config.ZoneID
	LocalY float64 // center height above the owner's position
	Radius float64
	Length float64 // cylindrical section between the two caps
}

// Contains reports whether p lies inside the zone of an owner standing at
// origin.
func (h *HitZoneData) Contains(origin, p mgl64.Vec3) bool {
	d := p.Sub(origin.Add(mgl64.Vec3{0, h.LocalY, 0}))

	// Distance from p to the capsule's vertical segment
	half := h.Length / 2
	dy := d.Y()
	switch {
	case dy > half:
		dy -= half
	case dy < -half:
		dy += half
	default:
		dy = 0
	}
	return d.X()*d.X()+dy*dy+d.Z()*d.Z() <= h.Radius*h.Radius
}

var HitZone = donburi.NewComponentType[HitZoneData]()
