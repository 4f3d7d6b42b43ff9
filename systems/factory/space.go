package factory

import (
	"math"

	"github.com/automoto/quai/archetypes"
	"github.com/automoto/quai/components"
	cfg "github.com/automoto/quai/config"
	"github.com/automoto/quai/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSpace builds the collision space covering the configured arena.
func CreateSpace() *resolv.Space {
	return resolv.NewSpace(cfg.Arena.Width, cfg.Arena.Depth, cfg.Arena.CellSize, cfg.Arena.CellSize)
}

// CreateArena spawns the singleton holding per-frame inputs and the systems'
// shared collaborators.
func CreateArena(w donburi.World, arena components.ArenaData) *donburi.Entry {
	e := archetypes.Arena.Spawn(w)
	components.Arena.SetValue(e, arena)
	return e
}

// ZoneMargin is the distance an enemy must keep from the space's edges so
// every one of its zones stays inside it.
func ZoneMargin() float64 {
	return math.Max(cfg.HitZone.BodyRadius, cfg.HitZone.HeadRadius)
}

// InArena reports whether an enemy standing at pos keeps all of its hit-zones
// inside the collision space.
func InArena(pos mgl64.Vec3) bool {
	return gamemath.OnPlane(pos, cfg.Arena.Width, cfg.Arena.Depth, ZoneMargin())
}

// ClampToArena returns the closest position to pos where an enemy's hit-zones
// stay inside the collision space.
func ClampToArena(pos mgl64.Vec3) mgl64.Vec3 {
	return gamemath.ClampToPlane(pos, cfg.Arena.Width, cfg.Arena.Depth, ZoneMargin())
}
