package core

import (
	cfg "github.com/automoto/quai/config"
	"github.com/automoto/quai/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/leap-fish/necs/router"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

const (
	tagPlayer     = "player"
	playerRadius  = 0.5
	playerEyeline = 1.7
)

// PlayerPhysics holds per-player movement state on the server. This is not a
// donburi component: it exists only on the server and is never synced.
type PlayerPhysics struct {
	ClientID string
	Client   *router.NetworkClient // nil for players joined without a connection
	Entity   donburi.Entity
	Object   *resolv.Object
	Position mgl64.Vec3

	// Latest input snapshot (written by the input command, read by the physics tick)
	MoveX, MoveZ float64

	// Last processed input sequence (for client-side prediction reconciliation)
	LastInputSeq uint32
}

func newPlayerPhysics(level *ServerLevel, clientID string, spawn mgl64.Vec3) *PlayerPhysics {
	x, y := footprint(spawn)
	obj := resolv.NewObject(x, y, playerRadius*2, playerRadius*2, tagPlayer)
	level.Space.Add(obj)

	return &PlayerPhysics{
		ClientID: clientID,
		Object:   obj,
		Position: spawn,
	}
}

func removePlayerPhysics(level *ServerLevel, pp *PlayerPhysics) {
	level.Space.Remove(pp.Object)
}

// Eye returns the point enemies aim at.
func (pp *PlayerPhysics) Eye() mgl64.Vec3 {
	return pp.Position.Add(mgl64.Vec3{0, playerEyeline, 0})
}

func footprint(p mgl64.Vec3) (x, y float64) {
	cx, cy := gamemath.ToPlane(p, cfg.Arena.Width, cfg.Arena.Depth)
	return cx - playerRadius, cy - playerRadius
}
