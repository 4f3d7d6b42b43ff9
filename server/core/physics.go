package core

import (
	"math"

	cfg "github.com/automoto/quai/config"
	"github.com/automoto/quai/shared/netcomponents"
	"github.com/go-gl/mathgl/mgl64"
)

// updatePhysics moves every living player by its latest input. Called once
// per server tick with the tick length in seconds.
func (s *Server) updatePhysics(dt float64) {
	for _, pp := range s.players {
		if !s.world.Valid(pp.Entity) {
			continue
		}
		entry := s.world.Entry(pp.Entity)
		state := netcomponents.NetPlayerState.Get(entry)
		if state.Alive() {
			s.stepPlayerPhysics(pp, dt)
		}

		pos := netcomponents.NetPosition.Get(entry)
		pos.X, pos.Y, pos.Z = pp.Position.X(), pp.Position.Y(), pp.Position.Z()
		state.LastSequence = pp.LastInputSeq
	}
}

// stepPlayerPhysics applies one tick of movement on the ground plane,
// keeping the player inside the arena.
func (s *Server) stepPlayerPhysics(pp *PlayerPhysics, dt float64) {
	dir := mgl64.Vec3{pp.MoveX, 0, pp.MoveZ}
	if l := dir.Len(); l > 1 {
		dir = dir.Mul(1 / l)
	}
	next := pp.Position.Add(dir.Mul(s.moveSpeed * dt))

	halfW := float64(cfg.Arena.Width)/2 - playerRadius
	halfD := float64(cfg.Arena.Depth)/2 - playerRadius
	next[0] = clamp(next[0], -halfW, halfW)
	next[2] = clamp(next[2], -halfD, halfD)
	pp.Position = next

	pp.Object.X, pp.Object.Y = footprint(next)
	pp.Object.Update()
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// sanitizeAxis maps a client stick axis into [-1, 1], treating NaN as idle.
func sanitizeAxis(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return clamp(v, -1, 1)
}
