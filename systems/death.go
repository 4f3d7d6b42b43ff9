package systems

import (
	"github.com/automoto/quai/components"
	cfg "github.com/automoto/quai/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// Kill moves e into the terminal Dead state: its hit-zones are removed so the
// corpse cannot be hit, the health indicator is hidden and the corpse starts
// sinking. Killing a dead enemy does nothing.
func Kill(w donburi.World, e *donburi.Entry) {
	state := components.State.Get(e)
	if state.CurrentState == cfg.StateDead {
		return
	}
	state.Transition(cfg.StateDead)

	removeHitZones(w, e)
	components.Model.Get(e).Overlay.Visible = false

	donburi.Add(e, components.Death, &components.DeathData{
		Sink: gween.New(0, float32(-cfg.Death.SinkDepth), float32(cfg.Death.Duration), ease.InQuad),
	})

	if arena := arenaOf(w); arena != nil && arena.Logger != nil {
		enemy := components.Enemy.Get(e)
		arena.Logger.Printf("[enemies] enemy %d (%s) died", enemy.ID, enemy.TypeConfig.Name)
	}
}

// UpdateDeaths advances every corpse's sink and removes the ones that are
// fully sunk.
func UpdateDeaths(w donburi.World) {
	frameEntry, ok := components.Frame.First(w)
	if !ok {
		return
	}
	frame := components.Frame.Get(frameEntry)

	var finished []*donburi.Entry
	components.Death.Each(w, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		sink, done := death.Sink.Update(float32(frame.Delta))
		components.Model.Get(e).SinkY = float64(sink)
		if done {
			finished = append(finished, e)
		}
	})

	// Removal is deferred so the world is not mutated while iterating
	for _, e := range finished {
		RemoveEnemy(w, e)
	}
}

// RemoveEnemy despawns e: its zones leave the space, its renderable leaves
// the scene and both leave the world. The ID is queued on the arena's
// Removed list for the owner to drain.
func RemoveEnemy(w donburi.World, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	removeHitZones(w, e)

	arena := arenaOf(w)
	if arena != nil {
		if arena.Scene != nil {
			arena.Scene.Remove(components.Model.Get(e).Renderable)
		}
		arena.Removed = append(arena.Removed, components.Enemy.Get(e).ID)
	}

	w.Remove(e.Entity())
}

func removeHitZones(w donburi.World, e *donburi.Entry) {
	enemy := components.Enemy.Get(e)
	for _, zone := range enemy.Zones {
		if !zone.Valid() {
			continue
		}
		if obj := components.Object.Get(zone); obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
		w.Remove(zone.Entity())
	}
	enemy.Zones = nil
}

func arenaOf(w donburi.World) *components.ArenaData {
	arenaEntry, ok := components.Arena.First(w)
	if !ok {
		return nil
	}
	return components.Arena.Get(arenaEntry)
}
