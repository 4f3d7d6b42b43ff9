package enemies

import (
	"fmt"

	cfg "github.com/automoto/quai/config"
	"github.com/automoto/quai/shared/leveldata"
	"github.com/go-gl/mathgl/mgl64"
)

// SpawnLayout spawns every point of the given wave. A wave spawns whole or
// not at all: archetypes are resolved before the first enemy is created, and
// enemies already spawned are removed again if a later point is rejected.
func (m *Manager) SpawnLayout(layout *leveldata.SpawnLayout, wave int) ([]EnemyID, error) {
	if layout == nil {
		return nil, &PreconditionError{Op: "spawn layout", Field: "layout", Value: nil}
	}
	if wave < 0 {
		return nil, &PreconditionError{Op: "spawn layout", Field: "wave", Value: wave}
	}

	points := layout.Wave(wave)
	types := make([]cfg.EnemyTypeConfig, len(points))
	for i, p := range points {
		t, ok := cfg.LookupEnemyType(p.Archetype)
		if !ok {
			return nil, &PreconditionError{
				Op:    "spawn layout",
				Field: "archetype",
				Value: p.Archetype,
				Err:   fmt.Errorf("%s wave %d: unknown archetype %q", layout.Name, wave, p.Archetype),
			}
		}
		types[i] = t
	}

	ids := make([]EnemyID, 0, len(points))
	for i, p := range points {
		id, err := m.SpawnEnemy(types[i], mgl64.Vec3{p.X, p.Y, p.Z})
		if err != nil {
			m.rollback(ids)
			return nil, fmt.Errorf("%s wave %d point %d: %w", layout.Name, wave, i, err)
		}
		ids = append(ids, id)
	}

	m.logger.Printf("[enemies] spawned wave %d of %s: %d enemies", wave, layout.Name, len(ids))
	return ids, nil
}

func (m *Manager) rollback(ids []EnemyID) {
	for _, id := range ids {
		if err := m.Remove(id); err != nil {
			m.logger.Printf("[enemies] rollback of enemy %d: %v", id, err)
		}
	}
}
