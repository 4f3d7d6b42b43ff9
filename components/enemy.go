package components

import (
	"github.com/automoto/quai/config"
	"github.com/yohamta/donburi"
)

// EnemyID identifies a spawned enemy for the lifetime of its manager.
type EnemyID uint64

type EnemyData struct {
	ID         EnemyID
	TypeConfig *config.EnemyTypeConfig // Shared archetype, never mutated

	// Combat
	LastAttackMs int64 // Clock reading of the last delivered attack
	HasAttacked  bool  // False until the first attack, which is never cooled down

	// Hit-zone entities owned by this enemy (body, head)
	Zones []*donburi.Entry
}

var Enemy = donburi.NewComponentType[EnemyData]()
