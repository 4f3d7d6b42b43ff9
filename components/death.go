package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DeathData marks an enemy that has started its death sequence. Sink drives
// the corpse below the floor; once it finishes the entity is removed.
type DeathData struct {
	Sink *gween.Tween
}

var Death = donburi.NewComponentType[DeathData]()
