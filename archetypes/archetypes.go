package archetypes

import (
	"github.com/automoto/quai/components"
	"github.com/automoto/quai/tags"
	"github.com/yohamta/donburi"
)

var (
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Transform,
		components.Health,
		components.HealthBar,
		components.State,
		components.Model,
	)
	HitZone = newArchetype(
		tags.HitZone,
		components.HitZone,
		components.Object,
	)
	Arena = newArchetype(
		components.Arena,
		components.Frame,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
