package systems

import (
	"github.com/automoto/quai/components"
	"github.com/automoto/quai/tags"
	"github.com/yohamta/donburi"
)

// UpdateModels copies each enemy's simulated pose onto its renderable.
func UpdateModels(w donburi.World) {
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		transform := components.Transform.Get(e)
		model := components.Model.Get(e)
		model.Position = transform.Position
		model.Yaw = transform.Yaw
	})
}
