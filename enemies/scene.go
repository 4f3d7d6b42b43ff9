package enemies

import "github.com/automoto/quai/components"

// Scene is the render scene enemies are added to and removed from.
type Scene = components.SceneSink

// NopScene discards every renderable, for headless hosts.
type NopScene struct{}

func (NopScene) Add(*components.Renderable)    {}
func (NopScene) Remove(*components.Renderable) {}
