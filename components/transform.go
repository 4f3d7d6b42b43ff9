package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// TransformData is the simulated pose of an entity in world space.
type TransformData struct {
	Position mgl64.Vec3
	Yaw      float64 // radians around +Y, 0 faces +Z
}

var Transform = donburi.NewComponentType[TransformData]()
