package components

import (
	"image"
	"image/color"

	"github.com/automoto/quai/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type Shape int

const (
	ShapeCapsule Shape = iota
	ShapeSphere
)

// PartData is one colored sub-shape of a renderable, positioned relative to
// the renderable's origin.
type PartData struct {
	Zone   config.ZoneID
	Shape  Shape
	Radius float64
	Length float64 // cylindrical section, capsules only
	LocalY float64
	Color  color.RGBA
}

// BillboardData is a camera-facing overlay attached above a renderable.
type BillboardData struct {
	Texture *image.RGBA
	Version uint64 // bumped whenever Texture is replaced
	ScaleX  float64
	ScaleY  float64
	OffsetY float64
	Visible bool
}

// Renderable is the visual composite handed to the scene. The scene reads it
// every draw; only systems write to it.
type Renderable struct {
	Name     string
	Position mgl64.Vec3
	Yaw      float64
	SinkY    float64 // vertical offset applied while a corpse sinks
	Parts    []PartData
	Overlay  BillboardData
}

// SceneSink is the render scene the enemies are registered with.
type SceneSink interface {
	Add(r *Renderable)
	Remove(r *Renderable)
}

type ModelData struct {
	*Renderable
}

var Model = donburi.NewComponentType[ModelData]()
