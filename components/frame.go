package components

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// FrameData holds the inputs of the frame currently being simulated.
type FrameData struct {
	Delta       float64 // seconds since the previous frame
	NowMs       int64   // clock reading, taken once per frame
	Player      mgl64.Vec3
	OnPlayerHit func(damage float64)
}

// ArenaData holds the collaborators shared by every enemy system.
type ArenaData struct {
	Space      *resolv.Space
	Scene      SceneSink
	Logger     *log.Logger
	Rasterize  RasterizeFunc
	Hysteresis float64

	// Enemies removed from the world since the owner last drained the list
	Removed []EnemyID
}

var Frame = donburi.NewComponentType[FrameData]()
var Arena = donburi.NewComponentType[ArenaData]()
