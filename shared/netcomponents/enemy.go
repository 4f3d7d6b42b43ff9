package netcomponents

import (
	"math"

	"github.com/automoto/quai/shared/netconfig"
	"github.com/yohamta/donburi"
)

type NetEnemyData struct {
	EnemyID   uint64
	X, Y, Z   float64
	Yaw       float64
	TypeName  string // "Z-Runner", "Shadow-Eye", "GOLIATH"
	State     netconfig.StateID
	Health    int
	MaxHealth int
}

var NetEnemy = donburi.NewComponentType[NetEnemyData]()

// LerpNetEnemy interpolates between two enemy states. Yaw takes the short way
// around the circle.
func LerpNetEnemy(from, to NetEnemyData, t float64) *NetEnemyData {
	return &NetEnemyData{
		EnemyID:   to.EnemyID,
		X:         from.X + (to.X-from.X)*t,
		Y:         from.Y + (to.Y-from.Y)*t,
		Z:         from.Z + (to.Z-from.Z)*t,
		Yaw:       lerpAngle(from.Yaw, to.Yaw, t),
		TypeName:  to.TypeName,
		State:     to.State,
		Health:    to.Health,
		MaxHealth: to.MaxHealth,
	}
}

func lerpAngle(from, to, t float64) float64 {
	d := math.Remainder(to-from, 2*math.Pi)
	return from + d*t
}
