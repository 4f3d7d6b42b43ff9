package tags

import "github.com/yohamta/donburi"

var (
	Enemy   = donburi.NewTag().SetName("Enemy")
	HitZone = donburi.NewTag().SetName("HitZone")
)

// Resolv tags for hit-zone collision
const (
	ResolvEnemy = "Enemy"
	ResolvBody  = "body"
	ResolvHead  = "head"
)
