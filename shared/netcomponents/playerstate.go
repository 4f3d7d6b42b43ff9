package netcomponents

import "github.com/yohamta/donburi"

type NetPlayerStateData struct {
	Name         string
	Health       int
	MaxHealth    int
	LastSequence uint32 // Last input sequence processed by the server (for prediction reconciliation)
	IsLocal      bool   // Client-side only, not synced
}

// Alive reports whether the player still has health left.
func (p *NetPlayerStateData) Alive() bool {
	return p.Health > 0
}

var NetPlayerState = donburi.NewComponentType[NetPlayerStateData]()
