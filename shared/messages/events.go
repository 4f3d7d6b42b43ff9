package messages

import "github.com/automoto/quai/shared/netconfig"

// HitConfirmed answers a Shot that landed on an enemy.
type HitConfirmed struct {
	Sequence  uint32
	EnemyID   uint64
	Zone      netconfig.ZoneID
	Damage    int
	Remaining int
}

// WaveStarted is broadcast when the server spawns a layout wave.
type WaveStarted struct {
	Wave    int
	Enemies int
}
