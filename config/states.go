package config

import "github.com/automoto/quai/shared/netconfig"

// Type aliases so game code and the headless server share one definition.
type StateID = netconfig.StateID
type ZoneID = netconfig.ZoneID

// Re-export enemy state constants.
const (
	StateNone      = netconfig.StateNone
	StateDormant   = netconfig.StateDormant
	StatePursuing  = netconfig.StatePursuing
	StateAttacking = netconfig.StateAttacking
	StateDead      = netconfig.StateDead
)

// Re-export hit-zone constants.
const (
	ZoneNone = netconfig.ZoneNone
	ZoneBody = netconfig.ZoneBody
	ZoneHead = netconfig.ZoneHead
)
