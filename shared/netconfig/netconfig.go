// Package netconfig defines lightweight types shared between client and server
// for network serialization. It must have zero dependencies on ebiten or any
// graphics library so the dedicated server binary stays headless.
package netconfig

// StateID identifies the behavior state of an enemy.
type StateID int

const (
	StateNone StateID = iota - 1

	// Enemy behavior states
	StateDormant
	StatePursuing
	StateAttacking
	StateDead
)

var stateNames = map[StateID]string{
	StateNone:      "none",
	StateDormant:   "dormant",
	StatePursuing:  "pursuing",
	StateAttacking: "attacking",
	StateDead:      "dead",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// ZoneID identifies a hit-zone on an enemy body.
type ZoneID int

const (
	ZoneNone ZoneID = iota
	ZoneBody
	ZoneHead
)

func (z ZoneID) String() string {
	switch z {
	case ZoneBody:
		return "body"
	case ZoneHead:
		return "head"
	}
	return "none"
}
