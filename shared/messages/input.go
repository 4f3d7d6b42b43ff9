package messages

// PlayerInput is sent from client to server each frame with the player's input state.
// MoveX and MoveZ are the stick axes on the ground plane, each in [-1, 1].
type PlayerInput struct {
	Sequence  uint32 // Incrementing ID for reconciliation
	MoveX     float64
	MoveZ     float64
	Timestamp int64 // Client timestamp (Unix ms)
}

// Shot is sent when the player fires at a world point.
type Shot struct {
	Sequence uint32
	X, Y, Z  float64
}
