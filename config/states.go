package config

// StateID identifies a character/entity state for animation and logic.
type StateID int

const (
	StateNone StateID = -1

	Idle StateID = iota
	Running
	Jumping
	Falling
	Attack
	Walk
)

// String returns the sprite sheet name for the state.
func (s StateID) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "run"
	case Jumping:
		return "jump"
	case Falling:
		return "fall"
	case Attack:
		return "attack"
	case Walk:
		return "walk"
	default:
		return "none"
	}
}
