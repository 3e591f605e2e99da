package config

// RoundStateID identifies where the crossing round is in its lifecycle
type RoundStateID int

const (
	RoundStateLoading RoundStateID = iota
	RoundStateRunning
	RoundStateTimeOver
)

func (s RoundStateID) String() string {
	switch s {
	case RoundStateLoading:
		return "loading"
	case RoundStateRunning:
		return "running"
	case RoundStateTimeOver:
		return "time_over"
	}
	return "unknown"
}

// Direction is a single grid step requested by the player
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirUp
	DirRight
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	}
	return "none"
}
