package race

// RaceState is the outcome of a race.
type RaceState int

const (
	Playing RaceState = iota // No collision yet and the finish line is still ahead
	Lost                     // The player touched a nebula
	Won                      // The finish line reached the player without a collision
)

// String returns a human-readable name for the state.
func (s RaceState) String() string {
	switch s {
	case Playing:
		return "Playing"
	case Lost:
		return "Lost"
	case Won:
		return "Won"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the race has ended.
func (s RaceState) Terminal() bool {
	return s == Lost || s == Won
}

// Message returns the end-of-race text shown for a terminal state, or an
// empty string while the race is running.
func (s RaceState) Message() string {
	switch s {
	case Lost:
		return "Game Over!"
	case Won:
		return "YOU WIN!"
	default:
		return ""
	}
}
