package core

// Event is a discrete gameplay event emitted by a simulation tick.
// External collaborators (audio, menus) subscribe to events without the
// game knowing who listens.
type Event int

const (
	EventPelletEaten Event = iota
	EventPowerPelletEaten
	EventGhostEaten
	EventPlayerCaught
	EventLevelWon
	EventLevelLost
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventPelletEaten:
		return "PelletEaten"
	case EventPowerPelletEaten:
		return "PowerPelletEaten"
	case EventGhostEaten:
		return "GhostEaten"
	case EventPlayerCaught:
		return "PlayerCaught"
	case EventLevelWon:
		return "LevelWon"
	case EventLevelLost:
		return "LevelLost"
	default:
		return "Unknown"
	}
}
