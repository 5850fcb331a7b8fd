package game

// Status is the top-level state of a game session.
type Status int

const (
	StatusMenu Status = iota
	StatusPlaying
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusMenu:
		return "menu"
	case StatusPlaying:
		return "playing"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Trigger is something that can move the game between statuses.
type Trigger int

const (
	TriggerConfirm   Trigger = iota // confirm key
	TriggerSecondary                // secondary-confirm key
	TriggerCollision                // wall or self collision during a step
)

func (t Trigger) String() string {
	switch t {
	case TriggerConfirm:
		return "confirm"
	case TriggerSecondary:
		return "secondary"
	case TriggerCollision:
		return "collision"
	default:
		return "unknown"
	}
}

// transitions lists every legal status change. Anything not listed is ignored.
// Playing can only be left through a collision.
var transitions = map[Status]map[Trigger]Status{
	StatusMenu: {
		TriggerConfirm: StatusPlaying,
	},
	StatusPlaying: {
		TriggerCollision: StatusGameOver,
	},
	StatusGameOver: {
		TriggerConfirm:   StatusPlaying,
		TriggerSecondary: StatusMenu,
	},
}

// Next returns the status reached from `from` on trigger t.
// The second result is false when the transition is not allowed.
func Next(from Status, t Trigger) (Status, bool) {
	to, ok := transitions[from][t]
	return to, ok
}
