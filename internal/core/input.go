package core

// Key is a logical key, abstracted from the physical key pressed.
// The platform layer maps terminal keys onto these.
type Key int

const (
	KeyNone      Key = iota
	KeyCancel        // Esc - quit
	KeyConfirm       // Space - start game
	KeySecondary     // Enter - back to menu after game over
	KeyUp            // Up arrow, W
	KeyDown          // Down arrow, S
	KeyLeft          // Left arrow, A
	KeyRight         // Right arrow, D
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyCancel:
		return "Cancel"
	case KeyConfirm:
		return "Confirm"
	case KeySecondary:
		return "Secondary"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Direction returns the movement direction requested by a directional key.
func (k Key) Direction() (Direction, bool) {
	switch k {
	case KeyUp:
		return DirUp, true
	case KeyDown:
		return DirDown, true
	case KeyLeft:
		return DirLeft, true
	case KeyRight:
		return DirRight, true
	}
	return 0, false
}

// KeyKind distinguishes presses from the release and repeat events some
// terminals report.
type KeyKind int

const (
	KeyPress KeyKind = iota
	KeyRepeat
	KeyRelease
)

// KeyEvent is a single input event delivered to the simulation.
type KeyEvent struct {
	Key  Key
	Kind KeyKind
}

// Press creates a key press event.
func Press(k Key) KeyEvent {
	return KeyEvent{Key: k, Kind: KeyPress}
}
