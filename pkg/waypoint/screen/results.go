package screen

// Action represents what a button press did to a Screen.
type Action int

const (
	ActionNone      Action = iota // Button not handled by the screen
	ActionMoved                   // Focus moved to another item (Up/Down)
	ActionSelected                // Focused item's action ran (A or Start button)
	ActionBack                    // Screen's back handler ran (B button)
	ActionTriggered               // A screen-level button handler ran
	ActionQuit                    // Back pressed on a screen with nowhere to go back to
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionMoved:
		return "moved"
	case ActionSelected:
		return "selected"
	case ActionBack:
		return "back"
	case ActionTriggered:
		return "triggered"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}
