package screen

// MenuItem represents a single row in a Screen's list.
type MenuItem struct {
	Text     string      // Display text for the item
	Detail   string      // Secondary text drawn at the right edge
	Header   bool        // Section header row (drawn with the accent color)
	Disabled bool        // Item cannot take focus or be selected
	Metadata interface{} // Application-specific data attached to the item
	Action   func()      // Called when the item is selected (A button)
}

// Selectable reports whether the item can take focus.
func (m MenuItem) Selectable() bool {
	return !m.Disabled && m.Action != nil
}
