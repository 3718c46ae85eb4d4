package screen

import "github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"

// Controller holds the focus of the screen in front and turns virtual buttons
// into calls on that screen's handlers.
//
// Focus is remembered per Screen.ID, so returning to a screen puts the focus
// back where it was.
type Controller struct {
	current Screen
	focused int
	resume  map[string]int

	Directional DirectionalInput
}

// NewController creates a Controller with default key repeat timing.
func NewController() *Controller {
	return &Controller{
		focused:     -1,
		resume:      make(map[string]int),
		Directional: NewDirectionalInput(),
	}
}

// Show makes s the screen in front. Focus is restored for a screen seen
// before and clamped to the current items.
func (c *Controller) Show(s Screen) {
	if c.current.ID != "" && c.focused >= 0 {
		c.resume[c.current.ID] = c.focused
	}

	c.current = s

	focused, ok := c.resume[s.ID]
	if !ok || focused >= len(s.Items) || !s.Items[focused].Selectable() {
		focused = s.FirstSelectable()
	}
	c.focused = focused
}

// Current returns the screen in front.
func (c *Controller) Current() Screen {
	return c.current
}

// Focused returns the index of the focused item, or -1 if nothing can focus.
func (c *Controller) Focused() int {
	return c.focused
}

// Forget drops the remembered focus for a screen id.
func (c *Controller) Forget(id string) {
	delete(c.resume, id)
}

// Handle applies a button press to the screen in front.
//
// Handlers run synchronously; when they navigate, the front end calls Show
// with the new screen before Handle returns.
func (c *Controller) Handle(button constants.VirtualButton) Action {
	s := c.current

	switch button {
	case constants.VirtualButtonUp:
		return c.move(-1)
	case constants.VirtualButtonDown:
		return c.move(1)
	case constants.VirtualButtonA, constants.VirtualButtonStart:
		if c.focused < 0 || c.focused >= len(s.Items) {
			break
		}
		item := s.Items[c.focused]
		if !item.Selectable() {
			break
		}
		item.Action()
		return ActionSelected
	case constants.VirtualButtonB:
		if s.OnBack == nil {
			return ActionQuit
		}
		s.OnBack()
		return ActionBack
	}

	if handler, ok := s.Buttons[button]; ok && handler != nil {
		handler()
		return ActionTriggered
	}

	return ActionNone
}

func (c *Controller) move(step int) Action {
	items := c.current.Items
	if c.focused < 0 || len(items) == 0 {
		return ActionNone
	}

	for i, next := 0, c.focused; i < len(items); i++ {
		next = (next + step + len(items)) % len(items)
		if items[next].Selectable() {
			if next == c.focused {
				return ActionNone
			}
			c.focused = next
			return ActionMoved
		}
	}

	return ActionNone
}
