package screen

import (
	"time"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"
)

// DirectionalInput tracks a held Up/Down button and decides when a held
// button should repeat. The first repeat fires after the delay, then one
// every interval while the button stays down.
type DirectionalInput struct {
	held           constants.VirtualButton
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool
	now            func() time.Time
}

// NewDirectionalInput creates a DirectionalInput with default timing.
// Default delay is 300ms before first repeat, then 50ms between repeats.
func NewDirectionalInput() DirectionalInput {
	return NewDirectionalInputWithTiming(300*time.Millisecond, 50*time.Millisecond)
}

// NewDirectionalInputWithTiming creates a DirectionalInput with custom timing.
func NewDirectionalInputWithTiming(delay, interval time.Duration) DirectionalInput {
	return DirectionalInput{
		repeatDelay:    delay,
		repeatInterval: interval,
		lastRepeatTime: time.Now(),
		now:            time.Now,
	}
}

// SetHeld updates the held state for a button.
// Returns true if the button was a vertical direction.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool) bool {
	if button != constants.VirtualButtonUp && button != constants.VirtualButtonDown {
		return false
	}

	switch {
	case held:
		d.held = button
		d.hasRepeated = false
		d.lastRepeatTime = d.clock()
	case d.held == button:
		d.held = constants.VirtualButtonUnassigned
		d.hasRepeated = false
	}
	return true
}

// IsHeld returns true if a direction is currently held.
func (d *DirectionalInput) IsHeld() bool {
	return d.held != constants.VirtualButtonUnassigned
}

// Update checks if a repeat should fire. Call it every frame. It returns the
// held button when a repeat is due, VirtualButtonUnassigned otherwise.
func (d *DirectionalInput) Update() constants.VirtualButton {
	if !d.IsHeld() {
		return constants.VirtualButtonUnassigned
	}

	threshold := d.repeatInterval
	if !d.hasRepeated {
		threshold = d.repeatDelay
	}

	now := d.clock()
	if now.Sub(d.lastRepeatTime) >= threshold {
		d.lastRepeatTime = now
		d.hasRepeated = true
		return d.held
	}

	return constants.VirtualButtonUnassigned
}

// Reset clears the held direction and timing state.
func (d *DirectionalInput) Reset() {
	d.held = constants.VirtualButtonUnassigned
	d.hasRepeated = false
	d.lastRepeatTime = d.clock()
}

func (d *DirectionalInput) clock() time.Time {
	if d.now == nil {
		return time.Now()
	}
	return d.now()
}
