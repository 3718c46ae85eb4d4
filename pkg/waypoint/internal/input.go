package internal

import (
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"
	"github.com/veandco/go-sdl2/sdl"
)

var keyboardMapping = map[sdl.Keycode]constants.VirtualButton{
	sdl.K_UP:        constants.VirtualButtonUp,
	sdl.K_DOWN:      constants.VirtualButtonDown,
	sdl.K_LEFT:      constants.VirtualButtonLeft,
	sdl.K_RIGHT:     constants.VirtualButtonRight,
	sdl.K_RETURN:    constants.VirtualButtonA,
	sdl.K_SPACE:     constants.VirtualButtonA,
	sdl.K_ESCAPE:    constants.VirtualButtonB,
	sdl.K_BACKSPACE: constants.VirtualButtonB,
	sdl.K_x:         constants.VirtualButtonX,
	sdl.K_y:         constants.VirtualButtonY,
	sdl.K_a:         constants.VirtualButtonX,
	sdl.K_f:         constants.VirtualButtonY,
	sdl.K_r:         constants.VirtualButtonSelect,
	sdl.K_TAB:       constants.VirtualButtonStart,
	sdl.K_m:         constants.VirtualButtonMenu,
}

// InputEvent is a keyboard event translated to a virtual button.
type InputEvent struct {
	Button  constants.VirtualButton
	Pressed bool
	Repeat  bool
}

// ProcessKeyboardEvent maps a key event to a virtual button.
// Returns nil for keys the front end does not use.
func ProcessKeyboardEvent(event *sdl.KeyboardEvent) *InputEvent {
	button, ok := keyboardMapping[event.Keysym.Sym]
	if !ok {
		return nil
	}
	return &InputEvent{
		Button:  button,
		Pressed: event.Type == sdl.KEYDOWN,
		Repeat:  event.Repeat != 0,
	}
}
