package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var window *Window

// Init starts SDL video and TTF, opens the window and loads the theme font.
func Init(title string, winOpts WindowOptions) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return fmt.Errorf("ttf init: %w", err)
	}

	// Apply default window options if none specified
	if winOpts.IsZero() {
		winOpts = WindowOptions{Resizable: true}
	}

	w, err := initWindow(title, winOpts)
	if err != nil {
		ttf.Quit()
		sdl.Quit()
		return err
	}
	window = w

	if err := initFonts(GetTheme().FontPath, DefaultFontSizes); err != nil {
		SDLCleanup()
		return err
	}

	return nil
}

// SDLCleanup releases everything Init created. Safe to call after a failed Init.
func SDLCleanup() {
	if window != nil {
		window.closeWindow()
		window = nil
	}
	closeFonts()
	if ttf.WasInit() {
		ttf.Quit()
	}
	sdl.Quit()
}
