package waypoint

import (
	"context"
	"errors"
	"time"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/internal"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/router"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/screen"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"
)

var errNoWindow = errors.New("window not initialized")

// SceneRenderer draws router scenes of screen.Screen views into the SDL
// window and feeds keyboard input to the screen in front.
//
// It implements router.Renderer, so it is handed to router.NewRoutingView.
// All methods must be called from the goroutine that called Init.
type SceneRenderer[D any] struct {
	controller *screen.Controller
	cache      *internal.TextureCache
	layers     []screen.Layer

	inputDelay    time.Duration
	lastInputTime time.Time
}

// NewSceneRenderer creates a renderer that shows screens through controller.
func NewSceneRenderer[D any](controller *screen.Controller) *SceneRenderer[D] {
	if controller == nil {
		controller = screen.NewController()
	}
	return &SceneRenderer[D]{
		controller: controller,
		cache:      internal.NewTextureCache(),
		inputDelay: constants.DefaultInputDelay,
	}
}

// Controller returns the controller holding the focus of the screen in front.
func (r *SceneRenderer[D]) Controller() *screen.Controller {
	return r.controller
}

// Render shows the front screen of scene and draws a frame.
func (r *SceneRenderer[D]) Render(scene router.Scene[D, screen.Screen]) error {
	r.layers = screen.Layers(scene)
	r.controller.Show(r.layers[len(r.layers)-1].Screen)
	return r.Draw()
}

// Draw redraws the last rendered scene.
func (r *SceneRenderer[D]) Draw() error {
	window := internal.GetWindow()
	if window == nil {
		return NewInfrastructureError("render", errNoWindow)
	}

	p := &painter{
		renderer: window.Renderer,
		cache:    r.cache,
		theme:    internal.GetTheme(),
		width:    window.GetWidth(),
		height:   window.GetHeight(),
	}

	bg := p.theme.BackgroundColor
	p.renderer.SetDrawColor(bg.R, bg.G, bg.B, 255)
	if err := p.renderer.Clear(); err != nil {
		return NewInfrastructureError("render", err)
	}

	full := sdl.Rect{W: p.width, H: p.height}
	sheets := int32(0)
	for i, layer := range r.layers {
		focused := -1
		if i == len(r.layers)-1 {
			focused = r.controller.Focused()
		}

		if !layer.Sheet {
			p.screen(layer.Screen, full, p.theme.BackgroundColor, focused)
			continue
		}

		sheets++
		p.dim()
		bounds := internal.UniformPadding(constants.DefaultSheetInset * sheets).Inset(full)
		p.screen(layer.Screen, bounds, p.theme.SheetColor, focused)
	}

	window.Present()
	return nil
}

// Run processes input until the user quits, ctx is done or quit is set.
// It returns ErrQuit when the user closed the window or backed out of the
// root screen, and ctx.Err() when the context ended the loop.
func (r *SceneRenderer[D]) Run(ctx context.Context, quit *atomic.Bool) error {
	logger := internal.GetInternalLogger()

	for {
		if quit != nil && quit.Load() {
			return ErrQuit
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return ErrQuit

			case *sdl.KeyboardEvent:
				input := internal.ProcessKeyboardEvent(e)
				if input == nil {
					continue
				}

				if r.controller.Directional.SetHeld(input.Button, input.Pressed) && input.Repeat {
					continue
				}
				if !input.Pressed || input.Repeat {
					continue
				}

				if time.Since(r.lastInputTime) < r.inputDelay {
					continue
				}
				r.lastInputTime = time.Now()

				logger.Debug("Button pressed", "button", input.Button.GetName(), "screen", r.controller.Current().ID)
				if r.controller.Handle(input.Button) == screen.ActionQuit {
					return ErrQuit
				}
			}
		}

		if button := r.controller.Directional.Update(); button != constants.VirtualButtonUnassigned {
			r.controller.Handle(button)
		}

		if err := r.Draw(); err != nil {
			return err
		}
	}
}

// Destroy releases cached textures.
func (r *SceneRenderer[D]) Destroy() {
	r.cache.Destroy()
}
