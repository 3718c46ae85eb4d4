package screen

import "github.com/BrandonKowalski/waypoint/pkg/waypoint/router"

// Layer is one screen to draw, bottom to top.
type Layer struct {
	Screen Screen
	Sheet  bool // Drawn as an inset panel over the layers below
	Level  int  // Presentation level the screen belongs to
}

// Layers flattens a scene into the screens a front end has to draw, bottom
// first. A full-screen cover hides every layer below it; each sheet is drawn
// over the layers below it. The last layer is the one taking input.
func Layers[D any](scene router.Scene[D, Screen]) []Layer {
	layers := []Layer{{Screen: scene.Top()}}

	for level := 1; ; level++ {
		switch {
		case scene.FullScreen != nil:
			scene = *scene.FullScreen
			layers = []Layer{{Screen: scene.Top(), Level: level}}
		case scene.Sheet != nil:
			scene = *scene.Sheet
			layers = append(layers, Layer{Screen: scene.Top(), Sheet: true, Level: level})
		default:
			return layers
		}
	}
}
