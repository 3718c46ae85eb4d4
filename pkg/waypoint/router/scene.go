package router

// Frame is one rendered entry of a navigation stack.
type Frame[D, V any] struct {
	Destination D
	View        V
}

// Scene is a rendered snapshot of a router and everything it presents.
//
// Content is the view the router was started with: the root content for the
// root router, the presented destination's view for a child router. Stack
// holds the pushed views on top of it. Sheet and FullScreen are the scenes of
// the child routers currently presented, if any.
type Scene[D, V any] struct {
	Destination D    // Destination this scene was presented for (zero for the root)
	Presented   bool // False for the root scene
	Content     V
	Stack       []Frame[D, V]
	Sheet       *Scene[D, V]
	FullScreen  *Scene[D, V]
}

// Top returns the view at the top of this scene's own stack, ignoring any
// presentations.
func (s Scene[D, V]) Top() V {
	if len(s.Stack) > 0 {
		return s.Stack[len(s.Stack)-1].View
	}
	return s.Content
}

// Visible returns the view the user is looking at. A full-screen cover hides
// everything below it, a sheet covers the stack, and the stack top covers the
// content.
func (s Scene[D, V]) Visible() V {
	return s.Front().Top()
}

// Front returns the innermost presented scene, or s itself when nothing is
// presented.
func (s Scene[D, V]) Front() Scene[D, V] {
	switch {
	case s.FullScreen != nil:
		return s.FullScreen.Front()
	case s.Sheet != nil:
		return s.Sheet.Front()
	default:
		return s
	}
}

// Depth returns how many presentations are stacked on top of this scene.
func (s Scene[D, V]) Depth() int {
	switch {
	case s.FullScreen != nil:
		return 1 + s.FullScreen.Depth()
	case s.Sheet != nil:
		return 1 + s.Sheet.Depth()
	default:
		return 0
	}
}

func (r *Router[D, V]) scene(content V) Scene[D, V] {
	s := Scene[D, V]{
		Destination: r.presentedFor,
		Presented:   !r.IsRoot(),
		Content:     content,
	}

	for _, destination := range r.stack.entries {
		s.Stack = append(s.Stack, Frame[D, V]{
			Destination: destination,
			View:        r.View(destination),
		})
	}

	if destination, ok := r.PresentingSheet(); ok {
		child := r.childFor(Sheet, destination)
		sheet := child.scene(destination.ViewToDisplay(child))
		s.Sheet = &sheet
	}

	if destination, ok := r.PresentingFullScreenCover(); ok {
		child := r.childFor(FullScreenCover, destination)
		fullScreen := child.scene(destination.ViewToDisplay(child))
		s.FullScreen = &fullScreen
	}

	return s
}
