package router

// NavigationType is how a destination is presented when routed to.
type NavigationType int

const (
	Push            NavigationType = iota // Appended to the navigation stack
	Sheet                                 // Shown in the router's sheet slot
	FullScreenCover                       // Shown in the router's full-screen slot
)

func (t NavigationType) String() string {
	switch t {
	case Push:
		return "push"
	case Sheet:
		return "sheet"
	case FullScreenCover:
		return "fullScreenCover"
	default:
		return "unknown"
	}
}

// Navigator is the routing surface handed to a destination while it renders.
// Destinations keep it to issue further navigation from their own views.
type Navigator[D, V any] interface {
	RouteTo(destination D)
	Dismiss()
	PopToRoot()
	View(destination D) V
}

// Destination is implemented by the application's closed set of routes.
//
// Values must be comparable: two destinations for the same entity should be
// equal. NavigationType is fixed per value. ViewToDisplay builds the view for
// the destination and must not mutate navigation state while doing so; it may
// keep nav to route from the view's handlers later.
//
// Example:
//
//	type Route struct {
//	    Kind RouteKind
//	    Name string
//	}
//
//	func (r Route) NavigationType() router.NavigationType { return router.Push }
//
//	func (r Route) ViewToDisplay(nav router.Navigator[Route, Screen]) Screen {
//	    ...
//	}
type Destination[D, V any] interface {
	comparable
	NavigationType() NavigationType
	ViewToDisplay(nav Navigator[D, V]) V
}
