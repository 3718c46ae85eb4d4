// Package router coordinates navigation for tree-structured UI flows.
//
// A Router owns an ordered navigation stack plus two optional presentation
// slots, one for a sheet and one for a full-screen cover. Destinations are an
// application-defined closed set of comparable values; each one declares how
// it is presented and how it renders given a router to navigate further from.
//
// # Destinations
//
//	type RouteKind int
//
//	const (
//	    RouteList RouteKind = iota
//	    RouteDetail
//	    RouteAbout
//	)
//
//	type Route struct {
//	    Kind RouteKind
//	    Item string // equal routes point at the same item
//	}
//
//	func (r Route) NavigationType() router.NavigationType {
//	    if r.Kind == RouteAbout {
//	        return router.Sheet
//	    }
//	    return router.Push
//	}
//
//	func (r Route) ViewToDisplay(nav router.Navigator[Route, Screen]) Screen {
//	    switch r.Kind {
//	    case RouteDetail:
//	        return detailScreen(r.Item, nav)
//	    case RouteAbout:
//	        return aboutScreen(nav)
//	    }
//	    return listScreen(nav)
//	}
//
// # Routing
//
// RouteTo dispatches purely on the destination's NavigationType: Push appends
// to the stack, Sheet and FullScreenCover replace the matching slot. Dismiss
// undoes the most recent navigation in a fixed order: pop the stack, else
// clear the sheet, else clear the full-screen cover, else ask the presenter to
// drop this router. PopToRoot empties the stack and leaves the slots alone.
//
// # Presented flows
//
// View hands a presented destination a fresh child router whose Binding
// points at the parent's slot. The child can push its own screens and, once
// its stack and slots are empty, Dismiss clears the parent's slot. The child
// never sees the parent, only the get/set pair.
//
// # Rendering
//
// RoutingView owns the root router and re-renders synchronously after every
// change anywhere in the router tree:
//
//	view := router.NewRoutingView(
//	    func(nav router.Navigator[Route, Screen]) Screen {
//	        return nav.View(Route{Kind: RouteList})
//	    },
//	    renderer,
//	)
//	_ = view.Render()
//
// Routers are not safe for concurrent use; drive them from the UI goroutine.
package router
