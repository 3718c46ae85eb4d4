package router_test

import (
	"fmt"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/router"
)

// Route kinds - a closed set the application owns
type GameRouteKind int

const (
	RouteGameList GameRouteKind = iota
	RouteGameDetail
	RouteSettings
	RouteCredits
)

// GameRoute is the destination type. Two detail routes for the same game are equal.
type GameRoute struct {
	Kind GameRouteKind
	Game string
}

func (r GameRoute) NavigationType() router.NavigationType {
	switch r.Kind {
	case RouteSettings:
		return router.Sheet
	case RouteCredits:
		return router.FullScreenCover
	default:
		return router.Push
	}
}

// Screen is what the views render to. It keeps the navigator so that
// handlers can route further.
type Screen struct {
	Title string
	Nav   router.Navigator[GameRoute, Screen]
}

func (r GameRoute) ViewToDisplay(nav router.Navigator[GameRoute, Screen]) Screen {
	switch r.Kind {
	case RouteGameDetail:
		return Screen{Title: r.Game, Nav: nav}
	case RouteSettings:
		return Screen{Title: "Settings", Nav: nav}
	case RouteCredits:
		return Screen{Title: "Credits", Nav: nav}
	default:
		return Screen{Title: "Games", Nav: nav}
	}
}

// Example demonstrates pushing, presenting and the dismissal order.
func Example() {
	r := router.NewRoot[GameRoute, Screen]()

	r.RouteTo(GameRoute{Kind: RouteGameDetail, Game: "Portal"})
	r.RouteTo(GameRoute{Kind: RouteSettings})

	sheet, _ := r.PresentingSheet()
	fmt.Println("depth:", r.Depth())
	fmt.Println("sheet:", r.View(sheet).Title)

	// The stack unwinds before the sheet closes
	r.Dismiss()
	fmt.Println("depth:", r.Depth(), "presenting:", r.IsPresenting())

	r.Dismiss()
	fmt.Println("depth:", r.Depth(), "presenting:", r.IsPresenting())

	// Nothing left to undo on the root
	r.Dismiss()
	fmt.Println("depth:", r.Depth(), "presenting:", r.IsPresenting())

	// Output:
	// depth: 1
	// sheet: Settings
	// depth: 0 presenting: true
	// depth: 0 presenting: false
	// depth: 0 presenting: false
}

// Example_presentedFlow demonstrates a sheet that runs its own stack and then
// dismisses itself without knowing who presented it.
func Example_presentedFlow() {
	r := router.NewRoot[GameRoute, Screen]()
	r.RouteTo(GameRoute{Kind: RouteSettings})

	settings := r.View(GameRoute{Kind: RouteSettings})
	settings.Nav.RouteTo(GameRoute{Kind: RouteGameDetail, Game: "Celeste"})

	fmt.Println("root depth:", r.Depth(), "sheet depth:", r.Child(router.Sheet).Depth())

	settings.Nav.Dismiss()
	settings.Nav.Dismiss()

	_, presented := r.PresentingSheet()
	fmt.Println("sheet presented:", presented)

	// Output:
	// root depth: 0 sheet depth: 1
	// sheet presented: false
}

// Example_routingView demonstrates synchronous re-rendering after each change.
func Example_routingView() {
	view := router.NewRoutingView[GameRoute, Screen](
		func(nav router.Navigator[GameRoute, Screen]) Screen {
			return nav.View(GameRoute{Kind: RouteGameList})
		},
		router.RendererFunc[GameRoute, Screen](func(scene router.Scene[GameRoute, Screen]) error {
			fmt.Println("visible:", scene.Visible().Title)
			return nil
		}),
	)

	_ = view.Render()

	nav := view.Router()
	nav.RouteTo(GameRoute{Kind: RouteGameDetail, Game: "Portal"})
	nav.RouteTo(GameRoute{Kind: RouteCredits})
	nav.Dismiss()
	nav.Dismiss()

	// Output:
	// visible: Games
	// visible: Portal
	// visible: Credits
	// visible: Credits
	// visible: Games
}
