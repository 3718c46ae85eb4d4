package app

import (
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/waypoint/internal/catalog"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/router"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/screen"
)

// Navigator is the router handle screens navigate with.
type Navigator = router.Navigator[Route, screen.Screen]

// RouteKind identifies the screen a Route leads to.
type RouteKind int

const (
	RoutePatternList RouteKind = iota
	RoutePatternDetails
	RouteAbout
	RouteCategoryFilter
	RouteMessage
)

func (k RouteKind) String() string {
	switch k {
	case RoutePatternList:
		return "pattern_list"
	case RoutePatternDetails:
		return "pattern_details"
	case RouteAbout:
		return "about"
	case RouteCategoryFilter:
		return "category_filter"
	case RouteMessage:
		return "message"
	default:
		return "unknown"
	}
}

// Route is a destination of the application. Two routes are equal when they
// lead to the same screen: details routes compare by pattern name only.
type Route struct {
	Kind      RouteKind
	Name      string           // Pattern name for RoutePatternDetails
	Category  catalog.Category // Category shown by RoutePatternList
	MessageID string           // AppMessage id for RouteMessage

	app *App
}

// PatternList routes to the patterns of one category.
func (a *App) PatternList(category catalog.Category) Route {
	return Route{Kind: RoutePatternList, Category: category, app: a}
}

// PatternDetails routes to the pattern named name.
func (a *App) PatternDetails(name string) Route {
	return Route{Kind: RoutePatternDetails, Name: name, app: a}
}

// About routes to the about sheet.
func (a *App) About() Route {
	return Route{Kind: RouteAbout, app: a}
}

// CategoryFilter routes to the category filter sheet.
func (a *App) CategoryFilter() Route {
	return Route{Kind: RouteCategoryFilter, app: a}
}

// Message routes to the full-screen page of a stored AppMessage.
func (a *App) Message(id string) Route {
	return Route{Kind: RouteMessage, MessageID: id, app: a}
}

func (r Route) NavigationType() router.NavigationType {
	switch r.Kind {
	case RouteAbout, RouteCategoryFilter:
		return router.Sheet
	case RouteMessage:
		return router.FullScreenCover
	default:
		return router.Push
	}
}

func (r Route) ViewToDisplay(nav Navigator) screen.Screen {
	switch r.Kind {
	case RoutePatternList:
		return r.app.categoryScreen(r.Category, nav)
	case RoutePatternDetails:
		return r.app.detailsScreen(r.Name, nav)
	case RouteAbout:
		return r.app.aboutScreen(nav)
	case RouteCategoryFilter:
		return r.app.filterScreen(nav)
	case RouteMessage:
		return r.app.messageScreen(r.MessageID, nav)
	default:
		return screen.Screen{ID: r.String(), Title: r.String(), OnBack: nav.Dismiss}
	}
}

func (r Route) String() string {
	switch r.Kind {
	case RoutePatternList:
		return fmt.Sprintf("%s(%s)", r.Kind, r.Category)
	case RoutePatternDetails:
		return fmt.Sprintf("%s(%s)", r.Kind, r.Name)
	case RouteMessage:
		return fmt.Sprintf("%s(%s)", r.Kind, r.MessageID)
	default:
		return r.Kind.String()
	}
}

func (r Route) LogValue() slog.Value {
	return slog.StringValue(r.String())
}
