// Package app is the design pattern browser: its routes, view models and the
// screens they produce.
package app

import (
	"context"
	"log/slog"

	"github.com/BrandonKowalski/waypoint/internal/catalog"
	"github.com/BrandonKowalski/waypoint/internal/i18n"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/router"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/screen"
)

// App wires the catalog, the localizer and the routing view together.
type App struct {
	tr     *i18n.Localizer
	logger *slog.Logger

	view     *router.RoutingView[Route, screen.Screen]
	list     *PatternsListViewModel
	messages map[string]AppMessage
}

// New creates the application. Nothing is rendered until Start.
func New(repo catalog.Repository, tr *i18n.Localizer, renderer router.Renderer[Route, screen.Screen], logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}

	a := &App{
		tr:       tr,
		logger:   logger,
		messages: make(map[string]AppMessage),
	}

	a.view = router.NewRoutingView[Route, screen.Screen](a.listScreen, renderer, router.WithLogger(logger))
	a.list = &PatternsListViewModel{
		repo:     repo,
		tr:       tr,
		logger:   logger,
		nav:      a.view.Router(),
		details:  a.PatternDetails,
		onChange: a.Refresh,
	}

	return a
}

// Start loads the catalog and renders the first scene. A catalog failure is
// shown as a message on the list and returned; the app stays usable.
func (a *App) Start(ctx context.Context) error {
	loadErr := a.list.load(ctx)
	if msg := a.list.Message(); msg != nil {
		a.Store(*msg)
	}
	if err := a.view.Render(); err != nil {
		return err
	}
	return loadErr
}

// Refresh re-renders after a change that did not go through the router.
func (a *App) Refresh() {
	_ = a.view.Render()
}

// Router returns the root router.
func (a *App) Router() *router.Router[Route, screen.Screen] {
	return a.view.Router()
}

// View returns the routing view owning the root router.
func (a *App) View() *router.RoutingView[Route, screen.Screen] {
	return a.view
}

// List returns the pattern list view model.
func (a *App) List() *PatternsListViewModel {
	return a.list
}

// Store keeps msg so a RouteMessage can show it later.
func (a *App) Store(msg AppMessage) {
	a.messages[msg.ID] = msg
}

// Lookup returns a stored message.
func (a *App) Lookup(id string) (AppMessage, bool) {
	msg, ok := a.messages[id]
	return msg, ok
}
