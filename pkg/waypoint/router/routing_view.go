package router

import "log/slog"

// maxRenderPasses bounds how many follow-up renders a single mutation can
// cause when views route while being rendered.
const maxRenderPasses = 8

// Renderer draws a scene. It is called synchronously after every change.
type Renderer[D, V any] interface {
	Render(scene Scene[D, V]) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc[D, V any] func(scene Scene[D, V]) error

func (f RendererFunc[D, V]) Render(scene Scene[D, V]) error { return f(scene) }

// RoutingView is the outermost container of a routed UI. It owns the root
// router, watches it and every router presented from it, and hands a fresh
// Scene to its Renderer after each change.
//
// The content function produces the root screen, the one view that is never
// pushed or presented.
type RoutingView[D Destination[D, V], V any] struct {
	router   *Router[D, V]
	content  func(nav Navigator[D, V]) V
	renderer Renderer[D, V]
	logger   *slog.Logger

	rendering bool
	dirty     bool
	renders   int
}

// NewRoutingView creates a RoutingView with its root router.
// Options are applied to the root router and inherited by presented routers.
func NewRoutingView[D Destination[D, V], V any](content func(nav Navigator[D, V]) V, renderer Renderer[D, V], opts ...Option) *RoutingView[D, V] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if renderer == nil {
		renderer = RendererFunc[D, V](func(Scene[D, V]) error { return nil })
	}

	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}

	v := &RoutingView[D, V]{
		content:  content,
		renderer: renderer,
		logger:   logger,
	}

	all := make([]Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, WithObserver(ObserverFunc(v.onChange)))
	v.router = NewRoot[D, V](all...)

	return v
}

// Router returns the root router.
func (v *RoutingView[D, V]) Router() *Router[D, V] {
	return v.router
}

// Scene builds the current scene without rendering it.
func (v *RoutingView[D, V]) Scene() Scene[D, V] {
	return v.router.scene(v.content(v.router))
}

// Renders returns how many scenes have been handed to the renderer.
func (v *RoutingView[D, V]) Renders() int {
	return v.renders
}

// Render builds the current scene and hands it to the renderer.
// Changes made while a render is in progress produce one more render once the
// current one returns. The last renderer error is returned.
func (v *RoutingView[D, V]) Render() error {
	if v.rendering {
		v.dirty = true
		return nil
	}

	v.rendering = true
	defer func() { v.rendering = false }()

	var err error
	for pass := 0; pass < maxRenderPasses; pass++ {
		v.dirty = false

		err = v.renderer.Render(v.Scene())
		v.renders++
		if err != nil {
			v.logger.Error("Failed to render scene", "error", err, "renders", v.renders)
		}

		if !v.dirty {
			return err
		}
	}

	v.logger.Warn("Scene kept changing while rendering; giving up", "passes", maxRenderPasses)
	return err
}

func (v *RoutingView[D, V]) onChange(Change) {
	_ = v.Render()
}
