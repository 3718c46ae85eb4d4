package router

import "log/slog"

type slot[D any] struct {
	value   D
	present bool
}

// Router owns one navigation stack and two optional presentation slots.
//
// A Router is not safe for concurrent use. All reads and mutations belong on
// the goroutine that drives the UI.
type Router[D Destination[D, V], V any] struct {
	stack      *Stack[D]
	sheet      slot[D]
	fullScreen slot[D]

	// Used by presented routers to dismiss themselves
	isPresented Binding[D]

	// Destination this router was presented for; zero for the root
	presentedFor D
	level        int

	sheetChild      *Router[D, V]
	fullScreenChild *Router[D, V]

	observer Observer
}

// Option configures a Router.
type Option func(*options)

type options struct {
	observers []Observer
	logger    *slog.Logger
}

// WithObserver adds an observer notified after every mutation.
// Routers presented from this one share the same observers.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		o.observers = append(o.observers, obs)
	}
}

// WithLogger logs every mutation at debug level to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.observers = append(o.observers, NewLoggingObserver(logger))
		o.logger = logger
	}
}

// New creates a Router whose self-dismissal writes through isPresented.
func New[D Destination[D, V], V any](isPresented Binding[D], opts ...Option) *Router[D, V] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Router[D, V]{
		stack:       NewStack[D](),
		isPresented: isPresented,
		observer:    NewCompositeObserver(o.observers...),
	}
}

// NewRoot creates a root Router. Dismissing an empty root router does nothing.
func NewRoot[D Destination[D, V], V any](opts ...Option) *Router[D, V] {
	return New[D, V](Constant[D](), opts...)
}

// RouteTo navigates to destination according to its NavigationType.
// Presenting into an occupied slot replaces the current destination.
func (r *Router[D, V]) RouteTo(destination D) {
	switch destination.NavigationType() {
	case Push:
		r.push(destination)
	case Sheet:
		r.setSheet(destination, true)
	case FullScreenCover:
		r.setFullScreen(destination, true)
	}
}

// Dismiss undoes the most recent navigation: it pops the stack, else clears
// the sheet, else clears the full-screen cover, else removes this router from
// the slot it was presented from. On an empty root router it does nothing.
func (r *Router[D, V]) Dismiss() {
	switch {
	case !r.stack.IsEmpty():
		top, _ := r.stack.Pop()
		r.notify(OpPop, top)
	case r.sheet.present:
		r.setSheet(r.sheet.value, false)
	case r.fullScreen.present:
		r.setFullScreen(r.fullScreen.value, false)
	default:
		r.isPresented.Clear()
	}
}

// PopToRoot empties the navigation stack. Presentation slots are left alone.
func (r *Router[D, V]) PopToRoot() {
	if r.stack.IsEmpty() {
		return
	}
	r.stack.Clear()
	r.notify(OpPopToRoot, nil)
}

// View returns the view for destination, handing it a router scoped to how
// it is presented: this router for pushed destinations, a child router bound
// to the matching slot for sheets and full-screen covers.
func (r *Router[D, V]) View(destination D) V {
	return destination.ViewToDisplay(r.router(destination))
}

// Path returns a copy of the navigation stack, root first.
func (r *Router[D, V]) Path() []D {
	return r.stack.Entries()
}

// Depth returns the number of pushed destinations.
func (r *Router[D, V]) Depth() int {
	return r.stack.Len()
}

// Top returns the most recently pushed destination.
func (r *Router[D, V]) Top() (D, bool) {
	return r.stack.Peek()
}

// PresentingSheet returns the destination shown as a sheet, if any.
func (r *Router[D, V]) PresentingSheet() (D, bool) {
	return r.sheet.value, r.sheet.present
}

// PresentingFullScreenCover returns the destination shown full screen, if any.
func (r *Router[D, V]) PresentingFullScreenCover() (D, bool) {
	return r.fullScreen.value, r.fullScreen.present
}

// IsPresenting reports whether either presentation slot is occupied.
func (r *Router[D, V]) IsPresenting() bool {
	return r.sheet.present || r.fullScreen.present
}

// IsRoot reports whether the router has no parent slot to clear.
func (r *Router[D, V]) IsRoot() bool {
	return r.isPresented.IsConstant()
}

// Level returns how many presentations deep this router is (0 for root).
func (r *Router[D, V]) Level() int {
	return r.level
}

// Child returns the router created for the current presentation of the given
// type, or nil if View has not been called for it since it was presented.
func (r *Router[D, V]) Child(navigationType NavigationType) *Router[D, V] {
	switch navigationType {
	case Sheet:
		return r.sheetChild
	case FullScreenCover:
		return r.fullScreenChild
	default:
		return nil
	}
}

func (r *Router[D, V]) router(destination D) *Router[D, V] {
	switch t := destination.NavigationType(); t {
	case Sheet, FullScreenCover:
		return r.childFor(t, destination)
	default:
		return r
	}
}

func (r *Router[D, V]) childFor(navigationType NavigationType, destination D) *Router[D, V] {
	if navigationType == FullScreenCover {
		if r.fullScreenChild == nil || r.fullScreenChild.presentedFor != destination {
			r.fullScreenChild = r.child(destination, NewBinding(r.PresentingFullScreenCover, r.setFullScreen))
		}
		return r.fullScreenChild
	}
	if r.sheetChild == nil || r.sheetChild.presentedFor != destination {
		r.sheetChild = r.child(destination, NewBinding(r.PresentingSheet, r.setSheet))
	}
	return r.sheetChild
}

func (r *Router[D, V]) child(destination D, isPresented Binding[D]) *Router[D, V] {
	return &Router[D, V]{
		stack:        NewStack[D](),
		isPresented:  isPresented,
		presentedFor: destination,
		level:        r.level + 1,
		observer:     r.observer,
	}
}

func (r *Router[D, V]) push(destination D) {
	r.stack.Push(destination)
	r.notify(OpPush, destination)
}

func (r *Router[D, V]) setSheet(destination D, present bool) {
	if !present {
		if !r.sheet.present {
			return
		}
		dismissed := r.sheet.value
		r.sheet = slot[D]{}
		r.sheetChild = nil
		r.notify(OpDismissSheet, dismissed)
		return
	}
	if r.sheetChild != nil && r.sheetChild.presentedFor != destination {
		r.sheetChild = nil
	}
	r.sheet = slot[D]{value: destination, present: true}
	r.notify(OpPresentSheet, destination)
}

func (r *Router[D, V]) setFullScreen(destination D, present bool) {
	if !present {
		if !r.fullScreen.present {
			return
		}
		dismissed := r.fullScreen.value
		r.fullScreen = slot[D]{}
		r.fullScreenChild = nil
		r.notify(OpDismissFullScreen, dismissed)
		return
	}
	if r.fullScreenChild != nil && r.fullScreenChild.presentedFor != destination {
		r.fullScreenChild = nil
	}
	r.fullScreen = slot[D]{value: destination, present: true}
	r.notify(OpPresentFullScreen, destination)
}

func (r *Router[D, V]) notify(op Op, destination any) {
	r.observer.OnChange(Change{
		Op:          op,
		Destination: destination,
		Depth:       r.stack.Len(),
		Level:       r.level,
	})
}
