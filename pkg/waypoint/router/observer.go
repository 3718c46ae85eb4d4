package router

import (
	"context"
	"log/slog"
)

// Op identifies the kind of state change a router went through.
type Op int

const (
	OpPush              Op = iota // A destination was appended to the stack
	OpPop                         // The top of the stack was removed
	OpPopToRoot                   // The stack was emptied
	OpPresentSheet                // The sheet slot was set
	OpDismissSheet                // The sheet slot was cleared
	OpPresentFullScreen           // The full-screen slot was set
	OpDismissFullScreen           // The full-screen slot was cleared
)

func (o Op) String() string {
	switch o {
	case OpPush:
		return "push"
	case OpPop:
		return "pop"
	case OpPopToRoot:
		return "pop_to_root"
	case OpPresentSheet:
		return "present_sheet"
	case OpDismissSheet:
		return "dismiss_sheet"
	case OpPresentFullScreen:
		return "present_full_screen"
	case OpDismissFullScreen:
		return "dismiss_full_screen"
	default:
		return "unknown"
	}
}

// Change describes one completed mutation of a router.
type Change struct {
	Op          Op  // What happened
	Destination any // Destination pushed, popped, presented or dismissed (nil for OpPopToRoot)
	Depth       int // Stack depth of the mutated router after the change
	Level       int // Presentation level of the mutated router (0 = root)
}

// Observer receives a synchronous callback after every router mutation.
//
// Callbacks run on the goroutine that mutated the router, before the
// mutating call returns. Implementations must not block.
type Observer interface {
	OnChange(change Change)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(change Change)

func (f ObserverFunc) OnChange(change Change) { f(change) }

// NoopObserver is an Observer that does nothing.
// It is used as the default when no observer is configured.
type NoopObserver struct{}

func (NoopObserver) OnChange(Change) {}

// CompositeObserver fans out changes to multiple observers in order.
type CompositeObserver struct {
	observers []Observer
}

// NewCompositeObserver creates an Observer that forwards changes to each
// non-nil observer in obs.
func NewCompositeObserver(obs ...Observer) Observer {
	filtered := make([]Observer, 0, len(obs))
	for _, o := range obs {
		if o == nil {
			continue
		}
		if _, noop := o.(NoopObserver); noop {
			continue
		}
		filtered = append(filtered, o)
	}
	if len(filtered) == 0 {
		return NoopObserver{}
	}
	if len(filtered) == 1 {
		return filtered[0]
	}
	return &CompositeObserver{observers: filtered}
}

func (c *CompositeObserver) OnChange(change Change) {
	for _, o := range c.observers {
		o.OnChange(change)
	}
}

// LoggingObserver writes every change as a debug record.
type LoggingObserver struct {
	Logger *slog.Logger
}

// NewLoggingObserver creates an Observer that logs changes with logger.
// If logger is nil, slog.Default() is used.
func NewLoggingObserver(logger *slog.Logger) Observer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{Logger: logger}
}

func (o *LoggingObserver) OnChange(change Change) {
	o.Logger.LogAttrs(context.Background(), slog.LevelDebug, "route_change",
		slog.String("op", change.Op.String()),
		slog.Any("destination", change.Destination),
		slog.Int("depth", change.Depth),
		slog.Int("level", change.Level),
	)
}
