package waypoint

import (
	"errors"
	"fmt"
)

// ErrQuit indicates the user closed the window or backed out of the root screen.
// This is a normal way to end the program, not an infrastructure failure.
var ErrQuit = errors.New("closed by user")

// InfrastructureError represents a front-end failure that the application
// cannot recover from at the domain level (SDL failed to start, the font is
// missing, a frame could not be drawn).
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "init", "render")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("waypoint: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("waypoint: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsQuit checks if an error indicates the user closed the front end.
func IsQuit(err error) bool {
	return errors.Is(err, ErrQuit)
}
