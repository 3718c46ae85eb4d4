package waypoint

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfrastructureError(t *testing.T) {
	cause := errors.New("no display")
	err := fmt.Errorf("starting: %w", NewInfrastructureError("init", cause))

	assert.True(t, IsInfrastructureError(err))
	assert.ErrorIs(t, err, cause)
	assert.EqualError(t, err, "starting: waypoint: init: no display")
	assert.Equal(t, "waypoint: render", NewInfrastructureError("render", nil).Error())
}

func TestSentinels(t *testing.T) {
	assert.True(t, IsQuit(fmt.Errorf("loop: %w", ErrQuit)))
	assert.False(t, IsQuit(errors.New("closed by user")))
	assert.False(t, IsInfrastructureError(ErrQuit))
}
