package screen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"
)

func listScreen(id string, selected *[]string) Screen {
	pick := func(name string) func() {
		return func() { *selected = append(*selected, name) }
	}
	return Screen{
		ID:    id,
		Title: "Patterns",
		Items: []MenuItem{
			{Text: "Creational", Header: true},
			{Text: "Builder", Action: pick("Builder")},
			{Text: "Singleton", Action: pick("Singleton")},
			{Text: "Disabled", Disabled: true, Action: pick("Disabled")},
			{Text: "Visitor", Action: pick("Visitor")},
		},
	}
}

func TestController_FocusSkipsHeadersAndDisabledItems(t *testing.T) {
	var selected []string
	c := NewController()
	c.Show(listScreen("list", &selected))

	require.Equal(t, 1, c.Focused())

	assert.Equal(t, ActionMoved, c.Handle(constants.VirtualButtonDown))
	assert.Equal(t, 2, c.Focused())

	assert.Equal(t, ActionMoved, c.Handle(constants.VirtualButtonDown))
	assert.Equal(t, 4, c.Focused())

	// Wraps around past the header
	assert.Equal(t, ActionMoved, c.Handle(constants.VirtualButtonDown))
	assert.Equal(t, 1, c.Focused())

	assert.Equal(t, ActionMoved, c.Handle(constants.VirtualButtonUp))
	assert.Equal(t, 4, c.Focused())

	assert.Equal(t, ActionSelected, c.Handle(constants.VirtualButtonA))
	assert.Equal(t, []string{"Visitor"}, selected)
}

func TestController_BackWithoutHandlerQuits(t *testing.T) {
	c := NewController()
	c.Show(Screen{ID: "root"})

	assert.Equal(t, ActionQuit, c.Handle(constants.VirtualButtonB))

	backs := 0
	c.Show(Screen{ID: "detail", OnBack: func() { backs++ }})
	assert.Equal(t, ActionBack, c.Handle(constants.VirtualButtonB))
	assert.Equal(t, 1, backs)
}

func TestController_ScreenButtons(t *testing.T) {
	opened := false
	c := NewController()
	c.Show(Screen{
		ID: "list",
		Buttons: map[constants.VirtualButton]func(){
			constants.VirtualButtonX: func() { opened = true },
		},
	})

	assert.Equal(t, ActionTriggered, c.Handle(constants.VirtualButtonX))
	assert.True(t, opened)
	assert.Equal(t, ActionNone, c.Handle(constants.VirtualButtonY))
	assert.Equal(t, ActionNone, c.Handle(constants.VirtualButtonA), "nothing to select")
}

func TestController_RestoresFocusPerScreen(t *testing.T) {
	var selected []string
	c := NewController()

	c.Show(listScreen("list", &selected))
	c.Handle(constants.VirtualButtonDown)
	require.Equal(t, 2, c.Focused())

	c.Show(Screen{ID: "detail", Title: "Singleton"})
	assert.Equal(t, -1, c.Focused())

	c.Show(listScreen("list", &selected))
	assert.Equal(t, 2, c.Focused())

	c.Show(Screen{ID: "other"})
	c.Forget("list")
	c.Show(listScreen("list", &selected))
	assert.Equal(t, 1, c.Focused())
}

func TestController_ClampsFocusWhenItemsShrink(t *testing.T) {
	var selected []string
	c := NewController()
	c.Show(listScreen("list", &selected))
	c.Handle(constants.VirtualButtonUp)
	require.Equal(t, 4, c.Focused())

	short := listScreen("list", &selected)
	short.Items = short.Items[:3]
	c.Show(short)

	assert.Equal(t, 1, c.Focused())
}

func TestDirectionalInput_RepeatsAfterDelayThenInterval(t *testing.T) {
	now := time.Unix(0, 0)
	d := NewDirectionalInputWithTiming(300*time.Millisecond, 50*time.Millisecond)
	d.now = func() time.Time { return now }

	assert.False(t, d.SetHeld(constants.VirtualButtonA, true))
	require.True(t, d.SetHeld(constants.VirtualButtonDown, true))

	now = now.Add(299 * time.Millisecond)
	assert.Equal(t, constants.VirtualButtonUnassigned, d.Update())

	now = now.Add(time.Millisecond)
	assert.Equal(t, constants.VirtualButtonDown, d.Update())

	now = now.Add(49 * time.Millisecond)
	assert.Equal(t, constants.VirtualButtonUnassigned, d.Update())

	now = now.Add(time.Millisecond)
	assert.Equal(t, constants.VirtualButtonDown, d.Update())

	d.SetHeld(constants.VirtualButtonUp, false)
	assert.True(t, d.IsHeld(), "releasing another direction keeps the held one")

	d.SetHeld(constants.VirtualButtonDown, false)
	assert.False(t, d.IsHeld())
	assert.Equal(t, constants.VirtualButtonUnassigned, d.Update())
}
