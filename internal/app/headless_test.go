package app

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/waypoint/internal/catalog"
	"github.com/BrandonKowalski/waypoint/internal/i18n"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/router"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/screen"
)

func newHeadlessApp(t *testing.T) (*App, *screen.Controller, *bytes.Buffer) {
	t.Helper()

	tr, err := i18n.New("en", nil)
	require.NoError(t, err)

	var out bytes.Buffer
	renderer := NewTextRenderer(&out, nil)
	a := New(memoryRepository{patterns: testPatterns}, tr, renderer, nil)
	require.NoError(t, a.Start(context.Background()))
	return a, renderer.Controller(), &out
}

func TestRunHeadless_Script(t *testing.T) {
	a, controller, out := newHeadlessApp(t)

	script := strings.Join([]string{
		"help",
		"open 2",
		"back",
		"about",
		"back",
		"toggle 3",
		"",
		"filter",
		"open 3",
		"bogus",
		"open 99",
		"open x",
		"back",
		"open 1",
	}, "\n")

	err := RunHeadless(context.Background(), a, controller, strings.NewReader(script), out, nil)
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "open <n>")
	assert.Contains(t, output, "# Builder")
	assert.Contains(t, output, "[sheet] About")
	assert.Contains(t, output, "[sheet] Show category")
	assert.Contains(t, output, "1 patterns in Structural")
	assert.Contains(t, output, `unknown command "bogus"`)
	assert.Contains(t, output, "no item 99")
	assert.Contains(t, output, `invalid number "x"`)

	behavioral, ok := a.List().Section(catalog.Behavioral)
	require.True(t, ok)
	assert.False(t, behavioral.Expanded)

	structural, ok := a.List().Section(catalog.Structural)
	require.True(t, ok)
	assert.True(t, structural.Expanded, "back on the list quit before the last command")
	assert.Empty(t, a.Router().Path())
}

func TestRunHeadless_QuitCommand(t *testing.T) {
	a, controller, out := newHeadlessApp(t)

	err := RunHeadless(context.Background(), a, controller, strings.NewReader("open 2\nquit\nback\n"), out, nil)
	require.NoError(t, err)
	assert.Equal(t, []Route{a.PatternDetails("Builder")}, a.Router().Path())
}

func TestRunHeadless_StopsOnQuitFlag(t *testing.T) {
	a, controller, out := newHeadlessApp(t)

	err := RunHeadless(context.Background(), a, controller, strings.NewReader("open 2\n"), out, atomic.NewBool(true))
	require.NoError(t, err)
	assert.Empty(t, a.Router().Path())
}

func TestRunHeadless_ContextCancelled(t *testing.T) {
	a, controller, out := newHeadlessApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RunHeadless(ctx, a, controller, strings.NewReader("open 2\n"), out, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunHeadless_IdleInput(t *testing.T) {
	tests := []struct {
		name    string
		stop    func(cancel context.CancelFunc, quit *atomic.Bool)
		wantErr error
	}{
		{name: "quit flag", stop: func(_ context.CancelFunc, quit *atomic.Bool) { quit.Store(true) }},
		{name: "context cancelled", stop: func(cancel context.CancelFunc, _ *atomic.Bool) { cancel() }, wantErr: context.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, controller, out := newHeadlessApp(t)

			pr, pw := io.Pipe()
			defer pw.Close()

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			quit := atomic.NewBool(false)

			done := make(chan error, 1)
			go func() {
				done <- RunHeadless(ctx, a, controller, pr, out, quit)
			}()

			time.Sleep(50 * time.Millisecond)
			tt.stop(cancel, quit)

			select {
			case err := <-done:
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.NoError(t, err)
				}
			case <-time.After(time.Second):
				t.Fatal("RunHeadless kept waiting for input")
			}
		})
	}
}

func TestTextRenderer(t *testing.T) {
	noop := func() {}
	root := screen.Screen{
		ID:       "list",
		Title:    "List",
		Subtitle: "sub",
		Message:  &screen.Message{Text: "hey", Style: screen.MessageInfo},
		Items: []screen.MenuItem{
			{Text: "Group", Header: true, Action: noop},
			{Text: "Item", Detail: "d", Action: noop},
		},
		Body:   "line1\nline2",
		Footer: []screen.FooterHelpItem{{Button: constants.VirtualButtonA, Text: "Open"}},
	}

	var out bytes.Buffer
	r := NewTextRenderer(&out, nil)

	require.NoError(t, r.Render(router.Scene[Route, screen.Screen]{Content: root}))
	assert.Equal(t, "# List\n  sub\n  [info] hey\n > 1. Group\n   2.   Item (d)\n  line1\n  line2\n  [A] Open\n\n", out.String())

	out.Reset()
	sheet := router.Scene[Route, screen.Screen]{
		Presented: true,
		Content:   screen.Screen{ID: "sheet", Title: "Sheet", Items: []screen.MenuItem{{Text: "x", Action: noop}}},
	}
	require.NoError(t, r.Render(router.Scene[Route, screen.Screen]{Content: root, Sheet: &sheet}))
	assert.Equal(t, "# List\n  [sheet] Sheet\n   > 1.   x\n\n", out.String())
	assert.Equal(t, "sheet", r.Controller().Current().ID)
}
