package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/screen"
)

const headlessHelp = `commands:
  open <n>    activate item n of the front screen
  toggle <n>  expand or collapse section n of the pattern list
  about       show the about sheet
  filter      show the category filter
  back        go back; quits on the pattern list
  root        return to the pattern list
  quit        exit`

// quitPollInterval is how often RunHeadless checks the quit flag while
// waiting for input.
const quitPollInterval = 50 * time.Millisecond

// RunHeadless reads commands from in, one per line, until in is exhausted,
// the user quits, ctx is done or quit is set. Scenes are printed by the
// renderer the app was created with; command feedback goes to out.
//
// Lines are read on a separate goroutine so that a blocked read never delays
// cancellation. That goroutine ends once it has a line to hand over after
// RunHeadless returned, or when in is closed.
func RunHeadless(ctx context.Context, a *App, controller *screen.Controller, in io.Reader, out io.Writer, quit *atomic.Bool) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines, readErr := readLines(ctx, in)

	ticker := time.NewTicker(quitPollInterval)
	defer ticker.Stop()

	for {
		if quit != nil && quit.Load() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-ticker.C:
			continue

		case line, ok := <-lines:
			if !ok {
				return <-readErr
			}
			if quit != nil && quit.Load() {
				return nil
			}

			fields := strings.Fields(line)
			if len(fields) == 0 {
				continue
			}

			a.logger.Debug("Headless command", "command", fields[0], "args", fields[1:])

			if done := runCommand(a, controller, fields, out); done {
				return nil
			}
		}
	}
}

// readLines scans in on its own goroutine. lines is closed when in is
// exhausted, after which readErr yields the scanner error (nil on EOF).
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- ctx.Err()
				return
			}
		}
		readErr <- scanner.Err()
	}()

	return lines, readErr
}

// runCommand applies one command and reports whether the loop should stop.
func runCommand(a *App, controller *screen.Controller, fields []string, out io.Writer) bool {
	press := func(button constants.VirtualButton) bool {
		return controller.Handle(button) == screen.ActionQuit
	}

	switch fields[0] {
	case "open":
		n, ok := index(fields, out)
		if !ok {
			return false
		}
		items := controller.Current().Items
		if n >= len(items) || !items[n].Selectable() {
			fmt.Fprintf(out, "no item %d\n", n+1)
			return false
		}
		items[n].Action()
	case "toggle":
		n, ok := index(fields, out)
		if !ok {
			return false
		}
		sections := a.list.Sections()
		if n >= len(sections) {
			fmt.Fprintf(out, "no section %d\n", n+1)
			return false
		}
		a.list.ToggleSection(sections[n].ID)
	case "about":
		return press(constants.VirtualButtonX)
	case "filter":
		return press(constants.VirtualButtonY)
	case "root":
		return press(constants.VirtualButtonSelect)
	case "back":
		return press(constants.VirtualButtonB)
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprintln(out, headlessHelp)
	default:
		fmt.Fprintf(out, "unknown command %q; try help\n", fields[0])
	}
	return false
}

// index parses the 1-based argument of a command as a 0-based index.
func index(fields []string, out io.Writer) (int, bool) {
	if len(fields) != 2 {
		fmt.Fprintf(out, "usage: %s <n>\n", fields[0])
		return 0, false
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n < 1 {
		fmt.Fprintf(out, "invalid number %q\n", fields[1])
		return 0, false
	}
	return n - 1, true
}
