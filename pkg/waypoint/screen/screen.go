// Package screen defines the view type rendered by the waypoint front ends and
// the input handling shared between them. It has no SDL dependency.
package screen

import (
	"strings"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"
)

// MessageStyle selects how a Message banner is drawn.
type MessageStyle int

const (
	MessageInfo MessageStyle = iota
	MessageError
)

// Message is a banner shown above a screen's content.
type Message struct {
	Text  string
	Style MessageStyle
}

// FooterHelpItem describes one button hint in the footer.
type FooterHelpItem struct {
	Button constants.VirtualButton
	Text   string
}

// Screen is a rendered destination: what the front end draws and the
// handlers it calls back into.
type Screen struct {
	ID       string // Stable identity used to keep focus across re-renders
	Title    string
	Subtitle string
	Body     string // Free text drawn below the items, newlines respected
	Items    []MenuItem
	Message  *Message
	Footer   []FooterHelpItem

	OnBack  func()                             // B button; nil means back quits
	Buttons map[constants.VirtualButton]func() // Extra screen-level handlers
}

// BodyLines splits Body into lines.
func (s Screen) BodyLines() []string {
	if s.Body == "" {
		return nil
	}
	return strings.Split(s.Body, "\n")
}

// FirstSelectable returns the index of the first selectable item, or -1.
func (s Screen) FirstSelectable() int {
	for i, item := range s.Items {
		if item.Selectable() {
			return i
		}
	}
	return -1
}
