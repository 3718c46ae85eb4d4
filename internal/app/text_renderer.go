package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/router"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/screen"
)

// TextRenderer prints scenes as indented text. Screens below the front one
// show only their title; the front screen lists its items numbered from 1.
type TextRenderer struct {
	w          io.Writer
	controller *screen.Controller
}

// NewTextRenderer writes scenes to w and shows the front screen through
// controller.
func NewTextRenderer(w io.Writer, controller *screen.Controller) *TextRenderer {
	if controller == nil {
		controller = screen.NewController()
	}
	return &TextRenderer{w: w, controller: controller}
}

// Controller returns the controller holding the screen in front.
func (r *TextRenderer) Controller() *screen.Controller {
	return r.controller
}

func (r *TextRenderer) Render(scene router.Scene[Route, screen.Screen]) error {
	layers := screen.Layers(scene)
	front := len(layers) - 1
	r.controller.Show(layers[front].Screen)

	var b strings.Builder
	for i, layer := range layers {
		writeLayer(&b, layer, i == front, r.controller.Focused())
	}
	b.WriteString("\n")

	_, err := io.WriteString(r.w, b.String())
	return err
}

func writeLayer(b *strings.Builder, layer screen.Layer, front bool, focused int) {
	indent := strings.Repeat("  ", layer.Level)
	s := layer.Screen

	kind := "#"
	if layer.Sheet {
		kind = "[sheet]"
	}
	fmt.Fprintf(b, "%s%s %s\n", indent, kind, s.Title)
	if !front {
		return
	}

	if s.Subtitle != "" {
		fmt.Fprintf(b, "%s  %s\n", indent, s.Subtitle)
	}
	if s.Message != nil {
		style := "info"
		if s.Message.Style == screen.MessageError {
			style = "error"
		}
		fmt.Fprintf(b, "%s  [%s] %s\n", indent, style, s.Message.Text)
	}

	for i, item := range s.Items {
		cursor := " "
		if i == focused {
			cursor = ">"
		}
		text := item.Text
		if !item.Header {
			text = "  " + text
		}
		if item.Detail != "" {
			text += " (" + item.Detail + ")"
		}
		fmt.Fprintf(b, "%s %s%2d. %s\n", indent, cursor, i+1, text)
	}

	for _, line := range s.BodyLines() {
		fmt.Fprintf(b, "%s  %s\n", indent, line)
	}

	if len(s.Footer) > 0 {
		hints := make([]string, 0, len(s.Footer))
		for _, f := range s.Footer {
			hints = append(hints, fmt.Sprintf("[%s] %s", f.Button.GetName(), f.Text))
		}
		fmt.Fprintf(b, "%s  %s\n", indent, strings.Join(hints, "  "))
	}
}
