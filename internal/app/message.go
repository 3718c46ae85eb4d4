package app

import (
	"github.com/google/uuid"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/screen"
)

// MessageStyle selects how an AppMessage is presented.
type MessageStyle int

const (
	MessageError MessageStyle = iota
	MessageInfo
)

// AppMessage is a notice shown to the user. Every message gets a fresh id, so
// two messages with the same text are still told apart.
type AppMessage struct {
	ID    string
	Text  string
	Style MessageStyle
}

// NewErrorMessage creates an error-style message.
func NewErrorMessage(text string) AppMessage {
	return AppMessage{ID: uuid.NewString(), Text: text, Style: MessageError}
}

// NewInfoMessage creates an info-style message.
func NewInfoMessage(text string) AppMessage {
	return AppMessage{ID: uuid.NewString(), Text: text, Style: MessageInfo}
}

// Banner converts the message to the banner drawn above a screen.
func (m AppMessage) Banner() *screen.Message {
	style := screen.MessageInfo
	if m.Style == MessageError {
		style = screen.MessageError
	}
	return &screen.Message{Text: m.Text, Style: style}
}
