// Package bot implements the conversation controller for the website builder.
package bot

import (
	"context"
)

// Button is one selectable option on an inline keyboard. Data is the opaque
// selection code the chat adapter echoes back on a button press.
type Button struct {
	Label string
	Data  string
}

// Keyboard is a grid of buttons rendered by the chat adapter.
type Keyboard [][]Button

// Document is a named text blob delivered to the user.
type Document struct {
	Name    string
	Caption string
	Content []byte
}

// Transport is the outbound side of the chat adapter. The controller does not
// depend on how messages or files are actually delivered.
type Transport interface {
	// SendMessage delivers a message, optionally with a keyboard, and
	// returns the message identifier for later edits.
	SendMessage(ctx context.Context, userID int64, text string, keyboard Keyboard) (int, error)

	// EditMessage replaces the text of a previously sent message.
	EditMessage(ctx context.Context, userID int64, messageID int, text string) error

	// SendDocument delivers a named file blob.
	SendDocument(ctx context.Context, userID int64, doc Document) error
}
