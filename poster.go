package twir

import "context"

// Poster delivers a rendered message to a chat channel.
type Poster interface {
	// Post sends a single message. The text uses the bold and anchor
	// markup produced by the Format functions.
	Post(ctx context.Context, text string) error
}
