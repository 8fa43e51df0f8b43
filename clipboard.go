package subextract

import "context"

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	// WriteText replaces the clipboard contents with text.
	// Returns EUNAVAILABLE when no clipboard is accessible.
	WriteText(ctx context.Context, text string) error
}
