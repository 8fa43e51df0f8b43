package mock

import (
	"context"

	"github.com/fwojciec/subextract"
)

var _ subextract.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of subextract.Clipboard.
type Clipboard struct {
	WriteTextFn func(ctx context.Context, text string) error
}

func (c *Clipboard) WriteText(ctx context.Context, text string) error {
	return c.WriteTextFn(ctx, text)
}
