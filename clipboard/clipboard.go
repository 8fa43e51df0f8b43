// Package clipboard provides a subextract.Clipboard backed by the host's
// system clipboard (pbcopy, xclip, xsel, wl-copy or the Windows API).
package clipboard

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/fwojciec/subextract"
)

// Ensure Clipboard implements subextract.Clipboard at compile time.
var _ subextract.Clipboard = (*Clipboard)(nil)

// Clipboard writes text to the system clipboard.
type Clipboard struct {
	write       func(text string) error
	unsupported bool
}

// Option configures a Clipboard.
type Option func(*Clipboard)

// WithWriter replaces the system clipboard writer.
func WithWriter(fn func(text string) error) Option {
	return func(c *Clipboard) {
		c.write = fn
		c.unsupported = false
	}
}

// NewClipboard creates a Clipboard for the current host.
func NewClipboard(opts ...Option) *Clipboard {
	c := &Clipboard{
		write:       clipboard.WriteAll,
		unsupported: clipboard.Unsupported,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Available reports whether the host has a usable clipboard utility.
func (c *Clipboard) Available() bool {
	return !c.unsupported
}

// WriteText replaces the clipboard contents with text.
func (c *Clipboard) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.unsupported {
		return subextract.Errorf(subextract.EUNAVAILABLE, "no clipboard utility found")
	}
	if err := c.write(text); err != nil {
		return subextract.Errorf(subextract.EUNAVAILABLE, "clipboard write failed: %v", err)
	}
	return nil
}
