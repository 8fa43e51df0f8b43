package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/subextract"
)

// Ensure LoggingClipboard implements subextract.Clipboard.
var _ subextract.Clipboard = (*LoggingClipboard)(nil)

// LoggingClipboard wraps a Clipboard with logging.
type LoggingClipboard struct {
	next   subextract.Clipboard
	logger *slog.Logger
}

// NewLoggingClipboard creates a new LoggingClipboard.
func NewLoggingClipboard(next subextract.Clipboard, logger *slog.Logger) *LoggingClipboard {
	return &LoggingClipboard{next: next, logger: logger}
}

// WriteText delegates to the wrapped clipboard and logs the operation.
func (c *LoggingClipboard) WriteText(ctx context.Context, text string) (err error) {
	defer func(begin time.Time) {
		c.logger.Info("clipboard write",
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.WriteText(ctx, text)
}
