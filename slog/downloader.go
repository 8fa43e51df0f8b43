package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/subextract"
)

// Ensure LoggingDownloader implements subextract.Downloader.
var _ subextract.Downloader = (*LoggingDownloader)(nil)

// LoggingDownloader wraps a Downloader with logging.
type LoggingDownloader struct {
	next   subextract.Downloader
	logger *slog.Logger
}

// NewLoggingDownloader creates a new LoggingDownloader.
func NewLoggingDownloader(next subextract.Downloader, logger *slog.Logger) *LoggingDownloader {
	return &LoggingDownloader{next: next, logger: logger}
}

// Download delegates to the wrapped downloader and logs the operation.
func (d *LoggingDownloader) Download(ctx context.Context, export *subextract.Export) (err error) {
	defer func(begin time.Time) {
		d.logger.Info("export download",
			"filename", export.Filename,
			"bytes", len(export.Content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.Download(ctx, export)
}
