package mock

import (
	"context"

	"github.com/fwojciec/subextract"
)

var _ subextract.Downloader = (*Downloader)(nil)

// Downloader is a mock implementation of subextract.Downloader.
type Downloader struct {
	DownloadFn func(ctx context.Context, export *subextract.Export) error
}

func (d *Downloader) Download(ctx context.Context, export *subextract.Export) error {
	return d.DownloadFn(ctx, export)
}
