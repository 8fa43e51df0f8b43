// Package fs provides file-based export of extracted subdomains.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/subextract"
)

// Ensure Downloader implements subextract.Downloader at compile time.
var _ subextract.Downloader = (*Downloader)(nil)

// Downloader writes exports to a directory under their fixed filename.
type Downloader struct {
	baseDir string
}

// NewDownloader creates a new Downloader that writes to the given base directory.
func NewDownloader(baseDir string) *Downloader {
	return &Downloader{baseDir: baseDir}
}

// Path returns the file an export would be written to.
func (d *Downloader) Path(export *subextract.Export) string {
	return filepath.Join(d.baseDir, export.Filename)
}

// Download writes the export content to disk, replacing any previous file.
func (d *Downloader) Download(ctx context.Context, export *subextract.Export) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// Create base directory
	if err := os.MkdirAll(d.baseDir, 0755); err != nil {
		return err
	}

	return os.WriteFile(d.Path(export), []byte(export.Content), 0644)
}
