package main

import (
	"fmt"

	"github.com/fwojciec/subextract"
	subhttp "github.com/fwojciec/subextract/http"
	subslog "github.com/fwojciec/subextract/slog"
	"golang.org/x/sync/errgroup"
)

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	s := subhttp.NewServer()
	s.Addr = c.Addr
	s.Clipboard = deps.Clipboard
	s.TextExtractor = deps.TextExtractor
	s.Logger = deps.Logger
	s.WrapDownloader = func(next subextract.Downloader) subextract.Downloader {
		return subslog.NewLoggingDownloader(next, deps.Logger)
	}

	if err := s.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		fmt.Fprintln(deps.Stderr, "Hint: Set SUBEXTRACT_ADDR or --addr to use a different address")
		return err
	}

	fmt.Fprintf(deps.Stdout, "Serving subdomain extractor at %s\n", s.URL())
	if !deps.ClipboardAvailable {
		deps.Logger.Warn("clipboard unavailable, copy will fail", "hint", "install xclip, xsel or wl-clipboard")
	}

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(s.Serve)
	g.Go(func() error {
		<-ctx.Done()
		return s.Close()
	})

	if !c.NoBrowser && deps.OpenBrowser != nil {
		if err := deps.OpenBrowser(s.URL()); err != nil {
			fmt.Fprintf(deps.Stderr, "Open %s in your browser\n", s.URL())
		}
	}

	return g.Wait()
}
