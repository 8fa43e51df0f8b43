package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/subextract"
	"github.com/fwojciec/subextract/bloom"
	"github.com/fwojciec/subextract/fs"
	subslog "github.com/fwojciec/subextract/slog"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	if err := c.validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", subextract.ErrorMessage(err))
		return err
	}

	in, closeFn, err := c.open(deps.Stdin)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}
	defer closeFn()

	if c.Stream {
		return c.runStream(deps, in)
	}

	data, err := io.ReadAll(in)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	state := &subextract.State{
		Input:      string(data),
		Keyword:    c.Keyword,
		UniqueOnly: c.Unique,
		HTML:       c.HTML,
	}
	ctrl := subextract.NewController(state, deps.Clipboard, nil, deps.Notifier)
	ctrl.TextExtractor = deps.TextExtractor

	list := ctrl.Extract()
	deps.Logger.Debug("extract", "input_bytes", len(data), "matches", len(list))

	if len(list) == 0 {
		fmt.Fprintln(deps.Stderr, ctrl.Display())
	} else {
		fmt.Fprintln(deps.Stdout, ctrl.Display())
	}

	if c.Copy {
		ctrl.Copy(deps.Ctx)
	}

	if c.Output != "" {
		format, err := subextract.ParseFormat(c.Format)
		if err != nil {
			return err
		}
		ctrl.Downloader = subslog.NewLoggingDownloader(fs.NewDownloader(c.Output), deps.Logger)
		ctrl.Download(deps.Ctx, format)
	}

	return nil
}

func (c *ExtractCmd) runStream(deps *Dependencies, in io.Reader) error {
	opts := subextract.Options{UniqueOnly: c.Unique, Keyword: c.Keyword}

	var seen subextract.Deduper
	var filter *bloom.Filter
	if c.Approx {
		filter = bloom.NewFilter(c.ExpectedItems, c.FPRate)
		seen = filter
	}

	// Entries go straight to stdout so piped input such as tail -f shows
	// each match as soon as its line is read.
	count := 0
	err := subextract.ExtractReader(in, opts, seen, func(s string) error {
		count++
		_, err := fmt.Fprintln(deps.Stdout, s)
		return err
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return err
	}

	attrs := []any{"matches", count, "approx", c.Approx}
	if filter != nil {
		attrs = append(attrs, "approx_count", filter.EstimatedCount())
	}
	deps.Logger.Debug("extract stream", attrs...)
	if count == 0 {
		fmt.Fprintln(deps.Stderr, subextract.Placeholder)
	}
	return nil
}

func (c *ExtractCmd) validate() error {
	if c.Stream && (c.Copy || c.Output != "" || c.HTML) {
		return subextract.Errorf(subextract.EINVALID, "--stream cannot be combined with --copy, --output or --html")
	}
	if c.Approx && !(c.Stream && c.Unique) {
		return subextract.Errorf(subextract.EINVALID, "--approx requires --stream and --unique")
	}
	if c.Approx && (c.ExpectedItems == 0 || c.FPRate <= 0 || c.FPRate >= 1) {
		return subextract.Errorf(subextract.EINVALID, "--approx needs --expected-items > 0 and 0 < --fp-rate < 1")
	}
	return nil
}

func (c *ExtractCmd) open(stdin io.Reader) (io.Reader, func() error, error) {
	if c.File == "" || c.File == "-" {
		return stdin, func() error { return nil }, nil
	}
	f, err := os.Open(c.File)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

// errorMessage prefers the application message and falls back to the
// raw error text for errors from the OS or the reader.
func errorMessage(err error) string {
	if subextract.ErrorCode(err) == subextract.EINTERNAL {
		return err.Error()
	}
	return subextract.ErrorMessage(err)
}
