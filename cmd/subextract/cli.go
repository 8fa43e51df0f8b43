package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/subextract"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Clipboard     subextract.Clipboard
	TextExtractor subextract.TextExtractor

	// False when the host has no clipboard utility, so every copy fails.
	ClipboardAvailable bool
	Notifier      subextract.Notifier
	OpenBrowser   func(url string) error
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" env:"SUBEXTRACT_VERBOSE" help:"Enable debug logging"`

	Extract ExtractCmd `cmd:"" help:"Extract wildcard subdomains from a file or stdin"`
	Serve   ServeCmd   `cmd:"" help:"Run the extractor UI in a browser"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	File    string `arg:"" optional:"" default:"-" help:"Input file (- for stdin)"`
	Unique  bool   `short:"u" help:"Keep only the first occurrence of each entry"`
	Keyword string `short:"k" help:"Keep entries containing this keyword (case-sensitive)"`
	HTML    bool   `name:"html" help:"Treat input as HTML and match its text and attributes"`
	Copy    bool   `short:"c" help:"Copy the result to the clipboard"`
	Format  string `short:"f" enum:"csv,txt" default:"txt" help:"Export format for --output (csv or txt)"`
	Output  string `short:"o" type:"path" help:"Directory to write extracted_subdomains.<format> into"`

	Stream        bool    `help:"Print entries as they are found instead of after reading all input"`
	Approx        bool    `help:"With --stream --unique, deduplicate with a Bloom filter in fixed memory"`
	ExpectedItems uint    `default:"1000000" help:"Bloom filter capacity for --approx"`
	FPRate        float64 `name:"fp-rate" default:"0.001" help:"Bloom filter false positive rate for --approx"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr      string `default:"127.0.0.1:8080" env:"SUBEXTRACT_ADDR" help:"Listen address"`
	NoBrowser bool   `help:"Do not open a browser window"`
}
