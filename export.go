package subextract

import "context"

// Format identifies a file export flavor.
type Format string

// Supported export formats.
const (
	FormatCSV Format = "csv"
	FormatTXT Format = "txt"
)

// ParseFormat validates a format name.
// Returns EINVALID for anything other than "csv" or "txt".
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatCSV, FormatTXT:
		return f, nil
	default:
		return "", Errorf(EINVALID, "unknown export format %q", s)
	}
}

// MediaType returns the MIME type of the format.
func (f Format) MediaType() string {
	if f == FormatCSV {
		return "text/csv"
	}
	return "text/plain"
}

// Filename returns the fixed download filename for the format.
func (f Format) Filename() string {
	return "extracted_subdomains." + string(f)
}

// Label is the short uppercase name used in notifications.
func (f Format) Label() string {
	if f == FormatCSV {
		return "CSV"
	}
	return "TXT"
}

// Export is a ready-to-save file built from an extracted list.
type Export struct {
	Filename  string
	MediaType string
	Content   string
}

// NewExport joins items with newlines and wraps them for the given format.
// Entries never contain commas or quotes, so the newline-joined list is
// valid single-column CSV as-is.
func NewExport(items []string, format Format) *Export {
	return &Export{
		Filename:  format.Filename(),
		MediaType: format.MediaType(),
		Content:   Join(items),
	}
}

// ContentType returns the media type with an explicit UTF-8 charset.
func (e *Export) ContentType() string {
	return e.MediaType + "; charset=utf-8"
}

// Downloader saves an export through the host's download mechanism.
type Downloader interface {
	// Download delivers the export. Browser-backed implementations
	// always succeed; file-backed ones may fail on write.
	Download(ctx context.Context, export *Export) error
}
