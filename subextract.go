// Package subextract pulls wildcard-subdomain entries (for example
// *.example.com) out of pasted text, optionally deduplicates and
// keyword-filters them, and hands the result to a clipboard or a file
// export.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., bloom/, goquery/, lipgloss/).
package subextract
