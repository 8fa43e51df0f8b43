package subextract

import (
	"regexp"
	"strings"
)

// Pattern matches a wildcard subdomain: a literal "*." followed by exactly
// two dot-separated labels of word characters or hyphens. Deeper chains
// such as *.a.b.c match only their first two labels.
var Pattern = regexp.MustCompile(`\*\.[\w-]+\.[\w-]+`)

// Options controls how raw matches are reduced to the extracted list.
type Options struct {
	// UniqueOnly removes repeated entries, keeping first-occurrence order.
	UniqueOnly bool

	// Keyword keeps only entries containing it (case-sensitive).
	// Empty means no filter.
	Keyword string
}

// Keep reports whether an entry passes the keyword filter.
func (o Options) Keep(s string) bool {
	return o.Keyword == "" || strings.Contains(s, o.Keyword)
}

// Extract returns every wildcard subdomain in text, deduplicated when
// opts.UniqueOnly is set and filtered by opts.Keyword. The result is never
// nil; text without matches yields an empty list.
func Extract(text string, opts Options) []string {
	matches := Pattern.FindAllString(text, -1)

	if opts.UniqueOnly {
		matches = Unique(matches)
	}

	result := make([]string, 0, len(matches))
	for _, m := range matches {
		if opts.Keep(m) {
			result = append(result, m)
		}
	}
	return result
}

// Unique returns items with duplicates removed, preserving the position of
// each first occurrence.
func Unique(items []string) []string {
	seen := NewSet()
	result := make([]string, 0, len(items))
	for _, s := range items {
		if seen.Add(s) {
			result = append(result, s)
		}
	}
	return result
}

// Join renders an extracted list as newline-separated text, the payload
// format for both clipboard and file exports.
func Join(items []string) string {
	return strings.Join(items, "\n")
}

// Deduper tracks entries already emitted during an extraction.
type Deduper interface {
	// Add records s and reports whether it had not been seen before.
	Add(s string) bool
}

// Ensure Set implements Deduper at compile time.
var _ Deduper = (Set)(nil)

// Set is an exact Deduper backed by a map.
type Set map[string]struct{}

// NewSet returns an empty Set.
func NewSet() Set {
	return make(Set)
}

// Add records s and reports whether it was new.
func (s Set) Add(v string) bool {
	if _, ok := s[v]; ok {
		return false
	}
	s[v] = struct{}{}
	return true
}

// TextExtractor converts markup into plain text suitable for Extract.
type TextExtractor interface {
	// ExtractText returns the text content of src.
	// Returns EINVALID if src cannot be parsed.
	ExtractText(src string) (string, error)
}
