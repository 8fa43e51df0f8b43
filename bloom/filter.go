// Package bloom provides bounded-memory deduplication using Bloom filters.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/subextract"
)

// Ensure Filter implements subextract.Deduper at compile time.
var _ subextract.Deduper = (*Filter)(nil)

// Filter wraps a Bloom filter for deduplicating streamed entries.
// A false positive makes a new entry look seen, so a small fraction of
// distinct entries may be dropped; memory stays fixed regardless of input.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records s and reports whether it was (probably) not seen before.
func (f *Filter) Add(s string) bool {
	return !f.f.TestOrAddString(s)
}

// EstimatedCount returns the approximate number of distinct entries
// recorded, derived from the filter's fill ratio.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
