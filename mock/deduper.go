package mock

import "github.com/fwojciec/subextract"

var _ subextract.Deduper = (*Deduper)(nil)

// Deduper is a mock implementation of subextract.Deduper.
type Deduper struct {
	AddFn func(s string) bool
}

func (d *Deduper) Add(s string) bool {
	return d.AddFn(s)
}
