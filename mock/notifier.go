package mock

import "github.com/fwojciec/subextract"

var _ subextract.Notifier = (*Notifier)(nil)

// Notifier is a mock implementation of subextract.Notifier.
type Notifier struct {
	NotifyFn func(n subextract.Notification)
}

func (m *Notifier) Notify(n subextract.Notification) {
	m.NotifyFn(n)
}
