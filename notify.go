package subextract

// NotificationKind distinguishes success from failure notifications.
type NotificationKind string

// Notification kinds.
const (
	NotifySuccess NotificationKind = "success"
	NotifyFailure NotificationKind = "failure"
)

// Notification is a transient message shown after Copy or Download.
type Notification struct {
	Kind    NotificationKind
	Message string
}

// Notifier shows transient notifications to the user.
type Notifier interface {
	Notify(n Notification)
}

// Notifications is a Notifier that queues notifications until drained.
type Notifications []Notification

// Notify appends n to the queue.
func (q *Notifications) Notify(n Notification) {
	*q = append(*q, n)
}

// Drain returns the queued notifications and empties the queue.
func (q *Notifications) Drain() []Notification {
	out := *q
	*q = nil
	return out
}
