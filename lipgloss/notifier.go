// Package lipgloss renders subextract notifications on a terminal.
package lipgloss

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/subextract"
)

var (
	green = lipgloss.AdaptiveColor{Light: "#036D26", Dark: "#06DB4D"}
	red   = lipgloss.AdaptiveColor{Light: "#CE4A3B", Dark: "#FF6352"}
)

// Ensure Notifier implements subextract.Notifier at compile time.
var _ subextract.Notifier = (*Notifier)(nil)

// Notifier prints one styled line per notification. Colors are dropped
// automatically when w is not a terminal.
type Notifier struct {
	w       io.Writer
	success lipgloss.Style
	failure lipgloss.Style
}

// NewNotifier creates a Notifier writing to w.
func NewNotifier(w io.Writer) *Notifier {
	r := lipgloss.NewRenderer(w)
	return &Notifier{
		w:       w,
		success: r.NewStyle().Foreground(green).Bold(true).SetString("✓"),
		failure: r.NewStyle().Foreground(red).Bold(true).SetString("✗"),
	}
}

// Notify writes n to the terminal.
func (n *Notifier) Notify(note subextract.Notification) {
	prefix := n.success
	if note.Kind == subextract.NotifyFailure {
		prefix = n.failure
	}
	fmt.Fprintf(n.w, "%s %s\n", prefix, note.Message)
}
