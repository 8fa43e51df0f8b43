package subextract

import "context"

// Placeholder is displayed when the extracted list is empty.
const Placeholder = "No subdomains extracted yet."

// Notification messages.
const (
	MsgCopied      = "Copied to clipboard!"
	MsgCopyFailed  = "Failed to copy!"
	MsgParseFailed = "Failed to read HTML input!"
)

// State is the transient view state of one extraction session.
type State struct {
	Input      string
	Keyword    string
	UniqueOnly bool

	// HTML marks Input as markup to be flattened to text before matching.
	HTML bool

	// Subdomains is derived by Controller.Extract and replaced wholesale
	// on every extraction.
	Subdomains []string
}

// Options returns the extraction options encoded in the state.
func (s *State) Options() Options {
	return Options{UniqueOnly: s.UniqueOnly, Keyword: s.Keyword}
}

// Controller runs the user-facing actions against a State.
// Each action is independent and may be invoked at any time.
type Controller struct {
	State *State

	Clipboard  Clipboard
	Downloader Downloader
	Notifier   Notifier

	// TextExtractor flattens Input when State.HTML is set.
	// When nil, HTML input is matched as-is.
	TextExtractor TextExtractor
}

// NewController returns a Controller for state.
func NewController(state *State, clipboard Clipboard, downloader Downloader, notifier Notifier) *Controller {
	return &Controller{
		State:      state,
		Clipboard:  clipboard,
		Downloader: downloader,
		Notifier:   notifier,
	}
}

// Extract recomputes the extracted list from the current input, flag and
// keyword, and returns it. HTML input that cannot be read yields an empty
// list and a failure notification.
func (c *Controller) Extract() []string {
	text := c.State.Input
	if c.State.HTML && c.TextExtractor != nil {
		var err error
		if text, err = c.TextExtractor.ExtractText(text); err != nil {
			c.State.Subdomains = []string{}
			c.notify(NotifyFailure, MsgParseFailed)
			return c.State.Subdomains
		}
	}
	c.State.Subdomains = Extract(text, c.State.Options())
	return c.State.Subdomains
}

// Display returns the list as shown in the result area.
func (c *Controller) Display() string {
	if text := Join(c.State.Subdomains); text != "" {
		return text
	}
	return Placeholder
}

// Copy writes the newline-joined list to the clipboard. Success and
// failure each produce exactly one notification; errors are not returned.
func (c *Controller) Copy(ctx context.Context) {
	if c.Clipboard == nil {
		c.notify(NotifyFailure, MsgCopyFailed)
		return
	}
	if err := c.Clipboard.WriteText(ctx, Join(c.State.Subdomains)); err != nil {
		c.notify(NotifyFailure, MsgCopyFailed)
		return
	}
	c.notify(NotifySuccess, MsgCopied)
}

// Download exports the list in the given format and notifies the outcome.
func (c *Controller) Download(ctx context.Context, format Format) {
	export := NewExport(c.State.Subdomains, format)
	if c.Downloader == nil {
		c.notify(NotifyFailure, "Failed to download "+format.Label()+"!")
		return
	}
	if err := c.Downloader.Download(ctx, export); err != nil {
		c.notify(NotifyFailure, "Failed to download "+format.Label()+"!")
		return
	}
	c.notify(NotifySuccess, format.Label()+" downloaded!")
}

func (c *Controller) notify(kind NotificationKind, msg string) {
	if c.Notifier != nil {
		c.Notifier.Notify(Notification{Kind: kind, Message: msg})
	}
}
