package render

// Options describe per-request data that renderers can use to customise
// their output without mutating the page.
type Options struct {
	// Title is the document title used by layout renderers.
	Title string
	// Notice is the message shown after a rejected submission.
	Notice string
	// Errors surfaces validation feedback keyed by field name.
	Errors map[string][]string
}
