package projects

import "sync"

// DefaultNotice is shown whenever any field fails validation.
const DefaultNotice = "Invalid entered values"

// Notifier shows a blocking notice the user must acknowledge. Notify returns
// once the notice has been acknowledged.
type Notifier interface {
	Notify(message string) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(string) error

func (f NotifierFunc) Notify(message string) error { return f(message) }

// NoticeRecorder collects notices for surfaces that cannot block, such as an
// HTTP response; the caller drains them when building its reply.
type NoticeRecorder struct {
	mu      sync.Mutex
	notices []string
}

func (r *NoticeRecorder) Notify(message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, message)
	return nil
}

// Drain returns and clears the recorded notices.
func (r *NoticeRecorder) Drain() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.notices
	r.notices = nil
	return out
}
