package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrTooManyAttempts is returned when a session runs out of attempts
	// before the form accepts a submission.
	ErrTooManyAttempts = errors.New("prompt: too many invalid attempts")
)
