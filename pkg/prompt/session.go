// Package prompt drives the project form from a terminal. Each round asks for
// the three fields, prefilled with whatever the form retained, and submits
// them through the same controller the HTML surfaces use.
package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-formview/pkg/projects"
)

// Notifier shows form notices through a Driver and waits for the user to
// acknowledge them.
type Notifier struct {
	ctx    context.Context
	driver Driver
}

// NewNotifier binds a notifier to ctx and driver.
func NewNotifier(ctx context.Context, driver Driver) *Notifier {
	return &Notifier{ctx: ctx, driver: driver}
}

func (n *Notifier) Notify(message string) error {
	return n.driver.Acknowledge(n.ctx, message)
}

var _ projects.Notifier = (*Notifier)(nil)

// Option configures a Session.
type Option func(*Session)

// WithMaxAttempts limits the number of submissions; zero means unlimited.
func WithMaxAttempts(n int) Option {
	return func(s *Session) {
		if n >= 0 {
			s.maxAttempts = n
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// Session collects one project through a Driver.
type Session struct {
	form        *projects.Input
	driver      Driver
	maxAttempts int
	logger      zerolog.Logger
}

// NewSession prepares a session over form. The page that owns form should
// have been mounted with a Notifier from NewNotifier on the same driver.
func NewSession(form *projects.Input, driver Driver, opts ...Option) (*Session, error) {
	if form == nil {
		return nil, fmt.Errorf("prompt: form is nil")
	}
	if driver == nil {
		return nil, fmt.Errorf("prompt: driver is nil")
	}
	s := &Session{
		form:   form,
		driver: driver,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// Run asks for input until the form accepts a submission and returns the
// resulting record.
func (s *Session) Run(ctx context.Context) (projects.Record, error) {
	for attempt := 1; s.maxAttempts == 0 || attempt <= s.maxAttempts; attempt++ {
		fields, err := s.ask(ctx, s.form.Values())
		if err != nil {
			return projects.Record{}, err
		}
		s.form.Fill(fields)

		outcome := s.form.Submit()
		if outcome.Submitted {
			if err := s.driver.Info(ctx, fmt.Sprintf("Added project %q", outcome.Record.Title)); err != nil {
				return outcome.Record, err
			}
			return outcome.Record, nil
		}

		s.logger.Debug().
			Int("attempt", attempt).
			Strs("fields", outcome.Result.Failed()).
			Msg("prompt submission rejected")
		for _, name := range outcome.Result.Failed() {
			for _, v := range outcome.Result.Fields[name] {
				if err := s.driver.Info(ctx, fmt.Sprintf("  %s: %s", name, v.Message)); err != nil {
					return projects.Record{}, err
				}
			}
		}
		if err := ctx.Err(); err != nil {
			return projects.Record{}, err
		}
	}
	return projects.Record{}, ErrTooManyAttempts
}

func (s *Session) ask(ctx context.Context, current projects.Fields) (projects.Fields, error) {
	title, err := s.driver.Input(ctx, InputConfig{
		Message: "Title",
		Default: current.Title,
		Help:    "Required",
	})
	if err != nil {
		return projects.Fields{}, err
	}

	rules := s.form.Rules()
	description, err := s.driver.TextArea(ctx, TextAreaConfig{
		Message: "Description",
		Default: current.Description,
		Help:    lengthHelp(rules.Description.MinLength, rules.Description.MaxLength),
	})
	if err != nil {
		return projects.Fields{}, err
	}

	people, err := s.driver.Input(ctx, InputConfig{
		Message: "People",
		Default: current.People,
		Help:    boundHelp(rules.People.Min, rules.People.Max),
	})
	if err != nil {
		return projects.Fields{}, err
	}

	return projects.Fields{
		Title:       strings.TrimRight(title, "\r\n"),
		Description: strings.TrimRight(description, "\r\n"),
		People:      strings.TrimSpace(people),
	}, nil
}

func lengthHelp(lo, hi *int) string {
	switch {
	case lo != nil && hi != nil:
		return fmt.Sprintf("More than %d and fewer than %d characters", *lo, *hi)
	case lo != nil:
		return fmt.Sprintf("More than %d characters", *lo)
	case hi != nil:
		return fmt.Sprintf("Fewer than %d characters", *hi)
	}
	return ""
}

func boundHelp(lo, hi *float64) string {
	switch {
	case lo != nil && hi != nil:
		return fmt.Sprintf("A number greater than %g and less than %g", *lo, *hi)
	case lo != nil:
		return fmt.Sprintf("A number greater than %g", *lo)
	case hi != nil:
		return fmt.Sprintf("A number less than %g", *hi)
	}
	return ""
}
