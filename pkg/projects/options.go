package projects

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-formview/pkg/validation"
)

// FormRules holds the declarative constraints for the three form fields.
type FormRules struct {
	Title       validation.Rule `json:"title" yaml:"title"`
	Description validation.Rule `json:"description" yaml:"description"`
	People      validation.Rule `json:"people" yaml:"people"`
}

// DefaultRules returns the stock constraints: a required title, a required
// description strictly between 10 and 20 characters and a required people
// count strictly between 3 and 10.
func DefaultRules() FormRules {
	return FormRules{
		Title: validation.Rule{Required: true},
		Description: validation.Rule{
			Required:  true,
			MinLength: validation.Length(10),
			MaxLength: validation.Length(20),
		},
		People: validation.Rule{
			Required: true,
			Min:      validation.Bound(3),
			Max:      validation.Bound(10),
		},
	}
}

// Rules returns the form rules keyed by field name.
func (r FormRules) Rules() validation.Rules {
	return validation.Rules{
		FieldTitle:       r.Title,
		FieldDescription: r.Description,
		FieldPeople:      r.People,
	}
}

// Options configures the form, the lists and the page that mounts them.
type Options struct {
	ContainerID string
	Rules       FormRules
	Notice      string
	Sink        Sink
	Notifier    Notifier
	Logger      zerolog.Logger
	Now         func() time.Time
	NewID       func() string
}

type Option func(*Options)

// DefaultOptions returns options with the stock rules, a logging sink on a
// no-op logger and a notifier that discards notices.
func DefaultOptions() Options {
	return Options{
		ContainerID: DefaultContainerID,
		Rules:       DefaultRules(),
		Notice:      DefaultNotice,
		Logger:      zerolog.Nop(),
		Now:         time.Now,
		NewID:       uuid.NewString,
	}
}

// NewOptions applies fns over DefaultOptions and fills anything left blank.
func NewOptions(fns ...Option) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if strings.TrimSpace(opts.ContainerID) == "" {
		opts.ContainerID = DefaultContainerID
	}
	if strings.TrimSpace(opts.Notice) == "" {
		opts.Notice = DefaultNotice
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	if opts.Sink == nil {
		opts.Sink = NewLogSink(opts.Logger)
	}
	if opts.Notifier == nil {
		opts.Notifier = NotifierFunc(func(string) error { return nil })
	}
	return opts
}

func WithContainerID(id string) Option {
	return func(o *Options) {
		o.ContainerID = strings.TrimSpace(id)
	}
}

func WithRules(rules FormRules) Option {
	return func(o *Options) {
		o.Rules = rules
	}
}

func WithNotice(message string) Option {
	return func(o *Options) {
		o.Notice = message
	}
}

func WithSink(sink Sink) Option {
	return func(o *Options) {
		o.Sink = sink
	}
}

func WithNotifier(n Notifier) Option {
	return func(o *Options) {
		o.Notifier = n
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithClock overrides the timestamp source for records.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		o.Now = now
	}
}

// WithIDGenerator overrides the record id source (uuid by default).
func WithIDGenerator(fn func() string) Option {
	return func(o *Options) {
		o.NewID = fn
	}
}
