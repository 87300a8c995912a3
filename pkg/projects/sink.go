package projects

import (
	"github.com/rs/zerolog"
)

// Sink receives every record the form produces.
type Sink interface {
	Accept(Record) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Record) error

func (f SinkFunc) Accept(r Record) error { return f(r) }

// LogSink only observes records by logging them.
type LogSink struct {
	Logger zerolog.Logger
}

// NewLogSink returns a sink writing to logger.
func NewLogSink(logger zerolog.Logger) *LogSink {
	return &LogSink{Logger: logger}
}

func (s *LogSink) Accept(r Record) error {
	s.Logger.Info().
		Str("id", r.ID).
		Str("title", r.Title).
		Str("description", r.Description).
		Float64("people", r.PeopleCount).
		Time("submitted_at", r.SubmittedAt).
		Msg("project submitted")
	return nil
}

// Sinks fans a record out to several sinks. Every sink is called; the first
// error is returned.
type Sinks []Sink

func (s Sinks) Accept(r Record) error {
	var first error
	for _, sink := range s {
		if sink == nil {
			continue
		}
		if err := sink.Accept(r); err != nil && first == nil {
			first = err
		}
	}
	return first
}
