package projects

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/goliatone/go-formview/pkg/bind"
	"github.com/goliatone/go-formview/pkg/dom"
	"github.com/goliatone/go-formview/pkg/validation"
	"github.com/goliatone/go-formview/pkg/view"
)

const (
	// InputTemplateID is the template the form is cloned from.
	InputTemplateID = "project-input"
	// FormID is assigned to the mounted form root.
	FormID = "user-input"

	FieldTitle       = "title"
	FieldDescription = "description"
	FieldPeople      = "people"
)

// State is the form controller state.
type State string

const (
	StateIdle      State = "idle"
	StateSubmitted State = "submitted"
)

// Outcome describes the last handled submission.
type Outcome struct {
	Submitted bool
	Record    Record
	Result    validation.Result
}

// Input is the project form: a mounted component plus the submit handling
// that validates the three fields and hands valid records to the sink.
type Input struct {
	*view.Component

	title       *html.Node
	description *html.Node
	people      *html.Node

	events *dom.EventTarget
	opts   Options
	state  State
	last   Outcome

	submit bind.Method[*Input]
}

// NewInput mounts the form from tmpl as the first child of host and registers
// its submit listener on events.
func NewInput(tmpl, host *html.Node, events *dom.EventTarget, fns ...Option) (*Input, error) {
	if events == nil {
		events = dom.NewEventTarget()
	}
	p := &Input{
		events: events,
		opts:   NewOptions(fns...),
		state:  StateIdle,
	}

	component, err := view.Mount(tmpl, host,
		view.WithID(FormID),
		view.WithPosition(dom.AfterBegin),
		view.WithLogger(p.opts.Logger),
		view.WithHooks(view.Hooks{Configure: p.configure}),
	)
	if err != nil {
		return nil, fmt.Errorf("projects: mount input: %w", err)
	}
	p.Component = component
	return p, nil
}

// MustNewInput is NewInput that panics on a setup fault.
func MustNewInput(tmpl, host *html.Node, events *dom.EventTarget, fns ...Option) *Input {
	p, err := NewInput(tmpl, host, events, fns...)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Input) configure(c *view.Component) error {
	var err error
	if p.title, err = c.Query("#" + FieldTitle); err != nil {
		return err
	}
	if p.description, err = c.Query("#" + FieldDescription); err != nil {
		return err
	}
	if p.people, err = c.Query("#" + FieldPeople); err != nil {
		return err
	}
	p.events.AddEventListener(c.Element(), dom.EventSubmit, p.submitHandler())
	return nil
}

// submitHandler returns the submit listener bound to p.
func (p *Input) submitHandler() *bind.Handler {
	return p.submit.For(p, (*Input).handleSubmit)
}

func (p *Input) handleSubmit(e *dom.Event) {
	e.PreventDefault()
	p.state = StateSubmitted
	defer func() { p.state = StateIdle }()

	record, result, ok := p.gatherUserInput()
	p.last = Outcome{Submitted: ok, Record: record, Result: result}
	if !ok {
		return
	}

	p.clearInputContent()
	if err := p.opts.Sink.Accept(record); err != nil {
		p.opts.Logger.Error().Err(err).Str("id", record.ID).Msg("record sink failed")
	}
}

func (p *Input) gatherUserInput() (Record, validation.Result, bool) {
	fields := p.Values()
	people := validation.ParseNumber(fields.People)

	result := p.opts.Rules.Rules().Check(map[string]validation.Value{
		FieldTitle:       validation.Text(fields.Title),
		FieldDescription: validation.Text(fields.Description),
		FieldPeople:      validation.Number(people),
	})
	if !result.Valid {
		p.opts.Logger.Debug().
			Strs("fields", result.Failed()).
			Interface("violations", result.Fields).
			Msg("form input rejected")
		if err := p.opts.Notifier.Notify(p.opts.Notice); err != nil {
			p.opts.Logger.Warn().Err(err).Msg("notice not acknowledged")
		}
		return Record{}, result, false
	}

	return Record{
		ID:          p.opts.NewID(),
		Title:       fields.Title,
		Description: fields.Description,
		PeopleCount: people,
		SubmittedAt: p.opts.Now(),
	}, result, true
}

func (p *Input) clearInputContent() {
	dom.SetValue(p.title, "")
	dom.SetValue(p.description, "")
	dom.SetValue(p.people, "")
}

// Values returns the current contents of the three controls.
func (p *Input) Values() Fields {
	return Fields{
		Title:       dom.Value(p.title),
		Description: dom.Value(p.description),
		People:      dom.Value(p.people),
	}
}

// Fill writes field contents into the controls, as if typed by the user.
func (p *Input) Fill(fields Fields) {
	dom.SetValue(p.title, fields.Title)
	dom.SetValue(p.description, fields.Description)
	dom.SetValue(p.people, fields.People)
}

// Submit dispatches a submit event on the form and reports what the
// listener did with it.
func (p *Input) Submit() Outcome {
	p.last = Outcome{}
	p.events.Dispatch(dom.NewEvent(dom.EventSubmit, p.Element()))
	return p.last
}

// State returns the controller state. Submission runs to completion inside
// Submit, so callers always observe StateIdle.
func (p *Input) State() State { return p.state }

// Rules returns the constraints the form validates against.
func (p *Input) Rules() FormRules { return p.opts.Rules }
