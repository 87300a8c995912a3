package projects_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formview/pkg/dom"
	"github.com/goliatone/go-formview/pkg/projects"
	"github.com/goliatone/go-formview/pkg/testsupport"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type harness struct {
	page    *projects.Page
	records []projects.Record
	notices *projects.NoticeRecorder
}

func newHarness(t *testing.T, fns ...projects.Option) *harness {
	t.Helper()
	h := &harness{notices: &projects.NoticeRecorder{}}
	doc := testsupport.MustParseDocument(t, testsupport.ComponentsMarkup)

	base := []projects.Option{
		projects.WithSink(projects.SinkFunc(func(r projects.Record) error {
			h.records = append(h.records, r)
			return nil
		})),
		projects.WithNotifier(h.notices),
		projects.WithClock(func() time.Time { return fixedNow }),
		projects.WithIDGenerator(func() string { return "rec-1" }),
	}
	page, err := projects.Mount(doc, append(base, fns...)...)
	if err != nil {
		t.Fatalf("mount: %v", err)
	}
	h.page = page
	return h
}

func TestInput_ValidSubmission(t *testing.T) {
	h := newHarness(t)
	form := h.page.Form()

	form.Fill(projects.Fields{Title: "Build App", Description: "A todo app builder", People: "5"})
	outcome := form.Submit()

	if !outcome.Submitted {
		t.Fatalf("expected submission, got %+v", outcome.Result)
	}
	want := []projects.Record{{
		ID:          "rec-1",
		Title:       "Build App",
		Description: "A todo app builder",
		PeopleCount: 5,
		SubmittedAt: fixedNow,
	}}
	if diff := cmp.Diff(want, h.records); diff != "" {
		t.Fatalf("records mismatch (-want +got):\n%s", diff)
	}
	if !form.Values().IsZero() {
		t.Fatalf("expected cleared fields, got %+v", form.Values())
	}
	if notices := h.notices.Drain(); len(notices) != 0 {
		t.Fatalf("unexpected notices %v", notices)
	}
	if form.State() != projects.StateIdle {
		t.Fatalf("expected idle state, got %s", form.State())
	}

	title, desc, people := h.records[0].Tuple()
	if title != "Build App" || desc != "A todo app builder" || people != 5 {
		t.Fatalf("unexpected tuple (%q, %q, %v)", title, desc, people)
	}
}

func TestInput_DescriptionBounds(t *testing.T) {
	cases := []struct {
		length int
		ok     bool
	}{
		{length: 10, ok: false},
		{length: 11, ok: true},
		{length: 19, ok: true},
		{length: 20, ok: false},
	}

	for _, tc := range cases {
		h := newHarness(t)
		form := h.page.Form()
		fields := projects.Fields{Title: "T", Description: strings.Repeat("d", tc.length), People: "5"}
		form.Fill(fields)

		outcome := form.Submit()
		if outcome.Submitted != tc.ok {
			t.Fatalf("length %d: expected submitted=%v, got %v (%v)", tc.length, tc.ok, outcome.Submitted, outcome.Result.Fields)
		}
		if tc.ok {
			continue
		}
		if got := outcome.Result.Failed(); !cmp.Equal(got, []string{projects.FieldDescription}) {
			t.Fatalf("length %d: unexpected failing fields %v", tc.length, got)
		}
		if got := form.Values(); got != fields {
			t.Fatalf("length %d: fields must be retained, got %+v", tc.length, got)
		}
	}
}

func TestInput_PeopleBounds(t *testing.T) {
	cases := []struct {
		people string
		ok     bool
	}{
		{people: "3", ok: false},
		{people: "4", ok: true},
		{people: "9", ok: true},
		{people: "10", ok: false},
		{people: "", ok: false},
		{people: "many", ok: false},
	}

	for _, tc := range cases {
		h := newHarness(t)
		form := h.page.Form()
		fields := projects.Fields{Title: "Build App", Description: "A todo app builder", People: tc.people}
		form.Fill(fields)

		outcome := form.Submit()
		if outcome.Submitted != tc.ok {
			t.Fatalf("people %q: expected submitted=%v, got %v", tc.people, tc.ok, outcome.Submitted)
		}
		notices := h.notices.Drain()
		if tc.ok {
			if len(notices) != 0 || len(h.records) != 1 {
				t.Fatalf("people %q: expected one record and no notice, got %d/%v", tc.people, len(h.records), notices)
			}
			continue
		}
		if !cmp.Equal(notices, []string{projects.DefaultNotice}) {
			t.Fatalf("people %q: expected one notice, got %v", tc.people, notices)
		}
		if len(h.records) != 0 {
			t.Fatalf("people %q: no record expected, got %v", tc.people, h.records)
		}
		if got := form.Values(); got != fields {
			t.Fatalf("people %q: fields must be retained, got %+v", tc.people, got)
		}
	}
}

func TestInput_BlankTitle(t *testing.T) {
	h := newHarness(t, projects.WithNotice("Please fix the form"))
	form := h.page.Form()
	form.Fill(projects.Fields{Title: "   ", Description: "A todo app builder", People: "5"})

	outcome := form.Submit()
	if outcome.Submitted {
		t.Fatalf("blank title must be rejected")
	}
	if got := outcome.Result.Fields[projects.FieldTitle]; len(got) != 1 || got[0].Constraint != "required" {
		t.Fatalf("unexpected title violations %v", got)
	}
	if notices := h.notices.Drain(); !cmp.Equal(notices, []string{"Please fix the form"}) {
		t.Fatalf("unexpected notices %v", notices)
	}
}

func TestInput_SinkErrorStillClears(t *testing.T) {
	h := newHarness(t, projects.WithSink(projects.SinkFunc(func(projects.Record) error {
		return errors.New("disk full")
	})))
	form := h.page.Form()
	form.Fill(projects.Fields{Title: "Build App", Description: "A todo app builder", People: "5"})

	if outcome := form.Submit(); !outcome.Submitted {
		t.Fatalf("expected submission")
	}
	if !form.Values().IsZero() {
		t.Fatalf("expected cleared fields")
	}
}

func TestInput_CustomRules(t *testing.T) {
	rules := projects.DefaultRules()
	rules.People.Max = nil
	h := newHarness(t, projects.WithRules(rules))
	form := h.page.Form()
	form.Fill(projects.Fields{Title: "Build App", Description: "A todo app builder", People: "42"})

	if outcome := form.Submit(); !outcome.Submitted {
		t.Fatalf("expected submission without an upper bound, got %v", outcome.Result.Fields)
	}
}

func TestInput_SubmitPreventsDefault(t *testing.T) {
	h := newHarness(t)
	form := h.page.Form()

	event := dom.NewEvent(dom.EventSubmit, form.Element())
	if h.page.Events().Dispatch(event) {
		t.Fatalf("expected default action to be prevented")
	}
	if !event.DefaultPrevented() {
		t.Fatalf("expected PreventDefault")
	}
	if got := h.page.Events().Listeners(form.Element(), dom.EventSubmit); got != 1 {
		t.Fatalf("expected exactly one submit listener, got %d", got)
	}
}
