package dom_test

import (
	"testing"

	"golang.org/x/net/html"

	"github.com/goliatone/go-formview/pkg/dom"
)

type countingListener struct {
	calls   int
	prevent bool
}

func (l *countingListener) HandleEvent(e *dom.Event) {
	l.calls++
	if l.prevent {
		e.PreventDefault()
	}
}

func TestEventTarget_DispatchInOrder(t *testing.T) {
	target := dom.NewEventTarget()
	node := &html.Node{Type: html.ElementNode, Data: "form"}

	var order []string
	target.AddEventListener(node, dom.EventSubmit, dom.ListenerFunc(func(*dom.Event) { order = append(order, "a") }))
	target.AddEventListener(node, dom.EventSubmit, dom.ListenerFunc(func(*dom.Event) { order = append(order, "b") }))
	target.AddEventListener(node, "click", dom.ListenerFunc(func(*dom.Event) { order = append(order, "click") }))

	if !target.Dispatch(dom.NewEvent(dom.EventSubmit, node)) {
		t.Fatalf("default should not be prevented")
	}
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("unexpected dispatch order %v", order)
	}
}

func TestEventTarget_DeduplicatesPointerListeners(t *testing.T) {
	target := dom.NewEventTarget()
	node := &html.Node{Type: html.ElementNode, Data: "form"}
	l := &countingListener{prevent: true}

	target.AddEventListener(node, dom.EventSubmit, l)
	target.AddEventListener(node, dom.EventSubmit, l)
	if got := target.Listeners(node, dom.EventSubmit); got != 1 {
		t.Fatalf("expected 1 registration, got %d", got)
	}

	ev := dom.NewEvent(dom.EventSubmit, node)
	if target.Dispatch(ev) {
		t.Fatalf("expected default to be prevented")
	}
	if !ev.DefaultPrevented() {
		t.Fatalf("event should report prevented default")
	}
	if l.calls != 1 {
		t.Fatalf("expected one call, got %d", l.calls)
	}

	target.RemoveEventListener(node, dom.EventSubmit, l)
	if got := target.Listeners(node, dom.EventSubmit); got != 0 {
		t.Fatalf("expected listener removed, got %d", got)
	}
}

func TestEventTarget_IgnoresOtherTargets(t *testing.T) {
	target := dom.NewEventTarget()
	a := &html.Node{Type: html.ElementNode, Data: "form"}
	b := &html.Node{Type: html.ElementNode, Data: "form"}
	l := &countingListener{}
	target.AddEventListener(a, dom.EventSubmit, l)

	target.Dispatch(dom.NewEvent(dom.EventSubmit, b))
	if l.calls != 0 {
		t.Fatalf("listener on another node must not run")
	}
}

type taggedListener struct {
	tag any
}

func (taggedListener) HandleEvent(*dom.Event) {}

func TestEventTarget_ValueListenersWithUncomparableContents(t *testing.T) {
	target := dom.NewEventTarget()
	node := &html.Node{Type: html.ElementNode, Data: "form"}

	target.AddEventListener(node, dom.EventSubmit, taggedListener{tag: "a"})
	target.AddEventListener(node, dom.EventSubmit, taggedListener{tag: "a"})
	if got := target.Listeners(node, dom.EventSubmit); got != 1 {
		t.Fatalf("expected equal value listeners to collapse, got %d", got)
	}

	target.AddEventListener(node, dom.EventSubmit, taggedListener{tag: []int{1}})
	target.AddEventListener(node, dom.EventSubmit, taggedListener{tag: []int{1}})
	if got := target.Listeners(node, dom.EventSubmit); got != 3 {
		t.Fatalf("expected uncomparable listeners to register each time, got %d", got)
	}

	target.RemoveEventListener(node, dom.EventSubmit, taggedListener{tag: []int{1}})
	target.RemoveEventListener(node, dom.EventSubmit, taggedListener{tag: "a"})
	if got := target.Listeners(node, dom.EventSubmit); got != 2 {
		t.Fatalf("expected only the comparable listener removed, got %d", got)
	}
}
