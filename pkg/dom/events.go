package dom

import (
	"reflect"
	"sync"

	"golang.org/x/net/html"
)

// EventSubmit is the event type dispatched when a form is submitted.
const EventSubmit = "submit"

// Event is a synchronous notification dispatched to listeners registered on
// its target node.
type Event struct {
	Type   string
	Target *html.Node

	defaultPrevented bool
}

// NewEvent builds an event of the given type aimed at target.
func NewEvent(eventType string, target *html.Node) *Event {
	return &Event{Type: eventType, Target: target}
}

// PreventDefault cancels the default action that would follow dispatch.
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether a listener called PreventDefault.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// Listener receives dispatched events. Registration identity is the listener
// value itself, so pointer listeners are de-duplicated per node and type.
type Listener interface {
	HandleEvent(*Event)
}

// ListenerFunc adapts a plain function to Listener. Function values are not
// comparable, so each registration of a ListenerFunc is kept; use a pointer
// listener when duplicate suppression matters.
type ListenerFunc func(*Event)

func (f ListenerFunc) HandleEvent(e *Event) { f(e) }

type registration struct {
	listener Listener
	key      any
}

// EventTarget keeps listener registrations keyed by node and event type and
// dispatches events to them in registration order.
type EventTarget struct {
	mu        sync.Mutex
	listeners map[*html.Node]map[string][]registration
}

// NewEventTarget returns an empty registry.
func NewEventTarget() *EventTarget {
	return &EventTarget{listeners: make(map[*html.Node]map[string][]registration)}
}

// AddEventListener registers l for eventType on node. Registering the same
// comparable listener twice for the same node and type is a no-op.
func (t *EventTarget) AddEventListener(node *html.Node, eventType string, l Listener) {
	if node == nil || l == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	byType, ok := t.listeners[node]
	if !ok {
		byType = make(map[string][]registration)
		t.listeners[node] = byType
	}
	key := listenerKey(l)
	if key != nil {
		for _, reg := range byType[eventType] {
			if reg.key == key {
				return
			}
		}
	}
	byType[eventType] = append(byType[eventType], registration{listener: l, key: key})
}

// RemoveEventListener drops a comparable listener registration.
func (t *EventTarget) RemoveEventListener(node *html.Node, eventType string, l Listener) {
	key := listenerKey(l)
	if key == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	regs := t.listeners[node][eventType]
	for i, reg := range regs {
		if reg.key == key {
			t.listeners[node][eventType] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

// Listeners returns how many listeners are registered for eventType on node.
func (t *EventTarget) Listeners(node *html.Node, eventType string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.listeners[node][eventType])
}

// Dispatch runs every listener registered for the event's type on its target,
// to completion and in order. It returns false when a listener prevented the
// default action.
func (t *EventTarget) Dispatch(e *Event) bool {
	t.mu.Lock()
	regs := append([]registration(nil), t.listeners[e.Target][e.Type]...)
	t.mu.Unlock()

	for _, reg := range regs {
		reg.listener.HandleEvent(e)
	}
	return !e.defaultPrevented
}

// listenerKey returns the identity used for duplicate detection, or nil for
// listeners that cannot be compared: function values, and structs whose
// dynamic contents (e.g. a slice behind an interface field) are not
// comparable.
func listenerKey(l Listener) any {
	if _, isFunc := l.(ListenerFunc); isFunc {
		return nil
	}
	if !reflect.ValueOf(l).Comparable() {
		return nil
	}
	return l
}
