// Package bind produces event listeners that stay tied to the instance they
// were created from, no matter where they are later registered or invoked.
//
// A Method is stored on the owning struct next to the state it acts on:
//
//	type Form struct {
//	    submit bind.Method[*Form]
//	}
//
//	func (f *Form) submitHandler() *bind.Handler {
//	    return f.submit.For(f, (*Form).handleSubmit)
//	}
//
// The first call materialises the bound handler; later calls return the same
// pointer, so registering it repeatedly on one target is a no-op.
package bind

import (
	"sync"
	"sync/atomic"

	"github.com/goliatone/go-formview/pkg/dom"
)

// Handler is a listener bound to a fixed receiver.
type Handler struct {
	fn func(*dom.Event)
}

// HandleEvent implements dom.Listener.
func (h *Handler) HandleEvent(e *dom.Event) {
	if h == nil || h.fn == nil {
		return
	}
	h.fn(e)
}

// Method caches the bound form of one method for one receiver. The zero
// value is ready to use and must not be copied after first use.
type Method[R any] struct {
	once    sync.Once
	handler atomic.Pointer[Handler]
}

// For returns the handler invoking method with recv. Only the first call's
// arguments are used; every call returns the same *Handler.
func (m *Method[R]) For(recv R, method func(R, *dom.Event)) *Handler {
	m.once.Do(func() {
		m.handler.Store(&Handler{fn: func(e *dom.Event) { method(recv, e) }})
	})
	return m.handler.Load()
}

// Bound reports whether For has materialised the handler yet.
func (m *Method[R]) Bound() bool {
	return m.handler.Load() != nil
}
