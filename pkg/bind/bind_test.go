package bind_test

import (
	"sync"
	"testing"

	"golang.org/x/net/html"

	"github.com/goliatone/go-formview/pkg/bind"
	"github.com/goliatone/go-formview/pkg/dom"
)

type counter struct {
	name  string
	seen  []string
	click bind.Method[*counter]
}

func (c *counter) handleClick(e *dom.Event) {
	c.seen = append(c.seen, c.name+":"+e.Type)
}

func (c *counter) clickHandler() *bind.Handler {
	return c.click.For(c, (*counter).handleClick)
}

func TestMethod_IsMemoized(t *testing.T) {
	c := &counter{name: "a"}
	if c.click.Bound() {
		t.Fatalf("handler must not exist before first access")
	}

	first := c.clickHandler()
	second := c.clickHandler()
	if first != second {
		t.Fatalf("expected the same handler on repeated access")
	}
	if !c.click.Bound() {
		t.Fatalf("handler should be bound after first access")
	}
}

func TestMethod_KeepsReceiverWhenDetached(t *testing.T) {
	a := &counter{name: "a"}
	b := &counter{name: "b"}

	var listener dom.Listener = a.clickHandler()
	listener.HandleEvent(dom.NewEvent("click", nil))
	b.clickHandler().HandleEvent(dom.NewEvent("click", nil))

	if len(a.seen) != 1 || a.seen[0] != "a:click" {
		t.Fatalf("unexpected receiver a calls %v", a.seen)
	}
	if len(b.seen) != 1 || b.seen[0] != "b:click" {
		t.Fatalf("unexpected receiver b calls %v", b.seen)
	}
	if a.clickHandler() == b.clickHandler() {
		t.Fatalf("handlers of different instances must differ")
	}
}

func TestMethod_RegistersOnceOnTarget(t *testing.T) {
	c := &counter{name: "c"}
	target := dom.NewEventTarget()
	node := &html.Node{Type: html.ElementNode, Data: "button"}

	target.AddEventListener(node, "click", c.clickHandler())
	target.AddEventListener(node, "click", c.clickHandler())
	target.Dispatch(dom.NewEvent("click", node))

	if len(c.seen) != 1 {
		t.Fatalf("expected a single invocation, got %d", len(c.seen))
	}
}

func TestMethod_ConcurrentFirstAccess(t *testing.T) {
	c := &counter{name: "c"}
	handlers := make([]*bind.Handler, 16)

	var wg sync.WaitGroup
	for i := range handlers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			handlers[i] = c.clickHandler()
		}(i)
	}
	wg.Wait()

	for _, h := range handlers {
		if h != handlers[0] {
			t.Fatalf("expected a single handler across goroutines")
		}
	}
}

func TestHandler_NilIsNoop(t *testing.T) {
	var h *bind.Handler
	h.HandleEvent(dom.NewEvent("click", nil))
}
