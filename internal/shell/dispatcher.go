package shell

import (
	"errors"
	"fmt"
	"sync"
)

// ErrHandlerPanic wraps the value recovered from a panicking handler.
var ErrHandlerPanic = errors.New("handler panicked")

// Handler reacts to one event.
type Handler func(Event) error

// FailureFunc receives the error of a failed handler.
type FailureFunc func(ev Event, err error)

// Dispatcher delivers events to subscribed handlers one at a time.
//
// A Dispatch issued while another event is being delivered, either from
// inside a handler or from another goroutine, is queued and delivered by
// the goroutine already draining the queue. Handlers therefore never run
// concurrently and never re-enter each other.
type Dispatcher struct {
	mu       sync.Mutex
	handlers map[EventKind][]Handler
	pending  []Event
	draining bool
	onError  FailureFunc
}

func NewDispatcher(onError FailureFunc) *Dispatcher {
	if onError == nil {
		onError = func(Event, error) {}
	}
	return &Dispatcher{
		handlers: make(map[EventKind][]Handler),
		onError:  onError,
	}
}

// Subscribe registers h for events of the given kind. Handlers of one kind
// run in registration order.
func (d *Dispatcher) Subscribe(kind EventKind, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[kind] = append(d.handlers[kind], h)
}

// Dispatch queues ev and, unless a delivery is already in progress, drains
// the queue before returning.
func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.Lock()
	d.pending = append(d.pending, ev)
	if d.draining {
		d.mu.Unlock()
		return
	}
	d.draining = true
	d.mu.Unlock()

	// A panicking failure hook must not leave the queue marked as draining.
	drained := false
	defer func() {
		if drained {
			return
		}
		d.mu.Lock()
		d.draining = false
		d.mu.Unlock()
	}()

	for {
		d.mu.Lock()
		if len(d.pending) == 0 {
			d.pending = nil
			d.draining = false
			d.mu.Unlock()
			drained = true
			return
		}
		next := d.pending[0]
		d.pending[0] = nil
		d.pending = d.pending[1:]
		handlers := d.handlers[next.Kind()]
		d.mu.Unlock()

		d.deliver(next, handlers)
	}
}

func (d *Dispatcher) deliver(ev Event, handlers []Handler) {
	for _, h := range handlers {
		if err := call(h, ev); err != nil {
			d.onError(ev, err)
		}
	}
}

// call runs h, turning a panic into an error so the rest of the queue is
// still delivered.
func call(h Handler, ev Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: %w: %v", ev.Kind(), ErrHandlerPanic, r)
		}
	}()
	return h(ev)
}
