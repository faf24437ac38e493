// Package event implements typed, synchronous observer lists. Subscribing
// returns a lifecycle.Disposable that removes the listener again.
package event

import "github.com/papapumpkin/chronon/internal/lifecycle"

// Event is the subscribe side of an Emitter, handed to collaborators that may
// listen but not fire.
type Event[T any] func(fn func(T)) lifecycle.Disposable

type listener[T any] struct {
	fn      func(T)
	removed bool
}

// Emitter delivers values to its listeners in subscription order. Listeners
// run on the caller's goroutine and must not block.
type Emitter[T any] struct {
	listeners []*listener[T]
}

// Subscribe registers fn and returns a handle that removes it.
func (e *Emitter[T]) Subscribe(fn func(T)) lifecycle.Disposable {
	l := &listener[T]{fn: fn}
	e.listeners = append(e.listeners, l)
	return lifecycle.Func(func() { e.remove(l) })
}

// Event returns the subscribe-only view of e.
func (e *Emitter[T]) Event() Event[T] {
	return e.Subscribe
}

// Fire delivers v to every listener registered before the call. Listeners
// removed while firing are skipped.
func (e *Emitter[T]) Fire(v T) {
	snapshot := e.listeners
	for _, l := range snapshot {
		if l.removed {
			continue
		}
		l.fn(v)
	}
}

// Len reports the number of live listeners.
func (e *Emitter[T]) Len() int {
	return len(e.listeners)
}

// Dispose drops every listener.
func (e *Emitter[T]) Dispose() {
	for _, l := range e.listeners {
		l.removed = true
	}
	e.listeners = nil
}

func (e *Emitter[T]) remove(target *listener[T]) {
	target.removed = true
	// A Fire in progress still iterates the old backing array.
	kept := make([]*listener[T], 0, len(e.listeners))
	for _, l := range e.listeners {
		if l != target {
			kept = append(kept, l)
		}
	}
	e.listeners = kept
}
