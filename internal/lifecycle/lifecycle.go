// Package lifecycle provides scoped disposal handles. Components that subscribe
// to another component's events keep the returned handles in a Store and
// release them together when they are torn down.
package lifecycle

import "sync"

// Disposable is anything holding a resource that must be released exactly once.
type Disposable interface {
	Dispose()
}

// Func adapts a plain function to Disposable. The function runs at most once.
func Func(fn func()) Disposable {
	return &funcDisposable{fn: fn}
}

type funcDisposable struct {
	once sync.Once
	fn   func()
}

func (f *funcDisposable) Dispose() {
	f.once.Do(func() {
		if f.fn != nil {
			f.fn()
		}
	})
}

// None is a Disposable that does nothing.
var None Disposable = Func(nil)

// Store collects disposables and releases them in reverse registration order.
// A disposed Store disposes anything added to it afterwards immediately, so
// late subscriptions cannot outlive their owner.
type Store struct {
	items    []Disposable
	disposed bool
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Add registers d with the store and returns it for chaining.
func (s *Store) Add(d Disposable) Disposable {
	if d == nil {
		return d
	}
	if s.disposed {
		d.Dispose()
		return d
	}
	s.items = append(s.items, d)
	return d
}

// Len reports how many disposables are currently held.
func (s *Store) Len() int {
	return len(s.items)
}

// Disposed reports whether Dispose has been called.
func (s *Store) Disposed() bool {
	return s.disposed
}

// Clear releases everything held so far but leaves the store usable.
func (s *Store) Clear() {
	items := s.items
	s.items = nil
	for i := len(items) - 1; i >= 0; i-- {
		items[i].Dispose()
	}
}

// Dispose releases everything held and marks the store disposed. Safe to call
// more than once.
func (s *Store) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.Clear()
}
