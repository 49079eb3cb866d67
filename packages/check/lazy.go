package check

import "sync"

// Lazy memoizes a deferred value: the supplier runs at most once, on the
// first Value call, so a once-only-evaluable expression is never
// replayed even when a check both compares and renders it.
type Lazy[T any] struct {
	once sync.Once
	fn   func() T
	v    T
}

// Defer wraps a supplier for later, exactly-once evaluation.
func Defer[T any](fn func() T) *Lazy[T] {
	return &Lazy[T]{fn: fn}
}

// Value evaluates the supplier on first use and returns the cached
// result thereafter.
func (l *Lazy[T]) Value() T {
	l.once.Do(func() {
		l.v = l.fn()
		l.fn = nil
	})
	return l.v
}
