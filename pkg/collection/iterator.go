package collection

import "github.com/henderiw/intervaltable/pkg/interval"

type Iterator[T any] struct {
	current   int
	intervals []interval.Interval[T]
}

func newIterator[T any](ivs []interval.Interval[T]) *Iterator[T] {
	return &Iterator[T]{current: -1, intervals: ivs}
}

func (r *Iterator[T]) Value() interval.Interval[T] {
	return r.intervals[r.current]
}

// Index returns the position of the current interval in the iterated view.
func (r *Iterator[T]) Index() int {
	return r.current
}

func (r *Iterator[T]) Next() bool {
	r.current++
	return r.current < len(r.intervals)
}

// Prev returns the interval visited before the current one.
func (r *Iterator[T]) Prev() (interval.Interval[T], bool) {
	if r.current < 1 {
		var iv interval.Interval[T]
		return iv, false
	}
	return r.intervals[r.current-1], true
}

// IsOverlapping reports whether the current interval overlaps the one
// visited before it.
func (r *Iterator[T]) IsOverlapping() bool {
	prev, ok := r.Prev()
	if !ok {
		return false
	}
	return prev.Overlaps(r.Value())
}
