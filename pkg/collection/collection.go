package collection

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/henderiw/intervaltable/pkg/interval"
	"github.com/rs/zerolog"
	"k8s.io/apimachinery/pkg/labels"
)

// Collection holds intervals in insertion order. Queries never reorder or
// mutate the stored intervals, they return new slices.
type Collection[T interval.Source] struct {
	m         *sync.RWMutex
	intervals []interval.Interval[T]
	name      string
	logger    zerolog.Logger
}

func New[T interval.Source](opts ...Option) *Collection[T] {
	o := newOptions(opts)
	return &Collection[T]{
		m:         new(sync.RWMutex),
		intervals: []interval.Interval[T]{},
		name:      o.name,
		logger: o.logger.With().
			Str("component", "interval_collection").
			Str("name", o.name).
			Logger(),
	}
}

// NewFrom creates a collection and ingests items through AddTyped. Items
// that are not a T are skipped and reported in the joined error.
func NewFrom[T interval.Source](items []interval.Source, opts ...Option) (*Collection[T], error) {
	r := New[T](opts...)

	var errm error
	for i, item := range items {
		if err := r.AddTyped(item); err != nil {
			errm = errors.Join(errm, fmt.Errorf("item %d: %w", i, err))
		}
	}
	return r, errm
}

func (r *Collection[T]) Name() string { return r.name }

func (r *Collection[T]) Add(iv interval.Interval[T]) {
	r.m.Lock()
	defer r.m.Unlock()

	r.intervals = append(r.intervals, iv)
}

func (r *Collection[T]) AddSpan(start, end time.Time, src T) {
	r.Add(interval.New(start, end, src))
}

// AddSource adds an interval bounded by the payload's own start and end.
func (r *Collection[T]) AddSource(src T) {
	r.Add(interval.FromSource(src))
}

// AddTyped adds item when its dynamic type is T, otherwise it returns
// ErrTypeMismatch and the collection is left unchanged.
func (r *Collection[T]) AddTyped(item interval.Source) error {
	src, ok := item.(T)
	if !ok {
		r.logger.Debug().
			Str("got", fmt.Sprintf("%T", item)).
			Str("want", typeName[T]()).
			Msg("rejected payload")
		return fmt.Errorf("%w: got %T, want %s", ErrTypeMismatch, item, typeName[T]())
	}
	r.AddSource(src)
	return nil
}

// Intervals returns a copy of the stored intervals in insertion order.
func (r *Collection[T]) Intervals() []interval.Interval[T] {
	return r.snapshot()
}

// Free returns the gaps between the stored intervals within their
// bounding span. Use Intervals for the stored intervals themselves.
func (r *Collection[T]) Free() []interval.Span {
	return interval.FreeIntervals(r.snapshot())
}

func (r *Collection[T]) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return len(r.intervals)
}

// Iterate walks a snapshot of the intervals in insertion order.
func (r *Collection[T]) Iterate() *Iterator[T] {
	return newIterator(r.snapshot())
}

// IterateSorted walks a snapshot of the intervals sorted by start. Intervals
// with equal starts keep their insertion order.
func (r *Collection[T]) IterateSorted() *Iterator[T] {
	return newIterator(r.sorted())
}

// FindIntersects returns the stored intervals overlapping target.
func (r *Collection[T]) FindIntersects(target interval.Interval[T]) []interval.Interval[T] {
	return r.filter(func(iv interval.Interval[T]) bool {
		return iv.Overlaps(target)
	})
}

// FindIntervalsContainingPoint returns the stored intervals containing t.
func (r *Collection[T]) FindIntervalsContainingPoint(t time.Time) []interval.Interval[T] {
	return r.filter(func(iv interval.Interval[T]) bool {
		return iv.ContainsPoint(t)
	})
}

// FindByLabel returns the stored intervals whose payload labels match the
// selector. The payload type must implement interval.Labeled.
func (r *Collection[T]) FindByLabel(selector labels.Selector) ([]interval.Interval[T], error) {
	if !implements[T, interval.Labeled]() {
		return nil, fmt.Errorf("%w: %s does not carry labels", ErrUnsupportedPayloadType, typeName[T]())
	}
	return r.filter(func(iv interval.Interval[T]) bool {
		l, ok := any(iv.Source()).(interval.Labeled)
		return ok && selector.Matches(l.Labels())
	}), nil
}

func (r *Collection[T]) filter(fn func(iv interval.Interval[T]) bool) []interval.Interval[T] {
	r.m.RLock()
	defer r.m.RUnlock()

	ivs := []interval.Interval[T]{}
	for _, iv := range r.intervals {
		if fn(iv) {
			ivs = append(ivs, iv)
		}
	}
	return ivs
}

func (r *Collection[T]) snapshot() []interval.Interval[T] {
	r.m.RLock()
	defer r.m.RUnlock()

	ivs := make([]interval.Interval[T], len(r.intervals))
	copy(ivs, r.intervals)
	return ivs
}

func (r *Collection[T]) sorted() []interval.Interval[T] {
	ivs := r.snapshot()
	sort.SliceStable(ivs, func(i, j int) bool {
		return ivs[i].Start().Before(ivs[j].Start())
	})
	return ivs
}

// implements reports whether the type T satisfies the interface I. This
// works for type-erased T as well, as the check is on the type and not on
// a value.
func implements[T, I any]() bool {
	return reflect.TypeOf((*T)(nil)).Elem().Implements(reflect.TypeOf((*I)(nil)).Elem())
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
