package collection

import (
	"fmt"

	"github.com/henderiw/intervaltable/pkg/interval"
)

type valueFn[T any] func(src T) float64

// FindIntervalsByValue returns the stored intervals whose reading equals
// target exactly. The payload type must implement interval.ValueSource.
func (r *Collection[T]) FindIntervalsByValue(target float64) ([]interval.Interval[T], error) {
	fn, err := r.valueFn()
	if err != nil {
		return nil, err
	}
	return filterByValue(r.snapshot(), fn, target), nil
}

// FindUniqueIntervalsByValueSequence returns, in insertion order, the first
// interval of every run of consecutive intervals reading target.
func (r *Collection[T]) FindUniqueIntervalsByValueSequence(target float64) ([]interval.Interval[T], error) {
	fn, err := r.valueFn()
	if err != nil {
		return nil, err
	}
	return uniqueByValueSequence(r.snapshot(), fn, target), nil
}

// FindUniqueIntervalsByFirstValueSequence run-length compresses the stored
// intervals by reading: an interval is returned when its reading differs
// from the last returned one.
func (r *Collection[T]) FindUniqueIntervalsByFirstValueSequence() ([]interval.Interval[T], error) {
	fn, err := r.valueFn()
	if err != nil {
		return nil, err
	}
	return uniqueByFirstValueSequence(r.snapshot(), fn), nil
}

func (r *Collection[T]) valueFn() (valueFn[T], error) {
	if !implements[T, interval.ValueSource]() {
		return nil, fmt.Errorf("%w: %s has no numeric value", ErrUnsupportedPayloadType, typeName[T]())
	}
	return func(src T) float64 {
		return any(src).(interval.ValueSource).Value()
	}, nil
}

// ValueCollection is a Collection over numeric payloads. Its value queries
// cannot fail.
type ValueCollection[T interval.ValueSource] struct {
	*Collection[T]
}

func NewValueCollection[T interval.ValueSource](opts ...Option) *ValueCollection[T] {
	return &ValueCollection[T]{Collection: New[T](opts...)}
}

func (r *ValueCollection[T]) FindIntervalsByValue(target float64) []interval.Interval[T] {
	return filterByValue(r.snapshot(), value[T], target)
}

func (r *ValueCollection[T]) FindUniqueIntervalsByValueSequence(target float64) []interval.Interval[T] {
	return uniqueByValueSequence(r.snapshot(), value[T], target)
}

func (r *ValueCollection[T]) FindUniqueIntervalsByFirstValueSequence() []interval.Interval[T] {
	return uniqueByFirstValueSequence(r.snapshot(), value[T])
}

func value[T interval.ValueSource](src T) float64 { return src.Value() }

func filterByValue[T any](ivs []interval.Interval[T], fn valueFn[T], target float64) []interval.Interval[T] {
	out := []interval.Interval[T]{}
	for _, iv := range ivs {
		if fn(iv.Source()) == target {
			out = append(out, iv)
		}
	}
	return out
}

func uniqueByValueSequence[T any](ivs []interval.Interval[T], fn valueFn[T], target float64) []interval.Interval[T] {
	out := []interval.Interval[T]{}
	inRun := false
	for _, iv := range ivs {
		if fn(iv.Source()) != target {
			inRun = false
			continue
		}
		if !inRun {
			out = append(out, iv)
			inRun = true
		}
	}
	return out
}

func uniqueByFirstValueSequence[T any](ivs []interval.Interval[T], fn valueFn[T]) []interval.Interval[T] {
	out := []interval.Interval[T]{}
	var last float64
	for i, iv := range ivs {
		v := fn(iv.Source())
		if i > 0 && v == last {
			continue
		}
		out = append(out, iv)
		last = v
	}
	return out
}
