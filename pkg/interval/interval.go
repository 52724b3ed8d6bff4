package interval

import (
	"fmt"
	"reflect"
	"time"

	"k8s.io/apimachinery/pkg/labels"
)

// Source is the minimal payload contract of an interval.
type Source interface {
	StartTime() time.Time
	EndTime() time.Time
}

// ValueSource is a Source carrying a numeric reading.
type ValueSource interface {
	Source
	Value() float64
}

// Labeled is implemented by payloads that carry a label set.
type Labeled interface {
	Labels() labels.Set
}

// Merger combines two payloads when their intervals are merged.
type Merger[T any] interface {
	MergeSource(other T) T
}

// Interval is an immutable half-open range [start, end) carrying one payload.
type Interval[T any] struct {
	start  time.Time
	end    time.Time
	source T
}

func New[T any](start, end time.Time, src T) Interval[T] {
	return Interval[T]{
		start:  start,
		end:    end,
		source: src,
	}
}

// FromSource builds an interval bounded by the payload's own start and end.
func FromSource[T Source](src T) Interval[T] {
	return New(src.StartTime(), src.EndTime(), src)
}

func (r Interval[T]) Start() time.Time { return r.start }
func (r Interval[T]) End() time.Time   { return r.end }
func (r Interval[T]) Source() T        { return r.source }

// Duration returns end - start.
func (r Interval[T]) Duration() time.Duration { return r.end.Sub(r.start) }

// Span returns the range of r without its payload.
func (r Interval[T]) Span() Span { return Span{start: r.start, end: r.end} }

// Overlaps reports whether r and other share any point. Intervals that
// only touch at a boundary do not overlap.
func (r Interval[T]) Overlaps(other Interval[T]) bool {
	return r.start.Before(other.end) && other.start.Before(r.end)
}

// ContainsPoint reports whether start <= t < end.
func (r Interval[T]) ContainsPoint(t time.Time) bool {
	return !t.Before(r.start) && t.Before(r.end)
}

// MergeWith returns an interval spanning both r and other. The payload is
// combined through Merger when the payload implements it, otherwise the
// payload of r is kept.
func (r Interval[T]) MergeWith(other Interval[T]) Interval[T] {
	src := r.source
	if m, ok := any(r.source).(Merger[T]); ok {
		src = m.MergeSource(other.source)
	}
	return New(minTime(r.start, other.start), maxTime(r.end, other.end), src)
}

// Equal compares bounds and payload. Payloads providing an Equal(T) bool
// method are compared with it, others by deep equality.
func (r Interval[T]) Equal(other Interval[T]) bool {
	if !r.start.Equal(other.start) || !r.end.Equal(other.end) {
		return false
	}
	if eq, ok := any(r.source).(interface{ Equal(T) bool }); ok {
		return eq.Equal(other.source)
	}
	return reflect.DeepEqual(r.source, other.source)
}

func (r Interval[T]) String() string {
	return fmt.Sprintf("[%s, %s) %v", r.start.Format(time.RFC3339), r.end.Format(time.RFC3339), r.source)
}

func minTime(a, b time.Time) time.Time {
	if b.Before(a) {
		return b
	}
	return a
}

func maxTime(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}
