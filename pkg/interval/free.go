package interval

import (
	"fmt"
	"sort"
	"time"
)

// Span is a half-open range without a payload, used for gaps.
type Span struct {
	start time.Time
	end   time.Time
}

func SpanFrom(start, end time.Time) Span {
	return Span{start: start, end: end}
}

func (r Span) Start() time.Time { return r.start }
func (r Span) End() time.Time   { return r.end }

func (r Span) Duration() time.Duration { return r.end.Sub(r.start) }

func (r Span) Equal(other Span) bool {
	return r.start.Equal(other.start) && r.end.Equal(other.end)
}

func (r Span) String() string {
	return fmt.Sprintf("[%s, %s)", r.start.Format(time.RFC3339), r.end.Format(time.RFC3339))
}

// FreeIntervals returns the sub-ranges of the bounding span
// [min start, max end) of ivs that no interval covers, sorted ascending.
func FreeIntervals[T any](ivs []Interval[T]) []Span {
	free := []Span{}
	if len(ivs) < 2 {
		return free
	}

	// Always sort a copy, the caller's slice keeps its order.
	sorted := make([]Interval[T], len(ivs))
	copy(sorted, ivs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].start.Before(sorted[j].start)
	})

	covered := sorted[0].end
	for _, iv := range sorted[1:] {
		switch {
		case covered.Before(iv.start):
			// gap between what is covered so far and iv.
			//
			//  covered      iv
			// f------t   f-----t
			free = append(free, Span{start: covered, end: iv.start})
			covered = iv.end
		case covered.Before(iv.end):
			// iv touches or overlaps the end of the covered range.
			covered = iv.end
		default:
			// iv entirely within what is covered, nothing to do.
		}
	}
	return free
}
