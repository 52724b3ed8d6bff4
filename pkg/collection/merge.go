package collection

import (
	"github.com/henderiw/intervaltable/pkg/interval"
)

// MergeIntersectingIntervals returns the union of the stored intervals:
// every maximal run of overlapping intervals collapses into one interval,
// payloads combined by interval.MergeWith. The result is sorted by start
// and no two results overlap.
func (r *Collection[T]) MergeIntersectingIntervals() []interval.Interval[T] {
	sorted := r.sorted()
	out := make([]interval.Interval[T], 0, len(sorted))
	if len(sorted) == 0 {
		return out
	}

	current := sorted[0]
	for _, next := range sorted[1:] {
		if current.Overlaps(next) {
			current = current.MergeWith(next)
			continue
		}
		out = append(out, current)
		current = next
	}
	out = append(out, current)

	r.logger.Debug().Int("in", len(sorted)).Int("out", len(out)).Msg("merged intersecting intervals")
	return out
}

// MergeNonIntersectingIntervals sweeps like MergeIntersectingIntervals but
// an overlapping run keeps the payload of its first interval only, the
// payloads of the intervals folded into it are dropped. Intervals that do
// not overlap pass through unchanged.
func (r *Collection[T]) MergeNonIntersectingIntervals() []interval.Interval[T] {
	sorted := r.sorted()
	out := make([]interval.Interval[T], 0, len(sorted))
	if len(sorted) == 0 {
		return out
	}

	current := sorted[0]
	for _, next := range sorted[1:] {
		if current.Overlaps(next) {
			start, end := current.Start(), current.End()
			if next.Start().Before(start) {
				start = next.Start()
			}
			if next.End().After(end) {
				end = next.End()
			}
			current = interval.New(start, end, current.Source())
			continue
		}
		out = append(out, current)
		current = next
	}
	out = append(out, current)

	r.logger.Debug().Int("in", len(sorted)).Int("out", len(out)).Msg("merged non intersecting intervals")
	return out
}

// GetIntersectingIntervals returns the stored intervals taking part in an
// overlap during a start ordered sweep, without duplicates. The sweep keeps
// a running merge to detect overlaps that continue a run, the merge itself
// is never returned. The interval the sweep ends on is always returned
// unless it was folded into a run.
func (r *Collection[T]) GetIntersectingIntervals() []interval.Interval[T] {
	sorted := r.sorted()
	out := make([]interval.Interval[T], 0, len(sorted))
	if len(sorted) == 0 {
		return out
	}

	current := sorted[0]
	merged := false
	for _, next := range sorted[1:] {
		if current.Overlaps(next) {
			if !merged {
				out = appendDistinct(out, current)
			}
			out = appendDistinct(out, next)
			current = current.MergeWith(next)
			merged = true
			continue
		}
		current, merged = next, false
	}
	if !merged {
		out = appendDistinct(out, current)
	}

	r.logger.Debug().Int("in", len(sorted)).Int("out", len(out)).Msg("collected intersecting intervals")
	return out
}

// GetIntersectingParts returns, for every pair of start ordered neighbours
// that overlap, the overlapping region carrying the payload of the earlier
// interval. Overlaps are reported pairwise, not chained.
func (r *Collection[T]) GetIntersectingParts() []interval.Interval[T] {
	out := []interval.Interval[T]{}

	iter := r.IterateSorted()
	for iter.Next() {
		if !iter.IsOverlapping() {
			continue
		}
		current, _ := iter.Prev()
		next := iter.Value()

		start, end := current.Start(), current.End()
		if next.Start().After(start) {
			start = next.Start()
		}
		if next.End().Before(end) {
			end = next.End()
		}
		out = append(out, interval.New(start, end, current.Source()))
	}

	r.logger.Debug().Int("out", len(out)).Msg("collected intersecting parts")
	return out
}

func appendDistinct[T any](ivs []interval.Interval[T], iv interval.Interval[T]) []interval.Interval[T] {
	for _, existing := range ivs {
		if existing.Equal(iv) {
			return ivs
		}
	}
	return append(ivs, iv)
}
