package collection

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/henderiw/intervaltable/pkg/interval"
	"github.com/henderiw/intervaltable/pkg/source"
	"github.com/stretchr/testify/assert"
)

var (
	evA = ev("a", 0, 10)
	evB = ev("b", 5, 15)
	evC = ev("c", 20, 30)
)

func example() *Collection[source.Event] {
	return newEvents(interval.FromSource(evC), interval.FromSource(evA), interval.FromSource(evB))
}

// randomEvents returns n non empty intervals starting in [0, 200).
func randomEvents(seed int64, n int) *Collection[source.Event] {
	rnd := rand.New(rand.NewSource(seed))
	c := New[source.Event]()
	for i := 0; i < n; i++ {
		start := rnd.Intn(200)
		c.Add(iv(fmt.Sprintf("e%d", i), start, start+1+rnd.Intn(30)))
	}
	return c
}

func TestMergeIntersectingIntervals(t *testing.T) {
	cases := map[string]struct {
		collection *Collection[source.Event]
		expected   []interval.Interval[source.Event]
	}{
		"Empty": {
			collection: New[source.Event](),
			expected:   []interval.Interval[source.Event]{},
		},
		"Example": {
			collection: example(),
			expected: []interval.Interval[source.Event]{
				interval.New(at(0), at(15), evA.MergeSource(evB)),
				interval.FromSource(evC),
			},
		},
		"NoOverlap": {
			collection: newEvents(iv("c", 20, 30), iv("a", 0, 10), iv("b", 10, 20)),
			expected:   []interval.Interval[source.Event]{iv("a", 0, 10), iv("b", 10, 20), iv("c", 20, 30)},
		},
		"Contained": {
			collection: newEvents(iv("a", 0, 10), iv("b", 2, 3), iv("c", 5, 20)),
			expected: []interval.Interval[source.Event]{
				interval.New(at(0), at(20), ev("a", 0, 10).MergeSource(ev("b", 2, 3)).MergeSource(ev("c", 5, 20))),
			},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			before := tc.collection.Intervals()
			got := tc.collection.MergeIntersectingIntervals()
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("%s: -want, +got:\n%s", name, diff)
			}
			if diff := cmp.Diff(before, tc.collection.Intervals()); diff != "" {
				t.Errorf("%s: collection changed:\n%s", name, diff)
			}
		})
	}
}

func TestMergeIntersectingIntervalsProperties(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		t.Run(fmt.Sprintf("Seed%d", seed), func(t *testing.T) {
			c := randomEvents(seed, 60)
			out := c.MergeIntersectingIntervals()
			assert.LessOrEqual(t, len(out), c.Count())

			for i := 1; i < len(out); i++ {
				assert.False(t, out[i-1].Start().After(out[i].Start()), "not sorted at %d", i)
				assert.False(t, out[i-1].Overlaps(out[i]), "overlap at %d", i)
			}

			for _, in := range c.Intervals() {
				covering := 0
				for _, o := range out {
					if !in.Start().Before(o.Start()) && !in.End().After(o.End()) {
						covering++
					}
				}
				assert.Equal(t, 1, covering, "%s covered %d times", in, covering)
			}

			again := newEvents(out...).MergeIntersectingIntervals()
			if diff := cmp.Diff(out, again); diff != "" {
				t.Errorf("not idempotent, -want, +got:\n%s", diff)
			}
		})
	}
}

func TestMergeNonIntersectingIntervals(t *testing.T) {
	cases := map[string]struct {
		collection *Collection[source.Event]
		expected   []interval.Interval[source.Event]
	}{
		"Empty": {
			collection: New[source.Event](),
			expected:   []interval.Interval[source.Event]{},
		},
		"Example": {
			collection: example(),
			expected: []interval.Interval[source.Event]{
				interval.New(at(0), at(15), evA),
				interval.FromSource(evC),
			},
		},
		"PassThrough": {
			collection: newEvents(iv("b", 10, 20), iv("a", 0, 10)),
			expected:   []interval.Interval[source.Event]{iv("a", 0, 10), iv("b", 10, 20)},
		},
		"Run": {
			collection: newEvents(iv("a", 0, 10), iv("b", 5, 12), iv("c", 11, 30), iv("d", 40, 50)),
			expected: []interval.Interval[source.Event]{
				interval.New(at(0), at(30), ev("a", 0, 10)),
				iv("d", 40, 50),
			},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tc.expected, tc.collection.MergeNonIntersectingIntervals()); diff != "" {
				t.Errorf("%s: -want, +got:\n%s", name, diff)
			}
		})
	}
}

func TestGetIntersectingIntervals(t *testing.T) {
	cases := map[string]struct {
		collection *Collection[source.Event]
		expected   []interval.Interval[source.Event]
	}{
		"Empty": {
			collection: New[source.Event](),
			expected:   []interval.Interval[source.Event]{},
		},
		"Example": {
			collection: example(),
			expected: []interval.Interval[source.Event]{
				interval.FromSource(evA),
				interval.FromSource(evB),
				interval.FromSource(evC),
			},
		},
		"TrailingInterval": {
			collection: newEvents(iv("c", 5, 15), iv("b", 20, 30), iv("a", 0, 10)),
			expected:   []interval.Interval[source.Event]{iv("a", 0, 10), iv("c", 5, 15), iv("b", 20, 30)},
		},
		"Chain": {
			collection: newEvents(iv("a", 0, 10), iv("b", 5, 15), iv("c", 12, 20)),
			expected:   []interval.Interval[source.Event]{iv("a", 0, 10), iv("b", 5, 15), iv("c", 12, 20)},
		},
		"Duplicates": {
			collection: newEvents(iv("a", 0, 10), iv("a", 0, 10), iv("b", 5, 15)),
			expected:   []interval.Interval[source.Event]{iv("a", 0, 10), iv("b", 5, 15)},
		},
		"TwoRuns": {
			collection: newEvents(iv("x", 40, 50), iv("a", 0, 10), iv("b", 5, 15), iv("c", 30, 45)),
			expected:   []interval.Interval[source.Event]{iv("a", 0, 10), iv("b", 5, 15), iv("c", 30, 45), iv("x", 40, 50)},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tc.expected, tc.collection.GetIntersectingIntervals()); diff != "" {
				t.Errorf("%s: -want, +got:\n%s", name, diff)
			}
		})
	}
}

func TestGetIntersectingParts(t *testing.T) {
	cases := map[string]struct {
		collection *Collection[source.Event]
		expected   []interval.Interval[source.Event]
	}{
		"Empty": {
			collection: New[source.Event](),
			expected:   []interval.Interval[source.Event]{},
		},
		"Example": {
			collection: example(),
			expected:   []interval.Interval[source.Event]{interval.New(at(5), at(10), evA)},
		},
		"Pairwise": {
			collection: newEvents(iv("a", 0, 10), iv("b", 2, 4), iv("c", 3, 12)),
			expected: []interval.Interval[source.Event]{
				interval.New(at(2), at(4), ev("a", 0, 10)),
				interval.New(at(3), at(4), ev("b", 2, 4)),
			},
		},
		"Touching": {
			collection: newEvents(iv("a", 0, 10), iv("b", 10, 20)),
			expected:   []interval.Interval[source.Event]{},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tc.expected, tc.collection.GetIntersectingParts()); diff != "" {
				t.Errorf("%s: -want, +got:\n%s", name, diff)
			}
		})
	}
}

func TestGetIntersectingPartsContained(t *testing.T) {
	c := randomEvents(42, 60)
	for _, part := range c.GetIntersectingParts() {
		assert.False(t, part.Start().After(part.End()), "%s", part)

		contributors := 0
		for _, in := range c.Intervals() {
			if !part.Start().Before(in.Start()) && !part.End().After(in.End()) {
				contributors++
			}
		}
		assert.GreaterOrEqual(t, contributors, 2, "%s", part)
	}
}
