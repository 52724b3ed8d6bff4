package source

import (
	"testing"
	"time"

	"github.com/henderiw/intervaltable/pkg/interval"
	"github.com/tj/assert"
	"k8s.io/apimachinery/pkg/labels"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func at(m int) time.Time { return t0.Add(time.Duration(m) * time.Minute) }

var (
	_ interval.Source        = Event{}
	_ interval.Labeled       = Event{}
	_ interval.Merger[Event] = Event{}
	_ interval.ValueSource   = Reading{}
	_ interval.Labeled       = Reading{}
)

func TestEventMergeSource(t *testing.T) {
	cases := map[string]struct {
		a, b           Event
		expectedStart  time.Time
		expectedEnd    time.Time
		expectedLabels labels.Set
	}{
		"Overlap": {
			a:              NewEvent("a", at(0), at(10), labels.Set{"room": "1"}),
			b:              NewEvent("b", at(5), at(15), labels.Set{"host": "x"}),
			expectedStart:  at(0),
			expectedEnd:    at(15),
			expectedLabels: labels.Set{"room": "1", "host": "x"},
		},
		"OtherWinsConflict": {
			a:              NewEvent("a", at(5), at(10), labels.Set{"room": "1"}),
			b:              NewEvent("b", at(0), at(7), labels.Set{"room": "2"}),
			expectedStart:  at(0),
			expectedEnd:    at(10),
			expectedLabels: labels.Set{"room": "2"},
		},
		"NilLabels": {
			a:              NewEvent("a", at(0), at(10), nil),
			b:              NewEvent("b", at(5), at(15), nil),
			expectedStart:  at(0),
			expectedEnd:    at(15),
			expectedLabels: labels.Set{},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := tc.a.MergeSource(tc.b)
			assert.Equal(t, "a", got.Name())
			assert.True(t, tc.expectedStart.Equal(got.StartTime()))
			assert.True(t, tc.expectedEnd.Equal(got.EndTime()))
			assert.Equal(t, tc.expectedLabels.String(), got.Labels().String())
		})
	}
}

func TestEventEqual(t *testing.T) {
	a := NewEvent("a", at(0), at(10), labels.Set{"room": "1"})

	assert.True(t, a.Equal(NewEvent("a", at(0), at(10), labels.Set{"room": "1"})))
	assert.False(t, a.Equal(NewEvent("b", at(0), at(10), labels.Set{"room": "1"})))
	assert.False(t, a.Equal(NewEvent("a", at(0), at(10), labels.Set{"room": "2"})))
}

func TestReading(t *testing.T) {
	r := NewReading(at(0), at(10), 21.5, labels.Set{"sensor": "t1"})

	assert.Equal(t, 21.5, r.Value())
	assert.True(t, r.Equal(NewReading(at(0), at(10), 21.5, labels.Set{"sensor": "t1"})))
	assert.False(t, r.Equal(NewReading(at(0), at(10), 21.6, labels.Set{"sensor": "t1"})))

	iv := interval.FromSource(r)
	assert.True(t, at(0).Equal(iv.Start()))
	assert.True(t, at(10).Equal(iv.End()))
}
