package source

import (
	"fmt"
	"time"

	"k8s.io/apimachinery/pkg/labels"
)

// Event is a generic labelled payload.
type Event struct {
	name   string
	start  time.Time
	end    time.Time
	labels labels.Set
}

func NewEvent(name string, start, end time.Time, l labels.Set) Event {
	return Event{
		name:   name,
		start:  start,
		end:    end,
		labels: l,
	}
}

func (r Event) Name() string         { return r.name }
func (r Event) StartTime() time.Time { return r.start }
func (r Event) EndTime() time.Time   { return r.end }
func (r Event) Labels() labels.Set   { return r.labels }
func (r Event) String() string       { return fmt.Sprintf("%s{%s}", r.name, r.labels.String()) }

func (r Event) Equal(e2 Event) bool {
	return r.name == e2.name &&
		r.start.Equal(e2.start) &&
		r.end.Equal(e2.end) &&
		r.labels.String() == e2.labels.String()
}

// MergeSource keeps the name of r, widens the time bounds and merges the
// label sets. Labels of other win on key conflicts.
func (r Event) MergeSource(other Event) Event {
	start, end := r.start, r.end
	if other.start.Before(start) {
		start = other.start
	}
	if other.end.After(end) {
		end = other.end
	}
	return Event{
		name:   r.name,
		start:  start,
		end:    end,
		labels: labels.Merge(r.labels, other.labels),
	}
}

// Reading is a numeric payload, e.g. a sensor sample held for a period.
type Reading struct {
	start  time.Time
	end    time.Time
	value  float64
	labels labels.Set
}

func NewReading(start, end time.Time, value float64, l labels.Set) Reading {
	return Reading{
		start:  start,
		end:    end,
		value:  value,
		labels: l,
	}
}

func (r Reading) StartTime() time.Time { return r.start }
func (r Reading) EndTime() time.Time   { return r.end }
func (r Reading) Value() float64       { return r.value }
func (r Reading) Labels() labels.Set   { return r.labels }
func (r Reading) String() string       { return fmt.Sprintf("%g{%s}", r.value, r.labels.String()) }

func (r Reading) Equal(e2 Reading) bool {
	return r.value == e2.value &&
		r.start.Equal(e2.start) &&
		r.end.Equal(e2.end) &&
		r.labels.String() == e2.labels.String()
}
