// Package engine implements instrumented in-place sorting algorithms.
//
// Every strategy sorts a slice in place, reports each notable comparison or
// exchange to an Observer as an Event, and returns the Counters it tallied.
// The engine never renders or sleeps; pacing belongs to the caller.
package engine

import (
	"fmt"
	"strings"
	"time"
)

// Region describes which side of Event.Boundary is known to be sorted.
type Region int

const (
	// RegionNone means the event carries no sorted boundary.
	RegionNone Region = iota
	// RegionPrefix means indices 0..Boundary are sorted. Boundary may be -1.
	RegionPrefix
	// RegionSuffix means indices Boundary..n-1 hold their final values.
	RegionSuffix
)

// Event is a transient description of sort progress at one instant.
type Event struct {
	Compared []int
	Swapped  []int
	Boundary int
	Region   Region
}

// HasBoundary reports whether the event carries a sorted boundary.
func (e Event) HasBoundary() bool {
	return e.Region != RegionNone
}

// InSorted reports whether index i falls inside the event's sorted region.
func (e Event) InSorted(i int) bool {
	switch e.Region {
	case RegionPrefix:
		return i <= e.Boundary
	case RegionSuffix:
		return i >= e.Boundary
	default:
		return false
	}
}

// String describes the event in one line, e.g. "compare 2,3" or
// "sorted <=4".
func (e Event) String() string {
	parts := make([]string, 0, 3)
	if len(e.Compared) > 0 {
		parts = append(parts, "compare "+joinIndices(e.Compared))
	}
	if len(e.Swapped) > 0 {
		parts = append(parts, "swap "+joinIndices(e.Swapped))
	}
	switch e.Region {
	case RegionPrefix:
		parts = append(parts, fmt.Sprintf("sorted <=%d", e.Boundary))
	case RegionSuffix:
		parts = append(parts, fmt.Sprintf("sorted >=%d", e.Boundary))
	}
	if len(parts) == 0 {
		return "step"
	}
	return strings.Join(parts, " ")
}

func joinIndices(idx []int) string {
	s := make([]string, len(idx))
	for i, v := range idx {
		s[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(s, ",")
}

// Counters tallies element comparisons and relocations for one sort call.
type Counters struct {
	Comparisons int
	Swaps       int
}

// Observer receives step events synchronously from the engine.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(Event)

// Observe implements Observer.
func (f ObserverFunc) Observe(e Event) {
	f(e)
}

type nopObserver struct{}

func (nopObserver) Observe(Event) {}

// Nop is an observer that ignores every event.
var Nop Observer = nopObserver{}

type pacedObserver struct {
	next  Observer
	delay time.Duration
	sleep func(time.Duration)
}

func (p pacedObserver) Observe(e Event) {
	p.next.Observe(e)
	p.sleep(p.delay)
}

// Paced returns an observer that blocks for delay after forwarding each event.
// A non-positive delay returns obs unchanged.
func Paced(obs Observer, delay time.Duration) Observer {
	if delay <= 0 {
		return obs
	}
	return pacedObserver{next: obs, delay: delay, sleep: time.Sleep}
}

func compared(idx ...int) Event {
	return Event{Compared: idx}
}

func swapped(idx ...int) Event {
	return Event{Swapped: idx}
}

func prefix(boundary int) Event {
	return Event{Boundary: boundary, Region: RegionPrefix}
}
