package engine

import "slices"

// Frame pairs an event with a snapshot of the sequence taken when it fired.
type Frame[T any] struct {
	Event  Event
	Values []T
}

// Recorder is an Observer that snapshots the watched sequence on every event,
// so a caller can replay a finished sort at its own pace.
type Recorder[T any] struct {
	seq    []T
	Frames []Frame[T]
}

// NewRecorder watches seq. The same slice must be passed to the sort.
func NewRecorder[T any](seq []T) *Recorder[T] {
	return &Recorder[T]{seq: seq}
}

// Observe implements Observer.
func (r *Recorder[T]) Observe(e Event) {
	r.Frames = append(r.Frames, Frame[T]{Event: e, Values: slices.Clone(r.seq)})
}
