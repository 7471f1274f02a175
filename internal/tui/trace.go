package tui

import "github.com/verte-zerg/sortviz/internal/engine"

// change is one index whose value differs from the previous step.
type change struct {
	index int
	value int
}

type step struct {
	event   engine.Event
	changes []change
}

// trace records a sort as a list of steps holding only the values that
// changed since the previous event, so replaying a long run stays small.
//
// Every write the engine makes is reported by the next event through its
// Swapped or Compared indices, so only those slots are checked. Events that
// carry no indices (pass boundaries, the builtin sort's completion) fall
// back to a full scan.
type trace struct {
	seq   []int
	prev  []int
	steps []step
}

func newTrace(seq []int) *trace {
	return &trace{seq: seq, prev: append([]int(nil), seq...)}
}

// Observe implements engine.Observer.
func (t *trace) Observe(e engine.Event) {
	var changes []change
	if len(e.Swapped) == 0 && len(e.Compared) == 0 {
		for i := range t.seq {
			changes = t.check(changes, i)
		}
	} else {
		for _, i := range e.Swapped {
			changes = t.check(changes, i)
		}
		for _, i := range e.Compared {
			changes = t.check(changes, i)
		}
	}
	t.steps = append(t.steps, step{event: e, changes: changes})
}

func (t *trace) check(changes []change, i int) []change {
	if i < 0 || i >= len(t.seq) || t.prev[i] == t.seq[i] {
		return changes
	}
	t.prev[i] = t.seq[i]
	return append(changes, change{index: i, value: t.seq[i]})
}

// apply replays s onto values.
func (s step) apply(values []int) {
	for _, c := range s.changes {
		values[c.index] = c.value
	}
}

// record sorts seq with alg and returns the replayable steps.
func record(alg engine.Algorithm, seq []int) ([]step, engine.Counters, error) {
	tr := newTrace(seq)
	counters, err := engine.Sort(alg, seq, tr, 0)
	if err != nil {
		return nil, engine.Counters{}, err
	}
	return tr.steps, counters, nil
}
