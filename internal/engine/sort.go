package engine

import (
	"cmp"
	"fmt"
	"slices"
	"time"
)

// Func is the uniform signature shared by every strategy.
type Func[T cmp.Ordered] func(seq []T, obs Observer) Counters

// tally owns the counters for a single top-level call and is threaded
// through the recursion; it never escapes run.
type tally struct {
	Counters
	obs Observer
}

func (t *tally) emit(e Event) {
	t.obs.Observe(e)
}

func run[T cmp.Ordered](seq []T, obs Observer, strategy func([]T, *tally)) Counters {
	if len(seq) < 2 {
		return Counters{}
	}
	if obs == nil {
		obs = Nop
	}
	t := &tally{obs: obs}
	strategy(seq, t)
	t.emit(prefix(len(seq) - 1))
	return t.Counters
}

// For returns the strategy function for alg, or nil if alg is unknown.
func For[T cmp.Ordered](alg Algorithm) Func[T] {
	switch alg {
	case Selection:
		return SelectionSort[T]
	case Insertion:
		return InsertionSort[T]
	case Bubble:
		return BubbleSort[T]
	case Quick:
		return QuickSort[T]
	case Merge:
		return MergeSort[T]
	case Builtin:
		return BuiltinSort[T]
	default:
		return nil
	}
}

// Sort validates its arguments and runs alg over seq. A positive delay
// blocks for that long after each observed event.
func Sort[T cmp.Ordered](alg Algorithm, seq []T, obs Observer, delay time.Duration) (Counters, error) {
	if seq == nil {
		return Counters{}, ErrNilSequence
	}
	if delay < 0 {
		return Counters{}, fmt.Errorf("%w: %s", ErrNegativeDelay, delay)
	}
	fn := For[T](alg)
	if fn == nil {
		return Counters{}, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
	if idx := unorderableIndex(seq); idx >= 0 {
		return Counters{}, fmt.Errorf("%w at index %d", ErrUnorderable, idx)
	}
	if obs == nil {
		obs = Nop
	}
	return fn(seq, Paced(obs, delay)), nil
}

func unorderableIndex[T cmp.Ordered](seq []T) int {
	for i, v := range seq {
		if v != v { // NaN
			return i
		}
	}
	return -1
}

// SelectionSort repeatedly moves the minimum of the unsorted suffix into place.
func SelectionSort[T cmp.Ordered](seq []T, obs Observer) Counters {
	return run(seq, obs, selection[T])
}

func selection[T cmp.Ordered](seq []T, t *tally) {
	n := len(seq)
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			t.Comparisons++
			// Slot i stays highlighted while the scan looks for its minimum.
			compared := []int{i, j}
			if minIdx != i {
				compared = append(compared, minIdx)
			}
			ev := Event{Compared: compared, Boundary: i - 1, Region: RegionPrefix}
			if seq[j] < seq[minIdx] {
				minIdx = j
			}
			t.emit(ev)
		}
		if minIdx != i {
			seq[i], seq[minIdx] = seq[minIdx], seq[i]
			t.Swaps++
			t.emit(Event{Swapped: []int{i, minIdx}, Boundary: i - 1, Region: RegionPrefix})
		}
		t.emit(prefix(i))
	}
}

// InsertionSort shifts each element left until its predecessor is not greater.
// Every shift counts as one swap.
func InsertionSort[T cmp.Ordered](seq []T, obs Observer) Counters {
	return run(seq, obs, insertion[T])
}

func insertion[T cmp.Ordered](seq []T, t *tally) {
	for i := 1; i < len(seq); i++ {
		key := seq[i]
		j := i - 1
		for j >= 0 && key < seq[j] {
			t.Comparisons++
			seq[j+1] = seq[j]
			t.Swaps++
			t.emit(Event{Swapped: []int{j, j + 1}, Boundary: i - 1, Region: RegionPrefix})
			j--
		}
		if j >= 0 {
			// the comparison that stopped the shift
			t.Comparisons++
		}
		seq[j+1] = key
		t.emit(Event{Compared: []int{j + 1}, Boundary: i, Region: RegionPrefix})
	}
}

// BubbleSort is the unoptimised variant: every pass runs to completion, so
// it always performs n(n-1)/2 comparisons.
func BubbleSort[T cmp.Ordered](seq []T, obs Observer) Counters {
	return run(seq, obs, bubble[T])
}

func bubble[T cmp.Ordered](seq []T, t *tally) {
	n := len(seq)
	for i := 0; i < n; i++ {
		for j := 0; j < n-i-1; j++ {
			t.Comparisons++
			t.emit(compared(j, j+1))
			if seq[j+1] < seq[j] {
				seq[j], seq[j+1] = seq[j+1], seq[j]
				t.Swaps++
				t.emit(swapped(j, j+1))
			}
		}
		t.emit(Event{Boundary: n - i - 1, Region: RegionSuffix})
	}
}

// QuickSort partitions around the last element of each subrange (Lomuto).
func QuickSort[T cmp.Ordered](seq []T, obs Observer) Counters {
	return run(seq, obs, func(s []T, t *tally) {
		quick(s, t, 0, len(s)-1)
	})
}

func quick[T cmp.Ordered](seq []T, t *tally, lo, hi int) {
	if lo >= hi {
		return
	}
	p := partition(seq, t, lo, hi)
	quick(seq, t, lo, p-1)
	quick(seq, t, p+1, hi)
}

func partition[T cmp.Ordered](seq []T, t *tally, lo, hi int) int {
	pivot := seq[hi]
	i := lo - 1
	for j := lo; j < hi; j++ {
		t.Comparisons++
		t.emit(compared(j, hi))
		if seq[j] < pivot {
			i++
			seq[i], seq[j] = seq[j], seq[i]
			t.Swaps++
			t.emit(swapped(i, j))
		}
	}
	seq[i+1], seq[hi] = seq[hi], seq[i+1]
	t.Swaps++
	t.emit(swapped(i+1, hi))
	return i + 1
}

// MergeSort is a stable top-down merge sort. Each element written back from
// the scratch buffer counts as one swap.
func MergeSort[T cmp.Ordered](seq []T, obs Observer) Counters {
	return run(seq, obs, func(s []T, t *tally) {
		scratch := make([]T, len(s))
		mergeSort(s, scratch, t, 0, len(s)-1)
	})
}

func mergeSort[T cmp.Ordered](seq, scratch []T, t *tally, left, right int) {
	if left >= right {
		return
	}
	mid := (left + right) / 2
	mergeSort(seq, scratch, t, left, mid)
	mergeSort(seq, scratch, t, mid+1, right)
	merge(seq, scratch, t, left, mid, right)
}

func merge[T cmp.Ordered](seq, scratch []T, t *tally, left, mid, right int) {
	copy(scratch[left:right+1], seq[left:right+1])
	lhs := scratch[left : mid+1]
	rhs := scratch[mid+1 : right+1]
	i, j, k := 0, 0, left
	write := func(v T) {
		seq[k] = v
		t.Swaps++
		t.emit(swapped(k))
		k++
	}
	for i < len(lhs) && j < len(rhs) {
		t.Comparisons++
		// ties take from the left half
		if rhs[j] < lhs[i] {
			write(rhs[j])
			j++
		} else {
			write(lhs[i])
			i++
		}
	}
	for ; i < len(lhs); i++ {
		write(lhs[i])
	}
	for ; j < len(rhs); j++ {
		write(rhs[j])
	}
}

// BuiltinSort delegates to slices.Sort. Its comparisons and swaps are not
// counted; the only event is the completion boundary.
func BuiltinSort[T cmp.Ordered](seq []T, obs Observer) Counters {
	return run(seq, obs, func(s []T, _ *tally) {
		slices.Sort(s)
	})
}
