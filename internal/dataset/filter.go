package dataset

// FilterFunc returns true when a value should be kept.
type FilterFunc func(int) bool

// FilterRange keeps values within [lo, hi].
func FilterRange(lo, hi int) FilterFunc {
	if hi < lo {
		lo, hi = hi, lo
	}
	return func(v int) bool {
		return v >= lo && v <= hi
	}
}

// Apply returns the kept values and how many were rejected.
func Apply(values []int, keep FilterFunc) ([]int, int) {
	out := make([]int, 0, len(values))
	for _, v := range values {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out, len(values) - len(out)
}
