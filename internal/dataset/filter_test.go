package dataset

import "testing"

func TestFilterRange(t *testing.T) {
	keep := FilterRange(10, 300)
	if !keep(10) || !keep(300) || !keep(150) {
		t.Fatalf("expected bounds to be inclusive")
	}
	for _, v := range []int{9, 301, -5} {
		if keep(v) {
			t.Fatalf("expected %d to be rejected", v)
		}
	}
}

func TestApply(t *testing.T) {
	kept, rejected := Apply([]int{5, 20, 400, 30}, FilterRange(300, 10))
	if rejected != 2 {
		t.Fatalf("expected 2 rejected, got %d", rejected)
	}
	if len(kept) != 2 || kept[0] != 20 || kept[1] != 30 {
		t.Fatalf("unexpected kept values: %v", kept)
	}
}
