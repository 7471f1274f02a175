package generator

import "testing"

func TestValuesWithinBounds(t *testing.T) {
	g := NewSeeded(1)
	values := g.Values(500, DefaultMin, DefaultMax)
	if len(values) != 500 {
		t.Fatalf("expected 500 values, got %d", len(values))
	}
	for i, v := range values {
		if v < DefaultMin || v > DefaultMax {
			t.Fatalf("value %d at index %d out of range", v, i)
		}
	}
}

func TestValuesSwappedBounds(t *testing.T) {
	g := NewSeeded(2)
	for _, v := range g.Values(100, 5, 1) {
		if v < 1 || v > 5 {
			t.Fatalf("value %d out of range [1,5]", v)
		}
	}
}

func TestSeededIsReproducible(t *testing.T) {
	a := NewSeeded(42).Values(20, 0, 1000)
	b := NewSeeded(42).Values(20, 0, 1000)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seeded generators diverged at %d: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestBenchmarkRange(t *testing.T) {
	g := NewSeeded(3)
	values := g.Benchmark(100)
	if len(values) != 100 {
		t.Fatalf("expected 100 values, got %d", len(values))
	}
	for _, v := range values {
		if v < 1 || v > 100 {
			t.Fatalf("value %d out of range [1,100]", v)
		}
	}
	if got := g.Benchmark(0); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", got)
	}
}
