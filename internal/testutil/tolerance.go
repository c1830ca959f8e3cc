package testutil

import (
	"math"
	"testing"
)

// RequireNear fails t if got differs from want by more than eps
// (absolute tolerance).
func RequireNear(t *testing.T, got, want, eps float64) {
	t.Helper()

	if diff := math.Abs(got - want); diff > eps {
		t.Fatalf("got %v, want %v (diff %v > eps %v)", got, want, diff, eps)
	}
}

// RequireRelNear fails t if got differs from want by more than relEps
// relative to |want|. For want == 0 it falls back to an absolute check.
func RequireRelNear(t *testing.T, got, want, relEps float64) {
	t.Helper()

	diff := math.Abs(got - want)
	if want == 0 {
		if diff > relEps {
			t.Fatalf("got %v, want 0 (diff %v > eps %v)", got, diff, relEps)
		}

		return
	}

	if rel := diff / math.Abs(want); rel > relEps {
		t.Fatalf("got %v, want %v (rel diff %v > eps %v)", got, want, rel, relEps)
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()

	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}
