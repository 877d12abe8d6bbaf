package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/eegscope/dsp/signal"
)

// MaxAbsDiff returns the largest absolute element difference between a and
// b together with the index where it occurs. Equal-length input is required.
func MaxAbsDiff(a, b []float64) (diff float64, at int, err error) {
	if len(a) != len(b) {
		return 0, -1, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	at = -1
	for i := range a {
		if d := math.Abs(a[i] - b[i]); at < 0 || d > diff {
			diff, at = d, i
		}
	}
	return diff, at, nil
}

// RequireClose fails t when series got deviates from want by more than eps
// anywhere. name labels the series in the failure message.
func RequireClose(t *testing.T, name string, got, want []float64, eps float64) {
	t.Helper()
	diff, at, err := MaxAbsDiff(got, want)
	if err != nil {
		t.Fatalf("%s: %v", name, err)
	}
	if diff > eps {
		t.Fatalf("%s[%d]: got %v, want %v (diff %g > %g)", name, at, got[at], want[at], diff, eps)
	}
}

// RequireFinite fails t if any element of series name is NaN or infinite.
func RequireFinite(t *testing.T, name string, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("%s[%d]: non-finite value %v", name, i, v)
		}
	}
}

// Values returns the sample values of seq.
func Values(seq []signal.Sample) []float64 {
	out := make([]float64, len(seq))
	for i, s := range seq {
		out[i] = s.Value
	}
	return out
}
