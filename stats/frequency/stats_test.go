package frequency

import (
	"math"
	"testing"

	"github.com/cwbudde/eegscope/dsp/spectrum"
	"github.com/cwbudde/eegscope/internal/testutil"
)

const tolerance = 1e-10

func bins(mags ...float64) []spectrum.Bin {
	out := make([]spectrum.Bin, len(mags))
	for i, m := range mags {
		out[i] = spectrum.Bin{Frequency: float64(i), Magnitude: m}
	}
	return out
}

func TestCalculateEmpty(t *testing.T) {
	if got := Calculate(nil); got != (Stats{}) {
		t.Fatalf("Calculate(nil) = %+v, want zero", got)
	}
	if got := Calculate(bins(250)); got != (Stats{}) {
		t.Fatalf("DC-only spectrum = %+v, want zero", got)
	}
}

func TestDCIsIgnored(t *testing.T) {
	withDC := Calculate(bins(1000, 1, 2, 1))
	withoutDC := Calculate(bins(0, 1, 2, 1))
	if withDC != withoutDC {
		t.Fatalf("DC changed the descriptors:\n%+v\n%+v", withDC, withoutDC)
	}
}

func TestSymmetricPeak(t *testing.T) {
	s := Calculate(bins(0, 1, 2, 1))

	if s.BinCount != 3 {
		t.Errorf("BinCount = %d, want 3", s.BinCount)
	}
	if s.PeakFrequency != 2 || s.PeakMagnitude != 2 {
		t.Errorf("peak = %g Hz / %g", s.PeakFrequency, s.PeakMagnitude)
	}
	if math.Abs(s.Centroid-2) > tolerance {
		t.Errorf("Centroid = %g, want 2", s.Centroid)
	}
	// Weighted variance = (1 + 1) / 4.
	if math.Abs(s.Spread-math.Sqrt(0.5)) > tolerance {
		t.Errorf("Spread = %g, want %g", s.Spread, math.Sqrt(0.5))
	}
	if math.Abs(s.Energy-6) > tolerance {
		t.Errorf("Energy = %g, want 6", s.Energy)
	}
}

func TestFlatness(t *testing.T) {
	if got := Flatness(bins(5, 3, 3, 3, 3)); math.Abs(got-1) > tolerance {
		t.Errorf("flat spectrum flatness = %g, want 1", got)
	}
	if got := Flatness(bins(5, 0, 3, 3)); got != 0 {
		t.Errorf("flatness with empty bin = %g, want 0", got)
	}
	if got := Flatness(bins(0, 0.01, 10, 0.01)); got > 0.2 {
		t.Errorf("tonal flatness = %g, want < 0.2", got)
	}
}

func TestRolloff(t *testing.T) {
	// Energies 1, 1, 1, 1: 85% is reached at the fourth bin.
	if got := Rolloff(bins(9, 1, 1, 1, 1), 0.85); got != 4 {
		t.Errorf("Rolloff = %g, want 4", got)
	}
	if got := Rolloff(bins(9, 1, 1, 1, 1), 0.5); got != 2 {
		t.Errorf("Rolloff(0.5) = %g, want 2", got)
	}
	if got := Rolloff(bins(9, 0, 0), 0.85); got != 0 {
		t.Errorf("silent Rolloff = %g, want 0", got)
	}
}

func TestBandwidth(t *testing.T) {
	// Peak 2 at 3 Hz; threshold sqrt(2) crossed halfway between 2-3 and 3-4 Hz
	// when the neighbours are 2 - 2*(2-sqrt2) = 2*sqrt2 - 2 below the peak.
	side := 2*math.Sqrt2 - 2
	got := Bandwidth(bins(0, 0, side, 2, side, 0))
	if math.Abs(got-1) > 1e-9 {
		t.Errorf("Bandwidth = %g, want 1", got)
	}
	if got := Bandwidth(bins(0, 0, 0)); got != 0 {
		t.Errorf("silent Bandwidth = %g, want 0", got)
	}
}

func TestComputedSpectrumPeaksAtTone(t *testing.T) {
	samples := testutil.SineSamples(10, 100, 4, 100)
	spec, err := spectrum.Compute(samples, 100, 50)
	if err != nil {
		t.Fatal(err)
	}
	s := Calculate(spec)
	if s.PeakFrequency != 10 {
		t.Errorf("PeakFrequency = %g, want 10", s.PeakFrequency)
	}
	if math.Abs(s.Centroid-10) > 1e-6 {
		t.Errorf("Centroid = %g, want 10", s.Centroid)
	}
	if s.Rolloff != 10 {
		t.Errorf("Rolloff = %g, want 10", s.Rolloff)
	}
}
