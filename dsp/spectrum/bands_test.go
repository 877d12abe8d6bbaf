package spectrum

import "testing"

func TestPeakSkipsDC(t *testing.T) {
	bins := []Bin{{0, 250}, {1, 3}, {2, 7}, {3, 7}, {4, 1}}
	peak, ok := Peak(bins)
	if !ok {
		t.Fatal("expected a peak")
	}
	if peak.Frequency != 2 {
		t.Fatalf("peak = %v, want first maximum at 2 Hz", peak)
	}
}

func TestPeakEmpty(t *testing.T) {
	if _, ok := Peak([]Bin{{0, 1}}); ok {
		t.Fatal("expected no peak for DC-only spectrum")
	}
	if _, ok := Peak(nil); ok {
		t.Fatal("expected no peak for empty spectrum")
	}
}

func TestEEGBandsOrdered(t *testing.T) {
	bands := EEGBands()
	names := []string{"delta", "theta", "alpha", "beta"}
	if len(bands) != len(names) {
		t.Fatalf("len = %d, want %d", len(bands), len(names))
	}
	for i, b := range bands {
		if b.Name != names[i] {
			t.Fatalf("bands[%d] = %q, want %q", i, b.Name, names[i])
		}
		if b.LoHz >= b.HiHz {
			t.Fatalf("%s: empty range [%v, %v)", b.Name, b.LoHz, b.HiHz)
		}
		if i > 0 && bands[i-1].HiHz != b.LoHz {
			t.Fatalf("%s does not start where %s ends", b.Name, bands[i-1].Name)
		}
	}
}

func TestBandPower(t *testing.T) {
	bins := []Bin{{0, 50}, {0.25, 32}, {0.5, 0.5}, {2, 0.25}, {4, 1}, {6, 2}, {8, 4}, {12.9, 8}, {13, 16}}
	tests := []struct {
		band Band
		want float64
	}{
		{EEGBands()[0], 0.75},
		{EEGBands()[1], 3},
		{EEGBands()[2], 12},
		{EEGBands()[3], 16},
	}
	for _, tt := range tests {
		if got := BandPower(bins, tt.band.LoHz, tt.band.HiHz); got != tt.want {
			t.Fatalf("%s power = %v, want %v", tt.band.Name, got, tt.want)
		}
	}
}
