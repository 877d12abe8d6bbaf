package spectrum

// Band is a named frequency range [LoHz, HiHz).
type Band struct {
	Name string
	LoHz float64
	HiHz float64
}

// EEGBands returns the classic EEG rhythms from delta to beta, in
// ascending frequency order.
func EEGBands() []Band {
	return []Band{
		{Name: "delta", LoHz: 0.5, HiHz: 4},
		{Name: "theta", LoHz: 4, HiHz: 8},
		{Name: "alpha", LoHz: 8, HiHz: 13},
		{Name: "beta", LoHz: 13, HiHz: 30},
	}
}

// Peak returns the strongest bin above 0 Hz. The DC bin carries the signal
// baseline and is skipped. ok is false when no such bin exists.
func Peak(bins []Bin) (peak Bin, ok bool) {
	for _, b := range bins {
		if b.Frequency <= 0 {
			continue
		}
		if !ok || b.Magnitude > peak.Magnitude {
			peak = b
			ok = true
		}
	}
	return peak, ok
}

// BandPower sums the magnitudes of all bins with loHz <= f < hiHz.
func BandPower(bins []Bin, loHz, hiHz float64) float64 {
	sum := 0.0
	for _, b := range bins {
		if b.Frequency >= loHz && b.Frequency < hiHz {
			sum += b.Magnitude
		}
	}
	return sum
}
