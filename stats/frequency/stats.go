// Package frequency describes the shape of a magnitude spectrum.
//
// All descriptors ignore the 0 Hz bin, which only reflects the signal
// baseline.
package frequency

import (
	"math"

	"github.com/cwbudde/eegscope/dsp/spectrum"
)

// DefaultRolloff is the energy fraction used by Calculate for Rolloff.
const DefaultRolloff = 0.85

// Stats holds spectral shape descriptors.
type Stats struct {
	BinCount int // bins above 0 Hz
	// PeakFrequency is the frequency of the strongest bin in Hz.
	PeakFrequency float64
	PeakMagnitude float64
	Energy        float64 // sum of squared magnitudes
	Centroid      float64 // Hz
	Spread        float64 // Hz, magnitude-weighted standard deviation
	Flatness      float64 // Wiener entropy, 0..1
	Rolloff       float64 // Hz below which DefaultRolloff of the energy lies
	Bandwidth     float64 // Hz, -3 dB width around the peak
}

// Calculate computes all descriptors of bins.
func Calculate(bins []spectrum.Bin) Stats {
	ac := nonDC(bins)
	if len(ac) == 0 {
		return Stats{}
	}

	var s Stats
	s.BinCount = len(ac)
	sum := 0.0
	for _, b := range ac {
		sum += b.Magnitude
		s.Energy += b.Magnitude * b.Magnitude
		if b.Magnitude > s.PeakMagnitude {
			s.PeakMagnitude = b.Magnitude
			s.PeakFrequency = b.Frequency
		}
	}
	s.Centroid = centroid(ac, sum)
	s.Spread = spread(ac, s.Centroid, sum)
	s.Flatness = flatness(ac)
	s.Rolloff = rolloff(ac, DefaultRolloff, s.Energy)
	s.Bandwidth = bandwidth(ac)
	return s
}

func nonDC(bins []spectrum.Bin) []spectrum.Bin {
	for i, b := range bins {
		if b.Frequency > 0 {
			return bins[i:]
		}
	}
	return nil
}

// Centroid returns the magnitude-weighted mean frequency in Hz.
//
//	centroid = sum(f_i * |X_i|) / sum(|X_i|)
func Centroid(bins []spectrum.Bin) float64 {
	ac := nonDC(bins)
	sum := 0.0
	for _, b := range ac {
		sum += b.Magnitude
	}
	return centroid(ac, sum)
}

func centroid(bins []spectrum.Bin, sumMag float64) float64 {
	if sumMag == 0 {
		return 0
	}
	weighted := 0.0
	for _, b := range bins {
		weighted += b.Frequency * b.Magnitude
	}
	return weighted / sumMag
}

func spread(bins []spectrum.Bin, cent, sumMag float64) float64 {
	if sumMag == 0 {
		return 0
	}
	weighted := 0.0
	for _, b := range bins {
		d := b.Frequency - cent
		weighted += d * d * b.Magnitude
	}
	return math.Sqrt(weighted / sumMag)
}

// Flatness returns the ratio of geometric to arithmetic mean magnitude. Pure
// tones approach 0, white noise approaches 1. Any empty bin makes it 0.
func Flatness(bins []spectrum.Bin) float64 {
	return flatness(nonDC(bins))
}

func flatness(bins []spectrum.Bin) float64 {
	if len(bins) == 0 {
		return 0
	}
	sumLin, sumLog := 0.0, 0.0
	for _, b := range bins {
		if b.Magnitude <= 0 {
			return 0
		}
		sumLin += b.Magnitude
		sumLog += math.Log(b.Magnitude)
	}
	n := float64(len(bins))
	return math.Exp(sumLog/n) / (sumLin / n)
}

// Rolloff returns the lowest frequency at or below which fraction (0..1) of
// the spectral energy lies.
func Rolloff(bins []spectrum.Bin, fraction float64) float64 {
	ac := nonDC(bins)
	energy := 0.0
	for _, b := range ac {
		energy += b.Magnitude * b.Magnitude
	}
	return rolloff(ac, fraction, energy)
}

func rolloff(bins []spectrum.Bin, fraction, energy float64) float64 {
	if len(bins) == 0 || energy == 0 {
		return 0
	}
	threshold := fraction * energy
	cum := 0.0
	for _, b := range bins {
		cum += b.Magnitude * b.Magnitude
		if cum >= threshold {
			return b.Frequency
		}
	}
	return bins[len(bins)-1].Frequency
}

// Bandwidth returns the width of the region around the peak where the
// magnitude stays above peak/sqrt(2), interpolating linearly between bins.
func Bandwidth(bins []spectrum.Bin) float64 {
	return bandwidth(nonDC(bins))
}

func bandwidth(bins []spectrum.Bin) float64 {
	n := len(bins)
	if n < 2 {
		return 0
	}
	peak := 0
	for i, b := range bins {
		if b.Magnitude > bins[peak].Magnitude {
			peak = i
		}
	}
	if bins[peak].Magnitude == 0 {
		return 0
	}
	threshold := bins[peak].Magnitude / math.Sqrt2

	lower := bins[0].Frequency
	for i := peak; i >= 1; i-- {
		if bins[i-1].Magnitude <= threshold && bins[i].Magnitude > threshold {
			lower = crossing(bins[i-1], bins[i], threshold)
			break
		}
	}
	upper := bins[n-1].Frequency
	for i := peak; i < n-1; i++ {
		if bins[i+1].Magnitude <= threshold && bins[i].Magnitude > threshold {
			upper = crossing(bins[i], bins[i+1], threshold)
			break
		}
	}
	return math.Max(upper-lower, 0)
}

// crossing interpolates the frequency where the magnitude between a and b
// equals threshold.
func crossing(a, b spectrum.Bin, threshold float64) float64 {
	denom := b.Magnitude - a.Magnitude
	if denom == 0 {
		return (a.Frequency + b.Frequency) / 2
	}
	t := (threshold - a.Magnitude) / denom
	return a.Frequency + t*(b.Frequency-a.Frequency)
}
