package spectrum

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/eegscope/dsp/signal"
)

const (
	// MinSamples is the history length at or below which a spectrum is not
	// yet meaningful. Callers skip Compute until they hold more samples.
	MinSamples = 10
	// MaxWindow is the default cap on the number of trailing samples used.
	MaxWindow = 128
)

// ErrNoSamples is returned when Compute is called with an empty sequence.
var ErrNoSamples = errors.New("spectrum: no samples")

// Bin is one frequency bin of a magnitude spectrum.
type Bin struct {
	// Frequency is the bin centre in Hz.
	Frequency float64
	// Magnitude is |X[k]| / N.
	Magnitude float64
}

type options struct {
	method Method
	window int
}

// Option configures Compute.
type Option func(*options)

// WithMethod selects the transform backend.
func WithMethod(m Method) Option {
	return func(o *options) {
		o.method = m
	}
}

// WithWindowSize overrides MaxWindow. Non-positive sizes are ignored.
func WithWindowSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.window = n
		}
	}
}

// Compute returns the magnitude spectrum of the last min(len(samples), 128)
// samples. Bins are ordered by ascending frequency, start at 0 Hz and stop at
// the last bin whose frequency does not exceed maxFrequencyHz.
//
// Compute is pure: the same input always yields bit-identical output.
func Compute(samples []signal.Sample, sampleRateHz, maxFrequencyHz float64, opts ...Option) ([]Bin, error) {
	if len(samples) == 0 {
		return nil, ErrNoSamples
	}
	if !(sampleRateHz > 0) || math.IsInf(sampleRateHz, 0) {
		return nil, fmt.Errorf("spectrum sample rate must be > 0: %v", sampleRateHz)
	}
	if !(maxFrequencyHz >= 0) {
		return nil, fmt.Errorf("spectrum max frequency must be >= 0: %v", maxFrequencyHz)
	}

	o := options{method: MethodDFT, window: MaxWindow}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	n := min(len(samples), o.window)
	x := signal.Values(samples[len(samples)-n:])

	count := BinCount(n, sampleRateHz, maxFrequencyHz)
	if count == 0 {
		return []Bin{}, nil
	}

	re, im, err := o.method.transform(x, count)
	if err != nil {
		return nil, err
	}

	mag := make([]float64, count)
	MagnitudeFromParts(mag, re[:count], im[:count])

	out := make([]Bin, count)
	scale := float64(n)
	for k := range out {
		out[k] = Bin{
			Frequency: float64(k) * sampleRateHz / scale,
			Magnitude: mag[k] / scale,
		}
	}
	return out, nil
}

// BinCount returns how many bins Compute emits for a window of n samples: the
// bins k in [0, n/2) with k*sampleRateHz/n <= maxFrequencyHz.
func BinCount(n int, sampleRateHz, maxFrequencyHz float64) int {
	half := n / 2
	count := 0
	for k := 0; k < half; k++ {
		if float64(k)*sampleRateHz/float64(n) > maxFrequencyHz {
			break
		}
		count++
	}
	return count
}

// Frequencies extracts the bin frequencies.
func Frequencies(bins []Bin) []float64 {
	out := make([]float64, len(bins))
	for i, b := range bins {
		out[i] = b.Frequency
	}
	return out
}

// Magnitudes extracts the bin magnitudes.
func Magnitudes(bins []Bin) []float64 {
	out := make([]float64, len(bins))
	for i, b := range bins {
		out[i] = b.Magnitude
	}
	return out
}
