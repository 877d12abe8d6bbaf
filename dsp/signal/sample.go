// Package signal produces the time-domain samples fed to the spectral
// estimator: a synthetic EEG-like generator and a replay cursor over a
// pre-loaded sequence.
package signal

import (
	"errors"
	"fmt"
)

// ErrEndOfStream reports that a replay cursor has passed the last sample.
// It is a normal termination signal, not a failure.
var ErrEndOfStream = errors.New("signal: end of stream")

// Sample is one time-stamped signal value.
type Sample struct {
	// Time is the sample timestamp in seconds.
	Time float64
	// Value is the signal amplitude.
	Value float64
}

// Values extracts the amplitudes of samples in order.
func Values(samples []Sample) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s.Value
	}
	return out
}

// EstimateSampleRate derives a sample rate from the mean spacing of the
// timestamps in seq.
func EstimateSampleRate(seq []Sample) (float64, error) {
	if len(seq) < 2 {
		return 0, fmt.Errorf("sample rate estimate requires at least 2 samples: %d", len(seq))
	}
	span := seq[len(seq)-1].Time - seq[0].Time
	if !(span > 0) {
		return 0, fmt.Errorf("sample rate estimate requires increasing timestamps: span %v", span)
	}
	return float64(len(seq)-1) / span, nil
}
