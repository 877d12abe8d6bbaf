package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/eegscope/dsp/signal"
)

// Timestamped attaches times i/sampleRate to values.
func Timestamped(values []float64, sampleRate float64) []signal.Sample {
	out := make([]signal.Sample, len(values))
	for i, v := range values {
		out[i] = signal.Sample{Time: float64(i) / sampleRate, Value: v}
	}
	return out
}

// SineSamples generates a deterministic sine wave as timestamped samples.
func SineSamples(freqHz, sampleRate, amplitude float64, length int) []signal.Sample {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return Timestamped(out, sampleRate)
}

// NoiseSamples generates uniform noise in [-amplitude, amplitude) with a fixed
// seed.
func NoiseSamples(seed int64, sampleRate, amplitude float64, length int) []signal.Sample {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return Timestamped(out, sampleRate)
}

// ConstantSamples generates a constant-valued signal.
func ConstantSamples(value, sampleRate float64, length int) []signal.Sample {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return Timestamped(out, sampleRate)
}
