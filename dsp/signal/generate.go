package signal

import (
	"math"
	"math/rand"

	"github.com/cwbudde/eegscope/dsp/core"
)

const (
	defaultBaseline       = 250.0
	defaultNoiseAmplitude = 5.0
)

// Component is one sinusoidal term of the synthetic signal.
type Component struct {
	FreqHz    float64
	Amplitude float64
}

// DefaultComponents returns the alpha (10 Hz), beta (20 Hz) and theta (6 Hz)
// terms of the synthetic EEG signal.
func DefaultComponents() []Component {
	return []Component{
		{FreqHz: 10, Amplitude: 30},
		{FreqHz: 20, Amplitude: 15},
		{FreqHz: 6, Amplitude: 20},
	}
}

// Generator synthesizes an EEG-like signal: a fixed sum of sinusoids plus
// uniform noise, scaled by a gain and offset by a baseline.
//
// A Generator owns its elapsed time and is not safe for concurrent use.
type Generator struct {
	cfg        core.ProcessorConfig
	components []Component
	baseline   float64
	noiseAmp   float64
	seed       int64
	seeded     bool
	noise      func() float64
	elapsed    float64
}

// Option configures a Generator.
type Option func(*Generator)

// WithComponents replaces the sinusoidal terms.
func WithComponents(components ...Component) Option {
	return func(g *Generator) {
		g.components = append([]Component(nil), components...)
	}
}

// WithBaseline sets the constant offset added after gain is applied.
func WithBaseline(baseline float64) Option {
	return func(g *Generator) {
		g.baseline = baseline
	}
}

// WithNoiseAmplitude sets the half-width a of the noise interval [-a, a).
// Negative values are ignored.
func WithNoiseAmplitude(amplitude float64) Option {
	return func(g *Generator) {
		if amplitude >= 0 {
			g.noiseAmp = amplitude
		}
	}
}

// WithSeed makes the noise sequence reproducible.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
		g.seeded = true
		g.noise = rand.New(rand.NewSource(seed)).Float64
	}
}

// WithNoise installs a custom unit noise source returning values in [0, 1).
// A source that always returns 0.5 disables noise.
func WithNoise(src func() float64) Option {
	return func(g *Generator) {
		if src != nil {
			g.noise = src
			g.seeded = false
		}
	}
}

// NewGenerator creates a generator with the default EEG components.
func NewGenerator(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:        core.ApplyProcessorOptions(coreOpts...),
		components: DefaultComponents(),
		baseline:   defaultBaseline,
		noiseAmp:   defaultNoiseAmplitude,
		noise:      rand.Float64,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// SampleRate returns the effective tick rate in Hz.
func (g *Generator) SampleRate() float64 {
	return g.cfg.SampleRate
}

// Components returns a copy of the sinusoidal terms.
func (g *Generator) Components() []Component {
	return append([]Component(nil), g.components...)
}

// Elapsed returns the timestamp of the most recent sample from Next.
func (g *Generator) Elapsed() float64 {
	return g.elapsed
}

// Reset rewinds elapsed time to zero. A seeded noise source restarts too.
func (g *Generator) Reset() {
	g.elapsed = 0
	if g.seeded {
		g.noise = rand.New(rand.NewSource(g.seed)).Float64
	}
}

// Deterministic returns the noise-free sum of all components at t seconds.
func (g *Generator) Deterministic(t float64) float64 {
	sum := 0.0
	for _, c := range g.components {
		sum += c.Amplitude * math.Sin(2*math.Pi*c.FreqHz*t)
	}
	return sum
}

// SampleAt computes the sample for elapsed time t:
//
//	baseline + gain * (sum(A*sin(2*pi*f*t)) + noise)
//
// Only the noise term depends on state.
func (g *Generator) SampleAt(t, gain float64) Sample {
	noise := (g.noise()*2 - 1) * g.noiseAmp
	return Sample{
		Time:  t,
		Value: g.baseline + gain*(g.Deterministic(t)+noise),
	}
}

// Next advances elapsed time by one step and returns the sample there. The
// first sample after Reset is at one step, not zero.
func (g *Generator) Next(gain float64) Sample {
	g.elapsed += g.cfg.Step()
	return g.SampleAt(g.elapsed, gain)
}
