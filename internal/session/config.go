package session

import (
	"fmt"
	"math"
	"time"

	"github.com/cwbudde/eegscope/dsp/core"
	"github.com/cwbudde/eegscope/dsp/spectrum"
)

const (
	// MaxSpeed is the upper bound of the speed control.
	MaxSpeed = 99
	// MinGain and MaxGain bound the gain control.
	MinGain = 0.1
	MaxGain = 3.0
)

// Config holds the tunables of a Session.
type Config struct {
	// Processor carries the tick rate and the estimator window cap.
	Processor core.ProcessorConfig
	// DisplayCapacity is the number of samples kept for the live plot.
	DisplayCapacity int
	// SpectrumThreshold is the display length the spectrum waits for; it is
	// recomputed only while the display holds more samples than this.
	SpectrumThreshold int
	// MaxFrequencyHz is the spectrum cutoff at Processor.SampleRate. Replays
	// at another rate scale it by the same ratio, so a 100 Hz setup showing
	// 0-50 Hz shows 0-4 kHz for an 8 kHz recording.
	MaxFrequencyHz float64
	// Method is the spectral backend.
	Method spectrum.Method
	// BaseInterval is the tick period at speed 0.
	BaseInterval time.Duration
	// MinInterval bounds the tick period from below.
	MinInterval time.Duration
	// Speed shortens the tick period by one millisecond per step.
	Speed int
	// Gain scales every produced sample.
	Gain float64
}

// DefaultConfig returns the settings of the live analyzer: 100 Hz ticks,
// 200 displayed samples, spectrum up to 50 Hz over the last 128 samples.
func DefaultConfig() Config {
	return Config{
		Processor:         core.DefaultProcessorConfig(),
		DisplayCapacity:   200,
		SpectrumThreshold: spectrum.MinSamples,
		MaxFrequencyHz:    50,
		Method:            spectrum.MethodDFT,
		BaseInterval:      100 * time.Millisecond,
		MinInterval:       time.Millisecond,
		Speed:             50,
		Gain:              1,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if !(c.Processor.SampleRate > 0) {
		return fmt.Errorf("session sample rate must be > 0: %v", c.Processor.SampleRate)
	}
	if c.Processor.WindowSize <= 0 {
		return fmt.Errorf("session window size must be > 0: %d", c.Processor.WindowSize)
	}
	if c.DisplayCapacity <= 0 {
		return fmt.Errorf("session display capacity must be > 0: %d", c.DisplayCapacity)
	}
	if c.SpectrumThreshold < 0 {
		return fmt.Errorf("session spectrum threshold must be >= 0: %d", c.SpectrumThreshold)
	}
	if !(c.MaxFrequencyHz >= 0) {
		return fmt.Errorf("session max frequency must be >= 0: %v", c.MaxFrequencyHz)
	}
	if c.MinInterval <= 0 {
		return fmt.Errorf("session min interval must be > 0: %v", c.MinInterval)
	}
	if c.BaseInterval < c.MinInterval {
		return fmt.Errorf("session base interval must be >= min interval: %v < %v", c.BaseInterval, c.MinInterval)
	}
	if !(c.Gain > 0) {
		return fmt.Errorf("session gain must be > 0: %v", c.Gain)
	}
	return nil
}

// interval maps a speed value to a tick period.
func (c Config) interval(speed int) time.Duration {
	d := c.BaseInterval - time.Duration(speed)*time.Millisecond
	if d < c.MinInterval {
		return c.MinInterval
	}
	return d
}

// cutoff returns the spectrum cutoff for a source sampled at rate.
func (c Config) cutoff(rate float64) float64 {
	if rate == c.Processor.SampleRate {
		return c.MaxFrequencyHz
	}
	return math.Min(c.MaxFrequencyHz*rate/c.Processor.SampleRate, rate/2)
}
