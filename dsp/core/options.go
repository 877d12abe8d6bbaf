package core

// ProcessorConfig defines the sampling settings shared by the signal source and
// the spectral estimator.
type ProcessorConfig struct {
	// SampleRate is the tick rate in Hz. One sample is produced per tick.
	SampleRate float64
	// WindowSize caps the number of trailing samples fed to the estimator.
	WindowSize int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the 100 Hz / 128-sample setup used by the
// live analyzer.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 100,
		WindowSize: 128,
	}
}

// WithSampleRate sets the sample rate. Non-positive values are ignored.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithWindowSize sets the analysis window cap. Non-positive values are ignored.
func WithWindowSize(size int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if size > 0 {
			cfg.WindowSize = size
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Step returns the time between two consecutive samples in seconds.
func (c ProcessorConfig) Step() float64 {
	if c.SampleRate <= 0 {
		return 0
	}
	return 1 / c.SampleRate
}
