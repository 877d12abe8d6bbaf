// Package session owns the mutable state of a live analyzer run and advances
// it one tick at a time.
//
// A Session is driven by an external periodic timer. Each call to Tick
// completes before the next one starts, so the session needs no locking; it
// must not be shared between goroutines without external serialization.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cwbudde/eegscope/dsp/buffer"
	"github.com/cwbudde/eegscope/dsp/core"
	"github.com/cwbudde/eegscope/dsp/signal"
	"github.com/cwbudde/eegscope/dsp/spectrum"
	timestats "github.com/cwbudde/eegscope/stats/time"
)

// ErrEmptyReplay is returned by LoadReplay for an empty sequence.
var ErrEmptyReplay = errors.New("session: replay sequence is empty")

// Mode identifies the active signal source.
type Mode int

const (
	// ModeGenerated produces synthetic EEG-like samples.
	ModeGenerated Mode = iota
	// ModeReplay plays back a loaded sequence.
	ModeReplay
)

// String returns "generated" or "replay".
func (m Mode) String() string {
	switch m {
	case ModeGenerated:
		return "generated"
	case ModeReplay:
		return "replay"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// TickResult describes what one tick produced.
type TickResult struct {
	Sample          signal.Sample
	SpectrumUpdated bool
}

// Session is the single owner of generator, replay cursor, histories and the
// latest spectrum.
type Session struct {
	cfg    Config
	logger *slog.Logger

	mode       Mode
	running    bool
	gain       float64
	speed      int
	sampleRate float64
	maxFreq    float64

	gen    *signal.Generator
	replay *signal.Replay

	display  *buffer.History
	recorded *buffer.History
	spectrum []spectrum.Bin
	// totals summarizes recorded without rescanning it.
	totals timestats.Accumulator
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger for state transitions.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithGenerator replaces the synthetic source. Its sample rate should match
// the configured one.
func WithGenerator(g *signal.Generator) Option {
	return func(s *Session) {
		if g != nil {
			s.gen = g
		}
	}
}

// New creates a stopped session in generated mode.
func New(cfg Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		cfg:        cfg,
		logger:     slog.New(slog.DiscardHandler),
		mode:       ModeGenerated,
		gain:       core.Clamp(cfg.Gain, MinGain, MaxGain),
		speed:      core.ClampInt(cfg.Speed, 0, MaxSpeed),
		sampleRate: cfg.Processor.SampleRate,
		maxFreq:    cfg.MaxFrequencyHz,
		display:    buffer.NewHistory(cfg.DisplayCapacity),
		recorded:   buffer.NewHistory(0),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.gen == nil {
		s.gen = signal.NewGenerator([]core.ProcessorOption{core.WithSampleRate(cfg.Processor.SampleRate)})
	}
	return s, nil
}

// Tick produces one sample from the active source, appends it to both
// histories and refreshes the spectrum once enough samples are displayed.
//
// In replay mode an exhausted sequence stops the session and returns
// signal.ErrEndOfStream; no state changes in that case.
func (s *Session) Tick() (TickResult, error) {
	var smp signal.Sample
	switch s.mode {
	case ModeReplay:
		next, err := s.replay.Next(s.gain)
		if err != nil {
			if errors.Is(err, signal.ErrEndOfStream) && s.running {
				s.running = false
				s.logger.Info("replay finished", "samples", s.replay.Len())
			}
			return TickResult{}, err
		}
		smp = next
	default:
		smp = s.gen.Next(s.gain)
	}

	s.display.Append(smp)
	s.recorded.Append(smp)
	s.totals.Add(smp)

	res := TickResult{Sample: smp}
	if s.display.Len() <= s.cfg.SpectrumThreshold {
		return res, nil
	}

	bins, err := spectrum.Compute(
		s.display.Last(s.cfg.Processor.WindowSize),
		s.sampleRate,
		s.maxFreq,
		spectrum.WithMethod(s.cfg.Method),
		spectrum.WithWindowSize(s.cfg.Processor.WindowSize),
	)
	if err != nil {
		return res, fmt.Errorf("session spectrum: %w", err)
	}
	s.spectrum = bins
	res.SpectrumUpdated = true
	return res, nil
}

// LoadReplay switches to replay mode over a copy of seq. All histories are
// cleared and the session is stopped. The spectrum is labelled with the rate
// implied by the timestamps when they allow it.
func (s *Session) LoadReplay(seq []signal.Sample) error {
	if len(seq) == 0 {
		return ErrEmptyReplay
	}
	s.mode = ModeReplay
	s.replay = signal.NewReplay(seq)
	s.sampleRate = s.cfg.Processor.SampleRate
	if rate, err := signal.EstimateSampleRate(seq); err == nil {
		s.sampleRate = rate
	} else {
		s.logger.Debug("using configured sample rate for replay", "reason", err)
	}
	s.maxFreq = s.cfg.cutoff(s.sampleRate)
	s.clear()
	s.logger.Info("replay loaded", "samples", len(seq), "sample_rate", s.sampleRate, "max_frequency", s.maxFreq)
	return nil
}

// UseGenerated switches to the synthetic source, discarding any loaded
// sequence and all histories.
func (s *Session) UseGenerated() {
	s.mode = ModeGenerated
	s.replay = nil
	s.sampleRate = s.cfg.Processor.SampleRate
	s.maxFreq = s.cfg.MaxFrequencyHz
	s.gen.Reset()
	s.clear()
	s.logger.Info("switched to generated signal")
}

// Reset stops the session, clears the histories and spectrum and rewinds the
// active source. A loaded sequence stays loaded.
func (s *Session) Reset() {
	switch s.mode {
	case ModeReplay:
		s.replay.Rewind()
	default:
		s.gen.Reset()
	}
	s.clear()
	s.logger.Debug("session reset", "mode", s.mode)
}

func (s *Session) clear() {
	s.running = false
	s.display.Reset()
	s.recorded.Reset()
	s.totals.Reset()
	s.spectrum = nil
}

// SetRunning starts or pauses ticking. Starting an exhausted replay is
// refused.
func (s *Session) SetRunning(running bool) {
	if running && s.mode == ModeReplay && s.replay.Done() {
		return
	}
	s.running = running
}

// Toggle flips between running and paused and returns the new state.
func (s *Session) Toggle() bool {
	s.SetRunning(!s.running)
	return s.running
}

// Running reports whether the driver should keep ticking.
func (s *Session) Running() bool { return s.running }

// SetGain sets the amplitude scale, clamped to [MinGain, MaxGain].
func (s *Session) SetGain(gain float64) { s.gain = core.Clamp(gain, MinGain, MaxGain) }

// Gain returns the amplitude scale.
func (s *Session) Gain() float64 { return s.gain }

// SetSpeed sets the speed control, clamped to [0, MaxSpeed].
func (s *Session) SetSpeed(speed int) { s.speed = core.ClampInt(speed, 0, MaxSpeed) }

// Speed returns the speed control value.
func (s *Session) Speed() int { return s.speed }

// Interval returns the tick period for the current speed.
func (s *Session) Interval() time.Duration { return s.cfg.interval(s.speed) }

// Mode returns the active source.
func (s *Session) Mode() Mode { return s.mode }

// SampleRate returns the rate used to label spectrum bins.
func (s *Session) SampleRate() float64 { return s.sampleRate }

// MaxFrequencyHz returns the spectrum cutoff for the active source.
func (s *Session) MaxFrequencyHz() float64 { return s.maxFreq }

// Config returns the session configuration.
func (s *Session) Config() Config { return s.cfg }

// Display returns a copy of the capped display history.
func (s *Session) Display() []signal.Sample { return s.display.Samples() }

// Recorded returns a copy of every sample produced since the last reset.
func (s *Session) Recorded() []signal.Sample { return s.recorded.Samples() }

// RecordedStats summarizes every sample recorded since the last reset.
// MeanCrossings is not tracked and stays zero.
func (s *Session) RecordedStats() timestats.Stats { return s.totals.Result() }

// Spectrum returns the latest spectrum, or nil before the first update.
func (s *Session) Spectrum() []spectrum.Bin {
	if s.spectrum == nil {
		return nil
	}
	return append([]spectrum.Bin(nil), s.spectrum...)
}

// Progress returns the replay cursor and sequence length. Both are zero in
// generated mode.
func (s *Session) Progress() (cursor, total int) {
	if s.mode != ModeReplay {
		return 0, 0
	}
	return s.replay.Cursor(), s.replay.Len()
}
