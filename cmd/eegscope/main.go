// Command eegscope displays a synthetic or recorded EEG-like signal together
// with its live frequency spectrum.
//
// Usage:
//
//	eegscope [flags]
//
// Without -report or -record it opens the terminal UI. With either flag it
// runs headless for -ticks samples and writes the requested outputs.
//
// Examples:
//
//	eegscope
//	eegscope -in recording.csv -speed 90
//	eegscope -seed 1 -ticks 500 -report spectrum.html
//	eegscope -in take.wav -record take.xlsx
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/cwbudde/eegscope/dsp/core"
	dspsignal "github.com/cwbudde/eegscope/dsp/signal"
	"github.com/cwbudde/eegscope/dsp/spectrum"
	"github.com/cwbudde/eegscope/internal/report"
	"github.com/cwbudde/eegscope/internal/sampleio"
	"github.com/cwbudde/eegscope/internal/session"
	"github.com/cwbudde/eegscope/internal/tui"
)

type options struct {
	in         string
	gain       float64
	speed      int
	method     string
	seed       int64
	sampleRate float64
	maxFreq    float64
	window     int
	ticks      int
	report     string
	record     string
	saveDir    string
	verbose    bool
}

func main() {
	var o options
	flag.StringVar(&o.in, "in", "", "replay samples from a .csv, .txt, .wav or .xlsx file")
	flag.Float64Var(&o.gain, "gain", 1, "amplitude scale (0.1-3)")
	flag.IntVar(&o.speed, "speed", 50, "playback speed (0-99); tick interval is 100ms minus speed")
	flag.StringVar(&o.method, "method", "dft", "spectrum method: "+strings.Join(methodNames(), ", "))
	flag.Int64Var(&o.seed, "seed", 0, "seed for generator noise (0 means random)")
	flag.Float64Var(&o.sampleRate, "rate", 100, "generator sample rate in Hz")
	flag.Float64Var(&o.maxFreq, "max-freq", 50, "spectrum cutoff in Hz at the generator rate")
	flag.IntVar(&o.window, "window", spectrum.MaxWindow, "spectrum window length in samples")
	flag.IntVar(&o.ticks, "ticks", 500, "samples to produce in headless mode (0 = whole replay)")
	flag.StringVar(&o.report, "report", "", "write an HTML report to this file and exit")
	flag.StringVar(&o.record, "record", "", "write the recorded samples (.csv, .wav, .xlsx) and exit")
	flag.StringVar(&o.saveDir, "save-dir", ".", "directory for recordings saved from the UI")
	flag.BoolVar(&o.verbose, "v", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: eegscope [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Shows a live EEG-like signal and its frequency spectrum.\n")
		fmt.Fprintf(os.Stderr, "With -report or -record it runs headless and exits.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  eegscope\n")
		fmt.Fprintf(os.Stderr, "  eegscope -in recording.csv -speed 90\n")
		fmt.Fprintf(os.Stderr, "  eegscope -seed 1 -ticks 500 -report spectrum.html\n")
		fmt.Fprintf(os.Stderr, "  eegscope -in take.wav -record take.xlsx\n")
	}
	flag.Parse()

	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, o, logger); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func methodNames() []string {
	methods := spectrum.Methods()
	names := make([]string, len(methods))
	for i, m := range methods {
		names[i] = m.String()
	}
	return names
}

func run(ctx context.Context, o options, logger *slog.Logger) error {
	sess, err := newSession(o, logger)
	if err != nil {
		return err
	}

	if o.report == "" && o.record == "" {
		return tui.Run(ctx, sess, tui.Options{SaveDir: o.saveDir, Logger: logger})
	}
	return runHeadless(ctx, sess, o, logger)
}

func newSession(o options, logger *slog.Logger) (*session.Session, error) {
	method, err := spectrum.ParseMethod(o.method)
	if err != nil {
		return nil, err
	}

	cfg := session.DefaultConfig()
	cfg.Processor.SampleRate = o.sampleRate
	cfg.Processor.WindowSize = o.window
	cfg.MaxFrequencyHz = o.maxFreq
	cfg.Method = method
	cfg.Gain = o.gain
	cfg.Speed = o.speed

	var genOpts []dspsignal.Option
	if o.seed != 0 {
		genOpts = append(genOpts, dspsignal.WithSeed(o.seed))
	}
	gen := dspsignal.NewGenerator([]core.ProcessorOption{core.WithSampleRate(o.sampleRate)}, genOpts...)

	sess, err := session.New(cfg, session.WithLogger(logger), session.WithGenerator(gen))
	if err != nil {
		return nil, err
	}

	if o.in != "" {
		samples, err := sampleio.Load(o.in)
		if err != nil {
			return nil, err
		}
		if err := sess.LoadReplay(samples); err != nil {
			return nil, fmt.Errorf("replay %s: %w", o.in, err)
		}
	}
	return sess, nil
}

func runHeadless(ctx context.Context, sess *session.Session, o options, logger *slog.Logger) error {
	if o.ticks < 0 {
		return fmt.Errorf("ticks must be >= 0: %d", o.ticks)
	}
	if o.ticks == 0 && sess.Mode() != session.ModeReplay {
		return errors.New("ticks must be > 0 for the generated signal")
	}

	sess.SetRunning(true)
	for i := 0; o.ticks == 0 || i < o.ticks; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := sess.Tick(); err != nil {
			if errors.Is(err, dspsignal.ErrEndOfStream) {
				break
			}
			return err
		}
	}
	sess.SetRunning(false)
	logger.Debug("headless run finished", "samples", len(sess.Recorded()))

	if o.record != "" {
		if err := sampleio.Save(o.record, sess.Recorded(), sess.SampleRate()); err != nil {
			return err
		}
		logger.Info("recording written", "path", o.record)
	}

	if o.report != "" {
		if err := writeReport(o.report, sess, o.in); err != nil {
			return err
		}
		logger.Info("report written", "path", o.report)
	}
	return nil
}

func writeReport(path string, sess *session.Session, in string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	source := sess.Mode().String()
	if in != "" {
		source = filepath.Base(in)
	}
	return report.Render(f, report.Data{
		Source:   source,
		Signal:   sess.Display(),
		Spectrum: sess.Spectrum(),
	})
}
