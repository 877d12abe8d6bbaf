// Package sampleio imports and exports recorded signals. Every format maps
// onto the same in-memory shape: an ordered []signal.Sample.
package sampleio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cwbudde/eegscope/dsp/core"
	"github.com/cwbudde/eegscope/dsp/signal"
)

var (
	// ErrNoUsableData is returned when an import yields no valid rows.
	ErrNoUsableData = errors.New("sampleio: no usable data")
	// ErrUnsupportedFormat is returned for unknown file extensions.
	ErrUnsupportedFormat = errors.New("sampleio: unsupported format")
)

// Header is the column header written by every tabular exporter.
var Header = [2]string{"Time (s)", "Signal Value"}

// DefaultRecordingName returns the file name used for an export at now.
func DefaultRecordingName(now time.Time) string {
	return fmt.Sprintf("eeg_recording_%d.csv", now.UnixMilli())
}

// Load reads samples from path, choosing the decoder by extension.
func Load(path string) ([]signal.Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch ext(path) {
	case ".csv", ".txt":
		return ReadCSV(f)
	case ".wav":
		return ReadWAV(f)
	case ".xlsx":
		return ReadXLSX(f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}
}

// Save writes samples to path, choosing the encoder by extension. sampleRate
// is only used by formats without timestamps.
func Save(path string, samples []signal.Sample, sampleRate float64) (err error) {
	var write func(*os.File) error
	switch ext(path) {
	case ".csv", ".txt":
		write = func(f *os.File) error { return WriteCSV(f, samples) }
	case ".wav":
		write = func(f *os.File) error { return WriteWAV(f, samples, sampleRate) }
	case ".xlsx":
		write = func(f *os.File) error { return WriteXLSX(f, samples) }
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}

// Extensions lists the file extensions Load and Save understand.
func Extensions() []string {
	return []string{".csv", ".txt", ".wav", ".xlsx"}
}

// Supported reports whether path has an extension listed by Extensions.
func Supported(path string) bool {
	e := ext(path)
	for _, known := range Extensions() {
		if e == known {
			return true
		}
	}
	return false
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// parseRow converts the first two fields of a row into a sample. Rows with
// fewer fields or non-finite numbers are rejected.
func parseRow(fields []string) (signal.Sample, bool) {
	if len(fields) < 2 {
		return signal.Sample{}, false
	}
	t, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil || !core.IsFinite(t) {
		return signal.Sample{}, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil || !core.IsFinite(v) {
		return signal.Sample{}, false
	}
	return signal.Sample{Time: t, Value: v}, true
}

// formatTime hides accumulated step error such as 0.30000000000000004.
func formatTime(t float64) string {
	return strconv.FormatFloat(core.RoundTo(t, 9), 'f', -1, 64)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
