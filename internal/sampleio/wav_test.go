package sampleio

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/eegscope/dsp/signal"
)

func TestWAVRoundTrip(t *testing.T) {
	want := make([]signal.Sample, 256)
	for i := range want {
		tm := float64(i) / 100
		want[i] = signal.Sample{Time: tm, Value: 0.8 * math.Sin(2*math.Pi*5*tm)}
	}

	f, err := os.Create(filepath.Join(t.TempDir(), "sig.wav"))
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, WriteWAV(f, want, 100))
	_, err = f.Seek(0, 0)
	require.NoError(t, err)

	got, err := ReadWAV(f)
	require.NoError(t, err)
	require.Len(t, got, len(want))

	rate, err := signal.EstimateSampleRate(got)
	require.NoError(t, err)
	require.InDelta(t, 100, rate, 1e-9)

	// Peak-normalized: 0.8 maps to full scale.
	for i := range want {
		require.InDelta(t, want[i].Value/0.8, got[i].Value, 1e-3, "sample %d", i)
	}
}

func TestWriteWAVValidation(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "bad.wav"))
	require.NoError(t, err)
	defer f.Close()

	require.Error(t, WriteWAV(f, []signal.Sample{{Time: 0, Value: 1}}, 0))
	require.ErrorIs(t, WriteWAV(f, nil, 100), ErrNoUsableData)
}

func TestReadWAVInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not.wav")
	require.NoError(t, os.WriteFile(path, []byte("definitely not RIFF data"), 0o600))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	_, err = ReadWAV(f)
	require.Error(t, err)
}
