package sampleio

import (
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/eegscope/dsp/signal"
)

const wavBitDepth = 16

// ReadWAV decodes PCM audio into samples. Only the first channel is used.
// Values are normalized to [-1, 1] and timestamped by index/sampleRate.
func ReadWAV(r io.ReadSeeker) ([]signal.Sample, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file")
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading WAV PCM data: %w", err)
	}
	if buf == nil || buf.Format == nil || buf.Format.SampleRate <= 0 {
		return nil, fmt.Errorf("invalid WAV format")
	}

	channels := max(buf.Format.NumChannels, 1)
	rate := float64(buf.Format.SampleRate)
	depth := buf.SourceBitDepth
	if depth <= 0 {
		depth = int(dec.BitDepth)
	}
	scale := math.Exp2(float64(depth - 1))

	frames := len(buf.Data) / channels
	if frames == 0 {
		return nil, ErrNoUsableData
	}
	out := make([]signal.Sample, frames)
	for i := range out {
		v := float64(buf.Data[i*channels])
		if depth == 8 {
			// 8-bit PCM is unsigned.
			v -= 128
		}
		out[i] = signal.Sample{Time: float64(i) / rate, Value: v / scale}
	}
	return out, nil
}

// WriteWAV encodes samples as 16-bit mono PCM at sampleRate. Values are
// scaled so the largest magnitude maps to full scale; timestamps are dropped.
func WriteWAV(w io.WriteSeeker, samples []signal.Sample, sampleRate float64) error {
	rate := int(math.Round(sampleRate))
	if rate <= 0 {
		return fmt.Errorf("wav sample rate must be > 0: %v", sampleRate)
	}
	if len(samples) == 0 {
		return ErrNoUsableData
	}

	peak := 0.0
	for _, s := range samples {
		peak = math.Max(peak, math.Abs(s.Value))
	}
	fullScale := math.Exp2(wavBitDepth-1) - 1

	data := make([]int, len(samples))
	if peak > 0 {
		for i, s := range samples {
			data[i] = int(math.Round(s.Value / peak * fullScale))
		}
	}

	enc := wav.NewEncoder(w, rate, wavBitDepth, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: rate},
		Data:           data,
		SourceBitDepth: wavBitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing WAV PCM data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing WAV file: %w", err)
	}
	return nil
}
