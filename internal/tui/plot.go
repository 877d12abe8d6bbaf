package tui

import (
	"math"
	"strings"

	"github.com/cwbudde/eegscope/dsp/core"
	"github.com/cwbudde/eegscope/dsp/signal"
	"github.com/cwbudde/eegscope/dsp/spectrum"
)

var barChars = []rune(" ▁▂▃▄▅▆▇█")

// renderBars draws levels in [0, 1] as vertical bars, one column each, top
// row first.
func renderBars(levels []float64, height int) []string {
	if height < 1 {
		height = 1
	}
	steps := len(barChars) - 1
	rows := make([]string, height)
	for row := range height {
		var line strings.Builder
		// Eighths of a cell filled below this row.
		floor := (height - 1 - row) * steps
		for _, lv := range levels {
			fill := int(math.Round(core.Clamp(lv, 0, 1)*float64(height*steps))) - floor
			line.WriteRune(barChars[core.ClampInt(fill, 0, steps)])
		}
		rows[row] = line.String()
	}
	return rows
}

// waveformLevels takes the newest width samples and scales them to [0, 1]
// between their minimum and maximum.
func waveformLevels(samples []signal.Sample, width int) []float64 {
	if len(samples) == 0 || width <= 0 {
		return nil
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range samples {
		lo = math.Min(lo, s.Value)
		hi = math.Max(hi, s.Value)
	}
	span := hi - lo

	cols := min(width, len(samples))
	out := make([]float64, cols)
	// Right-align so the newest sample is always the last column.
	offset := len(samples) - cols
	for i := range out {
		v := samples[offset+i].Value
		if span > 0 {
			out[i] = (v - lo) / span
		} else {
			out[i] = 0.5
		}
	}
	return out
}

// spectrumLevels normalizes magnitudes against the strongest non-DC bin. The
// DC bin carries the baseline and would flatten everything else.
func spectrumLevels(bins []spectrum.Bin) []float64 {
	out := make([]float64, len(bins))
	peak, ok := spectrum.Peak(bins)
	if !ok || peak.Magnitude <= 0 {
		return out
	}
	for i, b := range bins {
		if b.Frequency == 0 {
			continue
		}
		out[i] = b.Magnitude / peak.Magnitude
	}
	return out
}
