// Package report renders a recorded signal and its spectrum as a static HTML
// page with two interactive charts.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/cwbudde/eegscope/dsp/signal"
	"github.com/cwbudde/eegscope/dsp/spectrum"
	"github.com/cwbudde/eegscope/stats/frequency"
	timestats "github.com/cwbudde/eegscope/stats/time"
)

const (
	signalTitle   = "Real-time EEG Signal"
	spectrumTitle = "Frequency Spectrum (FFT)"
)

// Data is the content of one report.
type Data struct {
	// Title is used as page title.
	Title string
	// Source describes where the samples came from, e.g. "generated".
	Source string
	Signal []signal.Sample
	// Spectrum may be empty when too few samples were produced.
	Spectrum []spectrum.Bin
}

// Render writes the report page to w.
func Render(w io.Writer, data Data) error {
	if len(data.Signal) == 0 {
		return fmt.Errorf("report requires at least one sample")
	}

	page := components.NewPage()
	page.PageTitle = data.Title
	if page.PageTitle == "" {
		page.PageTitle = "EEG Signal Analyzer"
	}
	page.AddCharts(signalChart(data), spectrumChart(data))

	if err := page.Render(w); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

func signalChart(data Data) *charts.Line {
	x := make([]string, len(data.Signal))
	y := make([]opts.LineData, len(data.Signal))
	for i, s := range data.Signal {
		x[i] = fmt.Sprintf("%.2f", s.Time)
		y[i] = opts.LineData{Value: s.Value}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "1100px", Height: "360px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    signalTitle,
			Subtitle: signalSummary(data),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Time (s)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Signal Value"}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
	)
	line.SetXAxis(x).AddSeries("Signal", y)
	return line
}

func spectrumChart(data Data) *charts.Bar {
	x := make([]string, len(data.Spectrum))
	y := make([]opts.BarData, len(data.Spectrum))
	for i, b := range data.Spectrum {
		x[i] = fmt.Sprintf("%.1f", b.Frequency)
		y[i] = opts.BarData{Value: fmt.Sprintf("%.2f", b.Magnitude)}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "1100px", Height: "360px"}),
		charts.WithTitleOpts(opts.Title{Title: spectrumTitle, Subtitle: spectrumSummary(data.Spectrum)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Frequency (Hz)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Magnitude"}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
	)
	bar.SetXAxis(x).AddSeries("Magnitude", y)
	return bar
}

func sourceLabel(source string) string {
	if source == "" {
		return "unknown source"
	}
	return source
}

func signalSummary(data Data) string {
	st := timestats.Calculate(data.Signal)
	return fmt.Sprintf("%s, %d samples, mean %.1f, std %.1f, p-p %.1f",
		sourceLabel(data.Source), st.Count, st.Mean, st.StdDev, st.PeakToPeak)
}

// spectrumSummary names the dominant frequency and the EEG band levels.
func spectrumSummary(bins []spectrum.Bin) string {
	peak, ok := spectrum.Peak(bins)
	if !ok {
		return "not enough samples"
	}
	shape := frequency.Calculate(bins)
	parts := []string{
		fmt.Sprintf("peak %.1f Hz", peak.Frequency),
		fmt.Sprintf("centroid %.1f Hz", shape.Centroid),
	}
	for _, band := range spectrum.EEGBands() {
		parts = append(parts, fmt.Sprintf("%s %.2f", band.Name, spectrum.BandPower(bins, band.LoHz, band.HiHz)))
	}
	return strings.Join(parts, ", ")
}
