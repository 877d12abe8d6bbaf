// Package tui is the terminal front end of the analyzer: a live waveform and
// spectrum driven by a session, with playback controls, an open dialog for
// recordings and saving.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cwbudde/eegscope/dsp/signal"
	"github.com/cwbudde/eegscope/dsp/spectrum"
	"github.com/cwbudde/eegscope/internal/sampleio"
	"github.com/cwbudde/eegscope/internal/session"
	"github.com/cwbudde/eegscope/stats/frequency"
	timestats "github.com/cwbudde/eegscope/stats/time"
)

const (
	plotHeight = 8
	gainStep   = 0.1
	speedStep  = 5
)

// tickMsg carries the generation of the tick chain that produced it so a
// pause/resume cycle never leaves two chains running.
type tickMsg struct{ gen int }

type savedMsg struct {
	path string
	err  error
}

type loadedMsg struct {
	path    string
	samples []signal.Sample
	err     error
}

// Options configures the terminal UI.
type Options struct {
	// SaveDir is where recordings are written and where the open dialog
	// starts. Empty means the working directory.
	SaveDir string
	// Logger receives save failures and state changes.
	Logger *slog.Logger
}

// Model is the bubbletea model wrapping a session.
type Model struct {
	sess   *session.Session
	keys   keyMap
	help   help.Model
	bars   springField
	// browser is non-nil while the open dialog is shown.
	browser *browser
	opts   Options
	now    func() time.Time
	logger *slog.Logger

	width, height int
	gen           int
	status        string
	err           error
	quitting      bool
}

// New creates a model over sess.
func New(sess *session.Session, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return Model{
		sess:   sess,
		keys:   defaultKeyMap(),
		help:   help.New(),
		bars:   newSpringField(20, 8.0, 0.6),
		opts:   opts,
		now:    time.Now,
		logger: logger,
		width:  80,
		status: "paused",
	}
}

// Run starts the program and blocks until the user quits or ctx is done.
func Run(ctx context.Context, sess *session.Session, opts Options) error {
	p := tea.NewProgram(New(sess, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func (m Model) tickCmd() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.sess.Interval(), func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("eegscope")
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleMsg(msg)
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.browser != nil {
			return m.updateBrowser(msg)
		}
		return m, nil

	case loadedMsg:
		return m.handleLoaded(msg)

	case tickMsg:
		if msg.gen != m.gen || !m.sess.Running() {
			return m, nil
		}
		if _, err := m.sess.Tick(); err != nil {
			if errors.Is(err, signal.ErrEndOfStream) {
				m.status = "end of data"
				return m, nil
			}
			m.err = err
			m.sess.SetRunning(false)
			return m, nil
		}
		m.bars.update(spectrumLevels(m.sess.Spectrum()))
		return m, m.tickCmd()

	case savedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.logger.Warn("failed to save recording", "error", msg.err)
			return m, nil
		}
		m.err = nil
		m.status = "saved " + msg.path
		return m, nil

	case tea.KeyMsg:
		if m.browser != nil {
			return m.updateBrowser(msg)
		}
		return m.handleKey(msg)
	}
	if m.browser != nil {
		return m.updateBrowser(msg)
	}
	return m, nil
}

func (m Model) updateBrowser(msg tea.Msg) (Model, tea.Cmd) {
	b, cmd := m.browser.update(msg)
	if !b.done {
		m.browser = &b
		return m, cmd
	}
	m.browser = nil
	if b.chosen == "" {
		m.status = "open cancelled"
		return m, nil
	}
	path := b.chosen
	m.status = "loading " + filepath.Base(path)
	return m, func() tea.Msg {
		samples, err := sampleio.Load(path)
		return loadedMsg{path: path, samples: samples, err: err}
	}
}

func (m Model) handleLoaded(msg loadedMsg) (Model, tea.Cmd) {
	name := filepath.Base(msg.path)
	if msg.err != nil {
		if errors.Is(msg.err, sampleio.ErrNoUsableData) {
			m.status = "no usable data in " + name
			return m, nil
		}
		m.err = msg.err
		m.logger.Warn("failed to load recording", "path", msg.path, "error", msg.err)
		return m, nil
	}
	if err := m.sess.LoadReplay(msg.samples); err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil
	m.bars.reset()
	m.gen++
	m.status = fmt.Sprintf("loaded %d points from %s", len(msg.samples), name)
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Play):
		m.err = nil
		if !m.sess.Toggle() {
			m.status = "paused"
			if mode := m.sess.Mode(); mode == session.ModeReplay {
				if cursor, total := m.sess.Progress(); cursor >= total {
					m.status = "end of data, press r to rewind"
				}
			}
			return m, nil
		}
		m.status = "running"
		m.gen++
		return m, m.tickCmd()

	case key.Matches(msg, m.keys.Reset):
		m.sess.Reset()
		m.bars.reset()
		m.gen++
		m.status = "reset"
		return m, nil

	case key.Matches(msg, m.keys.Generated):
		m.sess.UseGenerated()
		m.bars.reset()
		m.gen++
		m.status = "generated signal"
		return m, nil

	case key.Matches(msg, m.keys.GainUp):
		m.sess.SetGain(m.sess.Gain() + gainStep)
		return m, nil

	case key.Matches(msg, m.keys.GainDown):
		m.sess.SetGain(m.sess.Gain() - gainStep)
		return m, nil

	case key.Matches(msg, m.keys.Faster):
		m.sess.SetSpeed(m.sess.Speed() + speedStep)
		return m, nil

	case key.Matches(msg, m.keys.Slower):
		m.sess.SetSpeed(m.sess.Speed() - speedStep)
		return m, nil

	case key.Matches(msg, m.keys.Open):
		m.sess.SetRunning(false)
		m.gen++
		b, err := newBrowser(m.opts.SaveDir, m.width, m.height)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.browser = &b
		m.status = "paused"
		return m, nil

	case key.Matches(msg, m.keys.Save):
		recorded := m.sess.Recorded()
		if len(recorded) == 0 {
			m.status = "nothing recorded yet"
			return m, nil
		}
		path := filepath.Join(m.opts.SaveDir, sampleio.DefaultRecordingName(m.now()))
		rate := m.sess.SampleRate()
		return m, func() tea.Msg {
			return savedMsg{path: path, err: sampleio.Save(path, recorded, rate)}
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.browser != nil {
		return m.browser.view()
	}

	width := max(m.width-2, 10)
	var sections []string

	sections = append(sections,
		titleStyle.Render("EEG Signal Analyzer"),
		subtitleStyle.Render(m.statusLine()),
		"",
	)

	display := m.sess.Display()
	sections = append(sections, headerStyle.Render(fmt.Sprintf("Signal (%d samples)", len(display))))
	if len(display) == 0 {
		sections = append(sections, subtitleStyle.Render("press space to start"))
	} else {
		for _, row := range renderBars(waveformLevels(display, width), plotHeight) {
			sections = append(sections, signalStyle.Render(row))
		}
		sections = append(sections, statusStyle.Render(signalLine(display)))
	}
	sections = append(sections, "")

	bins := m.sess.Spectrum()
	sections = append(sections, headerStyle.Render(fmt.Sprintf("Spectrum 0-%.0f Hz", m.sess.MaxFrequencyHz())))
	if len(bins) == 0 {
		sections = append(sections, subtitleStyle.Render(fmt.Sprintf("waiting for more than %d samples", m.sess.Config().SpectrumThreshold)))
	} else {
		levels := m.bars.pos
		if len(levels) != len(bins) {
			levels = spectrumLevels(bins)
		}
		for _, row := range renderBars(levels, plotHeight) {
			sections = append(sections, spectrumStyle.Render(row))
		}
		sections = append(sections, statusStyle.Render(bandLine(bins)))
	}
	sections = append(sections, "")

	if m.err != nil {
		sections = append(sections, errorStyle.Render("error: "+m.err.Error()))
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) statusLine() string {
	parts := []string{
		m.sess.Mode().String(),
		m.status,
		fmt.Sprintf("speed %d (%s)", m.sess.Speed(), m.sess.Interval()),
		fmt.Sprintf("gain %.1fx", m.sess.Gain()),
		fmt.Sprintf("recorded %d", len(m.sess.Recorded())),
	}
	if cursor, total := m.sess.Progress(); total > 0 {
		parts = append(parts, fmt.Sprintf("%d/%d", cursor, total))
	}
	return strings.Join(parts, "  ·  ")
}

func signalLine(display []signal.Sample) string {
	st := timestats.Calculate(display)
	return fmt.Sprintf("mean %.1f  std %.1f  p-p %.1f  crossings %d",
		st.Mean, st.StdDev, st.PeakToPeak, st.MeanCrossings)
}

func bandLine(bins []spectrum.Bin) string {
	peak, ok := spectrum.Peak(bins)
	if !ok {
		return ""
	}
	shape := frequency.Calculate(bins)
	parts := []string{
		fmt.Sprintf("peak %.1f Hz", peak.Frequency),
		fmt.Sprintf("centroid %.1f Hz", shape.Centroid),
	}
	for _, band := range spectrum.EEGBands() {
		parts = append(parts, fmt.Sprintf("%s %.2f", band.Name, spectrum.BandPower(bins, band.LoHz, band.HiHz)))
	}
	return strings.Join(parts, "  ")
}
