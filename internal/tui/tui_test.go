package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/eegscope/dsp/signal"
	"github.com/cwbudde/eegscope/dsp/spectrum"
	"github.com/cwbudde/eegscope/internal/session"
)

func newModel(t *testing.T) Model {
	t.Helper()
	g := signal.NewGenerator(nil, signal.WithSeed(7))
	sess, err := session.New(session.DefaultConfig(), session.WithGenerator(g))
	require.NoError(t, err)
	m := New(sess, Options{SaveDir: t.TempDir()})
	m.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestRenderBars(t *testing.T) {
	rows := renderBars([]float64{0, 0.5, 1, 2, -1}, 2)
	require.Len(t, rows, 2)
	require.Equal(t, []rune{' ', ' ', '█', '█', ' '}, []rune(rows[0]))
	require.Equal(t, []rune{' ', '█', '█', '█', ' '}, []rune(rows[1]))
}

func TestRenderBarsPartialCell(t *testing.T) {
	rows := renderBars([]float64{0.5}, 1)
	require.Equal(t, "▄", rows[0])
}

func TestWaveformLevels(t *testing.T) {
	samples := []signal.Sample{{Value: 10}, {Value: 20}, {Value: 30}, {Value: 40}, {Value: 50}}

	levels := waveformLevels(samples, 3)
	require.Len(t, levels, 3)
	require.InDeltaSlice(t, []float64{0.5, 0.75, 1}, levels, 1e-12)

	levels = waveformLevels(samples, 10)
	require.Len(t, levels, 5)
	require.InDelta(t, 0.0, levels[0], 1e-12)

	flat := []signal.Sample{{Value: 3}, {Value: 3}}
	require.Equal(t, []float64{0.5, 0.5}, waveformLevels(flat, 4))
	require.Nil(t, waveformLevels(nil, 4))
}

func TestSpectrumLevelsIgnoreDC(t *testing.T) {
	bins := []spectrum.Bin{
		{Frequency: 0, Magnitude: 250},
		{Frequency: 5, Magnitude: 1},
		{Frequency: 10, Magnitude: 4},
	}
	require.InDeltaSlice(t, []float64{0, 0.25, 1}, spectrumLevels(bins), 1e-12)
	require.Equal(t, []float64{}, spectrumLevels([]spectrum.Bin{}))
}

func TestPlayStartsTickChain(t *testing.T) {
	m := newModel(t)

	m, cmd := m.handleMsg(keyRunes(" "))
	require.NotNil(t, cmd)
	require.True(t, m.sess.Running())
	require.Equal(t, "running", m.status)

	for range 15 {
		m, cmd = m.handleMsg(tickMsg{gen: m.gen})
		require.NotNil(t, cmd)
	}
	require.Len(t, m.sess.Display(), 15)
	require.NotEmpty(t, m.sess.Spectrum())
	require.Len(t, m.bars.pos, len(m.sess.Spectrum()))

	m, _ = m.handleMsg(keyRunes(" "))
	require.False(t, m.sess.Running())
	require.Equal(t, "paused", m.status)
}

func TestStaleTickIgnored(t *testing.T) {
	m := newModel(t)
	m, _ = m.handleMsg(keyRunes(" "))
	stale := m.gen
	m, _ = m.handleMsg(keyRunes(" "))
	m, _ = m.handleMsg(keyRunes(" "))
	require.NotEqual(t, stale, m.gen)

	m, cmd := m.handleMsg(tickMsg{gen: stale})
	require.Nil(t, cmd)
	require.Empty(t, m.sess.Display())
}

func TestTickWhilePausedIgnored(t *testing.T) {
	m := newModel(t)
	m, cmd := m.handleMsg(tickMsg{gen: m.gen})
	require.Nil(t, cmd)
	require.Empty(t, m.sess.Display())
}

func TestReplayEndPauses(t *testing.T) {
	m := newModel(t)
	require.NoError(t, m.sess.LoadReplay([]signal.Sample{{Time: 0, Value: 1}, {Time: 0.01, Value: 2}}))

	m, _ = m.handleMsg(keyRunes(" "))
	m, _ = m.handleMsg(tickMsg{gen: m.gen})
	m, _ = m.handleMsg(tickMsg{gen: m.gen})
	m, cmd := m.handleMsg(tickMsg{gen: m.gen})
	require.Nil(t, cmd)
	require.False(t, m.sess.Running())
	require.Equal(t, "end of data", m.status)
	require.Len(t, m.sess.Recorded(), 2)

	m, cmd = m.handleMsg(keyRunes(" "))
	require.Nil(t, cmd)
	require.False(t, m.sess.Running())
	require.Contains(t, m.status, "rewind")

	m, _ = m.handleMsg(keyRunes("r"))
	require.Empty(t, m.sess.Recorded())
	m, cmd = m.handleMsg(keyRunes(" "))
	require.NotNil(t, cmd)
	require.True(t, m.sess.Running())
}

func TestGainAndSpeedKeys(t *testing.T) {
	m := newModel(t)
	m, _ = m.handleMsg(keyRunes("+"))
	require.InDelta(t, 1.1, m.sess.Gain(), 1e-12)
	m, _ = m.handleMsg(keyRunes("-"))
	m, _ = m.handleMsg(keyRunes("-"))
	require.InDelta(t, 0.9, m.sess.Gain(), 1e-12)

	m, _ = m.handleMsg(tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, 55, m.sess.Speed())
	m, _ = m.handleMsg(tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = m.handleMsg(tea.KeyMsg{Type: tea.KeyLeft})
	require.Equal(t, 45, m.sess.Speed())
}

func TestGeneratedKeyLeavesReplay(t *testing.T) {
	m := newModel(t)
	require.NoError(t, m.sess.LoadReplay([]signal.Sample{{Time: 0, Value: 1}}))
	m, _ = m.handleMsg(keyRunes("g"))
	require.Equal(t, session.ModeGenerated, m.sess.Mode())
}

func TestSaveWritesRecording(t *testing.T) {
	m := newModel(t)

	m, cmd := m.handleMsg(keyRunes("s"))
	require.Nil(t, cmd)
	require.Equal(t, "nothing recorded yet", m.status)

	m.sess.SetRunning(true)
	for range 3 {
		_, err := m.sess.Tick()
		require.NoError(t, err)
	}
	m, cmd = m.handleMsg(keyRunes("s"))
	require.NotNil(t, cmd)

	msg, ok := cmd().(savedMsg)
	require.True(t, ok)
	require.NoError(t, msg.err)
	require.True(t, strings.HasSuffix(msg.path, "eeg_recording_1700000000000.csv"))

	m, _ = m.handleMsg(msg)
	require.Contains(t, m.status, "saved")
}

func TestQuit(t *testing.T) {
	m := newModel(t)
	m, cmd := m.handleMsg(keyRunes("q"))
	require.NotNil(t, cmd)
	require.True(t, m.quitting)
	require.Empty(t, m.View())
}

func TestViewShowsStateAndBands(t *testing.T) {
	m := newModel(t)
	m, _ = m.handleMsg(tea.WindowSizeMsg{Width: 100, Height: 40})
	require.Contains(t, m.View(), "press space to start")

	m, _ = m.handleMsg(keyRunes(" "))
	for range 20 {
		m, _ = m.handleMsg(tickMsg{gen: m.gen})
	}
	view := m.View()
	require.Contains(t, view, "EEG Signal Analyzer")
	require.Contains(t, view, "generated")
	require.Contains(t, view, "gain 1.0x")
	require.Contains(t, view, "recorded 20")
	require.Contains(t, view, "peak ")
	require.Contains(t, view, "delta")
	require.Contains(t, view, "alpha")
	require.Contains(t, view, "centroid")
	require.Contains(t, view, "mean ")
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func openModel(t *testing.T, dir string) Model {
	t.Helper()
	m := newModel(t)
	m.opts.SaveDir = dir
	m, _ = m.handleMsg(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m
}

// runLoad executes the command returned when a file is chosen.
func runLoad(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(loadedMsg)
	require.True(t, ok)
	m, _ = m.handleMsg(msg)
	return m
}

func TestOpenLoadsSelectedRecording(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "empty.csv", "Time (s),Signal Value\n")
	writeFile(t, dir, "notes.md", "not a recording")
	writeFile(t, dir, "rec.csv", "Time (s),Signal Value\n0,1\n0.01,2\n0.02,3\n")

	m := openModel(t, dir)
	m, _ = m.handleMsg(keyRunes(" "))
	require.True(t, m.sess.Running())

	m, _ = m.handleMsg(keyRunes("o"))
	require.NotNil(t, m.browser)
	require.False(t, m.sess.Running())
	require.Contains(t, m.View(), "rec.csv")
	require.NotContains(t, m.View(), "notes.md")

	m, _ = m.handleMsg(tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := m.handleMsg(tea.KeyMsg{Type: tea.KeyEnter})
	require.Nil(t, m.browser)
	m = runLoad(t, m, cmd)

	require.Equal(t, "loaded 3 points from rec.csv", m.status)
	require.Equal(t, session.ModeReplay, m.sess.Mode())
	cursor, total := m.sess.Progress()
	require.Equal(t, 0, cursor)
	require.Equal(t, 3, total)
	require.Empty(t, m.sess.Recorded())
}

func TestOpenReportsNoUsableData(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "empty.csv", "Time (s),Signal Value\nfoo,bar\n")

	m := openModel(t, dir)
	m, _ = m.handleMsg(keyRunes("o"))
	m, cmd := m.handleMsg(tea.KeyMsg{Type: tea.KeyEnter})
	m = runLoad(t, m, cmd)

	require.Equal(t, "no usable data in empty.csv", m.status)
	require.Equal(t, session.ModeGenerated, m.sess.Mode())
	require.NoError(t, m.err)
}

func TestOpenTypedPath(t *testing.T) {
	path := writeFile(t, t.TempDir(), "take.csv", "Time (s),Signal Value\n0,5\n0.01,6\n")

	m := openModel(t, t.TempDir())
	m, _ = m.handleMsg(keyRunes("o"))
	m, _ = m.handleMsg(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.browser)
	require.True(t, m.browser.pathMode)
	require.Contains(t, m.View(), "Path:")

	m, _ = m.handleMsg(keyRunes(path))
	m, cmd := m.handleMsg(tea.KeyMsg{Type: tea.KeyEnter})
	m = runLoad(t, m, cmd)
	require.Equal(t, "loaded 2 points from take.csv", m.status)
}

func TestOpenCancelKeepsSource(t *testing.T) {
	m := openModel(t, t.TempDir())
	m, _ = m.handleMsg(keyRunes("o"))
	m, cmd := m.handleMsg(keyRunes("q"))
	require.Nil(t, cmd)
	require.Nil(t, m.browser)
	require.False(t, m.quitting)
	require.Equal(t, "open cancelled", m.status)
	require.Equal(t, session.ModeGenerated, m.sess.Mode())
}

func TestOpenAfterGeneratedReturnsToReplay(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "rec.csv", "Time (s),Signal Value\n0,1\n0.01,2\n")

	m := openModel(t, dir)
	require.NoError(t, m.sess.LoadReplay([]signal.Sample{{Time: 0, Value: 9}}))
	m, _ = m.handleMsg(keyRunes("g"))
	require.Equal(t, session.ModeGenerated, m.sess.Mode())

	m, _ = m.handleMsg(keyRunes("o"))
	m, cmd := m.handleMsg(tea.KeyMsg{Type: tea.KeyEnter})
	m = runLoad(t, m, cmd)
	require.Equal(t, session.ModeReplay, m.sess.Mode())
}
