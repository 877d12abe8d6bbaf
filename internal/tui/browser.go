package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cwbudde/eegscope/internal/sampleio"
)

type fileItem struct {
	name string
	size int64
}

func (i fileItem) Title() string       { return i.name }
func (i fileItem) Description() string { return fmt.Sprintf("%s, %d bytes", filepath.Ext(i.name), i.size) }
func (i fileItem) FilterValue() string { return i.name }

type pathItem struct{}

func (pathItem) Title() string       { return "Enter a path..." }
func (pathItem) Description() string { return "open a recording outside this directory" }
func (pathItem) FilterValue() string { return "path" }

// browser picks a recording to replay. It lists the loadable files of one
// directory and falls back to a typed path.
type browser struct {
	dir      string
	list     list.Model
	input    textinput.Model
	pathMode bool

	// chosen is set once the user confirmed a file; done is set on both
	// confirm and cancel.
	chosen string
	done   bool
}

func newBrowser(dir string, width, height int) (browser, error) {
	if dir == "" {
		dir = "."
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return browser{}, fmt.Errorf("cannot read directory: %w", err)
	}

	var items []list.Item
	for _, e := range entries {
		if e.IsDir() || !sampleio.Supported(e.Name()) {
			continue
		}
		var size int64
		if info, err := e.Info(); err == nil {
			size = info.Size()
		}
		items = append(items, fileItem{name: e.Name(), size: size})
	}
	items = append(items, pathItem{})

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.AdaptiveColor{Light: "#1E3A8A", Dark: "#93C5FD"}).
		BorderLeftForeground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"}).
		BorderLeftForeground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})

	l := list.New(items, delegate, max(width, 20), max(height-2, 10))
	l.Title = "Open recording (" + strings.Join(sampleio.Extensions(), " ") + ")"
	l.Styles.Title = headerStyle
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	// Leaving the browser is handled here, never by quitting the program.
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)

	ti := textinput.New()
	ti.Placeholder = "path/to/recording.csv"
	ti.CharLimit = 4096
	ti.Width = max(width-4, 20)

	return browser{dir: dir, list: l, input: ti}, nil
}

func (b browser) update(msg tea.Msg) (browser, tea.Cmd) {
	if b.pathMode {
		return b.updatePath(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if b.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			switch item := b.list.SelectedItem().(type) {
			case pathItem:
				b.pathMode = true
				return b, b.input.Focus()
			case fileItem:
				b.chosen = filepath.Join(b.dir, item.name)
				b.done = true
				return b, nil
			}
		case "q", "esc", "ctrl+c":
			b.done = true
			return b, nil
		}

	case tea.WindowSizeMsg:
		b.list.SetSize(msg.Width, max(msg.Height-2, 10))
		return b, nil
	}

	var cmd tea.Cmd
	b.list, cmd = b.list.Update(msg)
	return b, cmd
}

func (b browser) updatePath(msg tea.Msg) (browser, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			if path := strings.TrimSpace(b.input.Value()); path != "" {
				b.chosen = path
				b.done = true
			}
			return b, nil
		case "esc":
			b.pathMode = false
			b.input.Reset()
			b.input.Blur()
			return b, nil
		case "ctrl+c":
			b.done = true
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.input, cmd = b.input.Update(msg)
	return b, cmd
}

func (b browser) view() string {
	if b.pathMode {
		return lipgloss.JoinVertical(lipgloss.Left,
			headerStyle.Render("Open recording"),
			"",
			statusStyle.Render("Path:"),
			b.input.View(),
			"",
			subtitleStyle.Render("enter open  esc back  ctrl+c cancel"),
		)
	}
	return b.list.View()
}
