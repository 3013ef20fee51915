package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/wavescope/internal/decode"
	"github.com/olivier-w/wavescope/internal/frame"
	"github.com/olivier-w/wavescope/internal/termview"
	"github.com/olivier-w/wavescope/internal/util"
	"github.com/olivier-w/wavescope/internal/view"
)

// ChromeRows is the number of terminal rows View uses around the waveform.
const ChromeRows = 11

// ChromeCols is the number of terminal columns View uses around the waveform.
const ChromeCols = 4

// Model is the Bubbletea model for the wavescope TUI. Wheel and key events
// are accumulated between ticks and handed to the frame loop once per tick.
type Model struct {
	loop     *frame.Loop
	screen   *termview.Presenter
	metadata decode.Metadata
	pending  view.Input
	overview overview
	width    int
	quitting bool
	err      error
}

// New creates a Model drawing loop's frames through screen.
func New(loop *frame.Loop, screen *termview.Presenter, meta decode.Metadata) Model {
	return Model{
		loop:     loop,
		screen:   screen,
		metadata: meta,
		overview: newOverview(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), tea.SetWindowTitle(windowTitle(m.metadata.Title)))
}

// Err returns the error that stopped the model, if any.
func (m Model) Err() error { return m.err }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isQuit(msg) {
			m.quitting = true
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}
		if in, ok := keyInput(msg); ok {
			m.pending = accumulate(m.pending, in)
		}
		return m, nil

	case tea.MouseMsg:
		if in, ok := wheelInput(msg); ok {
			m.pending = accumulate(m.pending, in)
		}
		return m, nil

	case tickMsg:
		if m.quitting {
			return m, nil
		}
		src := pendingSource{in: m.pending}
		m.pending = view.Input{}
		if _, err := m.loop.Step(src, m.screen); err != nil {
			m.err = err
			m.quitting = true
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}
		ctrl := m.loop.Controller()
		m.overview.update(ctrl.Range(), ctrl.N())
		return m, tickCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}

	return m, nil
}

// pendingSource hands one tick's accumulated input to the frame loop.
// Quitting is handled by Update, so it never reports quit.
type pendingSource struct {
	in view.Input
}

func (s pendingSource) Poll() (view.Input, bool) { return s.in, false }

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	f := m.screen.Frame()
	w := m.width
	if w < 30 {
		w = 50
	}

	header := headerStyle.Render("wavescope")
	title := titleStyle.Render(m.metadata.Title)
	subtitle := artistStyle.Render(m.metadata.Subtitle())

	spanText, zoomText := m.statusText(f)
	gap := max(w-len(spanText)-len(zoomText)-ChromeCols, 2)
	statusLine := timeStyle.Render(spanText) + strings.Repeat(" ", gap) + statusStyle.Render(zoomText)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + header + "\n")
	b.WriteString("\n")
	b.WriteString("  " + title + "\n")
	b.WriteString("  " + subtitle + "\n")
	b.WriteString("\n")
	b.WriteString(indent(m.screen.Text(), "  "))
	b.WriteString("\n\n")
	b.WriteString("  " + statusLine + "\n")
	b.WriteString("  " + m.overview.render(w-ChromeCols) + "\n")
	b.WriteString("\n")
	b.WriteString("  " + helpStyle.Render(helpText()) + "\n")
	return b.String()
}

// statusText describes the visible time span and the magnification.
func (m Model) statusText(f frame.Frame) (span, zoom string) {
	if f.N == 0 {
		return "", ""
	}
	store := m.loop.Store()
	span = util.FormatSpan(
		store.Duration(f.Range.Start),
		store.Duration(f.Range.End()),
		store.Duration(f.N))
	zoom = util.FormatZoom(float64(f.N) / float64(f.Range.Length))
	return span, zoom
}

func indent(s, prefix string) string {
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

func windowTitle(title string) string {
	if title == "" {
		return "wavescope"
	}
	return title + " - wavescope"
}
