package shell

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/assistant/internal/logging"
)

// helpBarHeight is the number of lines reserved for the help bar at the bottom.
const helpBarHeight = 1

// inputHeight is the number of lines reserved for the prompt line.
const inputHeight = 1

type entryKind int

const (
	entryGreeting entryKind = iota
	entryInput
	entryReply
	entryError
)

// entry is one transcript line.
type entry struct {
	kind entryKind
	text string
}

// Model is the Bubble Tea model for the interactive shell: a scrolling
// transcript above a single-line prompt and a help bar.
type Model struct {
	handler    LineHandler
	logger     *slog.Logger
	prompt     string
	limit      int
	transcript []entry
	input      textinput.Model
	viewport   viewport.Model
	help       help.Model
	keys       shellKeys
	width      int
	height     int
	quitting   bool
}

// ModelOption configures optional Model behavior.
type ModelOption func(*Model)

// WithLogger sets the activity logger.
func WithLogger(l *slog.Logger) ModelOption {
	return func(m *Model) {
		m.logger = l
	}
}

// WithGreeting adds a greeting as the first transcript line.
func WithGreeting(s string) ModelOption {
	return func(m *Model) {
		if s != "" {
			m.transcript = append(m.transcript, entry{kind: entryGreeting, text: s})
		}
	}
}

// WithHistoryLimit caps the transcript at n lines; 0 keeps everything.
func WithHistoryLimit(n int) ModelOption {
	return func(m *Model) {
		m.limit = n
	}
}

// NewModel creates a Model that sends submitted lines to h.
func NewModel(h LineHandler, prompt string, opts ...ModelOption) Model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(prompt)
	ti.Placeholder = "help"
	ti.Focus()

	m := Model{
		handler:  h,
		logger:   logging.Discard(),
		prompt:   prompt,
		input:    ti,
		viewport: viewport.New(0, 0),
		help:     help.New(),
		keys:     KeyMap(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.trim()
	m.viewport.SetContent(m.renderTranscript())
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-lipgloss.Width(m.input.Prompt)-1, 0)
		m.viewport.Width = msg.Width
		m.viewport.Height = m.transcriptHeight()
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.PageUp), key.Matches(msg, m.keys.PageDown):
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit runs the current input line and appends the exchange to the transcript.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()

	r := handleLine(m.handler, m.logger, line)
	m.transcript = append(m.transcript, entry{kind: entryInput, text: m.prompt + line})
	if r.Text != "" {
		kind := entryReply
		if r.Err != nil {
			kind = entryError
		}
		for _, l := range strings.Split(r.Text, "\n") {
			m.transcript = append(m.transcript, entry{kind: kind, text: l})
		}
	}
	m.trim()
	m.refresh()

	if r.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// trim drops the oldest transcript lines beyond the history limit.
func (m *Model) trim() {
	if m.limit > 0 && len(m.transcript) > m.limit {
		m.transcript = append([]entry(nil), m.transcript[len(m.transcript)-m.limit:]...)
	}
}

// refresh re-renders the transcript into the viewport and scrolls to the end.
func (m *Model) refresh() {
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

func (m Model) renderTranscript() string {
	lines := make([]string, len(m.transcript))
	for i, e := range m.transcript {
		lines[i] = entryStyle(e.kind).Render(e.text)
	}
	return strings.Join(lines, "\n")
}

// transcriptHeight returns the usable height for the transcript,
// accounting for the prompt line and the help bar.
func (m Model) transcriptHeight() int {
	h := m.height - inputHeight - helpBarHeight
	if h < 1 {
		return 1
	}
	return h
}

// Transcript returns the plain text of every transcript line.
func (m Model) Transcript() []string {
	out := make([]string, len(m.transcript))
	for i, e := range m.transcript {
		out[i] = e.text
	}
	return out
}

// View renders the transcript, prompt and help bar.
func (m Model) View() string {
	if m.quitting {
		// Leave the transcript on screen after the program exits.
		return m.renderTranscript() + "\n"
	}
	if m.width == 0 || m.height == 0 {
		return m.renderTranscript() + "\n" + m.input.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewport.View(),
		m.input.View(),
		m.help.View(m.keys),
	)
}
