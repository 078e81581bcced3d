package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"
)

// rawLine stores an unstyled transcript line with its classification,
// so the whole pane can re-wrap and re-style on resize.
type rawLine struct {
	text    string
	kind    lineKind
	isInput bool // echoed player input
}

// Messages crossing from the session goroutine into the Update loop.
type (
	sayMsg    struct{ text string }
	promptMsg struct{ prompt string }
	statusMsg struct{ text string }
	doneMsg   struct{}
)

// Model is the Bubble Tea model for the fieldops TUI.
type Model struct {
	viewport viewport.Model
	input    textinput.Model
	history  *History

	rawLines []rawLine
	replies  chan string

	status   string
	width    int
	height   int
	ready    bool
	awaiting bool // a prompt is outstanding
	closed   bool // replies channel closed
	quitting bool
}

// New creates a model that feeds submitted lines into replies.
func New(replies chan string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 256
	ti.PromptStyle = styleInputPrompt

	return Model{
		input:   ti,
		history: NewHistory(100),
		replies: replies,
		status:  appName,
	}
}

// Run hosts one session in the terminal. The session function runs on
// its own goroutine against the bridged gateway; its error is returned
// once the program exits. A ctrl+c quit closes the reply channel, so
// the session unwinds through ErrClosed.
func Run(session func(gw *Gateway) error) error {
	gw := newGateway()
	p := tea.NewProgram(New(gw.replies), tea.WithAltScreen(), tea.WithMouseCellMotion())
	gw.prog = p

	done := make(chan error, 1)
	go func() {
		err := session(gw)
		done <- err
		p.Send(doneMsg{})
	}()

	if _, err := p.Run(); err != nil {
		return err
	}
	return <-done
}

// Init starts the input cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles terminal events and session messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := m.height - 2 // 1 status bar + 1 input line
		if vpHeight < 1 {
			vpHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.KeyMap = viewportKeyMap()
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}

		m.refreshViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m = m.closeInput()
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "up":
			if prev, ok := m.history.Prev(); ok {
				m.input.SetValue(prev)
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if next, ok := m.history.Next(); ok {
				m.input.SetValue(next)
				m.input.CursorEnd()
			} else {
				m.input.SetValue("")
			}
			return m, nil

		case "pgup", "pgdown":
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}

	case sayMsg:
		m = m.appendLine(msg.text)

	case promptMsg:
		m.awaiting = true
		m.input.Prompt = msg.prompt

	case statusMsg:
		m.status = msg.text

	case doneMsg:
		m = m.closeInput()
		m.quitting = true
		return m, tea.Quit
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	cmds = append(cmds, inputCmd)

	return m, tea.Batch(cmds...)
}

// handleEnter submits the typed line to the session. Without an
// outstanding prompt there is nobody to take it, so the line stays put.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	if !m.awaiting || m.closed {
		return m, nil
	}

	value := m.input.Value()
	m.input.SetValue("")
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		m.history.Push(trimmed)
	}

	m = m.appendEcho(m.input.Prompt + value)
	m.awaiting = false
	m.replies <- value
	return m, nil
}

// closeInput closes the reply channel once so a blocked Prompt unwinds.
func (m Model) closeInput() Model {
	if !m.closed {
		m.closed = true
		close(m.replies)
	}
	return m
}

// appendLine adds one session line to the transcript.
func (m Model) appendLine(text string) Model {
	m.rawLines = append(m.rawLines, rawLine{text: text, kind: classifyLine(text)})
	m.refreshViewport()
	return m
}

// appendEcho adds the submitted prompt and answer as one line.
func (m Model) appendEcho(text string) Model {
	m.rawLines = append(m.rawLines, rawLine{text: text, isInput: true})
	m.refreshViewport()
	return m
}

// refreshViewport re-wraps and re-styles the transcript at the current
// width and pins the view to the newest line.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	width := m.width
	if width < 10 {
		width = 10
	}

	styled := make([]string, 0, len(m.rawLines))
	for _, rl := range m.rawLines {
		if rl.text == "" {
			styled = append(styled, "")
			continue
		}

		wrapped := wordwrap.String(rl.text, width)
		if rl.isInput {
			styled = append(styled, styleEcho.Render(wrapped))
			continue
		}
		styled = append(styled, renderLineKind(wrapped, rl.kind))
	}

	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

// View renders the full layout: viewport + status bar + input.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}
	return m.viewport.View() + "\n" + m.renderStatusBar() + "\n" + m.input.View()
}

// viewportKeyMap returns a viewport keymap with Up/Down disabled
// (those drive input history).
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
