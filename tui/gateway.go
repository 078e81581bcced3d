// Package tui hosts a game session in a Bubble Tea terminal: a
// transcript viewport, a status bar, and an input line. The session
// runs on its own goroutine and talks to the program through a bridged
// Gateway; only rendered text crosses the bridge.
package tui

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nmoretto/fieldops/engine"
)

// ErrClosed reports that the terminal went away while the session
// waited for input.
var ErrClosed = errors.New("tui: input closed")

// sender is the part of tea.Program the bridge sends through. Tests
// substitute a recorder.
type sender interface {
	Send(tea.Msg)
}

// Gateway bridges a session goroutine and the Update loop. Output and
// status cross as program messages; prompt replies come back over a
// channel whose sending side the model owns.
type Gateway struct {
	prog    sender
	replies chan string
}

var (
	_ engine.Gateway    = (*Gateway)(nil)
	_ engine.StatusSink = (*Gateway)(nil)
)

func newGateway() *Gateway {
	return &Gateway{replies: make(chan string, 1)}
}

// Say forwards one transcript line.
func (g *Gateway) Say(text string) {
	g.prog.Send(sayMsg{text: text})
}

// Prompt shows the prompt on the input line and blocks until the player
// submits a reply. A closed reply channel means the terminal is gone;
// the session unwinds on ErrClosed.
func (g *Gateway) Prompt(prompt string) (string, error) {
	g.prog.Send(promptMsg{prompt: prompt})
	reply, ok := <-g.replies
	if !ok {
		return "", ErrClosed
	}
	return reply, nil
}

// Pause discards pacing beats; the transcript arrives unthrottled.
func (g *Gateway) Pause(time.Duration) {}

// Status forwards the rendered status line.
func (g *Gateway) Status(text string) {
	g.prog.Send(statusMsg{text: text})
}
