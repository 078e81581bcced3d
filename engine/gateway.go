package engine

import (
	"strconv"
	"strings"
	"time"
)

// Gateway is the presentation capability the game talks through. Say
// renders a line, Prompt blocks until the host yields one, and Pause
// inserts a cosmetic beat between narrative lines. Prompt fails only when
// the host can no longer yield input, which unwinds the session.
type Gateway interface {
	Say(text string)
	Prompt(prompt string) (string, error)
	Pause(d time.Duration)
}

// StatusSink is an optional Gateway capability. Hosts with a persistent
// status line receive a freshly rendered one after every state change;
// plain hosts simply never implement it.
type StatusSink interface {
	Status(text string)
}

// ParseChoice parses a 1-based menu selection, rejecting anything that is
// not an integer in [1, n].
func ParseChoice(input string, n int) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || v < 1 || v > n {
		return 0, false
	}
	return v, true
}

// Expand substitutes {placeholder} pairs into a content template.
func Expand(tmpl string, pairs ...string) string {
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
