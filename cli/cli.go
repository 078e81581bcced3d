// Package cli implements the plain-terminal presentation gateway: line
// output, blocking line input, and real pacing pauses. It is the
// fallback for pipes and non-terminal hosts.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/nmoretto/fieldops/engine"
)

// Console is an engine.Gateway over a reader/writer pair. Echo reprints
// each input line after its prompt so piped transcripts stay readable.
type Console struct {
	Out  io.Writer
	Echo bool

	scanner *bufio.Scanner
}

var _ engine.Gateway = (*Console)(nil)

// NewConsole wires a console gateway to the given streams.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		Out:     out,
		scanner: bufio.NewScanner(in),
	}
}

func (c *Console) Say(text string) {
	fmt.Fprintln(c.Out, text)
}

// Prompt prints the prompt and blocks for one line. It returns io.EOF
// when the input stream ends, or the scanner's error when reading
// fails.
func (c *Console) Prompt(prompt string) (string, error) {
	fmt.Fprint(c.Out, prompt)
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	line := c.scanner.Text()
	if c.Echo {
		fmt.Fprintln(c.Out, line)
	}
	return line, nil
}

func (c *Console) Pause(d time.Duration) {
	time.Sleep(d)
}
