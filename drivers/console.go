package drivers

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/reusee/aoc2019/intcode"
	"github.com/reusee/aoc2019/logs"
	"github.com/reusee/aoc2019/programs"
)

// Console drives a machine from a line oriented reader, one integer per line,
// printing every output value on its own line.
type Console struct {
	In     io.Reader
	Out    io.Writer
	Logger logs.Logger

	// shared by every Run, lines read ahead stay available to the next machine
	initScanner sync.Once
	scanner     *bufio.Scanner
}

func (Module) Console(
	stdin programs.Stdin,
	stdout Stdout,
	logger logs.Logger,
) *Console {
	return &Console{
		In:     stdin,
		Out:    stdout,
		Logger: logger,
	}
}

// Run runs m with input, then blocks on In whenever the machine needs more.
// Outputs are written as soon as the machine suspends, so prompts appear before reads.
// InputRequired is returned when In is exhausted before the machine halts.
func (c *Console) Run(ctx context.Context, m *intcode.Machine, input string) (intcode.Outcome, error) {
	var outcome intcode.Outcome
	c.initScanner.Do(func() {
		c.scanner = bufio.NewScanner(c.In)
	})
	scanner := c.scanner
	flushed := len(m.Output())
	var readErr error

	flush := func() error {
		output := m.Output()
		for _, v := range output[flushed:] {
			if _, err := fmt.Fprintln(c.Out, v); err != nil {
				return err
			}
		}
		flushed = len(output)
		return nil
	}

	source := func() (string, bool) {
		if err := flush(); err != nil {
			readErr = err
			return "", false
		}
		if ctx.Err() != nil {
			return "", false
		}
		if !scanner.Scan() {
			readErr = scanner.Err()
			return "", false
		}
		line := scanner.Text()
		if c.Logger != nil {
			c.Logger.DebugContext(ctx, "console input", "line", line, "ip", m.IP)
		}
		return line, true
	}

	for o, err := range m.Events(input, source) {
		if err != nil {
			return o, logs.WrapSession(ctx, err)
		}
		outcome = o
		if err := flush(); err != nil {
			return outcome, err
		}
	}
	if readErr != nil {
		return outcome, logs.WrapSession(ctx, readErr)
	}
	if err := ctx.Err(); err != nil {
		return outcome, err
	}

	if c.Logger != nil {
		c.Logger.InfoContext(ctx, "console run",
			"outcome", outcome.String(),
			"outputs", flushed,
			"ip", m.IP,
		)
	}
	return outcome, nil
}
