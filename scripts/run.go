package scripts

import (
	"context"
	"fmt"

	"github.com/reusee/aoc2019/drivers"
	"github.com/reusee/aoc2019/intcode"
	"github.com/reusee/aoc2019/logs"
	"github.com/reusee/aoc2019/machineconfigs"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
	Recursion:       true,
}

// Run executes a starlark script that drives machines.
// program is the default program text for machine() calls without arguments.
// src is anything starlark.ExecFileOptions accepts; nil reads filename.
type Run func(ctx context.Context, filename string, src any, program string) (starlark.StringDict, error)

func (Module) Run(
	newMachine machineconfigs.NewMachine,
	newSession logs.NewSession,
	logger logs.Logger,
	stdout drivers.Stdout,
) Run {
	return func(ctx context.Context, filename string, src any, program string) (starlark.StringDict, error) {
		ctx, _ = newSession(ctx, "script "+filename)

		predeclared := starlark.StringDict{
			"HALTED":          outcomeValue(intcode.Halted),
			"INPUT_REQUIRED":  outcomeValue(intcode.InputRequired),
			"OUTPUT_PRODUCED": outcomeValue(intcode.OutputProduced),
			"PROGRAM":         starlark.String(program),
			"machine": starlark.NewBuiltin("machine", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
				text := program
				if err := starlark.UnpackArgs(b.Name(), args, kwargs, "program?", &text); err != nil {
					return nil, err
				}
				if text == "" {
					return nil, fmt.Errorf("%s: no program", b.Name())
				}
				m, err := newMachine(text)
				if err != nil {
					return nil, err
				}
				return &Machine{
					M: m,
				}, nil
			}),
		}

		thread := &starlark.Thread{
			Name: filename,
			Print: func(_ *starlark.Thread, msg string) {
				fmt.Fprintln(stdout, msg)
			},
		}

		done := make(chan struct{})
		defer close(done)
		go func() {
			select {
			case <-ctx.Done():
				thread.Cancel(ctx.Err().Error())
			case <-done:
			}
		}()

		globals, err := starlark.ExecFileOptions(fileOptions, thread, filename, src, predeclared)
		if err != nil {
			if evalErr, ok := err.(*starlark.EvalError); ok {
				logger.ErrorContext(ctx, "script failed",
					"backtrace", evalErr.Backtrace(),
				)
			}
			return nil, logs.WrapSession(ctx, err)
		}
		logger.InfoContext(ctx, "script done",
			"globals", len(globals),
		)
		return globals, nil
	}
}
