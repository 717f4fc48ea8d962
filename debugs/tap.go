package debugs

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/reusee/aoc2019/intcode"
	"github.com/reusee/aoc2019/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a starlark REPL over the state of a machine, usually one that just failed.
type Tap func(ctx context.Context, what string, m *intcode.Machine)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, m *intcode.Machine) {
		globals := MachineGlobals(m)
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "tap",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, globals)
	}
}

type state struct {
	IP           int
	RelativeBase int64
	MemorySize   int
	ExitOnOutput bool
}

// MachineGlobals snapshots m for inspection.
// peek and disasm read the live machine.
func MachineGlobals(m *intcode.Machine) starlark.StringDict {
	globals := starlark.StringDict{
		"state":  toStarlarkValue(state{m.IP, m.RelativeBase, m.MemorySize(), m.ExitOnOutput()}),
		"memory": toStarlarkValue(m.Memory()),
		"output": toStarlarkValue(m.Output()),

		"disasm": toStarlarkValue(func(from int, n int) []string {
			var lines []string
			for pos, text := range intcode.Disassemble(m.Memory()) {
				if pos < from {
					continue
				}
				if len(lines) >= n {
					break
				}
				lines = append(lines, fmt.Sprintf("%d: %s", pos, text))
			}
			return lines
		}),

		"peek": starlark.NewBuiltin("peek", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var addr int
			if err := starlark.UnpackArgs(b.Name(), args, kwargs, "addr", &addr); err != nil {
				return nil, err
			}
			v, err := m.GetMemory(int64(addr))
			if err != nil {
				return nil, err
			}
			return starlark.MakeInt64(v), nil
		}),
	}

	if inst, err := intcode.Decode(m.Memory(), m.IP); err == nil {
		globals["current"] = starlark.String(inst.String())
	} else {
		globals["current"] = starlark.String(err.Error())
	}

	return globals
}
