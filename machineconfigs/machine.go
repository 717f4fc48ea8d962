package machineconfigs

import (
	"github.com/reusee/aoc2019/intcode"
	"github.com/reusee/aoc2019/logs"
)

// NewMachine builds a machine from program text with the configured memory size and modes.
type NewMachine func(program string) (*intcode.Machine, error)

func (Module) NewMachine(
	memorySize MemorySize,
	exitOnOutput ExitOnOutput,
	trace Trace,
	logger logs.Logger,
) NewMachine {
	return func(program string) (*intcode.Machine, error) {
		options := []intcode.Option{
			intcode.WithMemorySize(int(memorySize)),
		}
		if exitOnOutput {
			options = append(options, intcode.WithExitOnOutput())
		}
		if trace {
			options = append(options, intcode.WithLogger(logger.With("machine", "trace")))
		}
		return intcode.New(program, options...)
	}
}
