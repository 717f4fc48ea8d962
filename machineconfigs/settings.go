package machineconfigs

import (
	"os"
	"runtime"

	"github.com/reusee/aoc2019/cmds"
	"github.com/reusee/aoc2019/configs"
	"github.com/reusee/aoc2019/vars"
)

const DefaultMemorySize = 4096

type MemorySize int

var _ configs.Configurable = MemorySize(0)

func (MemorySize) ConfigExpr() string {
	return "MemorySize"
}

var memorySizeFlag = cmds.Var[int]("-mem")

// MemorySize is the number of cells every new machine is grown to.
// The flag wins over the config file, which wins over DefaultMemorySize.
func (Module) MemorySize(
	loader configs.Loader,
) MemorySize {
	return MemorySize(vars.FirstPositive(
		*memorySizeFlag,
		configs.First[int](loader, "memory_size"),
		DefaultMemorySize,
	))
}

type ExitOnOutput bool

var _ configs.Configurable = ExitOnOutput(false)

func (ExitOnOutput) ConfigExpr() string {
	return "ExitOnOutput"
}

var exitOnOutputFlag = cmds.OverrideSwitch("-exit-on-output")

// ExitOnOutput comes from the config file unless -exit-on-output or !-exit-on-output is given.
func (Module) ExitOnOutput(
	loader configs.Loader,
) ExitOnOutput {
	return ExitOnOutput(exitOnOutputFlag.Or(
		configs.First[bool](loader, "exit_on_output")))
}

type Trace bool

var _ configs.Configurable = Trace(false)

func (Trace) ConfigExpr() string {
	return "Trace"
}

var traceFlag = cmds.OverrideSwitch("-trace")

func (Module) Trace(
	loader configs.Loader,
) Trace {
	return Trace(traceFlag.Or(
		configs.First[bool](loader, "trace")))
}

type Workers int

var _ configs.Configurable = Workers(0)

func (Workers) ConfigExpr() string {
	return "Workers"
}

var workersFlag = cmds.Var[int]("-workers")

func (Module) Workers(
	loader configs.Loader,
) Workers {
	return Workers(vars.FirstPositive(
		*workersFlag,
		configs.First[int](loader, "workers"),
		runtime.GOMAXPROCS(0),
	))
}

// SessionCookie authenticates program downloads from the puzzle site.
type SessionCookie string

var _ configs.Configurable = SessionCookie("")

func (SessionCookie) ConfigExpr() string {
	return "SessionCookie"
}

var sessionFlag = cmds.Var[string]("-session")

func (Module) SessionCookie(
	loader configs.Loader,
) SessionCookie {
	return SessionCookie(vars.FirstNonZero(
		*sessionFlag,
		configs.First[string](loader, "session"),
		os.Getenv("AOC_SESSION"),
	))
}

// Programs maps short names to program locations, so `run day9` works with a configured path.
type Programs map[string]string

func (Module) Programs(
	loader configs.Loader,
) Programs {
	ret := make(Programs)
	// earlier files win
	for programs := range configs.All[map[string]string](loader, "programs") {
		for name, location := range programs {
			if _, ok := ret[name]; !ok {
				ret[name] = location
			}
		}
	}
	return ret
}
