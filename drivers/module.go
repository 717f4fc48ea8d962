package drivers

import (
	"io"
	"os"

	"github.com/reusee/aoc2019/logs"
	"github.com/reusee/aoc2019/machineconfigs"
	"github.com/reusee/aoc2019/programs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs           logs.Module
	MachineConfigs machineconfigs.Module
	Programs       programs.Module
}

type Stdout io.Writer

func (Module) Stdout() Stdout {
	return os.Stdout
}
