package programs

import (
	"github.com/reusee/aoc2019/machineconfigs"
	"github.com/reusee/aoc2019/nets"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	MachineConfigs machineconfigs.Module
	Nets           nets.Module
}
