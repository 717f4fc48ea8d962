package scripts

import (
	"github.com/reusee/aoc2019/drivers"
	"github.com/reusee/aoc2019/logs"
	"github.com/reusee/aoc2019/machineconfigs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs           logs.Module
	MachineConfigs machineconfigs.Module
	Drivers        drivers.Module
}
