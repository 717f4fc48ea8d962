package machineconfigs

import (
	"github.com/reusee/aoc2019/configs"
	"github.com/reusee/aoc2019/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
