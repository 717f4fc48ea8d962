package debugs

import (
	"github.com/reusee/aoc2019/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
