package main

import (
	"github.com/reusee/aoc2019/debugs"
	"github.com/reusee/aoc2019/drivers"
	"github.com/reusee/aoc2019/scripts"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Drivers drivers.Module
	Scripts scripts.Module
	Debugs  debugs.Module
}
