package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/reusee/aoc2019/cmds"
	"github.com/reusee/aoc2019/debugs"
	"github.com/reusee/aoc2019/drivers"
	"github.com/reusee/aoc2019/intcode"
	"github.com/reusee/aoc2019/logs"
	"github.com/reusee/aoc2019/machineconfigs"
	"github.com/reusee/aoc2019/modes"
	"github.com/reusee/aoc2019/programs"
	"github.com/reusee/aoc2019/scripts"
	"github.com/reusee/dscope"
)

var (
	inputs      = cmds.Collect[string]("-input")
	tapFlag     = cmds.Switch("-tap")
	programFlag = cmds.Var[string]("-program")
)

var action, target string

func init() {
	for name, desc := range map[string]string{
		"run":    "run a program, reading further input from stdin",
		"sweep":  "run a program once per -input batch, concurrently",
		"script": "execute a starlark script, PROGRAM is loaded from -program",
		"disasm": "print the instructions of a program",
	} {
		cmds.Define(name, cmds.Func(func(arg string) error {
			if action != "" {
				return fmt.Errorf("%s: %s already given", name, action)
			}
			action = name
			target = arg
			return nil
		}).Desc(desc))
	}
}

// batch turns a command line input into a newline delimited batch. Commas separate values too.
func batch(s string) string {
	return strings.ReplaceAll(s, ",", "\n")
}

func main() {
	cmds.Execute(os.Args[1:])
	if action == "" {
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(2)
	}
	os.Exit(execute(
		context.Background(),
		dscope.New(
			new(Module),
			modes.ForProduction(),
		),
	))
}

// execute performs the selected action and returns the process exit code.
func execute(ctx context.Context, scope dscope.Scope) (exitCode int) {
	scope.Call(func(
		logger logs.Logger,
		load programs.Load,
		newMachine machineconfigs.NewMachine,
		console *drivers.Console,
		sweep drivers.Sweep,
		runScript scripts.Run,
		tap debugs.Tap,
		stdout drivers.Stdout,
	) {
		fail := func(err error) {
			logger.ErrorContext(ctx, action+" failed",
				"target", target,
				"error", err,
			)
			exitCode = 1
		}

		switch action {

		case "run":
			program, err := load(ctx, target)
			if err != nil {
				fail(err)
				return
			}
			m, err := newMachine(program)
			if err != nil {
				fail(err)
				return
			}
			var lines []string
			for _, input := range *inputs {
				lines = append(lines, batch(input))
			}
			outcome, err := console.Run(ctx, m, strings.Join(lines, "\n"))
			if err != nil {
				fail(err)
				if *tapFlag {
					tap(ctx, target, m)
				}
				return
			}
			if outcome != intcode.Halted {
				logger.WarnContext(ctx, "input exhausted",
					"outcome", outcome.String(),
					"ip", m.IP,
				)
				exitCode = 1
			}

		case "sweep":
			program, err := load(ctx, target)
			if err != nil {
				fail(err)
				return
			}
			m, err := newMachine(program)
			if err != nil {
				fail(err)
				return
			}
			batches := make([]string, 0, len(*inputs))
			for _, input := range *inputs {
				batches = append(batches, batch(input))
			}
			results, err := sweep(ctx, m, batches)
			if err != nil {
				fail(err)
				return
			}
			for _, result := range results {
				values := make([]string, len(result.Output))
				for i, v := range result.Output {
					values[i] = fmt.Sprint(v)
				}
				line := fmt.Sprintf("%s\t%s\t%s",
					strings.ReplaceAll(result.Input, "\n", ","),
					result.Outcome,
					strings.Join(values, ","),
				)
				if result.Err != nil {
					line += "\t" + result.Err.Error()
					exitCode = 1
				}
				fmt.Fprintln(stdout, line)
			}

		case "script":
			var program string
			if *programFlag != "" {
				var err error
				program, err = load(ctx, *programFlag)
				if err != nil {
					fail(err)
					return
				}
			}
			if _, err := runScript(ctx, target, nil, program); err != nil {
				fail(err)
				return
			}

		case "disasm":
			program, err := load(ctx, target)
			if err != nil {
				fail(err)
				return
			}
			memory, err := intcode.Parse(program)
			if err != nil {
				fail(err)
				return
			}
			for pos, text := range intcode.Disassemble(memory) {
				fmt.Fprintf(stdout, "%d\t%s\n", pos, text)
			}

		}
	})
	return
}
