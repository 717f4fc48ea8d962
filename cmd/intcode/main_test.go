package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/reusee/aoc2019/cmds"
	"github.com/reusee/aoc2019/drivers"
	"github.com/reusee/aoc2019/logs"
	"github.com/reusee/aoc2019/modes"
	"github.com/reusee/aoc2019/programs"
	"github.com/reusee/dscope"
)

// echoes its input doubled until it reads zero
const doubler = "3,20,1006,20,14,1002,20,2,21,4,21,1105,1,0,99"

func testExecute(t *testing.T, act, location, stdin string, inputValues ...string) (int, string) {
	action, target = act, location
	*inputs = inputValues
	defer func() {
		action, target = "", ""
		*inputs = nil
	}()

	out := new(bytes.Buffer)
	code := execute(context.Background(), dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() programs.Stdin {
			return strings.NewReader(stdin)
		},
		func() drivers.Stdout {
			return out
		},
		func() logs.Writer {
			return new(bytes.Buffer)
		},
	))
	return code, out.String()
}

func TestBatch(t *testing.T) {
	if s := batch("1,-2,3"); s != "1\n-2\n3" {
		t.Fatalf("got %q", s)
	}
	if s := batch("4\n5"); s != "4\n5" {
		t.Fatalf("got %q", s)
	}
}

func TestActionGivenTwice(t *testing.T) {
	defer func() {
		action, target = "", ""
	}()
	err := cmds.GlobalExecutor.Execute([]string{"run", "a.intcode", "sweep", "b.intcode"})
	if err == nil || !strings.Contains(err.Error(), "sweep: run already given") {
		t.Fatalf("got %v", err)
	}
	if action != "run" || target != "a.intcode" {
		t.Fatalf("got %s %s", action, target)
	}
}

func TestRun(t *testing.T) {
	code, out := testExecute(t, "run", "-", "3,0,4,0,99", "42")
	if code != 0 {
		t.Fatalf("got %v", code)
	}
	if out != "42\n" {
		t.Fatalf("got %q", out)
	}

	// stdin is consumed by the program, so the machine runs out of input
	code, _ = testExecute(t, "run", "-", "3,0,4,0,99")
	if code != 1 {
		t.Fatalf("got %v", code)
	}

	code, _ = testExecute(t, "run", "testdata/missing.intcode", "")
	if code != 1 {
		t.Fatalf("got %v", code)
	}
}

func TestSweep(t *testing.T) {
	code, out := testExecute(t, "sweep", "-", doubler, "1,0", "3,4,0")
	if code != 0 {
		t.Fatalf("got %v", code)
	}
	if out != "1,0\thalted\t2\n3,4,0\thalted\t6,8\n" {
		t.Fatalf("got %q", out)
	}

	code, out = testExecute(t, "sweep", "-", doubler, "x")
	if code != 1 {
		t.Fatalf("got %v", code)
	}
	if !strings.HasPrefix(out, "x\thalted\t\tinvalid user input") {
		t.Fatalf("got %q", out)
	}
}

func TestDisasm(t *testing.T) {
	code, out := testExecute(t, "disasm", "-", "1002,4,3,4,33,99")
	if code != 0 {
		t.Fatalf("got %v", code)
	}
	if out != "0\tmul [4], 3, [4]\n4\tdata 33\n5\thalt\n" {
		t.Fatalf("got %q", out)
	}
}
