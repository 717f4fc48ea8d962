package cmds

import (
	"fmt"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var size int
	executor.Define("-default-mem", Func(func() {
		size = 4096
	}))
	executor.Define("-mem", Func(func(n int) {
		size = n
	}))

	if err := executor.Execute([]string{"-default-mem"}); err != nil {
		t.Fatal(err)
	}
	if size != 4096 {
		t.Fatalf("got %v", size)
	}

	if err := executor.Execute([]string{"-mem", "64", "-default-mem", "-mem", "128"}); err != nil {
		t.Fatal(err)
	}
	if size != 128 {
		t.Fatalf("got %v", size)
	}

	err := executor.Execute([]string{"runn"})
	if err == nil || !strings.Contains(err.Error(), "unknown command: runn") {
		t.Fatalf("got %v", err)
	}
}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var program string
	var traced bool
	executor.Define("machine", Sub(map[string]*Command{
		"trace": Func(func() {
			traced = true
		}),
		"load": Func(func(location string) {
			program = location
		}),
	}))

	if err := executor.Execute([]string{
		"machine",
		"trace",
		"load", "day9.intcode",
	}); err != nil {
		t.Fatal(err)
	}
	if !traced {
		t.Fatal()
	}
	if program != "day9.intcode" {
		t.Fatalf("got %v", program)
	}

	// sub commands are not visible before their parent
	if err := executor.Execute([]string{"trace"}); err == nil {
		t.Fatal("should error")
	}
}

func TestDuplicatedSubCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("run", Sub(map[string]*Command{
		"trace": nil,
	}))
	executor.Define("sweep", Sub(map[string]*Command{
		"trace": nil,
	}))
	err := executor.Execute([]string{"run", "sweep"})
	if err == nil || !strings.Contains(err.Error(), "duplicated sub command: sweep trace") {
		t.Fatalf("got %v", err)
	}
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var size int
	var program string
	executor.Define("grow", Func(func(n *int, location *string) {
		size = *n
		program = *location
	}))

	for _, c := range []struct {
		args    []string
		size    int
		program string
	}{
		{[]string{"grow", "42", "-"}, 42, "-"},
		{[]string{"grow", "99"}, 99, ""},
		{[]string{"grow"}, 0, ""},
	} {
		if err := executor.Execute(c.args); err != nil {
			t.Fatal(err)
		}
		if size != c.size || program != c.program {
			t.Fatalf("%v: got %v %q", c.args, size, program)
		}
	}
}

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	buf := new(strings.Builder)
	executor.usageOut = buf
	executor.Define("run", Func(func(program string) {}).Desc("run a program"))
	executor.Define("-mem", Func(func(n int) {}).Desc("memory size").Alias("-memory"))
	executor.Define("machine", Sub(map[string]*Command{
		"grow": Func(func(n *int64) {}).Desc("grow memory"),
	}).Desc("machine commands"))
	executor.PrintUsage()

	usage := buf.String()
	for _, expected := range []string{
		"run <string>\trun a program",
		"-mem (-memory) <int>\tmemory size",
		"machine\tmachine commands",
		"  grow [int64]\tgrow memory",
		"-h (help, -help, --help)\tprint this usage",
	} {
		if !strings.Contains(usage, expected) {
			t.Fatalf("got %s", usage)
		}
	}
	if strings.Count(usage, "memory size") != 1 {
		t.Fatalf("got %s", usage)
	}
}

func TestArgumentErrors(t *testing.T) {
	executor := NewExecutor()
	var n int64
	executor.Define("n", Func(func(i int64) {
		n = i
	}))
	executor.Define("fail", Func(func() error {
		return fmt.Errorf("failed")
	}))

	if err := executor.Execute([]string{"n", "-9007199254740993"}); err != nil {
		t.Fatal(err)
	}
	if n != -9007199254740993 {
		t.Fatalf("got %v", n)
	}
	if err := executor.Execute([]string{"n", "x"}); err == nil {
		t.Fatal("should error")
	}
	if err := executor.Execute([]string{"n"}); err == nil {
		t.Fatal("should error")
	}
	if err := executor.Execute([]string{"fail"}); err == nil || err.Error() != "failed" {
		t.Fatalf("got %v", err)
	}
}
