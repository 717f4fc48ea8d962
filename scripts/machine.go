package scripts

import (
	"fmt"
	"sort"

	"github.com/reusee/aoc2019/intcode"
	"go.starlark.net/starlark"
)

// Machine exposes an intcode machine to scripts.
type Machine struct {
	M *intcode.Machine
}

var _ starlark.HasAttrs = new(Machine)

func (v *Machine) String() string {
	return fmt.Sprintf("<machine ip=%d rb=%d>", v.M.IP, v.M.RelativeBase)
}

func (v *Machine) Type() string {
	return "machine"
}

func (v *Machine) Freeze() {}

func (v *Machine) Truth() starlark.Bool {
	return starlark.True
}

func (v *Machine) Hash() (uint32, error) {
	return 0, fmt.Errorf("unhashable type: machine")
}

type method func(m *intcode.Machine, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error)

var methods = map[string]method{
	"run":                machineRun,
	"feed":               machineFeed,
	"get":                machineGet,
	"set":                machineSet,
	"grow":               machineGrow,
	"output":             machineOutput,
	"last_output":        machineLastOutput,
	"clone":              machineClone,
	"set_exit_on_output": machineSetExitOnOutput,
}

func (v *Machine) Attr(name string) (starlark.Value, error) {
	switch name {
	case "ip":
		return starlark.MakeInt(v.M.IP), nil
	case "relative_base":
		return starlark.MakeInt64(v.M.RelativeBase), nil
	case "memory_size":
		return starlark.MakeInt(v.M.MemorySize()), nil
	}
	fn, ok := methods[name]
	if !ok {
		return nil, nil
	}
	m := v.M
	return starlark.NewBuiltin(name, func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		return fn(m, b, args, kwargs)
	}), nil
}

func (v *Machine) AttrNames() []string {
	names := []string{"ip", "relative_base", "memory_size"}
	for name := range methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func outcomeValue(outcome intcode.Outcome) starlark.Value {
	return starlark.String(outcome.String())
}

func machineRun(m *intcode.Machine, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var input starlark.Value = starlark.None
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "input?", &input); err != nil {
		return nil, err
	}
	batch, err := toBatch(input)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	outcome, err := m.Run(batch)
	if err != nil {
		return nil, err
	}
	return outcomeValue(outcome), nil
}

func machineFeed(m *intcode.Machine, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(kwargs) > 0 {
		return nil, fmt.Errorf("%s: unexpected keyword arguments", b.Name())
	}
	values := make([]int64, 0, len(args))
	for _, arg := range args {
		v, err := toInt64(arg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", b.Name(), err)
		}
		values = append(values, v)
	}
	outcome, err := m.Feed(values...)
	if err != nil {
		return nil, err
	}
	return outcomeValue(outcome), nil
}

func machineGet(m *intcode.Machine, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var addr starlark.Value
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "addr", &addr); err != nil {
		return nil, err
	}
	a, err := toInt64(addr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	v, err := m.GetMemory(a)
	if err != nil {
		return nil, err
	}
	return starlark.MakeInt64(v), nil
}

func machineSet(m *intcode.Machine, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var addr, value starlark.Value
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "addr", &addr, "value", &value); err != nil {
		return nil, err
	}
	a, err := toInt64(addr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	v, err := toInt64(value)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	if err := m.SetMemory(a, v); err != nil {
		return nil, err
	}
	return starlark.None, nil
}

func machineGrow(m *intcode.Machine, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var size starlark.Value
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "size", &size); err != nil {
		return nil, err
	}
	n, err := toInt64(size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	m.SetMemorySize(int(n))
	return starlark.None, nil
}

func machineOutput(m *intcode.Machine, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
		return nil, err
	}
	output := m.Output()
	elems := make([]starlark.Value, 0, len(output))
	for _, v := range output {
		elems = append(elems, starlark.MakeInt64(v))
	}
	return starlark.NewList(elems), nil
}

func machineLastOutput(m *intcode.Machine, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
		return nil, err
	}
	v, ok := m.LastOutput()
	if !ok {
		return starlark.None, nil
	}
	return starlark.MakeInt64(v), nil
}

func machineClone(m *intcode.Machine, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
		return nil, err
	}
	return &Machine{
		M: m.Clone(),
	}, nil
}

func machineSetExitOnOutput(m *intcode.Machine, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	flag := true
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "flag?", &flag); err != nil {
		return nil, err
	}
	if flag {
		m.SetExitOnOutput()
	} else {
		m.ClearExitOnOutput()
	}
	return starlark.None, nil
}

func toInt64(v starlark.Value) (int64, error) {
	i, ok := v.(starlark.Int)
	if !ok {
		return 0, fmt.Errorf("expecting int, got %s", v.Type())
	}
	n, ok := i.Int64()
	if !ok {
		return 0, fmt.Errorf("int out of range: %s", i)
	}
	return n, nil
}

// toBatch accepts None, a string batch, an int, or an iterable of ints.
func toBatch(v starlark.Value) (string, error) {
	switch v := v.(type) {
	case starlark.NoneType:
		return "", nil
	case starlark.String:
		return string(v), nil
	case starlark.Int:
		n, err := toInt64(v)
		if err != nil {
			return "", err
		}
		return intcode.FormatInput(n), nil
	case starlark.Iterable:
		var values []int64
		iter := v.Iterate()
		defer iter.Done()
		var elem starlark.Value
		for iter.Next(&elem) {
			n, err := toInt64(elem)
			if err != nil {
				return "", err
			}
			values = append(values, n)
		}
		return intcode.FormatInput(values...), nil
	}
	return "", fmt.Errorf("unsupported input type: %s", v.Type())
}
