package intcode

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
)

type Machine struct {
	// IP points at the opcode word of the next instruction.
	IP           int
	RelativeBase int64

	memory       []int64
	output       []int64
	exitOnOutput bool
	logger       *slog.Logger
}

type Option func(*Machine)

// WithMemorySize zero-extends memory to at least n cells.
func WithMemorySize(n int) Option {
	return func(m *Machine) {
		m.SetMemorySize(n)
	}
}

func WithExitOnOutput() Option {
	return func(m *Machine) {
		m.exitOnOutput = true
	}
}

// WithLogger enables per-instruction tracing at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// Parse parses a comma separated program text.
func Parse(text string) ([]int64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("empty program")
	}
	parts := strings.Split(text, ",")
	ret := make([]int64, 0, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse word %d: %w", i, err)
		}
		ret = append(ret, v)
	}
	return ret, nil
}

func New(text string, options ...Option) (*Machine, error) {
	memory, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return FromMemory(memory, options...), nil
}

func MustNew(text string, options ...Option) *Machine {
	m, err := New(text, options...)
	if err != nil {
		panic(err)
	}
	return m
}

// FromMemory takes ownership of memory.
func FromMemory(memory []int64, options ...Option) *Machine {
	m := &Machine{
		memory: memory,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Clone returns an independent copy sharing no mutable state with m.
func (m *Machine) Clone() *Machine {
	ret := *m
	ret.memory = slices.Clone(m.memory)
	ret.output = slices.Clone(m.output)
	return &ret
}

// SetMemorySize zero-extends memory to n cells. Memory never shrinks.
func (m *Machine) SetMemorySize(n int) {
	if n <= len(m.memory) {
		return
	}
	m.memory = append(m.memory, make([]int64, n-len(m.memory))...)
}

func (m *Machine) MemorySize() int {
	return len(m.memory)
}

func (m *Machine) SetExitOnOutput() {
	m.exitOnOutput = true
}

func (m *Machine) ClearExitOnOutput() {
	m.exitOnOutput = false
}

func (m *Machine) ExitOnOutput() bool {
	return m.exitOnOutput
}

func (m *Machine) SetLogger(logger *slog.Logger) {
	m.logger = logger
}

func (m *Machine) GetMemory(address int64) (int64, error) {
	return m.load(address)
}

func (m *Machine) SetMemory(address int64, value int64) error {
	return m.store(address, value)
}

// Memory returns a copy of the whole memory.
func (m *Machine) Memory() []int64 {
	return slices.Clone(m.memory)
}

// Output returns a copy of every value produced so far.
func (m *Machine) Output() []int64 {
	return slices.Clone(m.output)
}

func (m *Machine) LastOutput() (int64, bool) {
	if len(m.output) == 0 {
		return 0, false
	}
	return m.output[len(m.output)-1], true
}

func (m *Machine) load(address int64) (int64, error) {
	if address < 0 || address >= int64(len(m.memory)) {
		return 0, &AddressError{
			Address:  address,
			Position: m.IP,
		}
	}
	return m.memory[address], nil
}

func (m *Machine) store(address int64, value int64) error {
	if address < 0 || address >= int64(len(m.memory)) {
		return &AddressError{
			Address:  address,
			Position: m.IP,
		}
	}
	m.memory[address] = value
	return nil
}
