package intcode

type OpCode int64

const (
	OpAdd OpCode = iota + 1
	OpMul
	OpIn
	OpOut
	OpJumpIfTrue
	OpJumpIfFalse
	OpLessThan
	OpEqual
	OpAdjustRelativeBase

	OpHalt OpCode = 99
)

var opNames = map[OpCode]string{
	OpAdd:                "add",
	OpMul:                "mul",
	OpIn:                 "in",
	OpOut:                "out",
	OpJumpIfTrue:         "jnz",
	OpJumpIfFalse:        "jz",
	OpLessThan:           "lt",
	OpEqual:              "eq",
	OpAdjustRelativeBase: "arb",
	OpHalt:               "halt",
}

func (o OpCode) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return "invalid"
}

// Arity is the number of operand words following the opcode word.
func (o OpCode) Arity() int {
	switch o {
	case OpAdd, OpMul, OpLessThan, OpEqual:
		return 3
	case OpJumpIfTrue, OpJumpIfFalse:
		return 2
	case OpIn, OpOut, OpAdjustRelativeBase:
		return 1
	}
	return 0
}

// Width is the pointer advance after executing the instruction, including the opcode word.
func (o OpCode) Width() int {
	return o.Arity() + 1
}

// writes reports whether the last operand is a write target.
func (o OpCode) writes() bool {
	switch o {
	case OpAdd, OpMul, OpIn, OpLessThan, OpEqual:
		return true
	}
	return false
}

type Mode int64

const (
	ModePosition Mode = iota
	ModeImmediate
	ModeRelative
)

func (m Mode) String() string {
	switch m {
	case ModePosition:
		return "position"
	case ModeImmediate:
		return "immediate"
	case ModeRelative:
		return "relative"
	}
	return "invalid"
}
