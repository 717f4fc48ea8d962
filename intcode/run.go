package intcode

import (
	"iter"
	"strconv"
	"strings"
)

type Outcome int

const (
	// Halted is terminal. Running again returns Halted without side effects.
	Halted Outcome = iota
	// InputRequired leaves the pointer at the In instruction that needs a value.
	InputRequired
	// OutputProduced is returned after each Out instruction when exit-on-output is set.
	OutputProduced
)

func (o Outcome) String() string {
	switch o {
	case Halted:
		return "halted"
	case InputRequired:
		return "input required"
	case OutputProduced:
		return "output produced"
	}
	return "invalid"
}

// Run executes instructions until the program halts, needs input, or produces output in exit-on-output mode.
// input is a newline delimited batch of integers consumed by In instructions; an empty string supplies none.
// Lines left over when Run returns are discarded.
// On error the pointer stays at the failing instruction and the returned Outcome is meaningless.
func (m *Machine) Run(input string) (Outcome, error) {
	lines := strings.Split(strings.TrimSpace(input), "\n")
	if len(lines) == 1 && lines[0] == "" {
		lines = nil
	}

	for {
		inst, err := Decode(m.memory, m.IP)
		if err != nil {
			return Halted, err
		}
		if err := m.resolve(&inst); err != nil {
			return Halted, err
		}
		if m.logger != nil {
			m.logger.Debug("exec",
				"ip", m.IP,
				"rb", m.RelativeBase,
				"inst", inst.String(),
				"args", inst.Args[:inst.Op.Arity()],
			)
		}

		next := m.IP + inst.Op.Width()
		args := inst.Args

		switch inst.Op {

		case OpAdd:
			err = m.store(args[2], args[0]+args[1])

		case OpMul:
			err = m.store(args[2], args[0]*args[1])

		case OpIn:
			if len(lines) == 0 {
				return InputRequired, nil
			}
			line := strings.TrimSpace(lines[0])
			v, perr := strconv.ParseInt(line, 10, 64)
			if perr != nil {
				return Halted, &InvalidUserInputError{
					Line: line,
					Err:  perr,
				}
			}
			if err = m.store(args[0], v); err == nil {
				lines = lines[1:]
			}

		case OpOut:
			m.output = append(m.output, args[0])
			if m.exitOnOutput {
				m.IP = next
				return OutputProduced, nil
			}

		case OpJumpIfTrue:
			if args[0] != 0 {
				next = int(args[1])
			}

		case OpJumpIfFalse:
			if args[0] == 0 {
				next = int(args[1])
			}

		case OpLessThan:
			var v int64
			if args[0] < args[1] {
				v = 1
			}
			err = m.store(args[2], v)

		case OpEqual:
			var v int64
			if args[0] == args[1] {
				v = 1
			}
			err = m.store(args[2], v)

		case OpAdjustRelativeBase:
			m.RelativeBase += args[0]

		case OpHalt:
			return Halted, nil

		}

		if err != nil {
			return Halted, err
		}
		m.IP = next
	}
}

// Feed runs m with values as the input batch.
func (m *Machine) Feed(values ...int64) (Outcome, error) {
	return m.Run(FormatInput(values...))
}

// FormatInput renders values as a newline delimited input batch.
func FormatInput(values ...int64) string {
	buf := new(strings.Builder)
	for i, v := range values {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(strconv.FormatInt(v, 10))
	}
	return buf.String()
}

// Events runs m with input and keeps resuming it until it halts or fails,
// yielding each OutputProduced and the final outcome.
// When input is required, source is asked for the next batch; if source is nil or reports false,
// InputRequired is yielded and iteration stops.
func (m *Machine) Events(input string, source func() (string, bool)) iter.Seq2[Outcome, error] {
	return func(yield func(Outcome, error) bool) {
		for {
			outcome, err := m.Run(input)
			input = ""
			if err != nil {
				yield(outcome, err)
				return
			}

			switch outcome {

			case InputRequired:
				if source == nil {
					yield(outcome, nil)
					return
				}
				batch, ok := source()
				if !ok {
					yield(outcome, nil)
					return
				}
				input = batch

			case OutputProduced:
				if !yield(outcome, nil) {
					return
				}

			case Halted:
				yield(outcome, nil)
				return

			}
		}
	}
}
