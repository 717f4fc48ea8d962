package intcode

import (
	"fmt"
	"iter"
	"strings"
)

// Instruction is one decoded instruction.
// Args holds the resolved operands: values for read operands, the effective address for a write target.
type Instruction struct {
	Op       OpCode
	Position int
	Modes    [3]Mode
	Raw      [3]int64
	Args     [3]int64
}

// Decode splits the opcode word at ip and collects the raw operand words.
// Operands are not resolved.
func Decode(memory []int64, ip int) (inst Instruction, err error) {
	if ip < 0 || ip >= len(memory) {
		return inst, &AddressError{
			Address:  int64(ip),
			Position: ip,
		}
	}
	word := memory[ip]
	inst.Position = ip
	inst.Op = OpCode(word % 100)
	if _, ok := opNames[inst.Op]; !ok || word < 0 {
		return inst, &InvalidOpcodeError{
			Value:    word,
			Position: ip,
		}
	}

	modes := word / 100
	for i := 0; i < inst.Op.Arity(); i++ {
		mode := Mode(modes % 10)
		modes /= 10
		if mode > ModeRelative {
			return inst, &InvalidOpcodeError{
				Value:    word,
				Position: ip,
			}
		}
		addr := ip + 1 + i
		if addr >= len(memory) {
			return inst, &AddressError{
				Address:  int64(addr),
				Position: ip,
			}
		}
		inst.Modes[i] = mode
		inst.Raw[i] = memory[addr]
	}

	return inst, nil
}

// isWrite reports whether operand i is the instruction's write target.
func (i Instruction) isWrite(n int) bool {
	return i.Op.writes() && n == i.Op.Arity()-1
}

func (i Instruction) String() string {
	buf := new(strings.Builder)
	buf.WriteString(i.Op.String())
	for n := 0; n < i.Op.Arity(); n++ {
		if n == 0 {
			buf.WriteString(" ")
		} else {
			buf.WriteString(", ")
		}
		raw := i.Raw[n]
		switch i.Modes[n] {
		case ModeImmediate:
			fmt.Fprintf(buf, "%d", raw)
		case ModeRelative:
			fmt.Fprintf(buf, "[rb%+d]", raw)
		default:
			fmt.Fprintf(buf, "[%d]", raw)
		}
	}
	return buf.String()
}

// Disassemble walks memory from address 0, yielding the position and text of each instruction.
// Words that do not decode are yielded as data.
func Disassemble(memory []int64) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for ip := 0; ip < len(memory); {
			inst, err := Decode(memory, ip)
			if err != nil {
				if !yield(ip, fmt.Sprintf("data %d", memory[ip])) {
					return
				}
				ip++
				continue
			}
			if !yield(ip, inst.String()) {
				return
			}
			ip += inst.Op.Width()
		}
	}
}

// resolve applies addressing modes to the raw operands.
func (m *Machine) resolve(inst *Instruction) error {
	for n := 0; n < inst.Op.Arity(); n++ {
		raw := inst.Raw[n]

		if inst.isWrite(n) {
			// immediate mode is meaningless for a write target and falls back to the raw address
			if inst.Modes[n] == ModeRelative {
				raw += m.RelativeBase
			}
			inst.Args[n] = raw
			continue
		}

		switch inst.Modes[n] {
		case ModeImmediate:
			inst.Args[n] = raw
		case ModeRelative:
			v, err := m.load(m.RelativeBase + raw)
			if err != nil {
				return err
			}
			inst.Args[n] = v
		default:
			v, err := m.load(raw)
			if err != nil {
				return err
			}
			inst.Args[n] = v
		}
	}
	return nil
}
