package intcode

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidOpcode     = errors.New("invalid opcode")
	ErrInvalidUserInput  = errors.New("invalid user input")
	ErrAddressOutOfRange = errors.New("address out of range")
)

type InvalidOpcodeError struct {
	Value    int64
	Position int
}

func (e *InvalidOpcodeError) Error() string {
	return fmt.Sprintf("invalid opcode %d at position %d", e.Value, e.Position)
}

func (e *InvalidOpcodeError) Unwrap() error {
	return ErrInvalidOpcode
}

type InvalidUserInputError struct {
	Line string
	Err  error
}

func (e *InvalidUserInputError) Error() string {
	return fmt.Sprintf("invalid user input %q: %v", e.Line, e.Err)
}

func (e *InvalidUserInputError) Unwrap() []error {
	return []error{ErrInvalidUserInput, e.Err}
}

// AddressError is returned when an instruction reads or writes outside of memory.
// Callers that need large addresses should grow memory before running.
type AddressError struct {
	Address  int64
	Position int
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("address %d out of range, instruction at position %d", e.Address, e.Position)
}

func (e *AddressError) Unwrap() error {
	return ErrAddressOutOfRange
}
