package asm

import (
	"errors"

	"github.com/ezrec/coe65/translate"
)

var f = translate.From

var (
	// I/O errors
	ErrIoFailure = errors.New(f("i/o failure"))

	// Tokenizer and encoder errors
	ErrInstructionMissing = errors.New(f("instruction missing"))
	ErrOperandExtra       = errors.New(f("excessive operands"))
	ErrOperandTruncated   = errors.New(f("operand truncated"))

	// Opcode table errors
	ErrMnemonicInvalid = errors.New(f("mnemonic invalid"))
	ErrOpcodeDuplicate = errors.New(f("opcode duplicated"))
	ErrTableMode       = errors.New(f("table mode mismatch"))
)

// ErrUnknownInstruction is returned when a mnemonic is absent from the
// table selected by its operand syntax.
type ErrUnknownInstruction struct {
	Mnemonic string
	Mode     Mode
}

func (err ErrUnknownInstruction) Error() string {
	return f("unknown %v instruction '%v'", err.Mode.String(), err.Mnemonic)
}

func (err ErrUnknownInstruction) Is(target error) (ok bool) {
	_, ok = target.(ErrUnknownInstruction)
	return
}

// ErrInvalidOperand is returned when an operand does not have the hex digit
// count its addressing mode requires.
type ErrInvalidOperand struct {
	Mode    Mode
	Operand string
}

func (err ErrInvalidOperand) Error() string {
	return f("invalid %v operand '%v'", err.Mode.String(), err.Operand)
}

func (err ErrInvalidOperand) Is(target error) (ok bool) {
	_, ok = target.(ErrInvalidOperand)
	return
}

type ErrOpcodeUnknown byte

func (err ErrOpcodeUnknown) Error() string {
	return f("unknown opcode $%02x", byte(err))
}

type ErrModeInvalid string

func (err ErrModeInvalid) Error() string {
	return f("'%v' is not an addressing mode", string(err))
}

// ErrIo wraps a failure of the underlying reader or writer.
type ErrIo struct {
	Op  string
	Err error
}

func (err *ErrIo) Error() string {
	return f("%v: %v", err.Op, err.Err)
}

func (err *ErrIo) Unwrap() error {
	return err.Err
}

func (err *ErrIo) Is(target error) bool {
	return target == ErrIoFailure
}

type ErrTable struct {
	Mode     Mode
	Mnemonic string
	Err      error
}

func (err ErrTable) Error() string {
	return f("%v table '%v' %v", err.Mode.String(), err.Mnemonic, err.Err)
}

func (err ErrTable) Unwrap() error {
	return err.Err
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
