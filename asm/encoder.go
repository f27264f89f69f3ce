// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"strconv"
	"strings"
)

// Encoder turns token lists into instruction bytes. The opcode tables are
// supplied through Set; a zero Encoder is a convenience that encodes with the
// immutable W65C02() set.
type Encoder struct {
	Set *InstructionSet // Opcode tables. If nil, W65C02() is used.

	// AllowOptionalDollarSign accepts '#$05' as well as '#05' for immediates.
	AllowOptionalDollarSign bool
}

// ModeOf selects the addressing mode from the operand syntax alone.
func ModeOf(tokens []string) (mode Mode, err error) {
	switch len(tokens) {
	case 0:
		err = ErrInstructionMissing
	case 1:
		mode = MODE_IMPLIED
	case 2:
		if strings.HasPrefix(tokens[1], "#") {
			mode = MODE_IMMEDIATE
		} else {
			mode = MODE_ABSOLUTE
		}
	default:
		err = ErrOperandExtra
	}

	return
}

func (enc *Encoder) set() *InstructionSet {
	if enc.Set == nil {
		return W65C02()
	}
	return enc.Set
}

// parseHex parses exactly 'digits' hex digits.
func parseHex(mode Mode, operand string, text string, digits int) (value uint64, err error) {
	if len(text) != digits {
		err = ErrInvalidOperand{Mode: mode, Operand: operand}
		return
	}

	value, err = strconv.ParseUint(text, 16, digits*4)
	if err != nil {
		err = ErrInvalidOperand{Mode: mode, Operand: operand}
		return
	}

	return
}

// Encode assembles a single token list. The result is the opcode followed by
// zero, one or two operand bytes; absolute addresses are emitted low byte first.
// There is no fallback: a mnemonic missing from the table selected by the
// operand syntax fails with ErrUnknownInstruction.
func (enc *Encoder) Encode(tokens ...string) (code []byte, err error) {
	mode, err := ModeOf(tokens)
	if err != nil {
		return
	}

	mnemonic := tokens[0]
	opcode, ok := enc.set().Table(mode).Lookup(mnemonic)
	if !ok {
		err = ErrUnknownInstruction{Mnemonic: mnemonic, Mode: mode}
		return
	}

	var value uint64
	switch mode {
	case MODE_IMPLIED:
		code = []byte{opcode}
	case MODE_IMMEDIATE:
		text := strings.TrimPrefix(tokens[1], "#")
		if enc.AllowOptionalDollarSign {
			text = strings.TrimPrefix(text, "$")
		}
		value, err = parseHex(mode, tokens[1], text, 2)
		if err != nil {
			return
		}
		code = []byte{opcode, byte(value)}
	case MODE_ABSOLUTE:
		text := strings.TrimPrefix(tokens[1], "$")
		value, err = parseHex(mode, tokens[1], text, 4)
		if err != nil {
			return
		}
		code = []byte{opcode, byte(value & 0xff), byte((value >> 8) & 0xff)}
	}

	return
}
