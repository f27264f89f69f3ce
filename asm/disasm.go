package asm

import (
	"fmt"
	"iter"
)

// Decoded is an instruction recovered from an encoded image.
type Decoded struct {
	Offset   int
	Mnemonic string
	Mode     Mode
	Operand  []byte // Operand bytes, in image order.
}

// String renders the instruction in the syntax accepted by the Encoder.
func (dec Decoded) String() string {
	switch dec.Mode {
	case MODE_IMMEDIATE:
		return fmt.Sprintf("%s #$%02x", dec.Mnemonic, dec.Operand[0])
	case MODE_ABSOLUTE:
		return fmt.Sprintf("%s $%02x%02x", dec.Mnemonic, dec.Operand[1], dec.Operand[0])
	default:
		return dec.Mnemonic
	}
}

// Disassemble decodes an image against an instruction set. An opcode absent
// from every table, or an image that ends inside an instruction, yields an
// error and ends the sequence.
func Disassemble(set *InstructionSet, data []byte) iter.Seq2[Decoded, error] {
	return func(yield func(Decoded, error) bool) {
		for offset := 0; offset < len(data); {
			mnemonic, mode, ok := set.Decode(data[offset])
			if !ok {
				yield(Decoded{Offset: offset}, ErrOpcodeUnknown(data[offset]))
				return
			}

			size := mode.Size()
			if offset+size > len(data) {
				yield(Decoded{Offset: offset, Mnemonic: mnemonic, Mode: mode}, ErrOperandTruncated)
				return
			}

			dec := Decoded{
				Offset:   offset,
				Mnemonic: mnemonic,
				Mode:     mode,
				Operand:  data[offset+1 : offset+size],
			}
			if !yield(dec, nil) {
				return
			}

			offset += size
		}
	}
}
