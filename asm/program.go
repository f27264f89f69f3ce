package asm

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/ezrec/coe65/internal"
)

// Instruction is a single encoded source line.
type Instruction struct {
	LineNo int      // Source line number.
	Offset int      // Byte offset of the opcode in the image.
	Words  []string // Source tokens.
	Mode   Mode     // Addressing mode.
	Code   []byte   // Encoded bytes.
}

// Program is an assembled source file.
type Program struct {
	Instructions []Instruction
}

// Codes iterates over the encoded bytes of each instruction.
func (prog *Program) Codes() iter.Seq[[]byte] {
	return func(yield func(code []byte) bool) {
		for _, inst := range prog.Instructions {
			if !yield(inst.Code) {
				return
			}
		}
	}
}

// Bytes returns the whole image.
func (prog *Program) Bytes() []byte {
	return slices.Collect(internal.Flatten(prog.Codes()))
}

// Size returns the image length in bytes.
func (prog *Program) Size() (size int) {
	for _, inst := range prog.Instructions {
		size += len(inst.Code)
	}
	return
}

// At returns the instruction that covers a byte offset.
func (prog *Program) At(offset int) (inst *Instruction, ok bool) {
	n, found := slices.BinarySearchFunc(prog.Instructions, offset, func(inst Instruction, offset int) int {
		switch {
		case offset < inst.Offset:
			return 1
		case offset >= inst.Offset+len(inst.Code):
			return -1
		default:
			return 0
		}
	})
	if !found {
		return
	}

	inst = &prog.Instructions[n]
	ok = true
	return
}

// Listing writes a table of line, offset, bytes and source for each instruction.
func (prog *Program) Listing(output io.Writer) {
	table := tablewriter.NewWriter(output)
	table.SetHeader([]string{"Line", "Offset", "Code", "Source"})
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, inst := range prog.Instructions {
		table.Append([]string{
			fmt.Sprintf("%d", inst.LineNo),
			fmt.Sprintf("$%04x", inst.Offset),
			fmt.Sprintf("% x", inst.Code),
			strings.Join(inst.Words, " "),
		})
	}

	table.Render()
}
