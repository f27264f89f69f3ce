// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"io"
	"log"
	"slices"
)

// Assembler is a single pass assembler: each source line is tokenized,
// encoded and appended before the next line is read.
type Assembler struct {
	Verbose bool    // If set, verbosely logs the assembler actions.
	Encoder Encoder // Encoder used for every instruction.

	Instruction []Instruction // List of encoded instructions.
}

// currentOffset gets the byte offset of the next instruction.
func (asm *Assembler) currentOffset() int {
	if len(asm.Instruction) == 0 {
		return 0
	}

	last := asm.Instruction[len(asm.Instruction)-1]

	return last.Offset + len(last.Code)
}

// Parse assembles an input stream into a Program. The first failure aborts
// the run; no Program is returned with an error.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	var stmt Statement

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: stmt.LineNo, Line: stmt.Line, Err: err}
		}
	}()

	asm.Instruction = asm.Instruction[:0]

	for stmt, err = range Tokenize(input) {
		if err != nil {
			return
		}

		if asm.Verbose {
			log.Printf("%v: %v\n", stmt.LineNo, stmt.Line)
		}

		var mode Mode
		mode, err = ModeOf(stmt.Tokens)
		if err != nil {
			return
		}

		var code []byte
		code, err = asm.Encoder.Encode(stmt.Tokens...)
		if err != nil {
			return
		}

		asm.Instruction = append(asm.Instruction, Instruction{
			LineNo: stmt.LineNo,
			Offset: asm.currentOffset(),
			Words:  stmt.Tokens,
			Mode:   mode,
			Code:   code,
		})
	}

	prog = &Program{
		Instructions: slices.Clone(asm.Instruction),
	}

	return
}
