// Package asm implements a single pass W65C02 instruction encoder used to
// build Xilinx COE memory images.
//
// Source text is read one line at a time. Comments (;), directives (.) and
// labels (name:) are stripped by the tokenizer, leaving a mnemonic and at most
// one operand. The encoder selects an addressing mode from the operand syntax:
//
//	nop        implied
//	lda #$05   immediate
//	sta $0200  absolute, emitted low byte first
//
// Labels are never resolved; there is no symbol table.
package asm
