package asm

import (
	"iter"
	"maps"
	"slices"
	"sync"
)

// OpcodeTable maps three letter, lowercase mnemonics to the opcode byte of a
// single addressing mode. Tables are immutable once built.
type OpcodeTable struct {
	mode Mode
	code map[string]byte
}

// validMnemonic is true for exactly three lowercase ASCII letters.
func validMnemonic(mnemonic string) bool {
	if len(mnemonic) != 3 {
		return false
	}
	for _, c := range []byte(mnemonic) {
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}

// NewOpcodeTable builds a table for one addressing mode. No two mnemonics
// may share an opcode.
func NewOpcodeTable(mode Mode, entries map[string]byte) (table OpcodeTable, err error) {
	seen := make(map[byte]string, len(entries))
	for _, mnemonic := range slices.Sorted(maps.Keys(entries)) {
		if !validMnemonic(mnemonic) {
			err = ErrTable{Mode: mode, Mnemonic: mnemonic, Err: ErrMnemonicInvalid}
			return
		}
		opcode := entries[mnemonic]
		if _, ok := seen[opcode]; ok {
			err = ErrTable{Mode: mode, Mnemonic: mnemonic, Err: ErrOpcodeDuplicate}
			return
		}
		seen[opcode] = mnemonic
	}

	table = OpcodeTable{
		mode: mode,
		code: maps.Clone(entries),
	}

	return
}

// Mode returns the addressing mode of the table.
func (table OpcodeTable) Mode() Mode {
	return table.mode
}

// Len returns the number of mnemonics in the table.
func (table OpcodeTable) Len() int {
	return len(table.code)
}

// Lookup returns the opcode for a mnemonic.
func (table OpcodeTable) Lookup(mnemonic string) (opcode byte, ok bool) {
	opcode, ok = table.code[mnemonic]
	return
}

// All iterates over the table in mnemonic order.
func (table OpcodeTable) All() iter.Seq2[string, byte] {
	return func(yield func(mnemonic string, opcode byte) bool) {
		for _, mnemonic := range slices.Sorted(maps.Keys(table.code)) {
			if !yield(mnemonic, table.code[mnemonic]) {
				return
			}
		}
	}
}

// Entries returns a mutable copy of the table contents.
func (table OpcodeTable) Entries() map[string]byte {
	return maps.Clone(table.code)
}

type decodeEntry struct {
	mnemonic string
	mode     Mode
}

// InstructionSet is the trio of addressing mode tables handed to an Encoder.
// Opcodes are unique across all three tables, so any encoded stream can be
// decoded again.
type InstructionSet struct {
	tables [3]OpcodeTable
	decode map[byte]decodeEntry
}

// NewInstructionSet validates and joins the three addressing mode tables.
func NewInstructionSet(implied, immediate, absolute OpcodeTable) (set *InstructionSet, err error) {
	set = &InstructionSet{
		tables: [3]OpcodeTable{implied, immediate, absolute},
		decode: make(map[byte]decodeEntry, implied.Len()+immediate.Len()+absolute.Len()),
	}

	for _, mode := range Modes {
		table := set.Table(mode)
		if table.Len() != 0 && table.Mode() != mode {
			err = ErrTable{Mode: mode, Err: ErrTableMode}
			set = nil
			return
		}
		for mnemonic, opcode := range table.All() {
			if _, ok := set.decode[opcode]; ok {
				err = ErrTable{Mode: mode, Mnemonic: mnemonic, Err: ErrOpcodeDuplicate}
				set = nil
				return
			}
			set.decode[opcode] = decodeEntry{mnemonic: mnemonic, mode: mode}
		}
	}

	return
}

// Table returns the table for an addressing mode.
func (set *InstructionSet) Table(mode Mode) (table OpcodeTable) {
	if mode >= 0 && int(mode) < len(set.tables) {
		table = set.tables[mode]
	}
	return
}

// Decode returns the mnemonic and addressing mode of an opcode byte.
func (set *InstructionSet) Decode(opcode byte) (mnemonic string, mode Mode, ok bool) {
	entry, ok := set.decode[opcode]
	if !ok {
		return
	}
	mnemonic = entry.mnemonic
	mode = entry.mode
	return
}

var w65c02Implied = map[string]byte{
	"brk": 0x00,
	"clc": 0x18,
	"cld": 0xd8,
	"cli": 0x58,
	"clv": 0xb8,
	"dex": 0xca,
	"dey": 0x88,
	"inx": 0xe8,
	"iny": 0xc8,
	"nop": 0xea,
	"pha": 0x48,
	"php": 0x08,
	"phx": 0xda,
	"phy": 0x5a,
	"pla": 0x68,
	"plp": 0x28,
	"plx": 0xfa,
	"ply": 0x7a,
	"rti": 0x40,
	"rts": 0x60,
	"sec": 0x38,
	"sed": 0xf8,
	"sei": 0x78,
	"stp": 0xdb,
	"tax": 0xaa,
	"tay": 0xa8,
	"tsx": 0xba,
	"txa": 0x8a,
	"txs": 0x9a,
	"tya": 0x98,
	"wai": 0xcb,
	// Accumulator forms
	"asl": 0x0a,
	"dec": 0x3a,
	"inc": 0x1a,
	"lsr": 0x4a,
	"rol": 0x2a,
	"ror": 0x6a,
}

var w65c02Immediate = map[string]byte{
	"adc": 0x69,
	"and": 0x29,
	"bit": 0x89,
	"cmp": 0xc9,
	"cpx": 0xe0,
	"cpy": 0xc0,
	"eor": 0x49,
	"lda": 0xa9,
	"ldx": 0xa2,
	"ldy": 0xa0,
	"ora": 0x09,
	"sbc": 0xe9,
}

var w65c02Absolute = map[string]byte{
	"adc": 0x6d,
	"and": 0x2d,
	"asl": 0x0e,
	"bit": 0x2c,
	"cmp": 0xcd,
	"cpx": 0xec,
	"cpy": 0xcc,
	"dec": 0xce,
	"eor": 0x4d,
	"inc": 0xee,
	"jmp": 0x4c,
	"jsr": 0x20,
	"lda": 0xad,
	"ldx": 0xae,
	"ldy": 0xac,
	"lsr": 0x4e,
	"ora": 0x0d,
	"rol": 0x2e,
	"ror": 0x6e,
	"sbc": 0xed,
	"sta": 0x8d,
	"stx": 0x8e,
	"sty": 0x8c,
	"stz": 0x9c,
	"trb": 0x1c,
	"tsb": 0x0c,
}

var w65c02 = sync.OnceValue(func() *InstructionSet {
	implied, err := NewOpcodeTable(MODE_IMPLIED, w65c02Implied)
	if err != nil {
		panic(err)
	}
	immediate, err := NewOpcodeTable(MODE_IMMEDIATE, w65c02Immediate)
	if err != nil {
		panic(err)
	}
	absolute, err := NewOpcodeTable(MODE_ABSOLUTE, w65c02Absolute)
	if err != nil {
		panic(err)
	}
	set, err := NewInstructionSet(implied, immediate, absolute)
	if err != nil {
		panic(err)
	}
	return set
})

// W65C02 returns the built-in WDC 65C02 instruction set, restricted to the
// implied, immediate and absolute addressing modes.
func W65C02() *InstructionSet {
	return w65c02()
}
