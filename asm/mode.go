package asm

// Mode is an addressing mode.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_IMPLIED   = Mode(0) // implied
	MODE_IMMEDIATE = Mode(1) // immediate
	MODE_ABSOLUTE  = Mode(2) // absolute
)

// Modes lists every addressing mode in table order.
var Modes = []Mode{MODE_IMPLIED, MODE_IMMEDIATE, MODE_ABSOLUTE}

// Size returns the encoded length, in bytes, of an instruction in this mode.
func (mode Mode) Size() int {
	switch mode {
	case MODE_IMMEDIATE:
		return 2
	case MODE_ABSOLUTE:
		return 3
	default:
		return 1
	}
}

// ParseMode returns the Mode named by its String() form.
func ParseMode(name string) (mode Mode, err error) {
	for _, m := range Modes {
		if m.String() == name {
			mode = m
			return
		}
	}

	err = ErrModeInvalid(name)
	return
}
