// Package config loads encoder and formatter settings from a Starlark file.
//
// A configuration file is plain Starlark; its top level globals become the
// settings:
//
//	policy = "stream"
//	width = 32
//	allow_optional_dollar_sign = False
//	header = True
//	opcodes = {
//	    "implied": {"hlt": 0x02},
//	    "absolute": {"jml": 0x5c},
//	}
//
// Globals whose names begin with '_' are private to the file.
package config

import (
	"errors"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/coe65/asm"
	"github.com/ezrec/coe65/coe"
	"github.com/ezrec/coe65/translate"
)

var f = translate.From

var (
	ErrOpcodeRange = errors.New(f("opcode out of range"))
	ErrWidthRange  = errors.New(f("width must be positive"))
)

// ErrGlobal reports a configuration global that is unknown or mistyped.
type ErrGlobal struct {
	Name string
	Err  error
}

func (err ErrGlobal) Error() string {
	return f("%v: %v", err.Name, err.Err)
}

func (err ErrGlobal) Unwrap() error {
	return err.Err
}

type ErrType struct {
	Want string
	Got  string
}

func (err ErrType) Error() string {
	return f("want %v, got %v", err.Want, err.Got)
}

type ErrUnknown string

func (err ErrUnknown) Error() string {
	return f("unknown setting '%v'", string(err))
}

// Config holds the encoder and formatter settings.
type Config struct {
	Policy                  coe.Policy
	Width                   int
	AllowOptionalDollarSign bool
	Header                  bool

	// Opcodes extend or replace entries of the built-in tables, per mode.
	Opcodes map[asm.Mode]map[string]byte
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Policy:                  coe.POLICY_REFLOW,
		Width:                   coe.DEFAULT_WIDTH,
		AllowOptionalDollarSign: true,
	}
}

// Load executes a Starlark configuration file. If src is nil the file is read
// from filename, otherwise src (string or []byte) is used.
func Load(filename string, src any) (cfg *Config, err error) {
	thread := &starlark.Thread{Name: filename}
	opts := &syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(opts, thread, filename, src, nil)
	if err != nil {
		return
	}

	cfg = Default()
	for _, name := range globals.Keys() {
		if strings.HasPrefix(name, "_") {
			continue
		}
		err = cfg.set(name, globals[name])
		if err != nil {
			err = ErrGlobal{Name: name, Err: err}
			cfg = nil
			return
		}
	}

	return
}

func (cfg *Config) set(name string, value starlark.Value) (err error) {
	switch name {
	case "policy":
		str, ok := starlark.AsString(value)
		if !ok {
			err = ErrType{Want: "string", Got: value.Type()}
			return
		}
		cfg.Policy, err = coe.ParsePolicy(str)
	case "width":
		var width int
		err = starlark.AsInt(value, &width)
		if err != nil {
			err = ErrType{Want: "int", Got: value.Type()}
			return
		}
		err = validWidth(width)
		if err != nil {
			return
		}
		cfg.Width = width
	case "allow_optional_dollar_sign":
		cfg.AllowOptionalDollarSign, err = asBool(value)
	case "header":
		cfg.Header, err = asBool(value)
	case "opcodes":
		err = cfg.setOpcodes(value)
	default:
		if _, ok := value.(*starlark.Function); ok {
			// Helper functions are allowed.
			return
		}
		err = ErrUnknown(name)
	}

	return
}

func validWidth(width int) (err error) {
	if width <= 0 {
		err = ErrWidthRange
	}
	return
}

// Validate checks settings that may have been changed after Load.
func (cfg *Config) Validate() (err error) {
	err = validWidth(cfg.Width)
	if err != nil {
		err = ErrGlobal{Name: "width", Err: err}
	}
	return
}

func asBool(value starlark.Value) (b bool, err error) {
	v, ok := value.(starlark.Bool)
	if !ok {
		err = ErrType{Want: "bool", Got: value.Type()}
		return
	}
	b = bool(v)
	return
}

func asDict(value starlark.Value) (dict *starlark.Dict, err error) {
	dict, ok := value.(*starlark.Dict)
	if !ok {
		err = ErrType{Want: "dict", Got: value.Type()}
	}
	return
}

func (cfg *Config) setOpcodes(value starlark.Value) (err error) {
	modes, err := asDict(value)
	if err != nil {
		return
	}

	cfg.Opcodes = make(map[asm.Mode]map[string]byte, modes.Len())
	for _, item := range modes.Items() {
		name, ok := starlark.AsString(item[0])
		if !ok {
			err = ErrType{Want: "string", Got: item[0].Type()}
			return
		}
		var mode asm.Mode
		mode, err = asm.ParseMode(name)
		if err != nil {
			return
		}

		var entries *starlark.Dict
		entries, err = asDict(item[1])
		if err != nil {
			return
		}

		table := make(map[string]byte, entries.Len())
		for _, entry := range entries.Items() {
			mnemonic, ok := starlark.AsString(entry[0])
			if !ok {
				err = ErrType{Want: "string", Got: entry[0].Type()}
				return
			}
			var opcode int
			err = starlark.AsInt(entry[1], &opcode)
			if err != nil {
				err = ErrType{Want: "int", Got: entry[1].Type()}
				return
			}
			if opcode < 0 || opcode > 0xff {
				err = ErrOpcodeRange
				return
			}
			table[mnemonic] = byte(opcode)
		}
		cfg.Opcodes[mode] = table
	}

	return
}

// InstructionSet merges the configured opcodes over the built-in W65C02
// tables and validates the result.
func (cfg *Config) InstructionSet() (set *asm.InstructionSet, err error) {
	base := asm.W65C02()
	if len(cfg.Opcodes) == 0 {
		set = base
		return
	}

	var tables [3]asm.OpcodeTable
	for n, mode := range asm.Modes {
		entries := base.Table(mode).Entries()
		for mnemonic, opcode := range cfg.Opcodes[mode] {
			entries[mnemonic] = opcode
		}
		tables[n], err = asm.NewOpcodeTable(mode, entries)
		if err != nil {
			return
		}
	}

	set, err = asm.NewInstructionSet(tables[0], tables[1], tables[2])

	return
}

// Encoder returns an asm.Encoder for the configuration.
func (cfg *Config) Encoder() (enc asm.Encoder, err error) {
	set, err := cfg.InstructionSet()
	if err != nil {
		return
	}

	enc = asm.Encoder{
		Set:                     set,
		AllowOptionalDollarSign: cfg.AllowOptionalDollarSign,
	}

	return
}

// Writer returns a coe.Writer for the configuration.
func (cfg *Config) Writer() *coe.Writer {
	return &coe.Writer{
		Policy: cfg.Policy,
		Width:  cfg.Width,
		Header: cfg.Header,
	}
}
