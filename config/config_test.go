package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/coe65/asm"
	"github.com/ezrec/coe65/coe"
)

func TestDefault(t *testing.T) {
	assert := assert.New(t)

	cfg := Default()
	assert.Equal(coe.POLICY_REFLOW, cfg.Policy)
	assert.Equal(64, cfg.Width)
	assert.True(cfg.AllowOptionalDollarSign)
	assert.False(cfg.Header)

	set, err := cfg.InstructionSet()
	assert.NoError(err)
	assert.Same(asm.W65C02(), set)
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	src := `
_base = 0x02

def _op(n):
    return _base + n

policy = "stream"
width = 16
allow_optional_dollar_sign = False
header = True
opcodes = {
    "implied": {"hlt": _op(0)},
    "absolute": {"jml": 0x5c},
}
`
	cfg, err := Load("test.star", src)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(coe.POLICY_STREAM, cfg.Policy)
	assert.Equal(16, cfg.Width)
	assert.False(cfg.AllowOptionalDollarSign)
	assert.True(cfg.Header)
	assert.Equal(map[asm.Mode]map[string]byte{
		asm.MODE_IMPLIED:  {"hlt": 0x02},
		asm.MODE_ABSOLUTE: {"jml": 0x5c},
	}, cfg.Opcodes)

	enc, err := cfg.Encoder()
	assert.NoError(err)
	assert.False(enc.AllowOptionalDollarSign)

	code, err := enc.Encode("hlt")
	assert.NoError(err)
	assert.Equal([]byte{0x02}, code)

	code, err = enc.Encode("jml", "$1234")
	assert.NoError(err)
	assert.Equal([]byte{0x5c, 0x34, 0x12}, code)

	// Built-ins survive.
	code, err = enc.Encode("sta", "$0200")
	assert.NoError(err)
	assert.Equal([]byte{0x8d, 0x00, 0x02}, code)

	w := cfg.Writer()
	assert.Equal(coe.POLICY_STREAM, w.Policy)
	assert.Equal(16, w.Width)
	assert.True(w.Header)
}

func TestLoadFile(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "coe65.star")
	assert.NoError(os.WriteFile(path, []byte("width = 8\n"), 0o644))

	cfg, err := Load(path, nil)
	assert.NoError(err)
	assert.Equal(8, cfg.Width)
	assert.Equal(coe.POLICY_REFLOW, cfg.Policy)

	_, err = Load(filepath.Join(t.TempDir(), "missing.star"), nil)
	assert.Error(err)
}

func TestLoadErrors(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		src  string
		name string
		err  error
	}{
		{`policy = 1`, "policy", ErrType{Want: "string", Got: "int"}},
		{`policy = "wrap"`, "policy", coe.ErrPolicyInvalid("wrap")},
		{`width = "wide"`, "width", ErrType{Want: "int", Got: "string"}},
		{`width = 0`, "width", ErrWidthRange},
		{`header = 1`, "header", ErrType{Want: "bool", Got: "int"}},
		{`allow_optional_dollar_sign = "yes"`, "allow_optional_dollar_sign", ErrType{Want: "bool", Got: "string"}},
		{`colour = True`, "colour", ErrUnknown("colour")},
		{`opcodes = []`, "opcodes", ErrType{Want: "dict", Got: "list"}},
		{`opcodes = {"indexed": {}}`, "opcodes", asm.ErrModeInvalid("indexed")},
		{`opcodes = {"implied": []}`, "opcodes", ErrType{Want: "dict", Got: "list"}},
		{`opcodes = {"implied": {"hlt": 256}}`, "opcodes", ErrOpcodeRange},
		{`opcodes = {"implied": {"hlt": "x"}}`, "opcodes", ErrType{Want: "int", Got: "string"}},
		{`opcodes = {1: {}}`, "opcodes", ErrType{Want: "string", Got: "int"}},
	}

	for _, entry := range table {
		cfg, err := Load("test.star", entry.src)
		assert.Nil(cfg, entry.src)
		var ge ErrGlobal
		if assert.True(errors.As(err, &ge), entry.src) {
			assert.Equal(entry.name, ge.Name, entry.src)
			assert.Equal(entry.err, ge.Err, entry.src)
		}
	}

	// Starlark syntax errors pass through.
	_, err := Load("test.star", "width = ")
	assert.Error(err)
}

func TestInstructionSetErrors(t *testing.T) {
	assert := assert.New(t)

	// 0xea is already 'nop'.
	cfg, err := Load("test.star", `opcodes = {"immediate": {"hlt": 0xea}}`)
	assert.NoError(err)
	_, err = cfg.InstructionSet()
	assert.ErrorIs(err, asm.ErrOpcodeDuplicate)

	cfg, err = Load("test.star", `opcodes = {"implied": {"HLT": 0x02}}`)
	assert.NoError(err)
	_, err = cfg.Encoder()
	assert.ErrorIs(err, asm.ErrMnemonicInvalid)
}

func TestValidate(t *testing.T) {
	assert := assert.New(t)

	cfg := Default()
	assert.NoError(cfg.Validate())

	for _, width := range []int{0, -3} {
		cfg.Width = width
		err := cfg.Validate()
		assert.ErrorIs(err, ErrWidthRange, width)
		var ge ErrGlobal
		if assert.True(errors.As(err, &ge), width) {
			assert.Equal("width", ge.Name)
		}
	}

	cfg.Width = 1
	assert.NoError(cfg.Validate())
}
