package severity

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
)

const reset = "\x1b[0m"

func TestHighlight(t *testing.T) {
	assert := assert.New(t)

	h := &Highlighter{}

	table := []struct {
		line     string
		expected string
	}{
		{
			"ERROR: [Synth 8-439] module 'cpu' not found",
			"\x1b[38;5;9mERROR" + reset + ": \x1b[38;5;15m[Synth 8-439]" + reset + " module 'cpu' not found",
		},
		{
			"CRITICAL WARNING: [Constraints 18-5210] No constraints",
			"\x1b[38;5;202mCRITICAL WARNING" + reset + ": \x1b[38;5;15m[Constraints 18-5210]" + reset + " No constraints",
		},
		{
			"INFO: Launching helper process",
			"\x1b[38;5;3mINFO" + reset + ": Launching helper process",
		},
		{
			"WARNING: no id here [not: an id]",
			"\x1b[38;5;11mWARNING" + reset + ": no id here [not: an id]",
		},
		{
			"INFO: text here: [Synth 8-1] msg",
			"\x1b[38;5;3mINFO" + reset + ": text here: \x1b[38;5;15m[Synth 8-1]" + reset + " msg",
		},
		{"STATUSBAR: not a message", "STATUSBAR: not a message"},
		{"# comment line", "# comment line"},
		{"", ""},
	}

	for _, entry := range table {
		assert.Equal(entry.expected, h.Highlight(entry.line), entry.line)
	}
}

func TestHighlightNoColor(t *testing.T) {
	assert := assert.New(t)

	h := &Highlighter{NoColor: true}
	assert.Equal("ERROR: [Synth 8-439] x", h.Highlight("ERROR: [Synth 8-439] x"))
}

func TestCopy(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	h := &Highlighter{Output: &buf, NoColor: true}
	text := "STATUS: ok\nplain\nERROR: bad\n"
	assert.NoError(h.Copy(strings.NewReader(text)))
	assert.Equal(text, buf.String())

	buf.Reset()
	h.NoColor = false
	assert.NoError(h.Copy(strings.NewReader("plain\nINFO: x")))
	assert.Equal("plain\n\x1b[38;5;3mINFO"+reset+": x\n", buf.String())

	boom := errors.New("boom")
	assert.Equal(boom, h.Copy(iotest.ErrReader(boom)))
}
