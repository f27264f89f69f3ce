package internal

import (
	"errors"
	"io"
	"slices"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
)

func TestFlatten(t *testing.T) {
	assert := assert.New(t)

	codes := slices.Values([][]byte{{0x78}, {}, {0xa9, 0x05}, {0x8d, 0x00, 0x02}})
	assert.Equal([]byte{0x78, 0xa9, 0x05, 0x8d, 0x00, 0x02}, slices.Collect(Flatten(codes)))

	// Early stop.
	var first []byte
	for b := range Flatten(codes) {
		first = append(first, b)
		if len(first) == 2 {
			break
		}
	}
	assert.Equal([]byte{0x78, 0xa9}, first)
}

func TestLines(t *testing.T) {
	assert := assert.New(t)

	var lines []string
	for line, err := range Lines(strings.NewReader("sei\r\n\nlda #$05\nsta $0200")) {
		assert.NoError(err)
		lines = append(lines, line)
	}
	assert.Equal([]string{"sei", "", "lda #$05", "sta $0200"}, lines)
}

func TestLinesError(t *testing.T) {
	assert := assert.New(t)

	boom := errors.New("boom")
	var lines []string
	var last error
	for line, err := range Lines(iotest.ErrReader(boom)) {
		lines = append(lines, line)
		last = err
	}
	assert.Equal([]string{""}, lines)
	assert.ErrorIs(last, boom)
}

func TestLinesLong(t *testing.T) {
	assert := assert.New(t)

	long := strings.Repeat("x", 200000)
	lines := slices.Collect(func(yield func(string) bool) {
		for line, err := range Lines(strings.NewReader("a\n" + long + "\r\nb\n")) {
			assert.NoError(err)
			if !yield(line) {
				return
			}
		}
	})
	assert.Equal([]string{"a", long, "b"}, lines)
}

func TestLinesErrorAfterPartial(t *testing.T) {
	assert := assert.New(t)

	boom := errors.New("boom")
	input := io.MultiReader(strings.NewReader("one\ntw"), iotest.ErrReader(boom))

	var lines []string
	var last error
	for line, err := range Lines(input) {
		lines = append(lines, line)
		last = err
	}
	assert.Equal([]string{"one", ""}, lines)
	assert.ErrorIs(last, boom)
}
