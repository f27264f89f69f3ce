package coe

import (
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/ezrec/coe65/internal"
)

// Read yields every byte value in a COE file. Comment lines (;), the
// memory_initialization_* configuration lines and blank lines are skipped.
// Values are whitespace separated hex; a trailing ',' or ';' is ignored.
func Read(input io.Reader) iter.Seq2[byte, error] {
	return func(yield func(byte, error) bool) {
		var lineno int
		for line, err := range internal.Lines(input) {
			if err != nil {
				yield(0, err)
				return
			}
			lineno++

			if strings.HasPrefix(line, ";") || strings.HasPrefix(line, "memory") {
				continue
			}

			for _, word := range strings.Fields(line) {
				word = strings.TrimRight(word, ",;")
				if len(word) == 0 {
					continue
				}
				value, err := strconv.ParseUint(word, 16, 8)
				if err != nil {
					yield(0, ErrValue{LineNo: lineno, Value: word})
					return
				}
				if !yield(byte(value), nil) {
					return
				}
			}
		}
	}
}
