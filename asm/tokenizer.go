package asm

import (
	"io"
	"iter"
	"strings"

	"github.com/ezrec/coe65/internal"
)

// Statement is a single tokenized source line.
type Statement struct {
	LineNo int      // Line number, from 1.
	Line   string   // Raw source text.
	Tokens []string // Mnemonic, followed by at most one operand.
}

// TokenizeLine splits one line of source into its mnemonic and operand
// tokens. Comments, directives, labels and blank lines yield nil.
func TokenizeLine(text string) (tokens []string) {
	line := strings.TrimSpace(text)
	if len(line) == 0 || line[0] == ';' || line[0] == '.' {
		return
	}

	stem, _, _ := strings.Cut(line, ";")
	if _, after, ok := strings.Cut(stem, ":"); ok {
		stem = after
	}

	tokens = strings.Fields(stem)
	if len(tokens) == 0 {
		tokens = nil
		return
	}

	tokens[0] = strings.ToLower(tokens[0])

	return
}

// Tokenize lazily reads source lines, yielding a Statement for each line
// that carries an instruction. Read failures are yielded as *ErrIo, at the
// line that could not be read, and end the sequence.
func Tokenize(input io.Reader) iter.Seq2[Statement, error] {
	return func(yield func(Statement, error) bool) {
		var lineno int
		for text, err := range internal.Lines(input) {
			if err != nil {
				yield(Statement{LineNo: lineno + 1}, &ErrIo{Op: "read", Err: err})
				return
			}
			lineno++

			tokens := TokenizeLine(text)
			if len(tokens) == 0 {
				continue
			}

			if !yield(Statement{LineNo: lineno, Line: text, Tokens: tokens}, nil) {
				return
			}
		}
	}
}
