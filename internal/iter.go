package internal

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"strings"
)

// Flatten concatenates a sequence of slices into a single element sequence.
func Flatten[T any](seq iter.Seq[[]T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for vals := range seq {
			for _, val := range vals {
				if !yield(val) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// Lines yields each line of the input, without its line ending. Lines are
// not limited in length. A read failure is yielded once, with an empty line,
// as the final value; the partially read line is discarded.
func Lines(input io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		reader := bufio.NewReader(input)
		for {
			line, err := reader.ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				yield("", err)
				return
			}
			if len(line) != 0 {
				line = strings.TrimSuffix(line, "\n")
				line = strings.TrimSuffix(line, "\r")
				if !yield(line, nil) {
					return
				}
			}
			if err != nil {
				return
			}
		}
	}
}
