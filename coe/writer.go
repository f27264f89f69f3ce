// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package coe

import (
	"bufio"
	"io"
	"iter"
)

const (
	DEFAULT_WIDTH = 64 // Bytes per row.

	headerRadix  = "memory_initialization_radix = 16;\n"
	headerVector = "memory_initialization_vector =\n"
	trailer      = ";\n"
)

const hexDigits = "0123456789abcdef"

// Writer formats instruction bytes as rows of space separated, lowercase hex
// byte pairs. Output is buffered; Close must be called to end the last row.
type Writer struct {
	Output io.Writer // Destination.
	Policy Policy    // Row wrapping policy.
	Width  int       // Bytes per row; DEFAULT_WIDTH if zero.
	Header bool      // If set, wrap the rows in a COE radix/vector header.

	out     *bufio.Writer
	offset  int  // Total bytes written.
	sep     byte // Separator owed before the next byte.
	started bool
	closed  bool
}

// Offset returns the number of bytes written so far.
func (w *Writer) Offset() int {
	return w.offset
}

func (w *Writer) width() int {
	if w.Width <= 0 {
		return DEFAULT_WIDTH
	}
	return w.Width
}

func (w *Writer) start() (err error) {
	if w.started {
		return
	}
	w.started = true
	w.out = bufio.NewWriter(w.Output)

	if w.Header {
		_, err = w.out.WriteString(headerRadix + headerVector)
	}

	return
}

// Write appends the bytes of one instruction.
func (w *Writer) Write(code []byte) (err error) {
	if w.closed {
		err = ErrClosed
		return
	}

	err = w.start()
	if err != nil {
		return
	}

	width := w.width()
	for n, b := range code {
		if w.sep != 0 {
			w.out.WriteByte(w.sep)
		}
		w.out.WriteByte(hexDigits[b>>4])
		w.out.WriteByte(hexDigits[b&0xf])
		w.offset++

		last := n == len(code)-1
		switch {
		case w.Policy == POLICY_REFLOW && w.offset%width == 0:
			w.sep = '\n'
		case w.Policy == POLICY_STREAM && last && w.offset%width == 0:
			w.sep = '\n'
		default:
			w.sep = ' '
		}
	}

	// bufio.Writer errors are sticky; Flush reports the first one.
	if w.out.Buffered() >= w.out.Size()/2 {
		err = w.out.Flush()
	}

	return
}

// Close ends the final row, writes the COE trailer if needed, and flushes.
// It does not close Output.
func (w *Writer) Close() (err error) {
	if w.closed {
		return
	}

	err = w.start()
	if err != nil {
		return
	}
	w.closed = true

	if w.sep != 0 {
		w.out.WriteByte('\n')
		w.sep = 0
	}

	if w.Header {
		w.out.WriteString(trailer)
	}

	err = w.out.Flush()

	return
}

// WriteAll writes every instruction in the sequence, then closes the Writer.
func (w *Writer) WriteAll(codes iter.Seq[[]byte]) (err error) {
	for code := range codes {
		err = w.Write(code)
		if err != nil {
			return
		}
	}

	err = w.Close()

	return
}
