package coe

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	MAX_SIZE = 1 << 16 // Largest distributed memory the generator accepts.

	DEFAULT_FILL_OPCODE = 0x0f
	DEFAULT_PAGE_SIZE   = 1 << 12
	DEFAULT_ROWS        = 1 << 6
	DEFAULT_COLUMNS     = 1 << 6
)

// Fill describes a COE image where every byte holds the same opcode, laid out
// in pages of Rows x Columns bytes.
type Fill struct {
	Opcode   byte
	Size     int // Total bytes.
	PageSize int // Bytes per page.
	Rows     int // Rows per page.
	Columns  int // Bytes per row.
}

// NewFill returns the default 64K geometry filled with opcode.
func NewFill(opcode byte) *Fill {
	return &Fill{
		Opcode:   opcode,
		Size:     MAX_SIZE,
		PageSize: DEFAULT_PAGE_SIZE,
		Rows:     DEFAULT_ROWS,
		Columns:  DEFAULT_COLUMNS,
	}
}

// Validate checks the page geometry.
func (fill *Fill) Validate() (err error) {
	switch {
	case fill.Rows <= 0 || fill.Columns <= 0:
		err = ErrGeometry
	case fill.Rows*fill.Columns != fill.PageSize:
		err = ErrGeometry
	case fill.Size <= 0 || fill.Size > MAX_SIZE:
		err = ErrGeometry
	case fill.Size%fill.PageSize != 0:
		err = ErrGeometry
	}
	return
}

// Generate writes the image, with a ';;' banner and a ';;' address range
// comment before each page.
func (fill *Fill) Generate(output io.Writer) (err error) {
	err = fill.Validate()
	if err != nil {
		return
	}

	out := bufio.NewWriter(output)

	fmt.Fprintf(out, ";; Distributed Memory Generator COE file\n")
	fmt.Fprintf(out, ";; \tAddress Size = %d\n", fill.Size)
	fmt.Fprintf(out, ";; \tPage Size = %d\n", fill.PageSize)
	fmt.Fprintf(out, ";; %v", headerRadix)
	fmt.Fprintf(out, ";; %v", headerVector)

	cell := []byte{hexDigits[fill.Opcode>>4], hexDigits[fill.Opcode&0xf]}
	row := strings.TrimSuffix(strings.Repeat(string(cell)+" ", fill.Columns), " ")

	for page := range fill.Size / fill.PageSize {
		start := page * fill.PageSize
		end := start + fill.PageSize - 1
		fmt.Fprintf(out, ";; Addresses from %#x to %#x.\n", start, end)
		for range fill.Rows {
			out.WriteString(row)
			out.WriteByte('\n')
		}
	}

	err = out.Flush()

	return
}
