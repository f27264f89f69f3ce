package main

import (
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/ezrec/coe65/coe"
)

func main() {
	var output string
	var opcode string

	fill := coe.NewFill(coe.DEFAULT_FILL_OPCODE)

	flag.StringVar(&output, "o", "./basic.coe", "Output .coe file")
	flag.StringVar(&opcode, "fill", "0f", "Opcode to fill the image with, in hex")
	flag.IntVar(&fill.Size, "size", fill.Size, "Address space size in bytes")
	flag.IntVar(&fill.PageSize, "page", fill.PageSize, "Bytes per page")
	flag.IntVar(&fill.Rows, "rows", fill.Rows, "Rows per page")
	flag.IntVar(&fill.Columns, "cols", fill.Columns, "Bytes per row")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	value, err := strconv.ParseUint(opcode, 16, 8)
	if err != nil {
		log.Fatalf("%v: -fill %v: %v", os.Args[0], opcode, err)
	}
	fill.Opcode = byte(value)

	err = fill.Validate()
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	ouf, err := os.Create(output)
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}

	err = fill.Generate(ouf)
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}

	err = ouf.Close()
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}
}
