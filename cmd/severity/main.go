package main

import (
	"flag"
	"log"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/ezrec/coe65/severity"
)

func main() {
	var mode string

	flag.StringVar(&mode, "color", "auto", "Colorize output: auto, always or never")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	h := &severity.Highlighter{
		Output: colorable.NewColorableStdout(),
	}

	switch mode {
	case "auto":
		fd := os.Stdout.Fd()
		h.NoColor = !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
	case "always":
	case "never":
		h.NoColor = true
	default:
		log.Fatalf("%v: -color %v: want auto, always or never", os.Args[0], mode)
	}

	err := h.Copy(os.Stdin)
	if err != nil {
		log.Fatal(err)
	}
}
