// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/coe65/asm"
	"github.com/ezrec/coe65/coe"
	"github.com/ezrec/coe65/config"
)

func main() {
	var output string
	var policy string
	var width int
	var dollar bool
	var header bool
	var listing bool
	var configFile string
	var verbose bool

	flag.StringVar(&output, "o", "-", "Output .coe file")
	flag.StringVar(&policy, "policy", coe.POLICY_REFLOW.String(), "Row wrapping policy: reflow or stream")
	flag.IntVar(&width, "w", coe.DEFAULT_WIDTH, "Bytes per row")
	flag.BoolVar(&dollar, "dollar", true, "Accept '#$XX' immediates as well as '#XX'")
	flag.BoolVar(&header, "header", false, "Emit the COE radix and vector header")
	flag.BoolVar(&listing, "l", false, "Print a listing to stderr")
	flag.StringVar(&configFile, "config", "", "Starlark configuration file")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %v [options] source.asm\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	source := flag.Arg(0)

	cfg := config.Default()
	if len(configFile) != 0 {
		var err error
		cfg, err = config.Load(configFile, nil)
		if err != nil {
			log.Fatalf("%v: %v", configFile, err)
		}
	}

	// Explicit flags override the configuration file.
	var err error
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "policy":
			cfg.Policy, err = coe.ParsePolicy(policy)
		case "w":
			cfg.Width = width
		case "dollar":
			cfg.AllowOptionalDollarSign = dollar
		case "header":
			cfg.Header = header
		}
	})
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	enc, err := cfg.Encoder()
	if err != nil {
		log.Fatalf("%v: %v", configFile, err)
	}

	inf, err := os.Open(source)
	if err != nil {
		log.Fatalf("%v: %v", source, &asm.ErrIo{Op: "open", Err: err})
	}
	defer inf.Close()

	assembler := &asm.Assembler{Verbose: verbose, Encoder: enc}
	prog, err := assembler.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", source, err)
	}

	if listing {
		prog.Listing(os.Stderr)
	}

	w := cfg.Writer()
	if output == "-" {
		w.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, &asm.ErrIo{Op: "create", Err: err})
		}
		defer ouf.Close()
		w.Output = ouf
	}

	err = w.WriteAll(prog.Codes())
	if err != nil {
		log.Fatalf("%v: %v", output, &asm.ErrIo{Op: "write", Err: err})
	}

	if verbose {
		log.Printf("%v: %v bytes, %v instructions", source, w.Offset(), len(prog.Instructions))
	}
}
