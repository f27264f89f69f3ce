package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ezrec/coe65/coe"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %v <filename>\n", os.Args[0])
		os.Exit(1)
	}

	coeFile := os.Args[1]
	mifFile := coe.MifName(coeFile)

	inf, err := os.Open(coeFile)
	if err != nil {
		log.Fatalf("%v: %v", coeFile, err)
	}
	defer inf.Close()

	ouf, err := os.Create(mifFile)
	if err != nil {
		log.Fatalf("%v: %v", mifFile, err)
	}

	_, err = coe.WriteMif(ouf, coe.Read(inf))
	if err != nil {
		ouf.Close()
		os.Remove(mifFile)
		log.Fatalf("%v: %v", coeFile, err)
	}

	err = ouf.Close()
	if err != nil {
		log.Fatalf("%v: %v", mifFile, err)
	}
}
