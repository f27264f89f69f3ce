package coe

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"path/filepath"
	"strings"
)

// MifName returns the MIF file name for a COE file: its last extension,
// whatever it is, is replaced by '.mif'.
func MifName(coeFile string) string {
	return strings.TrimSuffix(coeFile, filepath.Ext(coeFile)) + ".mif"
}

// WriteMif writes each byte as an 8 character binary string on its own line,
// the memory format read by HDL simulators.
func WriteMif(output io.Writer, values iter.Seq2[byte, error]) (count int, err error) {
	out := bufio.NewWriter(output)

	for value, err_in := range values {
		if err_in != nil {
			err = err_in
			return
		}
		_, err = fmt.Fprintf(out, "%08b\n", value)
		if err != nil {
			return
		}
		count++
	}

	err = out.Flush()

	return
}
