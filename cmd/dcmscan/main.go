// Command dcmscan parses DICOM files and assembles CT/MR scans from the
// command line.
package main

import (
	"fmt"
	"os"

	"github.com/dicomscan/dicomscan/cmd/dcmscan/cmd"
)

func main() {
	if err := cmd.NewRoot().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
