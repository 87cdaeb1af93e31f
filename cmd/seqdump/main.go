// Command seqdump prints the fixed size records stored in a binary file
//
// Usage:
//
//	seqdump <file> --layout <fields> [--order be|le] [--offset N] [--count N]
//
// the file is memory mapped read only and decoded record by record through a
// seqbuffer, see the layout package for the field codes.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
