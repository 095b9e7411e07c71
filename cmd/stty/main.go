//go:build linux

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/termtools/stty"
)

func main() {
	args := os.Args[1:]
	prog := filepath.Base(os.Args[0])

	var aflag, gflag bool
	n := 0
scan:
	for ; n < len(args); n++ {
		switch args[n] {
		case "-ag", "-ga":
			aflag, gflag = true, true
		case "-a":
			aflag = true
		case "-g":
			gflag = true
		case "--":
			n++
			break scan
		default:
			break scan
		}
	}

	if aflag && gflag {
		// Complain but keep going; -g wins the output.
		fmt.Fprintf(os.Stderr, "usage: %s [-a | -g] [operand ...]\n", prog)
	}

	err := stty.Exec(os.Stdout, stty.Options{All: aflag, Encode: gflag}, args[n:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", prog, err)
		os.Exit(1)
	}
}
