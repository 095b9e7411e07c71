//go:build linux

package stty

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Options carries the global flags of one invocation.
type Options struct {
	All    bool // exhaustive display (-a)
	Encode bool // hex-encoded state on stdout (-g)
}

// Exec runs one pass over the operand list against the terminal attached
// to standard input, writing any requested output to out.
func Exec(out io.Writer, opts Options, operands []string) error {
	return run(stdinDevice(), out, opts, operands)
}

func run(dev device, out io.Writer, opts Options, operands []string) error {
	var snap Attr
	if err := dev.getAttr(&snap); err != nil {
		return err
	}
	work := snap
	req := requests{drain: true}

	for i := 0; i < len(operands); {
		n, err := resolve(dev, operands[i:], &work, &req)
		if err != nil {
			return err
		}
		i += n
	}

	if work != snap {
		if err := dev.setAttr(&work, req.drain); err != nil {
			return err
		}
		var applied Attr
		if err := dev.getAttr(&applied); err != nil {
			return err
		}
		if applied != work {
			// The driver silently rejected or coerced a change. The
			// device keeps whatever state it produced; no rollback.
			return errors.Wrap(errCommitVerify, "tcsetattr <stdin>")
		}
	}

	if opts.Encode {
		fmt.Fprintf(out, "=%s\n", encodeAttr(&work))
	}

	if req.showSize {
		ws, err := dev.winsize()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%d %d\n", ws.Row, ws.Col)
	}

	if req.showSpeed {
		in, outSpeed := work.inputSpeed(), work.outputSpeed()
		if in == 0 || in == outSpeed {
			fmt.Fprintln(out, speedName(outSpeed))
		} else {
			fmt.Fprintln(out, speedName(in)+" "+speedName(outSpeed))
		}
	}

	if (opts.All || len(operands) == 0) && !opts.Encode {
		if err := displaySettings(dev, &work, opts.All, newTokenWriter(out)); err != nil {
			return err
		}
	}
	return nil
}
