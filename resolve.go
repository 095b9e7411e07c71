//go:build linux

package stty

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// requests accumulates deferred-output and commit-behavior requests made
// by operands, inspected by run once the fold over the argument list is
// complete.
type requests struct {
	showSize  bool
	showSpeed bool
	drain     bool
}

// resolve consumes one operand (and its value token, for the classes that
// take one) from the front of args, mutating the working state. Operand
// classes are tried in fixed priority order, first match winning. It
// reports how many tokens it consumed.
func resolve(dev device, args []string, a *Attr, req *requests) (int, error) {
	tok := args[0]

	if strings.HasPrefix(tok, "=") {
		if err := decodeAttr(tok[1:], a); err != nil {
			return 0, err
		}
		return 1, nil
	}

	name := strings.TrimPrefix(tok, "-")
	if m := lookupMode(name); m != nil {
		unset := name != tok
		if unset && m.tags&tagBool == 0 {
			return 0, errors.Wrap(errInvalidOperand, tok)
		}
		if m.group == grpComb {
			expandComb(unset, m, a, req)
		} else {
			applyMode(unset, m, a, req)
		}
		return 1, nil
	}

	if k := lookupKey(tok); k != nil {
		if len(args) < 2 {
			return 0, errors.Wrap(errMissingArgument, tok)
		}
		v, err := parseKeyValue(args[1])
		if err != nil {
			return 0, err
		}
		a.Cc[k.index] = v
		return 2, nil
	}

	if iv := lookupInt(tok); iv != nil {
		if len(args) < 2 {
			return 0, errors.Wrap(errMissingArgument, tok)
		}
		if err := applyInt(dev, iv.arg, args[1], a); err != nil {
			return 0, err
		}
		return 2, nil
	}

	if tok == "line" {
		if len(args) < 2 {
			return 0, errors.Wrap(errMissingArgument, tok)
		}
		if err := applyLine(args[1], a); err != nil {
			return 0, err
		}
		return 2, nil
	}

	if s := lookupSpeed(tok); s != nil {
		a.setInputSpeed(*s)
		a.setOutputSpeed(*s)
		return 1, nil
	}

	return 0, errors.Wrap(errInvalidOperand, tok)
}

// applyMode flips the addressed flag-group bits: the clear mask always goes
// first so that mutually exclusive fields (character sizes, delay styles)
// are reset before the new value lands, then the set mask is ORed in or
// ANDed out depending on polarity.
func applyMode(unset bool, m *mode, a *Attr, req *requests) {
	if w := a.word(m.group); w != nil {
		*w &^= m.clear
		if !unset {
			*w |= m.set
		} else {
			*w &^= m.set
		}
	}
	runEffect(m.fx, unset, a, req)
}

// expandComb resolves a combination operand: its set/clear fields hold tag
// masks, and every non-combination entry whose tags intersect them is
// applied in catalog order, the clear side with inverted polarity.
// Membership propagation ignores the entries' own negatability. The
// combination's side effect, if any, runs last.
func expandComb(unset bool, m *mode, a *Attr, req *requests) {
	add, sub := int(m.set), int(m.clear)
	if add != 0 || sub != 0 {
		for i := range modes {
			p := &modes[i]
			if p.group == grpComb {
				continue
			}
			if sub != 0 && p.tags&sub != 0 {
				applyMode(!unset, p, a, req)
			}
			if add != 0 && p.tags&add != 0 {
				applyMode(unset, p, a, req)
			}
		}
	}
	runEffect(m.fx, unset, a, req)
}

func runEffect(fx effect, unset bool, a *Attr, req *requests) {
	switch fx {
	case fxSane:
		for _, k := range keys {
			a.Cc[k.index] = k.sane
		}
		a.Cc[unix.VMIN] = 1
		a.Cc[unix.VTIME] = 0
	case fxRaw:
		rawEffect(unset, a)
	case fxCooked:
		rawEffect(!unset, a)
	case fxEvenParity:
		a.Oflag &^= unix.CSIZE
		if unset {
			a.Oflag &^= unix.PARENB
			a.Oflag |= unix.CS8
		} else {
			a.Oflag &^= unix.PARODD
			a.Oflag |= unix.CS7 | unix.PARENB
		}
	case fxOddParity:
		a.Oflag &^= unix.CSIZE
		if unset {
			a.Oflag &^= unix.PARENB
			a.Oflag |= unix.CS8
		} else {
			a.Oflag |= unix.CS7 | unix.PARODD | unix.PARENB
		}
	case fxPass8:
		a.Cflag &^= unix.CSIZE
		if unset {
			a.Cflag |= unix.CS7
		} else {
			a.Cflag |= unix.CS8
		}
	case fxNewline:
		if unset {
			a.Iflag &^= unix.INLCR | unix.IGNCR
			a.Oflag &^= unix.OCRNL | unix.ONLRET
		}
	case fxDecKeys:
		a.Cc[unix.VINTR] = saneIntr
		a.Cc[unix.VKILL] = saneKill
		a.Cc[unix.VERASE] = saneErase
	case fxEraseKill:
		a.Cc[unix.VKILL] = saneKill
		a.Cc[unix.VERASE] = saneErase
	case fxTabs:
		a.Oflag &^= unix.TABDLY
		if unset {
			a.Oflag |= unix.TAB3
		}
	case fxDrain:
		req.drain = !unset
	case fxShowSize:
		req.showSize = true
	case fxShowSpeed:
		req.showSpeed = true
	}
}

func rawEffect(unset bool, a *Attr) {
	if !unset {
		a.Iflag = 0
		a.Lflag &^= unix.XCASE
		a.Cc[unix.VMIN] = 1
		a.Cc[unix.VTIME] = 0
	} else {
		a.Iflag |= unix.BRKINT | unix.IGNPAR | unix.ISTRIP | unix.ICRNL | unix.IXON
	}
}

// parseKeyValue decodes a control-character value: `^-` or `undef`
// disables the character, `^?` is DEL, `^X` the control form of X, a
// single character stands for itself, anything longer is a bounded
// numeric literal.
func parseKeyValue(s string) (byte, error) {
	switch {
	case s == "^-" || s == "undef":
		return ccDisable, nil
	case s == "^?":
		return 127, nil
	case len(s) < 2:
		if s == "" {
			return 0, nil
		}
		return s[0], nil
	case s[0] == '^':
		return s[1] &^ 0x60, nil
	}
	n, err := parseBounded(s, ccMax)
	if err != nil {
		return 0, err
	}
	return byte(n), nil
}

// parseBounded parses a numeric literal in any common base (strtoll-style
// prefix detection) and range checks it.
func parseBounded(s string, max int64) (int64, error) {
	n, err := strconv.ParseInt(s, 0, 64)
	if err != nil || n < 0 || n > max {
		return 0, errors.Wrap(errInvalidOperand, s)
	}
	return n, nil
}

func applyInt(dev device, arg intArg, val string, a *Attr) error {
	switch arg {
	case argCols:
		n, err := parseBounded(val, 65535)
		if err != nil {
			return err
		}
		return adjustWinsize(dev, -1, int(n))
	case argRows:
		n, err := parseBounded(val, 65535)
		if err != nil {
			return err
		}
		return adjustWinsize(dev, int(n), -1)
	case argMin:
		n, err := parseBounded(val, ccMax)
		if err != nil {
			return err
		}
		a.Cc[unix.VMIN] = byte(n)
	case argTime:
		n, err := parseBounded(val, ccMax)
		if err != nil {
			return err
		}
		a.Cc[unix.VTIME] = byte(n)
	case argIspeed:
		s := lookupSpeed(val)
		if s == nil {
			return errors.Wrap(errInvalidOperand, val)
		}
		a.setInputSpeed(*s)
	case argOspeed:
		s := lookupSpeed(val)
		if s == nil {
			return errors.Wrap(errInvalidOperand, val)
		}
		a.setOutputSpeed(*s)
	}
	return nil
}

// Geometry changes go straight to the driver; they are not part of the
// termios record and bypass commit/verify.
func adjustWinsize(dev device, rows, cols int) error {
	ws, err := dev.winsize()
	if err != nil {
		return err
	}
	if rows >= 0 {
		ws.Row = uint16(rows)
	}
	if cols >= 0 {
		ws.Col = uint16(cols)
	}
	return dev.setWinsize(ws)
}

func applyLine(val string, a *Attr) error {
	for _, l := range ldiscs {
		if l.name == val {
			a.Line = l.id
			return nil
		}
	}
	n, err := parseBounded(val, 255)
	if err != nil {
		return err
	}
	a.Line = byte(n)
	return nil
}
