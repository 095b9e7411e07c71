//go:build linux

package stty

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-runewidth"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// tokenWriter appends space-separated tokens to the current output line,
// starting a new line instead of pushing past the terminal width. A zero
// width means unbounded. One value lives for the duration of one dump.
type tokenWriter struct {
	w     io.Writer
	width int
	pos   int
}

func newTokenWriter(w io.Writer) *tokenWriter {
	tw := &tokenWriter{w: w}
	if f, ok := w.(*os.File); ok {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 40 {
			tw.width = cols
		}
	}
	return tw
}

func (tw *tokenWriter) token(format string, args ...interface{}) {
	s := fmt.Sprintf(format, args...)
	n := runewidth.StringWidth(s)
	sep := 0
	if tw.pos > 0 {
		sep = 1
	}
	if tw.width > 0 && tw.pos+sep+n > tw.width {
		io.WriteString(tw.w, "\n")
		tw.pos = 0
	} else if tw.pos > 0 {
		io.WriteString(tw.w, " ")
		tw.pos++
	}
	io.WriteString(tw.w, s)
	tw.pos += n
}

// breakLine ends the current topical group. It emits a newline only when
// the line already holds something, so repeated breaks collapse.
func (tw *tokenWriter) breakLine() {
	if tw.pos > 0 {
		io.WriteString(tw.w, "\n")
		tw.pos = 0
	}
}

// ccName renders a control-character value the way stty prints it:
// undef, ^X, ^?, the character itself, or a meta form.
func ccName(c byte) string {
	switch {
	case c == ccDisable:
		return "undef"
	case c < ' ':
		return "^" + string(rune('@'+c))
	case c < 127:
		return string(rune(c))
	case c == 127:
		return "^?"
	case c < 128+' ':
		return "M-^" + string(rune('@'+c-128))
	case c == 128+127:
		return "M-^?"
	default:
		return "M-" + string(rune(c-128))
	}
}

// isDefault reports the baseline polarity used by the differences dump:
// sane/insane membership decides when present, the DEF tag otherwise.
func isDefault(tags int) bool {
	if tags&(tagSane|tagInsane) != 0 {
		return tags&tagSane != 0
	}
	return tags&tagDef != 0
}

// displaySettings dumps the state as operand tokens, either exhaustively
// (all) or restricted to values departing from the baseline. Output is
// organized into fixed topical groups, each ended by a forced break.
func displaySettings(dev device, a *Attr, all bool, tw *tokenWriter) error {
	in, out := a.inputSpeed(), a.outputSpeed()
	if in == 0 || in == out {
		if all || out != unix.B38400 {
			tw.token("speed %s baud;", speedName(out))
		}
	} else {
		tw.token("ispeed %s baud;", speedName(in))
		tw.token("ospeed %s baud;", speedName(out))
	}

	if all {
		ws, err := dev.winsize()
		if err != nil {
			return err
		}
		tw.token("rows %d;", ws.Row)
		tw.token("columns %d;", ws.Col)
	}
	tw.breakLine()

	if all || a.Line != 0 {
		if name, ok := ldiscName(a.Line); ok {
			tw.token("line = %s;", name)
		} else {
			tw.token("line = %d;", a.Line)
		}
	}
	if all || (a.Cc[unix.VMIN] != 1 && a.Lflag&unix.ICANON == 0) {
		tw.token("min = %d;", a.Cc[unix.VMIN])
	}
	if all || (a.Cc[unix.VTIME] != 0 && a.Lflag&unix.ICANON == 0) {
		tw.token("time = %d;", a.Cc[unix.VTIME])
	}
	tw.breakLine()

	for _, k := range keys {
		if all || a.Cc[k.index] != k.sane {
			tw.token("%s = %s;", k.name, ccName(a.Cc[k.index]))
		}
	}
	tw.breakLine()

	for i := range modes {
		m := &modes[i]
		w := a.word(m.group)
		if w == nil || m.tags&tagDup != 0 {
			continue
		}
		mask := m.clear
		if mask == 0 {
			mask = m.set
		}
		switch {
		case *w&mask == m.set:
			if all || !isDefault(m.tags) {
				tw.token("%s", m.name)
			}
		case m.tags&tagBool != 0:
			if all || isDefault(m.tags) {
				tw.token("-%s", m.name)
			}
		}
	}
	tw.breakLine()
	return nil
}
