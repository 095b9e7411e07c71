//go:build linux

package stty

import (
	"os"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Attr mirrors the kernel termios record byte for byte. Every mutation the
// resolver applies must survive a set/get round trip through the driver
// unchanged, so no field is ever held in a form that cannot be written
// back verbatim.
type Attr unix.Termios

const attrLen = int(unsafe.Sizeof(Attr{}))

// Shift of the CIBAUD input-baud bits within Cflag (IBSHIFT in termbits.h).
const ibshift = 16

func (a *Attr) bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(a)), attrLen)
}

func (a *Attr) word(g group) *uint32 {
	switch g {
	case grpCtrl:
		return &a.Cflag
	case grpIn:
		return &a.Iflag
	case grpOut:
		return &a.Oflag
	case grpLocal:
		return &a.Lflag
	}
	return nil
}

// inputSpeed returns the input baud bits; zero means the input side
// follows the output speed.
func (a *Attr) inputSpeed() uint32  { return (a.Cflag & unix.CIBAUD) >> ibshift }
func (a *Attr) outputSpeed() uint32 { return a.Cflag & unix.CBAUD }

// The numeric Ispeed/Ospeed fields are kept in lockstep with the baud bits;
// the termios2 ioctls transfer them, so a stale value would defeat the
// byte-exact commit verification.
func (a *Attr) setOutputSpeed(s speedEntry) {
	a.Cflag = a.Cflag&^unix.CBAUD | s.bits
	a.Ospeed = s.rate
	if a.Cflag&unix.CIBAUD == 0 {
		a.Ispeed = s.rate
	}
}

func (a *Attr) setInputSpeed(s speedEntry) {
	if s.bits == unix.B0 {
		a.Cflag &^= unix.CIBAUD
		a.Ispeed = a.Ospeed
		return
	}
	a.Cflag = a.Cflag&^unix.CIBAUD | s.bits<<ibshift
	a.Ispeed = s.rate
}

// device is the control surface of the terminal under configuration.
type device interface {
	getAttr(*Attr) error
	setAttr(a *Attr, drain bool) error
	winsize() (*unix.Winsize, error)
	setWinsize(*unix.Winsize) error
}

// tty drives a real terminal through its file descriptor.
type tty struct {
	fd int
}

// unix.Termios carries the termios2 layout; the legacy TCGETS/TCSETS pair
// transfers only its 36-byte prefix and would leave the numeric speed
// fields unread, so the device speaks the termios2 ioctls throughout.
func (t tty) getAttr(a *Attr) error {
	raw, err := unix.IoctlGetTermios(t.fd, unix.TCGETS2)
	if err != nil {
		return markKind(errDeviceQuery, errors.Wrap(err, "tcgetattr <stdin>"))
	}
	*a = Attr(*raw)
	return nil
}

func (t tty) setAttr(a *Attr, drain bool) error {
	req := uint(unix.TCSETS2)
	if drain {
		req = unix.TCSETSW2
	}
	raw := unix.Termios(*a)
	if err := unix.IoctlSetTermios(t.fd, req, &raw); err != nil {
		return markKind(errDeviceCommit, errors.Wrap(err, "tcsetattr <stdin>"))
	}
	return nil
}

func (t tty) winsize() (*unix.Winsize, error) {
	ws, err := unix.IoctlGetWinsize(t.fd, unix.TIOCGWINSZ)
	if err != nil {
		return nil, markKind(errDeviceQuery, errors.Wrap(err, "TIOCGWINSZ <stdin>"))
	}
	return ws, nil
}

func (t tty) setWinsize(ws *unix.Winsize) error {
	if err := unix.IoctlSetWinsize(t.fd, unix.TIOCSWINSZ, ws); err != nil {
		return markKind(errDeviceCommit, errors.Wrap(err, "TIOCSWINSZ <stdin>"))
	}
	return nil
}

func stdinDevice() device { return tty{fd: int(os.Stdin.Fd())} }
