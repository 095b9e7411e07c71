//go:build linux

package stty

import (
	"golang.org/x/sys/unix"
)

// fakeDevice is an in-memory terminal that accepts every change, unless a
// coerce hook is installed to mimic a driver rejecting part of a commit.
type fakeDevice struct {
	attr   Attr
	ws     unix.Winsize
	sets   int
	coerce func(*Attr)
}

func (d *fakeDevice) getAttr(a *Attr) error { *a = d.attr; return nil }

func (d *fakeDevice) setAttr(a *Attr, drain bool) error {
	d.attr = *a
	if d.coerce != nil {
		d.coerce(&d.attr)
	}
	d.sets++
	return nil
}

func (d *fakeDevice) winsize() (*unix.Winsize, error) {
	ws := d.ws
	return &ws, nil
}

func (d *fakeDevice) setWinsize(ws *unix.Winsize) error {
	d.ws = *ws
	return nil
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		attr: saneAttr(),
		ws:   unix.Winsize{Row: 24, Col: 80},
	}
}

// saneAttr is the canonical interactive baseline: every entry the
// differences dump checks against sits at its default polarity.
func saneAttr() Attr {
	var a Attr
	a.Iflag = unix.BRKINT | unix.ICRNL | unix.IMAXBEL | unix.IUTF8 | unix.IXON
	a.Oflag = unix.OPOST | unix.ONLCR
	a.Cflag = unix.CREAD | unix.CS8 | unix.HUPCL | unix.B38400
	a.Lflag = unix.ISIG | unix.ICANON | unix.ECHO | unix.ECHOE | unix.ECHOK |
		unix.ECHOKE | unix.ECHOCTL | unix.IEXTEN
	a.Line = nTTY
	for _, k := range keys {
		a.Cc[k.index] = k.sane
	}
	a.Cc[unix.VMIN] = 1
	a.Cc[unix.VTIME] = 0
	a.Ispeed = 38400
	a.Ospeed = 38400
	return a
}
