//go:build linux

package stty

import (
	"testing"

	"golang.org/x/sys/unix"
	"gotest.tools/v3/assert"
)

func applyOperands(t *testing.T, dev device, a *Attr, req *requests, operands ...string) {
	t.Helper()
	for i := 0; i < len(operands); {
		n, err := resolve(dev, operands[i:], a, req)
		assert.NilError(t, err, "operand %q", operands[i])
		i += n
	}
}

func TestNegationSymmetry(t *testing.T) {
	dev := newFakeDevice()
	for i := range modes {
		m := &modes[i]
		if m.group == grpComb || m.group == grpSpec || m.tags&tagBool == 0 {
			continue
		}
		var req requests

		// From a cleared group, set then unset lands back on zero.
		var a Attr
		applyOperands(t, dev, &a, &req, m.name, "-"+m.name)
		assert.Equal(t, *a.word(m.group), uint32(0), m.name)

		// From a saturated group, unset then set restores every bit.
		var b Attr
		*b.word(m.group) = ^uint32(0)
		applyOperands(t, dev, &b, &req, "-"+m.name, m.name)
		assert.Equal(t, *b.word(m.group), ^uint32(0), m.name)
	}
}

func TestNonNegatableOperandRejected(t *testing.T) {
	dev := newFakeDevice()
	var a Attr
	var req requests
	for _, tok := range []string{"-cs8", "-sane", "-size", "-ek"} {
		_, err := resolve(dev, []string{tok}, &a, &req)
		assert.ErrorIs(t, err, errInvalidOperand)
		assert.ErrorContains(t, err, tok)
	}
}

func TestRawCombination(t *testing.T) {
	dev := newFakeDevice()
	a := saneAttr()
	a.Cc[unix.VMIN] = 5
	a.Cc[unix.VTIME] = 7
	var req requests

	applyOperands(t, dev, &a, &req, "raw")
	assert.Equal(t, a.Iflag, uint32(0))
	assert.Equal(t, a.Cc[unix.VMIN], byte(1))
	assert.Equal(t, a.Cc[unix.VTIME], byte(0))
	// raw unwinds the cooked members too.
	assert.Equal(t, a.Oflag&unix.OPOST, uint32(0))
	assert.Equal(t, a.Lflag&(unix.ICANON|unix.ISIG), uint32(0))

	applyOperands(t, dev, &a, &req, "-raw")
	def := uint32(unix.BRKINT | unix.IGNPAR | unix.ISTRIP | unix.ICRNL | unix.IXON)
	assert.Equal(t, a.Iflag&def, def)
	assert.Equal(t, a.Oflag&unix.OPOST, uint32(unix.OPOST))
	assert.Equal(t, a.Lflag&(unix.ICANON|unix.ISIG), uint32(unix.ICANON|unix.ISIG))
}

func TestCookedIsInverseOfRaw(t *testing.T) {
	dev := newFakeDevice()
	var req requests

	raw := saneAttr()
	applyOperands(t, dev, &raw, &req, "raw")
	cooked := raw
	applyOperands(t, dev, &cooked, &req, "cooked")

	viaUnraw := raw
	applyOperands(t, dev, &viaUnraw, &req, "-raw")
	assert.Equal(t, cooked, viaUnraw)
}

func TestSaneIdempotence(t *testing.T) {
	dev := newFakeDevice()
	a := saneAttr()
	a.Cc[unix.VINTR] = 7
	a.Cc[unix.VERASE] = 8
	a.Cc[unix.VMIN] = 200
	a.Cc[unix.VTIME] = 200
	a.Lflag &^= unix.ECHO | unix.ICANON
	var req requests

	applyOperands(t, dev, &a, &req, "sane")
	once := a
	applyOperands(t, dev, &a, &req, "sane")
	assert.Equal(t, a, once)

	for _, k := range keys {
		assert.Equal(t, a.Cc[k.index], k.sane, k.name)
	}
	assert.Equal(t, a.Cc[unix.VMIN], byte(1))
	assert.Equal(t, a.Cc[unix.VTIME], byte(0))
}

func TestPass8AndLitout(t *testing.T) {
	dev := newFakeDevice()
	a := saneAttr()
	a.Cflag |= unix.PARENB
	a.Iflag |= unix.ISTRIP
	var req requests

	applyOperands(t, dev, &a, &req, "pass8")
	assert.Equal(t, a.Cflag&unix.CSIZE, uint32(unix.CS8))
	assert.Equal(t, a.Cflag&unix.PARENB, uint32(0))
	assert.Equal(t, a.Iflag&unix.ISTRIP, uint32(0))

	applyOperands(t, dev, &a, &req, "-pass8")
	assert.Equal(t, a.Cflag&unix.CSIZE, uint32(unix.CS7))
	assert.Equal(t, a.Cflag&unix.PARENB, uint32(unix.PARENB))
	assert.Equal(t, a.Iflag&unix.ISTRIP, uint32(unix.ISTRIP))
}

func TestNewlineCombination(t *testing.T) {
	dev := newFakeDevice()
	a := saneAttr()
	a.Iflag |= unix.INLCR | unix.IGNCR
	a.Oflag |= unix.OCRNL | unix.ONLRET
	var req requests

	// The set polarity only turns off the CR-NL mapping pair.
	applyOperands(t, dev, &a, &req, "nl")
	assert.Equal(t, a.Iflag&unix.ICRNL, uint32(0))
	assert.Equal(t, a.Oflag&unix.ONLCR, uint32(0))
	assert.Equal(t, a.Iflag&(unix.INLCR|unix.IGNCR), uint32(unix.INLCR|unix.IGNCR))

	// The unset polarity additionally clears the four translation bits.
	applyOperands(t, dev, &a, &req, "-nl")
	assert.Equal(t, a.Iflag&unix.ICRNL, uint32(unix.ICRNL))
	assert.Equal(t, a.Oflag&unix.ONLCR, uint32(unix.ONLCR))
	assert.Equal(t, a.Iflag&(unix.INLCR|unix.IGNCR), uint32(0))
	assert.Equal(t, a.Oflag&(unix.OCRNL|unix.ONLRET), uint32(0))
}

func TestDecCombination(t *testing.T) {
	dev := newFakeDevice()
	a := saneAttr()
	a.Iflag |= unix.IXANY
	a.Cc[unix.VINTR] = 1
	a.Cc[unix.VERASE] = 2
	a.Cc[unix.VKILL] = 3
	var req requests

	applyOperands(t, dev, &a, &req, "dec")
	assert.Equal(t, a.Iflag&unix.IXANY, uint32(0))
	assert.Equal(t, a.Lflag&unix.ECHOE, uint32(unix.ECHOE))
	assert.Equal(t, a.Cc[unix.VINTR], byte(saneIntr))
	assert.Equal(t, a.Cc[unix.VERASE], byte(saneErase))
	assert.Equal(t, a.Cc[unix.VKILL], byte(saneKill))
}

func TestParityCombinations(t *testing.T) {
	dev := newFakeDevice()
	var req requests

	var a Attr
	applyOperands(t, dev, &a, &req, "evenp")
	assert.Equal(t, a.Oflag&unix.CSIZE, uint32(unix.CS7))
	assert.Equal(t, a.Oflag&unix.PARENB, uint32(unix.PARENB))
	assert.Equal(t, a.Oflag&unix.PARODD, uint32(0))

	var b Attr
	applyOperands(t, dev, &b, &req, "oddp")
	assert.Equal(t, b.Oflag&unix.CSIZE, uint32(unix.CS7))
	assert.Equal(t, b.Oflag&(unix.PARENB|unix.PARODD), uint32(unix.PARENB|unix.PARODD))

	applyOperands(t, dev, &b, &req, "-oddp")
	assert.Equal(t, b.Oflag&unix.CSIZE, uint32(unix.CS8))
	assert.Equal(t, b.Oflag&unix.PARENB, uint32(0))
}

func TestKeyValueSyntax(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want byte
	}{
		{"^-", ccDisable},
		{"undef", ccDisable},
		{"^?", 127},
		{"^C", 3},
		{"^c", 3},
		{"^Z", 26},
		{"a", 'a'},
		{"0", '0'},
		{"10", 10},
		{"0x1f", 0x1f},
		{"017", 017},
		{"255", 255},
	} {
		got, err := parseKeyValue(tc.in)
		assert.NilError(t, err, tc.in)
		assert.Equal(t, got, tc.want, tc.in)
	}

	for _, in := range []string{"256", "-1", "xyz", "12junk"} {
		_, err := parseKeyValue(in)
		assert.ErrorIs(t, err, errInvalidOperand)
	}
}

func TestKeyOperand(t *testing.T) {
	dev := newFakeDevice()
	a := saneAttr()
	var req requests

	applyOperands(t, dev, &a, &req, "intr", "^G", "eof", "undef")
	assert.Equal(t, a.Cc[unix.VINTR], byte(7))
	assert.Equal(t, a.Cc[unix.VEOF], byte(ccDisable))

	_, err := resolve(dev, []string{"intr"}, &a, &req)
	assert.ErrorIs(t, err, errMissingArgument)
	assert.ErrorContains(t, err, "intr")
}

func TestIntOperandRanges(t *testing.T) {
	dev := newFakeDevice()
	a := saneAttr()
	var req requests

	applyOperands(t, dev, &a, &req, "min", "12", "time", "255")
	assert.Equal(t, a.Cc[unix.VMIN], byte(12))
	assert.Equal(t, a.Cc[unix.VTIME], byte(255))

	for _, operands := range [][]string{
		{"min", "9999"},
		{"time", "256"},
		{"rows", "70000"},
		{"cols", "-1"},
	} {
		_, err := resolve(dev, operands, &a, &req)
		assert.ErrorIs(t, err, errInvalidOperand)
	}

	_, err := resolve(dev, []string{"min"}, &a, &req)
	assert.ErrorIs(t, err, errMissingArgument)
}

func TestGeometryOperands(t *testing.T) {
	dev := newFakeDevice()
	a := saneAttr()
	var req requests

	applyOperands(t, dev, &a, &req, "rows", "50")
	assert.Equal(t, dev.ws.Row, uint16(50))
	assert.Equal(t, dev.ws.Col, uint16(80))

	applyOperands(t, dev, &a, &req, "columns", "132")
	assert.Equal(t, dev.ws.Col, uint16(132))
}

func TestLineDiscipline(t *testing.T) {
	dev := newFakeDevice()
	a := saneAttr()
	var req requests

	applyOperands(t, dev, &a, &req, "line", "ppp")
	assert.Equal(t, a.Line, byte(nPPP))

	applyOperands(t, dev, &a, &req, "line", "42")
	assert.Equal(t, a.Line, byte(42))

	_, err := resolve(dev, []string{"line", "300"}, &a, &req)
	assert.ErrorIs(t, err, errInvalidOperand)

	_, err = resolve(dev, []string{"line"}, &a, &req)
	assert.ErrorIs(t, err, errMissingArgument)
}

func TestBareSpeedSetsBothDirections(t *testing.T) {
	dev := newFakeDevice()
	a := saneAttr()
	var req requests

	applyOperands(t, dev, &a, &req, "9600")
	assert.Equal(t, a.outputSpeed(), uint32(unix.B9600))
	assert.Equal(t, a.inputSpeed(), uint32(unix.B9600))
	assert.Equal(t, a.Ispeed, uint32(9600))
	assert.Equal(t, a.Ospeed, uint32(9600))
}

func TestSplitSpeeds(t *testing.T) {
	dev := newFakeDevice()
	a := saneAttr()
	var req requests

	applyOperands(t, dev, &a, &req, "ispeed", "300", "ospeed", "9600")
	assert.Equal(t, a.inputSpeed(), uint32(unix.B300))
	assert.Equal(t, a.outputSpeed(), uint32(unix.B9600))
	assert.Equal(t, a.Ispeed, uint32(300))
	assert.Equal(t, a.Ospeed, uint32(9600))

	_, err := resolve(dev, []string{"ispeed", "12345"}, &a, &req)
	assert.ErrorIs(t, err, errInvalidOperand)
}

func TestDeferredRequests(t *testing.T) {
	dev := newFakeDevice()
	a := saneAttr()
	req := requests{drain: true}

	applyOperands(t, dev, &a, &req, "size", "speed", "-drain")
	assert.Equal(t, req, requests{showSize: true, showSpeed: true, drain: false})
}

func TestUnknownOperand(t *testing.T) {
	dev := newFakeDevice()
	a := saneAttr()
	var req requests

	for _, tok := range []string{"bogus", "-", "--", "CS8"} {
		_, err := resolve(dev, []string{tok}, &a, &req)
		assert.ErrorIs(t, err, errInvalidOperand)
		assert.ErrorContains(t, err, tok)
	}
}
