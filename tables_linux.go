//go:build linux

package stty

import "golang.org/x/sys/unix"

const (
	ccDisable = 0 // _POSIX_VDISABLE
	ccMax     = 255
)

// Sane control-character values, from sys/ttydefaults.h.
const (
	saneIntr    = 3   // ^C
	saneQuit    = 28  // ^\
	saneErase   = 127 // DEL
	saneKill    = 21  // ^U
	saneEOF     = 4   // ^D
	saneStart   = 17  // ^Q
	saneStop    = 19  // ^S
	saneSusp    = 26  // ^Z
	saneLnext   = 22  // ^V
	saneRprnt   = 18  // ^R
	saneWerase  = 23  // ^W
	saneDiscard = 15  // ^O
)

// Line discipline ids, from linux/tty.h.
const (
	nTTY = iota
	nSLIP
	nMouse
	nPPP
	nSTRIP
	nAX25
	nX25
	n6Pack
	nMASC
	nR3964
	nProfibusFDL
	nIRDA
	nSMSBlock
	nHDLC
	nSyncPPP
	nHCI
)

var modes = []mode{
	{"clocal", grpCtrl, unix.CLOCAL, 0, fxNone, tagBool},
	{"cmspar", grpCtrl, unix.CMSPAR, 0, fxNone, tagBool},
	{"cread", grpCtrl, unix.CREAD, 0, fxNone, tagBool | tagSane},
	{"crtscts", grpCtrl, unix.CRTSCTS, 0, fxNone, tagBool},
	{"cs5", grpCtrl, unix.CS5, unix.CSIZE, fxNone, 0},
	{"cs6", grpCtrl, unix.CS6, unix.CSIZE, fxNone, 0},
	{"cs7", grpCtrl, unix.CS7, unix.CSIZE, fxNone, 0},
	{"cs8", grpCtrl, unix.CS8, unix.CSIZE, fxNone, tagDef},
	{"cstopb", grpCtrl, unix.CSTOPB, 0, fxNone, tagBool},
	{"hup", grpCtrl, unix.HUPCL, 0, fxNone, tagBool | tagDup},
	{"hupcl", grpCtrl, unix.HUPCL, 0, fxNone, tagBool | tagDef},
	{"parenb", grpCtrl, unix.PARENB, 0, fxNone, tagBool | tagPass8 | tagLitout},
	{"parodd", grpCtrl, unix.PARODD, 0, fxNone, tagBool},

	{"brkint", grpIn, unix.BRKINT, 0, fxNone, tagBool | tagSane},
	{"icrnl", grpIn, unix.ICRNL, 0, fxNone, tagBool | tagSane | tagNL},
	{"ignbrk", grpIn, unix.IGNBRK, 0, fxNone, tagBool | tagInsane},
	{"igncr", grpIn, unix.IGNCR, 0, fxNone, tagBool | tagInsane},
	{"ignpar", grpIn, unix.IGNPAR, 0, fxNone, tagBool},
	{"imaxbel", grpIn, unix.IMAXBEL, 0, fxNone, tagBool | tagSane},
	{"inlcr", grpIn, unix.INLCR, 0, fxNone, tagBool | tagInsane},
	{"inpck", grpIn, unix.INPCK, 0, fxNone, tagBool},
	{"istrip", grpIn, unix.ISTRIP, 0, fxNone, tagBool | tagPass8 | tagLitout},
	{"iuclc", grpIn, unix.IUCLC, 0, fxNone, tagBool | tagInsane | tagLcase},
	{"iutf8", grpIn, unix.IUTF8, 0, fxNone, tagBool | tagSane},
	{"ixany", grpIn, unix.IXANY, 0, fxNone, tagBool | tagInsane | tagDecctlq},
	{"ixoff", grpIn, unix.IXOFF, 0, fxNone, tagBool | tagInsane},
	{"ixon", grpIn, unix.IXON, 0, fxNone, tagBool | tagDef},
	{"parmrk", grpIn, unix.PARMRK, 0, fxNone, tagBool},
	{"tandem", grpIn, unix.IXOFF, 0, fxNone, tagBool | tagDup},

	{"bs0", grpOut, unix.BS0, unix.BSDLY, fxNone, tagSane},
	{"bs1", grpOut, unix.BS1, unix.BSDLY, fxNone, tagInsane},
	{"cr0", grpOut, unix.CR0, unix.CRDLY, fxNone, tagSane},
	{"cr1", grpOut, unix.CR1, unix.CRDLY, fxNone, tagInsane},
	{"cr2", grpOut, unix.CR2, unix.CRDLY, fxNone, tagInsane},
	{"cr3", grpOut, unix.CR3, unix.CRDLY, fxNone, tagInsane},
	{"ff0", grpOut, unix.FF0, unix.FFDLY, fxNone, tagSane},
	{"ff1", grpOut, unix.FF1, unix.FFDLY, fxNone, tagInsane},
	{"nl0", grpOut, unix.NL0, unix.NLDLY, fxNone, tagSane},
	{"nl1", grpOut, unix.NL1, unix.NLDLY, fxNone, tagInsane},
	{"ocrnl", grpOut, unix.OCRNL, 0, fxNone, tagBool | tagInsane},
	{"ofdel", grpOut, unix.OFDEL, 0, fxNone, tagBool | tagInsane},
	{"ofill", grpOut, unix.OFILL, 0, fxNone, tagBool | tagInsane},
	{"olcuc", grpOut, unix.OLCUC, 0, fxNone, tagBool | tagInsane | tagLcase},
	{"onlcr", grpOut, unix.ONLCR, 0, fxNone, tagBool | tagSane | tagNL},
	{"onlret", grpOut, unix.ONLRET, 0, fxNone, tagBool | tagInsane},
	{"onocr", grpOut, unix.ONOCR, 0, fxNone, tagBool | tagInsane},
	{"opost", grpOut, unix.OPOST, 0, fxNone, tagBool | tagSane | tagLitout | tagCooked},
	{"tab0", grpOut, unix.TAB0, unix.TABDLY, fxNone, tagSane},
	{"tab1", grpOut, unix.TAB1, unix.TABDLY, fxNone, tagInsane},
	{"tab2", grpOut, unix.TAB2, unix.TABDLY, fxNone, tagInsane},
	{"tab3", grpOut, unix.TAB3, unix.TABDLY, fxNone, tagInsane},
	{"vt0", grpOut, unix.VT0, unix.VTDLY, fxNone, tagSane},
	{"vt1", grpOut, unix.VT1, unix.VTDLY, fxNone, tagInsane},

	{"crterase", grpLocal, unix.ECHOE, 0, fxNone, tagBool | tagDup},
	{"crtkill", grpLocal, unix.ECHOKE, 0, fxNone, tagBool | tagDup},
	{"ctlecho", grpLocal, unix.ECHOCTL, 0, fxNone, tagBool | tagDup},
	{"echo", grpLocal, unix.ECHO, 0, fxNone, tagBool | tagSane},
	{"echoctl", grpLocal, unix.ECHOCTL, 0, fxNone, tagBool | tagSane | tagCrt | tagDec},
	{"echoe", grpLocal, unix.ECHOE, 0, fxNone, tagBool | tagSane | tagCrt | tagDec},
	{"echok", grpLocal, unix.ECHOK, 0, fxNone, tagBool | tagSane},
	{"echoke", grpLocal, unix.ECHOKE, 0, fxNone, tagBool | tagSane | tagCrt | tagDec},
	{"echonl", grpLocal, unix.ECHONL, 0, fxNone, tagBool | tagInsane},
	{"echoprt", grpLocal, unix.ECHOPRT, 0, fxNone, tagBool | tagInsane},
	{"extproc", grpLocal, unix.EXTPROC, 0, fxNone, tagBool | tagInsane},
	{"flusho", grpLocal, unix.FLUSHO, 0, fxNone, tagBool | tagInsane},
	{"icanon", grpLocal, unix.ICANON, 0, fxNone, tagBool | tagSane | tagCbreak | tagCooked},
	{"iexten", grpLocal, unix.IEXTEN, 0, fxNone, tagBool | tagSane},
	{"isig", grpLocal, unix.ISIG, 0, fxNone, tagBool | tagSane | tagCooked},
	{"noflsh", grpLocal, unix.NOFLSH, 0, fxNone, tagBool | tagInsane},
	{"prterase", grpLocal, unix.ECHOPRT, 0, fxNone, tagBool | tagDup},
	{"tostop", grpLocal, unix.TOSTOP, 0, fxNone, tagBool | tagInsane},
	{"xcase", grpLocal, unix.XCASE, 0, fxNone, tagBool | tagInsane | tagLcase},

	{"cbreak", grpComb, 0, tagCbreak, fxNone, tagBool | tagDup},
	{"cooked", grpComb, tagCooked, 0, fxCooked, tagBool | tagDup},
	{"crt", grpComb, tagCrt, 0, fxNone, tagDup},
	{"dec", grpComb, tagDec, tagDecctlq, fxDecKeys, tagDup},
	{"decctlq", grpComb, 0, tagDecctlq, fxNone, tagBool | tagDup},
	{"ek", grpComb, 0, 0, fxEraseKill, tagDup},
	{"evenp", grpComb, 0, 0, fxEvenParity, tagBool | tagDup},
	{"LCASE", grpComb, tagLcase, 0, fxNone, tagBool | tagDup},
	{"lcase", grpComb, tagLcase, 0, fxNone, tagBool | tagDup},
	{"litout", grpComb, 0, tagLitout, fxPass8, tagBool | tagDup},
	{"nl", grpComb, 0, tagNL, fxNewline, tagBool | tagDup},
	{"oddp", grpComb, 0, 0, fxOddParity, tagBool | tagDup},
	{"parity", grpComb, 0, 0, fxEvenParity, tagBool | tagDup},
	{"pass8", grpComb, 0, tagPass8, fxPass8, tagBool | tagDup},
	{"raw", grpComb, 0, tagCooked, fxRaw, tagBool | tagDup},
	{"sane", grpComb, tagSane, tagInsane, fxSane, tagDup},
	{"tabs", grpComb, 0, 0, fxTabs, tagBool | tagDup},

	{"size", grpSpec, 0, 0, fxShowSize, tagDup},
	{"speed", grpSpec, 0, 0, fxShowSpeed, tagDup},
	{"drain", grpSpec, 0, 0, fxDrain, tagBool | tagDup},
}

var keys = []key{
	{"discard", unix.VDISCARD, saneDiscard},
	{"eof", unix.VEOF, saneEOF},
	{"eol", unix.VEOL, ccDisable},
	{"eol2", unix.VEOL2, ccDisable},
	{"erase", unix.VERASE, saneErase},
	{"intr", unix.VINTR, saneIntr},
	{"kill", unix.VKILL, saneKill},
	{"lnext", unix.VLNEXT, saneLnext},
	{"quit", unix.VQUIT, saneQuit},
	{"rprnt", unix.VREPRINT, saneRprnt},
	{"start", unix.VSTART, saneStart},
	{"stop", unix.VSTOP, saneStop},
	{"susp", unix.VSUSP, saneSusp},
	{"swtch", unix.VSWTC, ccDisable},
	{"werase", unix.VWERASE, saneWerase},
}

var ints = []intValued{
	{"cols", argCols},
	{"columns", argCols},
	{"min", argMin},
	{"rows", argRows},
	{"time", argTime},
	{"ispeed", argIspeed},
	{"ospeed", argOspeed},
}

var speeds = []speedEntry{
	{"0", unix.B0, 0},
	{"50", unix.B50, 50},
	{"75", unix.B75, 75},
	{"110", unix.B110, 110},
	{"134", unix.B134, 134},
	{"150", unix.B150, 150},
	{"200", unix.B200, 200},
	{"300", unix.B300, 300},
	{"600", unix.B600, 600},
	{"1200", unix.B1200, 1200},
	{"1800", unix.B1800, 1800},
	{"2400", unix.B2400, 2400},
	{"4800", unix.B4800, 4800},
	{"9600", unix.B9600, 9600},
	{"19200", unix.B19200, 19200},
	{"38400", unix.B38400, 38400},
	{"57600", unix.B57600, 57600},
	{"115200", unix.B115200, 115200},
	{"230400", unix.B230400, 230400},
	{"460800", unix.B460800, 460800},
	{"500000", unix.B500000, 500000},
	{"576000", unix.B576000, 576000},
	{"921600", unix.B921600, 921600},
	{"1000000", unix.B1000000, 1000000},
	{"1152000", unix.B1152000, 1152000},
	{"1500000", unix.B1500000, 1500000},
	{"2000000", unix.B2000000, 2000000},
	{"2500000", unix.B2500000, 2500000},
	{"3000000", unix.B3000000, 3000000},
	{"3500000", unix.B3500000, 3500000},
	{"4000000", unix.B4000000, 4000000},
	{"134.5", unix.B134, 134},
	{"exta", unix.B19200, 19200},
	{"extb", unix.B38400, 38400},
}

var ldiscs = []ldisc{
	{"tty", nTTY},
	{"slip", nSLIP},
	{"mouse", nMouse},
	{"ppp", nPPP},
	{"strip", nSTRIP},
	{"ax25", nAX25},
	{"x25", nX25},
	{"6pack", n6Pack},
	{"masc", nMASC},
	{"r3964", nR3964},
	{"profibus", nProfibusFDL},
	{"irda", nIRDA},
	{"smsblock", nSMSBlock},
	{"hdlc", nHDLC},
	{"syncppp", nSyncPPP},
	{"hci", nHCI},
}

func lookupMode(name string) *mode {
	for i := range modes {
		if modes[i].name == name {
			return &modes[i]
		}
	}
	return nil
}

func lookupKey(name string) *key {
	for i := range keys {
		if keys[i].name == name {
			return &keys[i]
		}
	}
	return nil
}

func lookupInt(name string) *intValued {
	for i := range ints {
		if ints[i].name == name {
			return &ints[i]
		}
	}
	return nil
}

func lookupSpeed(name string) *speedEntry {
	for i := range speeds {
		if speeds[i].name == name {
			return &speeds[i]
		}
	}
	return nil
}

// speedName maps baud bits back to a textual name, first listed match
// winning so that aliases never shadow the canonical spelling.
func speedName(bits uint32) string {
	for i := range speeds {
		if speeds[i].bits == bits {
			return speeds[i].name
		}
	}
	return "0"
}

func ldiscName(id byte) (string, bool) {
	for i := range ldiscs {
		if ldiscs[i].id == id {
			return ldiscs[i].name, true
		}
	}
	return "", false
}
