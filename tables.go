/*
Package stty queries and mutates the attribute state of the terminal
attached to standard input: flag groups, control characters, speeds,
window geometry and line discipline. Operands follow stty(1) syntax and
are applied left to right against a working copy of the state, which is
committed to the driver and read back for verification only when it
differs from the startup snapshot.
*/
package stty

// group identifies which word of the terminal state an operand addresses.
type group int

const (
	grpCtrl group = iota
	grpIn
	grpOut
	grpLocal
	grpComb // expands into other catalog entries via tag membership
	grpSpec // no bits; side effect only
)

// effect selects the side-effect behavior of operands whose semantics are
// not expressible as flag bits alone.
type effect int

const (
	fxNone effect = iota
	fxSane
	fxRaw
	fxCooked
	fxEvenParity
	fxOddParity
	fxPass8
	fxNewline
	fxDecKeys
	fxEraseKill
	fxTabs
	fxDrain
	fxShowSize
	fxShowSpeed
)

// Attribute tags. tagBool marks an operand negatable, tagDup suppresses an
// alias from the non-exhaustive display, tagDef marks the baseline polarity
// for operands outside the sane/insane partition. The rest are combination
// membership markers: a combination entry's set/clear masks are drawn from
// this space, not from any flag group.
const (
	tagBool = 1 << iota
	tagDup
	tagSane
	tagInsane
	tagCbreak
	tagDecctlq
	tagLcase
	tagPass8
	tagLitout
	tagCrt
	tagDec
	tagNL
	tagCooked
	tagDef
)

type mode struct {
	name  string
	group group
	set   uint32 // flag-group bits; tag mask for combination entries
	clear uint32
	fx    effect
	tags  int
}

type key struct {
	name  string
	index int // position in the control-character array
	sane  byte
}

// intArg selects the behavior of an integer-valued operand.
type intArg int

const (
	argCols intArg = iota
	argRows
	argMin
	argTime
	argIspeed
	argOspeed
)

type intValued struct {
	name string
	arg  intArg
}

type speedEntry struct {
	name string
	bits uint32 // Bxxxx baud bits
	rate uint32 // numeric rate mirrored into the kernel speed fields
}

type ldisc struct {
	name string
	id   byte
}
