//go:build linux

package stty

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// encodeAttr renders the raw kernel representation of the state as one
// fixed-width lowercase hex token, suitable for exact save/restore.
func encodeAttr(a *Attr) string { return hex.EncodeToString(a.bytes()) }

// decodeAttr overwrites a byte for byte from a token produced by
// encodeAttr. The token must be exactly twice the state's byte width and
// all hex digits.
func decodeAttr(s string, a *Attr) error {
	if len(s) != 2*attrLen {
		return errors.Wrap(errInvalidOperand, "="+s)
	}
	buf, err := hex.DecodeString(s)
	if err != nil {
		return errors.Wrap(errInvalidOperand, "="+s)
	}
	copy(a.bytes(), buf)
	return nil
}
