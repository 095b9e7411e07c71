package stty

import "github.com/pkg/errors"

// Error kinds. Every failure is terminal: the first one encountered aborts
// the run with a single diagnostic line and a non-zero exit.
var (
	errInvalidOperand  = errors.New("invalid operand")
	errMissingArgument = errors.New("missing argument for operand")
	errDeviceQuery     = errors.New("device query failed")
	errDeviceCommit    = errors.New("device commit failed")
	errCommitVerify    = errors.New("unable to apply all operands")
)

// kindError tags an error with one of the kinds above without flattening
// the underlying cause into its message.
type kindError struct {
	kind error
	err  error
}

func (e *kindError) Error() string        { return e.err.Error() }
func (e *kindError) Unwrap() error        { return e.err }
func (e *kindError) Is(target error) bool { return target == e.kind }

func markKind(kind, err error) error {
	if err == nil {
		return nil
	}
	return &kindError{kind: kind, err: err}
}
