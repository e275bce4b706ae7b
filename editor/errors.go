package editor

import "github.com/pkg/errors"

// Precondition failures are never fatal. Callers get one of these back and the
// model is left exactly as it was.
var (
	ErrInvalidState    = errors.New("invalid state")
	ErrIndexOutOfRange = errors.New("vertex index out of range")
	ErrIOFailure       = errors.New("io failure")
)

func invalidStatef(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidState, format, args...)
}

func outOfRange(index, count int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "index %d, count %d", index, count)
}

// ioFailure keeps the underlying error reachable through errors.Is as well as
// marking it as an export failure.
type ioFailure struct {
	op  string
	err error
}

func (e *ioFailure) Error() string {
	return e.op + ": " + e.err.Error()
}

func (e *ioFailure) Unwrap() error { return e.err }

func (e *ioFailure) Is(target error) bool {
	return target == ErrIOFailure
}

func wrapIO(err error, op string) error {
	if err == nil {
		return nil
	}
	return errors.WithStack(&ioFailure{op: op, err: err})
}
