package contact

import (
	"errors"
	"fmt"
)

// Kind classifies a contact error so callers can pick a reply without
// inspecting which operation failed.
type Kind string

const (
	KindInvalidFormat    Kind = "invalid_format"
	KindNotFound         Kind = "not_found"
	KindNoPhoneToReplace Kind = "no_phone_to_replace"
	KindMissingArguments Kind = "missing_arguments"
)

// Sentinel errors for caller-checkable conditions.
var (
	ErrInvalidFormat    = errors.New("contact: invalid format")
	ErrNotFound         = errors.New("contact: not found")
	ErrNoPhoneToReplace = errors.New("contact: no phone to replace")
	ErrMissingArguments = errors.New("contact: missing arguments")
)

// Error carries the kind of failure, the operation that raised it, and a
// human-readable message suitable for showing to the user.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

// Is matches e against the sentinel for its kind.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	return sentinelFor(e.Kind) == target
}

// KindOf reports the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind, true
	}
	return "", false
}

// Message returns the user-facing message of the first *Error in err's chain,
// or err.Error() for anything else.
func Message(err error) string {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Msg
	}
	return err.Error()
}

// NewError builds an *Error of the given kind.
func NewError(kind Kind, op, msg string) error {
	return newError(kind, op, msg)
}

func newError(kind Kind, op, msg string) *Error {
	return &Error{Kind: kind, Op: op, Msg: msg}
}

func sentinelFor(k Kind) error {
	switch k {
	case KindInvalidFormat:
		return ErrInvalidFormat
	case KindNotFound:
		return ErrNotFound
	case KindNoPhoneToReplace:
		return ErrNoPhoneToReplace
	case KindMissingArguments:
		return ErrMissingArguments
	default:
		return nil
	}
}

// MissingArguments builds the error the command layer returns when a line
// has too few tokens. msg is the usage hint shown to the user.
func MissingArguments(op, msg string) error {
	return newError(KindMissingArguments, op, msg)
}
