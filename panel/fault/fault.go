// Package fault defines the error taxonomy shared by the storage layers.
package fault

import "errors"

var (
	// ErrOutOfRange reports a slot, variable or byte offset outside the configured layout.
	ErrOutOfRange = errors.New("out of range")
	// ErrTransactionTimeout reports a bus transaction that did not complete within its retry budget.
	ErrTransactionTimeout = errors.New("transaction timeout")
	// ErrNullArgument reports a missing buffer or collaborator.
	ErrNullArgument = errors.New("null argument")
)

// Code is a coarse error category, suitable for display and logging.
type Code uint8

const (
	CodeOK Code = iota
	CodeOutOfRange
	CodeTransactionTimeout
	CodeNullArgument
	CodeUnknown
)

func (c Code) String() string {
	switch c {
	case CodeOK:
		return "ok"
	case CodeOutOfRange:
		return "out_of_range"
	case CodeTransactionTimeout:
		return "transaction_timeout"
	case CodeNullArgument:
		return "null_argument"
	default:
		return "unknown"
	}
}

// CodeOf classifies err. A nil error is CodeOK.
func CodeOf(err error) Code {
	switch {
	case err == nil:
		return CodeOK
	case errors.Is(err, ErrOutOfRange):
		return CodeOutOfRange
	case errors.Is(err, ErrTransactionTimeout):
		return CodeTransactionTimeout
	case errors.Is(err, ErrNullArgument):
		return CodeNullArgument
	default:
		return CodeUnknown
	}
}
