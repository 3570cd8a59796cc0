package yopt

import "errors"

// Errors returned by Options accessors. They are wrapped with the offending
// key or index and can be tested with errors.Is.
var (
	// ErrMissingOption indicates that a required option was not provided.
	ErrMissingOption = errors.New("option not provided")

	// ErrIndexOutOfRange indicates access to a positional argument beyond
	// the number of arguments.
	ErrIndexOutOfRange = errors.New("argument index out of range")

	// ErrBoolLiteral indicates an option value which is neither a true nor a
	// false literal.
	ErrBoolLiteral = errors.New("boolean option argument not recognized")

	// ErrConversion indicates wide text which cannot be converted to UTF-8,
	// or the reverse.
	ErrConversion = errors.New("text conversion failed")

	// ErrUnsupportedTarget indicates a Scan target of a type Scan cannot set.
	ErrUnsupportedTarget = errors.New("unsupported target")
)
