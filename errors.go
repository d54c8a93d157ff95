// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package tinyjson

import (
	"errors"
	"fmt"
)

// Errors reported by Parse and by the accessors of a Value. Use errors.Is
// to match them. Errors from parsing arrive wrapped in a *SyntaxError that
// records where in the input the problem was found.
var (
	// ErrEncoding: the input is not valid UTF-8, or an escape produced a
	// code point that cannot be encoded as UTF-8.
	ErrEncoding = errors.New("invalid text encoding")

	// ErrUnexpectedChar: a structural mismatch at a dispatch or expect
	// point, including exhausted input where a code point was required.
	ErrUnexpectedChar = errors.New("unexpected character")

	// ErrTrailingData: non-space content after the top-level value.
	ErrTrailingData = errors.New("trailing data after value")

	// ErrInvalidEscape: a malformed backslash escape.
	ErrInvalidEscape = errors.New("invalid escape sequence")

	// ErrInvalidLiteral: malformed boolean or null text.
	ErrInvalidLiteral = errors.New("invalid literal")

	// ErrNumberFormat: numeric text that does not fully convert.
	ErrNumberFormat = errors.New("invalid number format")

	// ErrTypeMismatch: an accessor was invoked on the wrong type of value.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrKeyNotFound: an object lookup named a key that is not present.
	ErrKeyNotFound = errors.New("key not found")

	// ErrIndexOutOfRange: an array lookup was out of bounds.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// A SyntaxError records an error detected while parsing, together with the
// byte offset in the input where it was detected. Its Unwrap method exposes
// the underlying sentinel error for use with errors.Is.
type SyntaxError struct {
	Offset int // byte offset in the input, 0-based
	err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s (offset %d)", e.err.Error(), e.Offset)
}

func (e *SyntaxError) Unwrap() error { return e.err }
