package scan

import (
	"errors"
	"fmt"
)

// Kind classifies a parse failure.
type Kind int

// Kinds of parse errors.
const (
	UnexpectedCharacter Kind = iota
	UnexpectedEndOfInput
	UnrecognizedUnit
	MismatchedClosingTag
)

func (k Kind) String() string {
	switch k {
	case UnexpectedCharacter:
		return "unexpected character"
	case UnexpectedEndOfInput:
		return "unexpected end of input"
	case UnrecognizedUnit:
		return "unrecognized unit"
	case MismatchedClosingTag:
		return "mismatched closing tag"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Sentinel errors, one per Kind. *Error unwraps to one of these, so clients
// may test with errors.Is(err, scan.ErrUnrecognizedUnit).
var (
	ErrUnexpectedCharacter  = errors.New(UnexpectedCharacter.String())
	ErrUnexpectedEndOfInput = errors.New(UnexpectedEndOfInput.String())
	ErrUnrecognizedUnit     = errors.New(UnrecognizedUnit.String())
	ErrMismatchedClosingTag = errors.New(MismatchedClosingTag.String())
)

// Error is the single error type of the parsers. Every parse error is fatal
// for the complete parse.
type Error struct {
	Kind     Kind   // classification
	Pos      int    // byte offset into the input
	Expected string // what the parser was looking for
	Found    string // what it found instead; empty at end of input
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("malformed input at position %d, expected %s", e.Pos, e.Expected)
	if e.Found != "" {
		msg += fmt.Sprintf(", found %s", e.Found)
	}
	return msg + " (" + e.Kind.String() + ")"
}

// Unwrap returns the sentinel error for e.Kind.
func (e *Error) Unwrap() error {
	switch e.Kind {
	case UnexpectedCharacter:
		return ErrUnexpectedCharacter
	case UnexpectedEndOfInput:
		return ErrUnexpectedEndOfInput
	case UnrecognizedUnit:
		return ErrUnrecognizedUnit
	case MismatchedClosingTag:
		return ErrMismatchedClosingTag
	}
	return nil
}

// KindOf extracts the Kind from an error chain. ok is false if err does not
// wrap an *Error.
func KindOf(err error) (kind Kind, ok bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
