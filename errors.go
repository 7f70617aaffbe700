package irc

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the message codec and the connection's
// send path. Callers should compare against these with errors.Is.
var (
	// ErrMessageTooLong is returned when an encoded line would exceed
	// the 512-byte IRC line limit (including the trailing CRLF).
	ErrMessageTooLong = errors.New("irc: message exceeds 512 bytes")

	// ErrNoLineEnding is returned by Send when the buffer passed to it
	// does not end in CRLF.
	ErrNoLineEnding = errors.New("irc: message does not end in CRLF")

	// ErrStrayLineEnding is returned by BuildMessage or Send when a
	// component contains a CR or LF, or when a buffer contains
	// more than one CRLF sequence.
	ErrStrayLineEnding = errors.New("irc: message contains a stray line ending")
)

// MissingRequiredError reports that one or more mandatory fields were
// left unset when constructing a Client with NewClient.
type MissingRequiredError struct {
	Fields []string
}

func (e *MissingRequiredError) Error() string {
	return fmt.Sprintf("irc: required field(s) missing: %v", e.Fields)
}

// ErrMissingRequired is a sentinel usable with errors.Is to detect a
// *MissingRequiredError without caring about its Fields.
var ErrMissingRequired = &MissingRequiredError{}

// Is allows errors.Is(err, ErrMissingRequired) to match any
// *MissingRequiredError, regardless of which fields were missing.
func (e *MissingRequiredError) Is(target error) bool {
	_, ok := target.(*MissingRequiredError)
	return ok
}
