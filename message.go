package irc

import "strings"

// Message represents a single message received from an IRC network.
//
// A Message is an immutable value derived from one inbound line by
// ParseMessage. Prefix, Command, and Params are decoded text; Suffix is
// kept as raw bytes because trailing payloads (PRIVMSG bodies in
// particular) may carry arbitrary network encodings that callers decide
// how to decode.
type Message struct {

	// Prefix is the text between a leading ':' and the following space,
	// or "" when the line had no prefix. Per RFC 1459, a message with no
	// prefix is assumed to have originated from the connection it
	// arrived on.
	Prefix string

	// Command is the IRC verb (e.g. "PRIVMSG") or a three-digit numeric
	// reply code (e.g. "433"), exactly as it appeared on the wire.
	Command Command

	// Params holds the space-delimited tokens between the command and
	// the trailing parameter, if any. It never contains empty tokens.
	Params Params

	// Suffix is the raw, undecoded trailing parameter (everything after
	// the first " :" in the line), or nil if the line had none. An
	// explicit, empty trailing parameter (e.g. "PRIVMSG #c :") also
	// yields a nil Suffix; use HasSuffix to distinguish that case from
	// no trailing parameter at all.
	Suffix []byte

	// Raw is the original line this Message was parsed from, retained
	// for debugging.
	Raw []byte

	hasSuffix bool
}

// Command is an IRC command such as PRIVMSG, NOTICE, 001, etc.
//
// A command may also be known as the "verb", "event type", or "numeric".
type Command string

// String implements fmt.Stringer.
func (c Command) String() string {
	return string(c)
}

// normalize upper-cases the command; used by the Allow and Deny filters.
func (c *Command) normalize() {
	*c = Command(strings.ToUpper(c.String()))
}

// Is does a case-insensitive compare between two commands, which is
// useful since numerics and verbs from different servers vary in case.
func (c Command) Is(oc Command) bool {
	return strings.EqualFold(string(c), string(oc))
}

// Params contains the ordered, non-suffix parameters of a message.
//
// Prefer Get for reading params rather than indexing the slice
// directly. Only the last parameter of an outgoing message may contain
// SPACE (ascii 32); see BuildMessage's suffix argument for that case.
type Params []string

// Get returns the nth parameter (starting at 1), or "" if it does not exist.
func (p Params) Get(n int) string {
	if n > len(p) || n < 1 {
		return ""
	}
	return p[n-1]
}

// HasSuffix reports whether the message included a trailing parameter,
// even an empty one (e.g. "PRIVMSG #c :").
func (m *Message) HasSuffix() bool {
	return m.hasSuffix
}
