package irc

import (
	"bytes"

	"github.com/meshy/framewirc/ircenc"
)

// maxLineLength is the largest legal size of an IRC command, including
// the trailing CRLF.
const maxLineLength = 512

var crlf = []byte("\r\n")

// BuildMessage constructs a line to be sent to an IRC network.
//
// The resulting line is:
//
//	[":" prefix SPACE] command (SPACE param)* [SPACE ":" suffix] CRLF
//
// BuildMessage returns ErrStrayLineEnding if any component contains a
// CR or LF, and ErrMessageTooLong if the assembled line would
// exceed 512 bytes.
func BuildMessage(command string, args []string, prefix, suffix []byte) ([]byte, error) {
	cmd := []byte(command)

	params := make([][]byte, len(args))
	for i, a := range args {
		params[i] = []byte(a)
	}

	components := append([][]byte{cmd, prefix, suffix}, params...)
	for _, component := range components {
		if bytes.ContainsAny(component, "\r\n") {
			return nil, ErrStrayLineEnding
		}
	}

	buf := make([]byte, 0, maxLineLength)
	if len(prefix) > 0 {
		buf = append(buf, ':')
		buf = append(buf, prefix...)
		buf = append(buf, ' ')
	}
	buf = append(buf, cmd...)
	if len(params) > 0 {
		buf = append(buf, ' ')
		buf = append(buf, bytes.Join(params, []byte(" "))...)
	}
	if len(suffix) > 0 {
		buf = append(buf, ' ', ':')
		buf = append(buf, suffix...)
	}
	buf = append(buf, crlf...)

	if len(buf) > maxLineLength {
		return nil, ErrMessageTooLong
	}

	return buf, nil
}

// NewMessage is a convenience wrapper around BuildMessage for commands
// whose arguments are already strings and which need no explicit
// prefix or suffix, for callers who would rather build the final
// trailing argument themselves than pass it separately.
func NewMessage(command string, args ...string) ([]byte, error) {
	return BuildMessage(command, args, nil, nil)
}

const (
	privmsgOverheadBytes = 7 // ':' SPACE 'PRIVMSG' SPACE target SPACE ':' CRLF, minus len("PRIVMSG") and len(target) counted separately below
	actionWrapperBytes   = 9 // "\x01ACTION " + "\x01"

	actionPrefix = "\x01ACTION "
	actionSuffix = "\x01"
)

// MakePrivmsgs splits message into one or more PRIVMSG lines addressed
// to target, budgeting each line so that the entire frame the server
// relays to other clients -- including the nick!ident@host mask the
// server prepends -- stays within 512 bytes. maskLength should be the
// client's currently known mask length, or 100 when unknown (a safe
// upper bound in practice). When thirdPerson is true, each chunk is
// wrapped as a CTCP ACTION.
func MakePrivmsgs(target, message string, thirdPerson bool, maskLength int) ([][]byte, error) {
	overhead := len(CmdPrivmsg) + len(target) + privmsgOverheadBytes + maskLength
	if thirdPerson {
		overhead += actionWrapperBytes
	}

	budget := maxLineLength - overhead
	if budget < 1 {
		budget = 1
	}

	chunks := ircenc.ChunkMessage(message, budget)

	lines := make([][]byte, 0, len(chunks))
	for _, chunk := range chunks {
		body := chunk
		if thirdPerson {
			body = append([]byte(actionPrefix), append(chunk, []byte(actionSuffix)...)...)
		}
		line, err := BuildMessage(CmdPrivmsg, []string{target}, nil, body)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}
