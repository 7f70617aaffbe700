package irc

import (
	"bytes"

	"github.com/meshy/framewirc/ircenc"
)

// ParseMessage parses a single raw IRC line into a Message.
//
// raw may or may not include a trailing CRLF; either way it is trimmed
// before parsing. ParseMessage never fails: a malformed line simply
// yields whatever prefix, command, and params can be salvaged from it.
// Command and Params are decoded with ircenc.ToUnicode; Suffix is left
// as raw bytes for the caller to decode however it sees fit.
func ParseMessage(raw []byte) *Message {
	m := &Message{Raw: append([]byte(nil), raw...)}

	line := bytes.TrimRight(raw, " \t\r\n")

	var prefix []byte
	if len(line) > 0 && line[0] == ':' {
		rest := line[1:]
		if i := bytes.IndexByte(rest, ' '); i >= 0 {
			prefix = rest[:i]
			line = rest[i+1:]
		} else {
			prefix = rest
			line = nil
		}
	}

	var suffix []byte
	hasSuffix := false
	if i := bytes.Index(line, []byte(" :")); i >= 0 {
		suffix = line[i+2:]
		line = line[:i]
		hasSuffix = true
	}

	fields := bytes.Fields(line)
	var command []byte
	var params []string
	if len(fields) > 0 {
		command = fields[0]
		for _, f := range fields[1:] {
			params = append(params, ircenc.ToUnicode(f))
		}
	}

	m.Prefix = ircenc.ToUnicode(prefix)
	m.Command = Command(ircenc.ToUnicode(command))
	m.Params = params
	m.hasSuffix = hasSuffix
	if hasSuffix && len(suffix) > 0 {
		m.Suffix = append([]byte(nil), suffix...)
	}

	return m
}
