// Package ircmask holds small parsing utilities the dispatch layer
// depends on: splitting a user mask, recognising channel names, and
// decomposing a PRIVMSG into its addressing components.
package ircmask

import (
	"strings"

	"github.com/meshy/framewirc"
)

// NickParts is the result of splitting a user mask into its components.
type NickParts struct {
	Nick  string
	Ident string
	Host  string

	// HasIdent is false when raw had no '!ident' component, e.g. a bare
	// "~nick@host" mask where the server never validated an ident.
	HasIdent bool
}

// SplitNick splits a user mask into its constituent parts.
//
// Masks with an ident look like "nick!ident@host". Masks without one
// use a leading tilde instead: "~nick@host". A leading tilde indicates
// the ident was not validated against an identd server and is
// stripped from Nick.
func SplitNick(raw string) NickParts {
	if i := strings.IndexByte(raw, '!'); i >= 0 {
		rest := raw[i+1:]
		ident, host, _ := strings.Cut(rest, "@")
		return NickParts{Nick: raw[:i], Ident: ident, Host: host, HasIdent: true}
	}

	nick, host, _ := strings.Cut(raw, "@")
	nick = strings.TrimPrefix(nick, "~")
	return NickParts{Nick: nick, Host: host}
}

// IsChannel reports whether name looks like an IRC channel name: at
// most 50 bytes, starting with one of '&', '#', '+', '!', and
// containing no space, comma, or ASCII BEL (0x07).
func IsChannel(name string) bool {
	if len(name) == 0 || len(name) > 50 {
		return false
	}
	switch name[0] {
	case '&', '#', '+', '!':
	default:
		return false
	}
	return !strings.ContainsAny(name, " ,\x07")
}

// PrivmsgInfo is the decomposed form of a parsed PRIVMSG message.
type PrivmsgInfo struct {
	Target      string
	RawSender   string
	SenderNick  string
	RawBody     []byte
	Channel     string
	ThirdPerson bool
}

const (
	ctcpActionStart = "\x01ACTION "
	ctcpActionEnd   = "\x01"
)

// ParsePrivmsg extracts the addressing and body information from a
// parsed PRIVMSG message. Channel is set to Target when Target looks
// like a channel name (per IsChannel); otherwise it is the sender's
// nick, i.e. the message was a direct query. A body wrapped in CTCP
// ACTION markers ("\x01ACTION ... \x01") has those markers stripped and
// ThirdPerson set.
func ParsePrivmsg(m *irc.Message) PrivmsgInfo {
	target := m.Params.Get(1)
	senderNick := SplitNick(m.Prefix).Nick

	info := PrivmsgInfo{
		Target:     target,
		RawSender:  m.Prefix,
		SenderNick: senderNick,
		RawBody:    m.Suffix,
	}

	if IsChannel(target) {
		info.Channel = target
	} else {
		info.Channel = senderNick
	}

	body := m.Suffix
	if strings.HasPrefix(string(body), ctcpActionStart) && strings.HasSuffix(string(body), ctcpActionEnd) {
		info.ThirdPerson = true
		info.RawBody = body[len(ctcpActionStart) : len(body)-len(ctcpActionEnd)]
	}

	return info
}
