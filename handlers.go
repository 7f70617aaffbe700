package irc

import "strings"

// PingHandler replies to a server PING with the matching PONG. It is
// installed by default by NewClient.
var PingHandler Handler = HandlerFunc(func(c *Client, m *Message) {
	if !m.Command.Is(CmdPing) {
		return
	}
	reply := m.Suffix
	if !m.HasSuffix() {
		reply = []byte(m.Params.Get(1))
	}
	if b, err := BuildMessage(CmdPong, nil, nil, reply); err == nil {
		c.Send(b)
	}
})

// NickInUseHandler reacts to ERR_NICKNAMEINUSE (433) by appending a
// caret to the current nickname and trying again, the same recovery
// the network itself invites by rejecting a taken nick one character
// at a time.
var NickInUseHandler Handler = HandlerFunc(func(c *Client, m *Message) {
	if !m.Command.Is(RplErrNicknameInUse) {
		return
	}
	c.SetNick(c.Nick() + "^")
})

// MaskLengthHandler learns the length of the nick!ident@host mask the
// network prepends to our own messages, so outbound PRIVMSG chunking
// can budget for it. It stops looking once a length has been learned,
// until the next nick change clears it.
var MaskLengthHandler Handler = HandlerFunc(func(c *Client, m *Message) {
	if c.maskLength != nil {
		return
	}

	switch {
	case m.Command.Is(CmdPrivmsg), m.Command.Is(CmdNotice):
		if nick, _ := splitMaskNick(m.Prefix); nick == c.Nick() {
			c.setMaskLength(len(m.Prefix))
		}
	case m.Command.Is(RplWhoIsUser):
		if m.Params.Get(1) == c.Nick() && len(m.Params) > 0 {
			c.setMaskLength(len(strings.Join(m.Params[:len(m.Params)-1], " ")))
		}
	}
})

// splitMaskNick returns the nick portion of a "nick!ident@host" mask.
// It is a small local copy of ircmask.SplitNick's nick extraction so
// that this package doesn't have to import ircmask, which itself
// imports this package for *Message.
func splitMaskNick(raw string) (nick string, hasIdent bool) {
	if i := strings.IndexByte(raw, '!'); i >= 0 {
		return raw[:i], true
	}
	nick, _, _ = strings.Cut(raw, "@")
	return strings.TrimPrefix(nick, "~"), false
}

// DefaultHandlers returns the handlers installed automatically by
// NewClient, in the order they are registered.
func DefaultHandlers() []Handler {
	return []Handler{PingHandler, NickInUseHandler, MaskLengthHandler}
}
