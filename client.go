package irc

import (
	"context"
	"fmt"
	"log"
)

// A Client binds a user identity (nick, real name) to a connection and
// fans parsed messages out to a list of handlers.
type Client struct {
	nick     string
	realName string

	// Handlers are called, in order, for every message the connection
	// parses. Append to it before calling ConnectTo; it is not safe to
	// mutate concurrently with a running connection.
	Handlers []Handler

	// ErrorLog receives recovered handler panics.
	// Defaults to log.Default() when nil.
	ErrorLog *log.Logger

	conn       *Connection
	maskLength *int
}

// NewClient constructs a Client for the given nick and real name,
// registering handlers in the order given, preceded by DefaultHandlers.
// It returns a *MissingRequiredError, which errors.Is matches against
// ErrMissingRequired, when nick or realName is empty.
func NewClient(nick, realName string, handlers ...Handler) (*Client, error) {
	var missing []string
	if nick == "" {
		missing = append(missing, "nick")
	}
	if realName == "" {
		missing = append(missing, "real_name")
	}
	if len(missing) > 0 {
		return nil, &MissingRequiredError{Fields: missing}
	}

	c := &Client{
		nick:     nick,
		realName: realName,
		Handlers: append(append([]Handler{}, DefaultHandlers()...), handlers...),
	}
	return c, nil
}

// Nick returns the client's current nickname, which may differ from
// the one passed to NewClient after a nick collision or SetNick call.
func (c *Client) Nick() string { return c.nick }

// MaskLength returns the discovered length of the nick!ident@host mask
// the network prepends to our own messages, and whether it has been
// discovered yet.
func (c *Client) MaskLength() (length int, known bool) {
	if c.maskLength == nil {
		return 0, false
	}
	return *c.maskLength, true
}

func (c *Client) setMaskLength(n int) {
	c.maskLength = &n
}

// ConnOption configures a Connection constructed by ConnectTo.
type ConnOption func(*Connection)

// WithPort overrides the default port (6697).
func WithPort(port int) ConnOption {
	return func(conn *Connection) { conn.port = port }
}

// WithTLS overrides the default of dialing with TLS enabled.
func WithTLS(enabled bool) ConnOption {
	return func(conn *Connection) { conn.tls = enabled }
}

// WithDialFunc replaces the socket factory used to establish the
// connection, for tests or alternate transports.
func WithDialFunc(dial DialFunc) ConnOption {
	return func(conn *Connection) { conn.dial = dial }
}

// WithPassword sends a PASS command before USER/NICK during the
// registration handshake, for servers that require one.
func WithPassword(password string) ConnOption {
	return func(conn *Connection) { conn.password = password }
}

// ConnectTo constructs a Connection bound to c and runs its connect
// loop on the calling goroutine, returning when the connection ends.
// Callers that want a non-blocking handle should invoke ConnectTo
// inside their own go statement.
func (c *Client) ConnectTo(ctx context.Context, host string, opts ...ConnOption) error {
	conn := &Connection{
		client: c,
		host:   host,
		port:   6697,
		tls:    true,
	}
	for _, opt := range opts {
		opt(conn)
	}
	c.conn = conn
	defer func() { c.conn = nil }()

	return conn.Connect(ctx)
}

// Send writes buf to the underlying connection. It is a no-op,
// returning nil, when the client is not currently connected.
func (c *Client) Send(buf []byte) error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Send(buf)
}

// SendBatch writes each buffer in order, stopping at the first error.
func (c *Client) SendBatch(bufs [][]byte) error {
	if c.conn == nil {
		return nil
	}
	return c.conn.SendBatch(bufs)
}

// onConnect is called by Connection once the socket is established. It
// sends the registration handshake: PASS (if configured), then USER,
// then NICK.
func (c *Client) onConnect() {
	if c.conn != nil && c.conn.password != "" {
		if pass, err := Pass(c.conn.password); err == nil {
			c.Send(pass)
		}
	}
	if user, err := User(c.nick, c.realName); err == nil {
		c.Send(user)
	}
	if nick, err := Nick(c.nick); err == nil {
		c.Send(nick)
	}
}

// onMessage invokes every registered handler with (c, m) in
// registration order. A handler that panics is recovered, logged, and
// does not prevent sibling handlers from running.
func (c *Client) onMessage(m *Message) {
	for _, h := range c.Handlers {
		c.callHandler(h, m)
	}
}

func (c *Client) callHandler(h Handler, m *Message) {
	defer func() {
		if r := recover(); r != nil {
			c.log(fmt.Errorf("handler panic: %v", r))
		}
	}()
	h.Handle(c, m)
}

func (c *Client) log(err error) {
	if c.ErrorLog != nil {
		c.ErrorLog.Println(err)
		return
	}
	log.Println(err)
}

// SetNick sends a NICK change and optimistically updates Nick() and
// clears the discovered mask length, since IRC gives no synchronous
// confirmation of a nick change succeeding.
func (c *Client) SetNick(newNick string) error {
	b, err := NewMessage(CmdNick, newNick)
	if err != nil {
		return err
	}
	if err := c.Send(b); err != nil {
		return err
	}
	c.trySetNick(newNick)
	return nil
}

func (c *Client) trySetNick(newNick string) {
	c.nick = newNick
	c.maskLength = nil
}

// Join sends a single JOIN command for all of channels.
func (c *Client) Join(channels ...string) error {
	b, err := NewMessage(CmdJoin, joinCSV(channels))
	if err != nil {
		return err
	}
	return c.Send(b)
}

// Part sends a single PART command for all of channels, with an
// optional message shown to other clients.
func (c *Client) Part(message string, channels ...string) error {
	var b []byte
	var err error
	if message == "" {
		b, err = NewMessage(CmdPart, joinCSV(channels))
	} else {
		b, err = BuildMessage(CmdPart, []string{joinCSV(channels)}, nil, []byte(message))
	}
	if err != nil {
		return err
	}
	return c.Send(b)
}

// Privmsg sends message to target, splitting it into as many PRIVMSG
// lines as needed to respect the server's 512-byte line limit, given
// the currently known mask length. When thirdPerson is true, each
// chunk is wrapped as a CTCP ACTION.
func (c *Client) Privmsg(target, message string, thirdPerson bool) error {
	maskLength := 100
	if n, known := c.MaskLength(); known {
		maskLength = n
	}
	bufs, err := MakePrivmsgs(target, message, thirdPerson, maskLength)
	if err != nil {
		return err
	}
	return c.SendBatch(bufs)
}

func joinCSV(items []string) string {
	out := ""
	for i, s := range items {
		if i > 0 {
			out += ","
		}
		out += s
	}
	return out
}
