/*
Package irc provides an asynchronous IRC (RFC 1459 / RFC 2812) client
framework: a message codec, a connection state machine, and a
composable dispatch layer.

API

These are the main types used while using this package:

	// A Handler responds to a single parsed Message.
	type Handler interface {
		Handle(c *Client, m *Message)
	}

	// Message represents one inbound IRC line. Outbound lines are
	// plain []byte values built by BuildMessage.
	type Message struct {
		Prefix  string
		Command Command
		Params  Params
		Suffix  []byte
		Raw     []byte
	}

	// A Client binds a nick and real name to a connection and fans
	// parsed messages out to its Handlers.
	type Client struct {
		Handlers []Handler
		// ...
	}

	// ConnectTo dials host and runs the connection until it ends,
	// calling the client's Handlers for every message parsed from it.
	func (c *Client) ConnectTo(ctx context.Context, host string, opts ...ConnOption) error

Encoding and decoding

ParseMessage and BuildMessage translate between a raw IRC line and a
*Message. Most callers never call them directly: Client and Connection
call them on the caller's behalf as part of the connect loop and the
command constructors (Msg, Join, Part, ...).

Dispatch

A Client installs DefaultHandlers (PING/PONG, nick-in-use recovery,
mask-length discovery) automatically; additional handlers passed to
NewClient run after those, in registration order. Allow and Deny wrap
a Handler so it only sees (or never sees) particular commands.

Request lifecycle

  - NewClient validates the required nick and real name fields and
    registers DefaultHandlers plus any handlers passed in.
  - ConnectTo constructs a Connection bound to the client and dials
    host, wrapping the socket in TLS unless WithTLS(false) is given.
  - Once connected, the client sends USER and NICK to register.
  - The connection reads lines until the peer closes the stream, ctx is
    cancelled, or a read error occurs, parsing each line into a
    *Message and calling client.Handlers in order for each one.
*/
package irc
