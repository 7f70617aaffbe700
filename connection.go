package irc

import (
	"bufio"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
)

// DialFunc dials an IRC server and returns a stream of CRLF-delimited
// lines. The returned connection can be a real socket, a WebSocket, or
// a test double such as irctest.Server; the only requirement is that
// it behaves like a byte stream of IRC lines.
type DialFunc func(ctx context.Context, host string, port int, useTLS bool) (io.ReadWriteCloser, error)

func defaultDial(ctx context.Context, host string, port int, useTLS bool) (io.ReadWriteCloser, error) {
	addr := fmt.Sprintf("%s:%d", host, port)
	if useTLS {
		var dialer tls.Dialer
		return dialer.DialContext(ctx, "tcp", addr)
	}
	var dialer net.Dialer
	return dialer.DialContext(ctx, "tcp", addr)
}

// Connection manages the socket lifecycle for one IRC session: reading
// lines, parsing them, forwarding parsed messages to the owning
// Client, and validating/writing outbound lines.
//
// A Connection is created by and belongs to exactly one Client; it
// holds a non-owning back-reference to that Client purely to deliver
// events, and never outlives the call to Connect that created it.
type Connection struct {
	client *Client

	host     string
	port     int
	tls      bool
	password string
	dial     DialFunc

	rwc       io.ReadWriteCloser
	connected bool
}

// Connect opens the connection, notifies the client via onConnect, and
// then reads lines until the peer closes the stream, ctx is cancelled,
// or a read error occurs. It returns the error that ended the loop, or
// nil when the peer closed cleanly (an empty read, per §4.6).
func (conn *Connection) Connect(ctx context.Context) error {
	dial := conn.dial
	if dial == nil {
		dial = defaultDial
	}

	rwc, err := dial(ctx, conn.host, conn.port, conn.tls)
	if err != nil {
		return err
	}
	conn.rwc = rwc
	conn.connected = true

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			conn.rwc.Close()
		case <-done:
		}
	}()
	defer close(done)
	defer conn.Disconnect()

	conn.client.onConnect()

	scanner := bufio.NewScanner(conn.rwc)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength*2)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			return nil
		}
		conn.handle(line)
	}

	if err := scanner.Err(); err != nil {
		return err
	}
	return nil
}

// handle parses raw and delivers it to the client's message dispatch.
func (conn *Connection) handle(raw []byte) {
	m := ParseMessage(raw)
	conn.client.onMessage(m)
}

// Disconnect closes the underlying stream. It is idempotent.
func (conn *Connection) Disconnect() error {
	if !conn.connected {
		return nil
	}
	conn.connected = false
	if conn.rwc == nil {
		return nil
	}
	return conn.rwc.Close()
}

// Send validates buf and writes it to the connection. Validation runs
// in the order MessageTooLong, NoLineEnding, then StrayLineEnding. A
// failed write disconnects the connection.
func (conn *Connection) Send(buf []byte) error {
	if len(buf) > maxLineLength {
		return ErrMessageTooLong
	}
	if len(buf) < 2 || buf[len(buf)-2] != '\r' || buf[len(buf)-1] != '\n' {
		return ErrNoLineEnding
	}
	body := buf[:len(buf)-2]
	for _, b := range body {
		if b == '\r' || b == '\n' {
			return ErrStrayLineEnding
		}
	}

	if conn.rwc == nil {
		return io.ErrClosedPipe
	}
	_, err := conn.rwc.Write(buf)
	if err != nil {
		conn.Disconnect()
	}
	return err
}

// SendBatch sends each buffer in buf in order, stopping and returning
// the first error encountered.
func (conn *Connection) SendBatch(bufs [][]byte) error {
	for _, b := range bufs {
		if err := conn.Send(b); err != nil {
			return err
		}
	}
	return nil
}
