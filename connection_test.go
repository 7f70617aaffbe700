package irc

import (
	"io"
	"testing"
)

// newPipeConn returns an io.ReadWriteCloser backed by an io.Pipe whose
// writes are drained in the background, so Write never blocks.
func newPipeConn() io.ReadWriteCloser {
	r, w := io.Pipe()
	go io.Copy(io.Discard, r)
	return struct {
		io.Reader
		io.Writer
		io.Closer
	}{r, w, w}
}

// These tests live in package irc (not irc_test) because they exercise
// Connection directly, without going through a dialed socket.

func TestConnectionSend_validation(t *testing.T) {
	conn := &Connection{}

	cases := []struct {
		name string
		buf  []byte
		want error
	}{
		{"stray crlf", []byte("X\r\nY\r\n"), ErrStrayLineEnding},
		{"no line ending", []byte("X"), ErrNoLineEnding},
		{"too long", append(repeat('A', 511), '\r', '\n'), ErrMessageTooLong},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := conn.Send(c.buf); err != c.want {
				t.Fatalf("got %v, want %v", err, c.want)
			}
		})
	}
}

func TestConnectionSend_accepted(t *testing.T) {
	srv := newPipeConn()
	defer srv.Close()

	conn := &Connection{rwc: srv, connected: true}
	buf := append(repeat('A', 510), '\r', '\n')
	if err := conn.Send(buf); err != nil {
		t.Fatalf("Send: %v", err)
	}
}

func repeat(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}
