// Package irctest provides a mock IRC server for exercising a
// Connection/Client pair without a real socket.
package irctest

import (
	"bufio"
	"io"
	"strings"
)

// NewServer creates a mock IRC server that implements
// io.ReadWriteCloser, suitable for irc.WithDialFunc. Don't forget to
// Close it.
func NewServer() *Server {
	s := &Server{}
	s.sendReader, s.sendWriter = io.Pipe()
	s.recvReader, s.recvWriter = io.Pipe()
	s.lines = make(chan []byte, 16)

	go s.readLoop()
	return s
}

// Server is a scriptable mock of the other end of an IRC connection.
// WriteString sends lines as if from the network; Lines() receives the
// lines the client under test writes back.
type Server struct {
	sendReader *io.PipeReader
	sendWriter *io.PipeWriter

	recvReader *io.PipeReader
	recvWriter *io.PipeWriter

	lines chan []byte
}

// Read is how the client under test reads lines sent by WriteString.
func (s *Server) Read(p []byte) (int, error) {
	return s.sendReader.Read(p)
}

// Write is how the client under test sends lines to this server.
func (s *Server) Write(p []byte) (int, error) {
	return s.recvWriter.Write(p)
}

// Close closes both pipes. It is safe to call more than once.
func (s *Server) Close() error {
	_ = s.sendWriter.Close()
	_ = s.recvWriter.Close()
	return nil
}

// WriteString sends str to the client under test, appending a
// trailing CRLF if it doesn't already have one.
func (s *Server) WriteString(str string) {
	if !strings.HasSuffix(str, "\r\n") {
		str += "\r\n"
	}
	_, _ = s.sendWriter.Write([]byte(str))
}

// Lines returns the channel of lines the client under test has
// written, with the trailing CRLF stripped. The channel closes when
// the client closes its side of the connection.
func (s *Server) Lines() <-chan []byte {
	return s.lines
}

func (s *Server) readLoop() {
	defer close(s.lines)
	scanner := bufio.NewScanner(s.recvReader)
	for scanner.Scan() {
		line := append([]byte(nil), scanner.Bytes()...)
		s.lines <- line
	}
}
