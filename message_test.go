package irc_test

import (
	"bytes"
	"testing"

	"github.com/meshy/framewirc"
)

func TestParseMessage_pingpong(t *testing.T) {
	m := irc.ParseMessage([]byte("PING :hostname.example.com\r\n"))
	if !m.Command.Is(irc.CmdPing) {
		t.Fatalf("command = %q, want PING", m.Command)
	}
	if got, want := string(m.Suffix), "hostname.example.com"; got != want {
		t.Fatalf("suffix = %q, want %q", got, want)
	}
}

func TestParseMessage_prefixAndParams(t *testing.T) {
	m := irc.ParseMessage([]byte(":a!b@c PRIVMSG #chan :hello world"))
	if m.Prefix != "a!b@c" {
		t.Fatalf("prefix = %q", m.Prefix)
	}
	if !m.Command.Is(irc.CmdPrivmsg) {
		t.Fatalf("command = %q", m.Command)
	}
	if got := m.Params.Get(1); got != "#chan" {
		t.Fatalf("params[1] = %q", got)
	}
	if got, want := string(m.Suffix), "hello world"; got != want {
		t.Fatalf("suffix = %q, want %q", got, want)
	}
}

func TestParseMessage_emptySuffixIsPresent(t *testing.T) {
	m := irc.ParseMessage([]byte("PRIVMSG #c :\r\n"))
	if !m.HasSuffix() {
		t.Fatalf("HasSuffix() = false, want true for an explicit empty trailing parameter")
	}
	if len(m.Suffix) != 0 {
		t.Fatalf("suffix = %q, want empty", m.Suffix)
	}
}

func TestParseMessage_noSuffixAtAll(t *testing.T) {
	m := irc.ParseMessage([]byte("PING\r\n"))
	if m.HasSuffix() {
		t.Fatalf("HasSuffix() = true, want false when there is no trailing parameter")
	}
}

func TestParseMessage_noPrefix(t *testing.T) {
	m := irc.ParseMessage([]byte("NOTICE AUTH :*** Looking up hostname"))
	if m.Prefix != "" {
		t.Fatalf("prefix = %q, want empty", m.Prefix)
	}
	if got := m.Params.Get(1); got != "AUTH" {
		t.Fatalf("params[1] = %q", got)
	}
}

func TestParseMessage_malformedNeverFails(t *testing.T) {
	for _, raw := range []string{"", ":", ":nouser", "   ", "\r\n"} {
		m := irc.ParseMessage([]byte(raw))
		if m == nil {
			t.Fatalf("ParseMessage(%q) returned nil", raw)
		}
	}
}

func TestBuildMessage_roundTrip(t *testing.T) {
	b, err := irc.BuildMessage("PRIVMSG", []string{"#chan"}, []byte("nick!user@host"), []byte("hello there"))
	if err != nil {
		t.Fatalf("BuildMessage: %v", err)
	}
	if !bytes.HasSuffix(b, []byte("\r\n")) {
		t.Fatalf("missing CRLF: %q", b)
	}

	m := irc.ParseMessage(b)
	if m.Prefix != "nick!user@host" {
		t.Fatalf("prefix = %q", m.Prefix)
	}
	if !m.Command.Is("PRIVMSG") {
		t.Fatalf("command = %q", m.Command)
	}
	if got := m.Params.Get(1); got != "#chan" {
		t.Fatalf("params[1] = %q", got)
	}
	if got, want := string(m.Suffix), "hello there"; got != want {
		t.Fatalf("suffix = %q, want %q", got, want)
	}
}

func TestBuildMessage_strayLineEnding(t *testing.T) {
	if _, err := irc.BuildMessage("PRIVMSG", []string{"#chan"}, nil, []byte("line1\r\nline2")); err != irc.ErrStrayLineEnding {
		t.Fatalf("err = %v, want ErrStrayLineEnding", err)
	}
}

func TestBuildMessage_tooLong(t *testing.T) {
	huge := make([]byte, 600)
	for i := range huge {
		huge[i] = 'A'
	}
	if _, err := irc.BuildMessage("PRIVMSG", []string{"#chan"}, nil, huge); err != irc.ErrMessageTooLong {
		t.Fatalf("err = %v, want ErrMessageTooLong", err)
	}
}

func TestNewMessage(t *testing.T) {
	b, err := irc.NewMessage("NICK", "bob")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(b), "NICK bob\r\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
