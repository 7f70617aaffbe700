// Package ircenc provides lossless byte/text conversion for IRC wire
// data, with fallback character-set detection on inbound payloads, and
// a UTF-8-safe chunker for splitting long outbound payloads across
// multiple lines.
//
// IRC allows arbitrary byte content in a message's trailing parameter;
// this package exists so that the codec never has to crash on
// mis-encoded input.
package ircenc

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/ianaindex"
)

// ToBytes coerces x into a byte slice. Byte slices are returned as-is;
// strings are UTF-8 encoded. Any other type is an error.
func ToBytes(x any) ([]byte, error) {
	switch v := x.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, errNotBytesOrText
	}
}

// ToUnicode decodes b into a string.
//
// Each name in expected (default "utf-8") is tried in order via
// golang.org/x/text/encoding/ianaindex; the first one that decodes b
// without error wins. If none do, golang.org/x/net/html/charset is used
// to sniff the byte content heuristically. If that fails to name an
// encoding, UTF-8 is assumed. The final decode is always lossy (invalid
// sequences are replaced rather than rejected), so ToUnicode never
// fails: no inbound byte sequence can crash the codec.
func ToUnicode(b []byte, expected ...string) string {
	if len(expected) == 0 {
		expected = []string{"utf-8"}
	}

	for _, name := range expected {
		if s, ok := tryDecode(name, b); ok {
			return s
		}
	}

	_, name, _ := charset.DetermineEncoding(b, "")
	if name == "" {
		name = "utf-8"
	}
	if s, ok := tryDecode(name, b); ok {
		return s
	}

	return lossyUTF8(b)
}

// tryDecode attempts a strict decode of b as name, returning ok=false
// if the encoding is unknown or the bytes don't decode cleanly.
func tryDecode(name string, b []byte) (string, bool) {
	enc, err := ianaindex.MIME.Encoding(name)
	if err != nil || enc == nil {
		enc, err = ianaindex.IANA.Encoding(name)
		if err != nil || enc == nil {
			return "", false
		}
	}
	decoded, err := enc.NewDecoder().Bytes(b)
	// Some decoders (UTF-8 among them) substitute U+FFFD for invalid
	// input instead of failing, so a replacement character in the
	// output also counts as an unclean decode.
	if err != nil || bytes.ContainsRune(decoded, utf8.RuneError) {
		return "", false
	}
	return string(decoded), true
}

// lossyUTF8 decodes b as UTF-8, substituting the Unicode replacement
// character for any invalid byte sequence, so the conversion always
// succeeds.
func lossyUTF8(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	buf := make([]rune, 0, len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		buf = append(buf, r)
		b = b[size:]
	}
	return string(buf)
}

type notBytesOrTextError struct{}

func (notBytesOrTextError) Error() string { return "ircenc: value must be bytes or text" }

var errNotBytesOrText = notBytesOrTextError{}

// ErrNotBytesOrText is returned by ToBytes when given a value that is
// neither a byte slice nor a string.
var ErrNotBytesOrText error = errNotBytesOrText
