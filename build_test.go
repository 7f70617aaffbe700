package irc_test

import (
	"strings"
	"testing"

	"github.com/meshy/framewirc"
)

// TestMakePrivmsgs_splitsOnKnownMaskLength pins down the overhead
// arithmetic in MakePrivmsgs: with a known, non-default mask length, a
// payload long enough to require splitting purely on length (no spaces
// near the boundary) must produce chunks whose *relayed* frame --
// ":" + mask + " PRIVMSG " + target + " :" + body + CRLF -- never
// exceeds 512 bytes, and whose bodies concatenate back to the original
// message.
func TestMakePrivmsgs_splitsOnKnownMaskLength(t *testing.T) {
	const (
		target     = "#chan"
		maskLength = 27
	)
	message := strings.Repeat("a", 700)

	lines, err := irc.MakePrivmsgs(target, message, false, maskLength)
	if err != nil {
		t.Fatalf("MakePrivmsgs: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2", len(lines))
	}

	wantBudget := 512 - (len(irc.CmdPrivmsg) + len(target) + 7 + maskLength)
	wantLens := []int{wantBudget, len(message) - wantBudget}

	var reconstructed strings.Builder
	for i, line := range lines {
		m := irc.ParseMessage(line)
		if !m.Command.Is(irc.CmdPrivmsg) {
			t.Fatalf("line %d: command = %q, want PRIVMSG", i, m.Command)
		}
		if got := m.Params.Get(1); got != target {
			t.Fatalf("line %d: target = %q, want %q", i, got, target)
		}
		if got := len(m.Suffix); got != wantLens[i] {
			t.Fatalf("line %d: body length = %d, want %d", i, got, wantLens[i])
		}

		relayedFrameLen := 1 + maskLength + 1 + len(irc.CmdPrivmsg) + 1 + len(target) + 1 + 1 + len(m.Suffix) + 2
		if relayedFrameLen > 512 {
			t.Fatalf("line %d: relayed frame would be %d bytes, want <= 512", i, relayedFrameLen)
		}

		reconstructed.Write(m.Suffix)
	}

	if got := reconstructed.String(); got != message {
		t.Fatalf("reconstructed body = %q (len %d), want original (len %d)", got, len(got), len(message))
	}
}

// TestMakePrivmsgs_fitsInOneLine exercises the case where a known
// mask length still leaves enough budget for the whole message.
func TestMakePrivmsgs_fitsInOneLine(t *testing.T) {
	lines, err := irc.MakePrivmsgs("#chan", "short message", false, 27)
	if err != nil {
		t.Fatalf("MakePrivmsgs: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("len(lines) = %d, want 1", len(lines))
	}
	if got, want := string(lines[0]), "PRIVMSG #chan :short message\r\n"; got != want {
		t.Fatalf("line = %q, want %q", got, want)
	}
}

// TestMakePrivmsgs_thirdPersonWrapsChunk confirms that a third-person
// message short enough for one line comes out as a single PRIVMSG
// whose body is wrapped in the CTCP ACTION markers.
func TestMakePrivmsgs_thirdPersonWrapsChunk(t *testing.T) {
	lines, err := irc.MakePrivmsgs("#chan", "waves hello", true, 27)
	if err != nil {
		t.Fatalf("MakePrivmsgs: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("len(lines) = %d, want 1", len(lines))
	}
	m := irc.ParseMessage(lines[0])
	want := "\x01ACTION waves hello\x01"
	if got := string(m.Suffix); got != want {
		t.Fatalf("suffix = %q, want %q", got, want)
	}
}
