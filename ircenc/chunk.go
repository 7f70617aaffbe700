package ircenc

// ChunkMessage splits text into byte buffers no longer than maxLength
// bytes (as UTF-8), suitable for sending as a series of IRC lines.
//
// text is first split on line terminators (CR, LF, or CRLF), the same
// way as a native splitlines. Each resulting line is then packed
// greedily: if it already fits within maxLength it is emitted whole;
// otherwise ChunkMessage looks for the last space at a byte offset
// below maxLength and breaks there, keeping the space on the emitted chunk
// and re-queuing the remainder. If no such space exists, the line is
// cut at the last byte offset ≤ maxLength that does not bisect a UTF-8
// code point, which is found by inspecting the trailing bytes of the
// candidate slice for a continuation-byte pattern (10xxxxxx) and
// backing off 1-3 bytes until the boundary is clean.
//
// Every emitted chunk decodes losslessly as UTF-8 and is ≤ maxLength
// bytes; concatenating the decoded chunks reproduces text with its
// line terminators stripped.
func ChunkMessage(text string, maxLength int) [][]byte {
	lines := splitLines(text)
	var out [][]byte

	for len(lines) > 0 {
		line := lines[0]
		lines = lines[1:]

		lb := []byte(line)
		if len(lb) <= maxLength {
			out = append(out, lb)
			continue
		}

		if spacepoint := lastSpaceWithin(lb, maxLength); spacepoint != -1 {
			head := lb[:spacepoint+1]
			tail := string(lb[spacepoint+1:])
			out = append(out, head)
			lines = append([]string{tail}, lines...)
			continue
		}

		offset := utf8SafeCut(lb, maxLength)
		head := lb[:maxLength-offset]
		tail := string(lb[maxLength-offset:])
		out = append(out, head)
		lines = append([]string{tail}, lines...)
	}

	return out
}

// splitLines breaks s on CR, LF, or CRLF, the way Python's
// str.splitlines() treats those three sequences as one terminator.
func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			lines = append(lines, s[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, s[start:i])
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	lines = append(lines, s[start:])
	return lines
}

// lastSpaceWithin returns the byte offset of the last space below
// maxLength in b, or -1 if there is none, so that a chunk ending with
// that space is at most maxLength bytes.
func lastSpaceWithin(b []byte, maxLength int) int {
	limit := maxLength
	if limit > len(b) {
		limit = len(b)
	}
	for i := limit - 1; i >= 0; i-- {
		if b[i] == ' ' {
			return i
		}
	}
	return -1
}

// utf8SafeCut determines how many bytes to back off from maxLength so
// that b[:maxLength-offset] does not bisect a UTF-8 code point. It
// inspects the last four bytes of the candidate slice for a
// continuation-byte boundary, following the same bit-pattern checks as
// a manual UTF-8 length decode.
func utf8SafeCut(b []byte, maxLength int) int {
	end := maxLength
	if end > len(b) {
		end = len(b)
	}
	start := end - 4
	if start < 0 {
		start = 0
	}
	tail := b[start:end]
	for len(tail) < 4 {
		tail = append([]byte{0}, tail...)
	}
	b1, b2, b3, b4 := tail[0], tail[1], tail[2], tail[3]

	switch {
	case b4>>7 == 0b0, // 1-byte char, nothing crosses the boundary.
		b3>>5 == 0b110, // 2-byte char starting at b3.
		b2>>4 == 0b1110, // 3-byte char starting at b2.
		b1>>3 == 0b11110: // 4-byte char starting at b1.
		return 0
	case b4>>6 == 0b11: // b4 begins a multi-byte char crossing the boundary.
		return 1
	case b3>>5 == 0b111: // b3 begins a 3- or 4-byte char crossing the boundary.
		return 2
	default: // b2 must begin a 4-byte char crossing the boundary.
		return 3
	}
}
