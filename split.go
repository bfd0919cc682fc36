package sender

// splitPayload divides a payload into chunks that each fit within limit,
// splitting only at newline bytes so a metric line is never broken mid-line.
// A limit <= 0 disables splitting, and a payload that already fits is
// returned unchanged as a single chunk. Newline bytes chosen as split points
// are consumed; no other bytes are dropped, reordered, or inserted.
//
// An oversized payload with no newline within reach passes through as a
// single oversized chunk. The platform may reject or drop such a datagram,
// which is an accepted risk; the alternative would be truncating a line.
func splitPayload(payload []byte, limit int) [][]byte {
	if limit <= 0 || len(payload) <= limit {
		return [][]byte{payload}
	}
	return splitAtNewlines(payload, limit)
}

// splitAtNewlines scans backward for a newline from the window boundary,
// which is index limit inclusive (clamped to the payload end), and recurses
// into the bytes on either side of the one it finds. The rightmost newline
// within the window controls the split point at each level, so the prefix is
// never longer than limit.
func splitAtNewlines(payload []byte, limit int) [][]byte {
	scan := limit
	if scan > len(payload)-1 {
		scan = len(payload) - 1
	}
	for i := scan; i >= 0; i-- {
		if payload[i] != '\n' {
			continue
		}
		chunks := splitAtNewlines(payload[:i], limit)
		if i+1 < len(payload) {
			chunks = append(chunks, splitAtNewlines(payload[i+1:], limit)...)
		}
		return chunks
	}
	return [][]byte{payload}
}
