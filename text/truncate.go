// Package text provides byte-budgeted text primitives shared by the
// filesystem tools: UTF-8-safe truncation and bounded file reads with
// suffix-marked truncation accounting.
package text

import "unicode/utf8"

// TruncateSafe returns the longest prefix of s consisting of whole runes
// whose byte length does not exceed maxBytes. It never splits a
// multi-byte character.
func TruncateSafe(s string, maxBytes int) string {
	if maxBytes < 0 {
		maxBytes = 0
	}
	if len(s) <= maxBytes {
		return s
	}
	end := maxBytes
	for end > 0 && !utf8.RuneStart(s[end]) {
		end--
	}
	return s[:end]
}

// TruncateWithSuffix truncates s to at most maxBytes, marking the cut
// with suffix. Semantics:
//   - s already within maxBytes: returned unchanged, no suffix.
//   - both s and suffix exceed maxBytes: the truncated suffix alone.
//   - otherwise: s truncated to maxBytes-len(suffix), then suffix.
//
// The result is always at most maxBytes long.
func TruncateWithSuffix(s string, maxBytes int, suffix string) string {
	if len(s) <= maxBytes {
		return s
	}
	if len(suffix) > maxBytes {
		return TruncateSafe(suffix, maxBytes)
	}
	return TruncateSafe(s, maxBytes-len(suffix)) + suffix
}
