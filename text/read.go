package text

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadFileLimit reads the file at path up to maxBytes bytes, decoding
// leniently (invalid UTF-8 sequences become U+FFFD). When the file is
// larger than maxBytes the returned content ends with suffix and
// truncated reports how many bytes of the original are not represented:
// size - maxBytes + len(suffix). If suffix itself exceeds maxBytes the
// content is empty and truncated is the full file size.
//
// The returned content is never longer than maxBytes.
func ReadFileLimit(path string, maxBytes int64, suffix string) (content string, truncated int64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("failed to open file at %q: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", 0, fmt.Errorf("failed to query file metadata at %q: %w", path, err)
	}

	raw, err := io.ReadAll(io.LimitReader(f, maxBytes))
	if err != nil {
		return "", 0, fmt.Errorf("failed to read from file at %q: %w", path, err)
	}
	content = strings.ToValidUTF8(string(raw), "�")

	if info.Size() <= maxBytes {
		return content, 0, nil
	}
	if int64(len(suffix)) > maxBytes {
		return "", info.Size(), nil
	}

	keep := TruncateSafe(content, len(content)-len(suffix))
	return keep + suffix, info.Size() - maxBytes + int64(len(suffix)), nil
}
