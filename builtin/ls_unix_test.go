//go:build !windows

package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "---------", formatMode(0o000))
	assert.Equal(t, "rwx------", formatMode(0o700))
	assert.Equal(t, "rwxr--r--", formatMode(0o744))
	assert.Equal(t, "rw-r----x", formatMode(0o641))
	assert.Equal(t, "rw-r--r--", formatMode(0o644))
}
