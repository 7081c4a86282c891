//go:build !windows

package builtin

const newline = "\n"
