//go:build windows

package builtin

const newline = "\r\n"
