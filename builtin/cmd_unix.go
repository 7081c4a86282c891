//go:build !windows

package builtin

const executeCmdDescription = `
A tool for executing bash commands.

WHEN TO USE THIS TOOL:
- Use only as a last-resort when no other available tool can accomplish the task

HOW TO USE:
- Provide the command to execute

FEATURES:

LIMITATIONS:
- Does not respect user's bash profile

TIPS:
- Use the fsRead and fsWrite tools for reading and modifying files
`
