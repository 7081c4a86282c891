// Package shell provides subprocess plumbing for the command execution
// tool: shell selection, identifying environment injection, placeholder
// expansion, and output sanitization.
package shell

// ShellEnvVar overrides the shell binary used to run commands.
const ShellEnvVar = "ANVIL_SHELL"

const (
	userAgentEnvVar        = "ANVIL_USER_AGENT"
	userAgentName          = "anvil"
	userAgentVersionEnvVar = "ANVIL_USER_AGENT_VERSION"
	userAgentVersion       = "0.1.0"
)

// UserAgentEnv returns the fixed identifying environment pairs injected
// into every subprocess launched by the command execution tool.
func UserAgentEnv() map[string]string {
	return map[string]string{
		userAgentEnvVar:        userAgentName,
		userAgentVersionEnvVar: userAgentVersion,
	}
}
