//go:build !windows

package shell

import "github.com/fwojciec/anvil"

// Command returns the shell invocation used to run a caller command:
// the binary (overridable through ShellEnvVar) and the leading arguments
// that put it in non-interactive, no-profile mode. The caller's command
// string is appended as the final argument.
func Command(sys anvil.System) (bin string, args []string) {
	bin = "bash"
	if override, ok := sys.LookupEnv(ShellEnvVar); ok && override != "" {
		bin = override
	}
	return bin, []string{"--noprofile", "--norc", "-c"}
}
