package builtin

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/fwojciec/anvil"
	"github.com/fwojciec/anvil/shell"
)

// ExecuteCmd runs a single command through the platform shell and captures
// its combined output.
type ExecuteCmd struct {
	Command string
}

func (ExecuteCmd) builtInTool() {}

func (c *ExecuteCmd) Validate(ctx context.Context, sys anvil.System) error {
	if c.Command == "" {
		return errors.New("Command must not be empty")
	}
	return nil
}

// Execute runs the command to completion, capturing stdout and stderr in
// full. A non-zero exit code is not an error; the exit status is reported in
// the output text instead.
func (c *ExecuteCmd) Execute(ctx context.Context, sys anvil.System) (anvil.ToolExecutionOutput, error) {
	bin, args := shell.Command(sys)
	env := shell.UserAgentEnv()
	shell.ExpandEnv(env, sys.LookupEnv)

	cmd := exec.CommandContext(ctx, bin, append(args, c.Command)...)
	cmd.Env = os.Environ()
	for k, v := range env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return anvil.ToolExecutionOutput{}, anvil.IOErrorf(err, "failed to execute command %q", c.Command)
		}
	}
	exitCode := cmd.ProcessState.ExitCode()

	out := shell.Sanitize(strings.ToValidUTF8(stdout.String(), "�"))
	errOut := shell.Sanitize(strings.ToValidUTF8(stderr.String(), "�"))

	result := out
	if errOut != "" {
		if result != "" {
			result += "\n"
		}
		result += errOut
	}
	if result == "" {
		result = fmt.Sprintf("Command exited with code %d", exitCode)
	}
	return anvil.TextOutput(result), nil
}

var _ BuiltInTool = (*ExecuteCmd)(nil)
