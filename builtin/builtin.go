// Package builtin implements the built-in tool suite: parsing model-issued
// tool invocations, validating their arguments against the local system, and
// executing them. The Executor type ties parsing, validation, execution and
// dispatch to MCP servers together.
package builtin

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/fwojciec/anvil"
	"github.com/fwojciec/anvil/mcp"
)

// BuiltInTool is the closed set of built-in tool invocations produced by
// Parse. Implementations hold the decoded arguments for a single call.
type BuiltInTool interface {
	builtInTool()

	// Validate checks the decoded arguments against the local system before
	// execution. A nil return means the tool is safe to execute.
	Validate(ctx context.Context, sys anvil.System) error
}

// Tool is a fully parsed tool invocation, ready for dispatch.
type Tool struct {
	// Purpose is the model-supplied reason for the call, stripped from the
	// arguments before decoding. Empty when the model omitted it.
	Purpose string
	Kind    ToolKind
}

// ToolKind discriminates between locally executed built-in tools and calls
// forwarded to an MCP server.
type ToolKind interface {
	toolKind()
}

// BuiltInKind wraps a decoded built-in tool invocation.
type BuiltInKind struct {
	Name anvil.BuiltInToolName
	Tool BuiltInTool
}

// MCPKind wraps a call destined for an MCP server.
type MCPKind struct {
	Tool mcp.Tool
}

func (BuiltInKind) toolKind() {}
func (MCPKind) toolKind()     {}

var (
	_ ToolKind = BuiltInKind{}
	_ ToolKind = MCPKind{}
)

// canonicalPath resolves a user-supplied path to an absolute, cleaned form.
// A leading "~" expands to the user's home directory and relative paths
// resolve against the current working directory. The path does not need to
// exist.
func canonicalPath(sys anvil.System, path string) (string, error) {
	if path == "" {
		return "", errors.New("path must not be empty")
	}
	expanded := path
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := sys.UserHomeDir()
		if err != nil {
			return "", anvil.IOErrorf(err, "failed to resolve home directory for path %q", path)
		}
		expanded = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	if !filepath.IsAbs(expanded) {
		wd, err := sys.Getwd()
		if err != nil {
			return "", anvil.IOErrorf(err, "failed to resolve working directory for path %q", path)
		}
		expanded = filepath.Join(wd, expanded)
	}
	return filepath.Clean(expanded), nil
}
