package anvil

import "context"

// Forwarder executes externally registered tools. The transport behind it
// (MCP client session, test double) is the host's concern; dispatch only
// routes the (server, tool) pair and the untyped parameters through it.
type Forwarder interface {
	Forward(ctx context.Context, server, tool string, params map[string]any) (ToolExecutionOutput, error)
}
