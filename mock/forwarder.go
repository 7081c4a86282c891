package mock

import (
	"context"

	"github.com/fwojciec/anvil"
)

// Interface compliance check.
var _ anvil.Forwarder = (*Forwarder)(nil)

// Forwarder is a test double for anvil.Forwarder.
// Set ForwardFn before calling Forward.
type Forwarder struct {
	ForwardFn func(ctx context.Context, server, tool string, params map[string]any) (anvil.ToolExecutionOutput, error)
}

// Forward delegates to ForwardFn.
func (f *Forwarder) Forward(ctx context.Context, server, tool string, params map[string]any) (anvil.ToolExecutionOutput, error) {
	return f.ForwardFn(ctx, server, tool, params)
}
