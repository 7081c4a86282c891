package builtin

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fwojciec/anvil"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Executor runs parsed tool invocations: built-in tools directly against the
// local system, MCP tools through a Forwarder. It owns the per-session write
// statistics.
type Executor struct {
	sys       anvil.System
	forwarder anvil.Forwarder
	logger    zerolog.Logger
	state     *SessionState
}

// Option configures an Executor.
type Option func(*Executor)

// WithSystem overrides the system facade, mainly for tests.
func WithSystem(sys anvil.System) Option {
	return func(e *Executor) { e.sys = sys }
}

// WithForwarder installs the MCP forwarder. Without one, MCP tool calls fail
// with a descriptive error.
func WithForwarder(f anvil.Forwarder) Option {
	return func(e *Executor) { e.forwarder = f }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Executor) { e.logger = logger }
}

func NewExecutor(opts ...Option) *Executor {
	e := &Executor{
		sys:    anvil.OSSystem{},
		logger: zerolog.Nop(),
		state:  NewSessionState(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State exposes the per-session write statistics.
func (e *Executor) State() *SessionState { return e.state }

// Dispatch parses, validates and executes a single tool invocation. The
// returned output is only meaningful when the error is nil.
func (e *Executor) Dispatch(ctx context.Context, name anvil.CanonicalToolName, rawArgs json.RawMessage) (anvil.ToolExecutionOutput, error) {
	id := uuid.NewString()
	start := time.Now()
	e.logger.Debug().
		Str("invocation_id", id).
		Str("tool", name.String()).
		Int("args_bytes", len(rawArgs)).
		Msg("dispatching tool")

	out, err := e.dispatch(ctx, name, rawArgs)

	evt := e.logger.Debug().
		Str("invocation_id", id).
		Str("tool", name.String()).
		Dur("duration", time.Since(start))
	if err != nil {
		evt.Err(err).Msg("tool failed")
		return anvil.ToolExecutionOutput{}, err
	}
	evt.Int("items", len(out.Items)).Msg("tool succeeded")
	return out, nil
}

func (e *Executor) dispatch(ctx context.Context, name anvil.CanonicalToolName, rawArgs json.RawMessage) (anvil.ToolExecutionOutput, error) {
	tool, err := Parse(name, rawArgs)
	if err != nil {
		return anvil.ToolExecutionOutput{}, err
	}
	if tool.Purpose != "" {
		e.logger.Debug().Str("tool", name.String()).Str("purpose", tool.Purpose).Msg("tool use purpose")
	}

	switch kind := tool.Kind.(type) {
	case BuiltInKind:
		if err := kind.Tool.Validate(ctx, e.sys); err != nil {
			return anvil.ToolExecutionOutput{}, err
		}
		return e.executeBuiltIn(ctx, kind.Tool)
	case MCPKind:
		if e.forwarder == nil {
			return anvil.ToolExecutionOutput{}, anvil.DomainErrorf(
				"no forwarder is configured for MCP server %q", kind.Tool.ServerName)
		}
		return e.forwarder.Forward(ctx, kind.Tool.ServerName, kind.Tool.ToolName, kind.Tool.Params)
	default:
		panic(fmt.Sprintf("unknown tool kind %T", kind))
	}
}

func (e *Executor) executeBuiltIn(ctx context.Context, tool BuiltInTool) (anvil.ToolExecutionOutput, error) {
	switch t := tool.(type) {
	case *FsRead:
		return t.Execute(ctx, e.sys)
	case *FsWrite:
		var tracker *FileLineTracker
		if path, err := canonicalPath(e.sys, t.Path); err == nil {
			tracker = e.state.Tracker(path)
		}
		return t.Execute(ctx, e.sys, tracker)
	case *ExecuteCmd:
		return t.Execute(ctx, e.sys)
	case *ImageRead:
		return t.Execute(ctx, e.sys)
	case *Ls:
		return t.Execute(ctx, e.sys)
	default:
		panic(fmt.Sprintf("built-in tool %T is not wired into dispatch", tool))
	}
}
