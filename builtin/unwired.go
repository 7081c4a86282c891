package builtin

import (
	"context"

	"github.com/fwojciec/anvil"
)

// Reserved tool variants. They participate in the closed BuiltInTool set so
// exhaustiveness checks account for them, but they have no wire name yet:
// Parse can never produce them, and reaching one at runtime is a bug.

// Grep is a reserved content-search tool.
type Grep struct{}

// Mkdir is a reserved directory-creation tool.
type Mkdir struct{}

// Introspect is a reserved self-description tool.
type Introspect struct{}

// SpawnSubagent is a reserved subagent-launching tool.
type SpawnSubagent struct{}

func (Grep) builtInTool()          {}
func (Mkdir) builtInTool()         {}
func (Introspect) builtInTool()    {}
func (SpawnSubagent) builtInTool() {}

func (Grep) Validate(context.Context, anvil.System) error {
	panic("grep is not wired into dispatch")
}

func (Mkdir) Validate(context.Context, anvil.System) error {
	panic("mkdir is not wired into dispatch")
}

func (Introspect) Validate(context.Context, anvil.System) error {
	panic("introspect is not wired into dispatch")
}

func (SpawnSubagent) Validate(context.Context, anvil.System) error {
	panic("spawnSubagent is not wired into dispatch")
}

var (
	_ BuiltInTool = Grep{}
	_ BuiltInTool = Mkdir{}
	_ BuiltInTool = Introspect{}
	_ BuiltInTool = SpawnSubagent{}
)
