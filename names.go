// Package anvil defines the domain types for the tool invocation and
// execution core of a coding agent: canonical tool names, machine-readable
// tool specs, the execution output/error model, and the narrow interfaces
// (System, Forwarder) that implementations and hosts plug into.
package anvil

import "fmt"

// BuiltInToolName identifies a tool implemented directly by this core.
// The values are stable wire identifiers.
type BuiltInToolName string

const (
	FsRead     BuiltInToolName = "fsRead"
	FsWrite    BuiltInToolName = "fsWrite"
	ExecuteCmd BuiltInToolName = "executeCmd"
	ImageRead  BuiltInToolName = "imageRead"
	Ls         BuiltInToolName = "ls"
)

// BuiltInToolNames returns every built-in tool name in stable order.
func BuiltInToolNames() []BuiltInToolName {
	return []BuiltInToolName{FsRead, FsWrite, ExecuteCmd, ImageRead, Ls}
}

// Valid reports whether n is a declared built-in tool name.
func (n BuiltInToolName) Valid() bool {
	switch n {
	case FsRead, FsWrite, ExecuteCmd, ImageRead, Ls:
		return true
	}
	return false
}

func (n BuiltInToolName) String() string { return string(n) }

type nameKind int

const (
	nameBuiltIn nameKind = iota
	nameMCP
	nameAgent
)

// CanonicalToolName is the unified addressing scheme for built-in and
// externally registered tools. It is a closed sum: exactly one of the
// built-in, MCP, or (reserved) agent variants is active.
type CanonicalToolName struct {
	kind    nameKind
	builtIn BuiltInToolName
	server  string
	tool    string
}

// BuiltIn returns the canonical name of a built-in tool.
func BuiltIn(name BuiltInToolName) CanonicalToolName {
	return CanonicalToolName{kind: nameBuiltIn, builtIn: name}
}

// MCP returns the canonical name of an externally registered tool. The
// (server, tool) pair is the identity; tool names need not be unique
// across servers.
func MCP(server, tool string) CanonicalToolName {
	return CanonicalToolName{kind: nameMCP, server: server, tool: tool}
}

// Agent returns a reserved agent-class tool name. Parsing a call against
// an agent name always fails: the variant exists so catalog completeness
// checks can account for it before it is implemented.
func Agent(name string) CanonicalToolName {
	return CanonicalToolName{kind: nameAgent, tool: name}
}

// IsBuiltIn reports whether the name addresses a built-in tool, and which.
func (n CanonicalToolName) IsBuiltIn() (BuiltInToolName, bool) {
	if n.kind != nameBuiltIn {
		return "", false
	}
	return n.builtIn, true
}

// IsMCP reports whether the name addresses an externally registered tool.
func (n CanonicalToolName) IsMCP() (server, tool string, ok bool) {
	if n.kind != nameMCP {
		return "", "", false
	}
	return n.server, n.tool, true
}

// IsAgent reports whether the name addresses the reserved agent class.
func (n CanonicalToolName) IsAgent() bool { return n.kind == nameAgent }

// String renders the wire-visible form: the built-in identifier, the
// server___tool pair for MCP tools, or the agent name.
func (n CanonicalToolName) String() string {
	switch n.kind {
	case nameBuiltIn:
		return string(n.builtIn)
	case nameMCP:
		return fmt.Sprintf("%s___%s", n.server, n.tool)
	default:
		return n.tool
	}
}
