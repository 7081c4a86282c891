package anvil

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure modes.
var (
	// ErrToolNotFound indicates the requested tool name is not declared.
	ErrToolNotFound = errors.New("tool not found")

	// ErrUnimplemented indicates a declared but not yet available tool
	// variant was addressed.
	ErrUnimplemented = errors.New("unimplemented")
)

// ParseErrorKind classifies failures turning a raw call into a typed tool.
type ParseErrorKind int

const (
	// ParseNameNotFound: no tool with the given name exists.
	ParseNameNotFound ParseErrorKind = iota
	// ParseSchemaFailure: arguments do not match the tool's declared shape.
	ParseSchemaFailure
	// ParseInvalidArgs: arguments failed a structural requirement, e.g.
	// an externally registered tool was called with a non-object payload.
	ParseInvalidArgs
	// ParseOther: an unexpected failure, including reserved tool classes.
	ParseOther
)

func (k ParseErrorKind) String() string {
	switch k {
	case ParseNameNotFound:
		return "name not found"
	case ParseSchemaFailure:
		return "schema failure"
	case ParseInvalidArgs:
		return "invalid args"
	default:
		return "other"
	}
}

// ParseError reports that a tool call could not be turned into a tool
// ready for execution. It is structurally distinct from execution
// failures: a caller that receives one knows nothing was run.
type ParseError struct {
	Name    string
	Kind    ParseErrorKind
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ParseNameNotFound:
		return fmt.Sprintf("a tool with the name %q does not exist", e.Name)
	case ParseSchemaFailure:
		return fmt.Sprintf("the tool input does not match the tool schema: %s", e.Message)
	case ParseInvalidArgs:
		return fmt.Sprintf("the tool arguments failed validation: %s", e.Message)
	default:
		return fmt.Sprintf("an unexpected error occurred parsing the tool: %s", e.Message)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }
