package anvil

import "encoding/json"

// ToolSpec is the machine-readable description of a tool published to the
// model: name, free-text description, and a JSON Schema for its input.
type ToolSpec struct {
	Name        string
	Description string
	InputSchema json.RawMessage
}
