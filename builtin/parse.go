package builtin

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fwojciec/anvil"
	"github.com/fwojciec/anvil/mcp"
)

// purposeKey is stripped from the raw arguments before decoding, so tools
// never see it as part of their input.
const purposeKey = "toolUsePurpose"

// Parse decodes a raw tool invocation into a dispatchable Tool. The raw
// arguments are first split into an object, the purpose field is removed, and
// the remainder is decoded against the named tool's declared shape. Failures
// are reported as *anvil.ParseError with a kind describing the stage that
// failed.
func Parse(name anvil.CanonicalToolName, rawArgs json.RawMessage) (*Tool, error) {
	if len(rawArgs) == 0 {
		rawArgs = json.RawMessage(`{}`)
	}

	// A non-object payload keeps obj nil; built-in decoding reports it as a
	// schema failure and MCP forwarding as invalid arguments.
	var obj map[string]json.RawMessage
	isObject := json.Unmarshal(rawArgs, &obj) == nil

	purpose := ""
	if isObject {
		if raw, ok := obj[purposeKey]; ok {
			var s string
			if json.Unmarshal(raw, &s) == nil {
				purpose = s
			}
			delete(obj, purposeKey)
		}
	}

	if builtInName, ok := name.IsBuiltIn(); ok {
		if !builtInName.Valid() {
			return nil, &anvil.ParseError{
				Name:    name.String(),
				Kind:    anvil.ParseNameNotFound,
				Message: name.String(),
			}
		}
		if !isObject {
			return nil, schemaFailure(name, fmt.Errorf("arguments must be an object, got: %s", rawArgs))
		}
		tool, err := decodeBuiltIn(builtInName, obj)
		if err != nil {
			return nil, schemaFailure(name, err)
		}
		return &Tool{Purpose: purpose, Kind: BuiltInKind{Name: builtInName, Tool: tool}}, nil
	}

	if server, toolName, ok := name.IsMCP(); ok {
		if !isObject {
			return nil, &anvil.ParseError{
				Name:    name.String(),
				Kind:    anvil.ParseInvalidArgs,
				Message: fmt.Sprintf("arguments must be an object, got: %s", rawArgs),
			}
		}
		params := make(map[string]any, len(obj))
		for k, raw := range obj {
			var v any
			if err := json.Unmarshal(raw, &v); err != nil {
				return nil, &anvil.ParseError{
					Name:    name.String(),
					Kind:    anvil.ParseInvalidArgs,
					Message: fmt.Sprintf("invalid value for argument %q: %s", k, err),
					Err:     err,
				}
			}
			params[k] = v
		}
		return &Tool{Purpose: purpose, Kind: MCPKind{Tool: mcp.Tool{
			ServerName: server,
			ToolName:   toolName,
			Params:     params,
		}}}, nil
	}

	return nil, &anvil.ParseError{
		Name:    name.String(),
		Kind:    anvil.ParseOther,
		Message: "agent tools are not implemented",
		Err:     anvil.ErrUnimplemented,
	}
}

func schemaFailure(name anvil.CanonicalToolName, err error) *anvil.ParseError {
	return &anvil.ParseError{
		Name:    name.String(),
		Kind:    anvil.ParseSchemaFailure,
		Message: err.Error(),
		Err:     err,
	}
}

func decodeBuiltIn(name anvil.BuiltInToolName, obj map[string]json.RawMessage) (BuiltInTool, error) {
	args, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}
	switch name {
	case anvil.FsRead:
		return decodeFsRead(args)
	case anvil.FsWrite:
		return decodeFsWrite(args)
	case anvil.ExecuteCmd:
		return decodeExecuteCmd(args)
	case anvil.ImageRead:
		return decodeImageRead(args)
	case anvil.Ls:
		return decodeLs(args)
	}
	panic(fmt.Sprintf("no decoder registered for built-in tool %q", name))
}

func decodeFsRead(args json.RawMessage) (BuiltInTool, error) {
	var raw struct {
		Path      *string `json:"path"`
		StartLine int     `json:"startLine"`
		EndLine   int     `json:"endLine"`
	}
	if err := json.Unmarshal(args, &raw); err != nil {
		return nil, err
	}
	if raw.Path == nil {
		return nil, errors.New("missing field `path`")
	}
	return &FsRead{Path: *raw.Path, StartLine: raw.StartLine, EndLine: raw.EndLine}, nil
}

func decodeFsWrite(args json.RawMessage) (BuiltInTool, error) {
	w := &FsWrite{}
	if err := json.Unmarshal(args, w); err != nil {
		return nil, err
	}
	return w, nil
}

func decodeExecuteCmd(args json.RawMessage) (BuiltInTool, error) {
	var raw struct {
		Command *string `json:"command"`
	}
	if err := json.Unmarshal(args, &raw); err != nil {
		return nil, err
	}
	if raw.Command == nil {
		return nil, errors.New("missing field `command`")
	}
	return &ExecuteCmd{Command: *raw.Command}, nil
}

func decodeImageRead(args json.RawMessage) (BuiltInTool, error) {
	var raw struct {
		Paths []string `json:"paths"`
	}
	if err := json.Unmarshal(args, &raw); err != nil {
		return nil, err
	}
	if raw.Paths == nil {
		return nil, errors.New("missing field `paths`")
	}
	return &ImageRead{Paths: raw.Paths}, nil
}

func decodeLs(args json.RawMessage) (BuiltInTool, error) {
	var raw struct {
		Path   *string  `json:"path"`
		Depth  *int     `json:"depth"`
		Ignore []string `json:"ignore"`
	}
	if err := json.Unmarshal(args, &raw); err != nil {
		return nil, err
	}
	if raw.Path == nil {
		return nil, errors.New("missing field `path`")
	}
	return &Ls{Path: *raw.Path, Depth: raw.Depth, Ignore: raw.Ignore}, nil
}
