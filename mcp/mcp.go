// Package mcp models externally registered tools: their (server, tool)
// identity, their untyped parameters, and the conversion of MCP tool
// shapes into catalog specs. The transport that actually reaches a
// server lives behind anvil.Forwarder and is not this package's concern.
package mcp

import (
	"encoding/json"
	"fmt"
	"strings"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fwojciec/anvil"
)

// Tool is a parsed call to an externally registered tool. Params pass
// through untyped: the owning server defines and checks their shape.
type Tool struct {
	ServerName string
	ToolName   string
	Params     map[string]any
}

// CanonicalName returns the tool's canonical (server, tool) name.
func (t Tool) CanonicalName() anvil.CanonicalToolName {
	return anvil.MCP(t.ServerName, t.ToolName)
}

// SpecFromTool converts an MCP tool definition advertised by server into
// a catalog spec. A tool without an input schema is published with an
// empty object schema so every spec stays well-formed.
func SpecFromTool(server string, tool sdk.Tool) (anvil.ToolSpec, error) {
	schema := json.RawMessage(`{"type":"object"}`)
	if tool.InputSchema != nil {
		raw, err := json.Marshal(tool.InputSchema)
		if err != nil {
			return anvil.ToolSpec{}, fmt.Errorf("failed to encode input schema for tool %q on server %q: %w", tool.Name, server, err)
		}
		schema = raw
	}

	description := tool.Description
	if description == "" {
		description = tool.Title
	}

	return anvil.ToolSpec{
		Name:        anvil.MCP(server, tool.Name).String(),
		Description: description,
		InputSchema: schema,
	}, nil
}

// OutputFromResult maps the content of a tool call result into output
// items. Text and image content map directly; anything else is carried as
// a JSON item so no content is silently dropped. An error result becomes a
// domain error carrying the joined text content.
func OutputFromResult(result *sdk.CallToolResult) (anvil.ToolExecutionOutput, error) {
	var items []anvil.OutputItem
	var texts []string
	for _, content := range result.Content {
		switch c := content.(type) {
		case *sdk.TextContent:
			items = append(items, anvil.TextItem{Text: c.Text})
			texts = append(texts, c.Text)
		case *sdk.ImageContent:
			format, ok := anvil.ParseImageFormat(strings.TrimPrefix(c.MIMEType, "image/"))
			if !ok {
				return anvil.ToolExecutionOutput{}, anvil.DomainErrorf("unsupported image content type %q", c.MIMEType)
			}
			items = append(items, anvil.ImageItem{Image: anvil.ImageBlock{Format: format, Data: c.Data}})
		default:
			raw, err := json.Marshal(content)
			if err != nil {
				return anvil.ToolExecutionOutput{}, fmt.Errorf("failed to encode tool result content: %w", err)
			}
			items = append(items, anvil.JSONItem{Value: raw})
		}
	}
	if result.IsError {
		return anvil.ToolExecutionOutput{}, anvil.DomainErrorf("%s", strings.Join(texts, "\n"))
	}
	return anvil.NewOutput(items...), nil
}
