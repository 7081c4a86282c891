package anvil

import (
	"encoding/json"
	"fmt"
)

// OutputItem is a sealed interface representing one item of tool output.
// The unexported marker method prevents external implementations.
type OutputItem interface {
	outputItem()
}

// TextItem contains plain text output.
type TextItem struct {
	Text string
}

func (TextItem) outputItem() {}

// JSONItem contains a structured JSON value.
type JSONItem struct {
	Value json.RawMessage
}

func (JSONItem) outputItem() {}

// ImageItem contains raster image output.
type ImageItem struct {
	Image ImageBlock
}

func (ImageItem) outputItem() {}

// ToolExecutionOutput is the ordered output of a tool execution. It always
// contains at least one item: tools with nothing concrete to report return
// EmptyOutput rather than a zero-length slice.
type ToolExecutionOutput struct {
	Items []OutputItem
}

// NewOutput wraps items in a ToolExecutionOutput. An empty call degrades
// to EmptyOutput so the at-least-one-item guarantee holds.
func NewOutput(items ...OutputItem) ToolExecutionOutput {
	if len(items) == 0 {
		return EmptyOutput()
	}
	return ToolExecutionOutput{Items: items}
}

// TextOutput returns an output holding a single text item.
func TextOutput(text string) ToolExecutionOutput {
	return ToolExecutionOutput{Items: []OutputItem{TextItem{Text: text}}}
}

// EmptyOutput returns the canonical "nothing to report" output: a single
// empty text item.
func EmptyOutput() ToolExecutionOutput {
	return ToolExecutionOutput{Items: []OutputItem{TextItem{}}}
}

// IOError is a tool execution failure caused by the filesystem or a
// process. Context always describes the attempted operation and the path
// involved; Err carries the underlying cause when one exists.
type IOError struct {
	Context string
	Err     error
}

func (e *IOError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Context, e.Err)
	}
	return e.Context
}

func (e *IOError) Unwrap() error { return e.Err }

// IOErrorf builds an IOError with a formatted context string.
func IOErrorf(err error, format string, args ...any) *IOError {
	return &IOError{Context: fmt.Sprintf(format, args...), Err: err}
}

// DomainError is a tool execution failure in the tool's own terms, e.g.
// an ambiguous string replacement or an unsupported image format.
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string { return e.Message }

// DomainErrorf builds a DomainError from a format string.
func DomainErrorf(format string, args ...any) *DomainError {
	return &DomainError{Message: fmt.Sprintf(format, args...)}
}

// Interface compliance checks.
var (
	_ OutputItem = TextItem{}
	_ OutputItem = JSONItem{}
	_ OutputItem = ImageItem{}

	_ error = (*IOError)(nil)
	_ error = (*DomainError)(nil)
)
