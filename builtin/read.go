package builtin

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/anvil"
	"github.com/fwojciec/anvil/text"
)

const (
	// maxReadBytes bounds how much of a file fsRead returns.
	maxReadBytes = 256 * 1024

	readTruncatedSuffix = " ...truncated"
)

// FsRead reads a text file, optionally restricted to a 1-indexed inclusive
// line range. Zero values for StartLine and EndLine mean unset.
type FsRead struct {
	Path      string
	StartLine int
	EndLine   int
}

func (FsRead) builtInTool() {}

func (r *FsRead) Validate(ctx context.Context, sys anvil.System) error {
	var errs []string
	if r.Path == "" {
		errs = append(errs, "Path must not be empty")
	}
	if r.StartLine < 0 || r.EndLine < 0 {
		errs = append(errs, "Line numbers are 1-indexed and must not be negative")
	}
	if r.StartLine > 0 && r.EndLine > 0 && r.EndLine < r.StartLine {
		errs = append(errs, "endLine must not be smaller than startLine")
	}
	if r.Path != "" {
		if path, err := canonicalPath(sys, r.Path); err == nil {
			md, statErr := os.Stat(path)
			switch {
			case statErr != nil:
				errs = append(errs, fmt.Sprintf("File not found: %s", path))
			case !md.Mode().IsRegular():
				errs = append(errs, fmt.Sprintf("Path is not a file: %s", path))
			}
		}
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "\n"))
	}
	return nil
}

func (r *FsRead) Execute(ctx context.Context, sys anvil.System) (anvil.ToolExecutionOutput, error) {
	path, err := canonicalPath(sys, r.Path)
	if err != nil {
		return anvil.ToolExecutionOutput{}, err
	}
	content, _, err := text.ReadFileLimit(path, maxReadBytes, readTruncatedSuffix)
	if err != nil {
		return anvil.ToolExecutionOutput{}, anvil.IOErrorf(err, "failed to read %s", path)
	}
	if r.StartLine > 0 || r.EndLine > 0 {
		content = sliceLines(content, r.StartLine, r.EndLine)
	}
	return anvil.TextOutput(content), nil
}

// sliceLines returns the 1-indexed inclusive [start, end] line range of s.
// A zero start means the first line and a zero end means the last.
func sliceLines(s string, start, end int) string {
	lines := strings.Split(s, "\n")
	if start < 1 {
		start = 1
	}
	if end < 1 || end > len(lines) {
		end = len(lines)
	}
	if start > len(lines) {
		return ""
	}
	return strings.Join(lines[start-1:end], "\n")
}

var _ BuiltInTool = (*FsRead)(nil)
