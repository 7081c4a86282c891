package builtin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/anvil"
)

// WriteCommand selects the FsWrite operation.
type WriteCommand string

const (
	WriteCreate     WriteCommand = "create"
	WriteStrReplace WriteCommand = "strReplace"
	WriteInsert     WriteCommand = "insert"
)

// FsWrite creates or edits a text file. Command selects the operation;
// the remaining fields are populated per command by the decoder.
type FsWrite struct {
	Command WriteCommand
	Path    string

	// Content is the file body for create, or the text to insert.
	Content string

	// OldStr and NewStr drive strReplace. ReplaceAll permits replacing
	// more than one occurrence.
	OldStr     string
	NewStr     string
	ReplaceAll bool

	// InsertLine is the 0-indexed line to insert at. When nil, content is
	// appended to the end of the file.
	InsertLine *int
}

func (FsWrite) builtInTool() {}

// UnmarshalJSON decodes the command-tagged union, enforcing the required
// fields of the selected command so a structurally wrong payload fails at
// decode time rather than at execution.
func (w *FsWrite) UnmarshalJSON(data []byte) error {
	var raw struct {
		Command    *string `json:"command"`
		Path       *string `json:"path"`
		Content    *string `json:"content"`
		OldStr     *string `json:"oldStr"`
		NewStr     *string `json:"newStr"`
		ReplaceAll bool    `json:"replaceAll"`
		InsertLine *int    `json:"insertLine"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Command == nil {
		return errors.New("missing field `command`")
	}
	if raw.Path == nil {
		return errors.New("missing field `path`")
	}
	*w = FsWrite{Path: *raw.Path, ReplaceAll: raw.ReplaceAll, InsertLine: raw.InsertLine}
	switch *raw.Command {
	case "create":
		if raw.Content == nil {
			return errors.New("missing field `content`")
		}
		w.Command = WriteCreate
		w.Content = *raw.Content
	case "strReplace":
		if raw.OldStr == nil {
			return errors.New("missing field `oldStr`")
		}
		if raw.NewStr == nil {
			return errors.New("missing field `newStr`")
		}
		w.Command = WriteStrReplace
		w.OldStr = *raw.OldStr
		w.NewStr = *raw.NewStr
	case "insert":
		if raw.Content == nil {
			return errors.New("missing field `content`")
		}
		w.Command = WriteInsert
		w.Content = *raw.Content
	default:
		return fmt.Errorf("unknown variant `%s`, expected one of `create`, `strReplace`, `insert`", *raw.Command)
	}
	return nil
}

func (w *FsWrite) Validate(ctx context.Context, sys anvil.System) error {
	var errs []string
	if w.Path == "" {
		errs = append(errs, "Path must not be empty")
	}

	switch w.Command {
	case WriteCreate:
	case WriteStrReplace:
		if w.Path != "" {
			path, err := canonicalPath(sys, w.Path)
			if err != nil {
				return err
			}
			if _, statErr := os.Stat(path); statErr != nil {
				errs = append(errs, "The provided path must exist in order to replace or insert contents into it")
			}
		}
	case WriteInsert:
		if w.Content == "" {
			errs = append(errs, "Content to insert must not be empty")
		}
	default:
		panic(fmt.Sprintf("unknown write command %q", w.Command))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "\n"))
	}
	return nil
}

// Execute performs the write and records before/after line counts on the
// tracker when one is supplied.
func (w *FsWrite) Execute(ctx context.Context, sys anvil.System, tracker *FileLineTracker) (anvil.ToolExecutionOutput, error) {
	path, err := canonicalPath(sys, w.Path)
	if err != nil {
		return anvil.ToolExecutionOutput{}, err
	}

	before := countFileLines(path)

	switch w.Command {
	case WriteCreate:
		err = w.create(path)
	case WriteStrReplace:
		err = w.strReplace(path)
	case WriteInsert:
		err = w.insert(path)
	default:
		panic(fmt.Sprintf("unknown write command %q", w.Command))
	}
	if err != nil {
		return anvil.ToolExecutionOutput{}, err
	}

	if tracker != nil {
		tracker.RecordWrite(before, countFileLines(path))
	}
	return anvil.EmptyOutput(), nil
}

func (w *FsWrite) create(path string) error {
	parent := filepath.Dir(path)
	if _, err := os.Stat(parent); err != nil {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return anvil.IOErrorf(err, "failed to create directory %s", parent)
		}
	}
	if err := os.WriteFile(path, []byte(w.Content), 0o644); err != nil {
		return anvil.IOErrorf(err, "failed to write to %s", path)
	}
	return nil
}

func (w *FsWrite) strReplace(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return anvil.IOErrorf(err, "failed to read %s", path)
	}
	file := string(raw)

	switch n := strings.Count(file, w.OldStr); {
	case n == 0:
		return anvil.DomainErrorf("no occurrences of %q were found", w.OldStr)
	case n == 1:
		file = strings.Replace(file, w.OldStr, w.NewStr, 1)
	case !w.ReplaceAll:
		return anvil.DomainErrorf("%d occurrences of oldStr were found when only 1 is expected", n)
	default:
		file = strings.ReplaceAll(file, w.OldStr, w.NewStr)
	}

	if err := os.WriteFile(path, []byte(file), 0o644); err != nil {
		return anvil.IOErrorf(err, "failed to write to %s", path)
	}
	return nil
}

func (w *FsWrite) insert(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return anvil.IOErrorf(err, "failed to read %s", path)
	}
	file := string(raw)

	if w.InsertLine != nil {
		line := *w.InsertLine
		if line < 0 {
			line = 0
		}
		if max := countLines(file); line > max {
			line = max
		}
		i := lineOffset(file, line)

		content := w.Content
		if !strings.HasSuffix(content, newline) {
			content += newline
		}
		file = file[:i] + content + file[i:]
	} else {
		if !strings.HasSuffix(file, newline) {
			file += newline
		}
		file += w.Content
	}

	if err := os.WriteFile(path, []byte(file), 0o644); err != nil {
		return anvil.IOErrorf(err, "failed to write to %s", path)
	}
	return nil
}

// countLines counts lines the way a line iterator does: a trailing newline
// does not start a new line.
func countLines(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}

// countFileLines returns the line count of the file at path, or zero when it
// cannot be read.
func countFileLines(path string) int {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	return countLines(string(raw))
}

// lineOffset returns the byte offset immediately after the first n lines of
// s, counting each line's terminator. Returns len(s) when s has fewer than n
// terminated lines.
func lineOffset(s string, n int) int {
	i := 0
	for ; n > 0; n-- {
		idx := strings.IndexByte(s[i:], '\n')
		if idx < 0 {
			return len(s)
		}
		i += idx + 1
	}
	return i
}

var _ BuiltInTool = (*FsWrite)(nil)
