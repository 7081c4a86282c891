package builtin

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/anvil"
)

// Directory names never descended into during recursive listings. The model
// has to list these directories explicitly if it wants their contents.
var lsIgnoreDirs = map[string]bool{
	"node_modules": true,
	"bin":          true,
	"build":        true,
	"dist":         true,
	"out":          true,
	".cache":       true,
	".git":         true,
}

const (
	// maxLsEntries caps the total number of listing lines sent to the model.
	maxLsEntries = 1000
	// maxEntriesPerDir caps how many entries of a single directory are
	// collected before the directory is reported as truncated.
	maxEntriesPerDir = 10000
)

// Ls lists directory contents in a long, ls-like format, breadth first up to
// Depth levels below the root.
type Ls struct {
	Path   string
	Depth  *int
	Ignore []string
}

func (Ls) builtInTool() {}

func (l *Ls) Validate(ctx context.Context, sys anvil.System) error {
	path, err := canonicalPath(sys, l.Path)
	if err != nil {
		return err
	}
	md, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("Directory not found: %s", path)
		}
		return anvil.IOErrorf(err, "failed to check file metadata for path %q", path)
	}
	if !md.IsDir() {
		return fmt.Errorf("Path is not a directory: %s", path)
	}
	return nil
}

type lsEntry struct {
	path string
	info fs.FileInfo
	// Seconds since the Unix epoch.
	lastModified int64
}

func (l *Ls) Execute(ctx context.Context, sys anvil.System) (anvil.ToolExecutionOutput, error) {
	root, err := canonicalPath(sys, l.Path)
	if err != nil {
		return anvil.ToolExecutionOutput{}, err
	}
	maxDepth := 0
	if l.Depth != nil {
		maxDepth = *l.Depth
	}

	// Lines to include before the listing results.
	prefix := lsPrefix()
	var result []string

	type queued struct {
		path  string
		depth int
	}
	queue := []queued{{root, 0}}
	for len(queue) > 0 {
		dir := queue[0]
		queue = queue[1:]
		if dir.depth > maxDepth {
			break
		}

		dirEntries, err := os.ReadDir(dir.path)
		if err != nil {
			return anvil.ToolExecutionOutput{}, anvil.IOErrorf(err, "failed to read directory path %q", dir.path)
		}

		var entries []lsEntry
		exceeded := false
		i := 0
		for _, ent := range dirEntries {
			entryPath := filepath.Join(dir.path, ent.Name())
			if l.matchesIgnorePatterns(entryPath) {
				continue
			}
			info, err := ent.Info()
			if err != nil {
				return anvil.ToolExecutionOutput{}, anvil.IOErrorf(err, "failed to get metadata for %s", entryPath)
			}
			entries = append(entries, lsEntry{
				path:         entryPath,
				info:         info,
				lastModified: info.ModTime().Unix(),
			})
			i++
			if i > maxEntriesPerDir {
				exceeded = true
			}
		}

		sort.SliceStable(entries, func(a, b int) bool {
			return entries[a].lastModified < entries[b].lastModified
		})
		for a, b := 0, len(entries)-1; a < b; a, b = a+1, b-1 {
			entries[a], entries[b] = entries[b], entries[a]
		}

		truncated := false
		for _, entry := range entries {
			if len(result) >= maxLsEntries {
				suffix := ""
				if exceeded {
					suffix = "+"
				}
				prefix = append(prefix, fmt.Sprintf(
					"Directory at %s was truncated (has total %d%s entries)",
					dir.path, len(entries), suffix,
				))
				truncated = true
				break
			}
			result = append(result, formatEntry(entry))

			if entry.info.IsDir() {
				if lsIgnoreDirs[filepath.Base(entry.path)] {
					continue
				}
				queue = append(queue, queued{entry.path, dir.depth + 1})
			}
		}
		if truncated {
			break
		}
	}

	text := strings.Join(prefix, "\n") + "\n" + strings.Join(result, "\n")
	return anvil.TextOutput(text), nil
}

// matchesIgnorePatterns reports whether path matches any of the caller's
// ignore globs, tested against both the full path and the base name.
// Malformed patterns never match.
func (l *Ls) matchesIgnorePatterns(path string) bool {
	for _, pattern := range l.Ignore {
		if ok, err := doublestar.Match(pattern, path); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(pattern, filepath.Base(path)); err == nil && ok {
			return true
		}
	}
	return false
}

func formatFtype(info fs.FileInfo) byte {
	switch {
	case info.Mode()&fs.ModeSymlink != 0:
		return 'l'
	case info.Mode().IsRegular():
		return '-'
	case info.IsDir():
		return 'd'
	default:
		return '-'
	}
}

var _ BuiltInTool = (*Ls)(nil)
