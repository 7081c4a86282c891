package builtin_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/anvil"
	"github.com/fwojciec/anvil/builtin"
	"github.com/fwojciec/anvil/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func outputText(t *testing.T, out anvil.ToolExecutionOutput) string {
	t.Helper()
	require.Len(t, out.Items, 1)
	item, ok := out.Items[0].(anvil.TextItem)
	require.True(t, ok)
	return item.Text
}

func TestLsValidate(t *testing.T) {
	t.Parallel()
	sys := &mock.System{}

	t.Run("accepts a directory", func(t *testing.T) {
		t.Parallel()
		ls := &builtin.Ls{Path: t.TempDir()}
		require.NoError(t, ls.Validate(context.Background(), sys))
	})

	t.Run("rejects a missing path", func(t *testing.T) {
		t.Parallel()
		ls := &builtin.Ls{Path: filepath.Join(t.TempDir(), "missing")}
		err := ls.Validate(context.Background(), sys)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Directory not found")
	})

	t.Run("rejects a file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "file.txt")
		writeFile(t, path, "x")
		ls := &builtin.Ls{Path: path}
		err := ls.Validate(context.Background(), sys)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a directory")
	})
}

func TestLsExecute(t *testing.T) {
	t.Parallel()
	sys := &mock.System{}

	t.Run("lists a flat directory", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "file1.txt"), "content1")
		writeFile(t, filepath.Join(dir, "file2.txt"), "content2")

		ls := &builtin.Ls{Path: dir}
		out, err := ls.Execute(context.Background(), sys)
		require.NoError(t, err)

		text := outputText(t, out)
		assert.Contains(t, text, "file1.txt")
		assert.Contains(t, text, "file2.txt")
	})

	t.Run("depth zero does not recurse", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "root.txt"), "root")
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "subdir"), 0o755))
		writeFile(t, filepath.Join(dir, "subdir", "nested.txt"), "nested")

		ls := &builtin.Ls{Path: dir}
		out, err := ls.Execute(context.Background(), sys)
		require.NoError(t, err)

		text := outputText(t, out)
		assert.Contains(t, text, "root.txt")
		assert.Contains(t, text, "subdir")
		assert.NotContains(t, text, "nested.txt")
	})

	t.Run("recurses to the requested depth", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "root.txt"), "root")
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "subdir"), 0o755))
		writeFile(t, filepath.Join(dir, "subdir", "nested.txt"), "nested")

		depth := 1
		ls := &builtin.Ls{Path: dir, Depth: &depth}
		out, err := ls.Execute(context.Background(), sys)
		require.NoError(t, err)

		text := outputText(t, out)
		assert.Contains(t, text, "root.txt")
		assert.Contains(t, text, "nested.txt")
	})

	t.Run("skips well-known directories when recursing", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "node_modules"), 0o755))
		writeFile(t, filepath.Join(dir, "node_modules", "dep.js"), "x")

		depth := 2
		ls := &builtin.Ls{Path: dir, Depth: &depth}
		out, err := ls.Execute(context.Background(), sys)
		require.NoError(t, err)

		text := outputText(t, out)
		// The directory itself is listed but never descended into.
		assert.Contains(t, text, "node_modules")
		assert.NotContains(t, text, "dep.js")
	})

	t.Run("applies caller ignore globs", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "keep.txt"), "x")
		writeFile(t, filepath.Join(dir, "skip.log"), "x")

		ls := &builtin.Ls{Path: dir, Ignore: []string{"*.log"}}
		out, err := ls.Execute(context.Background(), sys)
		require.NoError(t, err)

		text := outputText(t, out)
		assert.Contains(t, text, "keep.txt")
		assert.NotContains(t, text, "skip.log")
	})

	t.Run("orders entries newest first", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		older := filepath.Join(dir, "older.txt")
		newer := filepath.Join(dir, "newer.txt")
		writeFile(t, older, "x")
		writeFile(t, newer, "x")
		past := time.Now().Add(-24 * time.Hour)
		require.NoError(t, os.Chtimes(older, past, past))

		ls := &builtin.Ls{Path: dir}
		out, err := ls.Execute(context.Background(), sys)
		require.NoError(t, err)

		text := outputText(t, out)
		assert.Less(t, strings.Index(text, "newer.txt"), strings.Index(text, "older.txt"))
	})

	t.Run("truncates the listing at the global cap", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		for i := 0; i < 1010; i++ {
			writeFile(t, filepath.Join(dir, fmt.Sprintf("f%04d.txt", i)), "x")
		}

		ls := &builtin.Ls{Path: dir}
		out, err := ls.Execute(context.Background(), sys)
		require.NoError(t, err)

		text := outputText(t, out)
		assert.Contains(t, text, "was truncated")

		listed := 0
		for _, line := range strings.Split(text, "\n") {
			if strings.HasSuffix(line, ".txt") {
				listed++
			}
		}
		assert.Equal(t, 1000, listed)
	})
}
