package builtin_test

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/fwojciec/anvil"
	"github.com/fwojciec/anvil/builtin"
	"github.com/fwojciec/anvil/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutorDispatch(t *testing.T) {
	t.Parallel()

	t.Run("runs a built-in tool end to end", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "out.txt")
		e := builtin.NewExecutor(builtin.WithSystem(&mock.System{}))

		args := json.RawMessage(fmt.Sprintf(`{"command":"create","path":%q,"content":"hi"}`, path))
		out, err := e.Dispatch(context.Background(), anvil.BuiltIn(anvil.FsWrite), args)
		require.NoError(t, err)
		require.Len(t, out.Items, 1)

		assert.Equal(t, "hi", readFile(t, path))
	})

	t.Run("parse failures surface before execution", func(t *testing.T) {
		t.Parallel()
		e := builtin.NewExecutor(builtin.WithSystem(&mock.System{}))

		_, err := e.Dispatch(context.Background(), anvil.BuiltIn(anvil.FsWrite), json.RawMessage(`{"command":"create"}`))

		var parseErr *anvil.ParseError
		require.ErrorAs(t, err, &parseErr)
	})

	t.Run("validation failures stop execution", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "missing.txt")
		e := builtin.NewExecutor(builtin.WithSystem(&mock.System{}))

		args := json.RawMessage(fmt.Sprintf(`{"command":"strReplace","path":%q,"oldStr":"a","newStr":"b"}`, path))
		_, err := e.Dispatch(context.Background(), anvil.BuiltIn(anvil.FsWrite), args)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must exist")
	})

	t.Run("tracks write statistics per file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "tracked.txt")
		e := builtin.NewExecutor(builtin.WithSystem(&mock.System{}))

		args := json.RawMessage(fmt.Sprintf("{\"command\":\"create\",\"path\":%q,\"content\":\"a\\nb\\nc\"}", path))
		_, err := e.Dispatch(context.Background(), anvil.BuiltIn(anvil.FsWrite), args)
		require.NoError(t, err)

		assert.Equal(t, "a\nb\nc", readFile(t, path))

		tr := e.State().Tracker(path)
		assert.False(t, tr.IsFirstWrite)
		assert.Equal(t, 0, tr.BeforeWriteLines)
		assert.Equal(t, 3, tr.AfterWriteLines)
		assert.Equal(t, 3, tr.LinesAddedByAgent)
	})

	t.Run("forwards MCP tools", func(t *testing.T) {
		t.Parallel()
		fwd := &mock.Forwarder{
			ForwardFn: func(ctx context.Context, server, tool string, params map[string]any) (anvil.ToolExecutionOutput, error) {
				assert.Equal(t, "search", server)
				assert.Equal(t, "lookup", tool)
				assert.Equal(t, "hello", params["query"])
				return anvil.TextOutput("found"), nil
			},
		}
		e := builtin.NewExecutor(builtin.WithSystem(&mock.System{}), builtin.WithForwarder(fwd))

		out, err := e.Dispatch(context.Background(), anvil.MCP("search", "lookup"), json.RawMessage(`{"query":"hello"}`))
		require.NoError(t, err)
		assert.Equal(t, "found", outputText(t, out))
	})

	t.Run("MCP without a forwarder fails", func(t *testing.T) {
		t.Parallel()
		e := builtin.NewExecutor(builtin.WithSystem(&mock.System{}))

		_, err := e.Dispatch(context.Background(), anvil.MCP("search", "lookup"), json.RawMessage(`{}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no forwarder")
	})
}
