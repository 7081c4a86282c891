package anvil_test

import (
	"testing"

	"github.com/fwojciec/anvil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltInToolNames(t *testing.T) {
	t.Parallel()

	t.Run("returns all names in stable order", func(t *testing.T) {
		t.Parallel()
		names := anvil.BuiltInToolNames()
		require.Len(t, names, 5)
		assert.Equal(t, []anvil.BuiltInToolName{
			anvil.FsRead, anvil.FsWrite, anvil.ExecuteCmd, anvil.ImageRead, anvil.Ls,
		}, names)
	})

	t.Run("every declared name is valid", func(t *testing.T) {
		t.Parallel()
		for _, name := range anvil.BuiltInToolNames() {
			assert.True(t, name.Valid(), "name %q", name)
		}
	})

	t.Run("unknown names are invalid", func(t *testing.T) {
		t.Parallel()
		assert.False(t, anvil.BuiltInToolName("grep").Valid())
		assert.False(t, anvil.BuiltInToolName("").Valid())
	})
}

func TestCanonicalToolName(t *testing.T) {
	t.Parallel()

	t.Run("built-in variant", func(t *testing.T) {
		t.Parallel()
		name := anvil.BuiltIn(anvil.FsWrite)

		builtIn, ok := name.IsBuiltIn()
		require.True(t, ok)
		assert.Equal(t, anvil.FsWrite, builtIn)

		_, _, isMCP := name.IsMCP()
		assert.False(t, isMCP)
		assert.False(t, name.IsAgent())
		assert.Equal(t, "fsWrite", name.String())
	})

	t.Run("mcp variant carries the server and tool pair", func(t *testing.T) {
		t.Parallel()
		name := anvil.MCP("github", "search_issues")

		server, tool, ok := name.IsMCP()
		require.True(t, ok)
		assert.Equal(t, "github", server)
		assert.Equal(t, "search_issues", tool)
		assert.Equal(t, "github___search_issues", name.String())
	})

	t.Run("agent variant is reserved", func(t *testing.T) {
		t.Parallel()
		name := anvil.Agent("reviewer")
		assert.True(t, name.IsAgent())
		assert.Equal(t, "reviewer", name.String())
	})
}
