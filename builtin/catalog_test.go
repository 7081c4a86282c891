package builtin_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/anvil"
	"github.com/fwojciec/anvil/builtin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	t.Parallel()

	names := builtin.Names()
	require.Len(t, names, len(anvil.BuiltInToolNames()))
	for i, n := range anvil.BuiltInToolNames() {
		assert.Equal(t, anvil.BuiltIn(n), names[i])
	}
}

func TestSpecFor(t *testing.T) {
	t.Parallel()

	t.Run("every tool has a well-formed spec", func(t *testing.T) {
		t.Parallel()
		for _, name := range anvil.BuiltInToolNames() {
			spec := builtin.SpecFor(name)
			assert.Equal(t, string(name), spec.Name)
			assert.NotEmpty(t, spec.Description)

			var schema map[string]any
			require.NoError(t, json.Unmarshal(spec.InputSchema, &schema), "schema for %s", name)
			assert.Equal(t, "object", schema["type"], "schema for %s", name)
		}
	})

	t.Run("imageRead lists the supported formats", func(t *testing.T) {
		t.Parallel()
		spec := builtin.SpecFor(anvil.ImageRead)
		assert.Contains(t, spec.Description, "png, jpeg, gif, webp")
	})

	t.Run("unknown name panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { builtin.SpecFor(anvil.BuiltInToolName("nope")) })
	})
}
