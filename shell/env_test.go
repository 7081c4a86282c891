package shell_test

import (
	"testing"

	"github.com/fwojciec/anvil/shell"
	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Parallel()

	lookup := func(env map[string]string) func(string) (string, bool) {
		return func(name string) (string, bool) {
			v, ok := env[name]
			return v, ok
		}
	}

	t.Run("substitutes known variables", func(t *testing.T) {
		t.Parallel()
		vars := map[string]string{
			"KEY1": "Value is ${env:TEST_VAR}",
			"KEY2": "No substitution",
		}
		shell.ExpandEnv(vars, lookup(map[string]string{"TEST_VAR": "test_value"}))
		assert.Equal(t, "Value is test_value", vars["KEY1"])
		assert.Equal(t, "No substitution", vars["KEY2"])
	})

	t.Run("unknown variables become a visible literal", func(t *testing.T) {
		t.Parallel()
		vars := map[string]string{"KEY": "before ${env:MISSING} after"}
		shell.ExpandEnv(vars, lookup(nil))
		assert.Equal(t, "before ${MISSING} after", vars["KEY"])
	})

	t.Run("replaces every occurrence in a value", func(t *testing.T) {
		t.Parallel()
		vars := map[string]string{"KEY": "${env:A}/${env:A}/${env:B}"}
		shell.ExpandEnv(vars, lookup(map[string]string{"A": "x", "B": "y"}))
		assert.Equal(t, "x/x/y", vars["KEY"])
	})
}

func TestUserAgentEnv(t *testing.T) {
	t.Parallel()
	env := shell.UserAgentEnv()
	assert.Equal(t, "anvil", env["ANVIL_USER_AGENT"])
	assert.NotEmpty(t, env["ANVIL_USER_AGENT_VERSION"])
}
