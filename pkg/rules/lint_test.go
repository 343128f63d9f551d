package rules_test

import (
	"testing"

	"github.com/arthur-debert/witd/pkg/rules"
	"github.com/arthur-debert/witd/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLint(t *testing.T) {
	t.Run("file rule accepts all tokens", func(t *testing.T) {
		rule := types.Rule{RootPath: ".", RunMode: types.RunModeFile, CommandTemplate: "echo DIR EXT NAME PATH"}
		assert.Empty(t, rules.Lint(rule))
	})

	t.Run("directory rule flags file tokens", func(t *testing.T) {
		rule := types.Rule{RootPath: ".", RunMode: types.RunModeDirectory, CommandTemplate: "echo DIR NAME PATH"}
		warnings := rules.Lint(rule)

		require.Len(t, warnings, 2)
		assert.Equal(t, types.ScriptOptionName, warnings[0].Option)
		assert.Equal(t, types.ScriptOptionPath, warnings[1].Option)
		assert.Contains(t, warnings[0].String(), "NAME is not substituted in directory mode")
	})

	t.Run("lint does not change parsing", func(t *testing.T) {
		rule, err := rules.Parse("directory ./src do echo NAME end")
		require.NoError(t, err)
		assert.Len(t, rules.Lint(rule), 1)
	})
}

func TestExamples(t *testing.T) {
	assert.Equal(t, []string{
		"directory ./src do echo DIR end",
		"foreach file in ./src do echo DIR|EXT|NAME|PATH end",
	}, rules.Examples())
}
