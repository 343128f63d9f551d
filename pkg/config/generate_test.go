package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/arthur-debert/witd/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_LoadsBack(t *testing.T) {
	isolate(t)
	want := &config.Config{
		Rules: []string{`foreach file in ./src do echo "PATH" end`},
		Watch: config.Watch{
			Interval: 2 * time.Second,
			Timeout:  time.Minute,
			Ignore:   []string{"vendor"},
			DryRun:   true,
		},
		Output: config.Output{Format: "text"},
	}

	content, err := config.Generate(want)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "# witd configuration"))

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, content, 0644))

	got, err := config.Load(config.LoadOptions{Path: path})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGenerateConfigContent_CommentsValues(t *testing.T) {
	isolate(t)
	defaults, err := config.Load(config.LoadOptions{})
	require.NoError(t, err)

	content, err := config.GenerateConfigContent(defaults)
	require.NoError(t, err)

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "[") {
			continue
		}
		assert.True(t, strings.HasPrefix(trimmed, "#"), "line %q should be commented", line)
	}
	assert.Contains(t, content, "[watch]")
	assert.Regexp(t, `(?m)^# interval = .500ms.$`, content)
}

func TestDefaultsContent(t *testing.T) {
	assert.Contains(t, config.DefaultsContent(), "[watch]")
}
