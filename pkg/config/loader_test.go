package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/witd/pkg/config"
	"github.com/arthur-debert/witd/pkg/errors"
	"github.com/arthur-debert/witd/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the XDG config home at an empty directory so a user config
// never leaks into a test
func isolate(t *testing.T) string {
	t.Helper()
	return testutil.NewTestEnvironment(t).ConfigHome
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := config.Load(config.LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 500*time.Millisecond, cfg.Watch.Interval)
	assert.Equal(t, time.Duration(0), cfg.Watch.Timeout)
	assert.Equal(t, []string{".git", "*.swp", "*~"}, cfg.Watch.Ignore)
	assert.False(t, cfg.Watch.DryRun)
	assert.Equal(t, "auto", cfg.Output.Format)
	assert.Empty(t, cfg.Rules)
}

func TestLoad_DefaultPathIsUsedWhenPresent(t *testing.T) {
	home := isolate(t)
	writeConfig(t, filepath.Join(home, "witd", "config.toml"), `
rules = ["directory ./src do make end"]

[watch]
interval = "2s"
`)

	assert.Equal(t, filepath.Join(home, "witd", "config.toml"), config.DefaultPath())

	cfg, err := config.Load(config.LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.Watch.Interval)
	assert.Equal(t, []string{"directory ./src do make end"}, cfg.Rules)
	assert.Equal(t, "auto", cfg.Output.Format, "unset keys keep their defaults")
}

func TestLoad_ExplicitPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	writeConfig(t, path, `
[watch]
timeout = "1m"
ignore = ["node_modules"]
dry_run = true

[output]
format = "json"
`)

	cfg, err := config.Load(config.LoadOptions{Path: path})
	require.NoError(t, err)

	assert.Equal(t, time.Minute, cfg.Watch.Timeout)
	assert.Equal(t, []string{"node_modules"}, cfg.Watch.Ignore)
	assert.True(t, cfg.Watch.DryRun)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoad_Environment(t *testing.T) {
	isolate(t)
	t.Setenv("WITD_WATCH_INTERVAL", "3s")
	t.Setenv("WITD_WATCH_DRY_RUN", "true")
	t.Setenv("WITD_WATCH_IGNORE", "a,b")
	t.Setenv("WITD_OUTPUT_FORMAT", "text")

	cfg, err := config.Load(config.LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, 3*time.Second, cfg.Watch.Interval)
	assert.True(t, cfg.Watch.DryRun)
	assert.Equal(t, []string{"a", "b"}, cfg.Watch.Ignore)
	assert.Equal(t, "text", cfg.Output.Format)
}

func TestLoad_OverridesWin(t *testing.T) {
	isolate(t)
	t.Setenv("WITD_WATCH_INTERVAL", "3s")

	cfg, err := config.Load(config.LoadOptions{Overrides: map[string]interface{}{
		config.KeyWatchInterval: "10ms",
		config.KeyWatchTimeout:  5 * time.Second,
	}})
	require.NoError(t, err)

	assert.Equal(t, 10*time.Millisecond, cfg.Watch.Interval)
	assert.Equal(t, 5*time.Second, cfg.Watch.Timeout)
}

func TestLoad_Errors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	broken := filepath.Join(dir, "broken.toml")
	writeConfig(t, broken, "[watch\ninterval = ")

	badFormat := filepath.Join(dir, "format.toml")
	writeConfig(t, badFormat, "[output]\nformat = \"xml\"\n")

	badDuration := filepath.Join(dir, "duration.toml")
	writeConfig(t, badDuration, "[watch]\ninterval = \"soon\"\n")

	negative := filepath.Join(dir, "negative.toml")
	writeConfig(t, negative, "[watch]\ninterval = \"-1s\"\n")

	tests := []struct {
		name string
		path string
		code errors.ErrorCode
	}{
		{"missing file", filepath.Join(dir, "nope.toml"), errors.ErrConfigLoad},
		{"invalid toml", broken, errors.ErrConfigParse},
		{"unknown format", badFormat, errors.ErrConfigValid},
		{"bad duration", badDuration, errors.ErrConfigParse},
		{"negative interval", negative, errors.ErrConfigValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(config.LoadOptions{Path: tt.path})
			require.Error(t, err)
			testutil.AssertErrorCode(t, err, tt.code, "got %v", err)
		})
	}
}

func TestValidate_ReportsField(t *testing.T) {
	cfg := &config.Config{Output: config.Output{Format: "yaml"}}

	err := config.Validate(cfg)
	require.Error(t, err)

	details := errors.GetErrorDetails(err)
	assert.Equal(t, "oneof", details["Config.Output.Format"])
}
