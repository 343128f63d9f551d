// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Isolated on-disk environments for collector and CLI tests

package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// FileTree maps slash separated paths, relative to the environment root, to
// file contents
type FileTree map[string]string

// TestEnvironment is a temp directory to watch plus private XDG homes, so
// neither a user config nor the user log file is touched
type TestEnvironment struct {
	Root       string
	ConfigHome string
	StateHome  string

	t *testing.T
}

// NewTestEnvironment creates the directories and points the XDG variables
// at them for the duration of the test. NO_COLOR is set so output is plain.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{
		Root:       t.TempDir(),
		ConfigHome: t.TempDir(),
		StateHome:  t.TempDir(),
		t:          t,
	}
	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	t.Setenv("NO_COLOR", "1")

	return env
}

// Path returns the absolute path of rel inside the root
func (env *TestEnvironment) Path(rel string) string {
	return filepath.Join(env.Root, filepath.FromSlash(rel))
}

// WithFileTree creates every file of tree below the root, in path order
func (env *TestEnvironment) WithFileTree(tree FileTree) *TestEnvironment {
	env.t.Helper()

	paths := make([]string, 0, len(tree))
	for p := range tree {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, p := range paths {
		full := env.Path(p)
		require.NoError(env.t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(env.t, os.WriteFile(full, []byte(tree[p]), 0644))
	}
	return env
}

// Touch moves the modification time of rel forward by d
func (env *TestEnvironment) Touch(rel string, d time.Duration) {
	env.t.Helper()

	full := env.Path(rel)
	info, err := os.Stat(full)
	require.NoError(env.t, err)
	mtime := info.ModTime().Add(d)
	require.NoError(env.t, os.Chtimes(full, mtime, mtime))
}

// WriteConfig writes content as the default config file
func (env *TestEnvironment) WriteConfig(content string) string {
	env.t.Helper()

	path := filepath.Join(env.ConfigHome, "witd", "config.toml")
	require.NoError(env.t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(env.t, os.WriteFile(path, []byte(content), 0644))
	return path
}
