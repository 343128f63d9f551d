package filesystem_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/witd/pkg/errors"
	"github.com/arthur-debert/witd/pkg/filesystem"
	"github.com/arthur-debert/witd/pkg/types"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemCollector(t *testing.T, ignore ...string) (*filesystem.Collector, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	logger := zerolog.Nop()
	c, err := filesystem.NewCollector(filesystem.Options{Fs: fs, Ignore: ignore, Logger: &logger})
	require.NoError(t, err)
	return c, fs
}

func writeFile(t *testing.T, fs afero.Fs, path string, mtime time.Time) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, afero.WriteFile(fs, path, []byte("x"), 0644))
	require.NoError(t, fs.Chtimes(path, mtime, mtime))
}

func paths(files []types.File) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Path
	}
	return out
}

func TestCollect_ListsFilesRecursively(t *testing.T) {
	c, fs := newMemCollector(t)
	mtime := time.Unix(1_700_000_000, 0)
	writeFile(t, fs, "/w/b.txt", mtime)
	writeFile(t, fs, "/w/a.go", mtime)
	writeFile(t, fs, "/w/sub/deep/c.md", mtime)
	require.NoError(t, fs.MkdirAll("/w/empty", 0755))

	files, err := c.Collect("/w")
	require.NoError(t, err)

	assert.Equal(t, []string{"/w/a.go", "/w/b.txt", "/w/sub/deep/c.md"}, paths(files))
}

func TestCollect_Descriptor(t *testing.T) {
	c, fs := newMemCollector(t)
	mtime := time.Unix(1_700_000_000, 5)
	writeFile(t, fs, "/w/sub/report.tar.gz", mtime)

	files, err := c.Collect("/w")
	require.NoError(t, err)
	require.Len(t, files, 1)

	f := files[0]
	assert.Equal(t, "/w/sub/report.tar.gz", f.Path)
	assert.Equal(t, "report.tar.gz", f.Name)
	assert.Equal(t, "/w/sub", f.Directory)
	assert.Equal(t, "gz", f.Extension)
	assert.True(t, f.ModifiedAt.Equal(mtime))
	assert.False(t, f.CreatedAt.IsZero())
}

func TestCollect_MissingRoot(t *testing.T) {
	c, _ := newMemCollector(t)

	_, err := c.Collect("/does/not/exist")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrScanRoot))
}

func TestCollect_Ignore(t *testing.T) {
	c, fs := newMemCollector(t, "*.swp", ".git", "build/**")
	mtime := time.Unix(1_700_000_000, 0)
	writeFile(t, fs, "/w/main.go", mtime)
	writeFile(t, fs, "/w/.main.go.swp", mtime)
	writeFile(t, fs, "/w/.git/HEAD", mtime)
	writeFile(t, fs, "/w/build/out/bin", mtime)
	writeFile(t, fs, "/w/pkg/x.swp", mtime)

	files, err := c.Collect("/w")
	require.NoError(t, err)

	assert.Equal(t, []string{"/w/main.go"}, paths(files))
}

func TestNewCollector_InvalidPattern(t *testing.T) {
	_, err := filesystem.NewCollector(filesystem.Options{Fs: afero.NewMemMapFs(), Ignore: []string{"[unclosed"}})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrScanPattern))
}

func TestCollect_RealFilesystem(t *testing.T) {
	dir := t.TempDir()
	logger := zerolog.Nop()
	c, err := filesystem.NewCollector(filesystem.Options{Logger: &logger})
	require.NoError(t, err)

	fs := afero.NewOsFs()
	writeFile(t, fs, filepath.Join(dir, "one.txt"), time.Now())

	files, err := c.Collect(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "txt", files[0].Extension)
	assert.False(t, files[0].CreatedAt.IsZero())
}

func TestExtension(t *testing.T) {
	tests := map[string]string{
		"a.txt":          "txt",
		"archive.tar.gz": "gz",
		"Makefile":       "",
		".bashrc":        "",
		".config.toml":   "toml",
		"trailing.":      "",
	}
	for name, want := range tests {
		assert.Equal(t, want, filesystem.Extension(name), name)
	}
}
