package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/witd/pkg/filesystem"
	"github.com/arthur-debert/witd/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// Epoch is a fixed base time for descriptors built in tests
var Epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// NewFile builds a descriptor for path with both timestamps at Epoch
func NewFile(path string) types.File {
	name := filepath.Base(path)
	return types.File{
		Path:       path,
		Name:       name,
		Directory:  filepath.Dir(path),
		Extension:  filesystem.Extension(name),
		CreatedAt:  Epoch,
		ModifiedAt: Epoch,
	}
}

// Touched returns f with ModifiedAt moved by d
func Touched(f types.File, d time.Duration) types.File {
	f.ModifiedAt = f.ModifiedAt.Add(d)
	return f
}

// Recreated returns f with CreatedAt moved by d
func Recreated(f types.File, d time.Duration) types.File {
	f.CreatedAt = f.CreatedAt.Add(d)
	return f
}

// NewMemFS returns an empty in-memory filesystem
func NewMemFS() afero.Fs {
	return afero.NewMemMapFs()
}

// WriteFileAt creates path on fs (with parents) and sets its mtime
func WriteFileAt(t *testing.T, fs afero.Fs, path string, mtime time.Time) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, afero.WriteFile(fs, path, []byte(path), 0644))
	require.NoError(t, fs.Chtimes(path, mtime, mtime))
}
