package filesystem

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/witd/pkg/errors"
	"github.com/arthur-debert/witd/pkg/logging"
	"github.com/arthur-debert/witd/pkg/types"
	"github.com/gobwas/glob"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Options configures a Collector
type Options struct {
	// Fs is the filesystem to walk. Defaults to the OS filesystem.
	Fs afero.Fs

	// Ignore holds glob patterns. A pattern is matched against the path
	// relative to the root (with "/" separators) and against the base name.
	// Matching directories are not descended into.
	Ignore []string

	Logger *zerolog.Logger
}

// Collector lists the files beneath a root
type Collector struct {
	fs       afero.Fs
	patterns []string
	ignore   []glob.Glob
	logger   zerolog.Logger
}

// NewCollector creates a Collector, compiling the ignore patterns
func NewCollector(opts Options) (*Collector, error) {
	c := &Collector{
		fs:       opts.Fs,
		patterns: opts.Ignore,
	}
	if c.fs == nil {
		c.fs = afero.NewOsFs()
	}
	if opts.Logger != nil {
		c.logger = *opts.Logger
	} else {
		c.logger = logging.GetLogger("collector")
	}

	for _, pattern := range opts.Ignore {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrScanPattern, "invalid ignore pattern %q", pattern)
		}
		c.ignore = append(c.ignore, g)
	}

	return c, nil
}

// Collect walks root and returns a descriptor for every file beneath it
func (c *Collector) Collect(root string) ([]types.File, error) {
	var files []types.File

	err := afero.Walk(c.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			c.logger.Trace().Err(err).Str("path", path).Msg("Skipping unreadable entry")
			return nil
		}

		if path != root && c.ignored(root, path) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() {
			return nil
		}

		files = append(files, Describe(path, info))
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrScanRoot, "cannot walk %s", root)
	}

	c.logger.Trace().
		Str("root", root).
		Int("files", len(files)).
		Msg("Collected files")

	return files, nil
}

// ignored reports whether path matches any ignore pattern
func (c *Collector) ignored(root, path string) bool {
	if len(c.ignore) == 0 {
		return false
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)
	base := filepath.Base(path)

	for _, g := range c.ignore {
		if g.Match(rel) || g.Match(base) {
			return true
		}
	}
	return false
}

// Describe builds a descriptor from a path and its file info
func Describe(path string, info os.FileInfo) types.File {
	name := info.Name()
	return types.File{
		Path:       path,
		Name:       name,
		Directory:  filepath.Dir(path),
		Extension:  Extension(name),
		CreatedAt:  createdAt(info),
		ModifiedAt: info.ModTime(),
	}
}

// Extension returns the extension of name without the leading dot.
// A dotfile such as ".bashrc" has no extension.
func Extension(name string) string {
	ext := filepath.Ext(name)
	if ext == name {
		return ""
	}
	return strings.TrimPrefix(ext, ".")
}
