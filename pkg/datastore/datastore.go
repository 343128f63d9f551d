package datastore

import "github.com/arthur-debert/witd/pkg/types"

// Store maps a file path to the last descriptor a tracker accepted for it.
type Store interface {
	// Get returns the descriptor stored for path, if any.
	Get(path string) (types.File, bool)

	// Put stores file under file.Path, replacing any previous entry.
	// Callers decide whether the replacement is allowed.
	Put(file types.File)

	// Len returns the number of tracked paths.
	Len() int
}

// MemoryStore is a map-backed Store. It is not safe for concurrent use;
// the tracker that owns it is single threaded.
type MemoryStore struct {
	files map[string]types.File
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{files: make(map[string]types.File)}
}

func (s *MemoryStore) Get(path string) (types.File, bool) {
	f, ok := s.files[path]
	return f, ok
}

func (s *MemoryStore) Put(file types.File) {
	s.files[file.Path] = file
}

func (s *MemoryStore) Len() int {
	return len(s.files)
}

// Paths returns the tracked paths in no particular order
func (s *MemoryStore) Paths() []string {
	paths := make([]string, 0, len(s.files))
	for p := range s.files {
		paths = append(paths, p)
	}
	return paths
}
