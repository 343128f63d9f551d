package types

import "time"

// File is a snapshot of a file's metadata at observation time.
// Path is the unique identifier used by the tracker.
type File struct {
	Path       string
	Name       string
	Directory  string
	Extension  string
	CreatedAt  time.Time
	ModifiedAt time.Time
}

// IsOlder reports whether f is older than other on at least one timestamp axis.
func (f File) IsOlder(other File) bool {
	return f.CreatedAt.Before(other.CreatedAt) || f.ModifiedAt.Before(other.ModifiedAt)
}
