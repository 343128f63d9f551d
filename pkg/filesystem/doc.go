// Package filesystem collects file descriptors for a watched root.
//
// The Collector walks an afero filesystem (the OS by default, an in-memory
// one in tests) and returns one types.File per non-directory entry, in
// lexical walk order. Entries that cannot be read are skipped silently;
// only a root that cannot be walked is an error.
package filesystem
