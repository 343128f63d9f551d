// Package executor runs rendered command lines as child processes.
//
// A command line is split on whitespace into a program and its arguments;
// there is no quoting or escaping. The child's standard output is captured
// and then surfaced to the operator. Each dispatch blocks until the child
// exits. A failure affects only that dispatch: the caller decides whether
// to keep going, and the tracker always does.
//
// Dispatcher is the narrow capability the tracker depends on, so tests can
// swap in a recording double instead of spawning processes.
package executor
