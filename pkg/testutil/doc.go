// Package testutil provides utilities for testing witd components.
//
// Key components:
//   - RecordingDispatcher: executor.Dispatcher double that records command lines
//   - MockDispatcher: testify/mock based dispatcher for expectation-style tests
//   - File builders: descriptors with explicit timestamps
//   - Memory filesystem helpers: afero MemMapFs setup with controlled mtimes
//
// Usage guidelines:
//   - Tracker and watch tests never spawn processes; use a dispatcher double
//   - Collector tests use an in-memory filesystem unless they test platform stat
//   - All test data should be defined inline, not in external files
package testutil
