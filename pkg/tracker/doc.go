// Package tracker decides which observed files have changed since the last
// cycle and dispatches the rule's command for them.
//
// A Tracker is created once per rule and keeps its store across cycles. A
// path is eligible when it was never seen, or when its stored descriptor is
// strictly older on either timestamp axis. Eligible descriptors replace the
// stored ones; nothing else ever does, so the store never goes backwards.
//
// In file mode every eligible descriptor gets its own dispatch, in discovery
// order. In directory mode a cycle with any eligible descriptor produces a
// single dispatch with no file context.
package tracker
