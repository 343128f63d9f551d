// Package watch runs the poll loop: collect each rule's root, hand the
// descriptors to the rule's tracker, pause, repeat.
package watch
