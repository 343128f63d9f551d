// Package types defines the core data types shared across witd.
// This includes the File descriptor produced by the collector, the RunMode
// and ScriptOption enums that shape a rule, the parser Keywords, and the
// immutable Rule itself.
package types
