// Package output renders what witd reports to the operator: parse errors
// with the rule examples, parsed rules with their lint warnings, cycle
// summaries and dispatch failures.
//
// A Renderer writes in one of three formats. Terminal output applies the
// lipgloss styles from pkg/output/styles, text output is the same layout
// without styling, and JSON output writes one object per line with an
// "event" field naming what happened.
package output
