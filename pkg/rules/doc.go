// Package rules parses witd rules and renders their command templates.
//
// # Grammar
//
// A rule names a run mode, a root path and a command template:
//
//	directory <path> do <template> end
//	foreach file in <path> do <template> end
//
// The path is a single whitespace-delimited token taken literally. The
// template is everything between "do" and the first standalone "end" token,
// preserved verbatim. Anything after "end" is ignored. Several rules can be
// given at once by separating them with ";;".
//
// # Parsing
//
// Parse is a single pass over whitespace tokens driven by an explicit state
// table (see Transition). Every failing state maps to exactly one ErrorKind.
//
// # Substitution
//
// Render replaces the tokens DIR, EXT, NAME and PATH in a template. A
// directory rule has no file context, so only DIR is replaced (with the
// rule's root path). Tokens are case sensitive and cannot be escaped.
package rules
