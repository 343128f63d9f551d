package types

import "strings"

// Rule describes what to watch, how to group changes and what to run.
// A Rule is immutable once parsed.
type Rule struct {
	RootPath        string  `json:"root_path"`
	RunMode         RunMode `json:"run_mode"`
	CommandTemplate string  `json:"command"`
}

// String renders the rule back into the grammar it was parsed from
func (r Rule) String() string {
	var b strings.Builder
	switch r.RunMode {
	case RunModeFile:
		b.WriteString("foreach file in ")
	default:
		b.WriteString("directory ")
	}
	b.WriteString(r.RootPath)
	b.WriteString(" ")
	b.WriteString(KeywordDo.String())
	b.WriteString(" ")
	if r.CommandTemplate != "" {
		b.WriteString(r.CommandTemplate)
		b.WriteString(" ")
	}
	b.WriteString(KeywordEnd.String())
	return b.String()
}
