package rules

import (
	"fmt"

	"github.com/arthur-debert/witd/pkg/types"
)

// Warning is a non-blocking remark about a parsed rule
type Warning struct {
	Option  types.ScriptOption
	Message string
}

func (w Warning) String() string {
	return w.Message
}

// Lint reports template tokens the rule's run mode does not substitute.
// A directory rule has no file context, so EXT, NAME and PATH stay literal.
// Lint never rejects a rule.
func Lint(rule types.Rule) []Warning {
	var warnings []Warning
	for _, opt := range UsedOptions(rule.CommandTemplate) {
		if rule.RunMode.Allows(opt) {
			continue
		}
		warnings = append(warnings, Warning{
			Option: opt,
			Message: fmt.Sprintf("%s is not substituted in %s mode and will be passed through as is",
				opt.Token(), rule.RunMode),
		})
	}
	return warnings
}
