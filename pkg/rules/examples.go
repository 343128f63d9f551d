package rules

import (
	"github.com/arthur-debert/witd/pkg/types"
)

// ExampleRootPath is the root path used by the canonical examples
const ExampleRootPath = "./src"

// Examples returns one canonical rule per run mode, in RunModeValues order.
// Each example lists the mode's allowed tokens joined by "|".
func Examples() []string {
	modes := types.RunModeValues()
	examples := make([]string, 0, len(modes))
	for _, mode := range modes {
		examples = append(examples, Example(mode))
	}
	return examples
}

// Example returns the canonical rule for a single run mode
func Example(mode types.RunMode) string {
	rule := types.Rule{
		RootPath:        ExampleRootPath,
		RunMode:         mode,
		CommandTemplate: "echo " + types.JoinTokens(mode.AllowedOptions(), "|"),
	}
	return rule.String()
}
