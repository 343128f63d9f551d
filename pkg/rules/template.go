package rules

import (
	"strings"

	"github.com/arthur-debert/witd/pkg/types"
)

// Render substitutes the script option tokens of template.
//
// With a file every token is replaced in a single pass, so a value that
// happens to contain token text is never expanded again. Without a file
// (directory dispatch) only DIR is replaced, with rootPath; EXT, NAME and
// PATH are left as they are.
func Render(template string, file *types.File, rootPath string) string {
	if file == nil {
		return strings.ReplaceAll(template, types.ScriptOptionDirectory.Token(), rootPath)
	}

	r := strings.NewReplacer(
		types.ScriptOptionPath.Token(), file.Path,
		types.ScriptOptionName.Token(), file.Name,
		types.ScriptOptionExt.Token(), file.Extension,
		types.ScriptOptionDirectory.Token(), file.Directory,
	)
	return r.Replace(template)
}

// RenderRule renders the rule's command template for an optional file
func RenderRule(rule types.Rule, file *types.File) string {
	return Render(rule.CommandTemplate, file, rule.RootPath)
}

// UsedOptions returns the script options that appear in template, in
// ScriptOptionValues order
func UsedOptions(template string) []types.ScriptOption {
	var used []types.ScriptOption
	for _, opt := range types.ScriptOptionValues() {
		if strings.Contains(template, opt.Token()) {
			used = append(used, opt)
		}
	}
	return used
}
