package types

import "strings"

// ScriptOption is a substitution token recognized in a command template
type ScriptOption int

const (
	ScriptOptionDirectory ScriptOption = iota
	ScriptOptionExt
	ScriptOptionName
	ScriptOptionPath
)

// ScriptOptionValues returns all script options in display order
func ScriptOptionValues() []ScriptOption {
	return []ScriptOption{
		ScriptOptionDirectory,
		ScriptOptionExt,
		ScriptOptionName,
		ScriptOptionPath,
	}
}

// Token returns the literal text substituted in templates
func (o ScriptOption) Token() string {
	switch o {
	case ScriptOptionDirectory:
		return "DIR"
	case ScriptOptionExt:
		return "EXT"
	case ScriptOptionName:
		return "NAME"
	case ScriptOptionPath:
		return "PATH"
	default:
		return ""
	}
}

func (o ScriptOption) String() string {
	return o.Token()
}

// JoinTokens joins the tokens of opts with sep
func JoinTokens(opts []ScriptOption, sep string) string {
	tokens := make([]string, len(opts))
	for i, o := range opts {
		tokens[i] = o.Token()
	}
	return strings.Join(tokens, sep)
}
