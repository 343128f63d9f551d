package rules

import (
	"strings"
	"unicode"

	"github.com/arthur-debert/witd/pkg/types"
)

// token is a whitespace-delimited word with its byte offsets in the input
type token struct {
	text       string
	start, end int
}

// tokenize splits s on unicode whitespace, keeping byte offsets
func tokenize(s string) []token {
	var tokens []token
	start := -1
	for i, r := range s {
		if unicode.IsSpace(r) {
			if start >= 0 {
				tokens = append(tokens, token{text: s[start:i], start: start, end: i})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, token{text: s[start:], start: start, end: len(s)})
	}
	return tokens
}

// Parse turns a raw rule line into a Rule.
// The returned error is always a *ParseError.
func Parse(raw string) (types.Rule, error) {
	if strings.TrimSpace(raw) == "" {
		return types.Rule{}, newParseError(KindEmptyInput, raw)
	}

	var (
		rule      types.Rule
		state     = StateStart
		bodyStart int
		bodyEnd   int
	)

	for _, tok := range tokenize(raw) {
		class := Classify(tok.text)
		next, kind := Transition(state, class)
		if kind != KindNone {
			return types.Rule{}, newParseError(kind, raw)
		}

		switch {
		case state == StateStart && next == StatePath:
			rule.RunMode = types.RunModeDirectory
		case state == StateForeachFile && next == StatePath:
			rule.RunMode = types.RunModeFile
		case state == StatePath:
			rule.RootPath = tok.text
		case state == StateDo && next == StateBody:
			bodyStart = tok.end
		case state == StateBody && next == StateDone:
			bodyEnd = tok.start
		}

		state = next
		if state == StateDone {
			break
		}
	}

	if _, kind := Transition(state, ClassEOF); kind != KindNone {
		return types.Rule{}, newParseError(kind, raw)
	}

	rule.CommandTemplate = strings.TrimSpace(raw[bodyStart:bodyEnd])
	return rule, nil
}

// ParseAll parses each input in order and stops at the first failure
func ParseAll(inputs []string) ([]types.Rule, error) {
	rules := make([]types.Rule, 0, len(inputs))
	for _, input := range inputs {
		rule, err := Parse(input)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// RuleSeparator separates several rules given in a single input
const RuleSeparator = ";;"

// SplitRules splits input on RuleSeparator, trimming each part and
// dropping empty ones. Input without a separator is returned as is.
func SplitRules(input string) []string {
	if !strings.Contains(input, RuleSeparator) {
		return []string{input}
	}

	var parts []string
	for _, part := range strings.Split(input, RuleSeparator) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		parts = append(parts, part)
	}
	return parts
}
