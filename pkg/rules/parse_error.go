package rules

import (
	"fmt"

	"github.com/arthur-debert/witd/pkg/types"
)

// ErrorKind identifies why a rule could not be parsed
type ErrorKind int

const (
	// KindNone means no error; it is only used inside the state table
	KindNone ErrorKind = iota
	KindEmptyInput
	KindMissingRunMode
	KindMissingPathSpecification
	KindMissingKeywordDo
	KindMissingKeywordEnd
)

// String returns the identifier of the kind
func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindEmptyInput:
		return "EmptyInput"
	case KindMissingRunMode:
		return "MissingRunMode"
	case KindMissingPathSpecification:
		return "MissingPathSpecification"
	case KindMissingKeywordDo:
		return "MissingKeywordDo"
	case KindMissingKeywordEnd:
		return "MissingKeywordEnd"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ParseError is returned by Parse. It carries the kind and the raw input.
type ParseError struct {
	Kind  ErrorKind
	Input string
}

// Sentinels for errors.Is comparisons
var (
	ErrEmptyInput               = &ParseError{Kind: KindEmptyInput}
	ErrMissingRunMode           = &ParseError{Kind: KindMissingRunMode}
	ErrMissingPathSpecification = &ParseError{Kind: KindMissingPathSpecification}
	ErrMissingKeywordDo         = &ParseError{Kind: KindMissingKeywordDo}
	ErrMissingKeywordEnd        = &ParseError{Kind: KindMissingKeywordEnd}
)

// Error returns the operator-facing message for the kind
func (e *ParseError) Error() string {
	switch e.Kind {
	case KindEmptyInput:
		return "Empty input provided!"
	case KindMissingKeywordDo:
		return fmt.Sprintf("Missing '%s'!", types.KeywordDo)
	case KindMissingKeywordEnd:
		return fmt.Sprintf("Missing '%s'!", types.KeywordEnd)
	case KindMissingRunMode:
		return fmt.Sprintf("Missing '%s'; options are [%s].", types.KeywordMode, types.RunModeNames(", "))
	case KindMissingPathSpecification:
		return "Missing path specification!"
	default:
		return "invalid rule"
	}
}

// Is matches any ParseError of the same kind
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func newParseError(kind ErrorKind, input string) *ParseError {
	return &ParseError{Kind: kind, Input: input}
}
