package rules

import "fmt"

// State is a position in the rule grammar
type State int

const (
	stateInvalid State = iota
	StateStart
	StateForeach
	StateForeachFile
	StatePath
	StateDo
	StateBody
	StateDone
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "Start"
	case StateForeach:
		return "Foreach"
	case StateForeachFile:
		return "ForeachFile"
	case StatePath:
		return "Path"
	case StateDo:
		return "Do"
	case StateBody:
		return "Body"
	case StateDone:
		return "Done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// TokenClass is the lexical category of a whitespace-delimited token
type TokenClass int

const (
	ClassWord TokenClass = iota
	ClassDirectory
	ClassForeach
	ClassFile
	ClassIn
	ClassDo
	ClassEnd
	ClassEOF
)

func (c TokenClass) String() string {
	switch c {
	case ClassWord:
		return "word"
	case ClassDirectory:
		return "directory"
	case ClassForeach:
		return "foreach"
	case ClassFile:
		return "file"
	case ClassIn:
		return "in"
	case ClassDo:
		return "do"
	case ClassEnd:
		return "end"
	case ClassEOF:
		return "EOF"
	default:
		return fmt.Sprintf("TokenClass(%d)", int(c))
	}
}

var keywordClasses = map[string]TokenClass{
	"directory": ClassDirectory,
	"foreach":   ClassForeach,
	"file":      ClassFile,
	"in":        ClassIn,
	"do":        ClassDo,
	"end":       ClassEnd,
}

// Classify returns the class of a single token. Keywords are case sensitive.
func Classify(token string) TokenClass {
	if c, ok := keywordClasses[token]; ok {
		return c
	}
	return ClassWord
}

// row describes the transitions out of one state.
// Classes listed in on move to their state; any other token moves to
// fallback when it is set, otherwise fails with fail. EOF fails with eof,
// or accepts when eof is KindNone.
type row struct {
	on       map[TokenClass]State
	fallback State
	fail     ErrorKind
	eof      ErrorKind
}

var table = map[State]row{
	StateStart: {
		on:   map[TokenClass]State{ClassDirectory: StatePath, ClassForeach: StateForeach},
		fail: KindMissingRunMode,
		eof:  KindEmptyInput,
	},
	StateForeach: {
		on:   map[TokenClass]State{ClassFile: StateForeachFile},
		fail: KindMissingRunMode,
		eof:  KindMissingRunMode,
	},
	StateForeachFile: {
		on:   map[TokenClass]State{ClassIn: StatePath},
		fail: KindMissingRunMode,
		eof:  KindMissingRunMode,
	},
	StatePath: {
		fallback: StateDo,
		eof:      KindMissingPathSpecification,
	},
	StateDo: {
		on:   map[TokenClass]State{ClassDo: StateBody},
		fail: KindMissingKeywordDo,
		eof:  KindMissingKeywordDo,
	},
	StateBody: {
		on:       map[TokenClass]State{ClassEnd: StateDone},
		fallback: StateBody,
		eof:      KindMissingKeywordEnd,
	},
	StateDone: {
		fallback: StateDone,
		eof:      KindNone,
	},
}

// Transition returns the next state for a token class read in state s.
// When the transition fails the returned state is s and the kind is set.
// Reading ClassEOF in an accepting state returns s with KindNone.
func Transition(s State, c TokenClass) (State, ErrorKind) {
	r, ok := table[s]
	if !ok {
		return s, KindEmptyInput
	}
	if c == ClassEOF {
		return s, r.eof
	}
	if next, ok := r.on[c]; ok {
		return next, KindNone
	}
	if r.fallback != stateInvalid {
		return r.fallback, KindNone
	}
	return s, r.fail
}
