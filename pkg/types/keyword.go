package types

// Keyword is a reserved word of the rule grammar
type Keyword int

const (
	KeywordDo Keyword = iota
	KeywordEnd
	KeywordMode
)

func (k Keyword) String() string {
	switch k {
	case KeywordDo:
		return "do"
	case KeywordEnd:
		return "end"
	case KeywordMode:
		return "mode"
	default:
		return ""
	}
}
