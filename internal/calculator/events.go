package calculator

import "abacus/internal/calc"

// Event tags understood by Press. Anything else is a unary function name
// or a literal token.
const (
	TagClear     = "clear"
	TagDelete    = "delete"
	TagEquals    = "equals"
	TagMemClear  = "mem-clear"
	TagMemRecall = "mem-recall"
	TagMemAdd    = "mem-add"
	TagMemSub    = "mem-sub"
)

// Tags lists the tag events.
var Tags = []string{TagClear, TagDelete, TagEquals, TagMemClear, TagMemRecall, TagMemAdd, TagMemSub}

// IsCommand reports whether event is a tag or unary function name rather
// than a token to append.
func IsCommand(event string) bool {
	for _, tag := range Tags {
		if event == tag {
			return true
		}
	}
	_, ok := calc.ParseUnary(event)
	return ok
}
