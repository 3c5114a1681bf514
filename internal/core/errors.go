package core

import "fmt"

// MalformedInputError reports initial-configuration text that does not match
// the grammar of the chosen automaton. Line and Column are 1-based; Column is
// zero when the problem concerns a whole line or the whole input.
type MalformedInputError struct {
	Line   int
	Column int
	Char   rune
	Reason string
}

func (e *MalformedInputError) Error() string {
	switch {
	case e.Column > 0:
		return fmt.Sprintf("malformed input at line %d, column %d: unexpected %q", e.Line, e.Column, e.Char)
	case e.Line > 0:
		return fmt.Sprintf("malformed input at line %d: %s", e.Line, e.Reason)
	default:
		return "malformed input: " + e.Reason
	}
}
