// Package parseerr defines the typed parse-time failures shared by the
// shunting-yard driver and the reference reducer, so the two parsers
// expose identical, comparable error shapes to their callers. No
// partial tree is ever returned alongside one of these errors.
package parseerr

import "fmt"

// UnknownOperatorError is returned when a token's spelling has no
// lookup entry in the grammar at all.
type UnknownOperatorError struct {
	TokenIndex int
	Spelling   string
}

func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("parse: unknown operator %q at token %d", e.Spelling, e.TokenIndex)
}

// UnexpectedTokenError is returned when the current token does not fit
// the current parse mode — e.g. an operator with no prefix form
// appears where an atom is expected and no concatenation is available.
type UnexpectedTokenError struct {
	TokenIndex int
	Detail     string
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("parse: unexpected token at %d: %s", e.TokenIndex, e.Detail)
}

// BracketMismatchError is returned when a bracketed recursion runs off
// the end of the token stream, or closes on the wrong spelling.
type BracketMismatchError struct {
	OpenTokenIndex int
	Detail         string
}

func (e *BracketMismatchError) Error() string {
	return fmt.Sprintf("parse: bracket opened at %d never closes correctly: %s", e.OpenTokenIndex, e.Detail)
}

// InconsistentStateError is returned when an internal invariant the
// driver relies on is violated — a non-contiguous token range during a
// collapse, an operator short of operands, or operators still pending
// at the end of an expression. An expression that leaves no single
// result (e.g. an empty one) is reported as an UnexpectedTokenError.
type InconsistentStateError struct {
	Detail string
}

func (e *InconsistentStateError) Error() string {
	return fmt.Sprintf("parse: inconsistent internal state: %s", e.Detail)
}
