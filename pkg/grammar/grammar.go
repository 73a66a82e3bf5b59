// Package grammar builds an immutable, spelling-keyed operator table
// from ordered precedence levels and exposes the lookup a parser driver
// needs at each token.
//
// A Builder (the "nursery") accepts levels through LevelLTR, LevelRTL,
// and LevelFlat; Finish validates well-formedness and assigns integer
// precedences. The resulting Grammar never changes afterward and may be
// shared freely across concurrent parses.
package grammar

import "mixfix/pkg/opalgebra"

// OpAtLevel pairs an operator shape with the level it was registered at.
type OpAtLevel struct {
	Op    opalgebra.Operator
	Level opalgebra.Level
}

// LookupEntry is what a single operator spelling resolves to. A
// spelling can carry a prefix-family registration, a regular
// (infix/postfix-family) registration, or both (e.g. "-" as prefix and
// infix); alternatively it marks the spelling as a right bracket that
// only ever closes some other operator's span, which excludes both
// other roles.
type LookupEntry struct {
	PrefixResult   *OpAtLevel
	RegularResult  *OpAtLevel
	IsRightBracket bool
}

// TransparentBrackets reports the bracket pair if this entry's prefix
// registration is a TransparentBracket, so the driver can recognize a
// plain grouping paren without a type assertion at the call site.
func (e LookupEntry) TransparentBrackets() (left, right string, ok bool) {
	if e.PrefixResult == nil {
		return "", "", false
	}
	tb, ok := e.PrefixResult.Op.(opalgebra.TransparentBracket)
	if !ok {
		return "", "", false
	}
	return tb.LeftBracket, tb.RightBracket, true
}

// Grammar is the finished, immutable operator table.
type Grammar struct {
	lookup map[string]*LookupEntry
	concat *opalgebra.Level
}

// Lookup resolves an operator spelling. The boolean reports whether any
// entry exists at all; callers treat a missing entry as an unknown
// operator.
func (g *Grammar) Lookup(spelling string) (LookupEntry, bool) {
	e, ok := g.lookup[spelling]
	if !ok {
		return LookupEntry{}, false
	}
	return *e, true
}

// HasConcat reports whether this grammar declared an unnamed infix
// level, making hallucinated concatenation available.
func (g *Grammar) HasConcat() bool {
	return g.concat != nil
}

// ConcatLevel returns the level hallucinated concatenation operators
// are built at.
func (g *Grammar) ConcatLevel() (opalgebra.Level, bool) {
	if g.concat == nil {
		return opalgebra.Level{}, false
	}
	return *g.concat, true
}

// GrammarError reports a builder-time well-formedness failure: a
// duplicate spelling role, a right-bracket collision, mixed
// associativity at one precedence, or more than one unnamed infix.
type GrammarError struct {
	Reason string
}

func (e *GrammarError) Error() string {
	return "grammar: " + e.Reason
}
