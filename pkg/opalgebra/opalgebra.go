// Package opalgebra models the closed set of operator shapes a grammar
// level can be built from: prefix, postfix, infix, ternary, and their
// bracketed or transparent-bracket variants. Each shape is a small
// struct implementing the sealed Operator interface; callers that need
// to branch on shape do so with an exhaustive type switch rather than
// dynamic dispatch, since the set of shapes never grows at runtime.
package opalgebra

import "mixfix/pkg/tree"

// Assoc names how operators at one precedence level combine.
type Assoc int

const (
	// None is used only for the synthetic levels: the END sentinel that
	// terminates a parse and the transparent-bracket level.
	None Assoc = iota
	LeftToRight
	RightToLeft
	Flat
)

func (a Assoc) String() string {
	switch a {
	case LeftToRight:
		return "LEFT_TO_RIGHT"
	case RightToLeft:
		return "RIGHT_TO_LEFT"
	case Flat:
		return "FLAT"
	default:
		return "NONE"
	}
}

// Level names one precedence tier of the grammar: a name (used as the
// composite node's tag), an integer precedence (higher binds tighter),
// and an associativity.
type Level struct {
	Name  string
	Prec  int
	Assoc Assoc
}

// Less orders levels the way the shunting-yard collapse step needs: by
// precedence first, and among operators sharing one precedence, a
// RIGHT_TO_LEFT level is considered "less than" itself so the collapse
// loop does not eagerly reduce a right-associative chain. FLAT and
// LEFT_TO_RIGHT behave identically under comparison; they only diverge
// in how the shunting-yard driver merges a FLAT reduction's result.
func (l Level) Less(other Level) bool {
	if l.Prec != other.Prec {
		return l.Prec < other.Prec
	}
	return l.Assoc == RightToLeft
}

// Operator is the sealed interface every operator shape implements.
type Operator interface {
	Arity() int
	ToNode(args []*tree.Node) *tree.Node

	sealedOperator()
}

// Prefix is a named unary operator appearing before its operand, e.g. "- x".
type Prefix struct {
	Name string
}

func (Prefix) sealedOperator() {}
func (Prefix) Arity() int      { return 1 }
func (p Prefix) ToNode(args []*tree.Node) *tree.Node {
	return &tree.Node{Children: []*tree.Node{tree.Leaf(p.Name), args[0]}}
}

// PrefixBracketed is a prefix operator whose "operand" is itself a
// bracketed sub-expression followed by a further operand, e.g. a
// C-style cast "( T ) x".
type PrefixBracketed struct {
	LeftBracket, RightBracket string
}

func (PrefixBracketed) sealedOperator() {}
func (PrefixBracketed) Arity() int      { return 2 }
func (p PrefixBracketed) ToNode(args []*tree.Node) *tree.Node {
	return &tree.Node{Children: []*tree.Node{tree.Leaf(p.LeftBracket), args[0], tree.Leaf(p.RightBracket), args[1]}}
}

// TransparentBracket marks a pair of brackets that simply delimit a
// recursive sub-expression and contribute no node of their own; it has
// zero arity and ToNode must never be called on it.
type TransparentBracket struct {
	LeftBracket, RightBracket string
}

func (TransparentBracket) sealedOperator() {}
func (TransparentBracket) Arity() int      { return 0 }
func (TransparentBracket) ToNode(args []*tree.Node) *tree.Node {
	panic("opalgebra: ToNode called on TransparentBracket")
}

// Infix is a binary operator between two operands, e.g. "a + b". An
// Infix with IsConcat set is the unnamed concatenation operator (the
// one a grammar level declares, and the frame the drivers hallucinate
// for it); it carries no spelling of its own and renders its middle
// child as the unnamed CONCAT marker.
type Infix struct {
	Name     string
	IsConcat bool
}

func (Infix) sealedOperator() {}
func (Infix) Arity() int      { return 2 }
func (i Infix) ToNode(args []*tree.Node) *tree.Node {
	mid := tree.Leaf(i.Name)
	if i.IsConcat {
		mid = tree.ConcatMarker()
	}
	return &tree.Node{Children: []*tree.Node{args[0], mid, args[1]}}
}

// Ternary is a three-operand operator bracketed by two named spellings,
// e.g. "a ? b : c".
type Ternary struct {
	FirstName, SecondName string
}

func (Ternary) sealedOperator() {}
func (Ternary) Arity() int      { return 3 }
func (t Ternary) ToNode(args []*tree.Node) *tree.Node {
	return &tree.Node{Children: []*tree.Node{args[0], tree.Leaf(t.FirstName), args[1], tree.Leaf(t.SecondName), args[2]}}
}

// Postfix is a named unary operator appearing after its operand, e.g. "x !".
type Postfix struct {
	Name string
}

func (Postfix) sealedOperator() {}
func (Postfix) Arity() int      { return 1 }
func (p Postfix) ToNode(args []*tree.Node) *tree.Node {
	return &tree.Node{Children: []*tree.Node{args[0], tree.Leaf(p.Name)}}
}

// PostfixBracketed is a postfix operator whose trailing operand is a
// bracketed sub-expression, e.g. subscripting "a [ i ]" or a call "f ( x )".
type PostfixBracketed struct {
	LeftBracket, RightBracket string
}

func (PostfixBracketed) sealedOperator() {}
func (PostfixBracketed) Arity() int      { return 2 }
func (p PostfixBracketed) ToNode(args []*tree.Node) *tree.Node {
	return &tree.Node{Children: []*tree.Node{args[0], tree.Leaf(p.LeftBracket), args[1], tree.Leaf(p.RightBracket)}}
}

// IsPrefixShape reports whether op belongs to the prefix family
// (Prefix, PrefixBracketed, TransparentBracket) — the family eligible
// to register a grammar's prefix_result slot.
func IsPrefixShape(op Operator) bool {
	switch op.(type) {
	case Prefix, PrefixBracketed, TransparentBracket:
		return true
	default:
		return false
	}
}

// IsRegularShape reports whether op belongs to the infix/postfix family
// eligible to register a grammar's regular_result slot.
func IsRegularShape(op Operator) bool {
	switch op.(type) {
	case Infix, Ternary, Postfix, PostfixBracketed:
		return true
	default:
		return false
	}
}
