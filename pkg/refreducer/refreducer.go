// Package refreducer is an independent differential oracle for the
// shunting-yard driver: instead of a single left-to-right stack
// collapse, it classifies every token once and then repeatedly reduces
// fixed-width windows at each precedence level, from highest to
// lowest, until one result remains. Agreement between the two on every
// input is the property the fixtures suite exercises.
package refreducer

import (
	"mixfix/pkg/grammar"
	"mixfix/pkg/opalgebra"
	"mixfix/pkg/parseerr"
	"mixfix/pkg/token"
	"mixfix/pkg/tree"
)

type roleKind int

const (
	rolePrimary roleKind = iota
	rolePrefix
	rolePostfix
	roleInfix
	roleTernaryOpen
	roleTernaryClose
)

// slot is one entry of the flat sequence flatten produces: either a
// resolved result (rolePrimary) or an unresolved operator marker
// waiting for its level's reduction pass.
type slot struct {
	kind roleKind

	node     *tree.Node
	flatFlag bool

	op    opalgebra.Operator
	level opalgebra.Level

	// bracketNode holds the eagerly-reduced bracket content for a
	// PrefixBracketed or PostfixBracketed marker.
	bracketNode *tree.Node

	// spelling is set only for roleTernaryClose, since a right-bracket
	// spelling carries no level or operator payload of its own.
	spelling string
}

// Parse runs the window-reduction driver over tokens using g and
// returns the resulting expression tree, or a typed error from package
// parseerr.
func Parse(g *grammar.Grammar, tokens []token.Token) (*tree.Node, error) {
	slots, end, err := flatten(g, tokens, 0, "")
	if err != nil {
		return nil, err
	}
	if end != len(tokens) {
		return nil, &parseerr.UnexpectedTokenError{TokenIndex: end, Detail: "unmatched closing bracket"}
	}
	return reduceLevels(g, slots)
}

// flatten walks tokens from begin, resolving every bracketed
// sub-expression (transparent grouping, bracketed prefix/postfix
// operators) into a single primary via a nested, fully independent
// call to Parse's two-stage pipeline, hallucinating concatenation
// where the grammar allows it, and leaving ternary open/close
// spellings as in-stream markers for the TERNARY level's own reduction
// rule to resolve. It stops at end of input or at an unconsumed
// right-bracket token equal to stopAt.
func flatten(g *grammar.Grammar, tokens []token.Token, begin int, stopAt string) ([]slot, int, error) {
	var slots []slot
	expectingOperand := true
	index := begin

	for index < len(tokens) {
		tok := tokens[index]

		if tok.Kind == token.Atom {
			if expectingOperand {
				slots = append(slots, slot{kind: rolePrimary, node: tree.Leaf(tok.Name), flatFlag: true})
				expectingOperand = false
				index++
				continue
			}
			if !g.HasConcat() {
				return nil, index, &parseerr.UnexpectedTokenError{TokenIndex: index, Detail: "atom found where an infix or postfix operator was expected"}
			}
			lvl, _ := g.ConcatLevel()
			slots = append(slots, slot{kind: roleInfix, op: opalgebra.Infix{IsConcat: true}, level: lvl})
			expectingOperand = true
			continue
		}

		lr, ok := g.Lookup(tok.Name)
		if !ok {
			return nil, index, &parseerr.UnknownOperatorError{TokenIndex: index, Spelling: tok.Name}
		}

		if lr.IsRightBracket {
			if tok.Name == stopAt {
				break
			}
			slots = append(slots, slot{kind: roleTernaryClose, spelling: tok.Name})
			expectingOperand = true
			index++
			continue
		}

		if !expectingOperand && g.HasConcat() {
			_, _, isTB := lr.TransparentBrackets()
			if (lr.PrefixResult != nil && lr.RegularResult == nil) || isTB {
				lvl, _ := g.ConcatLevel()
				slots = append(slots, slot{kind: roleInfix, op: opalgebra.Infix{IsConcat: true}, level: lvl})
				expectingOperand = true
				continue
			}
		}

		if expectingOperand {
			if left, right, isTB := lr.TransparentBrackets(); isTB {
				node, consumed, err := reduceBracketed(g, tokens, index, left, right)
				if err != nil {
					return nil, index, err
				}
				slots = append(slots, slot{kind: rolePrimary, node: node})
				index = consumed
				expectingOperand = false
				continue
			}
			if lr.PrefixResult == nil {
				return nil, index, &parseerr.UnexpectedTokenError{TokenIndex: index, Detail: "operator has no prefix form"}
			}
			switch op := lr.PrefixResult.Op.(type) {
			case opalgebra.Prefix:
				slots = append(slots, slot{kind: rolePrefix, op: op, level: lr.PrefixResult.Level})
				index++
				continue
			case opalgebra.PrefixBracketed:
				bracketNode, consumed, err := reduceBracketed(g, tokens, index, op.LeftBracket, op.RightBracket)
				if err != nil {
					return nil, index, err
				}
				slots = append(slots, slot{kind: rolePrefix, op: op, level: lr.PrefixResult.Level, bracketNode: bracketNode})
				index = consumed
				continue
			default:
				return nil, index, &parseerr.InconsistentStateError{Detail: "unexpected prefix-role operator shape"}
			}
		}

		if lr.RegularResult == nil {
			return nil, index, &parseerr.UnexpectedTokenError{TokenIndex: index, Detail: "operator has no infix or postfix form"}
		}
		switch op := lr.RegularResult.Op.(type) {
		case opalgebra.Postfix:
			slots = append(slots, slot{kind: rolePostfix, op: op, level: lr.RegularResult.Level})
			index++
			continue
		case opalgebra.PostfixBracketed:
			bracketNode, consumed, err := reduceBracketed(g, tokens, index, op.LeftBracket, op.RightBracket)
			if err != nil {
				return nil, index, err
			}
			slots = append(slots, slot{kind: rolePostfix, op: op, level: lr.RegularResult.Level, bracketNode: bracketNode})
			index = consumed
			continue
		case opalgebra.Infix:
			slots = append(slots, slot{kind: roleInfix, op: op, level: lr.RegularResult.Level})
			expectingOperand = true
			index++
			continue
		case opalgebra.Ternary:
			slots = append(slots, slot{kind: roleTernaryOpen, op: op, level: lr.RegularResult.Level})
			expectingOperand = true
			index++
			continue
		default:
			return nil, index, &parseerr.InconsistentStateError{Detail: "unexpected regular-role operator shape"}
		}
	}

	return slots, index, nil
}

// reduceBracketed consumes left at index, flattens and fully reduces
// everything up to the matching right, and returns the resulting node
// together with the index just past right.
func reduceBracketed(g *grammar.Grammar, tokens []token.Token, index int, left, right string) (*tree.Node, int, error) {
	if index >= len(tokens) || tokens[index].Name != left {
		return nil, index, &parseerr.InconsistentStateError{Detail: "expected left bracket at the current token"}
	}
	innerSlots, end, err := flatten(g, tokens, index+1, right)
	if err != nil {
		return nil, index, err
	}
	if end >= len(tokens) || tokens[end].Name != right {
		return nil, index, &parseerr.BracketMismatchError{OpenTokenIndex: index, Detail: "bracket never closes on the expected spelling"}
	}
	node, err := reduceLevels(g, innerSlots)
	if err != nil {
		return nil, index, err
	}
	return node, end + 1, nil
}

// reduceLevels repeatedly finds the highest precedence still pending
// among slots and fully exhausts it before moving to the next lower
// one, until exactly one primary remains.
func reduceLevels(g *grammar.Grammar, slots []slot) (*tree.Node, error) {
	if len(slots) == 0 {
		return nil, &parseerr.UnexpectedTokenError{Detail: "empty expression"}
	}
	for {
		if len(slots) == 1 {
			if slots[0].kind != rolePrimary {
				return nil, &parseerr.UnexpectedTokenError{Detail: "expression did not reduce to a single result"}
			}
			return slots[0].node, nil
		}
		level, found := highestPendingLevel(slots)
		if !found {
			return nil, &parseerr.UnexpectedTokenError{Detail: "expression did not reduce to a single result"}
		}
		next, err := reduceLevel(g, slots, level)
		if err != nil {
			return nil, err
		}
		if len(next) == len(slots) {
			return nil, &parseerr.InconsistentStateError{Detail: "no window reduction applied at the highest pending level"}
		}
		slots = next
	}
}

func highestPendingLevel(slots []slot) (opalgebra.Level, bool) {
	var best opalgebra.Level
	found := false
	for _, s := range slots {
		switch s.kind {
		case rolePrefix, rolePostfix, roleInfix, roleTernaryOpen:
			if !found || s.level.Prec > best.Prec {
				best = s.level
				found = true
			}
		}
	}
	return best, found
}

// reduceLevel exhausts every window reduction available at level,
// across all shapes present at that level (a level may mix prefix,
// infix, and ternary operators), before returning.
func reduceLevel(g *grammar.Grammar, slots []slot, level opalgebra.Level) ([]slot, error) {
	for {
		changed := false

		for {
			next, did, err := reduceTernaryPairOnce(g, slots, level)
			if err != nil {
				return nil, err
			}
			if !did {
				break
			}
			slots = next
			changed = true
		}

		for {
			next, did := reducePrefixOnce(slots, level)
			if !did {
				break
			}
			slots = next
			changed = true
		}

		for {
			next, did := reducePostfixOnce(slots, level)
			if !did {
				break
			}
			slots = next
			changed = true
		}

		for {
			next, did, err := reduceInfixOnce(slots, level)
			if err != nil {
				return nil, err
			}
			if !did {
				break
			}
			slots = next
			changed = true
		}

		if !changed {
			return slots, nil
		}
	}
}

func splice(slots []slot, from, to int, replacement slot) []slot {
	out := make([]slot, 0, len(slots)-(to-from)+1)
	out = append(out, slots[:from]...)
	out = append(out, replacement)
	out = append(out, slots[to:]...)
	return out
}

// reducePrefixOnce scans right-to-left, matching PREFIX, PRIMARY so
// chained prefixes nest correctly ("- - 1" = -(-(1))).
func reducePrefixOnce(slots []slot, level opalgebra.Level) ([]slot, bool) {
	for i := len(slots) - 2; i >= 0; i-- {
		if slots[i].kind != rolePrefix || slots[i].level != level {
			continue
		}
		if slots[i+1].kind != rolePrimary {
			continue
		}
		var args []*tree.Node
		if _, ok := slots[i].op.(opalgebra.PrefixBracketed); ok {
			args = []*tree.Node{slots[i].bracketNode, slots[i+1].node}
		} else {
			args = []*tree.Node{slots[i+1].node}
		}
		node := slots[i].op.ToNode(args)
		node.Name = level.Name
		return splice(slots, i, i+2, slot{kind: rolePrimary, node: node}), true
	}
	return slots, false
}

// reducePostfixOnce scans left-to-right, matching PRIMARY, POSTFIX.
func reducePostfixOnce(slots []slot, level opalgebra.Level) ([]slot, bool) {
	for i := 0; i+1 < len(slots); i++ {
		if slots[i].kind != rolePrimary || slots[i+1].kind != rolePostfix || slots[i+1].level != level {
			continue
		}
		var args []*tree.Node
		if _, ok := slots[i+1].op.(opalgebra.PostfixBracketed); ok {
			args = []*tree.Node{slots[i].node, slots[i+1].bracketNode}
		} else {
			args = []*tree.Node{slots[i].node}
		}
		node := slots[i+1].op.ToNode(args)
		node.Name = level.Name
		return splice(slots, i, i+2, slot{kind: rolePrimary, node: node}), true
	}
	return slots, false
}

// reduceInfixOnce matches PRIMARY, INFIX, PRIMARY, scanning in the
// direction the level's associativity demands, and folding into a
// growing flat node when the level is FLAT.
func reduceInfixOnce(slots []slot, level opalgebra.Level) ([]slot, bool, error) {
	match := func(i int) bool {
		return i >= 0 && i+2 < len(slots) &&
			slots[i].kind == rolePrimary &&
			slots[i+1].kind == roleInfix && slots[i+1].level == level &&
			slots[i+2].kind == rolePrimary
	}

	var i int
	found := false
	if level.Assoc == opalgebra.RightToLeft {
		for i = len(slots) - 3; i >= 0; i-- {
			if match(i) {
				found = true
				break
			}
		}
	} else {
		for i = 0; i+2 < len(slots); i++ {
			if match(i) {
				found = true
				break
			}
		}
	}
	if !found {
		return slots, false, nil
	}

	infixOp, ok := slots[i+1].op.(opalgebra.Infix)
	if !ok {
		return nil, false, &parseerr.InconsistentStateError{Detail: "infix window matched a non-Infix operator"}
	}

	var node *tree.Node
	flatFlag := false
	if level.Assoc == opalgebra.Flat && slots[i].flatFlag && !infixOp.IsConcat {
		base := slots[i].node
		add := slots[i+2].node
		if len(base.Children) == 0 {
			node = &tree.Node{Children: []*tree.Node{base, tree.Leaf(infixOp.Name), add}}
		} else {
			base.Children = append(base.Children, tree.Leaf(infixOp.Name), add)
			node = base
		}
		flatFlag = true
	} else {
		node = infixOp.ToNode([]*tree.Node{slots[i].node, slots[i+2].node})
	}
	node.Name = level.Name

	return splice(slots, i, i+3, slot{kind: rolePrimary, node: node, flatFlag: flatFlag}), true, nil
}

// reduceTernaryPairOnce finds a Ternary operator present at level,
// matches every balanced (open, close) pair of its spellings over the
// whole slot sequence, and reduces one top-level pair (one not nested
// inside any other pair in the set). A genuinely nested pair is always
// resolved first regardless of associativity, since it falls inside
// some top-level pair's middle and gets reduced there by the recursive
// call below; among sibling top-level pairs, level.Assoc picks which
// one goes first: RightToLeft takes the rightmost (producing
// right-nesting), anything else takes the leftmost (left-nesting).
func reduceTernaryPairOnce(g *grammar.Grammar, slots []slot, level opalgebra.Level) ([]slot, bool, error) {
	var op *opalgebra.Ternary
	for _, s := range slots {
		if s.kind == roleTernaryOpen && s.level == level {
			if to, ok := s.op.(opalgebra.Ternary); ok {
				t := to
				op = &t
				break
			}
		}
	}
	if op == nil {
		return slots, false, nil
	}

	var stack []int
	var pairs [][2]int
	for idx, s := range slots {
		if s.kind == roleTernaryOpen {
			if to, ok := s.op.(opalgebra.Ternary); ok && to == *op {
				stack = append(stack, idx)
				continue
			}
		}
		if s.kind == roleTernaryClose && s.spelling == op.SecondName {
			if len(stack) == 0 {
				return nil, false, &parseerr.UnexpectedTokenError{Detail: "ternary close without a matching open"}
			}
			openIdx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			pairs = append(pairs, [2]int{openIdx, idx})
		}
	}
	if len(stack) != 0 {
		return nil, false, &parseerr.UnexpectedTokenError{Detail: "ternary open without a matching close"}
	}
	if len(pairs) == 0 {
		return slots, false, nil
	}

	isNested := func(p [2]int) bool {
		for _, other := range pairs {
			if other == p {
				continue
			}
			if other[0] < p[0] && p[1] < other[1] {
				return true
			}
		}
		return false
	}

	var topLevel [][2]int
	for _, p := range pairs {
		if !isNested(p) {
			topLevel = append(topLevel, p)
		}
	}

	best := topLevel[0]
	for _, p := range topLevel[1:] {
		if level.Assoc == opalgebra.RightToLeft {
			if p[0] > best[0] {
				best = p
			}
		} else {
			if p[0] < best[0] {
				best = p
			}
		}
	}
	openIdx, closeIdx := best[0], best[1]

	if openIdx-1 < 0 || slots[openIdx-1].kind != rolePrimary {
		return nil, false, &parseerr.UnexpectedTokenError{Detail: "ternary missing its left operand"}
	}
	if closeIdx+1 >= len(slots) || slots[closeIdx+1].kind != rolePrimary {
		return nil, false, &parseerr.UnexpectedTokenError{Detail: "ternary missing its right operand"}
	}

	middle := append([]slot{}, slots[openIdx+1:closeIdx]...)
	middleNode, err := reduceLevels(g, middle)
	if err != nil {
		return nil, false, err
	}

	node := op.ToNode([]*tree.Node{slots[openIdx-1].node, middleNode, slots[closeIdx+1].node})
	node.Name = level.Name

	return splice(slots, openIdx-1, closeIdx+2, slot{kind: rolePrimary, node: node}), true, nil
}
