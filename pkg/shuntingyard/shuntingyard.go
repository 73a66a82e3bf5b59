// Package shuntingyard implements the primary expression parser: a
// two-stack state machine over ATOM_MODE / INFIX_MODE, with recursive
// descent into bracketed sub-expressions (plain grouping, bracketed
// prefix/postfix operators, and ternary middles).
package shuntingyard

import (
	"fmt"
	"sort"

	"mixfix/pkg/grammar"
	"mixfix/pkg/opalgebra"
	"mixfix/pkg/parseerr"
	"mixfix/pkg/token"
	"mixfix/pkg/tree"
)

type mode int

const (
	atomMode mode = iota
	infixMode
)

// endLevel terminates a parse: its precedence is lower than any real
// level, so the final collapse empties the operator stack completely.
var endLevel = opalgebra.Level{Name: "END", Prec: -1, Assoc: opalgebra.None}

type operItem struct {
	op            opalgebra.Operator
	level         opalgebra.Level
	tokenIndexes  []int
	minTokenIndex *int
	maxTokenIndex *int
}

type atomItem struct {
	node       *tree.Node
	flatFlag   bool
	tokenBegin int
	tokenEnd   int
}

// Parse runs the shunting-yard driver over tokens using g and returns
// the resulting expression tree, or a typed error from package
// parseerr if the input does not parse. No partial tree is ever
// returned alongside an error.
func Parse(g *grammar.Grammar, tokens []token.Token) (*tree.Node, error) {
	ps := &parseState{g: g, tokens: tokens}
	result, err := ps.exprImpl(0)
	if err != nil {
		return nil, err
	}
	if result.tokenBegin != 0 || result.tokenEnd != len(tokens) {
		return nil, &parseerr.InconsistentStateError{Detail: "parse did not consume the entire token stream"}
	}
	return result.node, nil
}

type parseState struct {
	g      *grammar.Grammar
	tokens []token.Token
}

// exprImpl parses one expression starting at begin, stopping either at
// end of input or at an unconsumed right bracket, and returns the
// resulting atom spanning exactly the tokens it consumed.
func (ps *parseState) exprImpl(begin int) (atomItem, error) {
	var operStack []operItem
	var atomStack []atomItem
	m := atomMode
	index := begin

	stackPop := func(level opalgebra.Level) error {
		for len(operStack) >= 1 && !operStack[len(operStack)-1].level.Less(level) {
			oi := operStack[len(operStack)-1]
			operStack = operStack[:len(operStack)-1]

			arity := oi.op.Arity()
			if len(atomStack) < arity {
				return &parseerr.InconsistentStateError{Detail: fmt.Sprintf("operator %q needs %d operands, found %d", oi.level.Name, arity, len(atomStack))}
			}
			args := atomStack[len(atomStack)-arity:]

			tokenBegin, tokenEnd, err := consistentRange(oi.tokenIndexes, args)
			if err != nil {
				return err
			}
			if oi.minTokenIndex != nil && tokenBegin < *oi.minTokenIndex {
				return &parseerr.InconsistentStateError{Detail: "collapse produced a span starting before its operator"}
			}
			if oi.maxTokenIndex != nil && tokenEnd > *oi.maxTokenIndex {
				return &parseerr.InconsistentStateError{Detail: "collapse produced a span ending after its operator"}
			}

			var newNode *tree.Node
			flatFlag := false
			if oi.level.Assoc == opalgebra.Flat && args[0].flatFlag {
				infixOp, ok := oi.op.(opalgebra.Infix)
				if !ok || infixOp.IsConcat {
					return &parseerr.InconsistentStateError{Detail: "FLAT level collapsed a non-named-infix operator"}
				}
				baseNode := atomStack[len(atomStack)-2].node
				addNode := atomStack[len(atomStack)-1].node
				if len(baseNode.Children) == 0 {
					newNode = &tree.Node{Children: []*tree.Node{baseNode, tree.Leaf(infixOp.Name), addNode}}
				} else {
					baseNode.Children = append(baseNode.Children, tree.Leaf(infixOp.Name), addNode)
					newNode = baseNode
				}
				flatFlag = true
			} else {
				childNodes := make([]*tree.Node, len(args))
				for i, a := range args {
					childNodes[i] = a.node
				}
				newNode = oi.op.ToNode(childNodes)
			}
			newNode.Name = oi.level.Name

			atomStack = atomStack[:len(atomStack)-arity]
			atomStack = append(atomStack, atomItem{node: newNode, flatFlag: flatFlag, tokenBegin: tokenBegin, tokenEnd: tokenEnd})
		}
		return nil
	}

	hallucinateConcat := func() error {
		level, ok := ps.g.ConcatLevel()
		if !ok {
			return &parseerr.InconsistentStateError{Detail: "concatenation hallucinated but grammar has no concat level"}
		}
		if err := stackPop(level); err != nil {
			return err
		}
		operStack = append(operStack, operItem{op: opalgebra.Infix{IsConcat: true}, level: level})
		m = atomMode
		return nil
	}

	handleBracketed := func(left, right string) (atomItem, error) {
		if index >= len(ps.tokens) || ps.tokens[index].Name != left {
			return atomItem{}, &parseerr.InconsistentStateError{Detail: fmt.Sprintf("expected left bracket %q at token %d", left, index)}
		}
		inner, err := ps.exprImpl(index + 1)
		if err != nil {
			return atomItem{}, err
		}
		if inner.tokenEnd >= len(ps.tokens) || ps.tokens[inner.tokenEnd].Name != right {
			return atomItem{}, &parseerr.BracketMismatchError{OpenTokenIndex: index, Detail: fmt.Sprintf("expected closing %q", right)}
		}
		index = inner.tokenEnd + 1
		inner.tokenBegin--
		inner.tokenEnd++
		return inner, nil
	}

	for index < len(ps.tokens) {
		tok := ps.tokens[index]

		if tok.Kind == token.Atom {
			if m == atomMode {
				atomStack = append(atomStack, atomItem{node: tree.Leaf(tok.Name), flatFlag: true, tokenBegin: index, tokenEnd: index + 1})
				m = infixMode
				index++
				continue
			}
			if ps.g.HasConcat() {
				if err := hallucinateConcat(); err != nil {
					return atomItem{}, err
				}
				continue
			}
			return atomItem{}, &parseerr.UnexpectedTokenError{TokenIndex: index, Detail: "atom found where an infix or postfix operator was expected"}
		}

		lr, ok := ps.g.Lookup(tok.Name)
		if !ok {
			return atomItem{}, &parseerr.UnknownOperatorError{TokenIndex: index, Spelling: tok.Name}
		}
		if lr.IsRightBracket {
			break
		}

		if m == infixMode && ps.g.HasConcat() {
			if lr.PrefixResult != nil && lr.RegularResult == nil {
				if err := hallucinateConcat(); err != nil {
					return atomItem{}, err
				}
				continue
			}
			if _, _, isTB := lr.TransparentBrackets(); isTB {
				if err := hallucinateConcat(); err != nil {
					return atomItem{}, err
				}
				continue
			}
		}

		if m == atomMode {
			if left, right, isTB := lr.TransparentBrackets(); isTB {
				atom, err := handleBracketed(left, right)
				if err != nil {
					return atomItem{}, err
				}
				atomStack = append(atomStack, atom)
				m = infixMode
				continue
			}

			if lr.PrefixResult == nil {
				return atomItem{}, &parseerr.UnexpectedTokenError{TokenIndex: index, Detail: fmt.Sprintf("operator %q has no prefix form", tok.Name)}
			}
			opAL := lr.PrefixResult
			if err := stackPop(opAL.Level); err != nil {
				return atomItem{}, err
			}

			switch op := opAL.Op.(type) {
			case opalgebra.Prefix:
				idx := index
				operStack = append(operStack, operItem{op: op, level: opAL.Level, tokenIndexes: []int{idx}, minTokenIndex: &idx})
				index++
				continue
			case opalgebra.PrefixBracketed:
				atom, err := handleBracketed(op.LeftBracket, op.RightBracket)
				if err != nil {
					return atomItem{}, err
				}
				atomStack = append(atomStack, atom)
				begin := atom.tokenBegin
				operStack = append(operStack, operItem{op: op, level: opAL.Level, minTokenIndex: &begin})
				continue
			default:
				return atomItem{}, &parseerr.InconsistentStateError{Detail: fmt.Sprintf("unexpected prefix-role operator type %T", op)}
			}
		}

		// infix mode
		if lr.RegularResult == nil {
			return atomItem{}, &parseerr.UnexpectedTokenError{TokenIndex: index, Detail: fmt.Sprintf("operator %q has no infix or postfix form", tok.Name)}
		}
		opAL := lr.RegularResult
		if err := stackPop(opAL.Level); err != nil {
			return atomItem{}, err
		}

		switch op := opAL.Op.(type) {
		case opalgebra.Postfix:
			idx := index
			end := idx + 1
			operStack = append(operStack, operItem{op: op, level: opAL.Level, tokenIndexes: []int{idx}, maxTokenIndex: &end})
			index++
			continue
		case opalgebra.PostfixBracketed:
			atom, err := handleBracketed(op.LeftBracket, op.RightBracket)
			if err != nil {
				return atomItem{}, err
			}
			atomStack = append(atomStack, atom)
			end := atom.tokenEnd
			operStack = append(operStack, operItem{op: op, level: opAL.Level, maxTokenIndex: &end})
			continue
		case opalgebra.Infix:
			idx := index
			operStack = append(operStack, operItem{op: op, level: opAL.Level, tokenIndexes: []int{idx}})
			m = atomMode
			index++
			continue
		case opalgebra.Ternary:
			atomMid, err := handleBracketed(op.FirstName, op.SecondName)
			if err != nil {
				return atomItem{}, err
			}
			atomStack = append(atomStack, atomMid)
			operStack = append(operStack, operItem{op: op, level: opAL.Level})
			m = atomMode
			continue
		default:
			return atomItem{}, &parseerr.InconsistentStateError{Detail: fmt.Sprintf("unexpected regular-role operator type %T", op)}
		}
	}

	if err := stackPop(endLevel); err != nil {
		return atomItem{}, err
	}
	if len(operStack) != 0 {
		return atomItem{}, &parseerr.InconsistentStateError{Detail: "operator stack not empty at end of expression"}
	}
	if len(atomStack) != 1 {
		return atomItem{}, &parseerr.UnexpectedTokenError{TokenIndex: index, Detail: "expression did not reduce to a single result"}
	}
	return atomStack[0], nil
}

// consistentRange merges an operator's own token indices with the
// spans of the atoms it is about to consume into one contiguous range,
// failing if any gap or overlap is found.
func consistentRange(tokenIndexes []int, items []atomItem) (begin, end int, err error) {
	type span struct{ a, b int }
	ranges := make([]span, 0, len(tokenIndexes)+len(items))
	for _, t := range tokenIndexes {
		ranges = append(ranges, span{t, t + 1})
	}
	for _, it := range items {
		ranges = append(ranges, span{it.tokenBegin, it.tokenEnd})
	}
	if len(ranges) == 0 {
		return 0, 0, &parseerr.InconsistentStateError{Detail: "collapse with no operands and no operator tokens"}
	}
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].a < ranges[j].a })
	for i := 0; i < len(ranges)-1; i++ {
		if ranges[i].b != ranges[i+1].a {
			return 0, 0, &parseerr.InconsistentStateError{Detail: "non-contiguous token range during collapse"}
		}
	}
	return ranges[0].a, ranges[len(ranges)-1].b, nil
}
