package grammar

import (
	"fmt"

	"mixfix/pkg/opalgebra"
)

type levelIntake struct {
	info opalgebra.Level
	ops  []opalgebra.Operator
}

// Builder intakes precedence levels one at a time and produces a
// Grammar. Levels are supplied in precedence order — the convention
// carried from the original grammar-table format is that the level
// added first ends up bound tightest (it is assigned the largest
// precedence integer); the level added last binds loosest. Within a
// level, LevelLTR marks LEFT_TO_RIGHT associativity, LevelRTL marks
// RIGHT_TO_LEFT, and LevelFlat marks FLAT (chainable n-ary) operators.
type Builder struct {
	levels       []levelIntake
	leftBracket  string
	rightBracket string
}

// NewBuilder starts a nursery with the given transparent bracket pair,
// defaulting to "(" / ")" when none is given.
func NewBuilder(transparentBrackets ...[2]string) *Builder {
	left, right := "(", ")"
	if len(transparentBrackets) > 0 {
		left, right = transparentBrackets[0][0], transparentBrackets[0][1]
	}
	return &Builder{leftBracket: left, rightBracket: right}
}

// LevelLTR adds a LEFT_TO_RIGHT level of infix/postfix operators.
func (b *Builder) LevelLTR(name string, ops ...opalgebra.Operator) *Builder {
	b.levels = append(b.levels, levelIntake{
		info: opalgebra.Level{Name: name, Assoc: opalgebra.LeftToRight},
		ops:  ops,
	})
	return b
}

// LevelRTL adds a RIGHT_TO_LEFT level of prefix/infix operators.
func (b *Builder) LevelRTL(name string, ops ...opalgebra.Operator) *Builder {
	b.levels = append(b.levels, levelIntake{
		info: opalgebra.Level{Name: name, Assoc: opalgebra.RightToLeft},
		ops:  ops,
	})
	return b
}

// LevelFlat adds a FLAT level of chainable infix operators.
func (b *Builder) LevelFlat(name string, ops ...opalgebra.Operator) *Builder {
	b.levels = append(b.levels, levelIntake{
		info: opalgebra.Level{Name: name, Assoc: opalgebra.Flat},
		ops:  ops,
	})
	return b
}

// sentinelPrec is the reserved precedence of the transparent-bracket
// level, strictly greater than any user level can reach.
const sentinelPrec = 1_000_000_000

// Finish validates the intake and produces an immutable Grammar, or a
// *GrammarError describing the first well-formedness violation found.
func (b *Builder) Finish() (*Grammar, error) {
	g := &Grammar{lookup: make(map[string]*LookupEntry)}
	precByAssoc := make(map[int]opalgebra.Assoc)

	register := func(name string, op opalgebra.Operator, level opalgebra.Level) error {
		entry, ok := g.lookup[name]
		if !ok {
			entry = &LookupEntry{}
			g.lookup[name] = entry
		}
		switch {
		case opalgebra.IsPrefixShape(op):
			if entry.PrefixResult != nil || entry.IsRightBracket {
				return &GrammarError{Reason: fmt.Sprintf("duplicate prefix-role registration for spelling %q", name)}
			}
			entry.PrefixResult = &OpAtLevel{Op: op, Level: level}
		case opalgebra.IsRegularShape(op):
			if entry.RegularResult != nil || entry.IsRightBracket {
				return &GrammarError{Reason: fmt.Sprintf("duplicate regular-role registration for spelling %q", name)}
			}
			entry.RegularResult = &OpAtLevel{Op: op, Level: level}
		default:
			return &GrammarError{Reason: fmt.Sprintf("unknown operator shape %T", op)}
		}
		return nil
	}

	registerRightBracket := func(name string) error {
		entry, ok := g.lookup[name]
		if !ok {
			entry = &LookupEntry{}
			g.lookup[name] = entry
		}
		if entry.PrefixResult != nil || entry.RegularResult != nil {
			return &GrammarError{Reason: fmt.Sprintf("right-bracket collision for spelling %q", name)}
		}
		entry.IsRightBracket = true
		return nil
	}

	addOp := func(op opalgebra.Operator, level opalgebra.Level) error {
		switch o := op.(type) {
		case opalgebra.Prefix:
			return register(o.Name, o, level)
		case opalgebra.PrefixBracketed:
			if err := register(o.LeftBracket, o, level); err != nil {
				return err
			}
			return registerRightBracket(o.RightBracket)
		case opalgebra.TransparentBracket:
			if err := register(o.LeftBracket, o, level); err != nil {
				return err
			}
			return registerRightBracket(o.RightBracket)
		case opalgebra.Infix:
			if o.IsConcat {
				if g.concat != nil {
					return &GrammarError{Reason: "more than one unnamed infix level (concat) registered"}
				}
				lvl := level
				g.concat = &lvl
				return nil
			}
			return register(o.Name, o, level)
		case opalgebra.Ternary:
			if err := register(o.FirstName, o, level); err != nil {
				return err
			}
			return registerRightBracket(o.SecondName)
		case opalgebra.Postfix:
			return register(o.Name, o, level)
		case opalgebra.PostfixBracketed:
			if err := register(o.LeftBracket, o, level); err != nil {
				return err
			}
			return registerRightBracket(o.RightBracket)
		default:
			return &GrammarError{Reason: fmt.Sprintf("unknown operator shape %T", op)}
		}
	}

	tb := opalgebra.TransparentBracket{LeftBracket: b.leftBracket, RightBracket: b.rightBracket}
	sentinel := opalgebra.Level{Name: "trn", Prec: sentinelPrec, Assoc: opalgebra.None}
	if err := addOp(tb, sentinel); err != nil {
		return nil, err
	}
	precByAssoc[sentinel.Prec] = sentinel.Assoc

	n := len(b.levels)
	for i := range b.levels {
		level := &b.levels[i]
		level.info.Prec = n - i
		if existing, ok := precByAssoc[level.info.Prec]; ok && existing != level.info.Assoc {
			return nil, &GrammarError{Reason: fmt.Sprintf("mixed associativity at precedence %d", level.info.Prec)}
		}
		precByAssoc[level.info.Prec] = level.info.Assoc
		for _, op := range level.ops {
			if err := addOp(op, level.info); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}
