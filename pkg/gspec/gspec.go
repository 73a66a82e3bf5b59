// Package gspec decodes a grammar specification document into a
// grammar.Grammar. The document format is the one gap spec.md leaves
// open deliberately: a JSON object naming the transparent bracket pair
// and an ordered list of precedence levels, each carrying an
// associativity and the operator shapes registered at it.
package gspec

import (
	"encoding/json"
	"fmt"

	"mixfix/pkg/grammar"
	"mixfix/pkg/opalgebra"
)

// OpSpec is one operator shape within a level. Shape selects which of
// the remaining fields apply; fields irrelevant to a shape are ignored.
type OpSpec struct {
	Shape  string `json:"shape"`
	Name   string `json:"name,omitempty"`
	Left   string `json:"left,omitempty"`
	Right  string `json:"right,omitempty"`
	First  string `json:"first,omitempty"`
	Second string `json:"second,omitempty"`
}

// LevelSpec is one precedence level: a name, an associativity
// ("ltr", "rtl", or "flat"), and the operators registered at it.
type LevelSpec struct {
	Name  string   `json:"name"`
	Assoc string   `json:"assoc"`
	Ops   []OpSpec `json:"ops"`
}

// Spec is the full document: an optional transparent bracket pair
// (defaulting to "(" / ")") and levels in tightest-to-loosest order.
type Spec struct {
	LeftBracket  string      `json:"leftBracket,omitempty"`
	RightBracket string      `json:"rightBracket,omitempty"`
	Levels       []LevelSpec `json:"levels"`
}

// Error reports a problem with the document itself, as opposed to a
// *grammar.GrammarError raised once the levels are otherwise valid.
type Error struct {
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("gspec: %s", e.Detail)
}

func opFromSpec(o OpSpec) (opalgebra.Operator, error) {
	switch o.Shape {
	case "prefix":
		return opalgebra.Prefix{Name: o.Name}, nil
	case "prefixBracketed":
		return opalgebra.PrefixBracketed{LeftBracket: o.Left, RightBracket: o.Right}, nil
	case "postfix":
		return opalgebra.Postfix{Name: o.Name}, nil
	case "postfixBracketed":
		return opalgebra.PostfixBracketed{LeftBracket: o.Left, RightBracket: o.Right}, nil
	case "infix":
		return opalgebra.Infix{Name: o.Name}, nil
	case "concat":
		return opalgebra.Infix{IsConcat: true}, nil
	case "ternary":
		return opalgebra.Ternary{FirstName: o.First, SecondName: o.Second}, nil
	default:
		return nil, &Error{Detail: fmt.Sprintf("unknown operator shape %q", o.Shape)}
	}
}

// Parse decodes data into a Spec without building a Grammar, so a
// caller can inspect or re-render it (as `axe doc` does) before
// committing to Build.
func Parse(data []byte) (*Spec, error) {
	var s Spec
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, &Error{Detail: fmt.Sprintf("invalid JSON: %v", err)}
	}
	if len(s.Levels) == 0 {
		return nil, &Error{Detail: "document declares no levels"}
	}
	return &s, nil
}

// Build turns a Spec into a grammar.Grammar, or returns the first
// *grammar.GrammarError the builder reports.
func Build(s *Spec) (*grammar.Grammar, error) {
	var b *grammar.Builder
	if s.LeftBracket != "" || s.RightBracket != "" {
		left, right := s.LeftBracket, s.RightBracket
		if left == "" {
			left = "("
		}
		if right == "" {
			right = ")"
		}
		b = grammar.NewBuilder([2]string{left, right})
	} else {
		b = grammar.NewBuilder()
	}

	for _, lvl := range s.Levels {
		ops := make([]opalgebra.Operator, 0, len(lvl.Ops))
		for _, o := range lvl.Ops {
			op, err := opFromSpec(o)
			if err != nil {
				return nil, err
			}
			ops = append(ops, op)
		}
		switch lvl.Assoc {
		case "ltr", "":
			b.LevelLTR(lvl.Name, ops...)
		case "rtl":
			b.LevelRTL(lvl.Name, ops...)
		case "flat":
			b.LevelFlat(lvl.Name, ops...)
		default:
			return nil, &Error{Detail: fmt.Sprintf("level %q: unknown associativity %q", lvl.Name, lvl.Assoc)}
		}
	}

	return b.Finish()
}

// Load decodes and builds in one step — the common path for every CLI
// command that takes a grammar document.
func Load(data []byte) (*grammar.Grammar, error) {
	s, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return Build(s)
}
