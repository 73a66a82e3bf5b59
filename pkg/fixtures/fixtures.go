// Package fixtures holds a battery of named grammars and source/result
// pairs used to exercise both parser drivers identically. Every case
// here is ported from the hand-maintained regression set that shipped
// alongside the grammar algorithm this module generalizes; a case
// whose WantErr is true is expected to fail to parse, not to produce a
// particular tree.
package fixtures

import (
	"mixfix/pkg/grammar"
	"mixfix/pkg/opalgebra"
)

// Case is one source string and its expected rendered tree, or a
// marker that the source is expected to fail to parse.
type Case struct {
	Source   string
	Expected string
	WantErr  bool
}

// Suite bundles a grammar with the cases written against it.
type Suite struct {
	Name    string
	Grammar *grammar.Grammar
	Cases   []Case
}

func must(g *grammar.Grammar, err error) *grammar.Grammar {
	if err != nil {
		panic(err)
	}
	return g
}

func ok(source, expected string) Case { return Case{Source: source, Expected: expected} }
func fails(source string) Case        { return Case{Source: source, WantErr: true} }

// Basic is the grammar used throughout the primary regression set: a
// small arithmetic-and-member-access language with subscripting,
// unary and binary arithmetic, a ternary conditional, and assignment.
func Basic() *Suite {
	b := grammar.NewBuilder()
	b.LevelRTL("cal", opalgebra.Infix{Name: "."})
	b.LevelLTR("sqb", opalgebra.PostfixBracketed{LeftBracket: "[", RightBracket: "]"})
	b.LevelLTR("var", opalgebra.Postfix{Name: "$"})
	b.LevelLTR("exc", opalgebra.Postfix{Name: "!"})
	b.LevelRTL("til", opalgebra.Prefix{Name: "~"})
	b.LevelRTL("prf", opalgebra.Prefix{Name: "+"}, opalgebra.Prefix{Name: "-"})
	b.LevelLTR("mul", opalgebra.Infix{Name: "*"}, opalgebra.Infix{Name: "/"})
	b.LevelFlat("add", opalgebra.Infix{Name: "+"}, opalgebra.Infix{Name: "-"})
	b.LevelRTL("ter", opalgebra.Ternary{FirstName: "?", SecondName: ":"})
	b.LevelRTL("eqa", opalgebra.Infix{Name: "="})

	return &Suite{
		Name:    "base",
		Grammar: must(b.Finish()),
		Cases: []Case{
			ok("1", "1"),
			ok("1 + 2", "add{ 1 + 2 }"),
			ok("1 + 2 * 3", "add{ 1 + mul{ 2 * 3 } }"),
			ok("f . g . h", "cal{ f . cal{ g . h } }"),

			ok("1 + 2 * 3 + 4", "add{ 1 + mul{ 2 * 3 } + 4 }"),
			ok("1 + 2 + 3 - 4 + 5", "add{ 1 + 2 + 3 - 4 + 5 }"),
			ok("1 + 2 * a ! + 3 - 4 + 5", "add{ 1 + mul{ 2 * exc{ a ! } } + 3 - 4 + 5 }"),
			ok("a + b * c * d + e", "add{ a + mul{ mul{ b * c } * d } + e }"),
			ok("a + b - c + d", "add{ a + b - c + d }"),
			ok("1 + 2 + f . g . h * 3 * 4", "add{ 1 + 2 + mul{ mul{ cal{ f . cal{ g . h } } * 3 } * 4 } }"),

			ok("2 ! + 3", "add{ exc{ 2 ! } + 3 }"),
			ok("+ 1", "prf{ + 1 }"),
			ok("+ ~ 1", "prf{ + til{ ~ 1 } }"),
			fails("~ + 1"),
			ok("1 $ !", "exc{ var{ 1 $ } ! }"),
			fails("1 ! $"),
			ok("- + 1", "prf{ - prf{ + 1 } }"),
			ok("1 + + - 1", "add{ 1 + prf{ + prf{ - 1 } } }"),
			ok("- - 1 * 2", "mul{ prf{ - prf{ - 1 } } * 2 }"),
			ok("- - f . g", "prf{ - prf{ - cal{ f . g } } }"),
			ok("- 9 !", "prf{ - exc{ 9 ! } }"),
			ok("f . g !", "exc{ cal{ f . g } ! }"),
			fails("+ f . + g"),
			fails("+ f . + g . + h"),
			ok("+ f + g", "add{ prf{ + f } + g }"),
			ok("+ f . g", "prf{ + cal{ f . g } }"),
			ok("+ f + + g", "add{ prf{ + f } + prf{ + g } }"),
			fails("f ! . g !"),
			fails("f ! . g ! . h !"),
			ok("f + g !", "add{ f + exc{ g ! } }"),
			ok("f ! + g !", "add{ exc{ f ! } + exc{ g ! } }"),

			ok("( ( ( 0 ) ) )", "0"),
			ok("( 1 + 2 ) * 3", "mul{ add{ 1 + 2 } * 3 }"),
			ok("1 + ( 2 * 3 )", "add{ 1 + mul{ 2 * 3 } }"),

			ok("a [ 0 ]", "sqb{ a [ 0 ] }"),
			ok("a [ 0 ] [ 1 ]", "sqb{ sqb{ a [ 0 ] } [ 1 ] }"),
			ok("a [ 0 ] [ b [ 0 + 1 ] ]", "sqb{ sqb{ a [ 0 ] } [ sqb{ b [ add{ 0 + 1 } ] } ] }"),
			fails("a [ 0 ] . b [ 0 ]"),
			ok("a [ 0 ] + b [ 0 ]", "add{ sqb{ a [ 0 ] } + sqb{ b [ 0 ] } }"),

			ok("a ? b : c", "ter{ a ? b : c }"),
			ok("a ? b : c ? d : e", "ter{ a ? b : ter{ c ? d : e } }"),
			ok("a ? b ? c : d : e", "ter{ a ? ter{ b ? c : d } : e }"),
			ok("a = b ? c : d = e", "eqa{ a = eqa{ ter{ b ? c : d } = e } }"),
			ok("a + b ? c : d + e", "ter{ add{ a + b } ? c : add{ d + e } }"),
			ok("a = b ? c = d : e = f", "eqa{ a = eqa{ ter{ b ? eqa{ c = d } : e } = f } }"),
			ok("a + b ? c + d : e + f", "ter{ add{ a + b } ? add{ c + d } : add{ e + f } }"),
		},
	}
}

// BasicLowPostfix registers '.' as a FLAT level below a postfix '!',
// exercising flat chaining of a named infix operator.
func BasicLowPostfix() *Suite {
	b := grammar.NewBuilder()
	b.LevelFlat("cal", opalgebra.Infix{Name: "."})
	b.LevelLTR("exc", opalgebra.Postfix{Name: "!"})

	return &Suite{
		Name:    "low-postfix",
		Grammar: must(b.Finish()),
		Cases: []Case{
			ok("a . b . c . d", "cal{ a . b . c . d }"),
			fails("a ! . b . c . d"),
			fails("a . b ! . c . d"),
			ok("a . b . c . d !", "exc{ cal{ a . b . c . d } ! }"),
		},
	}
}

// PQNotation is a ten-level grammar of bare prefix/postfix/infix
// operators distinguished only by precedence, checking that
// precedence climbing alone (no named shapes) drives correct nesting.
func PQNotation() *Suite {
	b := grammar.NewBuilder()
	b.LevelLTR("l1", opalgebra.Postfix{Name: "q4"})
	b.LevelLTR("l2", opalgebra.Postfix{Name: "q3"})
	b.LevelRTL("l3", opalgebra.Prefix{Name: "p4"})
	b.LevelRTL("l4", opalgebra.Prefix{Name: "p3"})
	b.LevelRTL("l5", opalgebra.Infix{Name: "x2"})
	b.LevelLTR("l6", opalgebra.Infix{Name: "x1"})
	b.LevelLTR("l7", opalgebra.Postfix{Name: "q2"})
	b.LevelLTR("l8", opalgebra.Postfix{Name: "q1"})
	b.LevelRTL("l9", opalgebra.Prefix{Name: "p2"})
	b.LevelRTL("l10", opalgebra.Prefix{Name: "p1"})

	return &Suite{
		Name:    "pq",
		Grammar: must(b.Finish()),
		Cases: []Case{
			fails("p2 p1 a"),
			ok("p1 p2 a", "l10{ p1 l9{ p2 a } }"),
			fails("a q1 q2"),
			ok("a q2 q1", "l8{ l7{ a q2 } q1 }"),
			ok("p3 aaa x1 bbb q3", "l6{ l4{ p3 aaa } x1 l2{ bbb q3 } }"),
			ok("aaa q3 x1 bbb q2", "l7{ l6{ l2{ aaa q3 } x1 bbb } q2 }"),
			fails("aaa q2 x1 bbb q3"),
		},
	}
}

// TernarySuite is a single-level LEFT_TO_RIGHT ternary grammar,
// checking that a chain of sibling ternaries nests leftward while a
// ternary inside another's middle operand still nests inside it.
func TernarySuite() *Suite {
	b := grammar.NewBuilder()
	b.LevelLTR("ter", opalgebra.Ternary{FirstName: "?", SecondName: ":"})

	return &Suite{
		Name:    "ternary",
		Grammar: must(b.Finish()),
		Cases: []Case{
			ok("a ? b : c", "ter{ a ? b : c }"),
			ok("a ? b : c ? d : e", "ter{ ter{ a ? b : c } ? d : e }"),
			ok("a ? b ? c : d : e", "ter{ a ? ter{ b ? c : d } : e }"),
		},
	}
}

// Parens is the plain PrefixBracketed grouping grammar with a
// non-default transparent bracket pair, so "(" / ")" is free to be
// claimed by the cast-like prefix operator.
func Parens() *Suite {
	b := grammar.NewBuilder([2]string{"(..", "..)"})
	b.LevelRTL("prf", opalgebra.PrefixBracketed{LeftBracket: "(", RightBracket: ")"})

	return &Suite{
		Name:    "parens",
		Grammar: must(b.Finish()),
		Cases: []Case{
			ok("( b ) a", "prf{ ( b ) a }"),
			fails("a (.. b ..)"),
			ok("( (.. b ..) ) (.. a ..)", "prf{ ( b ) a }"),
		},
	}
}

// ParensConcat adds hallucinated concatenation above the same prefix
// grammar, so two adjacent atoms or atom-shaped results glue together.
func ParensConcat() *Suite {
	b := grammar.NewBuilder([2]string{"(..", "..)"})
	b.LevelRTL("prf", opalgebra.PrefixBracketed{LeftBracket: "(", RightBracket: ")"})
	b.LevelLTR("cat", opalgebra.Infix{IsConcat: true})

	return &Suite{
		Name:    "parens-concat",
		Grammar: must(b.Finish()),
		Cases: []Case{
			ok("( b ) a", "prf{ ( b ) a }"),
			ok("a ( b ) c", "cat{ a CONCAT prf{ ( b ) c } }"),
			ok("( b ) a c", "cat{ prf{ ( b ) a } CONCAT c }"),
			ok("f a ( b ) c", "cat{ cat{ f CONCAT a } CONCAT prf{ ( b ) c } }"),
			ok("f ( b ) a c", "cat{ cat{ f CONCAT prf{ ( b ) a } } CONCAT c }"),
			ok("a b", "cat{ a CONCAT b }"),
			ok("a (.. b ..)", "cat{ a CONCAT b }"),
			ok("( (.. b ..) ) (.. a ..) (.. c ..)", "cat{ prf{ ( b ) a } CONCAT c }"),
		},
	}
}

// ParensConcat2 is the same grammar with concat registered above
// (tighter than) the prefix level instead of below it, flipping which
// of concatenation or the bracketed prefix wins adjacent to a paren.
func ParensConcat2() *Suite {
	b := grammar.NewBuilder([2]string{"(..", "..)"})
	b.LevelLTR("cat", opalgebra.Infix{IsConcat: true})
	b.LevelRTL("prf", opalgebra.PrefixBracketed{LeftBracket: "(", RightBracket: ")"})

	return &Suite{
		Name:    "parens-concat-2",
		Grammar: must(b.Finish()),
		Cases: []Case{
			ok("( b ) a", "prf{ ( b ) a }"),
			fails("a ( b ) c"),
			ok("a (.. ( b ) c ..)", "cat{ a CONCAT prf{ ( b ) c } }"),
			ok("( b ) a c", "prf{ ( b ) cat{ a CONCAT c } }"),
			fails("f a ( b ) c"),
			fails("f ( b ) a c"),
			ok("f a (.. ( b ) c ..)", "cat{ cat{ f CONCAT a } CONCAT prf{ ( b ) c } }"),
			ok("f (.. ( b ) a ..) c", "cat{ cat{ f CONCAT prf{ ( b ) a } } CONCAT c }"),
			ok("a b", "cat{ a CONCAT b }"),
			ok("a (.. b ..)", "cat{ a CONCAT b }"),
			ok("( (.. b ..) ) (.. a ..) (.. c ..)", "prf{ ( b ) cat{ a CONCAT c } }"),
		},
	}
}

// Concat exercises hallucinated concatenation sitting at a named
// precedence among other named operators, LEFT_TO_RIGHT.
func Concat() *Suite {
	b := grammar.NewBuilder()
	b.LevelRTL("fnc", opalgebra.Infix{Name: "."})
	b.LevelLTR("exc", opalgebra.Postfix{Name: "!"})
	b.LevelRTL("tld", opalgebra.Prefix{Name: "~"})
	b.LevelLTR("add", opalgebra.Infix{Name: "+"})
	b.LevelLTR("ifx", opalgebra.Infix{IsConcat: true}, opalgebra.Infix{Name: "*"})
	b.LevelLTR("qus", opalgebra.Postfix{Name: "?"})
	b.LevelRTL("prf", opalgebra.Prefix{Name: "-"})
	b.LevelRTL("eqa", opalgebra.Infix{Name: "="})

	return &Suite{
		Name:    "concat",
		Grammar: must(b.Finish()),
		Cases: []Case{
			ok("a b", "ifx{ a CONCAT b }"),
			ok("a b c", "ifx{ ifx{ a CONCAT b } CONCAT c }"),
			ok("a b * c d", "ifx{ ifx{ ifx{ a CONCAT b } * c } CONCAT d }"),
			ok("a b . c d", "ifx{ ifx{ a CONCAT fnc{ b . c } } CONCAT d }"),
			ok("a b = c d", "eqa{ ifx{ a CONCAT b } = ifx{ c CONCAT d } }"),
			ok("~ a b", "ifx{ tld{ ~ a } CONCAT b }"),
			ok("- a b", "prf{ - ifx{ a CONCAT b } }"),
			ok("a b !", "ifx{ a CONCAT exc{ b ! } }"),
			ok("a b ?", "qus{ ifx{ a CONCAT b } ? }"),
			ok("a ~ b", "ifx{ a CONCAT tld{ ~ b } }"),
			fails("a - b"),
			ok("a ! b", "ifx{ exc{ a ! } CONCAT b }"),
			fails("a ? b"),
		},
	}
}

// ConcatRTL is the same shape as Concat but with concatenation
// RIGHT_TO_LEFT, and '-' restored to a genuine infix at the add level,
// which binds tighter than concatenation.
func ConcatRTL() *Suite {
	b := grammar.NewBuilder()
	b.LevelRTL("fnc", opalgebra.Infix{Name: "."})
	b.LevelLTR("exc", opalgebra.Postfix{Name: "!"})
	b.LevelRTL("tld", opalgebra.Prefix{Name: "~"})
	b.LevelLTR("add", opalgebra.Infix{Name: "+"}, opalgebra.Infix{Name: "-"})
	b.LevelRTL("ifx", opalgebra.Infix{IsConcat: true}, opalgebra.Infix{Name: "*"})
	b.LevelLTR("qus", opalgebra.Postfix{Name: "?"})
	b.LevelRTL("prf", opalgebra.Prefix{Name: "-"})
	b.LevelRTL("eqa", opalgebra.Infix{Name: "="})

	return &Suite{
		Name:    "concat_rtl",
		Grammar: must(b.Finish()),
		Cases: []Case{
			ok("a b", "ifx{ a CONCAT b }"),
			ok("a - b", "add{ a - b }"),
			ok("a ( - b )", "ifx{ a CONCAT prf{ - b } }"),
			ok("a b c", "ifx{ a CONCAT ifx{ b CONCAT c } }"),
		},
	}
}

// CPP is a C++-flavored grammar mixing several shapes (including a
// Ternary, a Prefix, and two Infix operators sharing one precedence
// level) to exercise the general case rather than one shape per level.
func CPP() *Suite {
	b := grammar.NewBuilder()
	b.LevelLTR("nam", opalgebra.Infix{Name: "::"})
	b.LevelLTR("pst",
		opalgebra.Postfix{Name: "++"},
		opalgebra.Postfix{Name: "--"},
		opalgebra.PostfixBracketed{LeftBracket: "(", RightBracket: ")"},
		opalgebra.PostfixBracketed{LeftBracket: "[", RightBracket: "]"},
		opalgebra.Infix{Name: "."},
		opalgebra.Infix{Name: "->"},
	)
	b.LevelRTL("prf",
		opalgebra.Prefix{Name: "++"},
		opalgebra.Prefix{Name: "--"},
		opalgebra.PrefixBracketed{LeftBracket: "<.", RightBracket: ".>"},
		opalgebra.Prefix{Name: "+"},
		opalgebra.Prefix{Name: "-"},
		opalgebra.Prefix{Name: "!"},
		opalgebra.Prefix{Name: "~"},
		opalgebra.Prefix{Name: "*"},
		opalgebra.Prefix{Name: "&"},
		opalgebra.Prefix{Name: "sizeof"},
		opalgebra.Prefix{Name: "new"},
	)
	b.LevelLTR("mem", opalgebra.Infix{Name: ".*"}, opalgebra.Infix{Name: "->*"})
	b.LevelLTR("mul", opalgebra.Infix{Name: "*"}, opalgebra.Infix{Name: "/"}, opalgebra.Infix{Name: "%"})
	b.LevelLTR("add", opalgebra.Infix{Name: "+"}, opalgebra.Infix{Name: "-"})
	b.LevelLTR("sft", opalgebra.Infix{Name: "<<"}, opalgebra.Infix{Name: ">>"})
	b.LevelLTR("spc", opalgebra.Infix{Name: "<=>"})
	b.LevelLTR("cmp", opalgebra.Infix{Name: "<"}, opalgebra.Infix{Name: "<="}, opalgebra.Infix{Name: ">"}, opalgebra.Infix{Name: ">="})
	b.LevelLTR("eqa", opalgebra.Infix{Name: "=="}, opalgebra.Infix{Name: "!="})
	b.LevelLTR("ban", opalgebra.Infix{Name: "&"})
	b.LevelLTR("xor", opalgebra.Infix{Name: "^"})
	b.LevelLTR("bor", opalgebra.Infix{Name: "|"})
	b.LevelLTR("lan", opalgebra.Infix{Name: "&&"})
	b.LevelLTR("lor", opalgebra.Infix{Name: "||"})
	b.LevelRTL("asg", opalgebra.Ternary{FirstName: "?", SecondName: ":"}, opalgebra.Prefix{Name: "throw"}, opalgebra.Infix{Name: "="}, opalgebra.Infix{Name: "+="}, opalgebra.Infix{Name: "-="})
	b.LevelLTR("com", opalgebra.Infix{Name: ","})

	return &Suite{
		Name:    "C++",
		Grammar: must(b.Finish()),
		Cases: []Case{
			ok("++ a", "prf{ ++ a }"),
			ok("a --", "pst{ a -- }"),
			ok("++ a --", "prf{ ++ pst{ a -- } }"),
			ok("-- a ++", "prf{ -- pst{ a ++ } }"),
			ok("a ( b , c )", "pst{ a ( com{ b , c } ) }"),
			ok("a ( b , c , d )", "pst{ a ( com{ com{ b , c } , d } ) }"),
			ok("a + ( b , c , d )", "add{ a + com{ com{ b , c } , d } }"),
			ok("a ( ( b , c ) )", "pst{ a ( com{ b , c } ) }"),
			ok("sizeof a", "prf{ sizeof a }"),
			ok("sizeof ( a )", "prf{ sizeof a }"),
			ok("a + ( b + c )", "add{ a + add{ b + c } }"),
			ok("a ( b + c )", "pst{ a ( add{ b + c } ) }"),
			fails("( int ) a"),
			fails("int a"),
			ok("a < b", "cmp{ a < b }"),
			ok("a > b", "cmp{ a > b }"),
			ok("<. int .> a", "prf{ <. int .> a }"),
		},
	}
}

// All returns every suite, in the order a full differential run should
// exercise them.
func All() []*Suite {
	return []*Suite{
		Basic(),
		BasicLowPostfix(),
		PQNotation(),
		TernarySuite(),
		Parens(),
		ParensConcat(),
		ParensConcat2(),
		Concat(),
		ConcatRTL(),
		CPP(),
	}
}
