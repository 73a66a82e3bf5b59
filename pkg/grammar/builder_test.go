package grammar

import (
	"testing"

	"mixfix/pkg/opalgebra"
)

func buildBasic(t *testing.T) *Grammar {
	t.Helper()
	b := NewBuilder()
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
	g, err := b.Finish()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return g
}

func TestFinishAssignsTightestToFirstInserted(t *testing.T) {
	g := buildBasic(t)
	mul, ok := g.Lookup("*")
	if !ok || mul.RegularResult == nil {
		t.Fatal("expected '*' to be registered")
	}
	add, ok := g.Lookup("+")
	if !ok || add.RegularResult == nil {
		t.Fatal("expected '+' to be registered")
	}
	if !(mul.RegularResult.Level.Prec > add.RegularResult.Level.Prec) {
		t.Fatalf("expected mul precedence (%d) to exceed add precedence (%d)",
			mul.RegularResult.Level.Prec, add.RegularResult.Level.Prec)
	}
}

func TestFinishRegistersDefaultTransparentBrackets(t *testing.T) {
	g := buildBasic(t)
	entry, ok := g.Lookup("(")
	if !ok {
		t.Fatal("expected '(' to be registered")
	}
	left, right, tb := entry.TransparentBrackets()
	if !tb || left != "(" || right != ")" {
		t.Fatalf("expected transparent bracket pair, got left=%q right=%q ok=%v", left, right, tb)
	}
	closing, ok := g.Lookup(")")
	if !ok || !closing.IsRightBracket {
		t.Fatal("expected ')' to be registered as a right bracket")
	}
}

func TestFinishNoConcatByDefault(t *testing.T) {
	g := buildBasic(t)
	if g.HasConcat() {
		t.Fatal("expected no concat level without an unnamed Infix")
	}
}

func TestFinishRegistersConcatLevel(t *testing.T) {
	b := NewBuilder()
	b.LevelLTR("cat", opalgebra.Infix{IsConcat: true})
	g, err := b.Finish()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !g.HasConcat() {
		t.Fatal("expected concat level to be registered")
	}
	lvl, _ := g.ConcatLevel()
	if lvl.Name != "cat" {
		t.Fatalf("got concat level name %q, want \"cat\"", lvl.Name)
	}
}

func TestFinishRejectsDuplicateUnnamedInfix(t *testing.T) {
	b := NewBuilder()
	b.LevelLTR("cat1", opalgebra.Infix{IsConcat: true})
	b.LevelLTR("cat2", opalgebra.Infix{IsConcat: true})
	_, err := b.Finish()
	if err == nil {
		t.Fatal("expected an error for two unnamed infix levels")
	}
}

func TestFinishRejectsPrefixBracketedClashingWithDefaultTransparentBrackets(t *testing.T) {
	b := NewBuilder()
	b.LevelRTL("prf", opalgebra.PrefixBracketed{LeftBracket: "(", RightBracket: ")"})
	_, err := b.Finish()
	if err == nil {
		t.Fatal("expected an error: '(' already claimed by the default transparent bracket pair")
	}
	if _, ok := err.(*GrammarError); !ok {
		t.Fatalf("expected *GrammarError, got %T (%v)", err, err)
	}
}

func TestFinishAllowsPrefixBracketedWithDistinctTransparentBrackets(t *testing.T) {
	b := NewBuilder([2]string{"(..", "..)"})
	b.LevelRTL("prf", opalgebra.PrefixBracketed{LeftBracket: "(", RightBracket: ")"})
	_, err := b.Finish()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFinishRejectsTernaryAndPostfixBracketedSharingSpelling(t *testing.T) {
	b := NewBuilder([2]string{"(..", "..)"})
	b.LevelLTR("ter", opalgebra.Ternary{FirstName: "(", SecondName: ")"})
	b.LevelLTR("pst", opalgebra.PostfixBracketed{LeftBracket: "(", RightBracket: ")"})
	_, err := b.Finish()
	if err == nil {
		t.Fatal("expected an error: '(' claimed as a regular role twice")
	}
}
