package refreducer

import (
	"testing"

	"mixfix/pkg/grammar"
	"mixfix/pkg/opalgebra"
	"mixfix/pkg/token"
)

func buildArith(t *testing.T) *grammar.Grammar {
	t.Helper()
	b := grammar.NewBuilder()
	b.LevelRTL("til", opalgebra.Prefix{Name: "~"})
	b.LevelLTR("exc", opalgebra.Postfix{Name: "!"})
	b.LevelLTR("mul", opalgebra.Infix{Name: "*"}, opalgebra.Infix{Name: "/"})
	b.LevelFlat("add", opalgebra.Infix{Name: "+"}, opalgebra.Infix{Name: "-"})
	b.LevelRTL("ter", opalgebra.Ternary{FirstName: "?", SecondName: ":"})
	b.LevelRTL("eqa", opalgebra.Infix{Name: "="})
	g, err := b.Finish()
	if err != nil {
		t.Fatalf("unexpected error building grammar: %v", err)
	}
	return g
}

func tokenize(t *testing.T, source string) []token.Token {
	t.Helper()
	toks, err := token.Tokenize(source)
	if err != nil {
		t.Fatalf("tokenize(%q): %v", source, err)
	}
	return toks
}

func parseRender(t *testing.T, g *grammar.Grammar, source string) string {
	t.Helper()
	n, err := Parse(g, tokenize(t, source))
	if err != nil {
		t.Fatalf("Parse(%q): unexpected error: %v", source, err)
	}
	return n.Render()
}

func TestMulBindsTighterThanAdd(t *testing.T) {
	g := buildArith(t)
	cases := map[string]string{
		"1 + 2 * 3": "add{ 1 + mul{ 2 * 3 } }",
		"1 * 2 + 3": "add{ mul{ 1 * 2 } + 3 }",
	}
	for src, want := range cases {
		if got := parseRender(t, g, src); got != want {
			t.Errorf("parseRender(%q) = %q, want %q", src, got, want)
		}
	}
}

func TestFlatAddChainsIntoOneNode(t *testing.T) {
	g := buildArith(t)
	got := parseRender(t, g, "1 + 2 - 3")
	want := "add{ 1 + 2 - 3 }"
	if got != want {
		t.Errorf("parseRender = %q, want %q", got, want)
	}
}

func TestChainedPrefixNestsRightToLeft(t *testing.T) {
	g := buildArith(t)
	got := parseRender(t, g, "~ ~ a")
	want := "til{ ~ til{ ~ a } }"
	if got != want {
		t.Errorf("parseRender = %q, want %q", got, want)
	}
}

func TestChainedPostfixNestsLeftToRight(t *testing.T) {
	g := buildArith(t)
	got := parseRender(t, g, "a ! !")
	want := "exc{ exc{ a ! } ! }"
	if got != want {
		t.Errorf("parseRender = %q, want %q", got, want)
	}
}

func TestParenthesesGroupBeforePrecedence(t *testing.T) {
	g := buildArith(t)
	got := parseRender(t, g, "( 1 + 2 ) * 3")
	want := "mul{ add{ 1 + 2 } * 3 }"
	if got != want {
		t.Errorf("parseRender = %q, want %q", got, want)
	}
}

func TestTernaryChainNestsInThirdOperand(t *testing.T) {
	g := buildArith(t)
	got := parseRender(t, g, "a ? b : c ? d : e")
	want := "ter{ a ? b : ter{ c ? d : e } }"
	if got != want {
		t.Errorf("parseRender = %q, want %q", got, want)
	}
}

func TestTernaryChainNestsInSecondOperand(t *testing.T) {
	g := buildArith(t)
	got := parseRender(t, g, "a ? b ? c : d : e")
	want := "ter{ a ? ter{ b ? c : d } : e }"
	if got != want {
		t.Errorf("parseRender = %q, want %q", got, want)
	}
}

func buildTernaryOnly(t *testing.T) *grammar.Grammar {
	t.Helper()
	b := grammar.NewBuilder()
	b.LevelLTR("ter", opalgebra.Ternary{FirstName: "?", SecondName: ":"})
	g, err := b.Finish()
	if err != nil {
		t.Fatalf("unexpected error building grammar: %v", err)
	}
	return g
}

func TestTernaryChainLTRNestsLeftward(t *testing.T) {
	g := buildTernaryOnly(t)
	got := parseRender(t, g, "a ? b : c ? d : e")
	want := "ter{ ter{ a ? b : c } ? d : e }"
	if got != want {
		t.Errorf("parseRender = %q, want %q", got, want)
	}
}

func TestTernaryChainLTRNestsInSecondOperand(t *testing.T) {
	g := buildTernaryOnly(t)
	got := parseRender(t, g, "a ? b ? c : d : e")
	want := "ter{ a ? ter{ b ? c : d } : e }"
	if got != want {
		t.Errorf("parseRender = %q, want %q", got, want)
	}
}

func TestUnknownOperatorFails(t *testing.T) {
	g := buildArith(t)
	_, err := Parse(g, tokenize(t, "a @ b"))
	if err == nil {
		t.Fatal("expected an error for an unregistered spelling")
	}
}

func TestUnmatchedTernaryCloseFails(t *testing.T) {
	g := buildArith(t)
	_, err := Parse(g, tokenize(t, "a : b"))
	if err == nil {
		t.Fatal("expected an error: ':' has no matching '?'")
	}
}

func TestMismatchedParenFails(t *testing.T) {
	g := buildArith(t)
	_, err := Parse(g, tokenize(t, "( 1 + 2"))
	if err == nil {
		t.Fatal("expected an error for an unclosed paren")
	}
}
