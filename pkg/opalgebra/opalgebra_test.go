package opalgebra

import (
	"testing"

	"mixfix/pkg/tree"
)

func TestLevelLessByPrecedence(t *testing.T) {
	low := Level{Name: "add", Prec: 1, Assoc: Flat}
	high := Level{Name: "mul", Prec: 2, Assoc: LeftToRight}
	if !low.Less(high) {
		t.Fatal("expected lower precedence level to be Less")
	}
	if high.Less(low) {
		t.Fatal("expected higher precedence level not to be Less")
	}
}

func TestLevelLessRightToLeftTieBreak(t *testing.T) {
	l := Level{Name: "prf", Prec: 3, Assoc: RightToLeft}
	if !l.Less(l) {
		t.Fatal("expected RIGHT_TO_LEFT level to be Less than itself at equal precedence")
	}
	flat := Level{Name: "add", Prec: 3, Assoc: Flat}
	if flat.Less(flat) {
		t.Fatal("expected FLAT level not to be Less than itself at equal precedence")
	}
}

func TestPrefixToNode(t *testing.T) {
	op := Prefix{Name: "-"}
	n := op.ToNode([]*tree.Node{tree.Leaf("1")})
	got := (&tree.Node{Name: "prf", Children: n.Children}).Render()
	want := "prf{ - 1 }"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestTernaryToNode(t *testing.T) {
	op := Ternary{FirstName: "?", SecondName: ":"}
	n := op.ToNode([]*tree.Node{tree.Leaf("a"), tree.Leaf("b"), tree.Leaf("c")})
	got := (&tree.Node{Name: "ter", Children: n.Children}).Render()
	want := "ter{ a ? b : c }"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestInfixConcatToNode(t *testing.T) {
	op := Infix{IsConcat: true}
	n := op.ToNode([]*tree.Node{tree.Leaf("a"), tree.Leaf("b")})
	got := (&tree.Node{Name: "cat", Children: n.Children}).Render()
	want := "cat{ a CONCAT b }"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestShapeClassification(t *testing.T) {
	if !IsPrefixShape(Prefix{Name: "-"}) {
		t.Error("Prefix should be a prefix shape")
	}
	if !IsPrefixShape(TransparentBracket{LeftBracket: "(", RightBracket: ")"}) {
		t.Error("TransparentBracket should be a prefix shape")
	}
	if IsPrefixShape(Postfix{Name: "!"}) {
		t.Error("Postfix should not be a prefix shape")
	}
	if !IsRegularShape(Ternary{FirstName: "?", SecondName: ":"}) {
		t.Error("Ternary should be a regular shape")
	}
	if !IsRegularShape(PostfixBracketed{LeftBracket: "[", RightBracket: "]"}) {
		t.Error("PostfixBracketed should be a regular shape")
	}
}
