package tree

import "testing"

func TestRenderLeaf(t *testing.T) {
	n := Leaf("1")
	if got := n.Render(); got != "1" {
		t.Fatalf("got %q, want %q", got, "1")
	}
}

func TestRenderComposite(t *testing.T) {
	n := Composite("add", Leaf("1"), Leaf("+"), Leaf("2"))
	want := "add{ 1 + 2 }"
	if got := n.Render(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRenderNested(t *testing.T) {
	inner := Composite("mul", Leaf("2"), Leaf("*"), Leaf("3"))
	outer := Composite("add", Leaf("1"), Leaf("+"), inner)
	want := "add{ 1 + mul{ 2 * 3 } }"
	if got := outer.Render(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRenderConcat(t *testing.T) {
	n := Composite("cat", Leaf("a"), ConcatMarker(), Leaf("b"))
	want := "cat{ a CONCAT b }"
	if got := n.Render(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
