package token

import "testing"

func TestTokenizeClassification(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []Token
	}{
		{
			name:   "digits and letters in range are atoms",
			source: "a 0 n o",
			want: []Token{
				{Kind: Atom, Name: "a"},
				{Kind: Atom, Name: "0"},
				{Kind: Atom, Name: "n"},
				{Kind: Atom, Name: "o"},
			},
		},
		{
			name:   "letters past o are operators",
			source: "p z +",
			want: []Token{
				{Kind: Oper, Name: "p"},
				{Kind: Oper, Name: "z"},
				{Kind: Oper, Name: "+"},
			},
		},
		{
			name:   "underscore starts an atom",
			source: "_tmp + 1",
			want: []Token{
				{Kind: Atom, Name: "_tmp"},
				{Kind: Oper, Name: "+"},
				{Kind: Atom, Name: "1"},
			},
		},
		{
			name:   "multi-char word classified by first byte only",
			source: "abc pqr",
			want: []Token{
				{Kind: Atom, Name: "abc"},
				{Kind: Oper, Name: "pqr"},
			},
		},
		{
			name:   "empty source yields no tokens",
			source: "",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.source)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d tokens, want %d: %v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTokenizeDoubleSpaceFails(t *testing.T) {
	_, err := Tokenize("a  b")
	if err != ErrDoubleSpace {
		t.Fatalf("got err=%v, want ErrDoubleSpace", err)
	}
}

func TestTokenizeTrimsOuterSpaces(t *testing.T) {
	got, err := Tokenize(" a + b ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d tokens, want 3: %v", len(got), got)
	}
}
