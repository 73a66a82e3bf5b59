package refreducer

import (
	"testing"

	"mixfix/pkg/fixtures"
	"mixfix/pkg/token"
)

func TestFixtureSuites(t *testing.T) {
	for _, s := range fixtures.All() {
		s := s
		t.Run(s.Name, func(t *testing.T) {
			for _, c := range s.Cases {
				c := c
				t.Run(c.Source, func(t *testing.T) {
					toks, err := token.Tokenize(c.Source)
					if err != nil {
						if c.WantErr {
							return
						}
						t.Fatalf("tokenize(%q): unexpected error: %v", c.Source, err)
					}
					n, err := Parse(s.Grammar, toks)
					if c.WantErr {
						if err == nil {
							t.Fatalf("Parse(%q) = %q, want an error", c.Source, n.Render())
						}
						return
					}
					if err != nil {
						t.Fatalf("Parse(%q): unexpected error: %v", c.Source, err)
					}
					if got := n.Render(); got != c.Expected {
						t.Errorf("Parse(%q).Render() = %q, want %q", c.Source, got, c.Expected)
					}
				})
			}
		})
	}
}
