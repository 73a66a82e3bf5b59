package cmd

import (
	"fmt"
	"os"

	"mixfix/pkg/grammar"
	"mixfix/pkg/gspec"
)

// loadGrammarFile reads and decodes the JSON grammar document at path,
// wrapping any read or decode failure with the path for context.
func loadGrammarFile(path string) (*grammar.Grammar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	g, err := gspec.Load(data)
	if err != nil {
		return nil, fmt.Errorf("loading grammar from %s: %w", path, err)
	}
	return g, nil
}

// loadGrammarSpec reads and decodes the JSON grammar document at path
// without building it, for commands that only need to inspect the
// document's declared shape (e.g. doc).
func loadGrammarSpec(path string) (*gspec.Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	s, err := gspec.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing grammar from %s: %w", path, err)
	}
	return s, nil
}
