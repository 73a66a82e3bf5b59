// Package token defines the flat token model consumed by the parser
// drivers, and a minimal word-splitting lexer matching the external
// lexer contract: a word beginning with a byte from the fixed set
// "_abcdefghijklmno0123456789" is an Atom, everything else is an Oper.
package token

import (
	"errors"
	"strings"
)

// Kind distinguishes the two token classes the parsers understand.
type Kind int

const (
	Atom Kind = iota
	Oper
)

func (k Kind) String() string {
	switch k {
	case Atom:
		return "ATOM"
	case Oper:
		return "OPER"
	default:
		return "UNKNOWN"
	}
}

// Token is an immutable classified word from the input stream.
type Token struct {
	Kind Kind
	Name string
}

// ErrDoubleSpace is returned when the source contains two consecutive
// space characters, which the word-splitting contract treats as a
// lexing failure rather than an empty word.
var ErrDoubleSpace = errors.New("token: two consecutive spaces in source")

// atomStart is the exact byte set that puts a word's Kind at Atom.
const atomStart = "_abcdefghijklmno0123456789"

func isAtomStart(b byte) bool {
	return strings.IndexByte(atomStart, b) >= 0
}

// Tokenize splits source on single ASCII spaces and classifies each
// resulting word. Any run of two or more spaces, leading and trailing
// ones included, is a lexing failure; a single leading or trailing
// space is trimmed.
func Tokenize(source string) ([]Token, error) {
	if strings.Contains(source, "  ") {
		return nil, ErrDoubleSpace
	}
	trimmed := strings.Trim(source, " ")
	if trimmed == "" {
		return nil, nil
	}
	words := strings.Split(trimmed, " ")
	tokens := make([]Token, 0, len(words))
	for _, w := range words {
		kind := Oper
		if len(w) > 0 && isAtomStart(w[0]) {
			kind = Atom
		}
		tokens = append(tokens, Token{Kind: kind, Name: w})
	}
	return tokens, nil
}
