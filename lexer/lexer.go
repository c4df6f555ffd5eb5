// Package lexer defines the lexical analyzer.
package lexer

import (
	"regexp"

	"github.com/melex-go/melex"
	"github.com/melex-go/melex/stream"
)

// Error codes used by lexer:
const (
	// NoPatternsError indicates an empty lexical table.
	NoPatternsError = melex.LexicalErrors + iota

	// WrongRegexpError indicates a pattern that does not compile.
	WrongRegexpError

	// DuplicateKindError indicates two patterns sharing a token kind name.
	DuplicateKindError
)

// Def describes one entry of the lexical table: a token kind name and its
// pattern source. Definition order matters, the first matching pattern wins.
type Def struct {
	Kind string
	Re   string
}

type pattern struct {
	kind string
	re   *regexp.Regexp
}

// Lexer matches tokens at the current stream position against an ordered
// pattern list. Lexer itself is immutable and stateless; position tracking
// lives in the stream.
type Lexer struct {
	patterns []pattern
	kinds    map[string]bool
}

// New compiles a lexical table. Each pattern is implicitly anchored at the
// match position.
func New(defs []Def) (*Lexer, error) {
	if len(defs) == 0 {
		return nil, melex.FormatError(NoPatternsError, "empty lexical table")
	}

	l := &Lexer{
		patterns: make([]pattern, 0, len(defs)),
		kinds:    make(map[string]bool, len(defs)),
	}
	for _, d := range defs {
		if l.kinds[d.Kind] {
			return nil, melex.FormatError(DuplicateKindError, "token kind %q defined twice", d.Kind)
		}

		re, e := regexp.Compile("^(?:" + d.Re + ")")
		if e != nil {
			return nil, melex.FormatError(WrongRegexpError, "incorrect pattern for %q: %s", d.Kind, e.Error())
		}

		l.kinds[d.Kind] = true
		l.patterns = append(l.patterns, pattern{d.Kind, re})
	}

	return l, nil
}

// HasKind reports whether the lexical table defines the given token kind.
func (l *Lexer) HasKind(kind string) bool {
	return l.kinds[kind]
}

// Next fetches the token starting at the current stream position and advances
// past it. Returns false if no pattern matches there; the stream is then left
// untouched. Whitespace and comments are expected to be consumed by the
// caller before Next is invoked.
func (l *Lexer) Next(s *stream.Stream) (Token, bool) {
	for _, p := range l.patterns {
		text, f := s.Match(p.re)
		if f {
			return Token{p.kind, text}, true
		}
	}

	return Token{}, false
}
