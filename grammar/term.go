package grammar

import (
	"github.com/melex-go/melex/lexer"
)

// Kind returns a terminal matching any token of the given kind, reported with
// the given style tag.
func Kind(style, kind string) *Term {
	return &Term{
		Style: style,
		Match: func(t lexer.Token) bool {
			return t.Kind == kind
		},
	}
}

// Punct returns a terminal matching the punctuation token with the given text.
func Punct(text string) *Term {
	return &Term{
		Style: Punctuation,
		Match: func(t lexer.Token) bool {
			return t.Kind == Punctuation && t.Value == text
		},
	}
}

// Not returns a copy of t whose predicate additionally rejects any token
// matched by one of the excluded terminals. Used for negative lookahead,
// e.g. "a name that is not a reserved word".
func Not(t *Term, exclude ...*Term) *Term {
	res := *t
	res.Match = func(tok lexer.Token) bool {
		if !t.Match(tok) {
			return false
		}
		for _, x := range exclude {
			if x.Match(tok) {
				return false
			}
		}
		return true
	}
	return &res
}

// OnMatch returns a copy of t that runs f on the owning frame's scratch
// fields when the terminal matches.
func (t *Term) OnMatch(f func(sc *Scratch, tok lexer.Token)) *Term {
	res := *t
	res.Update = f
	return &res
}
