package parser

import (
	"github.com/melex-go/melex/grammar"
	"github.com/melex-go/melex/lexer"
)

// trackBracket updates the bracket-nesting stack off punctuation tokens.
// It runs before grammar matching and independently of its outcome:
// indentation tracking is best-effort bookkeeping for editor auto-indent
// and never raises errors.
func (st *State) trackBracket(tok lexer.Token) {
	if tok.Kind != grammar.Punctuation {
		return
	}

	switch tok.Value {
	case "(", "[", "{":
		st.levels = append(st.levels, st.indentLevel+1)

	case ")", "]", "}":
		if len(st.levels) > 0 {
			st.levels = st.levels[:len(st.levels)-1]
		}
		top := 0
		if len(st.levels) > 0 {
			top = st.levels[len(st.levels)-1]
		}
		if top < st.indentLevel {
			st.indentLevel = top
		}
	}
}
