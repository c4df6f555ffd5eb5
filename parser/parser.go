// Package parser defines the rule-stack machine: an online interpreter that
// consumes one lexical token per call against a declarative grammar and
// returns a style tag for it, maintaining a resumable parse state.
package parser

import (
	"github.com/melex-go/melex/grammar"
	"github.com/melex-go/melex/lexer"
	"github.com/melex-go/melex/stream"
)

// Reserved style tags, never produced by grammar terminals:
const (
	// SpaceStyle tags whitespace runs.
	SpaceStyle = "-space-"

	// CommentStyle tags line comments.
	CommentStyle = "-comment-"

	// ErrorStyle tags tokens no lexical pattern or rule frame accepts.
	ErrorStyle = "-error-"
)

const (
	DefaultIndentUnit = 2
	DefaultMaxDepth   = 512
)

// Option adjusts machine behavior.
type Option func(m *Machine)

// WithLineComment sets the leader of line comments, e.g. "//". Comments are
// consumed before lexing and reported with CommentStyle. Default is none.
func WithLineComment(leader string) Option {
	return func(m *Machine) {
		m.lineComment = leader
	}
}

// WithIndentUnit sets the number of columns per indent level. Default is
// DefaultIndentUnit.
func WithIndentUnit(cols int) Option {
	return func(m *Machine) {
		if cols > 0 {
			m.indentUnit = cols
		}
	}
}

// WithMaxDepth caps the frame stack depth. A rule reference that would grow
// the stack past the cap is treated as a failed expectation, so cyclic
// grammars degrade to unrecognized tokens instead of growing without bound.
// Default is DefaultMaxDepth.
func WithMaxDepth(n int) Option {
	return func(m *Machine) {
		if n > 0 {
			m.maxDepth = n
		}
	}
}

// Machine binds a grammar table to a lexer. The machine itself is immutable
// except for the one-slot rollback buffer, which is scoped per instance:
// use one Machine per concurrently parsed document.
type Machine struct {
	table       grammar.Table
	lex         *lexer.Lexer
	lineComment string
	indentUnit  int
	maxDepth    int
	snap        State
}

// New creates a machine for the given grammar and lexical table. Grammar
// authoring errors (an undefined rule reference, a missing root, a lexical
// table without a punctuation kind) are reported here, once; token-level
// failures are never errors.
func New(t grammar.Table, l *lexer.Lexer, opts ...Option) (*Machine, error) {
	e := t.Validate()
	if e != nil {
		return nil, e
	}
	if !l.HasKind(grammar.Punctuation) {
		return nil, missingPunctuationError()
	}

	m := &Machine{
		table:      t,
		lex:        l,
		indentUnit: DefaultIndentUnit,
		maxDepth:   DefaultMaxDepth,
	}
	for _, o := range opts {
		o(m)
	}
	return m, nil
}

// IndentUnit returns the configured number of columns per indent level.
func (m *Machine) IndentUnit() int {
	return m.indentUnit
}

// NewState returns a fresh state with the root rule pushed.
func (m *Machine) NewState() *State {
	st := &State{}
	st.push(m.table.Root, m.table.Rules[m.table.Root])
	return st
}

// Token consumes the next lexical token from the stream and returns its style
// tag, mutating st. Whitespace and line comments are consumed without
// touching the state at all; so is a character run no lexical pattern
// recognizes. Each call does work proportional to the current stack depth.
func (m *Machine) Token(s *stream.Stream, st *State) string {
	if s.AtLineStart() {
		st.indentLevel = s.Indentation() / m.indentUnit
	}

	if s.SkipSpace() {
		return SpaceStyle
	}
	if m.lineComment != "" && s.HasPrefix(m.lineComment) {
		s.SkipLine()
		return CommentStyle
	}

	tok, f := m.lex.Next(s)
	if !f {
		s.SkipNonSpace()
		return ErrorStyle
	}

	// commit the previous token's deferred match before the new one
	if st.needsAdvance {
		st.needsAdvance = false
		st.advance(true)
	}

	m.save(st)
	st.trackBracket(tok)
	return m.interpret(tok, st)
}

// interpret runs the per-token loop: resolve the active frame's expected
// item, push rule references and retry, match terminals, unwind on failure.
func (m *Machine) interpret(tok lexer.Token, st *State) string {
	for len(st.frames) > 0 {
		f := st.top()
		item := m.expected(f, tok)

	unwrap:
		for {
			switch it := item.(type) {
			case grammar.Opt:
				item = it.Inner
			case grammar.List:
				item = it.Inner
			default:
				break unwrap
			}
		}

		switch it := item.(type) {
		case grammar.Ref:
			if len(st.frames) < m.maxDepth {
				// retry the same token against the new frame
				st.push(it.Name, m.table.Rules[it.Name])
				continue
			}

		case *grammar.Term:
			if it.Match(tok) {
				if it.Update != nil {
					it.Update(&st.top().Scratch, tok)
				}
				if tok.Kind == grammar.Punctuation {
					st.advance(true)
				} else {
					st.needsAdvance = true
				}
				return it.Style
			}
		}

		if !st.unwind() {
			m.restore(st)
			return ErrorStyle
		}
	}

	m.restore(st)
	return ErrorStyle
}

// expected resolves the item the frame currently expects: the fork result at
// step 0 of a fork rule, the separator while a delimited list awaits one, or
// the sequence item under the step cursor. Nil means no expectation.
func (m *Machine) expected(f *frame, tok lexer.Token) grammar.Item {
	var item grammar.Item
	if f.rule.Fork != nil {
		if f.step == 0 {
			item = f.rule.Fork(tok)
		}
	} else {
		item = f.currentItem()
	}

	if f.needsSep {
		l, isList := item.(grammar.List)
		if !isList || l.Sep == nil {
			return nil
		}
		return l.Sep
	}

	return item
}

// save captures the full state into the machine's one-slot rollback buffer;
// restore overwrites the live state with it. Invoked at most once per token,
// on total unrecognized-token failure.
func (m *Machine) save(st *State) {
	m.snap = *st.Clone()
}

func (m *Machine) restore(st *State) {
	*st = m.snap
}
