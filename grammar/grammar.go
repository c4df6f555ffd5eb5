// Package grammar defines the declarative rule vocabulary interpreted by the parser.
//
// A grammar is a Table mapping rule names to definitions. A definition is
// either an ordered sequence of items or a fork function dispatching to a
// sub-rule on the current token. The parser never mutates a table, the same
// table may drive any number of parse states concurrently.
package grammar

import (
	"github.com/melex-go/melex"
	"github.com/melex-go/melex/lexer"
)

// Error codes used by grammar:
const (
	// NoRootRuleError indicates that the table's root rule name is empty or undefined.
	NoRootRuleError = melex.GrammarErrors + iota

	// UnknownRuleError indicates a Ref naming a rule absent from the table.
	UnknownRuleError

	// ConflictingRuleError indicates a rule defining both a sequence and a fork.
	ConflictingRuleError

	// EmptyItemError indicates a nil item or a wrapper with a nil inner item.
	EmptyItemError

	// NoMatchFuncError indicates a terminal with no match predicate.
	NoMatchFuncError
)

// Punctuation is the token kind name reserved for punctuation tokens.
// Lexical tables used with this package must define it; the parser relies on
// it for immediate rule advance and bracket-based indentation tracking.
const Punctuation = "punctuation"

// Scratch holds the per-frame capture fields a Term's Update callback may
// populate, e.g. the name bound by a fragment definition. Completion layers
// read them back through the parser state.
type Scratch struct {
	Name string
	Type string
}

// Item is one entry of a rule sequence: *Term, Ref, Opt, or List.
type Item interface {
	item()
}

// Term is a leaf item matched directly against one token.
type Term struct {
	// Style is the tag reported for a token this terminal matches.
	Style string

	// Match is the predicate deciding whether a token matches.
	Match func(t lexer.Token) bool

	// Update, if set, runs on the owning frame's scratch fields after a match.
	Update func(sc *Scratch, t lexer.Token)
}

// Ref is a reference by name to another rule in the table; matching it pushes
// a new frame.
type Ref struct {
	Name string
}

// Opt wraps an item that may occur zero or one time.
type Opt struct {
	Inner Item
}

// List wraps an item that may occur zero or more times, optionally delimited
// by a separator terminal.
type List struct {
	Inner Item
	Sep   *Term
}

func (*Term) item() {}
func (Ref) item()   {}
func (Opt) item()   {}
func (List) item()  {}

// Fork dispatches to an item (usually a Ref) based on one-token lookahead.
// Returning nil means the rule has no expectation for the token.
type Fork func(t lexer.Token) Item

// Rule is a definition: an ordered item sequence, or a fork. Exactly one of
// the two must be set.
type Rule struct {
	Items []Item
	Fork  Fork
}

// Table is an immutable grammar: rule definitions by name plus the designated
// root rule, the document-level entry point.
type Table struct {
	Root  string
	Rules map[string]Rule
}

// Validate checks the table once at build time: the root must resolve, every
// Ref must resolve, every rule must be either a sequence or a fork, wrappers
// must wrap something, and terminals must carry a predicate.
func (t Table) Validate() error {
	if t.Root == "" {
		return melex.FormatError(NoRootRuleError, "no root rule name")
	}
	if _, f := t.Rules[t.Root]; !f {
		return melex.FormatError(NoRootRuleError, "root rule %q not defined", t.Root)
	}

	for name, rule := range t.Rules {
		if rule.Fork != nil {
			if rule.Items != nil {
				return melex.FormatError(ConflictingRuleError, "rule %q defines both a sequence and a fork", name)
			}
			continue
		}

		for i, item := range rule.Items {
			e := t.validateItem(name, i, item)
			if e != nil {
				return e
			}
		}
	}

	return nil
}

func (t Table) validateItem(rule string, index int, item Item) error {
	switch it := item.(type) {
	case nil:
		return melex.FormatError(EmptyItemError, "rule %q: item #%d is nil", rule, index)

	case *Term:
		if it == nil || it.Match == nil {
			return melex.FormatError(NoMatchFuncError, "rule %q: item #%d has no match predicate", rule, index)
		}

	case Ref:
		if _, f := t.Rules[it.Name]; !f {
			return melex.FormatError(UnknownRuleError, "rule %q: reference to undefined rule %q", rule, it.Name)
		}

	case Opt:
		return t.validateItem(rule, index, it.Inner)

	case List:
		if it.Sep != nil && it.Sep.Match == nil {
			return melex.FormatError(NoMatchFuncError, "rule %q: item #%d has a separator with no match predicate", rule, index)
		}
		return t.validateItem(rule, index, it.Inner)
	}

	return nil
}
