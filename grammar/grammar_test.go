package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melex-go/melex"
	"github.com/melex-go/melex/lexer"
)

func validTable() Table {
	return Table{
		Root: "root",
		Rules: map[string]Rule{
			"root": {Items: []Item{
				Punct("["),
				List{Inner: Ref{Name: "value"}, Sep: Punct(",")},
				Punct("]"),
			}},
			"value": {Fork: func(t lexer.Token) Item {
				return Kind("number", "number")
			}},
		},
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validTable().Validate())
}

func TestValidateErrors(t *testing.T) {
	samples := []struct {
		name   string
		mutate func(t *Table)
		code   int
	}{
		{"no root name", func(t *Table) { t.Root = "" }, NoRootRuleError},
		{"undefined root", func(t *Table) { t.Root = "nope" }, NoRootRuleError},
		{"undefined ref", func(t *Table) {
			t.Rules["root"] = Rule{Items: []Item{Ref{Name: "nope"}}}
		}, UnknownRuleError},
		{"undefined ref in wrapper", func(t *Table) {
			t.Rules["root"] = Rule{Items: []Item{Opt{Inner: List{Inner: Ref{Name: "nope"}}}}}
		}, UnknownRuleError},
		{"sequence and fork", func(t *Table) {
			r := t.Rules["value"]
			r.Items = []Item{Punct("!")}
			t.Rules["value"] = r
		}, ConflictingRuleError},
		{"nil item", func(t *Table) {
			t.Rules["root"] = Rule{Items: []Item{nil}}
		}, EmptyItemError},
		{"nil wrapped item", func(t *Table) {
			t.Rules["root"] = Rule{Items: []Item{Opt{}}}
		}, EmptyItemError},
		{"terminal without predicate", func(t *Table) {
			t.Rules["root"] = Rule{Items: []Item{&Term{Style: "x"}}}
		}, NoMatchFuncError},
		{"separator without predicate", func(t *Table) {
			t.Rules["root"] = Rule{Items: []Item{List{Inner: Punct("!"), Sep: &Term{}}}}
		}, NoMatchFuncError},
	}

	for _, sample := range samples {
		t.Run(sample.name, func(t *testing.T) {
			table := validTable()
			sample.mutate(&table)

			e := table.Validate()
			require.Error(t, e)
			me, f := e.(*melex.Error)
			require.True(t, f, "expected *melex.Error, got %T", e)
			assert.Equal(t, sample.code, me.Code)
		})
	}
}

func TestKind(t *testing.T) {
	term := Kind("variable", "name")
	assert.Equal(t, "variable", term.Style)
	assert.True(t, term.Match(lexer.Token{Kind: "name", Value: "foo"}))
	assert.False(t, term.Match(lexer.Token{Kind: "number", Value: "1"}))
}

func TestPunct(t *testing.T) {
	term := Punct(",")
	assert.Equal(t, Punctuation, term.Style)
	assert.True(t, term.Match(lexer.Token{Kind: Punctuation, Value: ","}))
	assert.False(t, term.Match(lexer.Token{Kind: Punctuation, Value: "."}))
	assert.False(t, term.Match(lexer.Token{Kind: "name", Value: ","}))
}

func TestNot(t *testing.T) {
	name := Kind("variable", "name")
	kw := func(text string) *Term {
		return &Term{Style: "keyword", Match: func(t lexer.Token) bool {
			return t.Kind == "name" && t.Value == text
		}}
	}

	term := Not(name, kw("find"), kw("let"))

	assert.True(t, term.Match(lexer.Token{Kind: "name", Value: "foo"}))
	assert.False(t, term.Match(lexer.Token{Kind: "name", Value: "find"}))
	assert.False(t, term.Match(lexer.Token{Kind: "name", Value: "let"}))
	assert.Equal(t, "variable", term.Style)

	assert.True(t, name.Match(lexer.Token{Kind: "name", Value: "find"}),
		"the original terminal is left untouched")
}

func TestOnMatch(t *testing.T) {
	term := Kind("variable", "name").OnMatch(func(sc *Scratch, tok lexer.Token) {
		sc.Name = tok.Value
	})

	var sc Scratch
	term.Update(&sc, lexer.Token{Kind: "name", Value: "foo"})
	assert.Equal(t, "foo", sc.Name)

	assert.Nil(t, Kind("variable", "name").Update, "the original terminal has no callback")
}
