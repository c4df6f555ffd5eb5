package parser

import (
	"github.com/melex-go/melex"
	"github.com/melex-go/melex/grammar"
)

// Error codes used by parser:
const (
	// MissingPunctuationError indicates a lexical table without the reserved punctuation kind.
	MissingPunctuationError = melex.ParserErrors + iota
)

func missingPunctuationError() *melex.Error {
	return melex.FormatError(MissingPunctuationError, "lexical table defines no %q kind", grammar.Punctuation)
}
