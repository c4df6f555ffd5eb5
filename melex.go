/*
Package melex is an incremental, grammar-driven token parser engine
for syntax highlighting and completion in editors.

Consists of subpackages:
  - stream: read-only cursor over source text, with line/column tracking and indentation measuring;
  - lexer: lexical analyzer matching an ordered list of token patterns;
  - grammar: declarative rule vocabulary (terminals, rule references, optionals, lists, fork rules);
  - parser: the rule-stack machine interpreting a grammar one token at a time;
  - cmd/melexhl: console utility highlighting a source file;
  - examples/filterlang: demo grammar for a small filter-query language.

The engine consumes one lexical token per call and returns a style tag plus
an updated parser state. States are cheap to clone, so a host editor can
snapshot the state at every line boundary and re-lex only the lines that
changed. No syntax tree is built; malformed input is reported through a
reserved style tag, never through an error.
*/
package melex

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	GrammarErrors = 1   // used by grammar
	LexicalErrors = 101 // used by lexer
	ParserErrors  = 201 // used by parser
)

// Error is the error type used by melex subpackages.
// Errors are only produced at grammar build time; per-token failures
// are reported as style tags instead.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including source name and position information if provided.
	Message string

	// SourceName contains source name that caused this error or empty string.
	SourceName string

	// Line contains line number in source file or 0.
	Line int

	// Col contains column number in source file or 0.
	Col int
}

// SourcePos is used to retrieve source name and position information when constructing an error;
// stream.Stream implements this interface.
type SourcePos interface {
	// SourceName returns source file name or empty string.
	SourceName() string
	// Line returns line number or 0.
	Line() int
	// Col returns column number or 0.
	Col() int
}

// NewError creates new Error structure.
// name, line, and col will be added to error message if provided (non-zero).
func NewError(code int, msg, name string, line, col int) *Error {
	if name != "" && line != 0 && col != 0 {
		msg += fmt.Sprintf(" in %s at line %d col %d", name, line, col)
	}
	return &Error{code, msg, name, line, col}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// FormatError creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0, 0)
}

// FormatErrorPos creates Error structure with source and position information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.SourceName(), pos.Line(), pos.Col())
}
