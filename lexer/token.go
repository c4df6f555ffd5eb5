package lexer

// Token is one lexical token: its kind name from the lexical table and the
// matched text. Tokens are immutable values produced fresh per match.
type Token struct {
	Kind  string
	Value string
}

// Is reports whether the token has the given kind.
func (t Token) Is(kind string) bool {
	return t.Kind == kind
}
