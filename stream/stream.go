package stream

import (
	"regexp"
)

const DefaultTabSize = 4

// Stream is a cursor over a Source. The parser only reads through it:
// it can test and consume a regexp match at the current position, detect
// line starts, and measure the indentation of the current line.
// A Stream holds no parse state and may be repositioned freely.
type Stream struct {
	src     *Source
	pos     int
	tabSize int
}

// NewStream creates a cursor positioned at the start of src.
func NewStream(src *Source) *Stream {
	return &Stream{src: src, tabSize: DefaultTabSize}
}

// SetTabSize sets the tab width used by Indentation. Default is DefaultTabSize.
func (st *Stream) SetTabSize(size int) {
	if size > 0 {
		st.tabSize = size
	}
}

func (st *Stream) Source() *Source {
	return st.src
}

func (st *Stream) Pos() int {
	return st.pos
}

// Seek repositions the cursor, clamping to source bounds.
func (st *Stream) Seek(pos int) {
	if pos < 0 {
		pos = 0
	} else if pos > st.src.Len() {
		pos = st.src.Len()
	}
	st.pos = pos
}

func (st *Stream) SourceName() string {
	return st.src.Name()
}

func (st *Stream) Line() int {
	line, _ := st.src.LineCol(st.pos)
	return line
}

func (st *Stream) Col() int {
	_, col := st.src.LineCol(st.pos)
	return col
}

func (st *Stream) AtEnd() bool {
	return st.pos >= st.src.Len()
}

// AtLineStart reports whether the cursor sits in the indentation region of
// its line, i.e. only spaces and tabs separate it from the line start.
// The parser uses this to recompute the indent level once per line even
// when the preceding whitespace run was consumed as a single token.
func (st *Stream) AtLineStart() bool {
	content := st.src.Content()
	for i := st.src.LineStart(st.pos); i < st.pos; i++ {
		if content[i] != ' ' && content[i] != '\t' {
			return false
		}
	}
	return true
}

// Indentation measures the leading whitespace of the current line in columns,
// tabs advancing to the next tab stop.
func (st *Stream) Indentation() int {
	content := st.src.Content()
	cols := 0
	for i := st.src.LineStart(st.pos); i < len(content); i++ {
		switch content[i] {
		case ' ':
			cols++
		case '\t':
			cols += st.tabSize - cols%st.tabSize
		default:
			return cols
		}
	}
	return cols
}

// Match tests re against the remaining input. On a match anchored at the
// current position the matched text is consumed and returned.
func (st *Stream) Match(re *regexp.Regexp) (string, bool) {
	content := st.src.Content()[st.pos:]
	loc := re.FindIndex(content)
	if loc == nil || loc[0] != 0 || loc[1] == 0 {
		return "", false
	}

	text := string(content[:loc[1]])
	st.pos += loc[1]
	return text, true
}

// SkipSpace consumes a run of whitespace characters (including newlines)
// and reports whether anything was consumed.
func (st *Stream) SkipSpace() bool {
	content := st.src.Content()
	start := st.pos
	for st.pos < len(content) && isSpace(content[st.pos]) {
		st.pos++
	}
	return st.pos > start
}

// SkipNonSpace consumes a run of non-whitespace characters and returns it.
// Used to swallow input no lexical pattern recognizes.
func (st *Stream) SkipNonSpace() string {
	content := st.src.Content()
	start := st.pos
	for st.pos < len(content) && !isSpace(content[st.pos]) {
		st.pos++
	}
	return string(content[start:st.pos])
}

// SkipLine consumes the rest of the current line, excluding the newline,
// and returns it.
func (st *Stream) SkipLine() string {
	content := st.src.Content()
	start := st.pos
	for st.pos < len(content) && content[st.pos] != '\n' {
		st.pos++
	}
	return string(content[start:st.pos])
}

// HasPrefix reports whether the remaining input starts with p. Nothing is consumed.
func (st *Stream) HasPrefix(p string) bool {
	content := st.src.Content()
	if st.pos+len(p) > len(content) {
		return false
	}
	return string(content[st.pos:st.pos+len(p)]) == p
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
