package stream

import (
	"regexp"
	"testing"
)

type result struct {
	pos, line, col int
}

func TestSourceLineCol(t *testing.T) {
	samples := map[string][]result{
		"": {
			{0, 1, 1},
			{100, 1, 1},
		},
		"\n": {
			{0, 1, 1},
			{1, 2, 1},
			{100, 2, 1},
		},
		"0\n2\n4\n6789abcde\ng\ni\n": {
			{4, 3, 1},
			{5, 3, 2},
			{6, 4, 1},
			{14, 4, 9},
			{19, 6, 2},
			{20, 7, 1},
			{9, 4, 4},
			{5, 3, 2},
		},
	}

	for text, results := range samples {
		source := New("", []byte(text))
		for _, res := range results {
			l, c := source.LineCol(res.pos)
			if l != res.line || c != res.col {
				t.Errorf("sample %q: expected %v, got line: %d, col: %d", text, res, l, c)
			}
		}
	}
}

func TestSourceLineStart(t *testing.T) {
	samples := []struct {
		text  string
		pos   int
		start int
	}{
		{"", 0, 0},
		{"abc", 0, 0},
		{"abc", 2, 0},
		{"abc", 3, 0},
		{"ab\ncd", 2, 0},
		{"ab\ncd", 3, 3},
		{"ab\ncd", 5, 3},
		{"ab\n", 3, 3},
		{"ab\ncd\nef", 7, 6},
	}

	for i, s := range samples {
		got := New("", []byte(s.text)).LineStart(s.pos)
		if got != s.start {
			t.Errorf("sample #%d (%q, pos %d): expected %d, got %d", i, s.text, s.pos, s.start, got)
		}
	}
}

func TestStreamMatch(t *testing.T) {
	s := NewStream(New("", []byte("foo123 bar")))
	name := regexp.MustCompile(`^[a-z]+`)
	num := regexp.MustCompile(`^\d+`)

	text, f := s.Match(num)
	if f || text != "" {
		t.Errorf("expected no match, got %q", text)
	}
	if s.Pos() != 0 {
		t.Errorf("failed match must not consume, pos = %d", s.Pos())
	}

	text, f = s.Match(name)
	if !f || text != "foo" {
		t.Errorf("expected \"foo\", got %q (%v)", text, f)
	}
	if s.Pos() != 3 {
		t.Errorf("expected pos 3, got %d", s.Pos())
	}

	text, f = s.Match(num)
	if !f || text != "123" {
		t.Errorf("expected \"123\", got %q (%v)", text, f)
	}
}

func TestStreamMatchNotAnchored(t *testing.T) {
	s := NewStream(New("", []byte("  foo")))
	name := regexp.MustCompile(`[a-z]+`)

	_, f := s.Match(name)
	if f {
		t.Error("a match not starting at the current position must be rejected")
	}
}

func TestStreamAtLineStart(t *testing.T) {
	samples := []struct {
		text string
		pos  int
		sol  bool
	}{
		{"foo", 0, true},
		{"foo", 1, false},
		{"  foo", 2, true},
		{"\tfoo", 1, true},
		{"ab\n  cd", 3, true},
		{"ab\n  cd", 5, true},
		{"ab\n  cd", 6, false},
		{"ab\n  cd", 2, false},
	}

	for i, sm := range samples {
		s := NewStream(New("", []byte(sm.text)))
		s.Seek(sm.pos)
		if s.AtLineStart() != sm.sol {
			t.Errorf("sample #%d (%q, pos %d): expected %v", i, sm.text, sm.pos, sm.sol)
		}
	}
}

func TestStreamIndentation(t *testing.T) {
	samples := []struct {
		text    string
		pos     int
		tabSize int
		indent  int
	}{
		{"foo", 0, 4, 0},
		{"  foo", 0, 4, 2},
		{"  foo", 4, 4, 2},
		{"\tfoo", 0, 4, 4},
		{"\tfoo", 0, 8, 8},
		{" \tfoo", 0, 4, 4},
		{"ab\n   cd", 4, 4, 3},
		{"   ", 0, 4, 3},
	}

	for i, sm := range samples {
		s := NewStream(New("", []byte(sm.text)))
		s.SetTabSize(sm.tabSize)
		s.Seek(sm.pos)
		if got := s.Indentation(); got != sm.indent {
			t.Errorf("sample #%d (%q, pos %d): expected %d, got %d", i, sm.text, sm.pos, sm.indent, got)
		}
	}
}

func TestStreamSkip(t *testing.T) {
	s := NewStream(New("", []byte("  \n\t@@# foo // rest\nbar")))

	if !s.SkipSpace() {
		t.Error("expected whitespace")
	}
	if s.Pos() != 4 {
		t.Errorf("expected pos 4, got %d", s.Pos())
	}
	if s.SkipSpace() {
		t.Error("no whitespace at current position")
	}

	if run := s.SkipNonSpace(); run != "@@#" {
		t.Errorf("expected \"@@#\", got %q", run)
	}

	s.SkipSpace()
	if !s.HasPrefix("foo") {
		t.Error("expected prefix \"foo\"")
	}
	if s.HasPrefix("foo bar") {
		t.Error("unexpected prefix match")
	}

	if line := s.SkipLine(); line != "foo // rest" {
		t.Errorf("expected rest of line, got %q", line)
	}
	if s.AtEnd() {
		t.Error("newline is not consumed by SkipLine")
	}
}

func TestStreamSeekClamps(t *testing.T) {
	s := NewStream(New("", []byte("abc")))
	s.Seek(-5)
	if s.Pos() != 0 {
		t.Errorf("expected 0, got %d", s.Pos())
	}
	s.Seek(100)
	if s.Pos() != 3 || !s.AtEnd() {
		t.Errorf("expected end, got %d", s.Pos())
	}
}
