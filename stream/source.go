// Package stream defines read-only source text and the cursor used by the lexer and parser.
package stream

import (
	"bytes"
	"unicode/utf8"
)

// Source is a named, immutable piece of source text with precomputed line starts.
type Source struct {
	name          string
	content       []byte
	lineStarts    []int
	prevLineIndex int
}

// New creates a new Source.
func New(name string, content []byte) *Source {
	s := &Source{name: name, content: content, prevLineIndex: -1}
	lineCnt := bytes.Count(content, []byte("\n")) + 1
	s.lineStarts = make([]int, lineCnt)
	j := 1
	for i := 0; i < len(content) && j < lineCnt; i++ {
		if content[i] == '\n' {
			s.lineStarts[j] = i + 1
			j++
		}
	}

	return s
}

func (s *Source) Name() string {
	return s.name
}

func (s *Source) Content() []byte {
	return s.content
}

func (s *Source) Len() int {
	return len(s.content)
}

// LineCol converts byte position to 1-based line and column numbers.
// Column is measured in runes.
func (s *Source) LineCol(pos int) (line, col int) {
	var lineIndex int
	if pos < 0 {
		pos = 0
		lineIndex = 0
	} else if pos >= len(s.content) {
		pos = len(s.content)
		lineIndex = len(s.lineStarts) - 1
	} else {
		lineIndex = s.findLineIndex(pos)
	}

	lineStart := s.lineStarts[lineIndex]
	return lineIndex + 1, utf8.RuneCount(s.content[lineStart:pos]) + 1
}

// Pos converts 1-based line and column numbers to byte position.
func (s *Source) Pos(line, col int) int {
	if line <= 0 || col <= 0 {
		return 0
	}

	l := len(s.content)
	if line > len(s.lineStarts) {
		return l
	}

	res := s.lineStarts[line-1] + col - 1
	if res > l {
		return l
	}
	return res
}

// LineStart returns the byte position of the first character of the line containing pos.
func (s *Source) LineStart(pos int) int {
	if pos <= 0 {
		return 0
	}
	if pos >= len(s.content) {
		if len(s.content) > 0 && s.content[len(s.content)-1] == '\n' {
			return len(s.content)
		}
		return s.lineStarts[len(s.lineStarts)-1]
	}
	return s.lineStarts[s.findLineIndex(pos)]
}

func (s *Source) findLineIndex(pos int) int {
	if s.prevLineIndex >= 0 && s.lineStarts[s.prevLineIndex] <= pos {
		lineIndex := s.prevLineIndex
		last := len(s.lineStarts) - 1
		for lineIndex <= last && s.lineStarts[lineIndex] <= pos {
			lineIndex++
		}
		lineIndex--
		s.prevLineIndex = lineIndex
		return lineIndex
	}

	lineStart := 0
	leftIndex := 0
	rightIndex := len(s.lineStarts) - 1
	index := 0
	if s.prevLineIndex >= 0 {
		lineStart = s.lineStarts[s.prevLineIndex]
		rightIndex = s.prevLineIndex
	}
	for leftIndex < rightIndex {
		index = (leftIndex + rightIndex + 1) >> 1
		lineStart = s.lineStarts[index]
		if lineStart == pos {
			return index
		}

		if lineStart < pos {
			leftIndex = index
		} else {
			rightIndex = index - 1
			index = rightIndex
		}
	}
	s.prevLineIndex = index
	return index
}
