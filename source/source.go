// Package source defines named in-memory source buffers used by the lexer and parser.
package source

import (
	"bytes"
)

// Source is an immutable named text buffer with cached line boundaries.
// All positions are byte offsets into the content.
type Source struct {
	name       string
	content    []byte
	lineStarts []int
}

func New (name string, content []byte) *Source {
	s := &Source{name: name, content: content}
	lineCnt := bytes.Count(content, []byte("\n")) + 1
	s.lineStarts = make([]int, 1, lineCnt)
	s.lineStarts[0] = 0
	for i, b := range content {
		if b == '\n' {
			s.lineStarts = append(s.lineStarts, i + 1)
		}
	}
	return s
}

func (s *Source) Name () string {
	return s.name
}

func (s *Source) Content () []byte {
	return s.content
}

func (s *Source) Len () int {
	return len(s.content)
}

// LineCol converts a byte offset to 1-based line and column numbers.
// Offsets outside the buffer are clamped.
func (s *Source) LineCol (pos int) (line, col int) {
	if pos < 0 {
		pos = 0
	} else if pos > len(s.content) {
		pos = len(s.content)
	}

	lo, hi := 0, len(s.lineStarts) - 1
	for lo < hi {
		mid := (lo + hi + 1) >> 1
		if s.lineStarts[mid] <= pos {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo + 1, pos - s.lineStarts[lo] + 1
}

// MostlyNonASCII reports whether more than a quarter of the buffer bytes fall
// outside the ASCII range. Legacy sources saved in non-Latin code pages or
// UTF-16 trip this check.
func (s *Source) MostlyNonASCII () bool {
	if len(s.content) == 0 {
		return false
	}
	n := 0
	for _, b := range s.content {
		if b >= 0x80 {
			n++
		}
	}
	return n*4 > len(s.content)
}
