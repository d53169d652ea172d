// Package source defines named source text split into lines.
package source

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ava12/bl"
)

// ReadError indicates that the underlying reader failed.
const ReadError = bl.SourceErrors

// Source is an immutable named sequence of text lines without line terminators.
type Source struct {
	name  string
	lines []string
}

// New creates a source from already split lines. Trailing "\r" and "\n" are kept,
// they are separators for the tokenizer anyway.
func New(name string, lines []string) *Source {
	ls := make([]string, len(lines))
	copy(ls, lines)
	return &Source{name: name, lines: ls}
}

// FromString splits text on "\n" and creates a source.
func FromString(name, text string) *Source {
	if text == "" {
		return &Source{name: name}
	}

	return &Source{name: name, lines: strings.Split(text, "\n")}
}

// Read consumes r line by line until EOF.
// A reader failure is returned as an error wrapping both *bl.Error with ReadError code
// and the original error.
func Read(name string, r io.Reader) (*Source, error) {
	s := &Source{name: name}
	rd := bufio.NewReader(r)
	for {
		line, e := rd.ReadString('\n')
		if line != "" {
			s.lines = append(s.lines, strings.TrimSuffix(line, "\n"))
		}
		if e == io.EOF {
			return s, nil
		}
		if e != nil {
			return nil, fmt.Errorf("%w: %w", bl.FormatError(ReadError, "cannot read %s", name), e)
		}
	}
}

func (s *Source) Name() string {
	return s.name
}

// Lines returns source lines, the slice must not be modified.
func (s *Source) Lines() []string {
	return s.lines
}

func (s *Source) Len() int {
	return len(s.lines)
}

// Line returns n-th line, counting from 1, or empty string if n is out of range.
func (s *Source) Line(n int) string {
	if n <= 0 || n > len(s.lines) {
		return ""
	}

	return s.lines[n-1]
}

// Pos is a position in a source; line and column count from 1, column counts bytes.
type Pos struct {
	src       *Source
	line, col int
}

func NewPos(s *Source, line, col int) Pos {
	return Pos{s, line, col}
}

func (p Pos) Source() *Source {
	return p.src
}

func (p Pos) SourceName() string {
	if p.src == nil {
		return ""
	}

	return p.src.name
}

func (p Pos) Line() int {
	return p.line
}

func (p Pos) Col() int {
	return p.col
}

func (p Pos) String() string {
	return fmt.Sprintf("%s:%d:%d", p.SourceName(), p.line, p.col)
}
