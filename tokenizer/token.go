package tokenizer

import (
	"github.com/ava12/bl/source"
)

// EndOfInput is the sentinel text terminating every token stream.
// Tokenizer always treats at least one of its characters as a separator,
// so no input word equals it.
const EndOfInput = "### END OF INPUT ###"

// Token is an immutable word token or the end-of-input sentinel.
type Token struct {
	text      string
	source    *source.Source
	line, col int
}

func NewToken(text string, sp source.Pos) *Token {
	return &Token{text, sp.Source(), sp.Line(), sp.Col()}
}

// EoiToken returns a sentinel token placed after the last line of s; s may be nil.
func EoiToken(s *source.Source) *Token {
	t := &Token{text: EndOfInput, source: s}
	if s != nil {
		t.line = s.Len() + 1
		t.col = 1
	}
	return t
}

func (t *Token) Text() string {
	return t.text
}

func (t *Token) IsEoi() bool {
	return t.text == EndOfInput
}

func (t *Token) Source() *source.Source {
	return t.source
}

func (t *Token) SourceName() string {
	if t.source == nil {
		return ""
	}

	return t.source.Name()
}

func (t *Token) Line() int {
	return t.line
}

func (t *Token) Col() int {
	return t.col
}

// String returns token text, the sentinel is shown as "end of input".
func (t *Token) String() string {
	if t.IsEoi() {
		return "end of input"
	}

	return t.text
}
