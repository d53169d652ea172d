// Package tokenizer splits BL source text into word tokens.
//
// A word is a maximal run of non-separator characters within a line. Separator runs
// are dropped, and the resulting stream always ends with a single EndOfInput token.
package tokenizer

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/ava12/bl/internal/ints"
	"github.com/ava12/bl/internal/queue"
	"github.com/ava12/bl/source"
)

// DefaultSeparators contains whitespace and punctuation that never belong to BL words.
// "-" is not a separator since it is a part of condition names.
const DefaultSeparators = " \t\n\r,.!?[]';:/()\""

// Separators is an immutable set of separator characters.
type Separators struct {
	chars string
	set   *ints.Set
}

func NewSeparators(chars string) *Separators {
	set := ints.NewSet()
	for _, r := range chars {
		set.Add(int(r))
	}
	return &Separators{chars, set}
}

var defaultSeparators = NewSeparators(DefaultSeparators)

func (s *Separators) Contains(r rune) bool {
	return s.set.Contains(int(r))
}

func (s *Separators) IsEmpty() bool {
	return s.set.IsEmpty()
}

// Splits reports whether word contains at least one separator.
func (s *Separators) Splits(word string) bool {
	for _, r := range word {
		if s.Contains(r) {
			return true
		}
	}
	return false
}

func (s *Separators) with(r rune) *Separators {
	return &Separators{s.chars + string(r), s.set.Copy().Add(int(r))}
}

// String returns each separator once, in ascending order.
func (s *Separators) String() string {
	var sb strings.Builder
	for _, r := range s.set.ToSlice() {
		sb.WriteRune(rune(r))
	}
	return sb.String()
}

func (s *Separators) isSeparator(text string, pos int) (bool, int) {
	r, size := utf8.DecodeRuneInString(text[pos:])
	return s.Contains(r), size
}

// ScanRun returns the longest substring of text starting at pos built of either only
// separators or only non-separators, the kind is defined by the character at pos.
// pos must be inside text.
func (s *Separators) ScanRun(text string, pos int) string {
	isSep, size := s.isSeparator(text, pos)
	end := pos + size
	for end < len(text) {
		sep, size := s.isSeparator(text, end)
		if sep != isSep {
			break
		}
		end += size
	}
	return text[pos:end]
}

// Tokenizer is stateless and safe for concurrent use.
type Tokenizer struct {
	seps *Separators
}

// New creates a tokenizer, nil seps means DefaultSeparators.
// If seps cannot split EndOfInput a space is added, so no input word equals the sentinel.
func New(seps *Separators) *Tokenizer {
	switch {
	case seps == nil:
		seps = defaultSeparators
	case !seps.Splits(EndOfInput):
		seps = seps.with(' ')
	}
	return &Tokenizer{seps}
}

var defaultTokenizer = New(nil)

func (tz *Tokenizer) Separators() *Separators {
	return tz.seps
}

// Tokenize returns all words of src followed by EndOfInput.
func (tz *Tokenizer) Tokenize(src *source.Source) *Stream {
	q := queue.New[*Token]()
	for i, line := range src.Lines() {
		pos := 0
		for pos < len(line) {
			run := tz.seps.ScanRun(line, pos)
			if isSep, _ := tz.seps.isSeparator(line, pos); !isSep {
				q.Append(NewToken(run, source.NewPos(src, i+1, pos+1)))
			}
			pos += len(run)
		}
	}
	return &Stream{q, EoiToken(src)}
}

// Read tokenizes the whole content of r. Only read failures are returned as errors.
func (tz *Tokenizer) Read(name string, r io.Reader) (*Stream, error) {
	src, e := source.Read(name, r)
	if e != nil {
		return nil, e
	}

	return tz.Tokenize(src), nil
}

// Tokenize uses DefaultSeparators.
func Tokenize(src *source.Source) *Stream {
	return defaultTokenizer.Tokenize(src)
}

// Lines tokenizes lines with DefaultSeparators, tokens get no source name.
func Lines(lines ...string) *Stream {
	return defaultTokenizer.Tokenize(source.New("", lines))
}

// Read uses DefaultSeparators.
func Read(name string, r io.Reader) (*Stream, error) {
	return defaultTokenizer.Read(name, r)
}
