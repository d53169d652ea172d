package tokenizer

import (
	"github.com/ava12/bl/internal/queue"
)

// Stream is a front-consumable token sequence ending with exactly one EoI token.
// A Stream has a single owner and must not be shared between goroutines.
type Stream struct {
	q   *queue.Queue[*Token]
	eoi *Token
}

// FromStrings creates a stream of position-less tokens.
// Words following an EndOfInput word are discarded, the sentinel is always appended.
func FromStrings(words ...string) *Stream {
	q := queue.New[*Token]()
	for _, w := range words {
		if w == EndOfInput {
			break
		}
		q.Append(&Token{text: w})
	}
	return &Stream{q, EoiToken(nil)}
}

// Front returns the first token without consuming it, the EoI token if the stream is drained.
func (s *Stream) Front() *Token {
	t, f := s.q.Front()
	if !f {
		return s.eoi
	}

	return t
}

// Dequeue consumes and returns the first token. The EoI token is never consumed,
// it is returned by every call on a drained stream.
func (s *Stream) Dequeue() *Token {
	t, f := s.q.First()
	if !f {
		return s.eoi
	}

	return t
}

// Len returns the number of tokens including EoI.
func (s *Stream) Len() int {
	return s.q.Len() + 1
}

// IsDrained reports whether only the EoI token is left.
func (s *Stream) IsDrained() bool {
	return s.q.IsEmpty()
}

// Tokens returns the remaining tokens including EoI without consuming them.
func (s *Stream) Tokens() []*Token {
	items := s.q.Items()
	result := make([]*Token, len(items), len(items)+1)
	copy(result, items)
	return append(result, s.eoi)
}

// Texts returns the remaining token texts including EndOfInput without consuming them.
func (s *Stream) Texts() []string {
	ts := s.Tokens()
	result := make([]string, len(ts))
	for i, t := range ts {
		result[i] = t.Text()
	}
	return result
}
