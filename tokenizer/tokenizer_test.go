package tokenizer

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/ava12/bl"
	. "github.com/ava12/bl/internal/test"
	"github.com/ava12/bl/source"
)

func expectTexts(t *testing.T, expected []string, s *Stream) {
	t.Helper()
	got := s.Texts()
	if len(got) != len(expected) {
		t.Fatalf("expecting %q, got %q", expected, got)
	}
	for i, text := range expected {
		if got[i] != text {
			t.Fatalf("token #%d: expecting %q, got %q (%q)", i, text, got[i], got)
		}
	}
}

func TestScanRun(t *testing.T) {
	samples := []struct {
		text string
		pos  int
		run  string
	}{
		{"move", 0, "move"},
		{"  move", 0, "  "},
		{"  move", 2, "move"},
		{"move;; turnleft", 4, ";; "},
		{"next-is-empty THEN", 0, "next-is-empty"},
		{"a(b)", 1, "("},
		{"\t\r\n", 1, "\r\n"},
		{"ключ слово", 0, "ключ"},
	}

	seps := NewSeparators(DefaultSeparators)
	for i, s := range samples {
		got := seps.ScanRun(s.text, s.pos)
		if got != s.run {
			t.Errorf("sample #%d (%q at %d): expecting %q, got %q", i, s.text, s.pos, s.run, got)
		}
	}
}

func TestSeparatorsOnly(t *testing.T) {
	samples := [][]string{
		{},
		{""},
		{" "},
		{"\t\r\n", "   ", ""},
		{",.!?[]';:/()\""},
	}

	for _, lines := range samples {
		expectTexts(t, []string{EndOfInput}, Lines(lines...))
	}
}

func countWordRuns(seps *Separators, lines []string) int {
	n := 0
	for _, line := range lines {
		inWord := false
		for _, r := range line {
			isWord := !seps.Contains(r)
			if isWord && !inWord {
				n++
			}
			inWord = isWord
		}
	}
	return n
}

func TestTokenCount(t *testing.T) {
	samples := [][]string{
		{"PROGRAM Test IS", "BEGIN", "  move; turnleft", "END Test"},
		{"a,b.c!d?e[f]g'h;i:j/k(l)m\"n"},
		{"  lead", "trail  ", " both ", "x"},
		{"IF next-is-wall THEN turnright END IF"},
	}

	for i, lines := range samples {
		s := Lines(lines...)
		expected := countWordRuns(defaultSeparators, lines)
		Assert(t, s.Len()-1 == expected, "sample #%d: expecting %d words, got %d", i, expected, s.Len()-1)
	}
}

func TestSentinelIsLast(t *testing.T) {
	samples := [][]string{
		{},
		{"one"},
		{"one two", "three"},
		{"### END OF INPUT ###"},
	}

	for i, lines := range samples {
		texts := Lines(lines...).Texts()
		n := 0
		for _, text := range texts {
			if text == EndOfInput {
				n++
			}
		}
		Assert(t, n == 1, "sample #%d: expecting one sentinel, got %d", i, n)
		ExpectString(t, EndOfInput, texts[len(texts)-1])
	}
}

func TestSentinelWithCustomSeparators(t *testing.T) {
	tz := New(NewSeparators("|\t\r\n"))
	ExpectBool(t, true, tz.Separators().Contains(' '))
	ExpectBool(t, true, tz.Separators().Splits(EndOfInput))

	s := tz.Tokenize(source.New("s", []string{"a|### END OF INPUT ###|b"}))
	expectTexts(t, []string{"a", "###", "END", "OF", "INPUT", "###", "b", EndOfInput}, s)
	tokens := s.Tokens()
	for _, tok := range tokens[:len(tokens)-1] {
		Assert(t, !tok.IsEoi(), "unexpected sentinel at line %d col %d", tok.Line(), tok.Col())
	}

	hashes := New(NewSeparators("#|"))
	ExpectBool(t, false, hashes.Separators().Contains(' '))
	expectTexts(t, []string{" END OF INPUT ", EndOfInput}, hashes.Tokenize(source.New("", []string{"### END OF INPUT ###"})))
}

func TestTokenTexts(t *testing.T) {
	s := Lines("PROGRAM Test IS", "BEGIN", "  IF next-is-empty THEN move END IF", "END Test")
	expectTexts(t, []string{
		"PROGRAM", "Test", "IS",
		"BEGIN",
		"IF", "next-is-empty", "THEN", "move", "END", "IF",
		"END", "Test",
		EndOfInput,
	}, s)
}

func TestTokenPositions(t *testing.T) {
	src := source.New("sample", []string{"PROGRAM  P IS", "", "\tBEGIN"})
	s := Tokenize(src)
	expected := []struct {
		text      string
		line, col int
	}{
		{"PROGRAM", 1, 1},
		{"P", 1, 10},
		{"IS", 1, 12},
		{"BEGIN", 3, 2},
		{EndOfInput, 4, 1},
	}

	for _, exp := range expected {
		tok := s.Dequeue()
		ExpectString(t, exp.text, tok.Text())
		ExpectString(t, "sample", tok.SourceName())
		ExpectInt(t, exp.line, tok.Line())
		ExpectInt(t, exp.col, tok.Col())
	}
}

func TestCustomSeparators(t *testing.T) {
	tz := New(NewSeparators(" -"))
	s := tz.Tokenize(source.New("", []string{"next-is-empty a,b"}))
	expectTexts(t, []string{"next", "is", "empty", "a,b", EndOfInput}, s)
	ExpectString(t, " -", tz.Separators().String())
}

func TestSeparatorsString(t *testing.T) {
	seps := NewSeparators("ba a\t")
	ExpectString(t, "\t ab", seps.String())
	ExpectBool(t, true, seps.Contains('\t'))
	ExpectBool(t, false, seps.Contains('c'))
	ExpectBool(t, true, NewSeparators("").IsEmpty())
	ExpectBool(t, true, seps.Splits("a b"))
	ExpectBool(t, false, seps.Splits("abc"))
	Assert(t, utf8.RuneCountInString(defaultSeparators.String()) == utf8.RuneCountInString(DefaultSeparators), "default separators must be distinct")
}

func TestRead(t *testing.T) {
	s, e := Read("input", strings.NewReader("PROGRAM P IS\r\nBEGIN\r\nEND P\r\n"))
	ExpectNoError(t, e)
	expectTexts(t, []string{"PROGRAM", "P", "IS", "BEGIN", "END", "P", EndOfInput}, s)
}

type failingReader struct{}

var errBroken = errors.New("broken pipe")

func (failingReader) Read([]byte) (int, error) {
	return 0, errBroken
}

func TestReadError(t *testing.T) {
	s, e := Read("input", failingReader{})
	Assert(t, s == nil, "expecting no stream")
	ExpectErrorCode(t, source.ReadError, e)
	Assert(t, errors.Is(e, errBroken), "expecting wrapped reader error, got %v", e)
	Assert(t, bl.IsClass(e, bl.SourceErrors), "expecting source error class")
}
