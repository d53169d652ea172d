package parser

import (
	"unicode"
	"unicode/utf8"

	"github.com/ava12/bl/ast"
)

// BL keywords.
const (
	KwProgram     = "PROGRAM"
	KwIs          = "IS"
	KwBegin       = "BEGIN"
	KwEnd         = "END"
	KwInstruction = "INSTRUCTION"
	KwIf          = "IF"
	KwThen        = "THEN"
	KwElse        = "ELSE"
	KwWhile       = "WHILE"
	KwDo          = "DO"
)

var keywords = map[string]bool{
	KwProgram:     true,
	KwIs:          true,
	KwBegin:       true,
	KwEnd:         true,
	KwInstruction: true,
	KwIf:          true,
	KwThen:        true,
	KwElse:        true,
	KwWhile:       true,
	KwDo:          true,
}

func IsKeyword(text string) bool {
	return keywords[text]
}

// IsIdentifier reports whether text is a letter followed by letters, digits, or "-",
// and is neither a keyword nor a condition name.
func IsIdentifier(text string) bool {
	r, size := utf8.DecodeRuneInString(text)
	if size == 0 || !unicode.IsLetter(r) {
		return false
	}

	for _, r := range text[size:] {
		if r != '-' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}

	if IsKeyword(text) {
		return false
	}

	_, isCond := ast.ParseCondition(text)
	return !isCond
}

func startsStatement(text string) bool {
	return text == KwIf || text == KwWhile || IsIdentifier(text)
}
