package parser

import (
	"github.com/ava12/bl"
	"github.com/ava12/bl/tokenizer"
)

// Error codes used by parser, all of them belong to bl.GrammarErrors class:
const (
	// UnexpectedTokenError indicates a missing or misplaced keyword.
	UnexpectedTokenError = bl.GrammarErrors + iota

	// UnexpectedEoiError indicates that the input ended too early.
	UnexpectedEoiError

	// NameMismatchError indicates that closing name differs from the opening one.
	NameMismatchError

	// DuplicateInstructionError indicates that an instruction is defined twice.
	DuplicateInstructionError

	// ReservedNameError indicates that an instruction tries to redefine a primitive.
	ReservedNameError

	// UnknownConditionError indicates a condition outside the BL vocabulary.
	UnknownConditionError

	// InvalidNameError indicates that a program or instruction name is not an identifier.
	InvalidNameError

	// NestingDepthError indicates that statements are nested deeper than allowed.
	NestingDepthError

	// TrailingTokensError indicates tokens following the end of program.
	TrailingTokensError
)

func unexpectedError(t *tokenizer.Token, expected string) *bl.Error {
	if t.IsEoi() {
		return bl.FormatErrorPos(t, UnexpectedEoiError, "unexpected end of input, expecting %s", expected)
	}

	return bl.FormatErrorPos(t, UnexpectedTokenError, "expecting %s, found %q", expected, t.Text())
}

func nameMismatchError(t *tokenizer.Token, what, expected string) *bl.Error {
	return bl.FormatErrorPos(t, NameMismatchError, "%s must end with its name %q, found %q", what, expected, t.Text())
}

func duplicateInstructionError(t *tokenizer.Token) *bl.Error {
	return bl.FormatErrorPos(t, DuplicateInstructionError, "instruction %q already defined", t.Text())
}

func reservedNameError(t *tokenizer.Token) *bl.Error {
	return bl.FormatErrorPos(t, ReservedNameError, "cannot redefine primitive instruction %q", t.Text())
}

func unknownConditionError(t *tokenizer.Token) *bl.Error {
	if t.IsEoi() {
		return unexpectedError(t, "condition")
	}

	return bl.FormatErrorPos(t, UnknownConditionError, "unknown condition %q", t.Text())
}

func invalidNameError(t *tokenizer.Token, what string) *bl.Error {
	if t.IsEoi() {
		return unexpectedError(t, what+" name")
	}

	return bl.FormatErrorPos(t, InvalidNameError, "%q is not a valid %s name", t.Text(), what)
}

func nestingDepthError(t *tokenizer.Token, max int) *bl.Error {
	return bl.FormatErrorPos(t, NestingDepthError, "statements nested deeper than %d levels", max)
}

func trailingTokensError(t *tokenizer.Token) *bl.Error {
	return bl.FormatErrorPos(t, TrailingTokensError, "unexpected %q after end of program", t.Text())
}
