/*
Package bl is a tokenizer and recursive-descent parser for BL, a small block-structured
language of robot instructions.

Consists of subpackages:
  - source: named source text split into lines;
  - tokenizer: splits source lines into word tokens on a separator character set
    and terminates the sequence with the end-of-input sentinel;
  - ast: statement tree (blocks, conditionals, loops, calls) and program structure;
  - parser: converts a token stream into a program, validating the grammar;
  - expr: integer arithmetic expression evaluator built the same way;
  - config: runtime settings (separators, nesting limit, logging);
  - cmd/blparse: console utility parsing BL files.

Typical usage is:

	p := parser.New(parser.Options{})
	prog, e := p.ParseString("robot.bl", text)

Any grammar violation stops parsing at once, no partial program is returned.
*/
package bl

import (
	"errors"
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	SourceErrors  = 1   // used by source
	GrammarErrors = 201 // used by parser
	ExprErrors    = 301 // used by expr
	ConfigErrors  = 401 // used by config
)

const classSize = 100

// Error is the error type used by bl subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including source name and position information if provided.
	Message string

	// SourceName contains source name that caused this error or empty string.
	SourceName string

	// Line contains line number in source or 0.
	Line int

	// Col contains column number in source or 0.
	Col int
}

// SourcePos is used to retrieve source name and position information when constructing an error;
// source.Pos and tokenizer.Token implement this interface.
type SourcePos interface {
	// SourceName returns source name or empty string.
	SourceName() string
	// Line returns line number or 0.
	Line() int
	// Col returns column number or 0.
	Col() int
}

// NewError creates new Error structure.
// name, line, and col will be added to error message if provided (non-zero).
func NewError(code int, msg, name string, line, col int) *Error {
	if name != "" && line != 0 && col != 0 {
		msg += fmt.Sprintf(" in %s at line %d col %d", name, line, col)
	}
	return &Error{code, msg, name, line, col}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// Class returns the error class the code belongs to, e.g. GrammarErrors.
func (e *Error) Class() int {
	return (e.Code-1)/classSize*classSize + 1
}

// FormatError creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0, 0)
}

// FormatErrorPos creates Error structure with source and position information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.SourceName(), pos.Line(), pos.Col())
}

// IsClass reports whether e (or any error it wraps) is an *Error of the given class.
func IsClass(e error, class int) bool {
	var be *Error
	if !errors.As(e, &be) {
		return false
	}

	return be.Class() == class
}

// IsGrammarViolation reports whether e is a fatal parse error produced by the parser.
func IsGrammarViolation(e error) bool {
	return IsClass(e, GrammarErrors)
}
