// Package expr evaluates integer arithmetic expressions:
//
//	expr   = term, {("+" | "-"), term};
//	term   = factor, {("*" | "/"), factor};
//	factor = "(", expr, ")" | digit, {digit};
//
// Operators are left-associative, division truncates toward zero, there is no unary minus
// and no whitespace.
package expr

import (
	"math"
	"strconv"

	"github.com/ava12/bl"
)

const (
	UnexpectedCharError = bl.ExprErrors + iota
	UnexpectedEndError
	DivisionByZeroError
	OverflowError
	NestingDepthError
)

// MaxNesting limits parentheses nesting.
const MaxNesting = 1000

type evaluator struct {
	text  string
	pos   int
	depth int
}

// Evaluate computes the value of text, which must be a complete expression.
func Evaluate(text string) (int, error) {
	ev := &evaluator{text: text}
	result, e := ev.expr()
	if e == nil && ev.pos < len(ev.text) {
		e = ev.unexpected("end of expression")
	}
	if e != nil {
		return 0, e
	}

	return result, nil
}

func (ev *evaluator) peek() byte {
	if ev.pos >= len(ev.text) {
		return 0
	}

	return ev.text[ev.pos]
}

func (ev *evaluator) unexpected(expected string) *bl.Error {
	if ev.pos >= len(ev.text) {
		return bl.FormatError(UnexpectedEndError, "unexpected end of expression, expecting %s", expected)
	}

	return bl.FormatError(UnexpectedCharError, "unexpected %q at position %d, expecting %s", ev.text[ev.pos], ev.pos+1, expected)
}

func (ev *evaluator) expr() (int, error) {
	result, e := ev.term()
	for e == nil && (ev.peek() == '+' || ev.peek() == '-') {
		op, opPos := ev.peek(), ev.pos
		ev.pos++
		var val int
		val, e = ev.term()
		if e == nil {
			result, e = apply(op, opPos, result, val)
		}
	}
	return result, e
}

func (ev *evaluator) term() (int, error) {
	result, e := ev.factor()
	for e == nil && (ev.peek() == '*' || ev.peek() == '/') {
		op, opPos := ev.peek(), ev.pos
		ev.pos++
		var val int
		val, e = ev.factor()
		if e == nil {
			result, e = apply(op, opPos, result, val)
		}
	}
	return result, e
}

// apply computes a op b, pos is the operator position used in error messages.
func apply(op byte, pos, a, b int) (int, error) {
	overflow := false
	var result int
	switch op {
	case '+':
		overflow = (b > 0 && a > math.MaxInt-b) || (b < 0 && a < math.MinInt-b)
		result = a + b
	case '-':
		overflow = (b < 0 && a > math.MaxInt+b) || (b > 0 && a < math.MinInt+b)
		result = a - b
	case '*':
		result = a * b
		overflow = a != 0 && (result/a != b || (a == -1 && b == math.MinInt))
	case '/':
		if b == 0 {
			return 0, bl.FormatError(DivisionByZeroError, "division by zero at position %d", pos+1)
		}
		overflow = a == math.MinInt && b == -1
		result = a / b
	}
	if overflow {
		return 0, bl.FormatError(OverflowError, "integer overflow at position %d", pos+1)
	}

	return result, nil
}

func (ev *evaluator) factor() (int, error) {
	if ev.peek() == '(' {
		ev.depth++
		if ev.depth > MaxNesting {
			return 0, bl.FormatError(NestingDepthError, "parentheses nested deeper than %d levels", MaxNesting)
		}

		ev.pos++
		result, e := ev.expr()
		if e != nil {
			return 0, e
		}

		if ev.peek() != ')' {
			return 0, ev.unexpected(`")"`)
		}

		ev.pos++
		ev.depth--
		return result, nil
	}

	return ev.digitSeq()
}

func (ev *evaluator) digitSeq() (int, error) {
	start := ev.pos
	for ev.peek() >= '0' && ev.peek() <= '9' {
		ev.pos++
	}
	if start == ev.pos {
		return 0, ev.unexpected("digit or \"(\"")
	}

	result, e := strconv.Atoi(ev.text[start:ev.pos])
	if e != nil {
		return 0, bl.FormatError(OverflowError, "number %s at position %d is too large", ev.text[start:ev.pos], start+1)
	}

	return result, nil
}
