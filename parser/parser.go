// Package parser converts BL token streams into programs.
//
// The parser is a set of mutually recursive functions, one per grammar rule:
//
//	program     = "PROGRAM", name, "IS", {instruction}, "BEGIN", block, "END", name;
//	instruction = "INSTRUCTION", name, "IS", block, "END", name;
//	block       = {statement};
//	statement   = if | while | call;
//	if          = "IF", condition, "THEN", block, ["ELSE", block], "END", "IF";
//	while       = "WHILE", condition, "DO", block, "END", "WHILE";
//	call        = identifier;
//
// The first violated rule stops parsing with *bl.Error of bl.GrammarErrors class,
// no partial result is returned.
package parser

import (
	"io"
	"log/slog"

	"github.com/ava12/bl/ast"
	"github.com/ava12/bl/source"
	"github.com/ava12/bl/tokenizer"
)

// DefaultMaxDepth limits IF/WHILE nesting when Options.MaxDepth is not set.
const DefaultMaxDepth = 256

type Options struct {
	// MaxDepth is the maximum IF/WHILE nesting level, 0 means DefaultMaxDepth.
	MaxDepth int

	// Logger receives debug traces, nil disables logging.
	Logger *slog.Logger

	// Separators are used by ParseString and ParseReader, nil means tokenizer.DefaultSeparators.
	Separators *tokenizer.Separators
}

// Parser holds settings only, it is safe for concurrent use.
type Parser struct {
	maxDepth  int
	log       *slog.Logger
	tokenizer *tokenizer.Tokenizer
}

func New(opts Options) *Parser {
	p := &Parser{
		maxDepth:  opts.MaxDepth,
		log:       opts.Logger,
		tokenizer: tokenizer.New(opts.Separators),
	}
	if p.maxDepth <= 0 {
		p.maxDepth = DefaultMaxDepth
	}
	if p.log == nil {
		p.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return p
}

var defaultParser = New(Options{})

// ParseProgram uses default options.
func ParseProgram(ts *tokenizer.Stream) (*ast.Program, error) {
	return defaultParser.ParseProgram(ts)
}

// ParseProgram consumes the whole stream. The stream must not be used after the call.
func (p *Parser) ParseProgram(ts *tokenizer.Stream) (*ast.Program, error) {
	pc := &parseContext{parser: p, tokens: ts}
	p.log.Debug("parsing program", "source", ts.Front().SourceName(), "tokens", ts.Len())
	prog, e := pc.program()
	if e != nil {
		p.log.Debug("parsing failed", "error", e)
		return nil, e
	}

	p.log.Debug("program parsed", "name", prog.Name, "instructions", len(prog.Order), "statements", ast.CountStatements(prog.Body))
	return prog, nil
}

// ParseBlock parses statements until the first token that cannot start a statement.
// That token is left in the stream.
func (p *Parser) ParseBlock(ts *tokenizer.Stream) (*ast.Block, error) {
	pc := &parseContext{parser: p, tokens: ts}
	return pc.block()
}

func (p *Parser) ParseSource(src *source.Source) (*ast.Program, error) {
	return p.ParseProgram(p.tokenizer.Tokenize(src))
}

func (p *Parser) ParseString(name, text string) (*ast.Program, error) {
	return p.ParseSource(source.FromString(name, text))
}

// ParseReader reads r to the end before parsing. Read errors are returned as is.
func (p *Parser) ParseReader(name string, r io.Reader) (*ast.Program, error) {
	ts, e := p.tokenizer.Read(name, r)
	if e != nil {
		return nil, e
	}

	return p.ParseProgram(ts)
}

type parseContext struct {
	parser *Parser
	tokens *tokenizer.Stream
	depth  int
}

func (pc *parseContext) expect(keyword string) error {
	t := pc.tokens.Front()
	if t.Text() != keyword {
		return unexpectedError(t, "\""+keyword+"\"")
	}

	pc.tokens.Dequeue()
	return nil
}

func (pc *parseContext) name(what string) (*tokenizer.Token, error) {
	t := pc.tokens.Front()
	if !IsIdentifier(t.Text()) {
		return nil, invalidNameError(t, what)
	}

	return pc.tokens.Dequeue(), nil
}

func (pc *parseContext) closingName(what, name string) error {
	t := pc.tokens.Front()
	if t.IsEoi() {
		return unexpectedError(t, "\""+name+"\"")
	}
	if t.Text() != name {
		return nameMismatchError(t, what, name)
	}

	pc.tokens.Dequeue()
	return nil
}

func (pc *parseContext) program() (*ast.Program, error) {
	if e := pc.expect(KwProgram); e != nil {
		return nil, e
	}

	nameToken, e := pc.name("program")
	if e != nil {
		return nil, e
	}

	if e = pc.expect(KwIs); e != nil {
		return nil, e
	}

	prog := ast.NewProgram(nameToken.Text())
	for pc.tokens.Front().Text() == KwInstruction {
		if e = pc.instruction(prog); e != nil {
			return nil, e
		}
	}

	if e = pc.expect(KwBegin); e != nil {
		return nil, e
	}

	body, e := pc.block()
	if e == nil {
		e = pc.expect(KwEnd)
	}
	if e == nil {
		e = pc.closingName("program", prog.Name)
	}
	if e != nil {
		return nil, e
	}

	if !pc.tokens.IsDrained() {
		return nil, trailingTokensError(pc.tokens.Front())
	}

	prog.Body = body
	return prog, nil
}

func (pc *parseContext) instruction(prog *ast.Program) error {
	pc.tokens.Dequeue()
	t := pc.tokens.Front()
	if ast.IsPrimitive(t.Text()) {
		return reservedNameError(t)
	}

	nameToken, e := pc.name("instruction")
	if e != nil {
		return e
	}

	name := nameToken.Text()
	if _, defined := prog.Instruction(name); defined {
		return duplicateInstructionError(nameToken)
	}

	if e = pc.expect(KwIs); e != nil {
		return e
	}

	body, e := pc.block()
	if e == nil {
		e = pc.expect(KwEnd)
	}
	if e == nil {
		e = pc.closingName("instruction", name)
	}
	if e != nil {
		return e
	}

	prog.AddInstruction(name, body)
	pc.parser.log.Debug("instruction parsed", "name", name, "statements", ast.CountStatements(body))
	return nil
}

func (pc *parseContext) block() (*ast.Block, error) {
	b := ast.NewBlock()
	for startsStatement(pc.tokens.Front().Text()) {
		s, e := pc.statement()
		if e != nil {
			return nil, e
		}

		b.Append(s)
	}
	return b, nil
}

func (pc *parseContext) statement() (ast.Statement, error) {
	switch pc.tokens.Front().Text() {
	case KwIf:
		return pc.ifStatement()
	case KwWhile:
		return pc.whileStatement()
	default:
		return &ast.Call{Name: pc.tokens.Dequeue().Text()}, nil
	}
}

func (pc *parseContext) enter() error {
	t := pc.tokens.Dequeue()
	pc.depth++
	if pc.depth > pc.parser.maxDepth {
		return nestingDepthError(t, pc.parser.maxDepth)
	}

	return nil
}

func (pc *parseContext) leave() {
	pc.depth--
}

func (pc *parseContext) condition() (ast.Condition, error) {
	t := pc.tokens.Front()
	c, valid := ast.ParseCondition(t.Text())
	if !valid {
		return 0, unknownConditionError(t)
	}

	pc.tokens.Dequeue()
	return c, nil
}

// conditional parses the part shared by IF and WHILE: keyword, condition, opener, body.
func (pc *parseContext) conditional(opener string) (ast.Condition, *ast.Block, error) {
	if e := pc.enter(); e != nil {
		return 0, nil, e
	}

	c, e := pc.condition()
	if e != nil {
		return 0, nil, e
	}

	if e = pc.expect(opener); e != nil {
		return 0, nil, e
	}

	body, e := pc.block()
	return c, body, e
}

func (pc *parseContext) closeStatement(keyword string) error {
	e := pc.expect(KwEnd)
	if e == nil {
		e = pc.expect(keyword)
	}
	pc.leave()
	return e
}

func (pc *parseContext) ifStatement() (ast.Statement, error) {
	c, then, e := pc.conditional(KwThen)
	if e != nil {
		return nil, e
	}

	t := pc.tokens.Front()
	switch t.Text() {
	case KwElse:
		pc.tokens.Dequeue()
		elseBody, e := pc.block()
		if e == nil {
			e = pc.closeStatement(KwIf)
		}
		if e != nil {
			return nil, e
		}

		return &ast.IfElse{Condition: c, Then: then, Else: elseBody}, nil

	case KwEnd:
		if e = pc.closeStatement(KwIf); e != nil {
			return nil, e
		}

		return &ast.If{Condition: c, Body: then}, nil

	default:
		return nil, unexpectedError(t, "\"ELSE\" or \"END\"")
	}
}

func (pc *parseContext) whileStatement() (ast.Statement, error) {
	c, body, e := pc.conditional(KwDo)
	if e == nil {
		e = pc.closeStatement(KwWhile)
	}
	if e != nil {
		return nil, e
	}

	return &ast.While{Condition: c, Body: body}, nil
}
