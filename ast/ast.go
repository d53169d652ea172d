// Package ast defines the BL statement tree and program structure produced by the parser.
package ast

import (
	"strings"
)

// Kind is the statement variant.
type Kind int

const (
	BlockKind Kind = iota
	IfKind
	IfElseKind
	WhileKind
	CallKind
)

var kindNames = [...]string{"block", "if", "if-else", "while", "call"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// Condition is one of the fixed BL test conditions.
type Condition int

const (
	NextIsEmpty Condition = iota
	NextIsNotEmpty
	NextIsWall
	NextIsNotWall
	NextIsFriend
	NextIsNotFriend
	NextIsEnemy
	NextIsNotEnemy
	Random
	True

	conditionCount = iota
)

var conditionNames = [conditionCount]string{
	"next-is-empty",
	"next-is-not-empty",
	"next-is-wall",
	"next-is-not-wall",
	"next-is-friend",
	"next-is-not-friend",
	"next-is-enemy",
	"next-is-not-enemy",
	"random",
	"true",
}

// String returns the condition as written in BL source.
func (c Condition) String() string {
	if c < 0 || int(c) >= conditionCount {
		return "unknown"
	}

	return conditionNames[c]
}

// ParseCondition maps source text to condition, matching is case-sensitive.
func ParseCondition(text string) (Condition, bool) {
	for i, name := range conditionNames {
		if name == text {
			return Condition(i), true
		}
	}
	return 0, false
}

// Conditions returns all conditions in declaration order.
func Conditions() []Condition {
	result := make([]Condition, conditionCount)
	for i := range result {
		result[i] = Condition(i)
	}
	return result
}

// Primitive is a built-in instruction that user instructions cannot redefine.
type Primitive int

const (
	Move Primitive = iota
	TurnLeft
	TurnRight
	Infect
	Skip

	primitiveCount = iota
)

var primitiveNames = [primitiveCount]string{"move", "turnleft", "turnright", "infect", "skip"}

func (p Primitive) String() string {
	if p < 0 || int(p) >= primitiveCount {
		return "unknown"
	}

	return primitiveNames[p]
}

func ParsePrimitive(name string) (Primitive, bool) {
	for i, n := range primitiveNames {
		if n == name {
			return Primitive(i), true
		}
	}
	return 0, false
}

func IsPrimitive(name string) bool {
	_, f := ParsePrimitive(name)
	return f
}

// Statement is one of *Block, *If, *IfElse, *While, *Call.
type Statement interface {
	Kind() Kind
	// String returns compact parenthesized form, e.g. "(if true (block move))".
	String() string
	statement()
}

// Block is an ordered statement sequence; it exclusively owns its children.
type Block struct {
	Statements []Statement
}

type If struct {
	Condition Condition
	Body      *Block
}

type IfElse struct {
	Condition Condition
	Then      *Block
	Else      *Block
}

type While struct {
	Condition Condition
	Body      *Block
}

// Call invokes a primitive or user instruction; the name is not validated.
type Call struct {
	Name string
}

func NewBlock(statements ...Statement) *Block {
	return &Block{statements}
}

func (b *Block) Append(s Statement) {
	b.Statements = append(b.Statements, s)
}

func (b *Block) Len() int {
	return len(b.Statements)
}

func (*Block) Kind() Kind  { return BlockKind }
func (*If) Kind() Kind     { return IfKind }
func (*IfElse) Kind() Kind { return IfElseKind }
func (*While) Kind() Kind  { return WhileKind }
func (*Call) Kind() Kind   { return CallKind }

func (*Block) statement()  {}
func (*If) statement()     {}
func (*IfElse) statement() {}
func (*While) statement()  {}
func (*Call) statement()   {}

// Primitive returns the called primitive if the name is a primitive one.
func (c *Call) Primitive() (Primitive, bool) {
	return ParsePrimitive(c.Name)
}

func (b *Block) String() string {
	var sb strings.Builder
	b.writeTo(&sb)
	return sb.String()
}

func (b *Block) writeTo(sb *strings.Builder) {
	sb.WriteString("(block")
	for _, s := range b.Statements {
		sb.WriteByte(' ')
		writeStatement(sb, s)
	}
	sb.WriteByte(')')
}

func (s *If) String() string {
	return "(if " + s.Condition.String() + " " + s.Body.String() + ")"
}

func (s *IfElse) String() string {
	return "(if-else " + s.Condition.String() + " " + s.Then.String() + " " + s.Else.String() + ")"
}

func (s *While) String() string {
	return "(while " + s.Condition.String() + " " + s.Body.String() + ")"
}

func (s *Call) String() string {
	return s.Name
}

func writeStatement(sb *strings.Builder, s Statement) {
	if b, f := s.(*Block); f {
		b.writeTo(sb)
	} else {
		sb.WriteString(s.String())
	}
}

// Program is a parsed BL program.
// Context maps user instruction names to their bodies, Order keeps declaration order.
type Program struct {
	Name    string
	Context map[string]*Block
	Order   []string
	Body    *Block
}

func NewProgram(name string) *Program {
	return &Program{
		Name:    name,
		Context: make(map[string]*Block),
		Body:    NewBlock(),
	}
}

// AddInstruction registers user instruction, returns false if the name is already taken.
func (p *Program) AddInstruction(name string, body *Block) bool {
	if _, f := p.Context[name]; f {
		return false
	}

	p.Context[name] = body
	p.Order = append(p.Order, name)
	return true
}

func (p *Program) Instruction(name string) (*Block, bool) {
	b, f := p.Context[name]
	return b, f
}

func (p *Program) String() string {
	var sb strings.Builder
	sb.WriteString("(program ")
	sb.WriteString(p.Name)
	for _, name := range p.Order {
		sb.WriteString(" (instruction ")
		sb.WriteString(name)
		sb.WriteByte(' ')
		p.Context[name].writeTo(&sb)
		sb.WriteByte(')')
	}
	sb.WriteByte(' ')
	p.Body.writeTo(&sb)
	sb.WriteByte(')')
	return sb.String()
}
