package ast

import (
	"encoding/json"
)

// NodeView is a serializable statement representation used for YAML and JSON dumps.
// Block contents are inlined into Body (and Else), nested blocks keep their own node.
type NodeView struct {
	Kind      string     `yaml:"kind" json:"kind"`
	Condition string     `yaml:"condition,omitempty" json:"condition,omitempty"`
	Name      string     `yaml:"name,omitempty" json:"name,omitempty"`
	Body      []NodeView `yaml:"body,omitempty" json:"body,omitempty"`
	Else      []NodeView `yaml:"else,omitempty" json:"else,omitempty"`
}

type InstructionView struct {
	Name string     `yaml:"name" json:"name"`
	Body []NodeView `yaml:"body" json:"body"`
}

type ProgramView struct {
	Name         string            `yaml:"program" json:"program"`
	Instructions []InstructionView `yaml:"instructions,omitempty" json:"instructions,omitempty"`
	Body         []NodeView        `yaml:"body" json:"body"`
}

func blockView(b *Block) []NodeView {
	result := make([]NodeView, len(b.Statements))
	for i, s := range b.Statements {
		result[i] = View(s)
	}
	return result
}

// View converts a statement to its serializable form.
func View(s Statement) NodeView {
	result := NodeView{Kind: s.Kind().String()}
	switch st := s.(type) {
	case *Block:
		result.Body = blockView(st)
	case *If:
		result.Condition = st.Condition.String()
		result.Body = blockView(st.Body)
	case *IfElse:
		result.Condition = st.Condition.String()
		result.Body = blockView(st.Then)
		result.Else = blockView(st.Else)
	case *While:
		result.Condition = st.Condition.String()
		result.Body = blockView(st.Body)
	case *Call:
		result.Name = st.Name
	}
	return result
}

func (p *Program) View() ProgramView {
	result := ProgramView{Name: p.Name, Body: blockView(p.Body)}
	for _, name := range p.Order {
		result.Instructions = append(result.Instructions, InstructionView{name, blockView(p.Context[name])})
	}
	return result
}

// MarshalYAML implements yaml.Marshaler.
func (p *Program) MarshalYAML() (any, error) {
	return p.View(), nil
}

func (p *Program) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.View())
}
