package ast

// Visitor is called for every visited statement; depth is the number of
// non-block ancestors. Returning false skips the statement children.
type Visitor func(s Statement, depth int) (walkChildren bool)

// Children returns direct child statements: block items or branch bodies.
func Children(s Statement) []Statement {
	switch st := s.(type) {
	case *Block:
		return st.Statements
	case *If:
		return []Statement{st.Body}
	case *IfElse:
		return []Statement{st.Then, st.Else}
	case *While:
		return []Statement{st.Body}
	default:
		return nil
	}
}

// Walk visits s and its descendants in source order.
func Walk(s Statement, v Visitor) {
	if s != nil {
		walk(s, 0, v)
	}
}

func walk(s Statement, depth int, v Visitor) {
	if !v(s, depth) {
		return
	}

	if s.Kind() != BlockKind {
		depth++
	}
	for _, c := range Children(s) {
		walk(c, depth, v)
	}
}

// Depth returns the maximum number of nested non-block statements, e.g.
// a call inside a loop inside a conditional has depth 3.
func Depth(s Statement) int {
	result := 0
	Walk(s, func(s Statement, depth int) bool {
		if s.Kind() != BlockKind && depth+1 > result {
			result = depth + 1
		}
		return true
	})
	return result
}

// CountStatements returns the number of non-block statements in s.
func CountStatements(s Statement) int {
	n := 0
	Walk(s, func(s Statement, _ int) bool {
		if s.Kind() != BlockKind {
			n++
		}
		return true
	})
	return n
}

// CallNames returns distinct called instruction names of the program
// (instruction bodies first, in declaration order, then the main body).
func CallNames(p *Program) []string {
	var result []string
	seen := make(map[string]bool)
	collect := func(s Statement, _ int) bool {
		if c, f := s.(*Call); f && !seen[c.Name] {
			seen[c.Name] = true
			result = append(result, c.Name)
		}
		return true
	}

	for _, name := range p.Order {
		Walk(p.Context[name], collect)
	}
	Walk(p.Body, collect)
	return result
}

// UndefinedCalls returns called names that are neither primitives nor user instructions.
// The parser accepts such calls, the check is left to later stages.
func UndefinedCalls(p *Program) []string {
	var result []string
	for _, name := range CallNames(p) {
		if _, f := p.Context[name]; !f && !IsPrimitive(name) {
			result = append(result, name)
		}
	}
	return result
}
