package infomgr

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gigurra/guiinfo/cmd/gui/listitem"
)

type opKind int

const (
	opOperand opKind = iota
	opNot
	opAnd
	opOr
	opOpen
	opClose
)

var precedence = map[opKind]int{opNot: 3, opAnd: 2, opOr: 1}

type token struct {
	kind opKind
	text string
	id   int
}

// Condition is a compiled boolean expression over info labels: "!" not,
// "+" and, "|" or, "[ ]" grouping. Invalid expressions compile to false.
type Condition struct {
	expr    string
	postfix []token
	valid   bool
	m       *Manager
}

// Condition compiles expr once and caches it.
func (m *Manager) Condition(expr string) *Condition {
	key := strings.TrimSpace(expr)
	m.mu.RLock()
	c, ok := m.conditions[key]
	m.mu.RUnlock()
	if ok {
		return c
	}
	c = &Condition{expr: key, m: m}
	if postfix, err := m.compile(key); err != nil {
		slog.Warn("infomgr: invalid condition", "expr", expr, "error", err)
	} else {
		c.postfix, c.valid = postfix, true
	}
	m.mu.Lock()
	m.conditions[key] = c
	m.mu.Unlock()
	return c
}

// EvaluateBool evaluates expr; an empty expression is true.
func (m *Manager) EvaluateBool(expr string, window int, item *listitem.Item) bool {
	if strings.TrimSpace(expr) == "" {
		return true
	}
	return m.Condition(expr).Evaluate(window, item)
}

func (c *Condition) String() string { return c.expr }

func (c *Condition) Valid() bool { return c.valid }

func (c *Condition) Evaluate(window int, item *listitem.Item) bool {
	if !c.valid {
		return false
	}
	stack := make([]bool, 0, 8)
	for _, t := range c.postfix {
		switch t.kind {
		case opOperand:
			stack = append(stack, c.m.GetBool(t.id, window, item))
		case opNot:
			stack[len(stack)-1] = !stack[len(stack)-1]
		case opAnd, opOr:
			b, a := stack[len(stack)-1], stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			if t.kind == opAnd {
				stack = append(stack, a && b)
			} else {
				stack = append(stack, a || b)
			}
		}
	}
	return len(stack) == 1 && stack[0]
}

func tokenize(expr string) ([]token, error) {
	var out []token
	var operand strings.Builder
	depth := 0
	flush := func() {
		if s := strings.TrimSpace(operand.String()); s != "" {
			out = append(out, token{kind: opOperand, text: s})
		}
		operand.Reset()
	}
	for i := 0; i < len(expr); i++ {
		ch := expr[i]
		if depth > 0 {
			switch ch {
			case '(':
				depth++
			case ')':
				depth--
			}
			operand.WriteByte(ch)
			continue
		}
		switch ch {
		case '!':
			flush()
			out = append(out, token{kind: opNot})
		case '+':
			flush()
			out = append(out, token{kind: opAnd})
		case '|':
			flush()
			out = append(out, token{kind: opOr})
		case '[':
			flush()
			out = append(out, token{kind: opOpen})
		case ']':
			flush()
			out = append(out, token{kind: opClose})
		case '(':
			depth++
			operand.WriteByte(ch)
		default:
			operand.WriteByte(ch)
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("unbalanced parentheses")
	}
	flush()
	return out, nil
}

// compile converts the infix token stream to postfix with the
// shunting-yard algorithm and registers every operand.
func (m *Manager) compile(expr string) ([]token, error) {
	tokens, err := tokenize(expr)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty expression")
	}

	var out, ops []token
	expectOperand := true
	for _, t := range tokens {
		switch t.kind {
		case opOperand:
			if !expectOperand {
				return nil, fmt.Errorf("missing operator before %q", t.text)
			}
			t.id = m.Register(t.text)
			if t.id == 0 {
				return nil, fmt.Errorf("unknown operand %q", t.text)
			}
			out = append(out, t)
			expectOperand = false
		case opNot:
			if !expectOperand {
				return nil, fmt.Errorf("unexpected '!'")
			}
			ops = append(ops, t)
		case opAnd, opOr:
			if expectOperand {
				return nil, fmt.Errorf("missing operand")
			}
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.kind == opOpen || precedence[top.kind] < precedence[t.kind] {
					break
				}
				out = append(out, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, t)
			expectOperand = true
		case opOpen:
			if !expectOperand {
				return nil, fmt.Errorf("unexpected '['")
			}
			ops = append(ops, t)
		case opClose:
			if expectOperand {
				return nil, fmt.Errorf("unexpected ']'")
			}
			matched := false
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.kind == opOpen {
					matched = true
					break
				}
				out = append(out, top)
			}
			if !matched {
				return nil, fmt.Errorf("unbalanced brackets")
			}
		}
	}
	if expectOperand {
		return nil, fmt.Errorf("expression ends with an operator")
	}
	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.kind == opOpen {
			return nil, fmt.Errorf("unbalanced brackets")
		}
		out = append(out, top)
	}
	return out, nil
}
