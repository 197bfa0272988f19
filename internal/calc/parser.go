package calc

import (
	"fmt"
	"math"
)

// Node is a parsed arithmetic expression.
type Node interface {
	Eval() (float64, error)
	String() string
}

type numberNode float64

func (n numberNode) Eval() (float64, error) { return float64(n), nil }

func (n numberNode) String() string { return FormatNumber(float64(n)) }

type negateNode struct {
	operand Node
}

func (n negateNode) Eval() (float64, error) {
	v, err := n.operand.Eval()
	if err != nil {
		return 0, err
	}
	return -v, nil
}

func (n negateNode) String() string { return "(-" + n.operand.String() + ")" }

type percentNode struct {
	operand Node
}

func (n percentNode) Eval() (float64, error) {
	v, err := n.operand.Eval()
	if err != nil {
		return 0, err
	}
	return v / 100, nil
}

func (n percentNode) String() string { return "(" + n.operand.String() + "%)" }

type binaryNode struct {
	op          tokenKind
	left, right Node
}

func (n binaryNode) Eval() (float64, error) {
	x, err := n.left.Eval()
	if err != nil {
		return 0, err
	}
	y, err := n.right.Eval()
	if err != nil {
		return 0, err
	}
	switch n.op {
	case tokPlus:
		return x + y, nil
	case tokMinus:
		return x - y, nil
	case tokStar:
		return x * y, nil
	case tokSlash:
		if y == 0 {
			return 0, ErrDivisionByZero
		}
		return x / y, nil
	case tokPow:
		return math.Pow(x, y), nil
	}
	return 0, fmt.Errorf("%w: unknown operator %s", ErrEvaluation, n.op)
}

func (n binaryNode) String() string {
	op := map[tokenKind]string{tokPlus: "+", tokMinus: "-", tokStar: "*", tokSlash: "/", tokPow: "**"}[n.op]
	return "(" + n.left.String() + " " + op + " " + n.right.String() + ")"
}

// Parse builds an expression tree from ASCII arithmetic.
//
//	expr    = term { ("+" | "-") term }
//	term    = unary { ("*" | "/") unary }
//	unary   = ("-" | "+") unary | power
//	power   = postfix [ ("**" | "^") unary ]
//	postfix = primary { "%" }
//	primary = number | "(" expr ")"
//
// Power is right-associative and binds tighter than unary minus, so -2**2
// is -4.
func Parse(expr string) (Node, error) {
	toks, err := lex(expr)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, fmt.Errorf("%w: unexpected %s at offset %d", ErrSyntax, tok.kind, tok.pos)
	}
	return n, nil
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	tok := p.toks[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) parseExpr() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek().kind
		if op != tokPlus && op != tokMinus {
			return left, nil
		}
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
}

func (p *parser) parseTerm() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek().kind
		if op != tokStar && op != tokSlash {
			return left, nil
		}
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
}

func (p *parser) parseUnary() (Node, error) {
	switch p.peek().kind {
	case tokMinus:
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return negateNode{operand: operand}, nil
	case tokPlus:
		p.next()
		return p.parseUnary()
	}
	return p.parsePower()
}

func (p *parser) parsePower() (Node, error) {
	base, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokPow {
		return base, nil
	}
	p.next()
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return binaryNode{op: tokPow, left: base, right: exp}, nil
}

func (p *parser) parsePostfix() (Node, error) {
	n, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokPercent {
		p.next()
		n = percentNode{operand: n}
	}
	return n, nil
}

func (p *parser) parsePrimary() (Node, error) {
	tok := p.next()
	switch tok.kind {
	case tokNumber:
		return numberNode(tok.value), nil
	case tokLParen:
		n, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return nil, fmt.Errorf("%w: expected ')' at offset %d, got %s", ErrSyntax, closing.pos, closing.kind)
		}
		return n, nil
	}
	return nil, fmt.Errorf("%w: unexpected %s at offset %d", ErrSyntax, tok.kind, tok.pos)
}
