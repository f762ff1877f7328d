package parse

import (
	"fmt"

	"github.com/signadot/robdd/bdd"
	"github.com/signadot/robdd/debug"
	"github.com/signadot/robdd/token"
)

// Parse builds the diagram of a formula in m and returns its root.
// Binary connectives in precedence order, loosest first: <-> -> ^ | &.
// All of them associate to the left; ~ binds tightest and nests.
// Subtrees fold into the manager as they reduce, so there is no
// intermediate syntax tree.
//
// Variables must belong to m's ordering; unknown names fail with
// bdd.ErrUnknownVariable.  Malformed input fails with
// ErrUnexpectedToken.
func Parse(m *bdd.Manager, formula string, opts ...ParseOption) (bdd.Ref, error) {
	o := &parseOpts{}
	for _, f := range opts {
		f(o)
	}
	toks, err := token.Tokenize(formula, o.tokenOpts()...)
	if err != nil {
		return bdd.False, err
	}
	p := &parser{m: m, toks: toks}
	root, err := p.iff()
	if err != nil {
		return bdd.False, err
	}
	if tok := p.peek(); tok != nil {
		return bdd.False, fmt.Errorf("%w: trailing %s", ErrUnexpectedToken, tok.Info())
	}
	if debug.Parse() {
		debug.Logf("parse: %q = %d\n", formula, root)
	}
	return root, nil
}

type parser struct {
	m    *bdd.Manager
	toks []token.Token
	pos  int
}

func (p *parser) peek() *token.Token {
	if p.pos < len(p.toks) {
		return &p.toks[p.pos]
	}
	return nil
}

func (p *parser) at(tt token.TokenType) bool {
	tok := p.peek()
	return tok != nil && tok.Type == tt
}

func (p *parser) consume() *token.Token {
	tok := p.peek()
	p.pos++
	return tok
}

// binary parses one left associative precedence level: a chain of next
// separated by tt, folded through op as it goes.
func (p *parser) binary(next func() (bdd.Ref, error), tt token.TokenType, op bdd.Op) (bdd.Ref, error) {
	left, err := next()
	if err != nil {
		return bdd.False, err
	}
	for p.at(tt) {
		p.consume()
		right, err := next()
		if err != nil {
			return bdd.False, err
		}
		left, err = p.m.Apply(op, left, right)
		if err != nil {
			return bdd.False, err
		}
	}
	return left, nil
}

func (p *parser) iff() (bdd.Ref, error) {
	return p.binary(p.implies, token.TIff, bdd.OpIff)
}

func (p *parser) implies() (bdd.Ref, error) {
	return p.binary(p.xor, token.TImplies, bdd.OpImplies)
}

func (p *parser) xor() (bdd.Ref, error) {
	return p.binary(p.or, token.TXor, bdd.OpXor)
}

func (p *parser) or() (bdd.Ref, error) {
	return p.binary(p.and, token.TOr, bdd.OpOr)
}

func (p *parser) and() (bdd.Ref, error) {
	return p.binary(p.not, token.TAnd, bdd.OpAnd)
}

func (p *parser) not() (bdd.Ref, error) {
	if p.at(token.TNot) {
		p.consume()
		operand, err := p.not()
		if err != nil {
			return bdd.False, err
		}
		return p.m.Not(operand)
	}
	return p.primary()
}

func (p *parser) primary() (bdd.Ref, error) {
	tok := p.peek()
	if tok == nil {
		return bdd.False, fmt.Errorf("%w: formula ended early", ErrUnexpectedToken)
	}
	switch tok.Type {
	case token.TLParen:
		p.consume()
		res, err := p.iff()
		if err != nil {
			return bdd.False, err
		}
		if !p.at(token.TRParen) {
			if next := p.peek(); next != nil {
				return bdd.False, fmt.Errorf("%w: %s, want closing parenthesis", ErrUnexpectedToken, next.Info())
			}
			return bdd.False, fmt.Errorf("%w: unclosed parenthesis at offset %d", ErrUnexpectedToken, tok.Off)
		}
		p.consume()
		return res, nil
	case token.TIdent:
		p.consume()
		return p.m.Variable(tok.Text)
	default:
		return bdd.False, fmt.Errorf("%w: %s", ErrUnexpectedToken, tok.Info())
	}
}
