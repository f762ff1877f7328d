package satcheck

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/signadot/robdd/bdd"
	"github.com/signadot/robdd/debug"
)

// circuitBuilder translates a manager's node table into a gini
// combinational circuit.  Each decision node becomes a multiplexer on
// its variable's input literal, so the circuit computes the node's
// function from the raw table rather than from ref identity.
type circuitBuilder struct {
	m    *bdd.Manager
	c    *logic.C
	vars []z.Lit           // input literal per ordering level
	lits map[bdd.Ref]z.Lit // node ref to circuit literal
}

func newCircuitBuilder(m *bdd.Manager) *circuitBuilder {
	c := logic.NewC()
	vars := make([]z.Lit, len(m.Ordering()))
	for i := range vars {
		vars[i] = c.Lit()
	}
	return &circuitBuilder{
		m:    m,
		c:    c,
		vars: vars,
		lits: make(map[bdd.Ref]z.Lit),
	}
}

func (b *circuitBuilder) lit(r bdd.Ref) (z.Lit, error) {
	if l, ok := b.lits[r]; ok {
		return l, nil
	}
	n, err := b.m.At(r)
	if err != nil {
		return b.c.F, err
	}
	var l z.Lit
	switch {
	case n.Terminal && n.Value:
		l = b.c.T
	case n.Terminal:
		l = b.c.F
	default:
		lo, err := b.lit(n.Low)
		if err != nil {
			return b.c.F, err
		}
		hi, err := b.lit(n.High)
		if err != nil {
			return b.c.F, err
		}
		l = b.c.Choice(b.vars[n.Level], hi, lo)
	}
	b.lits[r] = l
	return l, nil
}

func (b *circuitBuilder) sat(formula z.Lit) bool {
	g := gini.New()
	b.c.ToCnf(g)
	g.Assume(formula)
	return g.Solve() == 1
}

// Sat reports whether the function rooted at root has a satisfying
// assignment.
func Sat(m *bdd.Manager, root bdd.Ref) (bool, error) {
	b := newCircuitBuilder(m)
	l, err := b.lit(root)
	if err != nil {
		return false, err
	}
	res := b.sat(l)
	if debug.Sat() {
		debug.Logf("satcheck: sat(%d) = %v\n", root, res)
	}
	return res, nil
}

// Tautology reports whether the function rooted at root holds under
// every assignment.
func Tautology(m *bdd.Manager, root bdd.Ref) (bool, error) {
	b := newCircuitBuilder(m)
	l, err := b.lit(root)
	if err != nil {
		return false, err
	}
	res := !b.sat(l.Not())
	if debug.Sat() {
		debug.Logf("satcheck: tautology(%d) = %v\n", root, res)
	}
	return res, nil
}

// Equivalent reports whether a and b compute the same function.  The
// answer comes from the solver, not from comparing refs.
func Equivalent(m *bdd.Manager, a, b bdd.Ref) (bool, error) {
	cb := newCircuitBuilder(m)
	la, err := cb.lit(a)
	if err != nil {
		return false, err
	}
	lb, err := cb.lit(b)
	if err != nil {
		return false, err
	}
	res := !cb.sat(cb.c.Xor(la, lb))
	if debug.Sat() {
		debug.Logf("satcheck: equivalent(%d, %d) = %v\n", a, b, res)
	}
	return res, nil
}
