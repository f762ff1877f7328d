package bdd

import (
	"fmt"

	"github.com/signadot/robdd/debug"
)

// Op names a binary Boolean connective for Apply.
type Op int

const (
	OpAnd Op = iota
	OpOr
	OpXor
	OpImplies
	OpIff
)

func (o Op) String() string {
	return map[Op]string{
		OpAnd:     "and",
		OpOr:      "or",
		OpXor:     "xor",
		OpImplies: "implies",
		OpIff:     "iff",
	}[o]
}

// Apply combines two diagrams with the given connective.
func (m *Manager) Apply(op Op, a, b Ref) (Ref, error) {
	if err := m.checkRef(a); err != nil {
		return False, err
	}
	if err := m.checkRef(b); err != nil {
		return False, err
	}
	var r Ref
	switch op {
	case OpAnd:
		r = m.and(a, b)
	case OpOr:
		r = m.or(a, b)
	case OpXor:
		r = m.xor(a, b)
	case OpImplies:
		r = m.implies(a, b)
	case OpIff:
		r = m.iff(a, b)
	default:
		return False, fmt.Errorf("%w: %d", ErrBadOp, int(op))
	}
	if debug.Apply() {
		debug.Logf("apply: %s(%d, %d) = %d\n", op, a, b, r)
	}
	return r, nil
}

// Not negates a diagram by flipping the terminals it reaches.
func (m *Manager) Not(a Ref) (Ref, error) {
	if err := m.checkRef(a); err != nil {
		return False, err
	}
	return m.not(a), nil
}

// And conjoins two diagrams.
func (m *Manager) And(a, b Ref) (Ref, error) {
	return m.Apply(OpAnd, a, b)
}

// Or disjoins two diagrams as ~(~a & ~b).
func (m *Manager) Or(a, b Ref) (Ref, error) {
	return m.Apply(OpOr, a, b)
}

// Xor builds (a & ~b) | (~a & b).
func (m *Manager) Xor(a, b Ref) (Ref, error) {
	return m.Apply(OpXor, a, b)
}

// Implies builds ~a | b.
func (m *Manager) Implies(a, b Ref) (Ref, error) {
	return m.Apply(OpImplies, a, b)
}

// Iff builds (a -> b) & (b -> a).
func (m *Manager) Iff(a, b Ref) (Ref, error) {
	return m.Apply(OpIff, a, b)
}

// Ite builds if-then-else: (f & g) | (~f & h).
func (m *Manager) Ite(f, g, h Ref) (Ref, error) {
	for _, r := range []Ref{f, g, h} {
		if err := m.checkRef(r); err != nil {
			return False, err
		}
	}
	return m.or(m.and(f, g), m.and(m.not(f), h)), nil
}

func (m *Manager) not(a Ref) Ref {
	if a == False {
		return True
	}
	if a == True {
		return False
	}
	if r, ok := m.notCache[a]; ok {
		return r
	}
	n := m.nodes[a]
	r := m.makenode(n.level, m.not(n.low), m.not(n.high))
	if m.notCache != nil {
		m.notCache[a] = r
	}
	return r
}

// and is the two-operand apply recursion.  Terminal short circuits come
// first; otherwise the earlier variable branches and the later operand
// rides along unsplit.
func (m *Manager) and(a, b Ref) Ref {
	if a == False || b == False {
		return False
	}
	if a == True {
		return b
	}
	if b == True {
		return a
	}
	if r, ok := m.andCache[[2]Ref{a, b}]; ok {
		return r
	}
	na, nb := m.nodes[a], m.nodes[b]
	var (
		level     int
		low, high Ref
	)
	switch {
	case na.level == nb.level:
		level = na.level
		low = m.and(na.low, nb.low)
		high = m.and(na.high, nb.high)
	case na.level < nb.level:
		level = na.level
		low = m.and(na.low, b)
		high = m.and(na.high, b)
	default:
		level = nb.level
		low = m.and(a, nb.low)
		high = m.and(a, nb.high)
	}
	r := m.makenode(level, low, high)
	if m.andCache != nil {
		m.andCache[[2]Ref{a, b}] = r
	}
	return r
}

func (m *Manager) or(a, b Ref) Ref {
	return m.not(m.and(m.not(a), m.not(b)))
}

func (m *Manager) xor(a, b Ref) Ref {
	return m.or(m.and(a, m.not(b)), m.and(m.not(a), b))
}

func (m *Manager) implies(a, b Ref) Ref {
	return m.or(m.not(a), b)
}

func (m *Manager) iff(a, b Ref) Ref {
	return m.and(m.implies(a, b), m.implies(b, a))
}
