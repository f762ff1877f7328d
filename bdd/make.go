package bdd

import (
	"fmt"

	"github.com/signadot/robdd/debug"
)

// Make returns the node testing variable with the given children,
// reduced: if low == high the child itself is returned, and structurally
// equal nodes share one Ref.  Make does not check that the children test
// later variables than its own.
func (m *Manager) Make(variable string, low, high Ref) (Ref, error) {
	level, ok := m.levels[variable]
	if !ok {
		return False, fmt.Errorf("%w: %q not in ordering %v", ErrUnknownVariable, variable, m.ordering)
	}
	if err := m.checkRef(low); err != nil {
		return False, err
	}
	if err := m.checkRef(high); err != nil {
		return False, err
	}
	return m.makenode(level, low, high), nil
}

// Variable returns the node for a bare variable: False when it is 0,
// True when it is 1.
func (m *Manager) Variable(name string) (Ref, error) {
	return m.Make(name, False, True)
}

// makenode applies both reduction rules.  Callers guarantee level is in
// range and low, high are valid Refs.
func (m *Manager) makenode(level int, low, high Ref) Ref {
	if low == high {
		return low
	}
	k := node{level: level, low: low, high: high}
	if r, ok := m.unique[k]; ok {
		return r
	}
	r := Ref(len(m.nodes))
	m.nodes = append(m.nodes, k)
	m.unique[k] = r
	if debug.Table() {
		debug.Logf("table: [%d] %s lo=%d hi=%d\n", r, m.ordering[level], low, high)
	}
	return r
}
