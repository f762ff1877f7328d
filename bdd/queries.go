package bdd

import (
	"slices"
)

// NodeCount reports the table size, terminals included.
func (m *Manager) NodeCount() int {
	return len(m.nodes)
}

// At returns the view of one table entry.
func (m *Manager) At(r Ref) (Node, error) {
	if err := m.checkRef(r); err != nil {
		return Node{}, err
	}
	n := m.nodes[r]
	if r < 2 {
		return Node{Ref: r, Terminal: true, Value: r == True, Level: n.level}, nil
	}
	return Node{Ref: r, Var: m.ordering[n.level], Level: n.level, Low: n.low, High: n.high}, nil
}

// IsTrue reports whether r denotes the constant true function.
func (m *Manager) IsTrue(r Ref) bool {
	return r == True
}

// IsFalse reports whether r denotes the constant false function.
func (m *Manager) IsFalse(r Ref) bool {
	return r == False
}

// Reachable lists every Ref reachable from root, in ascending order.
func (m *Manager) Reachable(root Ref) ([]Ref, error) {
	if err := m.checkRef(root); err != nil {
		return nil, err
	}
	seen := map[Ref]bool{}
	var walk func(Ref)
	walk = func(r Ref) {
		if seen[r] {
			return
		}
		seen[r] = true
		if r < 2 {
			return
		}
		n := m.nodes[r]
		walk(n.low)
		walk(n.high)
	}
	walk(root)
	refs := make([]Ref, 0, len(seen))
	for r := range seen {
		refs = append(refs, r)
	}
	slices.Sort(refs)
	return refs, nil
}
