package bdd

import (
	"fmt"
)

// Ref is a handle to a node in a Manager's table.  Refs are stable: once
// returned they keep denoting the same function for the life of the
// Manager.  The zero Ref is the False terminal.
type Ref int

const (
	False Ref = 0
	True  Ref = 1
)

// node is a table entry.  level is the variable's position in the
// ordering; terminals sit at level len(ordering), below every variable.
// The terminal entries point at themselves so that the struct doubles as
// the unique-table key for decision nodes without colliding.
type node struct {
	level     int
	low, high Ref
}

// Node is the read-only view of a table entry.  Low and High are
// meaningful only when Terminal is false, Value only when it is true.
type Node struct {
	Ref      Ref
	Terminal bool
	Value    bool
	Var      string
	Level    int
	Low      Ref
	High     Ref
}

func (n Node) String() string {
	if n.Terminal {
		if n.Value {
			return fmt.Sprintf("[%d] 1", n.Ref)
		}
		return fmt.Sprintf("[%d] 0", n.Ref)
	}
	return fmt.Sprintf("[%d] %s lo=%d hi=%d", n.Ref, n.Var, n.Low, n.High)
}

// Manager owns a node table for one fixed variable ordering.  The table
// only grows: nodes are never garbage collected and Refs never move.
type Manager struct {
	ordering []string
	levels   map[string]int
	nodes    []node
	unique   map[node]Ref

	notCache map[Ref]Ref
	andCache map[[2]Ref]Ref
}

// New creates a Manager over the given ordering.  Position in the slice
// is the variable's level: earlier variables are tested first.  The
// ordering must be nonempty and free of duplicates and empty names.
func New(ordering []string, opts ...Option) (*Manager, error) {
	o := &mgrOpts{}
	for _, f := range opts {
		f(o)
	}
	if len(ordering) == 0 {
		return nil, fmt.Errorf("%w: empty ordering", ErrOrdering)
	}
	levels := make(map[string]int, len(ordering))
	for i, v := range ordering {
		if v == "" {
			return nil, fmt.Errorf("%w: empty name at position %d", ErrOrdering, i)
		}
		if prev, ok := levels[v]; ok {
			return nil, fmt.Errorf("%w: %q at positions %d and %d", ErrOrdering, v, prev, i)
		}
		levels[v] = i
	}
	m := &Manager{
		ordering: append([]string(nil), ordering...),
		levels:   levels,
		unique:   map[node]Ref{},
	}
	n := len(ordering)
	m.nodes = append(m.nodes,
		node{level: n, low: False, high: False},
		node{level: n, low: True, high: True},
	)
	if !o.noCache {
		m.notCache = map[Ref]Ref{}
		m.andCache = map[[2]Ref]Ref{}
	}
	return m, nil
}

// Ordering returns a copy of the variable ordering.
func (m *Manager) Ordering() []string {
	return append([]string(nil), m.ordering...)
}

func (m *Manager) checkRef(r Ref) error {
	if r < 0 || int(r) >= len(m.nodes) {
		return fmt.Errorf("%w: %d with %d nodes", ErrOutOfRange, r, len(m.nodes))
	}
	return nil
}
