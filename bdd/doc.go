// Package bdd builds reduced ordered binary decision diagrams.
//
// # Overview
//
// A Manager owns a table of nodes over one fixed variable ordering.
// Every Boolean function over that ordering has exactly one node table
// representation here, so two formulas denote the same function exactly
// when building them yields the same Ref.  Equivalence checking is Ref
// comparison; tautology is comparison against True.
//
// The table is append only.  Refs 0 and 1 are the False and True
// terminals of every Manager, all other Refs are decision nodes created
// by Make or by the operations built on it.  Nothing is ever removed or
// renumbered, so a Ref stays valid as the table grows.
//
// # Reduction
//
// Make maintains the two ROBDD reduction rules:
//
//   - a node whose branches agree is never created; the shared child is
//     returned instead
//   - structurally equal nodes are created once and shared
//
// Everything else in the package funnels node creation through Make, so
// canonicity is an invariant of the table, not a separate pass.
//
// # Ordering
//
// The ordering is fixed at New and never changes.  A variable's level is
// its position in the ordering slice; variables with smaller levels are
// tested nearer the root.  Terminals sit below every variable.  Node
// counts depend on the chosen ordering, function identity does not.
//
// # Operations
//
// Not, And, Or, Xor, Implies and Iff combine diagrams; Apply dispatches
// on an Op value.  Or and the richer connectives are derived from Not
// and And, so their algebraic identities hold structurally.  Result
// caches keyed on operand Refs short circuit repeated subproblems; they
// never change results and can be disabled with NoCache.
//
// # Inspection
//
// NodeCount, At, Reachable, IsTrue and IsFalse expose the table read
// only.  Satcount, Allsat, Anysat, Support and Restrict analyze the
// functions themselves.
//
// # Usage
//
//	m, err := bdd.New([]string{"a", "b"})
//	if err != nil {
//	    return err
//	}
//	a, _ := m.Variable("a")
//	b, _ := m.Variable("b")
//	f, _ := m.And(a, b)
//	if m.IsTrue(f) {
//	    // f is a tautology
//	}
//
// # Thread Safety
//
// Managers are not safe for concurrent use.  Build and query from one
// goroutine, or synchronize access yourself.
//
// # Related Packages
//
//   - github.com/signadot/robdd/parse - Builds diagrams from formula text
//   - github.com/signadot/robdd/encode - Renders diagrams as listings and DOT
//   - github.com/signadot/robdd/satcheck - Cross-checks diagrams with a SAT solver
package bdd
