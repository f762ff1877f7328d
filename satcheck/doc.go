// Package satcheck answers diagram queries with a SAT solver.
//
// The node table is rebuilt as a gini combinational circuit, one input
// literal per variable in the ordering and a multiplexer per decision
// node.  Satisfiability, tautology and equivalence are then decided by
// the solver over that circuit, giving an oracle that is independent of
// the reduction rules and the apply caches.
//
// # Usage
//
//	m, err := bdd.New([]string{"a", "b"})
//	if err != nil {
//	    return err
//	}
//	x, _ := parse.Parse(m, "~(a & b)")
//	y, _ := parse.Parse(m, "~a | ~b")
//	same, err := satcheck.Equivalent(m, x, y) // true
//
// # Related Packages
//
//   - github.com/signadot/robdd/bdd - Diagram construction
//   - github.com/signadot/robdd/parse - Formula text to refs
package satcheck
